// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists polls and applies votes.

# Operations

	Put(ctx, poll)            → ErrDuplicateID on id collision
	Get(ctx, id)              → ErrNotFound on unknown id
	List(ctx, limit)          → newest first, limit clamped to [1, 100]
	ApplyVote(ctx, id, index) → updated vote vector

# Vote Atomicity

ApplyVote is a single atomic read-modify-write: it takes a per-poll-id
mutex, reads the vote vector inside a transaction, validates the option
index and expiry, increments exactly one counter, and writes the vector
back. Two simultaneous votes on the same poll are both reflected; votes
on different polls do not contend.

# Errors

Sentinel errors are matched by handlers with errors.Is:

  - ErrNotFound: unknown poll id (404)
  - ErrInvalidOption: option index outside [0, len(options)) (400)
  - ErrExpired: vote strictly after the expiry timestamp (400)
  - ErrDuplicateID: id collision on Put (500, never retried)

Anything else is a wrapped storage failure (500).

# Drivers

The store runs on sqlite (modernc.org/sqlite) or PostgreSQL (lib/pq).
Queries use ? placeholders and are rebound to $N for postgres.
*/
package store
