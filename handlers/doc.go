// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the QuickPoll API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - PollHandler: Poll lifecycle (create, get, list)
  - VotingHandler: Vote casting
  - StreamHandler: Live poll snapshots over server-sent events

Handlers are created via constructor functions that accept *store.Store
and Config:

	pollHandler := handlers.NewPollHandler(st, cfg)

# Poll Lifecycle

A poll is created once and never deleted. Expiry only ends voting
eligibility - reads and streams keep working:

	POST /api/polls          → CreatePoll (validates, assigns id, returns {id})
	GET  /api/polls/{id}     → GetPoll
	GET  /api/polls?limit=N  → ListPolls (newest first)

Creation trims the question, drops whitespace-only options, requires
2-6 remaining options, and clamps expiryHours to [1, 168] with a
24-hour default.

# Voting

	POST /api/polls/{id}/vote → CastVote ({optionIndex} → {ok, votes})

The store rejects out-of-range indices and votes strictly after expiry;
either way the tally is untouched. The increment itself is serialized
per poll id, so concurrent votes are never lost.

# Live Stream

	GET /api/polls/{id}/stream → Stream (SSE, one snapshot per ~1.5s)

Each subscription owns a ticker that is stopped when the viewer
disconnects. Per-tick read errors are swallowed so a transient database
hiccup does not kill the stream.
*/
package handlers
