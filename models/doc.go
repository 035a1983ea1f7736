// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: question, options, expiryHours, hideResultsUntilVoted
  - VoteRequest: optionIndex

# Response Types

Types for JSON responses:

  - CreatePollResponse: id
  - VoteResponse: ok, votes
  - HealthResponse: ok
  - ErrorResponse: error, message

# Domain Types

Poll is the only entity. Its JSON field names are part of the wire
contract consumed by the browser client and must not change:

	{id, question, options, votes, expiry, hideResultsUntilVoted, createdAt}

expiry and createdAt are epoch milliseconds.

# Constants

Validation bounds enforced at creation:

	MinOptions     = 2
	MaxOptions     = 6
	MaxQuestionLen = 120

Expiry hours are clamped to [MinExpiryHours, MaxExpiryHours] with
DefaultExpiryHours applied when the field is absent.

# Helpers

Percentages computes the derived per-option vote share the client
renders; Poll.Expired implements the voting deadline check (strictly
after expiry, boundary vote accepted).
*/
package models
