// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table using Go 1.22+ routing.

	GET  /api/health            → {ok:true}
	POST /api/polls             → create poll
	GET  /api/polls?limit=N     → list polls, newest first
	GET  /api/polls/{id}        → poll snapshot
	POST /api/polls/{id}/vote   → cast vote
	GET  /api/polls/{id}/stream → server-sent event stream

All handlers except the stream are wrapped with request logging; the
stream endpoint logs its own open/close lifecycle instead of a single
completion line that would only fire on disconnect.
*/
package router
