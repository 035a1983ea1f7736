// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the QuickPoll API server.

QuickPoll is a service for short-lived multiple-choice polls: create a
poll, share its link, collect votes, and watch tallies update live over
a server-sent event stream.

# Starting the Server

The server runs against a local sqlite file out of the box:

	go run main.go

Or against PostgreSQL:

	go run main.go -t postgres -d "postgres://..."

# Configuration

Optional settings (flags or environment, .env files are loaded):

  - PORT (-p): Server port (default: 3000)
  - DATABASE_URL (-d): Connection string (default: file:quickpoll.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - STREAM_INTERVAL_MS (-stream-interval): Live snapshot cadence (default: 1500)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (polls, voting, live stream)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - store: Poll persistence and atomic vote tallying
  - ident: Short poll id generation
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
