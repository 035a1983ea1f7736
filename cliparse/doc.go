// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: Connection string (default: file:quickpoll.db)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - StreamInterval: Live snapshot cadence (default: 1.5s)

# CLI Flags

	-p                Server port
	-d                Database URL
	-t                Database type (sqlite or postgres)
	-stream-interval  Snapshot interval in milliseconds

# Environment Variables

Flags fall back to environment variables:

	PORT               → -p
	DATABASE_URL       → -d
	DATABASE_TYPE      → -t
	STREAM_INTERVAL_MS → -stream-interval

CLI flags take precedence over environment variables. main loads .env
files via godotenv before parsing, so either source works.

# Validation

ParseFlags returns an error if:

  - DATABASE_TYPE is neither sqlite nor postgres
  - DATABASE_URL is missing for the postgres type
  - PORT or STREAM_INTERVAL_MS is not numeric

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("sqlite", cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(polls, cfg)
*/
package cliparse
