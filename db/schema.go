// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Polls
CREATE TABLE IF NOT EXISTS polls (
    id TEXT PRIMARY KEY,
    question TEXT NOT NULL,
    options TEXT NOT NULL,       -- JSON array of strings
    votes TEXT NOT NULL,         -- JSON array of numbers, index-aligned with options
    expiry BIGINT NOT NULL,      -- epoch ms
    hide_results INTEGER NOT NULL, -- 0/1
    created_at BIGINT NOT NULL   -- epoch ms
);

CREATE INDEX IF NOT EXISTS idx_polls_created_at ON polls(created_at);
`
