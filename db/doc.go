// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

A single table holds everything:

  - polls: Poll record with options and votes serialized as JSON arrays

Options and votes are index-aligned arrays stored in TEXT columns; both
timestamps (expiry, created_at) are epoch milliseconds in BIGINT columns.
The layout is portable between sqlite and PostgreSQL.

# Indexes

  - polls.created_at: Listing order (newest first)
*/
package db
