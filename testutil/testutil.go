// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quickpoll/cliparse"
	"github.com/danielhkuo/quickpoll/db"
	"github.com/danielhkuo/quickpoll/ident"
	"github.com/danielhkuo/quickpoll/models"
	"github.com/danielhkuo/quickpoll/store"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. The pool is pinned to a single connection so every query sees
// the same :memory: database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore creates a store over a fresh test database
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()

	conn := SetupTestDB(t)
	t.Cleanup(func() { conn.Close() })
	return store.New(conn, cliparse.DatabaseSQLite)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3000,
		DatabaseURL:    ":memory:",
		DatabaseType:   cliparse.DatabaseSQLite,
		StreamInterval: 10 * time.Millisecond, // fast ticks for tests
	}
}

// CreateTestPoll inserts a poll that expires an hour from now and
// returns its ID
func CreateTestPoll(t *testing.T, st *store.Store, options ...string) string {
	t.Helper()

	if len(options) == 0 {
		options = []string{"A", "B"}
	}
	return insertPoll(t, st, options, time.Now().Add(time.Hour).UnixMilli())
}

// CreateExpiredPoll inserts a poll whose expiry is already in the past
func CreateExpiredPoll(t *testing.T, st *store.Store, options ...string) string {
	t.Helper()

	if len(options) == 0 {
		options = []string{"A", "B"}
	}
	return insertPoll(t, st, options, time.Now().Add(-time.Minute).UnixMilli())
}

func insertPoll(t *testing.T, st *store.Store, options []string, expiry int64) string {
	t.Helper()

	pollID, err := ident.NewPollID()
	if err != nil {
		t.Fatalf("Failed to generate poll id: %v", err)
	}

	poll := models.Poll{
		ID:        pollID,
		Question:  "Test poll?",
		Options:   options,
		Votes:     make([]int, len(options)),
		Expiry:    expiry,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := st.Put(context.Background(), poll); err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return pollID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
