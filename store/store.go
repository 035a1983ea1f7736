// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/danielhkuo/quickpoll/cliparse"
	"github.com/danielhkuo/quickpoll/models"
)

// List bounds
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

var (
	ErrNotFound      = errors.New("poll not found")
	ErrDuplicateID   = errors.New("poll id already exists")
	ErrInvalidOption = errors.New("invalid option index")
	ErrExpired       = errors.New("poll has expired")
)

// Store persists polls and applies votes. All mutating operations on a
// given poll are serialized through a per-id mutex so concurrent votes
// never lose an increment; votes on different polls proceed in parallel.
type Store struct {
	db     *sql.DB
	driver string
	now    func() int64 // epoch ms, swapped out in tests

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a Store on top of an open database connection.
// driver is a cliparse.Database* constant.
func New(db *sql.DB, driver string) *Store {
	return &Store{
		db:     db,
		driver: driver,
		now:    func() int64 { return time.Now().UnixMilli() },
		locks:  make(map[string]*sync.Mutex),
	}
}

// Put persists a new poll. Fails with ErrDuplicateID if the id is taken;
// the caller decides whether to retry (poll creation does not).
func (s *Store) Put(ctx context.Context, p models.Poll) error {
	options, err := json.Marshal(p.Options)
	if err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}
	votes, err := json.Marshal(p.Votes)
	if err != nil {
		return fmt.Errorf("failed to encode votes: %w", err)
	}

	hide := 0
	if p.HideResultsUntilVoted {
		hide = 1
	}

	_, err = s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO polls (id, question, options, votes, expiry, hide_results, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`), p.ID, p.Question, string(options), string(votes), p.Expiry, hide, p.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateID
		}
		return fmt.Errorf("failed to insert poll: %w", err)
	}
	return nil
}

// Get returns the current state of a poll.
func (s *Store) Get(ctx context.Context, id string) (models.Poll, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT id, question, options, votes, expiry, hide_results, created_at
		FROM polls
		WHERE id = ?
	`), id)

	return scanPoll(row)
}

// List returns polls newest first. Limits outside [1, MaxListLimit] are
// clamped: non-positive values fall back to DefaultListLimit, oversized
// values to MaxListLimit.
func (s *Store) List(ctx context.Context, limit int) ([]models.Poll, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT id, question, options, votes, expiry, hide_results, created_at
		FROM polls
		ORDER BY created_at DESC
		LIMIT ?
	`), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		p, err := scanPoll(rows)
		if err != nil {
			return nil, err
		}
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate polls: %w", err)
	}
	return polls, nil
}

// ApplyVote atomically increments votes[optionIndex] for the poll and
// returns the updated vote vector. The read-increment-write runs inside
// a transaction under the poll's mutex, so no concurrent vote is lost.
//
// Fails with ErrNotFound for an unknown poll, ErrInvalidOption for an
// index outside [0, len(options)), and ErrExpired once now is strictly
// past the expiry timestamp (a vote at the exact expiry millisecond is
// accepted). A failed vote never mutates the stored vector.
func (s *Store) ApplyVote(ctx context.Context, id string, optionIndex int) ([]int, error) {
	lock := s.pollLock(id)
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var optionsRaw, votesRaw string
	var expiry int64
	err = tx.QueryRowContext(ctx, s.rebind(`
		SELECT options, votes, expiry FROM polls WHERE id = ?
	`), id).Scan(&optionsRaw, &votesRaw, &expiry)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query poll: %w", err)
	}

	var options []string
	var votes []int
	if err := json.Unmarshal([]byte(optionsRaw), &options); err != nil {
		return nil, fmt.Errorf("corrupt options for poll %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(votesRaw), &votes); err != nil {
		return nil, fmt.Errorf("corrupt votes for poll %s: %w", id, err)
	}

	if optionIndex < 0 || optionIndex >= len(options) {
		return nil, ErrInvalidOption
	}
	if s.now() > expiry {
		return nil, ErrExpired
	}

	votes[optionIndex]++
	updated, err := json.Marshal(votes)
	if err != nil {
		return nil, fmt.Errorf("failed to encode votes: %w", err)
	}

	_, err = tx.ExecContext(ctx, s.rebind(`
		UPDATE polls SET votes = ? WHERE id = ?
	`), string(updated), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update votes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit vote: %w", err)
	}
	return votes, nil
}

// pollLock returns the mutex guarding a poll's vote vector. Locks are
// kept for the lifetime of the process; the map grows with the number
// of distinct polls voted on, which is bounded by the table itself.
func (s *Store) pollLock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

// rebind converts ?-style placeholders to the $N form lib/pq expects.
// Queries are written once with ? and rewritten for postgres.
func (s *Store) rebind(query string) string {
	if s.driver != cliparse.DatabasePostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPoll(row rowScanner) (models.Poll, error) {
	var p models.Poll
	var optionsRaw, votesRaw string
	var hide int

	err := row.Scan(&p.ID, &p.Question, &optionsRaw, &votesRaw, &p.Expiry, &hide, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Poll{}, ErrNotFound
	}
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to scan poll: %w", err)
	}

	if err := json.Unmarshal([]byte(optionsRaw), &p.Options); err != nil {
		return models.Poll{}, fmt.Errorf("corrupt options for poll %s: %w", p.ID, err)
	}
	if err := json.Unmarshal([]byte(votesRaw), &p.Votes); err != nil {
		return models.Poll{}, fmt.Errorf("corrupt votes for poll %s: %w", p.ID, err)
	}
	p.HideResultsUntilVoted = hide != 0
	return p, nil
}

// isUniqueViolation matches the primary-key violation messages of both
// supported drivers (modernc sqlite and lib/pq).
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
