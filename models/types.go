// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "math"

// Poll validation constants
const (
	MinOptions     = 2
	MaxOptions     = 6
	MaxQuestionLen = 120

	MinExpiryHours     = 1
	MaxExpiryHours     = 168 // one week
	DefaultExpiryHours = 24
)

// Request types

type CreatePollRequest struct {
	Question              string   `json:"question"`
	Options               []string `json:"options"`
	ExpiryHours           float64  `json:"expiryHours"`
	HideResultsUntilVoted bool     `json:"hideResultsUntilVoted"`
}

// OptionIndex is a pointer so a missing field is distinguishable from index 0
type VoteRequest struct {
	OptionIndex *int `json:"optionIndex"`
}

// Response types

type CreatePollResponse struct {
	ID string `json:"id"`
}

type VoteResponse struct {
	OK    bool  `json:"ok"`
	Votes []int `json:"votes"`
}

type HealthResponse struct {
	OK bool `json:"ok"`
}

// Domain types

// Poll is the sole entity. Votes is index-aligned with Options and only
// ever incremented one index at a time. Expiry and CreatedAt are epoch
// milliseconds.
type Poll struct {
	ID                    string   `json:"id"`
	Question              string   `json:"question"`
	Options               []string `json:"options"`
	Votes                 []int    `json:"votes"`
	Expiry                int64    `json:"expiry"`
	HideResultsUntilVoted bool     `json:"hideResultsUntilVoted"`
	CreatedAt             int64    `json:"createdAt"`
}

// Expired reports whether the poll no longer accepts votes at the given
// moment (epoch ms). A vote at the exact expiry millisecond is accepted.
func (p *Poll) Expired(nowMs int64) bool {
	return nowMs > p.Expiry
}

// Percentages derives the per-option vote share, rounded to whole
// percents. All zeros when no votes have been cast. This is what
// presentation clients render next to each option.
func Percentages(votes []int) []int {
	total := 0
	for _, v := range votes {
		total += v
	}

	out := make([]int, len(votes))
	if total == 0 {
		return out
	}
	for i, v := range votes {
		out[i] = int(math.Round(float64(v) / float64(total) * 100))
	}
	return out
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
