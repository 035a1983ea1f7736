// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"crypto/rand"
	"fmt"
)

// PollIDLength is the length of generated poll identifiers. 8 characters
// over a 64-symbol alphabet gives 48 bits of entropy - effectively
// collision-free at this scale. A collision is not retried; it surfaces
// as a duplicate-key error from the store.
const PollIDLength = 8

// URL-safe, 64 symbols so a masked random byte maps uniformly
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ-_"

// New creates a random URL-safe ID of the specified length
func New(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	for i, c := range b {
		b[i] = alphabet[c&63]
	}
	return string(b), nil
}

// NewPollID creates a short identifier for a new poll
func NewPollID() (string, error) {
	return New(PollIDLength)
}
