// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickpoll/cliparse"
	"github.com/danielhkuo/quickpoll/ident"
	"github.com/danielhkuo/quickpoll/middleware"
	"github.com/danielhkuo/quickpoll/models"
	"github.com/danielhkuo/quickpoll/store"
)

type PollHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewPollHandler(st *store.Store, cfg cliparse.Config) *PollHandler {
	return &PollHandler{store: st, cfg: cfg}
}

// CreatePoll handles POST /api/polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	question := strings.TrimSpace(req.Question)
	if question == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question is required")
		return
	}
	if len(question) > models.MaxQuestionLen {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question must be 120 characters or fewer")
		return
	}

	// Trim options and drop empty ones before counting
	options := make([]string, 0, len(req.Options))
	for _, opt := range req.Options {
		if trimmed := strings.TrimSpace(opt); trimmed != "" {
			options = append(options, trimmed)
		}
	}
	if len(options) < models.MinOptions || len(options) > models.MaxOptions {
		middleware.ErrorResponse(w, http.StatusBadRequest, "provide 2-6 non-empty options")
		return
	}

	// Clamp expiry hours, defaulting when absent
	hours := req.ExpiryHours
	if hours == 0 {
		hours = models.DefaultExpiryHours
	}
	if hours < models.MinExpiryHours {
		hours = models.MinExpiryHours
	}
	if hours > models.MaxExpiryHours {
		hours = models.MaxExpiryHours
	}

	// Generate poll ID
	pollID, err := ident.NewPollID()
	if err != nil {
		slog.Error("failed to generate poll ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	now := time.Now().UnixMilli()
	poll := models.Poll{
		ID:                    pollID,
		Question:              question,
		Options:               options,
		Votes:                 make([]int, len(options)),
		Expiry:                now + int64(hours*float64(time.Hour/time.Millisecond)),
		HideResultsUntilVoted: req.HideResultsUntilVoted,
		CreatedAt:             now,
	}

	// Persist. An id collision is exceptional and not retried.
	if err := h.store.Put(r.Context(), poll); err != nil {
		slog.Error("failed to insert poll", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created",
		"poll_id", pollID,
		"options", len(options),
		"expires", humanize.Time(time.UnixMilli(poll.Expiry)),
	)

	// Return response
	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		ID: pollID,
	})
}

// GetPoll handles GET /api/polls/:id
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	poll, err := h.store.Get(r.Context(), pollID)
	if err == store.ErrNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, poll)
}

// ListPolls handles GET /api/polls?limit=N
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	// Invalid or missing limits are clamped by the store
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	polls, err := h.store.List(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, polls)
}
