// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickpoll/cliparse"
	"github.com/danielhkuo/quickpoll/middleware"
	"github.com/danielhkuo/quickpoll/models"
	"github.com/danielhkuo/quickpoll/store"
)

type VotingHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewVotingHandler(st *store.Store, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{store: st, cfg: cfg}
}

// CastVote handles POST /api/polls/:id/vote
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	// Parse request
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// A missing optionIndex is indistinguishable from 0 without the
	// pointer, and 0 is a valid index
	if req.OptionIndex == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid option index")
		return
	}

	votes, err := h.store.ApplyVote(r.Context(), pollID, *req.OptionIndex)
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	case errors.Is(err, store.ErrInvalidOption):
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid option index")
		return
	case errors.Is(err, store.ErrExpired):
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll has expired")
		return
	case err != nil:
		slog.Error("failed to apply vote", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	slog.Info("vote cast", "poll_id", pollID, "option_index", *req.OptionIndex)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		OK:    true,
		Votes: votes,
	})
}
