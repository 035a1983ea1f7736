// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickpoll/cliparse"
	"github.com/danielhkuo/quickpoll/handlers"
	"github.com/danielhkuo/quickpoll/middleware"
	"github.com/danielhkuo/quickpoll/models"
	"github.com/danielhkuo/quickpoll/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(st, cfg)
	votingHandler := handlers.NewVotingHandler(st, cfg)
	streamHandler := handlers.NewStreamHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{OK: true})
	})

	// Poll lifecycle
	mux.HandleFunc("POST /api/polls", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET /api/polls", middleware.WithLogging(pollHandler.ListPolls))
	mux.HandleFunc("GET /api/polls/{id}", middleware.WithLogging(pollHandler.GetPoll))

	// Voting
	mux.HandleFunc("POST /api/polls/{id}/vote", middleware.WithLogging(votingHandler.CastVote))

	// Live updates (long-lived; logs open/close itself)
	mux.HandleFunc("GET /api/polls/{id}/stream", streamHandler.Stream)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickpoll API v1"))
	})

	return mux
}
