// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/quickpoll/cliparse"
	"github.com/danielhkuo/quickpoll/middleware"
	"github.com/danielhkuo/quickpoll/store"
)

type StreamHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewStreamHandler(st *store.Store, cfg cliparse.Config) *StreamHandler {
	return &StreamHandler{store: st, cfg: cfg}
}

// Stream handles GET /api/polls/:id/stream
//
// Pushes the poll snapshot as a server-sent event once per interval
// until the viewer disconnects. Delivery is best-effort: a failed read
// skips that tick, a failed write ends the subscription. There is no
// backlog or replay; a reconnecting viewer picks up at the next tick.
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	slog.Info("stream opened", "poll_id", pollID)

	// One ticker per subscription, released on disconnect
	ticker := time.NewTicker(h.cfg.StreamInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			slog.Info("stream closed", "poll_id", pollID)
			return
		case <-ticker.C:
			poll, err := h.store.Get(r.Context(), pollID)
			if err != nil {
				// Transient read failure: skip this tick, try again next interval
				continue
			}

			data, err := json.Marshal(poll)
			if err != nil {
				continue
			}

			if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
				slog.Info("stream closed", "poll_id", pollID)
				return
			}
			flusher.Flush()
		}
	}
}
