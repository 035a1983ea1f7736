// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/quickpoll/models"
	"github.com/danielhkuo/quickpoll/testutil"
)

// runStream runs the stream handler against a recorder until cancel is
// called, then waits for the handler to return.
func runStream(t *testing.T, handler *StreamHandler, pollID string, runFor time.Duration) *httptest.ResponseRecorder {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	req := testutil.MakeRequest("GET", "/api/polls/"+pollID+"/stream", nil, nil).WithContext(ctx)
	req.SetPathValue("id", pollID)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		handler.Stream(w, req)
		close(done)
	}()

	time.Sleep(runFor)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stream did not stop after viewer disconnect")
	}

	return w
}

func TestStreamDeliversSnapshots(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig() // 10ms ticks
	handler := NewStreamHandler(st, cfg)

	pollID := testutil.CreateTestPoll(t, st, "A", "B")

	w := runStream(t, handler, pollID, 60*time.Millisecond)

	if ct := w.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Expected text/event-stream, got %q", ct)
	}

	events := sseEvents(w.Body.String())
	if len(events) == 0 {
		t.Fatalf("Expected at least one snapshot event, body: %q", w.Body.String())
	}

	var poll models.Poll
	if err := json.Unmarshal([]byte(events[0]), &poll); err != nil {
		t.Fatalf("Event is not poll JSON: %v (%q)", err, events[0])
	}
	if poll.ID != pollID {
		t.Errorf("Expected poll %q in event, got %q", pollID, poll.ID)
	}
	if len(poll.Votes) != 2 {
		t.Errorf("Expected 2-entry vote vector, got %v", poll.Votes)
	}
}

func TestStreamReflectsNewVotes(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewStreamHandler(st, cfg)

	pollID := testutil.CreateTestPoll(t, st, "A", "B")
	if _, err := st.ApplyVote(context.Background(), pollID, 0); err != nil {
		t.Fatal(err)
	}

	w := runStream(t, handler, pollID, 60*time.Millisecond)

	events := sseEvents(w.Body.String())
	if len(events) == 0 {
		t.Fatal("Expected snapshot events")
	}

	var poll models.Poll
	if err := json.Unmarshal([]byte(events[len(events)-1]), &poll); err != nil {
		t.Fatal(err)
	}
	if poll.Votes[0] != 1 || poll.Votes[1] != 0 {
		t.Errorf("Expected snapshot votes [1 0], got %v", poll.Votes)
	}
}

// A subscription on an unknown poll stays open but emits nothing: each
// tick's read error is swallowed, not fatal.
func TestStreamUnknownPollEmitsNothing(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewStreamHandler(st, testutil.GetTestConfig())

	w := runStream(t, handler, "nosuchid", 50*time.Millisecond)

	if events := sseEvents(w.Body.String()); len(events) != 0 {
		t.Errorf("Expected no events for unknown poll, got %d", len(events))
	}
}

func sseEvents(body string) []string {
	var events []string
	for _, chunk := range strings.Split(body, "\n\n") {
		chunk = strings.TrimSpace(chunk)
		if strings.HasPrefix(chunk, "data: ") {
			events = append(events, strings.TrimPrefix(chunk, "data: "))
		}
	}
	return events
}
