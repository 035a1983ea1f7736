// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickpoll/models"
)

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()

	JSONResponse(w, http.StatusCreated, map[string]string{"id": "abc123"})

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["id"] != "abc123" {
		t.Errorf("Unexpected body: %v", body)
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()

	ErrorResponse(w, http.StatusBadRequest, "question is required")

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if resp.Error != http.StatusText(http.StatusBadRequest) {
		t.Errorf("Expected error %q, got %q", http.StatusText(http.StatusBadRequest), resp.Error)
	}
	if resp.Message != "question is required" {
		t.Errorf("Unexpected message: %q", resp.Message)
	}
}

func TestParseJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", bytes.NewReader([]byte(`{"question":"A or B?"}`)))

	var body struct {
		Question string `json:"question"`
	}
	if err := ParseJSONBody(req, &body); err != nil {
		t.Fatalf("ParseJSONBody failed: %v", err)
	}
	if body.Question != "A or B?" {
		t.Errorf("Expected question to parse, got %q", body.Question)
	}
}

func TestParseJSONBodyInvalid(t *testing.T) {
	req := httptest.NewRequest("POST", "/", bytes.NewReader([]byte(`{not json`)))

	var body struct{}
	if err := ParseJSONBody(req, &body); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Preflight should not reach the wrapped handler")
	}))

	req := httptest.NewRequest("OPTIONS", "/api/polls", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for preflight, got %d", w.Code)
	}
	if origin := w.Header().Get("Access-Control-Allow-Origin"); origin != "http://localhost:5173" {
		t.Errorf("Expected origin echoed back, got %q", origin)
	}
}

func TestCORSPassthrough(t *testing.T) {
	called := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if !called {
		t.Error("Expected wrapped handler to be called")
	}
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Expected CORS headers on normal requests")
	}
}

func TestWithLogging(t *testing.T) {
	called := false
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest("GET", "/api/polls", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	if !called {
		t.Error("Expected wrapped handler to be called")
	}
	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status to pass through, got %d", w.Code)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(r *http.Request)
		expected string
	}{
		{
			name: "X-Forwarded-For single",
			setup: func(r *http.Request) {
				r.Header.Set("X-Forwarded-For", "1.2.3.4")
			},
			expected: "1.2.3.4",
		},
		{
			name: "X-Forwarded-For chain takes first",
			setup: func(r *http.Request) {
				r.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")
			},
			expected: "1.2.3.4",
		},
		{
			name: "X-Real-IP",
			setup: func(r *http.Request) {
				r.Header.Set("X-Real-IP", "9.8.7.6")
			},
			expected: "9.8.7.6",
		},
		{
			name:     "RemoteAddr fallback strips port",
			setup:    func(r *http.Request) { r.RemoteAddr = "10.0.0.1:54321" },
			expected: "10.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			tt.setup(req)

			if got := GetClientIP(req); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
