package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/draffetseder/sleeper-mcp/internal/logging"
	"github.com/draffetseder/sleeper-mcp/internal/sleeper"
)

func newTestRouter(t *testing.T, apiKey string) http.Handler {
	t.Helper()
	api := sleeper.NewClient("http://127.0.0.1:1", time.Second)
	server, registry := newServer(api, logging.New("error", "text", io.Discard))
	return newRouter(server, registry, httpOptions{
		MCPPath:    "/mcp",
		APIKey:     apiKey,
		AuthHeader: "X-API-Key",
	})
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, "")
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestAuth(t *testing.T) {
	router := newTestRouter(t, "secret")

	t.Run("MissingKey", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/tools", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rr.Code)
		}
	})

	t.Run("WrongKey", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/tools", nil)
		req.Header.Set("X-API-Key", "nope")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rr.Code)
		}
	})

	t.Run("HeaderKey", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/tools", nil)
		req.Header.Set("X-API-Key", "secret")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
	})

	t.Run("BearerKey", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Authorization", "Bearer secret")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
	})
}

func TestToolsEndpoint(t *testing.T) {
	router := newTestRouter(t, "")

	var prev []string
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/tools", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}

		var resp struct {
			Tools []toolInfo `json:"tools"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(resp.Tools) != 18 {
			t.Fatalf("got %d tools, want 18", len(resp.Tools))
		}
		if resp.Tools[0].Name != "get_nfl_state" {
			t.Errorf("first tool=%q want get_nfl_state", resp.Tools[0].Name)
		}

		names := make([]string, len(resp.Tools))
		for j, ti := range resp.Tools {
			names[j] = ti.Name
		}
		if prev != nil {
			for j := range names {
				if names[j] != prev[j] {
					t.Errorf("tool order changed at %d: %q vs %q", j, names[j], prev[j])
				}
			}
		}
		prev = names
	}
}

func TestServeHTTPStopsOnCancel(t *testing.T) {
	router := newTestRouter(t, "")
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- serveHTTP(ctx, "127.0.0.1:0", router) }()

	// Give the listener a moment to come up before cancelling.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serveHTTP returned %v, want nil after drain", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serveHTTP did not return after cancellation")
	}
}
