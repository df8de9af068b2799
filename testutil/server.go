package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/wandersync/wandersync-cli/internal"
)

// MockBackend is an httptest stand-in for the WanderSync backend.
type MockBackend struct {
	Server *httptest.Server

	mu          sync.Mutex
	History     []internal.Record
	ChatReply   string
	LoginJWT    string
	LoginUserID string
	FailDelete  string // error text returned by the delete endpoint
	Requests    []string
}

// NewMockBackend starts a mock backend with sensible defaults. The server
// is shut down at test cleanup.
func NewMockBackend(t *testing.T) *MockBackend {
	t.Helper()
	m := &MockBackend{
		ChatReply:   "Sounds like a great trip!",
		LoginJWT:    "test-jwt-token",
		LoginUserID: "user-1",
	}
	m.Server = httptest.NewServer(http.HandlerFunc(m.handle))
	t.Cleanup(m.Server.Close)
	return m
}

// URL returns the backend base URL.
func (m *MockBackend) URL() string {
	return m.Server.URL
}

// RequestCount returns how many requests hit the backend so far.
func (m *MockBackend) RequestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}

func (m *MockBackend) handle(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.Requests = append(m.Requests, r.Method+" "+r.URL.Path)
	m.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.URL.Path == "/login":
		m.writeJSON(w, map[string]any{
			"success": true,
			"message": "Login successful",
			"jwt":     m.LoginJWT,
			"user_id": m.LoginUserID,
		})
	case r.URL.Path == "/register":
		m.writeJSON(w, map[string]any{"success": true, "message": "Registered"})
	case r.URL.Path == "/chat" || r.URL.Path == "/conversion_chat":
		m.writeJSON(w, map[string]any{"response": m.ChatReply})
	case r.URL.Path == "/search":
		m.writeJSON(w, map[string]any{
			"results": []map[string]string{{"response": m.ChatReply}},
		})
	case r.URL.Path == "/history" && r.Method == http.MethodGet:
		m.mu.Lock()
		history := m.History
		m.mu.Unlock()
		m.writeJSON(w, map[string]any{"history": history})
	case strings.HasPrefix(r.URL.Path, "/history/") && r.Method == http.MethodDelete:
		if m.FailDelete != "" {
			m.writeJSON(w, map[string]any{"error": m.FailDelete})
			return
		}
		m.writeJSON(w, map[string]any{"success": true})
	case r.URL.Path == "/profile":
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			m.writeJSON(w, map[string]any{"success": false, "message": "missing token"})
			return
		}
		m.writeJSON(w, map[string]any{
			"success": true,
			"user":    map[string]string{"name": "Test User", "email": "test@example.com"},
		})
	default:
		w.WriteHeader(http.StatusNotFound)
		m.writeJSON(w, map[string]any{"error": "not found"})
	}
}

func (m *MockBackend) writeJSON(w http.ResponseWriter, v any) {
	_ = json.NewEncoder(w).Encode(v)
}
