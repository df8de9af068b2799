package internal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoginParsesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "a@b.c" || body["password"] != "pw" {
			t.Errorf("unexpected payload: %v", body)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true, "message": "ok", "jwt": "tok", "user_id": "u1",
		})
	}))
	defer server.Close()

	resp, err := NewClient(server.URL).Login(context.Background(), "a@b.c", "pw")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if !resp.Success || resp.JWT != "tok" || resp.UserID != "u1" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestHistoryParsesRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("user_id") != "u1" {
			t.Errorf("user_id not forwarded: %s", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"history": []map[string]string{
				{"query": "Hi", "timestamp": "2025-06-01T09:00:00Z", "chat_id": "c1"},
				{"response": "Hello!", "timestamp": "2025-06-01T09:01:00Z"},
			},
		})
	}))
	defer server.Close()

	records, err := NewClient(server.URL).History(context.Background(), "u1")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(records) != 2 || records[0].Query != "Hi" || records[1].Response != "Hello!" {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestHistoryMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).History(context.Background(), "u1")
	var historyErr *HistoryError
	if !errors.As(err, &historyErr) {
		t.Errorf("want HistoryError, got %v", err)
	}
}

func TestDeleteChatBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/history/u1/c1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "chat not found"})
	}))
	defer server.Close()

	err := NewClient(server.URL).DeleteChat(context.Background(), "u1", "c1")
	if err == nil {
		t.Fatal("want error from backend error field")
	}
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Errorf("want TransportError, got %T", err)
	}
}

func TestProfileSendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("missing bearer token: %q", r.Header.Get("Authorization"))
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"user":    map[string]string{"name": "N", "email": "e@x.y"},
		})
	}))
	defer server.Close()

	resp, err := NewClient(server.URL).Profile(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if resp.User.Name != "N" || resp.User.Email != "e@x.y" {
		t.Errorf("unexpected profile: %+v", resp)
	}
}

func TestServerErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Chat(context.Background(), "hi", "u1")
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("want TransportError, got %v", err)
	}
	if transportErr.Endpoint != "/chat" {
		t.Errorf("endpoint = %q, want /chat", transportErr.Endpoint)
	}
}
