package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *LocalStore {
	t.Helper()
	dir, err := os.MkdirTemp("", "wandersync-store-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	store, err := OpenLocalStore(filepath.Join(dir, "state.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreGetSetDelete(t *testing.T) {
	store := openTestStore(t)

	if v, err := store.Get(KeyToken); err != nil || v != "" {
		t.Errorf("Get on empty store = (%q, %v), want empty", v, err)
	}

	if err := store.Set(KeyToken, "jwt-1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if v, _ := store.Get(KeyToken); v != "jwt-1" {
		t.Errorf("Get = %q, want jwt-1", v)
	}

	// Overwrite.
	if err := store.Set(KeyToken, "jwt-2"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if v, _ := store.Get(KeyToken); v != "jwt-2" {
		t.Errorf("Get after overwrite = %q, want jwt-2", v)
	}

	if err := store.Delete(KeyToken); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if v, _ := store.Get(KeyToken); v != "" {
		t.Errorf("Get after delete = %q, want empty", v)
	}

	// Deleting again is fine.
	if err := store.Delete(KeyToken); err != nil {
		t.Errorf("Delete of absent key failed: %v", err)
	}
}

func TestMessagesRoundTrip(t *testing.T) {
	store := openTestStore(t)

	ts := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	messages := []Message{
		{ID: 1, ChatID: "c1", Content: "Hi **there**", Sender: SenderUser, Timestamp: ts},
		{ID: 2, ChatID: "c1", Content: "Hello!", Sender: SenderBot, Timestamp: ts.Add(time.Minute)},
	}

	if err := store.SaveMessages(messages); err != nil {
		t.Fatalf("SaveMessages failed: %v", err)
	}

	restored, err := store.LoadMessages()
	if err != nil {
		t.Fatalf("LoadMessages failed: %v", err)
	}
	if len(restored) != len(messages) {
		t.Fatalf("restored %d messages, want %d", len(restored), len(messages))
	}
	for i := range messages {
		if restored[i].ID != messages[i].ID ||
			restored[i].Content != messages[i].Content ||
			restored[i].Sender != messages[i].Sender {
			t.Errorf("message %d mismatch: %+v != %+v", i, restored[i], messages[i])
		}
		if !restored[i].Timestamp.Equal(messages[i].Timestamp) {
			t.Errorf("message %d timestamp instant lost: %v != %v", i, restored[i].Timestamp, messages[i].Timestamp)
		}
	}
}

func TestMessagesFileFieldsPersistAsStrings(t *testing.T) {
	store := openTestStore(t)

	messages := []Message{
		{ID: 1, Content: "voice note", Sender: SenderUser, Timestamp: time.Now(),
			File: "/tmp/voice-recording.webm", FileType: "audio/webm"},
	}
	if err := store.SaveMessages(messages); err != nil {
		t.Fatalf("SaveMessages failed: %v", err)
	}

	restored, err := store.LoadMessages()
	if err != nil {
		t.Fatalf("LoadMessages failed: %v", err)
	}
	if restored[0].File != "/tmp/voice-recording.webm" || restored[0].FileType != "audio/webm" {
		t.Errorf("file reference not preserved: %+v", restored[0])
	}
}

func TestClearMessages(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveMessages([]Message{{ID: 1, Content: "x", Sender: SenderBot, Timestamp: time.Now()}}); err != nil {
		t.Fatalf("SaveMessages failed: %v", err)
	}
	if err := store.ClearMessages(); err != nil {
		t.Fatalf("ClearMessages failed: %v", err)
	}

	restored, err := store.LoadMessages()
	if err != nil {
		t.Fatalf("LoadMessages failed: %v", err)
	}
	if len(restored) != 0 {
		t.Errorf("restored %d messages after clear, want 0", len(restored))
	}
}
