package internal

import (
	"os"
	"testing"
	"time"
)

func newTestCache(t *testing.T) *CacheManager {
	t.Helper()
	dir, err := os.MkdirTemp("", "wandersync-cache-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	cm, err := NewCacheManager(dir)
	if err != nil {
		t.Fatalf("NewCacheManager failed: %v", err)
	}
	return cm
}

func TestSnapshotRoundTrip(t *testing.T) {
	cm := newTestCache(t)

	ts := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	snap := &Snapshot{
		UserID:    "u1",
		FetchedAt: ts,
		Turns: []Turn{
			{Query: Message{ID: 1, Content: "Hi", Sender: SenderUser, Timestamp: ts}},
		},
	}

	if err := cm.SaveSnapshot("history", snap); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	loaded, err := cm.LoadSnapshot("history")
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if loaded.UserID != "u1" || len(loaded.Turns) != 1 {
		t.Errorf("unexpected snapshot: %+v", loaded)
	}
	if loaded.Turns[0].Query.Content != "Hi" {
		t.Errorf("turn content lost: %+v", loaded.Turns[0])
	}

	index, err := cm.LoadIndex()
	if err != nil {
		t.Fatalf("LoadIndex failed: %v", err)
	}
	if len(index.Snapshots) != 1 || index.Snapshots[0].TurnCount != 1 {
		t.Errorf("unexpected index: %+v", index)
	}
}

func TestSaveSnapshotOverwrites(t *testing.T) {
	cm := newTestCache(t)

	for i := 1; i <= 2; i++ {
		turns := make([]Turn, i)
		snap := &Snapshot{FetchedAt: time.Now(), Turns: turns}
		if err := cm.SaveSnapshot("history", snap); err != nil {
			t.Fatalf("SaveSnapshot failed: %v", err)
		}
	}

	index, err := cm.LoadIndex()
	if err != nil {
		t.Fatalf("LoadIndex failed: %v", err)
	}
	if len(index.Snapshots) != 1 {
		t.Fatalf("index has %d entries, want 1 (overwrite, not append)", len(index.Snapshots))
	}
	if index.Snapshots[0].TurnCount != 2 {
		t.Errorf("index not updated: %+v", index.Snapshots[0])
	}
}

func TestClearCache(t *testing.T) {
	cm := newTestCache(t)

	snap := &Snapshot{FetchedAt: time.Now()}
	if err := cm.SaveSnapshot("history", snap); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if err := cm.ClearCache(); err != nil {
		t.Fatalf("ClearCache failed: %v", err)
	}
	if _, err := cm.LoadSnapshot("history"); err == nil {
		t.Error("snapshot should be gone after ClearCache")
	}
	if _, err := cm.LoadIndex(); err == nil {
		t.Error("index should be gone after ClearCache")
	}
}
