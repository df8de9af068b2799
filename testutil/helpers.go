package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/wandersync/wandersync-cli/internal"
)

// CreateTempDir creates a temporary directory for testing
func CreateTempDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "wandersync-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return dir
}

// OpenTestStore opens a LocalStore backed by a throwaway database file
func OpenTestStore(t *testing.T) *internal.LocalStore {
	t.Helper()
	dir := CreateTempDir(t)
	store, err := internal.OpenLocalStore(filepath.Join(dir, "state.db"))
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// JSONMarshal marshals a value to JSON for testing
func JSONMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal JSON: %v", err)
	}
	return data
}

// JSONUnmarshal unmarshals JSON for testing
func JSONUnmarshal(t *testing.T, data []byte, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
}

// WriteTempFile writes data to a file under a temp dir and returns its path
func WriteTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(CreateTempDir(t), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write temp file %s: %v", name, err)
	}
	return path
}
