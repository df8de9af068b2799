package internal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const createStoreTableSQL = `
CREATE TABLE IF NOT EXISTS localstore (
	key TEXT PRIMARY KEY,
	value TEXT
)`

// DefaultStorePath returns the default location of the local state database.
func DefaultStorePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".wandersync", "state.db"), nil
}

// OpenDatabase opens (creating if needed) the local state SQLite database.
func OpenDatabase(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, &StoreError{Op: "open", Key: path, Err: err}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StoreError{Op: "open", Key: path, Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StoreError{Op: "open", Key: path, Err: err}
	}

	if _, err := db.Exec(createStoreTableSQL); err != nil {
		db.Close()
		return nil, &StoreError{Op: "open", Key: path, Err: err}
	}

	return db, nil
}
