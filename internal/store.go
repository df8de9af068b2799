package internal

import (
	"database/sql"
	"encoding/json"
	"errors"
)

// Well-known keys in the local store. Names match the browser localStorage
// slots of the reference client.
const (
	KeyToken   = "jwtToken"
	KeyUserID  = "user_id"
	KeySession = "chatHistory"
)

// LocalStore is the client-side key-value store holding the session token,
// the derived user id and the serialized active session.
type LocalStore struct {
	db *sql.DB
}

// NewLocalStore wraps an opened state database.
func NewLocalStore(db *sql.DB) *LocalStore {
	return &LocalStore{db: db}
}

// OpenLocalStore opens the store at path, or at the default location when
// path is empty.
func OpenLocalStore(path string) (*LocalStore, error) {
	if path == "" {
		var err error
		path, err = DefaultStorePath()
		if err != nil {
			return nil, err
		}
	}
	db, err := OpenDatabase(path)
	if err != nil {
		return nil, err
	}
	return &LocalStore{db: db}, nil
}

// Get returns the value for key, or "" when the key is absent.
func (s *LocalStore) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM localstore WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", &StoreError{Op: "get", Key: key, Err: err}
	}
	return value, nil
}

// Set writes key to value, replacing any previous value.
func (s *LocalStore) Set(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO localstore (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return &StoreError{Op: "set", Key: key, Err: err}
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *LocalStore) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM localstore WHERE key = ?", key); err != nil {
		return &StoreError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

// Close closes the underlying database.
func (s *LocalStore) Close() error {
	return s.db.Close()
}

// SaveMessages serializes the active session's messages into the session
// slot. Timestamps round-trip through RFC 3339; file attachments persist
// only as their URI and MIME strings.
func (s *LocalStore) SaveMessages(messages []Message) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return &StoreError{Op: "set", Key: KeySession, Err: err}
	}
	return s.Set(KeySession, string(data))
}

// LoadMessages restores the active session's messages. An empty or absent
// slot yields an empty slice.
func (s *LocalStore) LoadMessages() ([]Message, error) {
	value, err := s.Get(KeySession)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, nil
	}

	var messages []Message
	if err := json.Unmarshal([]byte(value), &messages); err != nil {
		return nil, &StoreError{Op: "get", Key: KeySession, Err: err}
	}
	return messages, nil
}

// ClearMessages drops the session slot.
func (s *LocalStore) ClearMessages() error {
	return s.Delete(KeySession)
}
