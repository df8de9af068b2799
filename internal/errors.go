package internal

import "fmt"

// TransportError represents a failed call to the backend
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// AuthError represents a missing or rejected credential
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth error: %s", e.Reason)
}

// HistoryError represents a malformed or partial history payload
type HistoryError struct {
	Err error
}

func (e *HistoryError) Error() string {
	return fmt.Sprintf("history error: %v", e.Err)
}

func (e *HistoryError) Unwrap() error {
	return e.Err
}

// StoreError represents errors accessing the local state store
type StoreError struct {
	Key string
	Op  string // "get", "set", "delete", "open"
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error: %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error: [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
