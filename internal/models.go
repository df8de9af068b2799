package internal

import (
	"encoding/json"
	"time"
)

// Record is a raw entry from the backend history log. Each entry carries
// either a query or a response; the log alternates query, response, query, ...
type Record struct {
	Query     string `json:"query,omitempty"`
	Response  string `json:"response,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	ChatID    string `json:"chat_id,omitempty"`
	File      string `json:"file,omitempty"`
	FileType  string `json:"fileType,omitempty"`
}

// Message is one normalized side of a conversation turn.
type Message struct {
	ID        int       `json:"id"`
	ChatID    string    `json:"chatId,omitempty"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender"` // "user" or "bot"
	Timestamp time.Time `json:"timestamp"`
	File      string    `json:"file,omitempty"`
	FileType  string    `json:"fileType,omitempty"`
}

// Turn pairs a user query with the bot response that followed it.
// Response is nil when the log ended on an unanswered query.
type Turn struct {
	Query    Message  `json:"query"`
	Response *Message `json:"response"`
}

const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// ParseRecords decodes a backend history payload.
func ParseRecords(data []byte) ([]Record, error) {
	var payload struct {
		History []Record `json:"history"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &HistoryError{Err: err}
	}
	return payload.History, nil
}

// ParseTimestamp parses a backend timestamp permissively. Unparseable input
// yields the zero time, never an error; display code renders that as "".
func ParseTimestamp(ts string) time.Time {
	if ts == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		time.RFC1123,
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatTime renders a timestamp as the clock label shown next to each
// message, e.g. "03:04 PM". Zero time renders as the empty string.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("03:04 PM")
}

// SenderLabel returns the export label for a message sender.
func SenderLabel(sender string) string {
	if sender == SenderUser {
		return "You"
	}
	return "AI"
}
