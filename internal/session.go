package internal

import (
	"time"

	"github.com/google/uuid"
)

// Greeting is the bot message every fresh session starts with.
const Greeting = "Yo! I'm your AI travel assistant. Where you headed today?"

// Session is the active conversation: an ordered message sequence mirrored
// into the local store after every mutation. It owns its lifecycle
// explicitly: LoadOrNew, Append, Clear. It is never merged with server
// history.
type Session struct {
	ChatID   string
	Messages []Message

	store *LocalStore
}

// LoadOrNew restores the session from the store's session slot, or starts a
// fresh one with the default greeting when the slot is empty or unreadable.
func LoadOrNew(store *LocalStore) *Session {
	s := &Session{store: store}

	messages, err := store.LoadMessages()
	if err != nil {
		LogWarn("Failed to restore session, starting fresh: %v", err)
	}
	if len(messages) > 0 {
		s.Messages = messages
		s.ChatID = messages[0].ChatID
	}
	if s.ChatID == "" {
		s.ChatID = uuid.NewString()
	}
	if len(s.Messages) == 0 {
		s.Messages = []Message{s.greeting()}
	}
	return s
}

// Append adds a message in send/receive order and saves the session. The
// save happens after the append, never before, so a restore can never
// observe a state older than the last completed append.
func (s *Session) Append(msg Message) error {
	if msg.ChatID == "" {
		msg.ChatID = s.ChatID
	}
	s.Messages = append(s.Messages, msg)
	return s.store.SaveMessages(s.Messages)
}

// Clear resets the session to the default greeting and drops the stored
// slot ("new chat").
func (s *Session) Clear() error {
	s.ChatID = uuid.NewString()
	s.Messages = []Message{s.greeting()}
	return s.store.ClearMessages()
}

// NextID returns the positional id for the next appended message.
func (s *Session) NextID() int {
	return len(s.Messages) + 1
}

func (s *Session) greeting() Message {
	return Message{
		ID:        1,
		ChatID:    s.ChatID,
		Content:   Greeting,
		Sender:    SenderBot,
		Timestamp: time.Now(),
	}
}

// Turns pairs the session's messages for display and export: each user
// message opens a turn, the bot message that follows closes it. Leading bot
// messages (the greeting) stand alone as query-side turns, matching how the
// reference client rendered its flat message list.
func (s *Session) Turns() []Turn {
	var turns []Turn
	i := 0
	for i < len(s.Messages) {
		msg := s.Messages[i]
		if msg.Sender == SenderUser && i+1 < len(s.Messages) && s.Messages[i+1].Sender == SenderBot {
			response := s.Messages[i+1]
			turns = append(turns, Turn{Query: msg, Response: &response})
			i += 2
			continue
		}
		turns = append(turns, Turn{Query: msg})
		i++
	}
	return turns
}
