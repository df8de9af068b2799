package internal

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ChatLoop drives the active session against the backend. One send at a
// time: while a request is outstanding further sends are refused, not
// queued. Every failure degrades to a synthetic bot message; nothing here
// is fatal.
type ChatLoop struct {
	Session  *Session
	Client   *Client
	Recorder *Recorder
	UserID   string

	loading bool
}

// NewChatLoop creates a chat loop over an existing session.
func NewChatLoop(session *Session, client *Client, userID string) *ChatLoop {
	return &ChatLoop{
		Session:  session,
		Client:   client,
		Recorder: NewRecorder(),
		UserID:   userID,
	}
}

// IsLoading reports whether a send is outstanding.
func (l *ChatLoop) IsLoading() bool {
	return l.loading
}

// Send submits a text query, appends the user message and the bot reply to
// the session, and returns the bot message. A send attempted while another
// is outstanding is refused with ok=false: no message appended, no request
// issued. Attachments ride along as URI/MIME strings on the user message.
func (l *ChatLoop) Send(ctx context.Context, input string, attachment *Recording) (reply *Message, ok bool) {
	if l.loading {
		return nil, false
	}
	if input == "" && attachment == nil {
		return nil, false
	}

	l.loading = true
	defer func() { l.loading = false }()

	userMsg := Message{
		ID:        l.Session.NextID(),
		Content:   input,
		Sender:    SenderUser,
		Timestamp: time.Now(),
	}
	if attachment != nil {
		if !AcceptAttachment(attachment.FileType) {
			// Unsupported selection is dropped without surfacing an error.
			LogDebug("discarding unsupported attachment type %q", attachment.FileType)
			attachment = nil
		} else {
			userMsg.File = attachment.File
			userMsg.FileType = attachment.FileType
			if input == "" {
				kind := "Audio"
				if strings.HasPrefix(attachment.FileType, "image/") {
					kind = "Image"
				}
				userMsg.Content = fmt.Sprintf("[%s] %s", kind, attachment.File)
			}
		}
	}
	if userMsg.Content == "" {
		return nil, false
	}

	if err := l.Session.Append(userMsg); err != nil {
		LogWarn("Failed to save session: %v", err)
	}

	var content string
	if attachment != nil && strings.HasPrefix(attachment.FileType, "audio/") {
		resp, err := l.Client.ChatAudio(ctx, attachment.File)
		content = replyContent(resp, err)
	} else {
		resp, err := l.Client.Chat(ctx, input, l.UserID)
		content = replyContent(resp, err)
	}

	botMsg := Message{
		ID:        l.Session.NextID(),
		Content:   content,
		Sender:    SenderBot,
		Timestamp: time.Now(),
	}
	if err := l.Session.Append(botMsg); err != nil {
		LogWarn("Failed to save session: %v", err)
	}

	return &botMsg, true
}

// NewChat clears the session back to the greeting.
func (l *ChatLoop) NewChat() error {
	return l.Session.Clear()
}

func replyContent(resp *ChatResponse, err error) string {
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	if resp.Response == "" {
		return "Something went wrong!"
	}
	return resp.Response
}
