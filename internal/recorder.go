package internal

import (
	"fmt"
	"strings"
)

// Recording is the captured audio reference attached to a message: the file
// URI and its MIME type. Only these strings survive a session save.
type Recording struct {
	File     string
	FileType string
}

// Recorder models voice capture as two states, idle and recording,
// transitioned only by explicit Start/Stop. There is no timeout and no
// auto-stop. Device I/O is outside this type; it owns the state machine and
// the file reference.
type Recorder struct {
	recording bool
	path      string
}

// NewRecorder creates an idle Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// IsRecording reports whether a capture is in progress.
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// Start begins capturing to path.
func (r *Recorder) Start(path string) error {
	if r.recording {
		return fmt.Errorf("already recording")
	}
	r.recording = true
	r.path = path
	return nil
}

// Stop ends the capture and returns the recorded file reference.
func (r *Recorder) Stop() (*Recording, error) {
	if !r.recording {
		return nil, fmt.Errorf("not recording")
	}
	r.recording = false
	return &Recording{File: r.path, FileType: "audio/webm"}, nil
}

// AcceptAttachment validates a selected attachment. Only image and audio
// types are supported; anything else clears the selection silently and
// reports false.
func AcceptAttachment(fileType string) bool {
	return strings.HasPrefix(fileType, "image/") || strings.HasPrefix(fileType, "audio/")
}
