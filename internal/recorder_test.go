package internal

import "testing"

func TestRecorderTransitions(t *testing.T) {
	rec := NewRecorder()
	if rec.IsRecording() {
		t.Error("new recorder should be idle")
	}

	if _, err := rec.Stop(); err == nil {
		t.Error("Stop while idle should fail")
	}

	if err := rec.Start("/tmp/voice.webm"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !rec.IsRecording() {
		t.Error("recorder should be recording after Start")
	}
	if err := rec.Start("/tmp/other.webm"); err == nil {
		t.Error("Start while recording should fail")
	}

	recording, err := rec.Stop()
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if recording.File != "/tmp/voice.webm" || recording.FileType != "audio/webm" {
		t.Errorf("unexpected recording: %+v", recording)
	}
	if rec.IsRecording() {
		t.Error("recorder should be idle after Stop")
	}
}

func TestAcceptAttachment(t *testing.T) {
	tests := []struct {
		fileType string
		want     bool
	}{
		{"image/png", true},
		{"image/jpeg", true},
		{"audio/webm", true},
		{"application/pdf", false},
		{"video/mp4", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := AcceptAttachment(tt.fileType); got != tt.want {
			t.Errorf("AcceptAttachment(%q) = %v, want %v", tt.fileType, got, tt.want)
		}
	}
}
