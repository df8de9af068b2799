package internal

import "testing"

func TestFormatHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bold and breaks",
			input: "**bold** text\n\nline2",
			want:  "<b>bold</b> text<br><br>line2",
		},
		{
			name:  "single newline",
			input: "a\nb",
			want:  "a<br>b",
		},
		{
			name:  "plain text unchanged",
			input: "just words",
			want:  "just words",
		},
		{
			name:  "image token",
			input: "![Photo](https://example.com/x.jpg)",
			want:  `<div><img src="https://example.com/x.jpg" class="chat-image ai-image"/><div class="caption">Photo</div></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatHTML(tt.input); got != tt.want {
				t.Errorf("FormatHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatLinks(t *testing.T) {
	got := FormatLinks("see ![Photo](https://example.com/x.jpg)")
	want := `see <a href="https://example.com/x.jpg">Photo</a>`
	if got != want {
		t.Errorf("FormatLinks = %q, want %q", got, want)
	}
}

func TestFormatIdempotentOnPlainText(t *testing.T) {
	inputs := []string{
		"just words",
		"punctuation, too! ok?",
		"numbers 123 and caps ABC",
	}
	for _, s := range inputs {
		once := FormatHTML(s)
		twice := FormatHTML(once)
		if once != twice {
			t.Errorf("FormatHTML not idempotent on %q: %q != %q", s, once, twice)
		}
	}
}

func TestStripForExport(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text with allowed punctuation",
			input: "Hello, world! Ready?",
			want:  "Hello, world! Ready?",
		},
		{
			name:  "emoji stripped",
			input: "Trip to Rome 🌍!",
			want:  "Trip to Rome !",
		},
		{
			name:  "bold markers stripped",
			input: "**total**",
			want:  "total",
		},
		{
			name:  "image token flattened then sanitized",
			input: "![Photo](url)",
			want:  "Photo url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripForExport(tt.input); got != tt.want {
				t.Errorf("StripForExport(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
