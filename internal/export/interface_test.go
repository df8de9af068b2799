package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/wandersync/wandersync-cli/internal"
)

func TestNewExporter(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{"pdf", "pdf", false},
		{"md", "md", false},
		{"markdown", "md", false},
		{"json", "json", false},
		{"txt", "txt", false},
		{"text", "txt", false},
		{"yaml", "yaml", false},
		{"yml", "yaml", false},
		{"docx", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		exporter, err := NewExporter(tt.format)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NewExporter(%q) should fail", tt.format)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewExporter(%q) failed: %v", tt.format, err)
			continue
		}
		if exporter.Extension() != tt.wantExt {
			t.Errorf("NewExporter(%q).Extension() = %q, want %q", tt.format, exporter.Extension(), tt.wantExt)
		}
	}
}

func TestMarkdownExport(t *testing.T) {
	doc := EncodeOne(sampleMessage(1, internal.SenderUser, "Hello"))

	var buf bytes.Buffer
	if err := (&MarkdownExporter{}).Export(doc, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "# message") {
		t.Errorf("missing title: %q", out)
	}
	if !strings.Contains(out, "**You (03:04 PM):**") {
		t.Errorf("header not bold: %q", out)
	}
	if !strings.Contains(out, "Hello") {
		t.Errorf("missing body: %q", out)
	}
}

func TestJSONExportRoundTrip(t *testing.T) {
	doc := EncodeOne(sampleMessage(1, internal.SenderBot, "Hi"))

	var buf bytes.Buffer
	if err := (&JSONExporter{}).Export(doc, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var decoded Document
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Pages) != len(doc.Pages) {
		t.Errorf("page count lost: %d != %d", len(decoded.Pages), len(doc.Pages))
	}
}

func TestTextExportPages(t *testing.T) {
	doc := &Document{
		Title: "t",
		Pages: []Page{
			{Lines: []Line{{Text: "one"}}},
			{Lines: []Line{{Text: "two"}}},
		},
	}

	var buf bytes.Buffer
	if err := (&TextExporter{}).Export(doc, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "one") || !strings.Contains(out, "two") {
		t.Errorf("missing lines: %q", out)
	}
	if strings.Count(out, "\f") != 1 {
		t.Errorf("want one page separator, got %q", out)
	}
}

func TestYAMLExportRoundTrip(t *testing.T) {
	doc := EncodeOne(sampleMessage(1, internal.SenderBot, "Hi"))

	var buf bytes.Buffer
	if err := (&YAMLExporter{}).Export(doc, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var decoded Document
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(decoded.Pages) != len(doc.Pages) {
		t.Errorf("page count lost: %d != %d", len(decoded.Pages), len(doc.Pages))
	}
}

func TestPDFExportProducesDocument(t *testing.T) {
	doc := EncodeOne(sampleMessage(1, internal.SenderUser, "Hello PDF"))

	var buf bytes.Buffer
	if err := (&PDFExporter{}).Export(doc, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not look like a PDF: %q", buf.Bytes()[:8])
	}
}
