package export

import (
	"fmt"
	"io"
)

// TextExporter renders documents as plain text
type TextExporter struct{}

// Export writes each page's lines in order, separated by form feeds.
func (e *TextExporter) Export(doc *Document, w io.Writer) error {
	for i, page := range doc.Pages {
		if i > 0 {
			_, _ = fmt.Fprint(w, "\f")
		}
		for _, line := range page.Lines {
			_, _ = fmt.Fprintln(w, line.Text)
		}
	}
	return nil
}

// Extension returns the file extension for this format
func (e *TextExporter) Extension() string {
	return "txt"
}
