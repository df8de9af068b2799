package export

import (
	"fmt"
	"io"
)

// MarkdownExporter renders documents as Markdown
type MarkdownExporter struct{}

// Export writes the document as Markdown: header lines become bold, body
// lines plain, with a horizontal rule between pages.
func (e *MarkdownExporter) Export(doc *Document, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# %s\n\n", doc.Title)

	for i, page := range doc.Pages {
		if i > 0 {
			_, _ = fmt.Fprintf(w, "\n---\n\n")
		}
		for _, line := range page.Lines {
			if line.FontSize >= HeaderFontSize {
				_, _ = fmt.Fprintf(w, "**%s**\n\n", line.Text)
			} else {
				_, _ = fmt.Fprintf(w, "%s\n", line.Text)
			}
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
