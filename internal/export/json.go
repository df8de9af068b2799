package export

import (
	"encoding/json"
	"io"
)

// JSONExporter exports documents as JSON (pretty-printed)
type JSONExporter struct{}

// Export writes the full document structure, pages and line positions
// included.
func (e *JSONExporter) Export(doc *Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
