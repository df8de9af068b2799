package export

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders documents as PDF pages
type PDFExporter struct{}

// Export renders every page of the document into a PDF and writes it out.
// Line positions are already resolved by the encoder; this backend only
// places text.
func (e *PDFExporter) Export(doc *Document, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)

	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, line := range page.Lines {
			pdf.SetFont("Helvetica", "", line.FontSize)
			pdf.Text(line.X, line.Y, line.Text)
		}
	}

	return pdf.Output(w)
}

// Extension returns the file extension for this format
func (e *PDFExporter) Extension() string {
	return "pdf"
}
