// Package export encodes conversation turns into paginated documents and
// renders them to portable formats.
package export

import (
	"strings"

	"github.com/wandersync/wandersync-cli/internal"
)

// Layout constants of the reference rendering (A4 portrait, millimeter
// units): text wraps at 180 units, the cursor starts at 20, each body line
// advances 7, a page breaks past 280.
const (
	PageWidth      = 210.0
	PageHeight     = 297.0
	LeftMargin     = 20.0
	TopMargin      = 20.0
	MaxY           = 280.0
	WrapWidth      = 180.0
	LineHeight     = 7.0
	HeaderAdvance  = 10.0
	MessageGap     = 5.0
	HeaderFontSize = 12.0
	BodyFontSize   = 10.0

	// Approximate glyph advance at body size, used to map the unit wrap
	// width onto a character column count.
	charUnits = 2.0
)

// Line is one positioned text line in a document.
type Line struct {
	Text     string  `json:"text"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	FontSize float64 `json:"font_size"`
}

// Page is one page of positioned lines.
type Page struct {
	Lines []Line `json:"lines"`
}

// Document is a paginated, deterministic rendering of one or more messages.
type Document struct {
	Title  string  `json:"title"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Pages  []Page  `json:"pages"`
}

// Encoder lays messages out into a Document. Page breaks only relocate
// lines, never drop them.
type Encoder struct {
	doc  *Document
	page Page
	y    float64
}

// NewEncoder creates an encoder with an empty first page.
func NewEncoder(title string) *Encoder {
	return &Encoder{
		doc: &Document{Title: title, Width: PageWidth, Height: PageHeight},
		y:   TopMargin,
	}
}

// EncodeOne lays out a single message document.
func EncodeOne(msg internal.Message) *Document {
	enc := NewEncoder("message")
	enc.writeMessage(msg)
	return enc.Finish()
}

// EncodeSession lays out a flat message sequence, one message after another
// with the standard gap.
func EncodeSession(messages []internal.Message) *Document {
	enc := NewEncoder("chat-conversation")
	for _, msg := range messages {
		enc.writeMessage(msg)
	}
	return enc.Finish()
}

// EncodeMany lays out turns in original order, query then response, with
// the standard gap between messages.
func EncodeMany(turns []internal.Turn) *Document {
	enc := NewEncoder("chat-history")
	for _, turn := range turns {
		enc.writeMessage(turn.Query)
		if turn.Response != nil {
			enc.writeMessage(*turn.Response)
		}
	}
	return enc.Finish()
}

// Finish closes the current page and returns the document.
func (e *Encoder) Finish() *Document {
	if len(e.page.Lines) > 0 {
		e.doc.Pages = append(e.doc.Pages, e.page)
		e.page = Page{}
	}
	if len(e.doc.Pages) == 0 {
		e.doc.Pages = []Page{{}}
	}
	return e.doc
}

func (e *Encoder) writeMessage(msg internal.Message) {
	content := internal.StripForExport(msg.Content)
	lines := WrapText(content, WrapWidth)

	// Keep the header with at least the first body line.
	if e.y+float64(len(lines))*LineHeight > MaxY {
		e.breakPage()
	}

	header := internal.SenderLabel(msg.Sender) + " (" + internal.FormatTime(msg.Timestamp) + "):"
	e.writeLine(header, HeaderFontSize)
	e.y += HeaderAdvance

	for _, line := range lines {
		if e.y > MaxY {
			e.breakPage()
		}
		e.writeLine(line, BodyFontSize)
		e.y += LineHeight
	}

	e.y += MessageGap
}

func (e *Encoder) writeLine(text string, fontSize float64) {
	e.page.Lines = append(e.page.Lines, Line{
		Text:     text,
		X:        LeftMargin,
		Y:        e.y,
		FontSize: fontSize,
	})
}

func (e *Encoder) breakPage() {
	e.doc.Pages = append(e.doc.Pages, e.page)
	e.page = Page{}
	e.y = TopMargin
}

// WrapText wraps text to the given unit width, breaking at spaces where
// possible and hard-breaking words longer than a full line. Existing
// newlines also break lines.
func WrapText(text string, width float64) []string {
	maxChars := int(width / charUnits)
	if maxChars < 1 {
		maxChars = 1
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(paragraph, maxChars)...)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

func wrapParagraph(paragraph string, maxChars int) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		for len(word) > maxChars {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, word[:maxChars])
			word = word[maxChars:]
		}
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= maxChars:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
