package internal

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	boldPattern  = regexp.MustCompile(`\*\*(.*?)\*\*`)
	imagePattern = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
	// Export output is restricted to letters, digits, whitespace and basic
	// punctuation; everything else (emoji, markup remnants) is dropped.
	exportCharset = regexp.MustCompile(`[^a-zA-Z0-9\s.,!?]`)
)

// FormatHTML converts the chatbot's lightweight markup into HTML for
// image-capable surfaces: **bold** spans, paragraph/line breaks, and
// ![caption](url) tokens rendered as inline images with a caption.
func FormatHTML(content string) string {
	html := formatBase(content)
	return imagePattern.ReplaceAllStringFunc(html, func(match string) string {
		parts := imagePattern.FindStringSubmatch(match)
		return fmt.Sprintf(`<div><img src=%q class="chat-image ai-image"/><div class="caption">%s</div></div>`, parts[2], parts[1])
	})
}

// FormatLinks is the link-only dialect: identical to FormatHTML except that
// image tokens become clickable links labeled with the caption.
func FormatLinks(content string) string {
	html := formatBase(content)
	return imagePattern.ReplaceAllStringFunc(html, func(match string) string {
		parts := imagePattern.FindStringSubmatch(match)
		return fmt.Sprintf(`<a href=%q>%s</a>`, parts[2], parts[1])
	})
}

func formatBase(content string) string {
	html := boldPattern.ReplaceAllString(content, "<b>$1</b>")
	html = strings.ReplaceAll(html, "\n\n", "<br><br>")
	return strings.ReplaceAll(html, "\n", "<br>")
}

// StripForExport flattens content to the plain-text form the export encoder
// accepts: image tokens become "caption (url)" and any character outside the
// export charset is removed.
func StripForExport(content string) string {
	text := imagePattern.ReplaceAllString(content, "$1 ($2)")
	return exportCharset.ReplaceAllString(text, "")
}
