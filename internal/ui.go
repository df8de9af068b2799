package internal

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	userBubbleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("178")).
			Padding(0, 1).
			Align(lipgloss.Right)

	botBubbleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Fprintln(os.Stderr, successStyle.Render("✓ "+message))
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+message))
}

// RenderMessage renders one chat message as a terminal bubble with the
// sender label and clock time.
func RenderMessage(msg Message) string {
	label := SenderLabel(msg.Sender)
	header := label
	if t := FormatTime(msg.Timestamp); t != "" {
		header = fmt.Sprintf("%s %s", label, timeStyle.Render("("+t+")"))
	}

	body := msg.Content
	if msg.File != "" {
		body = fmt.Sprintf("[%s] %s", msg.FileType, msg.File)
	}

	style := botBubbleStyle
	if msg.Sender == SenderUser {
		style = userBubbleStyle
	}
	return header + "\n" + style.Render(body)
}

// RenderTurn renders a turn's query and, when present, its response.
func RenderTurn(turn Turn) string {
	var parts []string
	parts = append(parts, RenderMessage(turn.Query))
	if turn.Response != nil {
		parts = append(parts, RenderMessage(*turn.Response))
	}
	return strings.Join(parts, "\n")
}
