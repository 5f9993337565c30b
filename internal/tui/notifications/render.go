package notifications

import (
	"github.com/charmbracelet/lipgloss"

	"agridesk/internal/types"
)

// Render renders a notification banner based on severity level
func Render(n types.Notification) string {
	style := styleFor(n.Severity)

	headerText := style.icon + " " + style.title
	if n.Title != "" {
		headerText = style.icon + " " + n.Title
	}
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(n.Message))

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Width(maxWidth)

	header := headerStyle.Render(headerText)

	messageContent := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Width(maxWidth).
		Render(n.Message)

	content := lipgloss.JoinVertical(lipgloss.Left, header, messageContent)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.borderForeground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}

// RenderInline renders a compact single-line notification (for the status bar)
func RenderInline(n types.Notification) string {
	style := styleFor(n.Severity)

	content := style.icon + " " + n.Message

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}
