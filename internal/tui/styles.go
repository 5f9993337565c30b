package tui

import (
	"github.com/charmbracelet/lipgloss"

	"agridesk/internal/tui/theme"
)

// Style definitions for the dashboard UI
// These styles follow Lipgloss conventions for composable terminal styling

// Tab borders - active tab has no bottom border to "open" into content
var activeTabBorder = lipgloss.Border{
	Top:         "─",
	Bottom:      " ",
	Left:        "│",
	Right:       "│",
	TopLeft:     "╭",
	TopRight:    "╮",
	BottomLeft:  "┘",
	BottomRight: "└",
}

var tabBorder = lipgloss.Border{
	Top:         "─",
	Bottom:      "─",
	Left:        "│",
	Right:       "│",
	TopLeft:     "╭",
	TopRight:    "╮",
	BottomLeft:  "┴",
	BottomRight: "┴",
}

// tabStyle defines inactive tabs
func tabStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(lipgloss.Color(theme.Primary)).
		Foreground(lipgloss.Color(theme.Muted)).
		Padding(0, 1)
}

// activeTabStyle defines the selected tab
func activeTabStyle() lipgloss.Style {
	return tabStyle().
		Border(activeTabBorder, true).
		Foreground(lipgloss.Color(theme.Primary)).
		Bold(true)
}

// statusBarStyle renders the bottom bar
func statusBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Background)).
		Background(lipgloss.Color(theme.Primary)).
		Padding(0, 1)
}

// panelStyle frames the notification panel and dialogs
func panelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Primary)).
		Padding(1, 2)
}

// mutedStyle is for secondary text
func mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted))
}

// unreadStyle highlights unread notification lines
func unreadStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text)).Bold(true)
}

// selectedLineStyle marks the cursor line in list panels
func selectedLineStyle() lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(theme.SelectedBg))
}
