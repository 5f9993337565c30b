package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"agridesk/internal/tui/notifications"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() string {
	// Wait for terminal size to be initialized
	if m.width == 0 {
		return "Chargement..."
	}

	if m.mode == modeHelp {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			panelStyle().Render(m.helpView),
		)
	}

	if (m.mode == modeExportForm || m.mode == modeImportForm) && m.form != nil {
		formBox := panelStyle().
			Width(m.width / 2).
			Render(m.form.View())
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			formBox,
		)
	}

	if m.mode == modeNotifications {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			m.viewNotificationPanel(),
		)
	}

	sections := []string{m.viewTabs(), m.viewContent(), m.viewStatusBar()}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewTabs renders the module tab row
func (m Model) viewTabs() string {
	tabs := make([]string, 0, len(m.modules))
	for i, name := range m.modules {
		if i == m.active {
			tabs = append(tabs, activeTabStyle().Render(name))
		} else {
			tabs = append(tabs, tabStyle().Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// viewContent renders the active module's table, plus the surface chart on
// the statistiques screen
func (m Model) viewContent() string {
	name := m.activeModule()
	if name == "" {
		return mutedStyle().Render("Aucun module enregistré")
	}

	t, ok := m.tables[name]
	if !ok {
		return ""
	}
	content := t.View()

	if name == "statistiques" {
		chart := BarChart(
			"Surface par culture (ha)",
			m.app.Hub.GetModuleData(name).Items,
			"name", "surface_totale",
			m.width,
		)
		if chart != "" {
			content = lipgloss.JoinVertical(lipgloss.Left, content, "", chart)
		}
	}
	return content
}

// viewStatusBar renders sync state, the latest notification and the unread count
func (m Model) viewStatusBar() string {
	var left string
	if m.app.Hub.Refreshing() {
		left = "sync en cours…"
	} else if last := m.app.Hub.LastSync(); !last.IsZero() {
		left = "sync " + last.Format("15:04:05")
	} else {
		left = "jamais synchronisé"
	}

	middle := ""
	if latest, ok := m.app.Hub.Notifier().Latest(); ok && !latest.Read {
		middle = notifications.RenderInline(latest)
	}

	right := fmt.Sprintf("🔔 %d non lue(s)  %s:aide", m.app.Hub.Notifier().UnreadCount(), m.keys.ShowHelp)

	bar := statusBarStyle().Render(left)
	gap := m.width - lipgloss.Width(bar) - lipgloss.Width(middle) - lipgloss.Width(right) - 1
	if gap < 1 {
		gap = 1
	}
	return bar + middle + strings.Repeat(" ", gap) + mutedStyle().Render(right)
}

// viewNotificationPanel renders the dismissible notification list
func (m Model) viewNotificationPanel() string {
	center := m.app.Hub.Notifier()
	list := center.List()

	title := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("Notifications (%d non lue(s))", center.UnreadCount()),
	)

	if len(list) == 0 {
		return panelStyle().Render(title + "\n\n" + mutedStyle().Render("Aucune notification"))
	}

	lines := make([]string, 0, len(list)+2)
	lines = append(lines, title, "")
	for i, n := range list {
		marker := "  "
		if !n.Read {
			marker = "● "
		}
		line := fmt.Sprintf("%s%s  %s — %s", marker, n.Date.Format("15:04"), n.Title, n.Message)
		line = truncate(line, m.width*2/3)

		styled := mutedStyle().Render(line)
		if !n.Read {
			styled = unreadStyle().Render(line)
		}
		if i == m.notifCursor {
			styled = selectedLineStyle().Render(line)
		}
		lines = append(lines, styled)
	}
	lines = append(lines, "", mutedStyle().Render(
		fmt.Sprintf("%s:lire  %s:tout lire  %s:supprimer  %s:vider  esc:fermer",
			m.keys.MarkRead, m.keys.MarkAllRead, m.keys.DeleteNotification, m.keys.ClearNotifications),
	))

	return panelStyle().Render(strings.Join(lines, "\n"))
}
