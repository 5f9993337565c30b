package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"agridesk/internal/tui/theme"
	"agridesk/internal/types"
)

const (
	minColumnWidth     = 8
	defaultColumnWidth = 18
)

// buildTable creates the table for one module from the hub's current data
func (m Model) buildTable(name string, width int) table.Model {
	cols := m.app.Hub.ModuleColumns(name)
	ds := m.app.Hub.GetModuleData(name)

	// Modules registered without a projection show their raw record shape
	if len(cols) == 0 && len(ds.Items) > 0 {
		for _, key := range ds.Items[0].Keys() {
			cols = append(cols, types.Column{Key: key, Header: key})
		}
	}

	colWidth := defaultColumnWidth
	if width > 0 && len(cols) > 0 {
		colWidth = max(minColumnWidth, width/len(cols)-2)
	}

	tableCols := make([]table.Column, len(cols))
	for i, c := range cols {
		tableCols[i] = table.Column{Title: c.Header, Width: colWidth}
	}

	rows := make([]table.Row, len(ds.Items))
	for i, rec := range ds.Items {
		row := make(table.Row, len(cols))
		for j, c := range cols {
			v, _ := rec.Get(c.Key)
			row[j] = types.FormatScalar(v)
		}
		rows[i] = row
	}

	t := table.New(
		table.WithColumns(tableCols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color(theme.TableHeader))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(theme.Text)).
		Background(lipgloss.Color(theme.SelectedBg)).
		Bold(false)
	t.SetStyles(s)

	return t
}

// refreshTable rebuilds one module's table, keeping the cursor in place
func (m *Model) refreshTable(name string) {
	old, had := m.tables[name]
	t := m.buildTable(name, m.width)
	if had {
		cursor := old.Cursor()
		if cursor < len(t.Rows()) {
			t.SetCursor(cursor)
		}
	}
	m.tables[name] = t
}

// refreshAllTables rebuilds every module table (resize, sync completion)
func (m *Model) refreshAllTables() {
	for _, name := range m.modules {
		m.refreshTable(name)
	}
}

// tableHeight is the vertical budget left after tabs and status bar
func (m Model) tableHeight() int {
	h := m.height - 7
	if m.activeModule() == "statistiques" {
		// Leave room for the bar chart under the table
		h -= chartHeight(len(m.app.Hub.GetModuleData("statistiques").Items))
	}
	if h < 3 {
		h = 3
	}
	return h
}
