package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"agridesk/internal/events"
	"agridesk/internal/export"
	"agridesk/internal/hub"
	"agridesk/internal/types"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refreshAllTables()
		if m.mode == modeHelp {
			m.helpView = renderHelp(m.keys, m.width)
		}
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m, nil

	case eventMsg:
		return m.handleEvent(events.Event(msg))

	case syncTickMsg:
		cmds := []tea.Cmd{runSync(m.app.Hub)}
		if interval := m.app.Config.SyncInterval(); interval > 0 {
			cmds = append(cmds, syncTick(interval))
		}
		return m, tea.Batch(cmds...)

	case opSettledMsg:
		// Tables refresh through dataset events; nothing more to do here
		return m, nil
	}

	switch m.mode {
	case modeExportForm, modeImportForm:
		return m.updateForm(msg)
	case modeHelp:
		return m.updateHelp(msg)
	case modeNotifications:
		return m.updateNotifications(msg)
	default:
		return m.updateNormal(msg)
	}
}

// handleEvent reacts to hub changes pushed over the bus
func (m Model) handleEvent(ev events.Event) (tea.Model, tea.Cmd) {
	switch ev.Type {
	case events.EventDatasetChanged:
		if ev.Module != "" {
			m.refreshTable(ev.Module)
		} else {
			m.refreshAllTables()
		}
	case events.EventSyncFinished:
		m.refreshAllTables()
	case events.EventNotification:
		// Status bar reads the center directly; the redraw is enough
	}
	return m, waitForEvent(m.eventCh)
}

// updateNormal handles keyboard input on the dashboard itself
func (m Model) updateNormal(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case m.keys.Quit, "ctrl+c":
		m.cancelEvent()
		return m, tea.Quit

	case m.keys.ShowHelp:
		m.mode = modeHelp
		m.helpView = renderHelp(m.keys, m.width)
		return m, nil

	case m.keys.Notifications:
		m.mode = modeNotifications
		m.notifCursor = 0
		return m, nil

	case m.keys.NextModule, "right", "tab":
		if len(m.modules) > 0 {
			m.active = (m.active + 1) % len(m.modules)
			m.refreshTable(m.activeModule())
		}
		return m, nil

	case m.keys.PrevModule, "left", "shift+tab":
		if len(m.modules) > 0 {
			m.active = (m.active - 1 + len(m.modules)) % len(m.modules)
			m.refreshTable(m.activeModule())
		}
		return m, nil

	case m.keys.NextRow, "down":
		t := m.tables[m.activeModule()]
		t.MoveDown(1)
		m.tables[m.activeModule()] = t
		return m, nil

	case m.keys.PrevRow, "up":
		t := m.tables[m.activeModule()]
		t.MoveUp(1)
		m.tables[m.activeModule()] = t
		return m, nil

	case m.keys.Export:
		return m.openExportForm()

	case m.keys.Import:
		return m.openImportForm()

	case m.keys.Print:
		out := m.app.Hub.PrintModuleData(m.activeModule(), hub.PrintOptions{})
		return m, awaitOutcome(out)

	case m.keys.Sync:
		return m, runSync(m.app.Hub)
	}
	return m, nil
}

// updateHelp handles input on the help screen
func (m Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case m.keys.ShowHelp, m.keys.Quit, "esc", "enter", " ":
			m.mode = modeNormal
		}
	}
	return m, nil
}

// updateNotifications handles input on the notification panel
func (m Model) updateNotifications(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	center := m.app.Hub.Notifier()
	list := center.List()

	clampCursor := func() {
		if m.notifCursor >= len(list) {
			m.notifCursor = len(list) - 1
		}
		if m.notifCursor < 0 {
			m.notifCursor = 0
		}
	}

	switch keyMsg.String() {
	case m.keys.Notifications, m.keys.Quit, "esc":
		m.mode = modeNormal

	case m.keys.NextRow, "down":
		m.notifCursor++
		clampCursor()

	case m.keys.PrevRow, "up":
		m.notifCursor--
		clampCursor()

	case m.keys.MarkRead:
		if len(list) > 0 {
			clampCursor()
			center.MarkAsRead(list[m.notifCursor].ID)
		}

	case m.keys.MarkAllRead:
		center.MarkAllAsRead()

	case m.keys.DeleteNotification:
		if len(list) > 0 {
			clampCursor()
			center.Delete(list[m.notifCursor].ID)
			clampCursor()
		}

	case m.keys.ClearNotifications:
		center.Clear()
		m.notifCursor = 0
	}
	return m, nil
}

// fireExport launches the export chosen in the form
func (m Model) fireExport() tea.Cmd {
	format, err := export.ParseFormat(m.formFormat)
	if err != nil {
		m.app.Hub.Notifier().Add("Export", err.Error(), types.SeverityError)
		return nil
	}
	return awaitOutcome(m.app.Hub.ExportModuleData(m.activeModule(), format, nil))
}

// fireImport launches the import of the file path typed in the form
func (m Model) fireImport() tea.Cmd {
	module := m.activeModule()
	path := m.formPath

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			m.app.Hub.Notifier().Add(
				fmt.Sprintf("Import %s", module),
				fmt.Sprintf("cannot open %s: %v", path, err),
				types.SeverityError,
			)
			return opSettledMsg{ok: false}
		}
		defer f.Close()
		return opSettledMsg{ok: m.app.Hub.ImportModuleData(module, f).Wait()}
	}
}
