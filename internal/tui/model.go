package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/huh"

	"agridesk/internal/app"
	"agridesk/internal/config"
	"agridesk/internal/events"
)

// mode is the current interaction state of the dashboard
type mode int

const (
	modeNormal mode = iota
	modeHelp
	modeNotifications
	modeExportForm
	modeImportForm
)

// Model represents the application state for the TUI
type Model struct {
	app  *app.App
	keys config.KeyMappings

	// Module tabs
	modules []string
	active  int
	tables  map[string]table.Model

	// Interaction state
	mode        mode
	form        *huh.Form
	formFormat  string
	formPath    string
	notifCursor int

	// Bus subscription feeding live updates
	eventCh     <-chan events.Event
	cancelEvent func()

	// Cached glamour render of the help screen
	helpView string

	width  int
	height int
}

// InitialModel creates the dashboard model over the app container
func InitialModel(a *app.App) Model {
	ch, cancel := a.Bus.Subscribe()

	m := Model{
		app:         a,
		keys:        a.Config.KeyMappings,
		modules:     a.Hub.ActiveModules(),
		tables:      make(map[string]table.Model),
		eventCh:     ch,
		cancelEvent: cancel,
	}
	for _, name := range m.modules {
		m.tables[name] = m.buildTable(name, 0)
	}
	return m
}

// Init starts the event pump and the periodic sync timer
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForEvent(m.eventCh)}
	if interval := m.app.Config.SyncInterval(); interval > 0 {
		cmds = append(cmds, syncTick(interval))
	}
	return tea.Batch(cmds...)
}

// activeModule returns the name of the selected tab, or "" with no modules
func (m Model) activeModule() string {
	if len(m.modules) == 0 {
		return ""
	}
	return m.modules[m.active]
}
