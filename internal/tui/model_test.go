package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"agridesk/internal/app"
	"agridesk/internal/config"
	"agridesk/internal/types"
)

func testModel(t *testing.T) Model {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AGRIDESK_THEME_FILE", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load() error: %v", err)
	}
	a := app.New(cfg,
		app.WithExportDir(t.TempDir()),
		app.WithOpener(func(string) error { return nil }),
	)
	return InitialModel(a)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func resize(m Model, w, h int) Model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(Model)
}

func TestInitialModelBuildsAllModuleTables(t *testing.T) {
	m := testModel(t)

	if len(m.modules) != 4 {
		t.Fatalf("got %d modules, want 4", len(m.modules))
	}
	for _, name := range m.modules {
		if _, ok := m.tables[name]; !ok {
			t.Errorf("no table built for module %s", name)
		}
	}
}

func TestTabCyclingWrapsAround(t *testing.T) {
	m := testModel(t)

	for i := 0; i < len(m.modules); i++ {
		updated, _ := m.Update(key("l"))
		m = updated.(Model)
	}
	if m.active != 0 {
		t.Errorf("active = %d after a full cycle, want 0", m.active)
	}

	updated, _ := m.Update(key("h"))
	m = updated.(Model)
	if m.active != len(m.modules)-1 {
		t.Errorf("active = %d after prev from first, want last", m.active)
	}
}

func TestViewShowsTabsAndStatusBar(t *testing.T) {
	m := resize(testModel(t), 160, 48)

	out := m.View()
	for _, name := range []string{"cultures", "parcelles", "finances", "statistiques"} {
		if !strings.Contains(out, name) {
			t.Errorf("view missing module tab %q", name)
		}
	}
	if !strings.Contains(out, "non lue") {
		t.Error("view missing unread counter")
	}
}

func TestHelpModeRendersAndCloses(t *testing.T) {
	m := resize(testModel(t), 120, 40)

	updated, _ := m.Update(key("?"))
	m = updated.(Model)
	if m.mode != modeHelp {
		t.Fatalf("mode = %v, want help", m.mode)
	}
	if !strings.Contains(m.View(), "Agridesk") {
		t.Error("help view missing title")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.mode != modeNormal {
		t.Errorf("mode = %v after esc, want normal", m.mode)
	}
}

func TestNotificationPanelMarksRead(t *testing.T) {
	m := resize(testModel(t), 120, 40)
	center := m.app.Hub.Notifier()
	center.Add("Test", "message", types.SeverityInfo)
	unreadBefore := center.UnreadCount()

	updated, _ := m.Update(key("n"))
	m = updated.(Model)
	if m.mode != modeNotifications {
		t.Fatalf("mode = %v, want notifications", m.mode)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if got := center.UnreadCount(); got != unreadBefore-1 {
		t.Errorf("unread = %d, want %d", got, unreadBefore-1)
	}
}

func TestBarChartScalesBars(t *testing.T) {
	records := []types.Record{
		types.NewRecord(
			types.Field{Key: "name", Value: "Blé"},
			types.Field{Key: "surface_totale", Value: 40.0},
		),
		types.NewRecord(
			types.Field{Key: "name", Value: "Maïs"},
			types.Field{Key: "surface_totale", Value: 20.0},
		),
	}

	out := BarChart("Surfaces", records, "name", "surface_totale", 80)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want title + 2 bars", len(lines))
	}
	bigger := strings.Count(lines[1], "█")
	smaller := strings.Count(lines[2], "█")
	if bigger <= smaller {
		t.Errorf("bar lengths not scaled: %d vs %d", bigger, smaller)
	}
}

func TestBarChartSkipsNonNumericValues(t *testing.T) {
	records := []types.Record{
		types.NewRecord(
			types.Field{Key: "name", Value: "x"},
			types.Field{Key: "surface_totale", Value: "pas un nombre"},
		),
	}
	if out := BarChart("t", records, "name", "surface_totale", 80); out != "" {
		t.Errorf("chart with no numeric values should be empty, got %q", out)
	}
}
