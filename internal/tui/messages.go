package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"agridesk/internal/events"
	"agridesk/internal/hub"
)

// eventMsg wraps a hub event delivered to the TUI
type eventMsg events.Event

// syncTickMsg fires the periodic refresh pass
type syncTickMsg time.Time

// opSettledMsg reports that an export/import/print outcome resolved
type opSettledMsg struct {
	ok bool
}

// waitForEvent blocks on the bus subscription and forwards one event.
// The update loop re-arms it after each delivery.
func waitForEvent(ch <-chan events.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return eventMsg(ev)
	}
}

// syncTick schedules the next periodic sync
func syncTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return syncTickMsg(t)
	})
}

// awaitOutcome resolves a hub outcome into a message
func awaitOutcome(out *hub.Outcome) tea.Cmd {
	return func() tea.Msg {
		return opSettledMsg{ok: out.Wait()}
	}
}

// runSync kicks a refresh pass off the UI goroutine. Completion arrives as
// a sync_finished bus event, not a message.
func runSync(h *hub.Hub) tea.Cmd {
	return func() tea.Msg {
		h.SyncAll()
		return nil
	}
}
