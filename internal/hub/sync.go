package hub

import (
	"fmt"
	"log/slog"

	"agridesk/internal/events"
	"agridesk/internal/types"
)

// SyncAll runs one refresh pass over the active module set. A second call
// while a pass is in flight is a no-op, never queued. Each module's resolver
// runs in isolation: one failing module does not abort the others, and the
// refreshing flag is always cleared when the pass settles.
func (h *Hub) SyncAll() {
	h.mu.Lock()
	if h.refreshing {
		h.mu.Unlock()
		slog.Debug("sync already in flight, ignoring request")
		return
	}
	h.refreshing = true
	modules := make([]Module, 0, len(h.order))
	for _, name := range h.order {
		modules = append(modules, h.modules[name])
	}
	h.mu.Unlock()

	failed := make(map[string]error)
	refreshed := 0

	defer func() {
		h.mu.Lock()
		h.lastSync = h.now()
		h.refreshing = false
		h.mu.Unlock()

		if len(failed) == 0 {
			msg := fmt.Sprintf("%d module(s) refreshed", refreshed)
			h.notifier.Add("Synchronisation", msg, types.SeverityInfo)
		} else {
			msg := fmt.Sprintf("failed modules: %s", sortedFailures(failed))
			h.notifier.Add("Synchronisation", msg, types.SeverityWarning)
		}
		h.bus.Publish(events.EventSyncFinished, "")
	}()

	for _, m := range modules {
		if err := h.refreshModule(m); err != nil {
			slog.Warn("module refresh failed", "module", m.Name, "error", err)
			failed[m.Name] = err
			continue
		}
		refreshed++
	}
}

// refreshModule re-resolves one module's dataset. Modules without a
// resolver have no backing source to recompute from; their refresh is a
// successful no-op. Resolver panics surface as errors, not crashes.
func (h *Hub) refreshModule(m Module) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("resolver panicked: %v", r)
		}
	}()

	if m.Resolve == nil {
		return nil
	}
	records, err := m.Resolve(h)
	if err != nil {
		return err
	}
	h.registry.replace(m.Name, records)
	h.bus.Publish(events.EventDatasetChanged, m.Name)
	return nil
}
