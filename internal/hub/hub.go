// Package hub is the process-wide coordinator for the dashboard's datasets:
// it registers the modules the screens display, keeps them synchronized,
// exports and imports their records, and reports operation outcomes through
// the notification center. It is constructed once at startup and passed by
// reference to every consumer.
package hub

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"agridesk/internal/events"
	"agridesk/internal/export"
	"agridesk/internal/hub/notify"
	"agridesk/internal/importer"
	"agridesk/internal/types"
)

// ResolveFunc deterministically recomputes a module's records during a sync
// pass, typically from other modules' data. Modules without one are
// refreshed as a no-op.
type ResolveFunc func(h *Hub) ([]types.Record, error)

// Module describes one registered dataset: its name, the column projection
// used for exports/imports, and an optional sync resolver.
type Module struct {
	Name    string
	Columns []types.Column
	Resolve ResolveFunc
}

// Options wires a Hub's collaborators. Nil fields get working defaults.
type Options struct {
	Bus      *events.Bus
	Notifier *notify.Center
	Exporter *export.Engine
	Importer *importer.Engine
	Clock    func() time.Time
}

// Hub is the facade every screen talks to. All dataset and notification
// mutation flows through its operation methods.
type Hub struct {
	registry *registry
	notifier *notify.Center
	bus      *events.Bus
	exporter *export.Engine
	importer *importer.Engine
	now      func() time.Time

	mu         sync.Mutex
	modules    map[string]Module
	order      []string
	refreshing bool
	lastSync   time.Time
}

// New constructs the hub. Exporter may be nil for consumers that never
// export (tests, watchers).
func New(opts Options) *Hub {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.NewCenter(opts.Bus)
	}
	if opts.Importer == nil {
		opts.Importer = importer.NewEngine()
	}
	return &Hub{
		registry: newRegistry(opts.Clock),
		notifier: opts.Notifier,
		bus:      opts.Bus,
		exporter: opts.Exporter,
		importer: opts.Importer,
		now:      opts.Clock,
		modules:  make(map[string]Module),
	}
}

// RegisterModule adds a module to the active set and seeds its dataset.
// Re-registering a name replaces its definition and seed.
func (h *Hub) RegisterModule(m Module, seed []types.Record) {
	h.mu.Lock()
	if _, ok := h.modules[m.Name]; !ok {
		h.order = append(h.order, m.Name)
	}
	h.modules[m.Name] = m
	h.mu.Unlock()

	h.registry.replace(m.Name, seed)
	h.bus.Publish(events.EventDatasetChanged, m.Name)
}

// GetModuleData returns a copy of the named dataset. Unknown names never
// fail; they resolve to an empty dataset.
func (h *Hub) GetModuleData(name string) types.Dataset {
	return h.registry.get(name)
}

// UpdateModuleData replaces the dataset's items with ds.Items and bumps its
// modification time, then tells the other screens.
func (h *Hub) UpdateModuleData(name string, ds types.Dataset) {
	h.registry.replace(name, ds.Items)
	h.bus.Publish(events.EventDatasetChanged, name)
}

// ModuleColumns returns the registered column projection for a module, or
// nil for unknown modules.
func (h *Hub) ModuleColumns(name string) []types.Column {
	h.mu.Lock()
	defer h.mu.Unlock()
	m, ok := h.modules[name]
	if !ok {
		return nil
	}
	cols := make([]types.Column, len(m.Columns))
	copy(cols, m.Columns)
	return cols
}

// ActiveModules returns the registered module names in registration order.
func (h *Hub) ActiveModules() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.order))
	copy(out, h.order)
	return out
}

// Notifier exposes the notification center for the notification UI.
func (h *Hub) Notifier() *notify.Center {
	return h.notifier
}

// LastSync returns when the last sync pass finished (zero before the first).
func (h *Hub) LastSync() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastSync
}

// Refreshing reports whether a sync pass is in flight.
func (h *Hub) Refreshing() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.refreshing
}

// ExportModuleData produces a downloadable artifact for a module. Records
// come from custom when supplied, else from the registry. The outcome
// settles once the artifact is written (or the attempt failed); exactly one
// notification reports the result.
func (h *Hub) ExportModuleData(moduleName string, format export.Format, custom []types.Record) *Outcome {
	title := fmt.Sprintf("Export %s", moduleName)
	return h.async(title, func() (string, error) {
		records := custom
		if records == nil {
			records = h.GetModuleData(moduleName).Items
		}
		path, err := h.exporter.Export(moduleName, format, records, h.ModuleColumns(moduleName))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d record(s) written to %s", len(records), path), nil
	})
}

// ImportModuleData parses src as delimited text and merges the accepted
// records into the module's dataset. Zero accepted records resolve to
// failure and leave the registry untouched.
func (h *Hub) ImportModuleData(moduleName string, src io.Reader) *Outcome {
	out := newOutcome()
	title := fmt.Sprintf("Import %s", moduleName)

	go func() {
		defer h.recoverOp(out, title)

		res, err := h.importer.Parse(src, h.ModuleColumns(moduleName), h.registry.maxID(moduleName)+1)
		if err != nil {
			slog.Error("import failed", "module", moduleName, "error", err)
			h.notifier.Add(title, err.Error(), types.SeverityError)
			out.resolve(false)
			return
		}
		if len(res.Accepted) == 0 {
			msg := fmt.Sprintf("no record accepted (%d line(s) rejected)", res.Rejected)
			h.notifier.Add(title, msg, types.SeverityError)
			out.resolve(false)
			return
		}

		h.registry.merge(moduleName, res.Accepted)
		h.bus.Publish(events.EventDatasetChanged, moduleName)

		msg := fmt.Sprintf("%d record(s) imported", len(res.Accepted))
		severity := types.SeveritySuccess
		if res.Rejected > 0 {
			msg = fmt.Sprintf("%d record(s) imported, %d line(s) rejected", len(res.Accepted), res.Rejected)
			severity = types.SeverityWarning
		}
		h.notifier.Add(title, msg, severity)
		out.resolve(true)
	}()
	return out
}

// PrintOptions tweaks a print job.
type PrintOptions struct {
	Title   string         // document title, defaults to "Impression <module>"
	Columns []types.Column // projection override, defaults to the module's columns
}

// PrintModuleData renders the module as an HTML document and hands it to
// the host's print surface (the platform browser).
func (h *Hub) PrintModuleData(moduleName string, opts PrintOptions) *Outcome {
	if opts.Title == "" {
		opts.Title = fmt.Sprintf("Impression %s", moduleName)
	}
	notifTitle := fmt.Sprintf("Print %s", moduleName)
	return h.async(notifTitle, func() (string, error) {
		records := h.GetModuleData(moduleName).Items
		columns := opts.Columns
		if columns == nil {
			columns = h.ModuleColumns(moduleName)
		}
		if _, err := h.exporter.Print(opts.Title, moduleName, records, columns); err != nil {
			return "", err
		}
		return fmt.Sprintf("%d record(s) sent to the print preview", len(records)), nil
	})
}

// async runs fn off the caller's goroutine, settles the outcome, and emits
// exactly one notification. Panics inside fn become failures, never crashes:
// nothing may propagate past the facade boundary.
func (h *Hub) async(title string, fn func() (string, error)) *Outcome {
	out := newOutcome()
	go func() {
		defer h.recoverOp(out, title)

		msg, err := fn()
		if err != nil {
			slog.Error("hub operation failed", "operation", title, "error", err)
			h.notifier.Add(title, err.Error(), types.SeverityError)
			out.resolve(false)
			return
		}
		h.notifier.Add(title, msg, types.SeveritySuccess)
		out.resolve(true)
	}()
	return out
}

func (h *Hub) recoverOp(out *Outcome, title string) {
	if r := recover(); r != nil {
		slog.Error("hub operation panicked", "operation", title, "panic", r)
		h.notifier.Add(title, fmt.Sprintf("internal error: %v", r), types.SeverityError)
		out.resolve(false)
	}
}

// sortedFailures renders a failure set as a stable, comma-separated list.
func sortedFailures(failed map[string]error) string {
	names := make([]string, 0, len(failed))
	for name := range failed {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
