// Package watch turns the inbox directory into an import surface: a file
// dropped as <module>.csv is parsed and merged into that module.
package watch

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"agridesk/internal/hub"
)

// settleDelay gives the writing process time to finish before the file is
// read. Editors and file managers emit several events per drop.
const settleDelay = 200 * time.Millisecond

// Importer is the slice of the hub the watcher needs.
type Importer interface {
	ImportModuleData(moduleName string, src io.Reader) *hub.Outcome
	ActiveModules() []string
}

// Watcher watches one inbox directory and feeds dropped files to the hub.
type Watcher struct {
	dir string
	hub Importer
	fw  *fsnotify.Watcher

	mu   sync.Mutex
	seen map[string]time.Time
}

// New creates the inbox directory if needed and starts watching it.
func New(dir string, imp Importer) (*Watcher, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{
		dir:  dir,
		hub:  imp,
		fw:   fw,
		seen: make(map[string]time.Time),
	}, nil
}

// Run processes events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	slog.Info("watching import inbox", "dir", w.dir)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !w.claim(ev.Name) {
				continue
			}
			go w.process(ev.Name)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			slog.Warn("inbox watcher error", "error", err)
		}
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

// claim dedupes the event burst a single drop produces.
func (w *Watcher) claim(path string) bool {
	if ModuleForFile(path) == "" {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.seen[path]; ok && time.Since(t) < time.Second {
		return false
	}
	w.seen[path] = time.Now()
	return true
}

func (w *Watcher) process(path string) {
	time.Sleep(settleDelay)

	module := ModuleForFile(path)
	if !w.knownModule(module) {
		slog.Warn("inbox file does not match a module, ignoring", "file", path)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		slog.Error("failed to open inbox file", "file", path, "error", err)
		return
	}
	ok := w.hub.ImportModuleData(module, f).Wait()
	f.Close()

	if ok {
		// Consumed: a processed drop must not re-import on restart
		if err := os.Remove(path); err != nil {
			slog.Warn("failed to remove consumed inbox file", "file", path, "error", err)
		}
	}
	slog.Info("inbox import finished", "file", path, "module", module, "success", ok)
}

func (w *Watcher) knownModule(name string) bool {
	for _, m := range w.hub.ActiveModules() {
		if m == name {
			return true
		}
	}
	return false
}

// ModuleForFile maps an inbox path to the target module name, or "" when
// the file is not a CSV drop.
func ModuleForFile(path string) string {
	base := filepath.Base(path)
	if !strings.EqualFold(filepath.Ext(base), ".csv") {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
