// Package app wires the application container: configuration, the event
// bus, and the data hub. It is the single place collaborators are
// constructed, so every consumer receives the same instances by reference.
package app

import (
	"agridesk/internal/config"
	"agridesk/internal/events"
	"agridesk/internal/export"
	"agridesk/internal/hub"
	"agridesk/internal/mock"
	"agridesk/internal/preview"
)

// App holds all application services and provides dependency injection.
type App struct {
	Config *config.Config
	Bus    *events.Bus
	Hub    *hub.Hub
}

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

type appConfig struct {
	exportDir string
	opener    export.Opener
	seed      bool
}

// WithExportDir overrides where export artifacts are written.
func WithExportDir(dir string) Option {
	return func(cfg *appConfig) { cfg.exportDir = dir }
}

// WithOpener overrides the print-document opener, used by tests.
func WithOpener(open export.Opener) Option {
	return func(cfg *appConfig) { cfg.opener = open }
}

// WithoutSeedData skips registering the demonstration modules.
func WithoutSeedData() Option {
	return func(cfg *appConfig) { cfg.seed = false }
}

// New creates the container. This is the single entry point for building
// the hub and its engines.
func New(cfg *config.Config, opts ...Option) *App {
	ac := appConfig{exportDir: cfg.ExportDir, seed: true}
	for _, opt := range opts {
		opt(&ac)
	}

	bus := events.NewBus()
	renderer := preview.New(cfg.Locale)
	docTheme := preview.Theme{
		Primary:    cfg.ColorScheme.Primary,
		Border:     cfg.ColorScheme.Border,
		Background: cfg.ColorScheme.Background,
		Text:       cfg.ColorScheme.Text,
		Muted:      cfg.ColorScheme.Muted,
	}

	var engineOpts []export.Option
	if ac.opener != nil {
		engineOpts = append(engineOpts, export.WithOpener(ac.opener))
	}
	exporter := export.NewEngine(ac.exportDir, renderer, docTheme, engineOpts...)

	h := hub.New(hub.Options{
		Bus:      bus,
		Exporter: exporter,
	})
	if ac.seed {
		mock.Register(h)
	}

	return &App{
		Config: cfg,
		Bus:    bus,
		Hub:    h,
	}
}
