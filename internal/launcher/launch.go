package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"agridesk/internal/app"
	"agridesk/internal/config"
	"agridesk/internal/logging"
	"agridesk/internal/tui"
	"agridesk/internal/tui/theme"
	"agridesk/internal/watch"
)

// Launch starts the TUI application
func Launch() error {
	// Initialize logging to file before anything else
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	theme.Init(cfg.ColorScheme)

	application := app.New(cfg)

	// Watch the inbox directory for dropped CSV files (optional - the
	// dashboard works fine without it)
	if cfg.InboxDir != "" {
		watcher, err := watch.New(cfg.InboxDir, application.Hub)
		if err != nil {
			slog.Warn("inbox watcher unavailable", "dir", cfg.InboxDir, "error", err)
		} else {
			go watcher.Run(ctx)
			defer func() {
				if err := watcher.Close(); err != nil {
					slog.Error("error closing inbox watcher", "error", err)
				}
			}()
		}
	}

	p := tea.NewProgram(
		tui.InitialModel(application),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
	}

	return nil
}
