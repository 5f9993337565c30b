package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"agridesk/internal/config/colors"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`

	// Locale is the BCP 47 tag used for the preview document ("fr", "en-US")
	Locale string `yaml:"locale"`

	// ExportDir is where export artifacts are written
	ExportDir string `yaml:"export_dir"`

	// InboxDir is watched for dropped <module>.csv files to import
	InboxDir string `yaml:"inbox_dir"`

	// SyncIntervalMinutes drives the periodic refresh pass (0 disables it)
	SyncIntervalMinutes int `yaml:"sync_interval_minutes"`
}

// SyncInterval returns the periodic sync interval, or 0 when disabled.
func (c *Config) SyncInterval() time.Duration {
	if c.SyncIntervalMinutes <= 0 {
		return 0
	}
	return time.Duration(c.SyncIntervalMinutes) * time.Minute
}

func defaults() *Config {
	cfg := &Config{
		KeyMappings:         DefaultKeyMappings(),
		ColorScheme:         *colors.Default(),
		Locale:              "fr",
		SyncIntervalMinutes: 5,
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.ExportDir = filepath.Join(home, ".agridesk", "exports")
		cfg.InboxDir = filepath.Join(home, ".agridesk", "inbox")
	}
	return cfg
}

// loadThemeFile loads and merges theme from AGRIDESK_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("AGRIDESK_THEME_FILE")
	if themeFile == "" {
		return
	}

	if _, err := os.Stat(themeFile); err != nil {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	config := defaults()

	configPath, err := getConfigPath()
	if err != nil {
		loadThemeFile(config)
		config.ColorScheme.ApplyDefaults()
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		loadThemeFile(config)
		config.ColorScheme.ApplyDefaults()
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	mergeKeymapDefaults(&config.KeyMappings)
	loadThemeFile(config)
	config.ColorScheme.ApplyDefaults()
	return config, nil
}

// getConfigPath returns ~/.config/agridesk/config.yaml
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "agridesk", "config.yaml"), nil
}

// mergeKeymapDefaults fills in bindings the user's file left out
func mergeKeymapDefaults(km *KeyMappings) {
	def := DefaultKeyMappings()
	if km.NextModule == "" {
		km.NextModule = def.NextModule
	}
	if km.PrevModule == "" {
		km.PrevModule = def.PrevModule
	}
	if km.NextRow == "" {
		km.NextRow = def.NextRow
	}
	if km.PrevRow == "" {
		km.PrevRow = def.PrevRow
	}
	if km.Export == "" {
		km.Export = def.Export
	}
	if km.Import == "" {
		km.Import = def.Import
	}
	if km.Print == "" {
		km.Print = def.Print
	}
	if km.Sync == "" {
		km.Sync = def.Sync
	}
	if km.Notifications == "" {
		km.Notifications = def.Notifications
	}
	if km.MarkRead == "" {
		km.MarkRead = def.MarkRead
	}
	if km.MarkAllRead == "" {
		km.MarkAllRead = def.MarkAllRead
	}
	if km.DeleteNotification == "" {
		km.DeleteNotification = def.DeleteNotification
	}
	if km.ClearNotifications == "" {
		km.ClearNotifications = def.ClearNotifications
	}
	if km.ShowHelp == "" {
		km.ShowHelp = def.ShowHelp
	}
	if km.Quit == "" {
		km.Quit = def.Quit
	}
}
