package config

import (
	"os"
	"path/filepath"
	"testing"

	"agridesk/internal/config/colors"
)

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AGRIDESK_THEME_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Quit = %q, want q", cfg.KeyMappings.Quit)
	}
	if cfg.ColorScheme.Primary == "" {
		t.Error("default color scheme not applied")
	}
	if cfg.Locale != "fr" {
		t.Errorf("Locale = %q, want fr", cfg.Locale)
	}
	if cfg.SyncInterval() <= 0 {
		t.Error("default sync interval should be enabled")
	}
}

func TestLoadMergesPartialConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("AGRIDESK_THEME_FILE", "")

	dir := filepath.Join(home, ".config", "agridesk")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	content := "key_mappings:\n  quit: x\nlocale: en\ntheme:\n  preset: dark\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Quit = %q, want x", cfg.KeyMappings.Quit)
	}
	// Unset bindings fall back to defaults
	if cfg.KeyMappings.Export != "e" {
		t.Errorf("Export = %q, want default e", cfg.KeyMappings.Export)
	}
	if cfg.Locale != "en" {
		t.Errorf("Locale = %q, want en", cfg.Locale)
	}
	if cfg.ColorScheme.Primary != colors.Dark().Primary {
		t.Errorf("Primary = %q, want dark preset %q", cfg.ColorScheme.Primary, colors.Dark().Primary)
	}
}

func TestThemeFileOverridesScheme(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	themePath := filepath.Join(home, "theme.yaml")
	if err := os.WriteFile(themePath, []byte("theme:\n  primary: \"#123456\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("AGRIDESK_THEME_FILE", themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ColorScheme.Primary != "#123456" {
		t.Errorf("Primary = %q, want theme-file override", cfg.ColorScheme.Primary)
	}
	// Fields the theme file omits still get preset values
	if cfg.ColorScheme.Border == "" {
		t.Error("omitted fields not filled from preset")
	}
}

func TestApplyDefaultsKeepsCustomValues(t *testing.T) {
	scheme := colors.ColorScheme{Primary: "#ABCDEF"}
	scheme.ApplyDefaults()

	if scheme.Primary != "#ABCDEF" {
		t.Errorf("custom Primary overwritten: %q", scheme.Primary)
	}
	if scheme.Muted != colors.Default().Muted {
		t.Errorf("Muted = %q, want default", scheme.Muted)
	}
}

func TestGetPresetFallsBackToDefault(t *testing.T) {
	if got := colors.GetPreset("nope").Preset; got != "default" {
		t.Errorf("GetPreset(nope) = %q, want default", got)
	}
	if got := colors.GetPreset("monochrome").Preset; got != "monochrome" {
		t.Errorf("GetPreset(monochrome) = %q", got)
	}
}
