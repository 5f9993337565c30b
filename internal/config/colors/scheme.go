package colors

// ColorScheme defines all configurable color values. The first five fields
// double as the preview document theme, so print output follows the same
// palette as the dashboard.
type ColorScheme struct {
	// Preset name (e.g., "default", "dark", "monochrome")
	Preset string `yaml:"preset"`

	// Preview/document palette
	Primary    string `yaml:"primary"`
	Border     string `yaml:"border"`
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	Muted      string `yaml:"muted"`

	// UI element colors
	SelectedBg  string `yaml:"selected_bg"`
	TableHeader string `yaml:"table_header"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	SuccessFg string `yaml:"success_fg"`
	SuccessBg string `yaml:"success_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "dark":
		return Dark()
	case "monochrome":
		return Monochrome()
	case "default", "":
		return Default()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base.
// If preset is specified, loads that preset first, then overrides with
// custom values.
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	if c.Primary == "" {
		c.Primary = preset.Primary
	}
	if c.Border == "" {
		c.Border = preset.Border
	}
	if c.Background == "" {
		c.Background = preset.Background
	}
	if c.Text == "" {
		c.Text = preset.Text
	}
	if c.Muted == "" {
		c.Muted = preset.Muted
	}
	if c.SelectedBg == "" {
		c.SelectedBg = preset.SelectedBg
	}
	if c.TableHeader == "" {
		c.TableHeader = preset.TableHeader
	}
	if c.InfoFg == "" {
		c.InfoFg = preset.InfoFg
	}
	if c.InfoBg == "" {
		c.InfoBg = preset.InfoBg
	}
	if c.SuccessFg == "" {
		c.SuccessFg = preset.SuccessFg
	}
	if c.SuccessBg == "" {
		c.SuccessBg = preset.SuccessBg
	}
	if c.WarningFg == "" {
		c.WarningFg = preset.WarningFg
	}
	if c.WarningBg == "" {
		c.WarningBg = preset.WarningBg
	}
	if c.ErrorFg == "" {
		c.ErrorFg = preset.ErrorFg
	}
	if c.ErrorBg == "" {
		c.ErrorBg = preset.ErrorBg
	}
}

// MergeFrom overrides this scheme with the non-empty values of other.
// Used for external theme files layered over the main config.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	if other.Primary != "" {
		c.Primary = other.Primary
	}
	if other.Border != "" {
		c.Border = other.Border
	}
	if other.Background != "" {
		c.Background = other.Background
	}
	if other.Text != "" {
		c.Text = other.Text
	}
	if other.Muted != "" {
		c.Muted = other.Muted
	}
	if other.SelectedBg != "" {
		c.SelectedBg = other.SelectedBg
	}
	if other.TableHeader != "" {
		c.TableHeader = other.TableHeader
	}
	if other.InfoFg != "" {
		c.InfoFg = other.InfoFg
	}
	if other.InfoBg != "" {
		c.InfoBg = other.InfoBg
	}
	if other.SuccessFg != "" {
		c.SuccessFg = other.SuccessFg
	}
	if other.SuccessBg != "" {
		c.SuccessBg = other.SuccessBg
	}
	if other.WarningFg != "" {
		c.WarningFg = other.WarningFg
	}
	if other.WarningBg != "" {
		c.WarningBg = other.WarningBg
	}
	if other.ErrorFg != "" {
		c.ErrorFg = other.ErrorFg
	}
	if other.ErrorBg != "" {
		c.ErrorBg = other.ErrorBg
	}
}
