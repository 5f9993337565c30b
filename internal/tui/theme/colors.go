package theme

import "agridesk/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Primary     string
	Border      string
	Background  string
	Text        string
	Muted       string
	SelectedBg  string
	TableHeader string
	InfoFg      string
	InfoBg      string
	SuccessFg   string
	SuccessBg   string
	WarningFg   string
	WarningBg   string
	ErrorFg     string
	ErrorBg     string
)

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Primary = scheme.Primary
	Border = scheme.Border
	Background = scheme.Background
	Text = scheme.Text
	Muted = scheme.Muted
	SelectedBg = scheme.SelectedBg
	TableHeader = scheme.TableHeader
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	SuccessFg = scheme.SuccessFg
	SuccessBg = scheme.SuccessBg
	WarningFg = scheme.WarningFg
	WarningBg = scheme.WarningBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
}

func init() {
	// Sensible colors even if Init is never called (tests, headless use)
	Init(*colors.Default())
}
