package notifications

import (
	"agridesk/internal/tui/theme"
	"agridesk/internal/types"
)

type style struct {
	icon             string
	title            string
	foreground       string
	background       string
	borderForeground string
}

func styleFor(s types.Severity) style {
	switch s {
	case types.SeveritySuccess:
		return style{
			icon:             "✓",
			title:            "Succès",
			foreground:       theme.SuccessFg,
			background:       theme.SuccessBg,
			borderForeground: theme.SuccessBg,
		}
	case types.SeverityWarning:
		return style{
			icon:             "⚠",
			title:            "Avertissement",
			foreground:       theme.WarningFg,
			background:       theme.WarningBg,
			borderForeground: theme.WarningBg,
		}
	case types.SeverityError:
		return style{
			icon:             "✕",
			title:            "Erreur",
			foreground:       theme.ErrorFg,
			background:       theme.ErrorBg,
			borderForeground: theme.ErrorBg,
		}
	default:
		return style{
			icon:             "🔔",
			title:            "Info",
			foreground:       theme.InfoFg,
			background:       theme.InfoBg,
			borderForeground: theme.InfoBg,
		}
	}
}
