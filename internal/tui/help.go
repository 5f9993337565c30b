package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"agridesk/internal/config"
)

// renderHelp builds the keybinding help screen as markdown and renders it
// through glamour. Falls back to the raw markdown if rendering fails.
func renderHelp(keys config.KeyMappings, width int) string {
	var sb strings.Builder
	sb.WriteString("# Agridesk\n\n")
	sb.WriteString("Tableau de bord de gestion agricole.\n\n")
	sb.WriteString("## Navigation\n\n")
	writeBinding(&sb, keys.PrevModule+" / "+keys.NextModule, "changer de module")
	writeBinding(&sb, keys.PrevRow+" / "+keys.NextRow, "changer de ligne")
	sb.WriteString("\n## Données\n\n")
	writeBinding(&sb, keys.Export, "exporter le module (CSV, Excel, impression)")
	writeBinding(&sb, keys.Import, "importer un fichier CSV dans le module")
	writeBinding(&sb, keys.Print, "imprimer le module")
	writeBinding(&sb, keys.Sync, "synchroniser tous les modules")
	sb.WriteString("\n## Notifications\n\n")
	writeBinding(&sb, keys.Notifications, "ouvrir le panneau de notifications")
	writeBinding(&sb, keys.MarkRead, "marquer comme lue")
	writeBinding(&sb, keys.MarkAllRead, "tout marquer comme lu")
	writeBinding(&sb, keys.DeleteNotification, "supprimer la notification")
	writeBinding(&sb, keys.ClearNotifications, "vider la liste")
	sb.WriteString("\n## Divers\n\n")
	writeBinding(&sb, keys.ShowHelp, "afficher/fermer cette aide")
	writeBinding(&sb, keys.Quit, "quitter")

	md := sb.String()

	wrap := width - 4
	if wrap <= 0 || wrap > 100 {
		wrap = 100
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

func writeBinding(sb *strings.Builder, key, action string) {
	fmt.Fprintf(sb, "- `%s` — %s\n", key, action)
}
