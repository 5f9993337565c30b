package cmd

import (
	"github.com/spf13/cobra"

	"agridesk/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "agridesk",
	Short: "Agridesk - tableau de bord de gestion agricole",
	Long: `Agridesk is a terminal dashboard for farm management data:
cultures, parcels, finances and statistics, with CSV import/export
and printable previews.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(previewCmd())
	rootCmd.AddCommand(modulesCmd())
	rootCmd.AddCommand(versionCmd())
}
