package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"agridesk/internal/app"
	"agridesk/internal/config"
)

// modulesCmd returns the subcommand listing registered modules
func modulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List the registered modules and their record counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			a := app.New(cfg)

			for _, name := range a.Hub.ActiveModules() {
				ds := a.Hub.GetModuleData(name)
				fmt.Printf("%-16s %d record(s)\n", name, len(ds.Items))
			}
			return nil
		},
	}
}
