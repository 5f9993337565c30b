package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"agridesk/internal/app"
	"agridesk/internal/config"
	"agridesk/internal/export"
)

// exportCmd returns the headless export subcommand
func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a module without starting the dashboard",
		Long:  "Export a module's dataset as CSV, Excel or a printable document.",
		RunE:  runExport,
	}

	cmd.Flags().String("module", "", "Module to export (cultures, parcelles, finances, statistiques)")
	cmd.Flags().String("format", "csv", "Export format: csv, excel or pdf")
	cmd.Flags().String("out", "", "Output directory (defaults to the configured export directory)")
	_ = cmd.MarkFlagRequired("module")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	module, _ := cmd.Flags().GetString("module")
	formatName, _ := cmd.Flags().GetString("format")
	outDir, _ := cmd.Flags().GetString("out")

	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	var opts []app.Option
	if outDir != "" {
		opts = append(opts, app.WithExportDir(outDir))
	}
	a := app.New(cfg, opts...)

	if !knownModule(a, module) {
		return fmt.Errorf("unknown module %q (run 'agridesk modules' to list them)", module)
	}

	ok := a.Hub.ExportModuleData(module, format, nil).Wait()
	report(a, os.Stdout)
	if !ok {
		return fmt.Errorf("export of %s failed", module)
	}
	return nil
}

// report prints the result notification of the operation that just settled
func report(a *app.App, w *os.File) {
	if latest, ok := a.Hub.Notifier().Latest(); ok {
		fmt.Fprintf(w, "%s: %s\n", latest.Title, latest.Message)
	}
}

func knownModule(a *app.App, name string) bool {
	for _, m := range a.Hub.ActiveModules() {
		if m == name {
			return true
		}
	}
	return false
}
