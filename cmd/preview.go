package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"agridesk/internal/app"
	"agridesk/internal/config"
	"agridesk/internal/preview"
)

// previewCmd returns the subcommand writing a module's HTML preview to a file
func previewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Write a module's printable HTML document to a file",
		RunE:  runPreview,
	}

	cmd.Flags().String("module", "", "Module to render")
	cmd.Flags().String("out", "", "Output file (defaults to <module>.html)")
	cmd.Flags().String("title", "", "Document title")
	_ = cmd.MarkFlagRequired("module")

	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	module, _ := cmd.Flags().GetString("module")
	outPath, _ := cmd.Flags().GetString("out")
	title, _ := cmd.Flags().GetString("title")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a := app.New(cfg)

	if !knownModule(a, module) {
		return fmt.Errorf("unknown module %q (run 'agridesk modules' to list them)", module)
	}
	if outPath == "" {
		outPath = module + ".html"
	}
	if title == "" {
		title = "Impression " + module
	}

	renderer := preview.New(cfg.Locale)
	doc, err := renderer.Render(
		title,
		module,
		a.Hub.GetModuleData(module).Items,
		a.Hub.ModuleColumns(module),
		preview.Theme{
			Primary:    cfg.ColorScheme.Primary,
			Border:     cfg.ColorScheme.Border,
			Background: cfg.ColorScheme.Background,
			Text:       cfg.ColorScheme.Text,
			Muted:      cfg.ColorScheme.Muted,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", module, err)
	}

	if err := os.WriteFile(outPath, []byte(doc), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}
