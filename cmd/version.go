package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the agridesk version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("agridesk", Version)
		},
	}
}
