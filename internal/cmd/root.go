// Package cmd wires the sortd command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

// NewRootCommand creates the root sortd command.
func NewRootCommand() *cobra.Command {
	settings := &runSettings{}

	cmd := &cobra.Command{
		Use:   "sortd",
		Short: "Sort loose files into tidy destination folders",
		Long: `Sortd sweeps the usual drop zones under your home directory, Desktop,
Downloads and friends, and files everything it recognizes into Media,
Archive, Docs and 3D folders by category.

Files it has no rule for are left where they are and reported, so
nothing disappears into a folder you did not expect.`,
		Version: Version,
		Args:    cobra.NoArgs,
		// Silence usage on errors to avoid duplicate help text.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(settings)
		},
	}

	cmd.Flags().BoolVarP(&settings.DryRun, "dry-run", "d", false, "report planned moves without touching any file")
	cmd.Flags().BoolVarP(&settings.Verbose, "verbose", "v", false, "show every decision, not just moves")
	cmd.Flags().BoolVarP(&settings.Watch, "watch", "w", false, "keep running and sort new files as they appear")

	return cmd
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
