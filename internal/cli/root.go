// Package cli implements the hovertip command-line interface.
//
// The commands expose the tooltip core from the terminal: formatting a
// template against a data point, running the positioner, serving both over
// HTTP, and an interactive preview that drives the real tooltip plugin from
// mouse movement over a terminal chart.
//
// # Commands
//
//   - format: Render a tooltip template for given values
//   - place: Compute where a tooltip goes for a pointer position
//   - preview: Interactive terminal chart with a live tooltip
//   - serve: HTTP JSON API
//   - config: Print the effective configuration as TOML
//   - completion: Shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/hovertip/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Hovertip formats and places chart tooltips",
		Long:         `Hovertip renders the floating label shown next to the pointer when it rests on a chart data point: a small placeholder template language for the text and a viewport-aware positioner for the placement.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "TOML config file")

	// Register all subcommands
	root.AddCommand(c.formatCommand())
	root.AddCommand(c.placeCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}
