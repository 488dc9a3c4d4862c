// Package cli implements the vlist command line.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/vlist/internal/config"
	"github.com/rshade/vlist/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger = zerolog.Nop() //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the vlist CLI.
// It loads configuration, wires up logging and tracing, and registers the
// view, bounds and version subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "vlist",
		Short:         "Scroll through large lists, rendering only what is visible",
		Long:          "vlist: a virtual list viewer that renders only the items inside the terminal window",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to a YAML config overlay")
	cmd.AddCommand(NewViewCmd(), NewBoundsCmd(), NewVersionCmd(ver))

	return cmd
}

const rootCmdExample = `  # Browse a log file
  vlist view /var/log/syslog

  # Browse command output
  journalctl -n 50000 | vlist view --header "journal"

  # Generate a million rows, three lines each
  vlist view --count 1000000 --item-height 3

  # Print the rendered window for a scroll position
  vlist bounds --count 1000 --item-height 20 --buffer 5 --view-top 400 --view-bottom 900`
