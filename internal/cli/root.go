// Package cli wires the auroraledger commands. Every command runs a single
// straight-line sequence: load settings, construct collaborators, perform
// one read or write, print, exit.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"auroraledger/internal/config"
	"auroraledger/internal/util"
)

// app carries the settings and logger shared by every subcommand.
type app struct {
	cfgPath  string
	logLevel string

	cfg *config.Config
	log zerolog.Logger
}

// New builds the root command with every subcommand attached.
func New() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "auroraledger",
		Short: "Shape placeholder mint/swap/stake payloads and keep planning notes",
		Long: "auroraledger builds placeholder transaction payloads and stores each\n" +
			"as one local JSON file. It also keeps a separate append-only plan log.\n" +
			"Nothing is signed, dialed, or transmitted.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.Path(a.cfgPath))
			if err != nil {
				return err
			}
			a.cfg = cfg
			level := cfg.LogLevel
			if a.logLevel != "" {
				level = a.logLevel
			}
			a.log = util.NewLogger(level)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "path to the settings file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override the configured log level")

	root.AddCommand(
		a.buildCmd(),
		a.recordsCmd(),
		a.summaryCmd(),
		a.networksCmd(),
		a.planCmd(),
		a.describeCmd(),
	)
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
