// Package cli provides the command-line interface for primer.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/primer/internal/core/ports/driving"
	"github.com/custodia-labs/primer/internal/logger"
)

// version is set at build time or via SetVersion.
var version = "dev"

var verbose bool

// Services used by commands. Wired by main via SetServices.
var (
	calculatorService driving.CalculatorService
	textService       driving.TextService
	settingsService   driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "primer",
	Short: "Arithmetic and text utilities with a guided demo",
	Long: `Primer runs small arithmetic and text utilities.

Run without a subcommand to see a demo of every utility. The demo
ends by asking for your name and greeting you.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runDemo,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
}

// SetServices wires the core services used by commands.
func SetServices(
	calculator driving.CalculatorService,
	text driving.TextService,
	settings driving.SettingsService,
) {
	calculatorService = calculator
	textService = text
	settingsService = settings
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command against the process streams.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetIn(os.Stdin)
	return rootCmd.Execute()
}
