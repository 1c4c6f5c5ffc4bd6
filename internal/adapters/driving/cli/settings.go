package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/primer/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the values used by the demo and output formatting.

Keys:
  demo.a            first demo operand (integer)
  demo.b            second demo operand (integer)
  demo.message      text used by the string demo
  demo.numbers      integers used by the vector demo, e.g. "1,2,3"
  output.color      colour headers on terminals (true/false)
  output.precision  decimals for fractional results, -1 for shortest`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:     "set <key> <value>",
	Short:   "Change a setting",
	Example: `  primer settings set demo.numbers "3, 1, 4"`,
	Args:    cobra.ExactArgs(2),
	RunE:    runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print where settings are stored",
	Args:  cobra.NoArgs,
	RunE:  runSettingsPath,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	rootCmd.AddCommand(settingsCmd)
}

var errSettingsNotConfigured = errors.New("settings service not configured")

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Demo]")
	cmd.Printf("  A: %d\n", settings.Demo.A)
	cmd.Printf("  B: %d\n", settings.Demo.B)
	cmd.Printf("  Message: %s\n", settings.Demo.Message)
	cmd.Printf("  Numbers: %s\n", formatInts(settings.Demo.Numbers))
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Color: %s\n", yesNo(settings.Output.Color))
	cmd.Printf("  Precision: %s\n", describePrecision(settings.Output.Precision))
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.Path())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrUnknownSetting) {
			return fmt.Errorf("%w (run 'primer settings --help' for keys)", err)
		}
		return err
	}

	cmd.Printf("%s updated\n", key)
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}
	if err := settingsService.Reset(); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	cmd.Println("Settings restored to defaults")
	return nil
}

func runSettingsPath(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}
	cmd.Println(settingsService.Path())
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func describePrecision(p int) string {
	if p == domain.PrecisionShortest {
		return "shortest"
	}
	return fmt.Sprintf("%d decimals", p)
}
