package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/primer/internal/adapters/driving/tui"
	"github.com/custodia-labs/primer/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/primer/internal/core/ports/driving"
)

// ErrNotTerminal is returned when the tui command is run without a terminal.
var ErrNotTerminal = errors.New("tui requires an interactive terminal")

// TUIConfig holds configuration for the TUI command.
type TUIConfig struct {
	TextService       driving.TextService
	CalculatorService driving.CalculatorService
	SettingsService   driving.SettingsService
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

// isTerminal reports whether stdin is a terminal. Replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for Primer.

The playground analyses text or evaluates arithmetic as you type.

Controls:
  Tab      - Switch between text and calculator mode
  Ctrl+L   - Clear the input
  Esc      - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

// SetTUIConfig sets the configuration for the TUI command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	app, err := newTUIApp()
	if err != nil {
		return err
	}

	if !isTerminal() {
		return ErrNotTerminal
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// newTUIApp builds the app from tuiConfig.
func newTUIApp() (*tui.App, error) {
	ports := &tui.Ports{}
	if tuiConfig != nil {
		ports.Text = tuiConfig.TextService
		ports.Calculator = tuiConfig.CalculatorService
		ports.Settings = tuiConfig.SettingsService
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return nil, fmt.Errorf("failed to create TUI: %w", err)
	}

	if !colorEnabled(ports.Settings) {
		app.WithStyles(styles.PlainStyles())
	}
	return app, nil
}

// colorEnabled reports whether colour output is enabled in settings.
func colorEnabled(s driving.SettingsService) bool {
	if s == nil {
		return true
	}
	settings, err := s.Get()
	if err != nil {
		return true
	}
	return settings.Output.Color
}
