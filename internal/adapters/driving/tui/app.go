package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/primer/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/primer/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/primer/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/primer/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/primer/internal/core/domain"
	"github.com/custodia-labs/primer/internal/logger"
)

// Mode selects how the input is interpreted.
type Mode int

const (
	// ModeText analyses the input as text.
	ModeText Mode = iota
	// ModeCalc evaluates the input as "<a> <op> <b>".
	ModeCalc
)

// String returns the label shown for the mode.
func (m Mode) String() string {
	if m == ModeCalc {
		return "Calc"
	}
	return "Text"
}

func (m Mode) placeholder() string {
	if m == ModeCalc {
		return "e.g. 10 / 4"
	}
	return "Type some text..."
}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	styles *styles.Styles
	keymap *keymap.KeyMap

	input  *input.TextInput
	status *status.Bar

	mode      Mode
	precision int

	// stats holds the latest text analysis.
	stats domain.TextStats

	// result holds the latest calculator result; valid when hasResult.
	result    float64
	hasResult bool

	// err holds the latest evaluation error.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	precision := domain.PrecisionShortest
	if ports.Settings != nil {
		settings, err := ports.Settings.Get()
		if err != nil {
			logger.Debug("tui: using default precision: %v", err)
		} else {
			precision = settings.Output.Precision
		}
	}

	a := &App{
		ports:     ports,
		keymap:    keymap.DefaultKeyMap(),
		mode:      ModeText,
		precision: precision,
	}
	a.WithStyles(styles.DefaultStyles())
	return a, nil
}

// WithStyles replaces the styles used for rendering. The input value is kept.
func (a *App) WithStyles(s *styles.Styles) *App {
	if s == nil {
		s = styles.DefaultStyles()
	}
	value := ""
	if a.input != nil {
		value = a.input.Value()
	}

	a.styles = s
	a.input = input.NewTextInput(s, a.mode.String(), a.mode.placeholder())
	a.input.SetValue(value)
	a.status = status.NewBar(s, a.keymap)
	a.status.SetMode(a.mode.String())
	if a.ready {
		a.input.SetWidth(a.width)
		a.status.SetWidth(a.width)
	}
	a.evaluate()
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.input.Init(),
		tea.SetWindowTitle("primer playground"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keymap.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keymap.Toggle):
			a.toggleMode()
			return a, nil
		case key.Matches(msg, a.keymap.Clear):
			a.input.Reset()
			a.evaluate()
			return a, nil
		}

		a.input, cmd = a.input.Update(msg)
		a.evaluate()
		return a, cmd
	}

	// Cursor blink and other input messages
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) toggleMode() {
	if a.mode == ModeText {
		a.mode = ModeCalc
	} else {
		a.mode = ModeText
	}
	logger.Debug("tui: mode %s", a.mode)

	a.input.SetLabel(a.mode.String())
	a.input.SetPlaceholder(a.mode.placeholder())
	a.status.SetMode(a.mode.String())
	a.evaluate()
}

// evaluate recomputes the output for the current input and mode.
func (a *App) evaluate() {
	value := a.input.Value()
	a.err = nil
	a.hasResult = false
	a.status.Clear()

	switch a.mode {
	case ModeText:
		a.stats = a.ports.Text.Analyse(value)
	case ModeCalc:
		if strings.TrimSpace(value) == "" {
			return
		}
		result, err := a.ports.Calculator.Evaluate(value)
		if err != nil {
			a.err = err
			a.status.SetState(status.StateError)
			a.status.SetMessage(err.Error())
			return
		}
		a.result = result
		a.hasResult = true
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	sections := []string{
		a.styles.Title.Render("primer playground"),
		"",
		a.input.View(),
		"",
		a.viewOutput(),
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	gap := a.height - lipgloss.Height(body) - 1
	if gap < 1 {
		gap = 1
	}
	return body + strings.Repeat("\n", gap) + a.status.View()
}

func (a *App) viewOutput() string {
	if a.mode == ModeCalc {
		switch {
		case a.err != nil:
			return a.styles.Error.Render(a.err.Error())
		case a.hasResult:
			return a.line("Result", domain.FormatNumber(a.result, a.precision))
		default:
			return a.styles.Muted.Render("Enter an expression like 10 / 4")
		}
	}

	s := a.stats
	return lipgloss.JoinVertical(lipgloss.Left,
		a.line("Uppercase", s.Upper),
		a.line("Length", fmt.Sprintf("%d", s.Length)),
		a.line("Reversed", s.Reversed),
		a.line("Palindrome", fmt.Sprintf("%t", s.Palindrome)),
		a.line("Words", fmt.Sprintf("%d", s.Words)),
	)
}

func (a *App) line(label, value string) string {
	return a.styles.Label.Render(label+":") + " " + a.styles.Normal.Render(value)
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Mode returns the active mode.
func (a *App) Mode() Mode {
	return a.mode
}

// Value returns the current input.
func (a *App) Value() string {
	return a.input.Value()
}

// Stats returns the latest text analysis.
func (a *App) Stats() domain.TextStats {
	return a.stats
}

// Result returns the latest calculator result and whether it is valid.
func (a *App) Result() (float64, bool) {
	return a.result, a.hasResult
}

// Err returns the latest evaluation error.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.input.SetWidth(width)
	a.status.SetWidth(width)
}
