package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/primer/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/primer/internal/core/domain"
	"github.com/custodia-labs/primer/internal/logger"
)

const bannerTitle = "Welcome to Primer!"

func runDemo(cmd *cobra.Command, _ []string) error {
	if calculatorService == nil || textService == nil {
		return errors.New("services not configured")
	}

	settings := loadSettings()
	st := outputStyles(cmd.OutOrStdout(), settings.Output.Color)

	cmd.Println(st.Title.Render(bannerTitle))
	cmd.Println(strings.Repeat("=", len(bannerTitle)))
	cmd.Println()

	demoCalculator(cmd, st, settings)
	demoText(cmd, st, settings.Demo.Message)
	demoNumbers(cmd, st, settings.Demo.Numbers)

	return greet(cmd, st)
}

// loadSettings returns the stored settings, or defaults when none can be read.
func loadSettings() domain.AppSettings {
	if settingsService == nil {
		return domain.DefaultAppSettings()
	}
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("using default settings: %v", err)
		return domain.DefaultAppSettings()
	}
	return *settings
}

// outputStyles returns colour styles when w is a terminal and colour is enabled.
func outputStyles(w io.Writer, color bool) *styles.Styles {
	f, ok := w.(*os.File)
	if !color || !ok || !term.IsTerminal(int(f.Fd())) {
		return styles.PlainStyles()
	}
	return styles.NewStylesWithRenderer(lipgloss.NewRenderer(f), nil)
}

func demoCalculator(cmd *cobra.Command, st *styles.Styles, settings domain.AppSettings) {
	a, b := settings.Demo.A, settings.Demo.B
	logger.Section("calculator")
	logger.Debug("operands a=%d b=%d", a, b)

	cmd.Println(st.Subtitle.Render("Calculator Demo:"))
	cmd.Printf("%d + %d = %d\n", a, b, calculatorService.Add(a, b))
	cmd.Printf("%d - %d = %d\n", a, b, calculatorService.Subtract(a, b))
	cmd.Printf("%d * %d = %d\n", a, b, calculatorService.Multiply(a, b))

	quotient, err := calculatorService.Divide(float64(a), float64(b))
	if err != nil {
		cmd.Println(st.Error.Render("Error: " + err.Error()))
	} else {
		cmd.Printf("%d / %d = %s\n", a, b, domain.FormatNumber(quotient, settings.Output.Precision))
	}
	cmd.Println()
}

func demoText(cmd *cobra.Command, st *styles.Styles, message string) {
	logger.Section("text")
	stats := textService.Analyse(message)
	logger.Debug("analysed %d runes", stats.Length)

	cmd.Println(st.Subtitle.Render("String Demo:"))
	printField(cmd, st, "Original", stats.Original)
	printField(cmd, st, "Uppercase", stats.Upper)
	printField(cmd, st, "Length", fmt.Sprintf("%d", stats.Length))
	printField(cmd, st, "Reversed", stats.Reversed)
	printField(cmd, st, "Palindrome", fmt.Sprintf("%t", stats.Palindrome))
	printField(cmd, st, "Words", fmt.Sprintf("%d", stats.Words))
	cmd.Println()
}

func demoNumbers(cmd *cobra.Command, st *styles.Styles, nums []int) {
	logger.Section("vector")
	logger.Debug("%d numbers", len(nums))

	cmd.Println(st.Subtitle.Render("Vector Demo:"))
	printField(cmd, st, "Numbers", formatInts(nums))
	printField(cmd, st, "Sum", fmt.Sprintf("%d", calculatorService.Sum(nums)))
	if largest, err := calculatorService.Max(nums); err != nil {
		cmd.Println(st.Error.Render("Error: " + err.Error()))
	} else {
		printField(cmd, st, "Max", fmt.Sprintf("%d", largest))
	}
	cmd.Println()
}

// greet prompts for a name and echoes a greeting.
func greet(cmd *cobra.Command, st *styles.Styles) error {
	cmd.Println(st.Label.Render("Enter your name:"))
	cmd.Print("> ")

	name, err := readLine(cmd.InOrStdin())
	if err != nil {
		cmd.Println()
		return err
	}
	cmd.Printf("Hello, %s!\n", strings.TrimSpace(name))
	return nil
}

// readLine reads one line from r. A final line without a newline is
// accepted; end of input before any data is ErrReadInput.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		if errors.Is(err, io.EOF) {
			return "", domain.ErrReadInput
		}
		return "", fmt.Errorf("%w: %w", domain.ErrReadInput, err)
	}
	return line, nil
}

func printField(cmd *cobra.Command, st *styles.Styles, label, value string) {
	cmd.Printf("%s %s\n", st.Label.Render(label+":"), value)
}

// formatInts renders nums as "[1, 2, 3]".
func formatInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
