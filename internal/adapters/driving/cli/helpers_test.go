package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/custodia-labs/primer/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/primer/internal/core/services"
	"github.com/custodia-labs/primer/internal/logger"
)

// setupTestServices wires memory-backed services and returns a cleanup
// function that restores the previous ones.
func setupTestServices() (*services.SettingsService, func()) {
	origCalc, origText, origSettings := calculatorService, textService, settingsService
	origTUI := tuiConfig

	settings := services.NewSettingsService(memory.NewConfigStore())
	SetServices(services.NewCalculatorService(), services.NewTextService(), settings)

	return settings, func() {
		calculatorService, textService, settingsService = origCalc, origText, origSettings
		tuiConfig = origTUI
	}
}

// executeCommand runs rootCmd with args, feeding stdin, and returns stdout.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		verbose = false
		logger.SetVerbose(false)
		logger.SetOutput(io.Discard)
	})

	err := rootCmd.Execute()
	return out.String(), err
}
