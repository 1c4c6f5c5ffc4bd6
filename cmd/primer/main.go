// Command primer runs arithmetic and text utilities and a guided demo.
package main

import (
	"os"

	"github.com/custodia-labs/primer/internal/adapters/driven/config/file"
	"github.com/custodia-labs/primer/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/primer/internal/adapters/driving/cli"
	"github.com/custodia-labs/primer/internal/core/ports/driven"
	"github.com/custodia-labs/primer/internal/core/services"
	"github.com/custodia-labs/primer/internal/logger"
)

// version is set via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	calculator := services.NewCalculatorService()
	text := services.NewTextService()
	settings := services.NewSettingsService(openConfigStore(""))

	cli.SetServices(calculator, text, settings)
	cli.SetTUIConfig(&cli.TUIConfig{
		TextService:       text,
		CalculatorService: calculator,
		SettingsService:   settings,
	})
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// openConfigStore opens the TOML config in dir, or the default location when
// dir is empty. When it cannot be read the memory store is used and the
// fallback is reported regardless of verbosity.
func openConfigStore(dir string) driven.ConfigStore {
	store, err := file.NewConfigStore(dir)
	if err != nil {
		logger.Error("config unavailable, settings changes will not be saved: %v", err)
		return memory.NewConfigStore()
	}
	return store
}
