// Package services implements the driving port interfaces.
// Services contain the core logic and orchestrate
// calls to driven ports (adapters).
//
// CalculatorService and TextService are stateless and safe for
// concurrent use. SettingsService is as safe as its ConfigStore.
package services
