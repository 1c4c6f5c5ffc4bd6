// Package tui provides an interactive terminal playground for primer.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/primer/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the TUI.
type Ports struct {
	// Text analyses input in text mode.
	Text driving.TextService

	// Calculator evaluates input in calc mode.
	Calculator driving.CalculatorService

	// Settings supplies the number precision. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(text driving.TextService, calculator driving.CalculatorService) *Ports {
	return &Ports{
		Text:       text,
		Calculator: calculator,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Text == nil {
		return ErrMissingTextService
	}
	if p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	return nil
}
