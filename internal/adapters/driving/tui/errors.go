package tui

import "errors"

// ErrMissingTextService is returned when the text service is not provided.
var ErrMissingTextService = errors.New("tui: text service is required")

// ErrMissingCalculatorService is returned when the calculator service is not provided.
var ErrMissingCalculatorService = errors.New("tui: calculator service is required")

// ErrInvalidPorts is returned when ports is nil.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
