package domain

import "errors"

// Domain errors represent failures of core operations.
// These are distinct from infrastructure errors.
var (
	// ErrDivisionByZero indicates a division whose divisor is exactly zero.
	// The message is shown to users verbatim.
	ErrDivisionByZero = errors.New("Cannot divide by zero") //nolint:staticcheck // ST1005: user-facing message

	// ErrInvalidInput indicates an argument could not be parsed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownOperator indicates an expression used an unsupported operator.
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrEmptySequence indicates an aggregate was requested over no values.
	ErrEmptySequence = errors.New("empty sequence")

	// ErrUnknownSetting indicates a settings key is not recognised.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrReadInput indicates the input stream ended before a line was read.
	ErrReadInput = errors.New("failed to read line")
)
