package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/primer/internal/core/domain"
	"github.com/custodia-labs/primer/internal/core/ports/driving"
)

// Ensure CalculatorService implements the interface.
var _ driving.CalculatorService = (*CalculatorService)(nil)

// CalculatorService performs arithmetic on Go ints and float64s.
// Integer results wrap on overflow, following Go's two's complement semantics.
type CalculatorService struct{}

// NewCalculatorService creates a new calculator service.
func NewCalculatorService() *CalculatorService {
	return &CalculatorService{}
}

// Add returns the sum of a and b.
func (s *CalculatorService) Add(a, b int) int {
	return a + b
}

// Subtract returns a minus b.
func (s *CalculatorService) Subtract(a, b int) int {
	return a - b
}

// Multiply returns a times b.
func (s *CalculatorService) Multiply(a, b int) int {
	return a * b
}

// Divide returns a divided by b.
// Integer callers convert both operands to float64 first; zero converts exactly.
func (s *CalculatorService) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, domain.ErrDivisionByZero
	}
	return a / b, nil
}

// Sum returns the sum of nums.
func (s *CalculatorService) Sum(nums []int) int {
	total := 0
	for _, n := range nums {
		total += n
	}
	return total
}

// Max returns the largest value in nums.
func (s *CalculatorService) Max(nums []int) (int, error) {
	if len(nums) == 0 {
		return 0, domain.ErrEmptySequence
	}
	largest := nums[0]
	for _, n := range nums[1:] {
		if n > largest {
			largest = n
		}
	}
	return largest, nil
}

// Evaluate computes "<a> <op> <b>" where op is one of + - * x /.
// Division operands may be fractional; the others must be integers.
func (s *CalculatorService) Evaluate(expr string) (float64, error) {
	fields := strings.Fields(expr)
	if len(fields) != 3 {
		return 0, fmt.Errorf("expected \"<a> <op> <b>\", got %q: %w", expr, domain.ErrInvalidInput)
	}
	left, op, right := fields[0], fields[1], fields[2]

	if op == "/" {
		a, err := ParseFloat(left)
		if err != nil {
			return 0, err
		}
		b, err := ParseFloat(right)
		if err != nil {
			return 0, err
		}
		return s.Divide(a, b)
	}

	var apply func(a, b int) int
	switch op {
	case "+":
		apply = s.Add
	case "-":
		apply = s.Subtract
	case "*", "x":
		apply = s.Multiply
	default:
		return 0, fmt.Errorf("%q: %w", op, domain.ErrUnknownOperator)
	}

	a, err := ParseInt(left)
	if err != nil {
		return 0, err
	}
	b, err := ParseInt(right)
	if err != nil {
		return 0, err
	}
	return float64(apply(a, b)), nil
}

// ParseInt parses a base-10 integer operand.
func ParseInt(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse integer %q: %w", raw, domain.ErrInvalidInput)
	}
	return n, nil
}

// ParseFloat parses a floating-point operand.
func ParseFloat(raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("parse number %q: %w", raw, domain.ErrInvalidInput)
	}
	return f, nil
}

// ParseInts parses every element of raw as an integer.
func ParseInts(raw []string) ([]int, error) {
	nums := make([]int, 0, len(raw))
	for _, r := range raw {
		n, err := ParseInt(r)
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
	return nums, nil
}
