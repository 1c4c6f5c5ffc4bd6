package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/primer/internal/core/domain"
)

var sampleOperands = []int{0, 1, -1, 3, 5, 10, -42, 1 << 20, math.MaxInt, math.MinInt}

func TestNewCalculatorService(t *testing.T) {
	service := NewCalculatorService()

	require.NotNil(t, service)
}

func TestCalculatorService_Add(t *testing.T) {
	service := NewCalculatorService()

	assert.Equal(t, 8, service.Add(5, 3))
	assert.Equal(t, 5, service.Add(2, 3))
	assert.Equal(t, 0, service.Add(-1, 1))
}

func TestCalculatorService_Add_Commutative(t *testing.T) {
	service := NewCalculatorService()

	for _, a := range sampleOperands {
		for _, b := range sampleOperands {
			assert.Equal(t, service.Add(a, b), service.Add(b, a), "add(%d, %d)", a, b)
		}
	}
}

func TestCalculatorService_Add_OverflowWraps(t *testing.T) {
	service := NewCalculatorService()

	assert.Equal(t, math.MinInt, service.Add(math.MaxInt, 1))
}

func TestCalculatorService_Subtract(t *testing.T) {
	service := NewCalculatorService()

	assert.Equal(t, 2, service.Subtract(5, 3))
	assert.Equal(t, -5, service.Subtract(0, 5))
	assert.Equal(t, 6, service.Subtract(10, 4))
}

func TestCalculatorService_Subtract_AntiCommutative(t *testing.T) {
	service := NewCalculatorService()

	for _, a := range sampleOperands {
		for _, b := range sampleOperands {
			assert.Equal(t, service.Subtract(a, b), -service.Subtract(b, a), "subtract(%d, %d)", a, b)
		}
	}
}

func TestCalculatorService_Multiply(t *testing.T) {
	service := NewCalculatorService()

	assert.Equal(t, 20, service.Multiply(4, 5))
	assert.Equal(t, -6, service.Multiply(-2, 3))
	assert.Equal(t, 42, service.Multiply(6, 7))
}

func TestCalculatorService_Divide(t *testing.T) {
	service := NewCalculatorService()

	tests := []struct {
		name    string
		a, b    float64
		want    float64
		wantErr error
	}{
		{name: "exact quotient", a: 10, b: 2, want: 5},
		{name: "integer operands", a: float64(10), b: float64(5), want: 2},
		{name: "fractional quotient", a: 15, b: 4, want: 3.75},
		{name: "negative divisor", a: 9, b: -3, want: -3},
		{name: "zero dividend", a: 0, b: 7, want: 0},
		{name: "zero divisor", a: 5, b: 0, wantErr: domain.ErrDivisionByZero},
		{name: "negative zero divisor", a: 5, b: math.Copysign(0, -1), wantErr: domain.ErrDivisionByZero},
		{name: "integer zero divisor", a: float64(5), b: float64(0), wantErr: domain.ErrDivisionByZero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.Divide(tt.a, tt.b)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, "Cannot divide by zero", err.Error())
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestCalculatorService_Divide_FailsOnlyOnZero(t *testing.T) {
	service := NewCalculatorService()

	for _, a := range sampleOperands {
		for _, b := range sampleOperands {
			got, err := service.Divide(float64(a), float64(b))
			if b == 0 {
				assert.ErrorIs(t, err, domain.ErrDivisionByZero)
				continue
			}
			require.NoError(t, err)
			assert.InDelta(t, float64(a)/float64(b), got, 1e-9)
		}
	}
}

func TestCalculatorService_Sum(t *testing.T) {
	service := NewCalculatorService()

	assert.Equal(t, 15, service.Sum([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, 0, service.Sum(nil))
	assert.Equal(t, -3, service.Sum([]int{-1, -2}))
}

func TestCalculatorService_Max(t *testing.T) {
	service := NewCalculatorService()

	got, err := service.Max([]int{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	got, err = service.Max([]int{-7, -3, -9})
	require.NoError(t, err)
	assert.Equal(t, -3, got)
}

func TestCalculatorService_Max_Empty(t *testing.T) {
	service := NewCalculatorService()

	_, err := service.Max([]int{})

	assert.ErrorIs(t, err, domain.ErrEmptySequence)
}

func TestCalculatorService_Evaluate(t *testing.T) {
	service := NewCalculatorService()

	tests := []struct {
		expr string
		want float64
	}{
		{"5 + 3", 8},
		{"10 - 4", 6},
		{"6 * 7", 42},
		{"6 x 7", 42},
		{"15 / 3", 5},
		{"10 / 4", 2.5},
		{"  1.5   /  0.5 ", 3},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := service.Evaluate(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestCalculatorService_Evaluate_Errors(t *testing.T) {
	service := NewCalculatorService()

	tests := []struct {
		name    string
		expr    string
		wantErr error
	}{
		{"empty", "", domain.ErrInvalidInput},
		{"missing operand", "5 +", domain.ErrInvalidInput},
		{"too many fields", "1 + 2 + 3", domain.ErrInvalidInput},
		{"non-integer operand", "1.5 + 2", domain.ErrInvalidInput},
		{"non-numeric divisor", "1 / abc", domain.ErrInvalidInput},
		{"unknown operator", "2 ^ 3", domain.ErrUnknownOperator},
		{"division by zero", "5 / 0", domain.ErrDivisionByZero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Evaluate(tt.expr)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseInts(t *testing.T) {
	nums, err := ParseInts([]string{"1", " 2", "-3"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, -3}, nums)

	_, err = ParseInts([]string{"1", "two"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
