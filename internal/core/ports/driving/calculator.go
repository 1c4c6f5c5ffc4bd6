package driving

// CalculatorService provides integer and floating-point arithmetic.
type CalculatorService interface {
	// Add returns a + b. Overflow wraps.
	Add(a, b int) int

	// Subtract returns a - b. Overflow wraps.
	Subtract(a, b int) int

	// Multiply returns a * b. Overflow wraps.
	Multiply(a, b int) int

	// Divide returns a / b, or domain.ErrDivisionByZero when b is zero.
	Divide(a, b float64) (float64, error)

	// Sum returns the sum of nums. The sum of no values is 0.
	Sum(nums []int) int

	// Max returns the largest of nums, or domain.ErrEmptySequence.
	Max(nums []int) (int, error)

	// Evaluate computes a binary expression such as "10 / 4".
	Evaluate(expr string) (float64, error)
}
