package domain

// Precision bounds for formatted quotients.
const (
	// PrecisionShortest formats with the fewest digits that round-trip.
	PrecisionShortest = -1

	// MaxPrecision is the largest number of fixed decimals accepted.
	MaxPrecision = 15
)

// AppSettings contains all application settings.
type AppSettings struct {
	Demo   DemoSettings
	Output OutputSettings
}

// DemoSettings holds the sample values used by the demo driver.
type DemoSettings struct {
	// A and B are the calculator demo operands.
	A int
	B int

	// Message is the string demo input.
	Message string

	// Numbers is the vector demo sequence.
	Numbers []int
}

// OutputSettings controls how results are rendered.
type OutputSettings struct {
	// Color enables styled headers when the output is a terminal.
	Color bool

	// Precision is the number of decimals for quotients.
	// PrecisionShortest selects the shortest exact representation.
	Precision int
}

// ValidPrecision reports whether p is an accepted precision value.
func ValidPrecision(p int) bool {
	return p >= PrecisionShortest && p <= MaxPrecision
}

// DefaultAppSettings returns the default application settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Demo: DemoSettings{
			A:       10,
			B:       5,
			Message: "Hello, Primer!",
			Numbers: []int{1, 2, 3, 4, 5},
		},
		Output: OutputSettings{
			Color:     true,
			Precision: PrecisionShortest,
		},
	}
}
