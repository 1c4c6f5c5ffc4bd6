package domain

import "strconv"

// FormatNumber renders v with the given precision.
// Out-of-range precisions fall back to the shortest representation.
func FormatNumber(v float64, precision int) string {
	if !ValidPrecision(precision) {
		precision = PrecisionShortest
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
