// Package format holds the number formatting helpers shared by the summary
// tables and the command line output.
package format

import (
	"strconv"
	"strings"
)

// Float formats a float64 with a fixed number of decimal places.
func Float(value float64, precision int) string {
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// ParseFloat parses a string into a float64.
func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// WithOptimalPrecision formats a float using its inherent precision,
// determining the number of decimal places automatically.
func WithOptimalPrecision(value float64) string {
	return Float(value, NumDecPlaces(value))
}

// TrimTrailingZeros removes unnecessary zeros after the decimal point.
func TrimTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}

	s = strings.TrimRight(s, "0")
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}

	return s
}

// NumDecPlaces returns the number of decimal places in a float64.
func NumDecPlaces(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i > -1 {
		return len(s) - i - 1
	}
	return 0
}
