// Package labcalc implements the derived-value calculations, reference-range
// parsing and value classification used when authoring and rendering lab
// reports. Every function is pure: raw operator-entered strings in, formatted
// strings out, with arithmetic indeterminacy (zero or non-numeric
// denominators) yielding empty strings rather than errors.
package labcalc

import (
	"strconv"
	"strings"
)

// parseNum parses an operator-entered value. The second return is false for
// blank or non-numeric input.
func parseNum(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func format1(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }
func format2(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
