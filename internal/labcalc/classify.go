package labcalc

import "regexp"

// Status classifies a measured value against its reference range.
type Status string

const (
	StatusLow    Status = "low"
	StatusNormal Status = "normal"
	StatusHigh   Status = "high"
)

// intervalPattern matches the first <number>-<number> pair in a reference
// range string, e.g. "12.0-16.0" or "M: 13-17 g/dL".
var intervalPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?)`)

// Classify compares value against the numeric interval embedded in
// referenceRange. It returns StatusNormal whenever either input is blank,
// the value does not parse, or the range carries no <min>-<max> interval.
func Classify(value, referenceRange string) Status {
	v, ok := parseNum(value)
	if !ok || referenceRange == "" {
		return StatusNormal
	}
	m := intervalPattern.FindStringSubmatch(referenceRange)
	if m == nil {
		return StatusNormal
	}
	min, okMin := parseNum(m[1])
	max, okMax := parseNum(m[2])
	if !okMin || !okMax {
		return StatusNormal
	}
	switch {
	case v < min:
		return StatusLow
	case v > max:
		return StatusHigh
	default:
		return StatusNormal
	}
}
