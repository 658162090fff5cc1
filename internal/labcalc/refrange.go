package labcalc

import (
	"encoding/json"
	"sort"
	"strings"
)

// RangeKind tags the parsed form of a reference-range string.
type RangeKind int

const (
	// RangeOpaque is free text that matched no structured form.
	RangeOpaque RangeKind = iota
	// RangeInterval is a closed numeric interval, e.g. "12.0-16.0".
	RangeInterval
	// RangeInequality is a one-sided bound, e.g. "<200" or ">= 1.5".
	RangeInequality
	// RangeStructured is a JSON-object-shaped per-key mapping, e.g.
	// {"Male": "13-17", "Female": "12-16"}.
	RangeStructured
)

// RangeEntry is one key/value pair of a structured range.
type RangeEntry struct {
	Key   string
	Value string
}

// Range is a reference-range string parsed once at the data-model boundary
// instead of re-parsed ad hoc at every render.
type Range struct {
	Kind    RangeKind
	Min     float64 // RangeInterval
	Max     float64 // RangeInterval
	Op      string  // RangeInequality: "<", "<=", ">", ">="
	Bound   float64 // RangeInequality
	Entries []RangeEntry
	Text    string // original text, always set
}

var inequalityOps = []string{"<=", ">=", "<", ">"}

// ParseRange classifies a reference-range string into its tagged form.
// Unrecognized text parses as RangeOpaque; there is no error case.
func ParseRange(text string) Range {
	r := Range{Kind: RangeOpaque, Text: text}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return r
	}

	if strings.HasPrefix(trimmed, "{") {
		var m map[string]string
		if err := json.Unmarshal([]byte(trimmed), &m); err == nil && len(m) > 0 {
			keys := make([]string, 0, len(m))
			for k := range m {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				r.Entries = append(r.Entries, RangeEntry{Key: k, Value: m[k]})
			}
			r.Kind = RangeStructured
			return r
		}
		return r
	}

	for _, op := range inequalityOps {
		if strings.HasPrefix(trimmed, op) {
			if b, ok := parseNum(strings.TrimSpace(trimmed[len(op):])); ok {
				r.Kind = RangeInequality
				r.Op = op
				r.Bound = b
				return r
			}
		}
	}

	if m := intervalPattern.FindStringSubmatch(trimmed); m != nil {
		min, okMin := parseNum(m[1])
		max, okMax := parseNum(m[2])
		if okMin && okMax {
			r.Kind = RangeInterval
			r.Min = min
			r.Max = max
			return r
		}
	}

	return r
}

// Display renders the range for report tables. Structured ranges are joined
// as "key: value" pairs; everything else shows the original text verbatim.
func (r Range) Display() string {
	if r.Kind != RangeStructured {
		return r.Text
	}
	parts := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		parts[i] = e.Key + ": " + e.Value
	}
	return strings.Join(parts, ", ")
}
