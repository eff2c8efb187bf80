// Package feed parses the input files an analysis run consumes: detection
// feeds emitted by upstream chart software, planetary period trees, and the
// implemented-set list used for coverage reporting.
//
// All files are YAML; JSON input parses as well since YAML 1.2 is a superset.
// Parsing is strict: unknown fields, missing required fields, and
// unparseable enum or date values are errors.
package feed

import (
	"fmt"
	"sort"
	"time"
)

// dateLayout is the wire format for all feed dates.
const dateLayout = "2006-01-02"

// ParseError represents a feed file parsing error. Path is empty when the
// input did not come from a file.
type ParseError struct {
	Path    string
	Message string
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("feed: %s", e.Message)
	}
	return fmt.Sprintf("feed %s: %s", e.Path, e.Message)
}

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...)}
}

// unknownField returns the first field of m (alphabetically) not present in
// allowed, or "" when every field is known.
func unknownField(m map[string]any, allowed ...string) string {
	known := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		known[a] = true
	}
	var unknown []string
	for field := range m {
		if !known[field] {
			unknown = append(unknown, field)
		}
	}
	if len(unknown) == 0 {
		return ""
	}
	sort.Strings(unknown)
	return unknown[0]
}

// parseDate parses an optional wire date; empty input yields the zero time.
func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, parseErrorf("%s: invalid date %q (want YYYY-MM-DD)", field, value)
	}
	return t, nil
}
