package core

import (
	"fmt"
	"strings"
)

// Strength is the ordinal strength scale reported by the upstream detector.
// The zero value is Weak; ordering is meaningful (Weak < Medium < Strong <
// VeryStrong) and deduplication keeps the maximum across merged detections.
type Strength int

// Strength ordinals.
const (
	StrengthWeak Strength = iota
	StrengthMedium
	StrengthStrong
	StrengthVeryStrong
)

// String returns the display name of the strength ordinal.
func (s Strength) String() string {
	switch s {
	case StrengthWeak:
		return "Weak"
	case StrengthMedium:
		return "Medium"
	case StrengthStrong:
		return "Strong"
	case StrengthVeryStrong:
		return "Very Strong"
	default:
		return "Weak"
	}
}

// ParseStrength converts a string to a Strength value. Hyphens and
// underscores are treated as spaces and matching is case-insensitive.
// Returns the strength and true if valid, or StrengthWeak and false if not.
func ParseStrength(s string) (Strength, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "-", " ")
	norm = strings.ReplaceAll(norm, "_", " ")
	norm = strings.Join(strings.Fields(norm), " ")
	switch norm {
	case "weak":
		return StrengthWeak, true
	case "medium", "moderate":
		return StrengthMedium, true
	case "strong":
		return StrengthStrong, true
	case "very strong", "verystrong":
		return StrengthVeryStrong, true
	default:
		return StrengthWeak, false
	}
}

// Max returns the stronger of two ordinals.
func (s Strength) Max(other Strength) Strength {
	if other > s {
		return other
	}
	return s
}

// MarshalJSON encodes the strength as its display name.
func (s Strength) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON decodes a strength from its display name.
func (s *Strength) UnmarshalJSON(data []byte) error {
	name := strings.Trim(string(data), `"`)
	parsed, ok := ParseStrength(name)
	if !ok {
		return fmt.Errorf("unknown strength %q", name)
	}
	*s = parsed
	return nil
}
