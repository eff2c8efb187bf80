package core

import (
	"strings"
	"time"
)

// =============================================================================
// Period levels
// =============================================================================

// PeriodLevel is the nesting depth of a planetary period: sub periods nest
// inside major periods, subsub periods inside sub periods.
type PeriodLevel string

// Period levels, broadest first.
const (
	LevelMajor  PeriodLevel = "major"
	LevelSub    PeriodLevel = "sub"
	LevelSubSub PeriodLevel = "subsub"
)

// AllPeriodLevels lists the levels broadest first.
var AllPeriodLevels = []PeriodLevel{LevelMajor, LevelSub, LevelSubSub}

// levelRank orders levels for deterministic sorting (broadest first).
var levelRank = map[PeriodLevel]int{LevelMajor: 0, LevelSub: 1, LevelSubSub: 2}

// String returns the wire representation of the level.
func (l PeriodLevel) String() string { return string(l) }

// Valid reports whether l is a known period level.
func (l PeriodLevel) Valid() bool {
	_, ok := levelRank[l]
	return ok
}

// Rank returns the level's depth rank, broadest first. Unknown levels sort
// after all known levels.
func (l PeriodLevel) Rank() int {
	if r, ok := levelRank[l]; ok {
		return r
	}
	return len(levelRank)
}

// ParsePeriodLevel converts a string to a PeriodLevel, accepting the
// traditional dasha level names as synonyms (mahadasha, antardasha,
// pratyantardasha). Returns the level and true if recognized.
func ParsePeriodLevel(s string) (PeriodLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "major", "maha", "mahadasha":
		return LevelMajor, true
	case "sub", "antar", "antardasha":
		return LevelSub, true
	case "subsub", "sub-sub", "pratyantar", "pratyantardasha":
		return LevelSubSub, true
	default:
		return "", false
	}
}

// =============================================================================
// Intensity and activation status
// =============================================================================

// Intensity grades how pronounced a yoga's effect is during an activation
// window. It is derived from the window's period level: a forming planet's
// major period activates at High, sub at Medium, subsub at Low.
type Intensity string

// Activation intensities.
const (
	IntensityHigh   Intensity = "High"
	IntensityMedium Intensity = "Medium"
	IntensityLow    Intensity = "Low"
)

// String returns the display name of the intensity.
func (i Intensity) String() string { return string(i) }

// ActivationStatus classifies a timeline relative to a reference "now".
type ActivationStatus string

// Activation statuses.
const (
	// StatusNotYetActivated means no window has begun (or the next window
	// has not begun when the subject sits between windows).
	StatusNotYetActivated ActivationStatus = "not_yet_activated"
	// StatusCurrentlyActive means the reference time falls inside at least
	// one activation window.
	StatusCurrentlyActive ActivationStatus = "currently_active"
	// StatusCompleted means every window ends at or before the reference time.
	StatusCompleted ActivationStatus = "completed"
	// StatusIndeterminate means timing could not be established: no forming
	// planets, no matching periods, or a malformed period tree.
	StatusIndeterminate ActivationStatus = "indeterminate"
)

// String returns the wire representation of the status.
func (s ActivationStatus) String() string { return string(s) }

// =============================================================================
// Periods and windows
// =============================================================================

// PlanetaryPeriod is one interval of the subject's dasha sequence. Intervals
// are half-open [Start, End) and are contiguous and non-overlapping among
// siblings at the same level.
type PlanetaryPeriod struct {
	Planet Planet      `json:"planet"`
	Level  PeriodLevel `json:"level"`
	Start  time.Time   `json:"start_date"`
	End    time.Time   `json:"end_date"`
}

// Contains reports whether t falls inside the half-open interval.
func (p PlanetaryPeriod) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// ActivationWindow is a span during which a yoga is considered active because
// a forming planet rules the underlying period.
type ActivationWindow struct {
	Planet    Planet      `json:"planet"`
	Level     PeriodLevel `json:"level"`
	Start     time.Time   `json:"start_date"`
	End       time.Time   `json:"end_date"`
	Intensity Intensity   `json:"intensity"`
}

// Contains reports whether t falls inside the half-open window.
func (w ActivationWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// PeakPeriod is a span where two or more activation windows overlap,
// indicating maximal combined influence. Planets lists the distinct forming
// planets whose windows cover the span.
type PeakPeriod struct {
	Start   time.Time `json:"start_date"`
	End     time.Time `json:"end_date"`
	Planets []Planet  `json:"planets"`
}

// Timeline is the full activation picture for one yoga against one subject's
// period tree. Windows are ordered by ascending start date; PeakPeriods are
// supplementary and never merged into Windows.
type Timeline struct {
	CanonicalName   string             `json:"canonical_name"`
	Status          ActivationStatus   `json:"activation_status"`
	Windows         []ActivationWindow `json:"windows"`
	PeakPeriods     []PeakPeriod       `json:"peak_periods"`
	ActivationAge   string             `json:"general_activation_age"`
	Recommendations []string           `json:"recommendations"`
}
