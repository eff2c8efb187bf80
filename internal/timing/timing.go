// Package timing derives activation timelines for yogas from a subject's
// planetary period tree. A yoga is considered active while one of its
// forming planets rules a period; the period's nesting level grades the
// intensity. All results are advisory: malformed or missing period data
// degrades to an indeterminate timeline, never an error.
package timing

import (
	"sort"
	"time"

	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// Reference supplies the subject-relative reference points for status and
// age classification. A zero Now defaults to the current wall clock; a zero
// Birth leaves the activation age undeterminable.
type Reference struct {
	Birth time.Time
	Now   time.Time
}

// Compute builds the full activation timeline for one yoga against one
// period tree. The window list is ordered by ascending start date. Status,
// age and recommendations are derived per the classification rules on
// core.ActivationStatus; an empty forming-planet set, an empty tree, or a
// tree failing ValidateTree yields Status indeterminate with no windows.
func Compute(def *core.YogaDefinition, periods []core.PlanetaryPeriod, ref Reference) core.Timeline {
	tl := core.Timeline{
		CanonicalName: def.CanonicalName,
		Status:        core.StatusIndeterminate,
		ActivationAge: ageNotDeterminable,
	}

	if len(def.FormingPlanets) == 0 || len(periods) == 0 || ValidateTree(periods) != nil {
		tl.Recommendations = []string{AdvisoryIndeterminate}
		return tl
	}

	forming := make(map[core.Planet]bool, len(def.FormingPlanets))
	for _, p := range def.FormingPlanets {
		forming[p] = true
	}

	windows := make([]core.ActivationWindow, 0, len(periods))
	for _, p := range periods {
		if !forming[p.Planet] {
			continue
		}
		windows = append(windows, core.ActivationWindow{
			Planet:    p.Planet,
			Level:     p.Level,
			Start:     p.Start,
			End:       p.End,
			Intensity: intensityFor(p.Level),
		})
	}
	if len(windows) == 0 {
		tl.Recommendations = []string{AdvisoryIndeterminate}
		return tl
	}

	sortWindows(windows)

	now := ref.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	tl.Windows = windows
	tl.PeakPeriods = peaks(windows)
	tl.Status = statusAt(windows, now)
	tl.ActivationAge = activationAge(windows, ref.Birth)
	tl.Recommendations = Recommendations(def.Tier, tl.Status == core.StatusCurrentlyActive)
	return tl
}

// intensityFor maps a period level to its activation intensity: the broader
// the period of a forming planet, the more pronounced the effect.
func intensityFor(level core.PeriodLevel) core.Intensity {
	switch level {
	case core.LevelMajor:
		return core.IntensityHigh
	case core.LevelSub:
		return core.IntensityMedium
	default:
		return core.IntensityLow
	}
}

// sortWindows orders by start date ascending; ties break by level (broadest
// first), then planet name, so identical input yields identical output.
func sortWindows(windows []core.ActivationWindow) {
	sort.Slice(windows, func(i, j int) bool {
		a, b := windows[i], windows[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if a.Level != b.Level {
			return a.Level.Rank() < b.Level.Rank()
		}
		return a.Planet < b.Planet
	})
}

// statusAt classifies the timeline against now. Inside any window is
// currently_active; past every window is completed; everything else,
// including the stretch between two windows, is not_yet_activated because
// the next activation has not begun.
func statusAt(windows []core.ActivationWindow, now time.Time) core.ActivationStatus {
	allEnded := true
	for _, w := range windows {
		if w.Contains(now) {
			return core.StatusCurrentlyActive
		}
		if now.Before(w.End) {
			allEnded = false
		}
	}
	if allEnded {
		return core.StatusCompleted
	}
	return core.StatusNotYetActivated
}

const ageNotDeterminable = "not determinable from the current dasha sequence"

// ageBuckets maps the subject's age at first major activation to a coarse
// life-stage phrase. Upper bounds are exclusive.
var ageBuckets = []struct {
	below float64
	label string
}{
	{18, "early life (childhood and adolescence)"},
	{30, "young adulthood (18-30)"},
	{45, "early midlife (30-45)"},
	{60, "later midlife (45-60)"},
}

const ageElder = "elder years (60 onwards)"

// activationAge describes the life stage at which the first major-level
// window begins, measured from the birth reference. Windows arrive sorted,
// so the first major-level entry is the earliest.
func activationAge(windows []core.ActivationWindow, birth time.Time) string {
	if birth.IsZero() {
		return ageNotDeterminable
	}
	for _, w := range windows {
		if w.Level != core.LevelMajor {
			continue
		}
		years := w.Start.Sub(birth).Hours() / (24 * 365.25)
		if years < 0 {
			years = 0
		}
		for _, b := range ageBuckets {
			if years < b.below {
				return b.label
			}
		}
		return ageElder
	}
	return ageNotDeterminable
}
