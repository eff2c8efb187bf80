package timing

import (
	"sort"
	"time"

	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// peaks finds the maximal half-open intervals where windows of two or more
// distinct forming planets overlap. Overlap between windows of the same
// planet (a major period containing its own sub period) is not a peak.
//
// The sweep cuts the time axis at every window boundary. Each elementary
// interval is either fully inside a window or fully outside it, so the set
// of active planets is constant per interval; adjacent intervals with the
// same planet set coalesce into one peak.
func peaks(windows []core.ActivationWindow) []core.PeakPeriod {
	if len(windows) < 2 {
		return nil
	}

	bounds := make([]time.Time, 0, len(windows)*2)
	for _, w := range windows {
		bounds = append(bounds, w.Start, w.End)
	}
	sort.Slice(bounds, func(i, j int) bool { return bounds[i].Before(bounds[j]) })
	bounds = dedupeTimes(bounds)

	var out []core.PeakPeriod
	for i := 0; i+1 < len(bounds); i++ {
		start, end := bounds[i], bounds[i+1]

		active := make(map[core.Planet]bool)
		for _, w := range windows {
			if !w.Start.After(start) && start.Before(w.End) {
				active[w.Planet] = true
			}
		}
		if len(active) < 2 {
			continue
		}

		planets := sortedPlanets(active)
		if n := len(out); n > 0 && out[n-1].End.Equal(start) && samePlanets(out[n-1].Planets, planets) {
			out[n-1].End = end
			continue
		}
		out = append(out, core.PeakPeriod{Start: start, End: end, Planets: planets})
	}
	return out
}

func dedupeTimes(sorted []time.Time) []time.Time {
	out := sorted[:0]
	for _, t := range sorted {
		if len(out) == 0 || !out[len(out)-1].Equal(t) {
			out = append(out, t)
		}
	}
	return out
}

// planetOrder ranks planets in their traditional sequence for stable peak
// reporting.
var planetOrder = func() map[core.Planet]int {
	order := make(map[core.Planet]int, len(core.AllPlanets))
	for i, p := range core.AllPlanets {
		order[p] = i
	}
	return order
}()

func sortedPlanets(set map[core.Planet]bool) []core.Planet {
	out := make([]core.Planet, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return planetOrder[out[i]] < planetOrder[out[j]] })
	return out
}

func samePlanets(a, b []core.Planet) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
