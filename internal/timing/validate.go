package timing

import (
	"fmt"
	"sort"

	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// ValidateTree checks the structural guarantees the upstream dasha
// calculator promises: every period carries a known planet and level, no
// period ends before it starts, and within each level the periods are
// non-overlapping and contiguous. Compute degrades to an indeterminate
// timeline on any violation; feed loaders call this directly to surface the
// problem to the operator.
func ValidateTree(periods []core.PlanetaryPeriod) error {
	byLevel := make(map[core.PeriodLevel][]core.PlanetaryPeriod)
	for i, p := range periods {
		if !p.Planet.Valid() {
			return fmt.Errorf("period %d: unknown planet %q", i, p.Planet)
		}
		if !p.Level.Valid() {
			return fmt.Errorf("period %d: unknown level %q", i, p.Level)
		}
		if p.End.Before(p.Start) {
			return fmt.Errorf("period %d (%s %s): ends %s before it starts %s",
				i, p.Planet, p.Level, p.End.Format("2006-01-02"), p.Start.Format("2006-01-02"))
		}
		byLevel[p.Level] = append(byLevel[p.Level], p)
	}

	for _, level := range core.AllPeriodLevels {
		run := byLevel[level]
		sort.Slice(run, func(i, j int) bool { return run[i].Start.Before(run[j].Start) })
		for i := 1; i < len(run); i++ {
			prev, next := run[i-1], run[i]
			if next.Start.Before(prev.End) {
				return fmt.Errorf("%s level: %s period starting %s overlaps %s period ending %s",
					level, next.Planet, next.Start.Format("2006-01-02"),
					prev.Planet, prev.End.Format("2006-01-02"))
			}
			if next.Start.After(prev.End) {
				return fmt.Errorf("%s level: gap between %s period ending %s and %s period starting %s",
					level, prev.Planet, prev.End.Format("2006-01-02"),
					next.Planet, next.Start.Format("2006-01-02"))
			}
		}
	}
	return nil
}
