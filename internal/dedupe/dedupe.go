// Package dedupe collapses raw per-chart detections into one entry per
// canonical yoga. Multiple spellings of the same yoga merge into a single
// normalized entry carrying the maximum detected strength and the full list
// of merged raw names.
package dedupe

import (
	"github.com/arytiwari/jioastro-sub006/internal/normalize"
	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// Merge deduplicates a batch of detections. Grouping is by resolved
// canonical name; unresolved names group by their folded spelling and never
// merge into a catalog entry. Detections from different charts never merge:
// a mixed batch yields one entry per chart and name.
//
// The merged entry keeps the maximum strength ordinal across the group and
// the planets/houses metadata of the strongest detection (first wins on a
// tie). Provenance records every merged raw name in input order. Output
// order is first-detection order, so identical input always yields
// identical output.
func Merge(resolver *normalize.Resolver, detections []core.YogaDetection) []core.NormalizedYoga {
	groups := make(map[string]*core.NormalizedYoga)
	order := make([]string, 0, len(detections))

	for _, d := range detections {
		res := resolver.Resolve(d.RawName)

		// Folded passthrough keys are lower-case and canonical names are
		// not, so resolved and unresolved groups can share one keyspace.
		key := d.ChartID + "\x00" + res.Key

		g, ok := groups[key]
		if !ok {
			entry := &core.NormalizedYoga{
				CanonicalName: res.Display,
				Tier:          core.TierStandard,
				Strength:      d.Strength,
				Provenance:    []string{d.RawName},
				Planets:       d.Planets,
				Houses:        d.Houses,
				ChartID:       d.ChartID,
				Unresolved:    res.Unresolved,
				Unclassified:  res.Unresolved,
			}
			if res.Definition != nil {
				entry.Tier = res.Definition.Tier
				entry.LifeArea = res.Definition.LifeArea
			}
			groups[key] = entry
			order = append(order, key)
			continue
		}

		g.Provenance = append(g.Provenance, d.RawName)
		if d.Strength > g.Strength {
			g.Strength = d.Strength
			g.Planets = d.Planets
			g.Houses = d.Houses
		}
	}

	if len(order) == 0 {
		return nil
	}
	out := make([]core.NormalizedYoga, 0, len(order))
	for _, key := range order {
		out = append(out, *groups[key])
	}
	return out
}
