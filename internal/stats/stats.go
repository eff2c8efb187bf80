// Package stats aggregates catalog coverage figures for the dashboard and
// the coverage command. Pure computation: nothing here mutates the registry
// or the detection corpus.
package stats

import (
	"math"

	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// Aggregate computes per-tier and overall coverage. Implemented membership
// is case-sensitive on canonical names, since implemented sets are produced
// from the same registry-controlled strings. Observed counts attribute each
// corpus entry to its curated tier; unresolved passthrough entries are
// reported separately rather than distorting a tier bucket.
func Aggregate(defs []*core.YogaDefinition, implemented map[string]struct{}, observed []core.NormalizedYoga) core.CoverageReport {
	byTier := make(map[core.Tier]*core.TierCoverage, len(core.AllTiers))
	for _, tier := range core.AllTiers {
		byTier[tier] = &core.TierCoverage{Tier: tier}
	}

	report := core.CoverageReport{}

	for _, def := range defs {
		tc, ok := byTier[def.Tier]
		if !ok {
			continue
		}
		tc.Total++
		report.Overall.Total++
		if _, hit := implemented[def.CanonicalName]; hit {
			tc.Implemented++
			report.Overall.Implemented++
		}
	}

	for _, obs := range observed {
		if obs.Unresolved {
			report.UnresolvedObserved++
			continue
		}
		if tc, ok := byTier[obs.Tier]; ok {
			tc.Observed++
			report.Overall.Observed++
		}
	}

	report.Tiers = make([]core.TierCoverage, 0, len(core.AllTiers))
	for _, tier := range core.AllTiers {
		tc := byTier[tier]
		tc.Coverage = percentage(tc.Implemented, tc.Total)
		report.Tiers = append(report.Tiers, *tc)
	}
	report.Overall.Coverage = percentage(report.Overall.Implemented, report.Overall.Total)
	return report
}

// percentage returns implemented/total x 100 rounded to two decimals, with
// an empty tier reported as zero coverage.
func percentage(implemented, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(implemented)/float64(total)*10000) / 100
}
