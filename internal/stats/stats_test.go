package stats

import (
	"testing"

	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

func def(name string, tier core.Tier) *core.YogaDefinition {
	return &core.YogaDefinition{CanonicalName: name, Tier: tier, LifeArea: core.AreaWealth}
}

func TestAggregate_PerTierAndOverall(t *testing.T) {
	defs := []*core.YogaDefinition{
		def("Gaja Kesari Yoga", core.TierMajorPositive),
		def("Dhana Yoga", core.TierMajorPositive),
		def("Kemadruma Yoga", core.TierMajorChallenge),
		def("Sunapha Yoga", core.TierStandard),
		def("Anapha Yoga", core.TierStandard),
		def("Vesi Yoga", core.TierStandard),
	}
	implemented := map[string]struct{}{
		"Gaja Kesari Yoga": {},
		"Sunapha Yoga":     {},
	}

	report := Aggregate(defs, implemented, nil)

	if len(report.Tiers) != len(core.AllTiers) {
		t.Fatalf("expected one bucket per tier, got %d", len(report.Tiers))
	}

	byTier := make(map[core.Tier]core.TierCoverage)
	for _, tc := range report.Tiers {
		byTier[tc.Tier] = tc
	}

	mp := byTier[core.TierMajorPositive]
	if mp.Total != 2 || mp.Implemented != 1 {
		t.Errorf("major_positive: expected 2 total / 1 implemented, got %d/%d", mp.Total, mp.Implemented)
	}
	if mp.Coverage != 50.00 {
		t.Errorf("major_positive: expected coverage 50.00, got %v", mp.Coverage)
	}

	std := byTier[core.TierStandard]
	if std.Total != 3 || std.Implemented != 1 {
		t.Errorf("standard: expected 3 total / 1 implemented, got %d/%d", std.Total, std.Implemented)
	}
	// 1/3 x 100 rounds to two decimals.
	if std.Coverage != 33.33 {
		t.Errorf("standard: expected coverage 33.33, got %v", std.Coverage)
	}

	if report.Overall.Total != 6 || report.Overall.Implemented != 2 {
		t.Errorf("overall: expected 6 total / 2 implemented, got %d/%d",
			report.Overall.Total, report.Overall.Implemented)
	}
	if report.Overall.Coverage != 33.33 {
		t.Errorf("overall: expected coverage 33.33, got %v", report.Overall.Coverage)
	}
}

func TestAggregate_EmptyTier(t *testing.T) {
	report := Aggregate(nil, nil, nil)

	for _, tc := range report.Tiers {
		if tc.Total != 0 || tc.Coverage != 0 {
			t.Errorf("tier %v: expected empty bucket with zero coverage, got %+v", tc.Tier, tc)
		}
	}
	if report.Overall.Coverage != 0 {
		t.Errorf("expected zero overall coverage, got %v", report.Overall.Coverage)
	}
}

func TestAggregate_ObservedCounts(t *testing.T) {
	defs := []*core.YogaDefinition{
		def("Gaja Kesari Yoga", core.TierMajorPositive),
		def("Vesi Yoga", core.TierStandard),
	}
	observed := []core.NormalizedYoga{
		{CanonicalName: "Gaja Kesari Yoga", Tier: core.TierMajorPositive},
		{CanonicalName: "Gaja Kesari Yoga", Tier: core.TierMajorPositive, ChartID: "other"},
		{CanonicalName: "Vesi Yoga", Tier: core.TierStandard},
		{CanonicalName: "Xyz Yoga", Tier: core.TierStandard, Unresolved: true, Unclassified: true},
	}

	report := Aggregate(defs, nil, observed)

	byTier := make(map[core.Tier]core.TierCoverage)
	for _, tc := range report.Tiers {
		byTier[tc.Tier] = tc
	}

	if got := byTier[core.TierMajorPositive].Observed; got != 2 {
		t.Errorf("major_positive: expected 2 observed, got %d", got)
	}
	if got := byTier[core.TierStandard].Observed; got != 1 {
		t.Errorf("standard: expected 1 observed, got %d", got)
	}
	if report.Overall.Observed != 3 {
		t.Errorf("overall: expected 3 observed, got %d", report.Overall.Observed)
	}
	// The passthrough entry lands in the separate unresolved count, not in
	// the standard tier's bucket.
	if report.UnresolvedObserved != 1 {
		t.Errorf("expected 1 unresolved observation, got %d", report.UnresolvedObserved)
	}
}

func TestAggregate_Rounding(t *testing.T) {
	tests := []struct {
		implemented int
		total       int
		want        float64
	}{
		{1, 3, 33.33},
		{2, 3, 66.67},
		{1, 6, 16.67},
		{1, 7, 14.29},
		{251, 251, 100.00},
		{0, 5, 0},
		{0, 0, 0},
	}

	for _, tt := range tests {
		if got := percentage(tt.implemented, tt.total); got != tt.want {
			t.Errorf("percentage(%d, %d): expected %v, got %v", tt.implemented, tt.total, got, tt.want)
		}
	}
}
