package core

// TierCoverage reports catalog coverage for one tier.
type TierCoverage struct {
	Tier Tier `json:"tier"`
	// Total is the number of catalog entries in this tier.
	Total int `json:"total"`
	// Implemented counts entries with working upstream detection logic.
	Implemented int `json:"implemented"`
	// Coverage is Implemented/Total x 100, rounded to two decimals.
	Coverage float64 `json:"coverage_percent"`
	// Observed counts detections actually seen in the supplied corpus.
	Observed int `json:"observed"`
}

// CoverageReport aggregates catalog coverage per tier and overall.
type CoverageReport struct {
	Tiers   []TierCoverage `json:"tiers"`
	Overall TierCoverage   `json:"overall"`
	// UnresolvedObserved counts corpus detections that resolved to no
	// catalog entry; they are excluded from the per-tier observed counts'
	// catalog attribution but reported here for completeness.
	UnresolvedObserved int `json:"unresolved_observed"`
}
