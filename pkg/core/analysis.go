package core

import "time"

// Analysis is one persisted deduplication run for a chart.
type Analysis struct {
	ID              string    `json:"id"`
	ChartID         string    `json:"chart_id"`
	CreatedAt       time.Time `json:"created_at"`
	DetectionCount  int       `json:"detection_count"`
	YogaCount       int       `json:"yoga_count"`
	UnresolvedCount int       `json:"unresolved_count"`
}

// AnalysisYoga is one NormalizedYoga row persisted under an analysis.
type AnalysisYoga struct {
	ID            string   `json:"id"`
	AnalysisID    string   `json:"analysis_id"`
	CanonicalName string   `json:"canonical_name"`
	Tier          Tier     `json:"category_tier"`
	LifeArea      LifeArea `json:"life_area,omitempty"`
	Strength      Strength `json:"strength_ordinal"`
	Unresolved    bool     `json:"unresolved,omitempty"`
	// Provenance is stored as a JSON array in the backing row.
	Provenance []string `json:"provenance"`
}
