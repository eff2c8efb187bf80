package core

// YogaDefinition is one canonical catalog entry. Definitions are immutable at
// runtime: a catalog change produces a new registry instance, never an edit
// in place.
type YogaDefinition struct {
	// CanonicalName is the single authoritative display name, unique across
	// the catalog.
	CanonicalName string `json:"canonical_name"`
	// VariantNames are the known alternate spellings and orderings. Every
	// variant, once case/whitespace/hyphen-folded, must resolve to exactly
	// one canonical name across the whole catalog.
	VariantNames []string `json:"variant_names,omitempty"`
	// Tier is the curated importance class.
	Tier Tier `json:"category_tier"`
	// LifeArea is the sphere of life the yoga chiefly acts on.
	LifeArea LifeArea `json:"life_area"`
	// Formation describes the planetary/house condition in prose. It is
	// informational only; this system never evaluates it.
	Formation string `json:"formation_description,omitempty"`
	// FormingPlanets are the planets whose dasha periods activate the yoga.
	// An empty set means the yoga has no period-based timing.
	FormingPlanets []Planet `json:"forming_planets,omitempty"`
}

// YogaDetection is one raw detection event emitted by the upstream detector.
// Detections are always processed per chart, never merged across charts.
type YogaDetection struct {
	// RawName is the name string as emitted upstream: any known variant or
	// an unrecognized spelling.
	RawName string `json:"raw_name"`
	// Strength is the detector-reported strength ordinal.
	Strength Strength `json:"strength_ordinal"`
	// Planets and Houses are supporting metadata, passed through unchanged.
	Planets []Planet `json:"planets_involved,omitempty"`
	Houses  []int    `json:"houses_involved,omitempty"`
	// ChartID is an opaque reference to the subject's chart.
	ChartID string `json:"chart_id,omitempty"`
}

// NormalizedYoga is the deduplicator's output: one entry per canonical name
// per chart. For a single chart no two entries share a canonical name.
type NormalizedYoga struct {
	CanonicalName string   `json:"canonical_name"`
	Tier          Tier     `json:"category_tier"`
	LifeArea      LifeArea `json:"life_area,omitempty"`
	// Strength is the maximum ordinal among all collapsed raw detections.
	Strength Strength `json:"strength_ordinal"`
	// Provenance lists the original raw names merged into this entry, in
	// input order.
	Provenance []string `json:"provenance"`
	// Planets and Houses carry the supporting metadata of the strongest
	// merged detection.
	Planets []Planet `json:"planets_involved,omitempty"`
	Houses  []int    `json:"houses_involved,omitempty"`
	ChartID string   `json:"chart_id,omitempty"`
	// Unresolved marks a passthrough entry whose raw name matched no
	// catalog variant. Unclassified marks a tier assigned by default
	// rather than curation; it always accompanies Unresolved.
	Unresolved   bool `json:"unresolved,omitempty"`
	Unclassified bool `json:"unclassified,omitempty"`
}
