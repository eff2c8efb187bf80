package core

import "strings"

// =============================================================================
// Tier
// =============================================================================

// Tier is the static importance class of a yoga. Tier assignment is an
// editorial decision curated in the catalog, never computed at runtime.
type Tier string

// Category tiers, from most to least consequential.
//
// Curation criteria (documentation only, not runtime logic):
//   - major_positive: substantial wealth, authority, exceptional learning, or
//     spiritual attainment; canonically described as highly auspicious.
//   - major_challenge: significant obstruction or affliction requiring
//     remediation, or an explicit classical warning.
//   - standard: moderate, direction-dependent effect on a specific life area.
//   - minor: subtle personality-level effect, supportive to a major yoga.
//   - subtle: very small effect, typically needing another yoga to activate
//     its relevance.
const (
	TierMajorPositive  Tier = "major_positive"
	TierMajorChallenge Tier = "major_challenge"
	TierStandard       Tier = "standard"
	TierMinor          Tier = "minor"
	TierSubtle         Tier = "subtle"
)

// AllTiers lists tiers in display order.
var AllTiers = []Tier{
	TierMajorPositive,
	TierMajorChallenge,
	TierStandard,
	TierMinor,
	TierSubtle,
}

// TierOrder maps each tier to its display rank (lower is more consequential).
var TierOrder = map[Tier]int{
	TierMajorPositive:  0,
	TierMajorChallenge: 1,
	TierStandard:       2,
	TierMinor:          3,
	TierSubtle:         4,
}

// String returns the wire representation of the tier.
func (t Tier) String() string { return string(t) }

// Valid reports whether t is one of the five known tiers.
func (t Tier) Valid() bool {
	_, ok := TierOrder[t]
	return ok
}

// ParseTier converts a string to a Tier. Returns the tier and true if valid,
// or TierStandard and false if the input names no known tier.
func ParseTier(s string) (Tier, bool) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if t.Valid() {
		return t, true
	}
	return TierStandard, false
}

// =============================================================================
// LifeArea
// =============================================================================

// LifeArea tags the sphere of life a yoga chiefly acts on.
type LifeArea string

// Life area tags used by the catalog.
const (
	AreaWealth        LifeArea = "wealth"
	AreaCareer        LifeArea = "career"
	AreaRelationships LifeArea = "relationships"
	AreaHealth        LifeArea = "health"
	AreaSpirituality  LifeArea = "spirituality"
	AreaPersonality   LifeArea = "personality"
	AreaLearning      LifeArea = "learning"
	AreaFame          LifeArea = "fame"
	AreaFamily        LifeArea = "family"
	AreaLongevity     LifeArea = "longevity"
)

// AllLifeAreas lists the known life area tags in display order.
var AllLifeAreas = []LifeArea{
	AreaWealth,
	AreaCareer,
	AreaRelationships,
	AreaHealth,
	AreaSpirituality,
	AreaPersonality,
	AreaLearning,
	AreaFame,
	AreaFamily,
	AreaLongevity,
}

// String returns the wire representation of the life area.
func (a LifeArea) String() string { return string(a) }

// Valid reports whether a is a known life area tag.
func (a LifeArea) Valid() bool {
	for _, known := range AllLifeAreas {
		if a == known {
			return true
		}
	}
	return false
}

// ParseLifeArea converts a string to a LifeArea. Returns the area and true if
// valid, or an empty LifeArea and false otherwise.
func ParseLifeArea(s string) (LifeArea, bool) {
	a := LifeArea(strings.ToLower(strings.TrimSpace(s)))
	if a.Valid() {
		return a, true
	}
	return "", false
}
