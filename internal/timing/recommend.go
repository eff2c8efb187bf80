package timing

import "github.com/arytiwari/jioastro-sub006/pkg/core"

// AdvisoryIndeterminate is the single recommendation attached when no
// timing basis exists for a yoga.
const AdvisoryIndeterminate = "Timing could not be established from the supplied dasha sequence; treat this combination as chart-level context only."

// recommendationTable holds the fixed guidance strings per tier, split by
// whether an activation window is currently running. Pure lookup; nothing
// here is generated or scored.
var recommendationTable = map[core.Tier]struct{ active, dormant []string }{
	core.TierMajorPositive: {
		active: []string{
			"Lean into the life areas this combination strengthens; favorable periods reward initiative.",
			"Schedule significant undertakings inside the current activation window.",
		},
		dormant: []string{
			"Prepare groundwork now so the next activation window finds you ready.",
			"Track the forming planets' upcoming periods when planning long-term efforts.",
		},
	},
	core.TierMajorChallenge: {
		active: []string{
			"Exercise extra care in the affected life areas while the period runs.",
			"Favor steady routines and remedial practice over major new commitments.",
		},
		dormant: []string{
			"Use the quiet interval to build resilience in the affected life areas.",
			"Plan demanding ventures outside the upcoming activation windows.",
		},
	},
	core.TierStandard: {
		active: []string{
			"Moderate influences are in play; weigh them alongside stronger chart factors.",
			"Observe how the indicated themes express during this period before acting on them.",
		},
		dormant: []string{
			"This combination is dormant; revisit it when a forming planet's period begins.",
			"No immediate action is indicated outside an activation window.",
		},
	},
	core.TierMinor: {
		active: []string{
			"Treat current effects as background coloration rather than a driving force.",
			"Minor combinations refine, not override, the chart's principal indications.",
		},
		dormant: []string{
			"No attention is needed until a forming planet's period activates it.",
			"Minor combinations matter chiefly when reinforced by stronger concurrent periods.",
		},
	},
	core.TierSubtle: {
		active: []string{
			"Effects at this grade are felt mainly in temperament and timing preference.",
			"Consider this a nuance layered over the dominant running periods.",
		},
		dormant: []string{
			"Subtle combinations can be set aside until a forming planet's period activates them.",
			"Revisit only when studying fine-grained timing questions.",
		},
	},
}

// Recommendations returns the fixed guidance strings for a tier. Unknown
// tiers fall back to the standard-tier guidance so callers always have
// something renderable.
func Recommendations(tier core.Tier, active bool) []string {
	entry, ok := recommendationTable[tier]
	if !ok {
		entry = recommendationTable[core.TierStandard]
	}
	if active {
		return entry.active
	}
	return entry.dormant
}
