package core

import "time"

// ReviewStatus tracks the curation state of an unresolved-name record.
type ReviewStatus string

// Review statuses.
const (
	ReviewPending   ReviewStatus = "pending"
	ReviewResolved  ReviewStatus = "resolved"
	ReviewDismissed ReviewStatus = "dismissed"
)

// ReviewEntry is one unresolved raw name queued for catalog growth review.
// Recording is an upsert keyed by the normalized name: repeated sightings
// increment Occurrences and touch LastSeen instead of creating new rows.
type ReviewEntry struct {
	ID             string       `json:"id"`
	RawName        string       `json:"raw_name"`
	NormalizedName string       `json:"normalized_name"`
	ChartID        string       `json:"chart_id,omitempty"`
	Occurrences    int          `json:"occurrences"`
	FirstSeen      time.Time    `json:"first_seen"`
	LastSeen       time.Time    `json:"last_seen"`
	Status         ReviewStatus `json:"status"`
	// ResolvedCanonical records the canonical name a reviewer mapped this
	// entry to; empty unless Status is resolved.
	ResolvedCanonical string `json:"resolved_canonical,omitempty"`
}
