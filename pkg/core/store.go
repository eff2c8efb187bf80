package core

import "context"

// ReviewStore persists the unresolved-name review queue.
type ReviewStore interface {
	// RecordUnresolved upserts a sighting of an unresolved raw name: a new
	// pending entry on first sight, an occurrence increment afterwards.
	RecordUnresolved(ctx context.Context, rawName, normalizedName, chartID string) (*ReviewEntry, error)
	// ListReview returns entries filtered by status; an empty status lists
	// all entries, most recently seen first.
	ListReview(ctx context.Context, status ReviewStatus) ([]*ReviewEntry, error)
	// GetReview returns the entry by id, or nil when absent.
	GetReview(ctx context.Context, id string) (*ReviewEntry, error)
	// ResolveReview marks an entry resolved to a canonical name.
	ResolveReview(ctx context.Context, id, canonicalName string) error
	// DismissReview marks an entry dismissed.
	DismissReview(ctx context.Context, id string) error
}

// AnalysisStore persists deduplication runs and their emitted yogas.
type AnalysisStore interface {
	SaveAnalysis(ctx context.Context, analysis *Analysis, yogas []NormalizedYoga) error
	GetAnalysis(ctx context.Context, id string) (*Analysis, []*AnalysisYoga, error)
	// ListAnalyses returns runs for a chart, newest first; an empty chartID
	// lists runs for all charts.
	ListAnalyses(ctx context.Context, chartID string, limit int) ([]*Analysis, error)
}

// Store is the full persistence surface of the state database.
type Store interface {
	ReviewStore
	AnalysisStore
	// Ping verifies the backing database is reachable.
	Ping(ctx context.Context) error
	Close() error
}
