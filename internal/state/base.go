package state

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// baseStore implements the store operations on a database/sql handle. The
// SQL is written with ? placeholders; bind rewrites them for backends that
// number their parameters.
type baseStore struct {
	db   *sql.DB
	bind func(string) string
}

func bindQuestion(q string) string { return q }

// bindDollar rewrites ? placeholders to $1..$n.
func bindDollar(q string) string {
	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func generateID() string {
	return uuid.New().String()
}

// Ping verifies the backing database is reachable.
func (s *baseStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *baseStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// --- Review queue operations ---

const reviewColumns = `id, raw_name, normalized_name, chart_id, occurrences, first_seen, last_seen, status, resolved_canonical`

// RecordUnresolved upserts a sighting of an unresolved raw name. The first
// sighting creates a pending entry; repeats increment the occurrence count
// and touch last_seen, keeping the first raw name and chart id.
func (s *baseStore) RecordUnresolved(ctx context.Context, rawName, normalizedName, chartID string) (*core.ReviewEntry, error) {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, s.bind(
		`INSERT INTO review_queue (id, raw_name, normalized_name, chart_id, occurrences, first_seen, last_seen, status)
		 VALUES (?, ?, ?, ?, 1, ?, ?, ?)
		 ON CONFLICT (normalized_name) DO UPDATE SET
		   occurrences = occurrences + 1,
		   last_seen = excluded.last_seen`),
		generateID(), rawName, normalizedName, chartID, now, now, core.ReviewPending,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record unresolved name: %w", err)
	}

	entry, err := scanReviewEntry(s.db.QueryRowContext(ctx, s.bind(
		`SELECT `+reviewColumns+` FROM review_queue WHERE normalized_name = ?`), normalizedName))
	if err != nil {
		return nil, fmt.Errorf("failed to read back review entry: %w", err)
	}
	return entry, nil
}

// ListReview returns entries filtered by status, most recently seen first.
// An empty status lists everything.
func (s *baseStore) ListReview(ctx context.Context, status core.ReviewStatus) ([]*core.ReviewEntry, error) {
	query := `SELECT ` + reviewColumns + ` FROM review_queue ORDER BY last_seen DESC`
	var args []any
	if status != "" {
		query = `SELECT ` + reviewColumns + ` FROM review_queue WHERE status = ? ORDER BY last_seen DESC`
		args = append(args, status)
	}

	rows, err := s.db.QueryContext(ctx, s.bind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list review queue: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*core.ReviewEntry
	for rows.Next() {
		entry, err := scanReviewEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating review queue: %w", err)
	}
	return entries, nil
}

// GetReview returns the entry by id, or nil when absent.
func (s *baseStore) GetReview(ctx context.Context, id string) (*core.ReviewEntry, error) {
	entry, err := scanReviewEntry(s.db.QueryRowContext(ctx, s.bind(
		`SELECT `+reviewColumns+` FROM review_queue WHERE id = ?`), id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review entry: %w", err)
	}
	return entry, nil
}

// ResolveReview marks an entry resolved to a canonical name.
func (s *baseStore) ResolveReview(ctx context.Context, id, canonicalName string) error {
	return s.updateReview(ctx, id, core.ReviewResolved, canonicalName)
}

// DismissReview marks an entry dismissed.
func (s *baseStore) DismissReview(ctx context.Context, id string) error {
	return s.updateReview(ctx, id, core.ReviewDismissed, "")
}

func (s *baseStore) updateReview(ctx context.Context, id string, status core.ReviewStatus, canonical string) error {
	result, err := s.db.ExecContext(ctx, s.bind(
		`UPDATE review_queue SET status = ?, resolved_canonical = ? WHERE id = ?`),
		status, canonical, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update review entry: %w", err)
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("review entry %s: %w", id, core.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReviewEntry(row rowScanner) (*core.ReviewEntry, error) {
	entry := &core.ReviewEntry{}
	var status string
	err := row.Scan(&entry.ID, &entry.RawName, &entry.NormalizedName, &entry.ChartID,
		&entry.Occurrences, &entry.FirstSeen, &entry.LastSeen, &status, &entry.ResolvedCanonical)
	if err != nil {
		return nil, err
	}
	entry.Status = core.ReviewStatus(status)
	entry.FirstSeen = entry.FirstSeen.UTC()
	entry.LastSeen = entry.LastSeen.UTC()
	return entry, nil
}

// --- Analysis operations ---

// SaveAnalysis persists a deduplication run and its yogas in one
// transaction. A zero ID or CreatedAt is filled in.
func (s *baseStore) SaveAnalysis(ctx context.Context, analysis *core.Analysis, yogas []core.NormalizedYoga) error {
	if analysis.ID == "" {
		analysis.ID = generateID()
	}
	if analysis.CreatedAt.IsZero() {
		analysis.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, s.bind(
		`INSERT INTO analyses (id, chart_id, created_at, detection_count, yoga_count, unresolved_count)
		 VALUES (?, ?, ?, ?, ?, ?)`),
		analysis.ID, analysis.ChartID, analysis.CreatedAt,
		analysis.DetectionCount, analysis.YogaCount, analysis.UnresolvedCount,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	for i, y := range yogas {
		provenance, err := json.Marshal(y.Provenance)
		if err != nil {
			return fmt.Errorf("failed to encode provenance: %w", err)
		}
		_, err = tx.ExecContext(ctx, s.bind(
			`INSERT INTO analysis_yogas (id, analysis_id, position, canonical_name, tier, life_area, strength, unresolved, provenance)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
			generateID(), analysis.ID, i, y.CanonicalName, string(y.Tier), string(y.LifeArea),
			int(y.Strength), y.Unresolved, string(provenance),
		)
		if err != nil {
			return fmt.Errorf("failed to save analysis yoga: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit analysis: %w", err)
	}
	return nil
}

// GetAnalysis retrieves a run and its yogas, in the order they were saved.
func (s *baseStore) GetAnalysis(ctx context.Context, id string) (*core.Analysis, []*core.AnalysisYoga, error) {
	analysis := &core.Analysis{}
	err := s.db.QueryRowContext(ctx, s.bind(
		`SELECT id, chart_id, created_at, detection_count, yoga_count, unresolved_count
		 FROM analyses WHERE id = ?`), id,
	).Scan(&analysis.ID, &analysis.ChartID, &analysis.CreatedAt,
		&analysis.DetectionCount, &analysis.YogaCount, &analysis.UnresolvedCount)
	if err == sql.ErrNoRows {
		return nil, nil, fmt.Errorf("analysis %s: %w", id, core.ErrNotFound)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	analysis.CreatedAt = analysis.CreatedAt.UTC()

	rows, err := s.db.QueryContext(ctx, s.bind(
		`SELECT id, analysis_id, canonical_name, tier, life_area, strength, unresolved, provenance
		 FROM analysis_yogas WHERE analysis_id = ? ORDER BY position`), id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query analysis yogas: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var yogas []*core.AnalysisYoga
	for rows.Next() {
		y := &core.AnalysisYoga{}
		var tier, area, provenance string
		var strength int
		if err := rows.Scan(&y.ID, &y.AnalysisID, &y.CanonicalName, &tier, &area, &strength, &y.Unresolved, &provenance); err != nil {
			return nil, nil, fmt.Errorf("failed to scan analysis yoga: %w", err)
		}
		y.Tier = core.Tier(tier)
		y.LifeArea = core.LifeArea(area)
		y.Strength = core.Strength(strength)
		if err := json.Unmarshal([]byte(provenance), &y.Provenance); err != nil {
			return nil, nil, fmt.Errorf("failed to decode provenance: %w", err)
		}
		yogas = append(yogas, y)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating analysis yogas: %w", err)
	}
	return analysis, yogas, nil
}

// ListAnalyses returns runs for a chart, newest first. An empty chartID
// lists runs for all charts; a non-positive limit defaults to 50.
func (s *baseStore) ListAnalyses(ctx context.Context, chartID string, limit int) ([]*core.Analysis, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, chart_id, created_at, detection_count, yoga_count, unresolved_count
		 FROM analyses ORDER BY created_at DESC LIMIT ?`
	args := []any{limit}
	if chartID != "" {
		query = `SELECT id, chart_id, created_at, detection_count, yoga_count, unresolved_count
		 FROM analyses WHERE chart_id = ? ORDER BY created_at DESC LIMIT ?`
		args = []any{chartID, limit}
	}

	rows, err := s.db.QueryContext(ctx, s.bind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var analyses []*core.Analysis
	for rows.Next() {
		a := &core.Analysis{}
		if err := rows.Scan(&a.ID, &a.ChartID, &a.CreatedAt, &a.DetectionCount, &a.YogaCount, &a.UnresolvedCount); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		a.CreatedAt = a.CreatedAt.UTC()
		analyses = append(analyses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating analyses: %w", err)
	}
	return analyses, nil
}
