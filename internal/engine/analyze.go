package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/arytiwari/jioastro-sub006/internal/cache"
	"github.com/arytiwari/jioastro-sub006/internal/dedupe"
	"github.com/arytiwari/jioastro-sub006/internal/normalize"
	"github.com/arytiwari/jioastro-sub006/internal/stats"
	"github.com/arytiwari/jioastro-sub006/internal/timing"
	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// suggestionLimit bounds the did-you-mean list on failed lookups.
const suggestionLimit = 3

// AnalyzeRequest is one chart's detection feed plus the references timeline
// computation needs.
type AnalyzeRequest struct {
	ChartID        string
	Detections     []core.YogaDetection
	Periods        []core.PlanetaryPeriod
	PeriodsVersion string
	Birth          time.Time
	Now            time.Time
	// Save persists the run to the analyses tables. Unlike review
	// recording, an explicit save failure fails the request.
	Save bool
	// AllTimelines computes timelines for every resolved yoga instead of
	// only Strong and Very Strong ones.
	AllTimelines bool
}

// AnalysisResult is the outcome of one analysis run.
type AnalysisResult struct {
	ChartID         string                    `json:"chart_id"`
	Yogas           []core.NormalizedYoga     `json:"yogas"`
	Timelines       map[string]*core.Timeline `json:"timelines,omitempty"`
	UnresolvedCount int                       `json:"unresolved_count"`
	// Analysis is set when the run was saved.
	Analysis *core.Analysis `json:"analysis,omitempty"`
}

// Analyze normalizes and deduplicates a detection feed, records unresolved
// names to the review queue (best-effort), and computes activation
// timelines when a period tree is supplied.
func (e *Engine) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalysisResult, error) {
	reg := e.Registry()
	resolver := normalize.NewResolver(reg)

	yogas := dedupe.Merge(resolver, req.Detections)
	result := &AnalysisResult{ChartID: req.ChartID, Yogas: yogas}

	for _, y := range yogas {
		if !y.Unresolved {
			continue
		}
		result.UnresolvedCount++
		e.recordUnresolved(ctx, y)
	}

	if len(req.Periods) > 0 {
		ref := timing.Reference{Birth: req.Birth, Now: req.Now}
		result.Timelines = make(map[string]*core.Timeline)
		for _, y := range yogas {
			if y.Unresolved {
				continue
			}
			if !req.AllTimelines && y.Strength < core.StrengthStrong {
				continue
			}
			def, ok := reg.Get(y.CanonicalName)
			if !ok {
				continue
			}
			result.Timelines[y.CanonicalName] = e.timeline(ctx, def, req.Periods, req.PeriodsVersion, ref)
		}
	}

	if req.Save {
		analysis := &core.Analysis{
			ChartID:         req.ChartID,
			DetectionCount:  len(req.Detections),
			YogaCount:       len(yogas),
			UnresolvedCount: result.UnresolvedCount,
		}
		if err := e.store.SaveAnalysis(ctx, analysis, yogas); err != nil {
			return nil, fmt.Errorf("failed to save analysis: %w", err)
		}
		result.Analysis = analysis
	}

	return result, nil
}

// recordUnresolved queues a passthrough entry for catalog review. Failures
// are logged at debug and never fail the analysis.
func (e *Engine) recordUnresolved(ctx context.Context, y core.NormalizedYoga) {
	raw := y.CanonicalName
	if len(y.Provenance) > 0 {
		raw = y.Provenance[0]
	}
	if _, err := e.store.RecordUnresolved(ctx, raw, normalize.Fold(raw), y.ChartID); err != nil {
		e.logger.Debug("failed to record unresolved name", "name", raw, "error", err)
	}
}

// TimelineRequest asks for one yoga's activation timeline.
type TimelineRequest struct {
	// Name accepts any known variant spelling.
	Name           string
	Periods        []core.PlanetaryPeriod
	PeriodsVersion string
	Birth          time.Time
	Now            time.Time
}

// Timeline resolves the name and computes (or recalls) its activation
// timeline against the supplied period tree.
func (e *Engine) Timeline(ctx context.Context, req TimelineRequest) (*core.Timeline, error) {
	def, err := e.Lookup(req.Name)
	if err != nil {
		return nil, err
	}
	ref := timing.Reference{Birth: req.Birth, Now: req.Now}
	return e.timeline(ctx, def, req.Periods, req.PeriodsVersion, ref), nil
}

// timeline consults the cache when a periods version is supplied; cache
// trouble degrades to a fresh computation, never to an error.
func (e *Engine) timeline(ctx context.Context, def *core.YogaDefinition, periods []core.PlanetaryPeriod, version string, ref timing.Reference) *core.Timeline {
	if version == "" {
		computed := timing.Compute(def, periods, ref)
		return &computed
	}

	key := cache.Key(def.CanonicalName, version)
	if cached, ok, err := e.cache.Get(ctx, key); err != nil {
		e.logger.Debug("timeline cache get failed", "key", key, "error", err)
	} else if ok {
		return cached
	}

	computed := timing.Compute(def, periods, ref)
	if err := e.cache.Set(ctx, key, &computed, e.timelineTTL); err != nil {
		e.logger.Debug("timeline cache set failed", "key", key, "error", err)
	}
	return &computed
}

// Lookup resolves any known variant spelling to its catalog definition. An
// unknown name returns a *core.NotFound error carrying suggestions.
func (e *Engine) Lookup(name string) (*core.YogaDefinition, error) {
	reg := e.Registry()
	res := normalize.NewResolver(reg).Resolve(name)
	if res.Unresolved {
		return nil, &core.NotFound{Query: name, Suggestions: reg.Suggest(name, suggestionLimit)}
	}
	return res.Definition, nil
}

// Coverage builds the implementation coverage report, counting observed
// yogas from the supplied analyses if any.
func (e *Engine) Coverage(observed []core.NormalizedYoga) core.CoverageReport {
	return stats.Aggregate(e.Registry().Definitions(), e.implemented, observed)
}
