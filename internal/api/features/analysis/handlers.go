package analysis

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/arytiwari/jioastro-sub006/internal/api/features/common"
	"github.com/arytiwari/jioastro-sub006/internal/engine"
	"github.com/arytiwari/jioastro-sub006/internal/feed"
	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

const dateLayout = "2006-01-02"

// Handlers provides HTTP handlers for the analysis feature.
type Handlers struct {
	engine *engine.Engine
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(eng *engine.Engine, logger *slog.Logger) *Handlers {
	return &Handlers{engine: eng, logger: logger}
}

// AnalyzeRequest is the body for POST /api/analysis. Detections and periods
// use the same wire shape as the YAML feed files.
type AnalyzeRequest struct {
	ChartID        string                 `json:"chart_id"`
	BirthDate      string                 `json:"birth_date,omitempty"`
	Now            string                 `json:"now,omitempty"`
	Detections     []feed.DetectionRecord `json:"detections"`
	Periods        []feed.PeriodRecord    `json:"periods,omitempty"`
	PeriodsVersion string                 `json:"periods_version,omitempty"`
	Save           bool                   `json:"save,omitempty"`
	AllTimelines   bool                   `json:"all_timelines,omitempty"`
}

// TimelineRequest is the body for POST /api/timeline.
type TimelineRequest struct {
	Name           string              `json:"name"`
	BirthDate      string              `json:"birth_date,omitempty"`
	Now            string              `json:"now,omitempty"`
	Periods        []feed.PeriodRecord `json:"periods"`
	PeriodsVersion string              `json:"periods_version,omitempty"`
}

// Analyze normalizes a detection feed and returns the merged yogas, with
// activation timelines when a period tree is supplied.
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if len(req.Detections) == 0 {
		common.WriteError(w, http.StatusBadRequest, "detections is required")
		return
	}

	detections := make([]core.YogaDetection, 0, len(req.Detections))
	for i, rec := range req.Detections {
		det, err := rec.Detection(req.ChartID)
		if err != nil {
			common.WriteError(w, http.StatusBadRequest, fmt.Sprintf("detections[%d]: %v", i, err))
			return
		}
		detections = append(detections, det)
	}

	periods, err := convertPeriods(req.Periods)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	birth, err := parseDate("birth_date", req.BirthDate)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	now, err := parseDate("now", req.Now)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}

	result, err := h.engine.Analyze(r.Context(), engine.AnalyzeRequest{
		ChartID:        req.ChartID,
		Detections:     detections,
		Periods:        periods,
		PeriodsVersion: req.PeriodsVersion,
		Birth:          birth,
		Now:            now,
		Save:           req.Save,
		AllTimelines:   req.AllTimelines,
	})
	if err != nil {
		if errors.Is(err, core.ErrStoreNotConfigured) {
			common.WriteError(w, http.StatusServiceUnavailable, "analysis store not configured")
			return
		}
		h.logger.Error("analysis failed", "chart_id", req.ChartID, "error", err)
		common.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	common.WriteJSON(w, http.StatusOK, result)
}

// Timeline computes the activation timeline for one yoga against the
// supplied period tree. Unknown names get the structured 404 body.
func (h *Handlers) Timeline(w http.ResponseWriter, r *http.Request) {
	var req TimelineRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Name == "" {
		common.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}
	if len(req.Periods) == 0 {
		common.WriteError(w, http.StatusBadRequest, "periods is required")
		return
	}

	periods, err := convertPeriods(req.Periods)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	birth, err := parseDate("birth_date", req.BirthDate)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	now, err := parseDate("now", req.Now)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}

	timeline, err := h.engine.Timeline(r.Context(), engine.TimelineRequest{
		Name:           req.Name,
		Periods:        periods,
		PeriodsVersion: req.PeriodsVersion,
		Birth:          birth,
		Now:            now,
	})
	if err != nil {
		common.LookupFailure(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, timeline)
}

// convertPeriods validates wire period records into core periods.
func convertPeriods(records []feed.PeriodRecord) ([]core.PlanetaryPeriod, error) {
	if len(records) == 0 {
		return nil, nil
	}
	periods := make([]core.PlanetaryPeriod, 0, len(records))
	for i, rec := range records {
		period, err := rec.Period()
		if err != nil {
			return nil, fmt.Errorf("periods[%d]: %w", i, err)
		}
		periods = append(periods, period)
	}
	return periods, nil
}

// parseDate parses an optional wire date; empty input yields the zero time.
func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: invalid date %q (want YYYY-MM-DD)", field, value)
	}
	return t, nil
}
