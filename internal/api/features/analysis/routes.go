// Package analysis provides the detection analysis and timeline endpoints.
package analysis

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/arytiwari/jioastro-sub006/internal/engine"
)

// SetupRoutes registers the analysis feature routes.
func SetupRoutes(router chi.Router, eng *engine.Engine, logger *slog.Logger) error {
	handlers := NewHandlers(eng, logger)

	router.Post("/api/analysis", handlers.Analyze)
	router.Post("/api/timeline", handlers.Timeline)

	return nil
}
