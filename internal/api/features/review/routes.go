// Package review provides the unresolved-name review queue endpoints.
package review

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/arytiwari/jioastro-sub006/internal/engine"
)

// SetupRoutes registers the review feature routes.
func SetupRoutes(router chi.Router, eng *engine.Engine, logger *slog.Logger) error {
	handlers := NewHandlers(eng, logger)

	router.Route("/api/review", func(r chi.Router) {
		r.Get("/", handlers.List)
		r.Post("/{id}/resolve", handlers.Resolve)
		r.Post("/{id}/dismiss", handlers.Dismiss)
	})

	return nil
}
