// Package coverage provides the catalog coverage reporting endpoint.
package coverage

import (
	"github.com/go-chi/chi/v5"

	"github.com/arytiwari/jioastro-sub006/internal/engine"
)

// SetupRoutes registers the coverage feature routes.
func SetupRoutes(router chi.Router, eng *engine.Engine) error {
	handlers := NewHandlers(eng)

	router.Get("/api/coverage", handlers.Report)

	return nil
}
