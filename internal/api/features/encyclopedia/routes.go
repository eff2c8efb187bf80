// Package encyclopedia provides the catalog browsing and lookup endpoints.
package encyclopedia

import (
	"github.com/go-chi/chi/v5"

	"github.com/arytiwari/jioastro-sub006/internal/engine"
)

// SetupRoutes registers the encyclopedia feature routes.
func SetupRoutes(router chi.Router, eng *engine.Engine) error {
	handlers := NewHandlers(eng)

	router.Route("/api/yogas", func(r chi.Router) {
		r.Get("/", handlers.List)
		r.Get("/{name}", handlers.Get)
	})

	return nil
}
