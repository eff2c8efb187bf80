// Package registryinfo provides registry metadata and change-feed endpoints.
package registryinfo

import (
	"github.com/go-chi/chi/v5"

	"github.com/arytiwari/jioastro-sub006/internal/api/notifier"
	"github.com/arytiwari/jioastro-sub006/internal/engine"
)

// SetupRoutes registers the registryinfo feature routes.
func SetupRoutes(router chi.Router, eng *engine.Engine, notify *notifier.Notifier) error {
	handlers := NewHandlers(eng, notify)

	router.Route("/api/registry", func(r chi.Router) {
		r.Get("/", handlers.Info)
		r.Get("/events", handlers.Events)
	})

	return nil
}
