// Package router sets up HTTP routes for the API server.
package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	analysisFeature "github.com/arytiwari/jioastro-sub006/internal/api/features/analysis"
	coverageFeature "github.com/arytiwari/jioastro-sub006/internal/api/features/coverage"
	encyclopediaFeature "github.com/arytiwari/jioastro-sub006/internal/api/features/encyclopedia"
	registryinfoFeature "github.com/arytiwari/jioastro-sub006/internal/api/features/registryinfo"
	reviewFeature "github.com/arytiwari/jioastro-sub006/internal/api/features/review"
	"github.com/arytiwari/jioastro-sub006/internal/api/notifier"
	"github.com/arytiwari/jioastro-sub006/internal/engine"
)

// SetupRoutes configures all routes for the API server.
func SetupRoutes(
	router chi.Router,
	eng *engine.Engine,
	notify *notifier.Notifier,
	logger *slog.Logger,
) error {
	if err := analysisFeature.SetupRoutes(router, eng, logger); err != nil {
		return err
	}

	if err := encyclopediaFeature.SetupRoutes(router, eng); err != nil {
		return err
	}

	if err := coverageFeature.SetupRoutes(router, eng); err != nil {
		return err
	}

	if err := reviewFeature.SetupRoutes(router, eng, logger); err != nil {
		return err
	}

	if err := registryinfoFeature.SetupRoutes(router, eng, notify); err != nil {
		return err
	}

	return nil
}
