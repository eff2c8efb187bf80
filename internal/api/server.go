// Package api provides the JioAstro HTTP API server.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/arytiwari/jioastro-sub006/internal/api/notifier"
	"github.com/arytiwari/jioastro-sub006/internal/api/router"
	"github.com/arytiwari/jioastro-sub006/internal/engine"
	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
)

// Server is the JioAstro API server.
type Server struct {
	engine      *engine.Engine
	host        string
	port        int
	watch       bool
	overlayPath string
	logger      *slog.Logger
	notifier    *notifier.Notifier
}

// Config holds configuration for the API server.
type Config struct {
	Engine      *engine.Engine
	Host        string
	Port        int
	Watch       bool
	OverlayPath string
	Logger      *slog.Logger
}

// NewServer creates a new API server instance.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Server{
		engine:      cfg.Engine,
		host:        cfg.Host,
		port:        cfg.Port,
		watch:       cfg.Watch,
		overlayPath: cfg.OverlayPath,
		logger:      logger,
		notifier:    notifier.New(),
	}
}

// Serve starts the API server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	s.logger.Info("starting API server", "addr", addr)

	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	if err := router.SetupRoutes(r, s.engine, s.notifier, s.logger); err != nil {
		return fmt.Errorf("failed to setup routes: %w", err)
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start overlay watcher if enabled
	if s.watch && s.overlayPath != "" {
		eg.Go(func() error {
			return s.watchOverlay(egctx)
		})
	}

	// Start HTTP server
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down API server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Notifier returns the server's notifier for SSE updates.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}

// watchOverlay watches the alias overlay file and hot-swaps the registry
// when it changes. Editors replace files by rename, so the parent directory
// is watched and events are filtered down to the overlay path.
func (s *Server) watchOverlay(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(s.overlayPath)); err != nil {
		s.logger.Error("failed to watch overlay directory", "error", err)
		// Don't fail - continue without watching
		return nil
	}

	target := filepath.Clean(s.overlayPath)

	// Debounce timer
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if filepath.Clean(event.Name) != target {
				continue
			}

			// Debounce
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				s.logger.Debug("overlay changed, rebuilding registry", "file", event.Name)

				if _, err := s.engine.ReloadRegistry(); err != nil {
					s.logger.Error("registry reload failed", "error", err)
					return
				}

				// Notify all SSE clients
				s.notifier.Broadcast()
			})

		case err := <-watcher.Errors:
			s.logger.Error("watcher error", "error", err)
		}
	}
}
