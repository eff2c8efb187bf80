package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arytiwari/jioastro-sub006/internal/cli/config"
	"github.com/arytiwari/jioastro-sub006/internal/cli/output"
	intconfig "github.com/arytiwari/jioastro-sub006/internal/config"
	"github.com/arytiwari/jioastro-sub006/internal/engine"
	"github.com/arytiwari/jioastro-sub006/internal/feed"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Engine   *engine.Engine
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with engine and renderer.
// Returns the context and a cleanup function that must be called (typically via defer).
func NewCommandContext(cmd *cobra.Command) (*CommandContext, func(), error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	eng, err := createEngine(cmd, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	cleanup := func() {
		_ = eng.Close()
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Engine:   eng,
		Renderer: r,
	}, cleanup, nil
}

// NewCatalogContext creates a CommandContext whose engine serves only the
// in-memory registry. No state database is opened and nothing is
// persisted, so read-only commands like lookup and catalog leave no
// files behind.
func NewCatalogContext(cmd *cobra.Command) (*CommandContext, func(), error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	eng, err := engine.New(cmd.Context(), engine.Config{
		OverlayPath:  cfg.Overlay,
		StateDriver:  "none",
		CacheBackend: "memory",
		Implemented:  loadImplementedSet(cfg, logger),
		Logger:       logger,
	})
	if err != nil {
		return nil, nil, err
	}

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	cleanup := func() {
		_ = eng.Close()
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Engine:   eng,
		Renderer: r,
	}, cleanup, nil
}

// NewCommandContextWithoutEngine creates a CommandContext without an engine.
// Useful for commands that don't need the registry or state access.
func NewCommandContextWithoutEngine(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	dataDir := getEnvOrDefault("JIOASTRO_DATA_DIR", intconfig.DefaultDataDir)
	overlay := os.Getenv("JIOASTRO_OVERLAY")
	implemented := os.Getenv("JIOASTRO_IMPLEMENTED")
	statePath := getEnvOrDefault("JIOASTRO_STATE_PATH", config.DefaultStateFile)
	environment := getEnvOrDefault("JIOASTRO_ENVIRONMENT", config.DefaultEnv)
	verbose := os.Getenv("JIOASTRO_VERBOSE") == "true"
	outputFormat := os.Getenv("JIOASTRO_OUTPUT")

	return &config.Config{
		DataDir:      dataDir,
		Overlay:      overlay,
		Implemented:  implemented,
		Environment:  environment,
		Verbose:      verbose,
		OutputFormat: outputFormat,
		State: &config.StateConfig{
			Driver: intconfig.DefaultStateDriver,
			Path:   statePath,
		},
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// loadImplementedSet reads the implemented yoga list when configured.
// A missing or unreadable list degrades to full-catalog coverage with a
// warning rather than failing the command.
func loadImplementedSet(cfg *config.Config, logger *slog.Logger) map[string]struct{} {
	if cfg.Implemented == "" {
		return nil
	}
	set, err := feed.LoadImplemented(cfg.Implemented)
	if err != nil {
		logger.Warn("failed to load implemented list", "path", cfg.Implemented, "error", err)
		return nil
	}
	return set
}

func createEngine(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) (*engine.Engine, error) {
	state := cfg.GetState()
	cache := cfg.GetCache()

	// Ensure state directory exists for the sqlite driver
	if state.Driver == "" || state.Driver == "sqlite" {
		stateDir := filepath.Dir(state.Path)
		if stateDir != "." && stateDir != "" {
			if err := os.MkdirAll(stateDir, 0750); err != nil {
				return nil, err
			}
		}
	}

	engineCfg := engine.Config{
		OverlayPath:   cfg.Overlay,
		StateDriver:   state.Driver,
		StatePath:     state.Path,
		StateDSN:      state.DSN,
		CacheBackend:  cache.Backend,
		RedisAddr:     cache.Addr,
		RedisPassword: cache.Password,
		RedisDB:       cache.DB,
		TimelineTTL:   cache.TTLDuration(),
		Implemented:   loadImplementedSet(cfg, logger),
		Logger:        logger,
	}

	return engine.New(cmd.Context(), engineCfg)
}
