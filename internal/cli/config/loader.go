package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	intconfig "github.com/arytiwari/jioastro-sub006/internal/config"
)

// loggerKey is used to store logger in context.
// This key is shared with root.go via both using the same type.
type loggerKey struct{}

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// Package-level koanf instance and config file tracking
var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config // Stores the loaded config for access by commands
)

// findConfigFile finds the config file to use.
// Priority: explicit path > jioastro.yaml > jioastro.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return intconfig.FindConfigFile(".")
}

// findProjectRootUpward searches upward from startDir for a jioastro config file.
// Returns empty string if not found within maxUpwardSearchLevels.
func findProjectRootUpward(startDir string) string {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if intconfig.FindConfigFile(dir) != "" {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return ""
}

// inferProjectRootFromFlags infers the project root from the --data-dir flag.
// Returns empty string if no inference is possible.
func inferProjectRootFromFlags(flags *pflag.FlagSet) string {
	if flags == nil || !flags.Changed("data-dir") {
		return ""
	}
	dataDir, _ := flags.GetString("data-dir")
	if dataDir == "" {
		return ""
	}
	absData, err := filepath.Abs(dataDir)
	if err != nil {
		return ""
	}
	parent := filepath.Dir(absData)

	// If parent has a config file, it's the project root
	if intconfig.FindConfigFile(parent) != "" {
		return parent
	}

	// If folder is named "data", assume parent is root
	if filepath.Base(absData) == "data" {
		return parent
	}
	return ""
}

// inferProjectRoot determines the project root from CLI flags and filesystem.
// Priority:
//  1. Infer from --data-dir (parent if it contains a config or is named "data")
//  2. Directory of an explicitly provided config file
//  3. Search upward from CWD for jioastro.yaml
//  4. Current working directory
func inferProjectRoot(cfgFile string, flags *pflag.FlagSet) string {
	// 1. Infer from --data-dir
	if root := inferProjectRootFromFlags(flags); root != "" {
		return root
	}

	// 2. Explicit config file anchors its directory
	if cfgFile != "" {
		if absPath, err := filepath.Abs(cfgFile); err == nil {
			return filepath.Dir(absPath)
		}
	}

	// 3. Search upward from CWD for jioastro.yaml
	if cwd, err := os.Getwd(); err == nil {
		if root := findProjectRootUpward(cwd); root != "" {
			return root
		}
	}

	// 4. Default to CWD
	cwd, _ := os.Getwd()
	if cwd == "" {
		cwd = "."
	}
	return cwd
}

// resolvePathRelativeTo resolves a path relative to baseDir if it's not absolute.
// Returns the path unchanged if it's empty or already absolute.
func resolvePathRelativeTo(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

// LoadConfig loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	return LoadConfigWithEnv(cfgFile, "", flags)
}

// LoadConfigWithEnv loads configuration with an optional environment override.
// The envOverride parameter selects which environments entry's overrides apply.
// The flags parameter allows CLI flags to override config file and env var values.
func LoadConfigWithEnv(cfgFile string, envOverride string, flags *pflag.FlagSet) (*Config, error) {
	// Reset koanf for fresh load
	k = koanf.New(".")

	// Infer project root from flags before loading config
	// This enables the "anchor pattern" where --data-dir testdata/data
	// implies project root is testdata/
	projectRoot := inferProjectRoot(cfgFile, flags)

	// Track paths that were explicitly provided as flags (already relative to CWD).
	// These will be converted to absolute paths before the normal resolution step,
	// to prevent double-resolution when project root was inferred from them.
	var flagDataDir, flagOverlay, flagImplemented, flagStatePath string
	if flags != nil {
		if flags.Changed("data-dir") {
			if v, _ := flags.GetString("data-dir"); v != "" {
				flagDataDir, _ = filepath.Abs(v)
			}
		}
		if flags.Changed("overlay") {
			if v, _ := flags.GetString("overlay"); v != "" {
				flagOverlay, _ = filepath.Abs(v)
			}
		}
		if flags.Changed("implemented") {
			if v, _ := flags.GetString("implemented"); v != "" {
				flagImplemented, _ = filepath.Abs(v)
			}
		}
		if flags.Changed("state") {
			if v, _ := flags.GetString("state"); v != "" {
				flagStatePath, _ = filepath.Abs(v)
			}
		}
	}

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"data_dir":      intconfig.DefaultDataDir,
		"environment":   DefaultEnv,
		"verbose":       false,
		"output":        DefaultOutput,
		"state.driver":  intconfig.DefaultStateDriver,
		"state.path":    intconfig.DefaultStateFile,
		"cache.backend": intconfig.DefaultCacheBackend,
		"cache.ttl":     intconfig.DefaultCacheTTL,
		"server.host":   intconfig.DefaultServerHost,
		"server.port":   intconfig.DefaultServerPort,
		"server.watch":  true,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Find and load config file
	// Search in project root if no explicit config file provided
	if cfgFile == "" {
		cfgFile = intconfig.FindConfigFile(projectRoot)
	}
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Load environment variables (JIOASTRO_ prefix)
	// Transform: JIOASTRO_DATA_DIR -> data_dir, JIOASTRO_STATE_DRIVER -> state.driver
	if err := k.Load(env.Provider("JIOASTRO_", ".", envKeyTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority - overrides env vars and config file)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			// Transform kebab-case to snake_case for config keys
			key := strings.ReplaceAll(f.Name, "-", "_")

			// EXPLICIT MAPPING: the CLI uses --state for brevity, but the
			// config nests the path under the state group
			if key == "state" {
				return "state.path", posflag.FlagVal(flags, f)
			}
			// --env selects the environments entry
			if key == "env" {
				return "environment", posflag.FlagVal(flags, f)
			}

			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// 6. Apply environment-specific overrides if an environment is selected
	envForUse := cfg.Environment
	if envOverride != "" {
		envForUse = envOverride
	}
	if envForUse != "" && cfg.Environments != nil {
		if envCfg, ok := cfg.Environments[envForUse]; ok {
			if envCfg.DataDir != "" {
				cfg.DataDir = envCfg.DataDir
			}
			if envCfg.Overlay != "" {
				cfg.Overlay = envCfg.Overlay
			}
			if envCfg.Implemented != "" {
				cfg.Implemented = envCfg.Implemented
			}
			if envCfg.State != nil {
				cfg.State = MergeStateConfig(cfg.State, envCfg.State)
			}
			if envCfg.Cache != nil {
				cfg.Cache = MergeCacheConfig(cfg.Cache, envCfg.Cache)
			}
		}
	}

	// 7. Set project root and resolve relative paths
	// Use project root as base for all path resolution (not config file directory)
	cfg.ProjectRoot = projectRoot

	// For paths explicitly provided via flags, use the pre-computed absolute paths
	// (already computed relative to CWD at flag parse time).
	// For paths from config file or defaults, resolve relative to project root.
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	} else {
		cfg.DataDir = resolvePathRelativeTo(cfg.DataDir, projectRoot)
	}
	if flagOverlay != "" {
		cfg.Overlay = flagOverlay
	} else {
		cfg.Overlay = resolvePathRelativeTo(cfg.Overlay, projectRoot)
	}
	if flagImplemented != "" {
		cfg.Implemented = flagImplemented
	} else {
		cfg.Implemented = resolvePathRelativeTo(cfg.Implemented, projectRoot)
	}

	// 8. Apply defaults to nested sections and resolve the state path
	state := cfg.GetState()
	if flagStatePath != "" {
		state.Path = flagStatePath
	} else {
		state.Path = resolvePathRelativeTo(state.Path, projectRoot)
	}
	cache := cfg.GetCache()
	cfg.GetServer()

	// Expand environment variables in sensitive fields
	state.DSN = expandEnvVars(state.DSN)
	cache.Addr = expandEnvVars(cache.Addr)
	cache.Password = expandEnvVars(cache.Password)

	// Validate nested configuration
	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("invalid state configuration: %w", err)
	}
	if err := cache.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cache configuration: %w", err)
	}

	// Store config for access by commands
	currentConfig = &cfg

	return &cfg, nil
}

// envKeyTransform maps a JIOASTRO_ environment variable to its config key.
// Keys under the state, cache, and server groups nest via the first
// underscore; everything else stays flat snake_case.
func envKeyTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "JIOASTRO_"))
	for _, group := range []string{"state", "cache", "server"} {
		if strings.HasPrefix(key, group+"_") {
			return group + "." + strings.TrimPrefix(key, group+"_")
		}
	}
	return key
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the currently loaded configuration.
// This is available after LoadConfig or LoadConfigWithEnv is called.
func GetCurrentConfig() *Config {
	return currentConfig
}

// LoggerKey returns the context key used for storing the logger.
// This allows the commands package to retrieve the logger from context
// without creating an import cycle with the cli package.
func LoggerKey() interface{} {
	return loggerKey{}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}

// expandEnvVars expands ${VAR} patterns in a string with environment variable values.
func expandEnvVars(s string) string {
	// Match ${VAR} pattern
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(s, func(match string) string {
		// Extract variable name from ${VAR}
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match // Return original if not found
	})
}

// MergeStateConfig merges two state configs, with override taking precedence.
func MergeStateConfig(base, override *StateConfig) *StateConfig {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	merged := &StateConfig{
		Driver: base.Driver,
		Path:   base.Path,
		DSN:    base.DSN,
	}

	if override.Driver != "" {
		merged.Driver = override.Driver
	}
	if override.Path != "" {
		merged.Path = override.Path
	}
	if override.DSN != "" {
		merged.DSN = override.DSN
	}

	return merged
}

// MergeCacheConfig merges two cache configs, with override taking precedence.
func MergeCacheConfig(base, override *CacheConfig) *CacheConfig {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	merged := &CacheConfig{
		Backend:  base.Backend,
		Addr:     base.Addr,
		Password: base.Password,
		DB:       base.DB,
		TTL:      base.TTL,
	}

	if override.Backend != "" {
		merged.Backend = override.Backend
	}
	if override.Addr != "" {
		merged.Addr = override.Addr
	}
	if override.Password != "" {
		merged.Password = override.Password
	}
	if override.DB != 0 {
		merged.DB = override.DB
	}
	if override.TTL != "" {
		merged.TTL = override.TTL
	}

	return merged
}
