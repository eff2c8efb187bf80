// Package config provides configuration management for the JioAstro CLI.
//
// This package extends the shared configuration types from internal/config
// with CLI-specific fields and functionality. The shared types (StateConfig,
// CacheConfig, ServerConfig) are defined in internal/config and re-exported
// here via type aliases for convenience.
package config

import (
	sharedcfg "github.com/arytiwari/jioastro-sub006/internal/config"
)

// StateConfig is an alias for the shared state store configuration.
// This allows CLI code to use config.StateConfig without importing
// internal/config.
type StateConfig = sharedcfg.StateConfig

// CacheConfig is an alias for the shared timeline cache configuration.
type CacheConfig = sharedcfg.CacheConfig

// ServerConfig is an alias for the shared API server configuration.
type ServerConfig = sharedcfg.ServerConfig

// Config holds all CLI configuration options.
type Config struct {
	DataDir      string               `koanf:"data_dir"`
	Overlay      string               `koanf:"overlay"`
	Implemented  string               `koanf:"implemented"`
	Environment  string               `koanf:"environment"`
	Verbose      bool                 `koanf:"verbose"`
	OutputFormat string               `koanf:"output"`
	State        *StateConfig         `koanf:"state"`
	Cache        *CacheConfig         `koanf:"cache"`
	Server       *ServerConfig        `koanf:"server"`
	Environments map[string]EnvConfig `koanf:"environments"`

	// ProjectRoot is the resolved project root directory. Set by the
	// loader, never read from the file.
	ProjectRoot string `koanf:"-"`
}

// EnvConfig holds environment-specific configuration overrides.
type EnvConfig struct {
	DataDir     string       `koanf:"data_dir"`
	Overlay     string       `koanf:"overlay"`
	Implemented string       `koanf:"implemented"`
	State       *StateConfig `koanf:"state"`
	Cache       *CacheConfig `koanf:"cache"`
}

// GetState returns the state config with defaults applied for unset values.
func (c *Config) GetState() *StateConfig {
	if c.State == nil {
		c.State = &StateConfig{}
	}
	sharedcfg.ApplyStateDefaults(c.State)
	return c.State
}

// GetCache returns the cache config with defaults applied for unset values.
func (c *Config) GetCache() *CacheConfig {
	if c.Cache == nil {
		c.Cache = &CacheConfig{}
	}
	sharedcfg.ApplyCacheDefaults(c.Cache)
	return c.Cache
}

// GetServer returns the server config with defaults applied for unset values.
func (c *Config) GetServer() *ServerConfig {
	if c.Server == nil {
		c.Server = &ServerConfig{Watch: true}
	}
	sharedcfg.ApplyServerDefaults(c.Server)
	return c.Server
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultDataDir   = sharedcfg.DefaultDataDir
	DefaultStateFile = sharedcfg.DefaultStateFile
	DefaultEnv       = "dev"
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
