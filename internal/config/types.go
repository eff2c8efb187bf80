// Package config provides shared configuration types for JioAstro.
// This package is decoupled from CLI concerns and can be used by the API
// server and other tools that need project configuration.
package config

import (
	"fmt"
	"time"
)

// StateConfig holds state store configuration.
type StateConfig struct {
	Driver string `koanf:"driver"` // sqlite, postgres, none
	Path   string `koanf:"path"`   // sqlite database file
	DSN    string `koanf:"dsn"`    // postgres connection string
}

// Validate checks if the state configuration is valid.
func (s *StateConfig) Validate() error {
	switch s.Driver {
	case "", "sqlite", "postgres", "none":
	default:
		return fmt.Errorf("unknown state driver %q (valid: sqlite, postgres, none)\n"+
			"Hint: Set state.driver in jioastro.yaml", s.Driver)
	}
	if s.Driver == "postgres" && s.DSN == "" {
		return fmt.Errorf("state driver postgres requires state.dsn")
	}
	return nil
}

// CacheConfig holds timeline cache configuration.
type CacheConfig struct {
	Backend  string `koanf:"backend"` // memory, redis
	Addr     string `koanf:"addr"`    // redis address (host:port)
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	TTL      string `koanf:"ttl"` // cached timeline lifetime, e.g. "1h"
}

// Validate checks if the cache configuration is valid.
func (c *CacheConfig) Validate() error {
	switch c.Backend {
	case "", "memory", "redis":
	default:
		return fmt.Errorf("unknown cache backend %q (valid: memory, redis)\n"+
			"Hint: Set cache.backend in jioastro.yaml", c.Backend)
	}
	if c.Backend == "redis" && c.Addr == "" {
		return fmt.Errorf("cache backend redis requires cache.addr")
	}
	if c.TTL != "" {
		if _, err := time.ParseDuration(c.TTL); err != nil {
			return fmt.Errorf("invalid cache.ttl %q: %w", c.TTL, err)
		}
	}
	return nil
}

// TTLDuration returns the parsed TTL, or zero when unset.
func (c *CacheConfig) TTLDuration() time.Duration {
	if c.TTL == "" {
		return 0
	}
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 0
	}
	return d
}

// ServerConfig holds configuration for the HTTP API server.
type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
	// Watch enables hot-swapping the registry when the alias overlay
	// file changes.
	Watch bool `koanf:"watch"`
}
