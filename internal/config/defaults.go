package config

// Default configuration values.
const (
	DefaultDataDir      = "data"
	DefaultStateDriver  = "sqlite"
	DefaultStateFile    = ".jioastro/state.db"
	DefaultCacheBackend = "memory"
	DefaultCacheTTL     = "1h"
	DefaultServerHost   = "127.0.0.1"
	DefaultServerPort   = 8777
)

// ApplyStateDefaults applies default values to a StateConfig.
func ApplyStateDefaults(s *StateConfig) {
	if s == nil {
		return
	}
	if s.Driver == "" {
		s.Driver = DefaultStateDriver
	}
	if s.Driver == "sqlite" && s.Path == "" {
		s.Path = DefaultStateFile
	}
}

// ApplyCacheDefaults applies default values to a CacheConfig.
func ApplyCacheDefaults(c *CacheConfig) {
	if c == nil {
		return
	}
	if c.Backend == "" {
		c.Backend = DefaultCacheBackend
	}
	if c.TTL == "" {
		c.TTL = DefaultCacheTTL
	}
}

// ApplyServerDefaults applies default values to a ServerConfig.
func ApplyServerDefaults(s *ServerConfig) {
	if s == nil {
		return
	}
	if s.Host == "" {
		s.Host = DefaultServerHost
	}
	if s.Port == 0 {
		s.Port = DefaultServerPort
	}
}
