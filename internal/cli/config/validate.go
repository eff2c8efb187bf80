package config

import (
	"fmt"
	"os"
)

// validOutputFormats lists the accepted values for the output setting.
var validOutputFormats = map[string]bool{
	"auto":     true,
	"text":     true,
	"markdown": true,
	"json":     true,
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	if c.OutputFormat != "" && !validOutputFormats[c.OutputFormat] {
		return fmt.Errorf("invalid output format %q (valid: auto, text, markdown, json)\nHint: Set output in jioastro.yaml or pass --output", c.OutputFormat)
	}

	if err := c.GetState().Validate(); err != nil {
		return fmt.Errorf("invalid state configuration: %w", err)
	}

	if err := c.GetCache().Validate(); err != nil {
		return fmt.Errorf("invalid cache configuration: %w", err)
	}

	// Only validate directory existence if we're running a command that needs it
	// This allows help commands to work without a valid directory
	return nil
}

// ValidateDirectories checks if required directories exist.
func (c *Config) ValidateDirectories() error {
	if _, err := os.Stat(c.DataDir); os.IsNotExist(err) {
		return fmt.Errorf("data directory does not exist: %s\nHint: Create the directory or use --data-dir to specify a different path", c.DataDir)
	}
	return nil
}
