// Package commands_test provides tests for CLI command creation.
package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAnalyzeCommand(t *testing.T) {
	cmd := NewAnalyzeCommand()

	assert.Equal(t, "analyze <detections.yaml>...", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	// Verify flags exist (output is a global flag on root, not local)
	flags := []string{"periods", "now", "save", "timelines", "format"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewTimelineCommand(t *testing.T) {
	cmd := NewTimelineCommand()

	assert.Equal(t, "timeline <yoga>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	flags := []string{"periods", "now"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewLookupCommand(t *testing.T) {
	cmd := NewLookupCommand()

	assert.Equal(t, "lookup <name>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
}

func TestNewCatalogCommand(t *testing.T) {
	cmd := NewCatalogCommand()

	assert.Equal(t, "catalog", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	flags := []string{"tier", "area", "search"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewCoverageCommand(t *testing.T) {
	cmd := NewCoverageCommand()

	assert.Equal(t, "coverage", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	flags := []string{"implemented", "observed"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewReviewCommand(t *testing.T) {
	cmd := NewReviewCommand()

	assert.Equal(t, "review", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	// Verify subcommands exist
	subs := map[string]bool{}
	for _, sub := range cmd.Commands() {
		subs[sub.Name()] = true
	}
	for _, name := range []string{"list", "resolve", "dismiss"} {
		assert.True(t, subs[name], "subcommand %q should exist", name)
	}
}

func TestNewServeCommand(t *testing.T) {
	cmd := NewServeCommand()

	assert.Equal(t, "serve", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	flags := []string{"host", "port", "watch"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewReplCommand(t *testing.T) {
	cmd := NewReplCommand()

	assert.Equal(t, "repl", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestParseReviewStatus(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"pending", false},
		{"resolved", false},
		{"dismissed", false},
		{"all", false},
		{"", false},
		{"bogus", true},
	}

	for _, tt := range tests {
		_, err := parseReviewStatus(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "status %q should be rejected", tt.in)
		} else {
			assert.NoError(t, err, "status %q should parse", tt.in)
		}
	}
}
