package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewVersionCommand(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		wantOut []string
	}{
		{
			name:    "default version",
			version: "0.1.0",
			commit:  "unknown",
			date:    "unknown",
			wantOut: []string{"JioAstro v0.1.0", "dasha timing engine", "commit:  unknown"},
		},
		{
			name:    "release build",
			version: "1.2.3",
			commit:  "4f9a2c1",
			date:    "2026-08-01",
			wantOut: []string{"JioAstro v1.2.3", "commit:  4f9a2c1", "built:   2026-08-01"},
		},
		{
			name:    "dev version",
			version: "dev",
			commit:  "unknown",
			date:    "unknown",
			wantOut: []string{"JioAstro vdev"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewVersionCommand(tt.version, tt.commit, tt.date)
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)

			err := cmd.Execute()
			if err != nil {
				t.Errorf("Execute() error = %v", err)
				return
			}

			output := buf.String()
			for _, want := range tt.wantOut {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
			if !strings.Contains(output, "runtime: go") {
				t.Errorf("output should contain runtime info, got: %s", output)
			}
		})
	}
}

func TestVersionCommandMetadata(t *testing.T) {
	cmd := NewVersionCommand("test", "abc", "today")

	if cmd.Use != "version" {
		t.Errorf("Use = %q, want %q", cmd.Use, "version")
	}

	if cmd.Short == "" {
		t.Error("Short should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long should not be empty")
	}
}
