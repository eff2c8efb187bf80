package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arytiwari/jioastro-sub006/internal/catalog"
	"github.com/arytiwari/jioastro-sub006/internal/feed"
)

func TestNewInitCommand(t *testing.T) {
	tests := []struct {
		name      string
		setupDir  func(t *testing.T, dir string) // setup before running
		args      []string
		wantErr   bool
		wantFiles []string
	}{
		{
			name:    "init empty directory",
			args:    []string{},
			wantErr: false,
			wantFiles: []string{
				"jioastro.yaml",
				".gitignore",
				"data",
			},
		},
		{
			name:    "init with example data",
			args:    []string{"--example"},
			wantErr: false,
			wantFiles: []string{
				"jioastro.yaml",
				"data/detections.yaml",
				"data/periods.yaml",
				"data/aliases.yaml",
				"data/implemented.yaml",
			},
		},
		{
			name: "init existing config without force",
			setupDir: func(_ *testing.T, dir string) {
				_ = os.WriteFile(filepath.Join(dir, "jioastro.yaml"), []byte("existing"), 0600)
			},
			args:    []string{},
			wantErr: true,
		},
		{
			name: "init existing config with force",
			setupDir: func(_ *testing.T, dir string) {
				_ = os.WriteFile(filepath.Join(dir, "jioastro.yaml"), []byte("existing"), 0600)
			},
			args:    []string{"--force"},
			wantErr: false,
			wantFiles: []string{
				"jioastro.yaml",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temp directory and change to it
			tmpDir := t.TempDir()
			oldWd, _ := os.Getwd()
			require.NoError(t, os.Chdir(tmpDir))
			defer func() { _ = os.Chdir(oldWd) }()

			// Run setup if provided
			if tt.setupDir != nil {
				tt.setupDir(t, tmpDir)
			}

			cmd := NewInitCommand()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			// Check expected files exist
			for _, f := range tt.wantFiles {
				path := filepath.Join(tmpDir, f)
				_, err := os.Stat(path)
				assert.False(t, os.IsNotExist(err), "expected file/dir %q to exist", f)
			}
		})
	}
}

func TestInitCommandMetadata(t *testing.T) {
	cmd := NewInitCommand()

	assert.Equal(t, "init [directory]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("force"), "--force flag should exist")
	assert.NotNil(t, cmd.Flags().Lookup("example"), "--example flag should exist")
}

func TestInitCreatesValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer func() { _ = os.Chdir(oldWd) }()

	cmd := NewInitCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	err := cmd.Execute()
	require.NoError(t, err)

	// Read and verify config content
	content, err := os.ReadFile("jioastro.yaml")
	require.NoError(t, err, "failed to read jioastro.yaml")

	expectedContents := []string{
		"data_dir: data",
		"driver: sqlite",
		"backend: memory",
		"port: 8777",
	}

	for _, expected := range expectedContents {
		assert.Contains(t, string(content), expected, "config should contain %q", expected)
	}
}

func TestInitExampleDataIsParseable(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer func() { _ = os.Chdir(oldWd) }()

	cmd := NewInitCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--example"})
	require.NoError(t, cmd.Execute())

	detections, err := feed.LoadDetections(filepath.Join(tmpDir, "data", "detections.yaml"))
	require.NoError(t, err, "sample detections must parse")
	assert.Equal(t, "chart-001", detections.ChartID)
	assert.Len(t, detections.Detections, 4)

	periods, err := feed.LoadPeriods(filepath.Join(tmpDir, "data", "periods.yaml"))
	require.NoError(t, err, "sample periods must parse")
	assert.Equal(t, "vimshottari-2026-01", periods.Version)
	assert.NotEmpty(t, periods.Periods)

	overlay, err := catalog.LoadOverlay(filepath.Join(tmpDir, "data", "aliases.yaml"))
	require.NoError(t, err, "sample overlay must parse")
	_, err = catalog.Build(catalog.BuildOptions{Overlay: overlay})
	require.NoError(t, err, "sample overlay must merge cleanly into the registry")

	implemented, err := feed.LoadImplemented(filepath.Join(tmpDir, "data", "implemented.yaml"))
	require.NoError(t, err, "sample implemented set must parse")
	assert.Contains(t, implemented, "Gaja Kesari Yoga")
}
