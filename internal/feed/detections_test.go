package feed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

func TestParseDetections_Valid(t *testing.T) {
	data := []byte(`
chart_id: chart-001
birth_date: 1990-05-14
now: 2026-08-24
detections:
  - name: Gajakesari Yoga
    strength: Strong
    planets: [Jupiter, Moon]
    houses: [1, 4]
  - name: Dhan Yoga
    strength: medium
    chart_id: chart-002
`)

	file, err := ParseDetections(data)
	require.NoError(t, err)

	assert.Equal(t, "chart-001", file.ChartID)
	assert.Equal(t, time.Date(1990, 5, 14, 0, 0, 0, 0, time.UTC), file.BirthDate)
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), file.Now)
	require.Len(t, file.Detections, 2)

	first := file.Detections[0]
	assert.Equal(t, "Gajakesari Yoga", first.RawName)
	assert.Equal(t, core.StrengthStrong, first.Strength)
	assert.Equal(t, []core.Planet{core.Jupiter, core.Moon}, first.Planets)
	assert.Equal(t, []int{1, 4}, first.Houses)
	assert.Equal(t, "chart-001", first.ChartID, "file-level chart id is the default")

	second := file.Detections[1]
	assert.Equal(t, core.StrengthMedium, second.Strength, "strength parsing is case-insensitive")
	assert.Equal(t, "chart-002", second.ChartID, "entry chart id overrides the file-level one")
}

func TestParseDetections_OptionalDatesDefaultToZero(t *testing.T) {
	file, err := ParseDetections([]byte(`
detections:
  - name: Vidya Yoga
    strength: Weak
`))
	require.NoError(t, err)
	assert.True(t, file.BirthDate.IsZero())
	assert.True(t, file.Now.IsZero())
	assert.Empty(t, file.ChartID)
}

func TestParseDetections_UnknownTopLevelField(t *testing.T) {
	_, err := ParseDetections([]byte(`
chart: chart-001
detections: []
`))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, `unknown field "chart"`, perr.Message)
}

func TestParseDetections_UnknownEntryField(t *testing.T) {
	_, err := ParseDetections([]byte(`
detections:
  - name: Vidya Yoga
    strenght: Strong
`))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, `detections[0]: unknown field "strenght"`, perr.Message)
}

func TestParseDetections_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{
			name:    "missing name",
			yaml:    "detections:\n  - strength: Strong\n",
			wantMsg: "missing name",
		},
		{
			name:    "missing strength",
			yaml:    "detections:\n  - name: Vidya Yoga\n",
			wantMsg: "missing strength",
		},
		{
			name:    "unknown strength",
			yaml:    "detections:\n  - name: Vidya Yoga\n    strength: Middling\n",
			wantMsg: `unknown strength "Middling"`,
		},
		{
			name:    "unknown planet",
			yaml:    "detections:\n  - name: Vidya Yoga\n    strength: Weak\n    planets: [Pluto]\n",
			wantMsg: `unknown planet "Pluto"`,
		},
		{
			name:    "house out of range",
			yaml:    "detections:\n  - name: Vidya Yoga\n    strength: Weak\n    houses: [13]\n",
			wantMsg: "house 13 out of range",
		},
		{
			name:    "bad birth date",
			yaml:    "birth_date: 14-05-1990\ndetections: []\n",
			wantMsg: `birth_date: invalid date "14-05-1990"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDetections([]byte(tt.yaml))
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Contains(t, perr.Message, tt.wantMsg)
		})
	}
}

func TestParseDetections_InvalidYAML(t *testing.T) {
	_, err := ParseDetections([]byte("detections: ["))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Message, "invalid YAML")
}

func TestParseDetections_JSONInput(t *testing.T) {
	data := []byte(`{"chart_id": "chart-007", "detections": [{"name": "Budha-Aditya Yoga", "strength": "Very Strong"}]}`)

	file, err := ParseDetections(data)
	require.NoError(t, err)
	assert.Equal(t, "chart-007", file.ChartID)
	require.Len(t, file.Detections, 1)
	assert.Equal(t, core.StrengthVeryStrong, file.Detections[0].Strength)
}

func TestLoadDetections_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "detections.yaml")
	content := "chart_id: chart-001\ndetections:\n  - name: Vidya Yoga\n    strength: Weak\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	file, err := LoadDetections(path)
	require.NoError(t, err)
	assert.Equal(t, "chart-001", file.ChartID)
}

func TestLoadDetections_ParseErrorCarriesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "detections.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bogus: true\n"), 0o644))

	_, err := LoadDetections(path)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, path, perr.Path)
	assert.Contains(t, perr.Error(), path)
}

func TestLoadDetections_MissingFile(t *testing.T) {
	_, err := LoadDetections(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
