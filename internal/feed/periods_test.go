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

func TestParsePeriods_Valid(t *testing.T) {
	data := []byte(`
version: vimshottari-2026-01
birth_date: 1990-05-14
periods:
  - planet: Jupiter
    level: major
    start: 2020-01-01
    end: 2036-01-01
  - planet: Moon
    level: antardasha
    start: 2030-01-01
    end: 2031-01-01
  - planet: shani
    level: sub-sub
    start: 2030-03-01
    end: 2030-05-01
`)

	file, err := ParsePeriods(data)
	require.NoError(t, err)

	assert.Equal(t, "vimshottari-2026-01", file.Version)
	assert.Equal(t, time.Date(1990, 5, 14, 0, 0, 0, 0, time.UTC), file.BirthDate)
	require.Len(t, file.Periods, 3)

	assert.Equal(t, core.PlanetaryPeriod{
		Planet: core.Jupiter,
		Level:  core.LevelMajor,
		Start:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2036, 1, 1, 0, 0, 0, 0, time.UTC),
	}, file.Periods[0])
	assert.Equal(t, core.LevelSub, file.Periods[1].Level, "dasha synonyms parse")
	assert.Equal(t, core.Saturn, file.Periods[2].Planet, "Sanskrit planet names parse")
	assert.Equal(t, core.LevelSubSub, file.Periods[2].Level)
}

func TestParsePeriods_UnknownFields(t *testing.T) {
	_, err := ParsePeriods([]byte("schema: vimshottari\nperiods: []\n"))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, `unknown field "schema"`, perr.Message)

	_, err = ParsePeriods([]byte("periods:\n  - planet: Sun\n    level: major\n    begin: 2020-01-01\n    end: 2021-01-01\n"))
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, `periods[0]: unknown field "begin"`, perr.Message)
}

func TestParsePeriods_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		record  string
		wantMsg string
	}{
		{
			name:    "missing planet",
			record:  "  - level: major\n    start: 2020-01-01\n    end: 2021-01-01\n",
			wantMsg: "missing planet",
		},
		{
			name:    "unknown planet",
			record:  "  - planet: Pluto\n    level: major\n    start: 2020-01-01\n    end: 2021-01-01\n",
			wantMsg: `unknown planet "Pluto"`,
		},
		{
			name:    "missing level",
			record:  "  - planet: Sun\n    start: 2020-01-01\n    end: 2021-01-01\n",
			wantMsg: "missing level",
		},
		{
			name:    "unknown level",
			record:  "  - planet: Sun\n    level: megadasha\n    start: 2020-01-01\n    end: 2021-01-01\n",
			wantMsg: `unknown level "megadasha"`,
		},
		{
			name:    "missing start",
			record:  "  - planet: Sun\n    level: major\n    end: 2021-01-01\n",
			wantMsg: "missing start",
		},
		{
			name:    "bad end date",
			record:  "  - planet: Sun\n    level: major\n    start: 2020-01-01\n    end: January 2021\n",
			wantMsg: `invalid end "January 2021"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePeriods([]byte("periods:\n" + tt.record))
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Contains(t, perr.Message, "periods[0]: ")
			assert.Contains(t, perr.Message, tt.wantMsg)
		})
	}
}

// Tree-shape problems pass through parsing; the timing engine is the layer
// that degrades them.
func TestParsePeriods_InvertedSpanAccepted(t *testing.T) {
	file, err := ParsePeriods([]byte(`
periods:
  - planet: Sun
    level: major
    start: 2021-01-01
    end: 2020-01-01
`))
	require.NoError(t, err)
	require.Len(t, file.Periods, 1)
	assert.True(t, file.Periods[0].End.Before(file.Periods[0].Start))
}

func TestLoadPeriods_ParseErrorCarriesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "periods.yaml")
	require.NoError(t, os.WriteFile(path, []byte("periods:\n  - planet: Pluto\n    level: major\n    start: 2020-01-01\n    end: 2021-01-01\n"), 0o644))

	_, err := LoadPeriods(path)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, path, perr.Path)
}

func TestLoadPeriods_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "periods.yaml")
	content := "version: v1\nperiods:\n  - planet: Jupiter\n    level: major\n    start: 2020-01-01\n    end: 2036-01-01\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	file, err := LoadPeriods(path)
	require.NoError(t, err)
	assert.Equal(t, "v1", file.Version)
	require.Len(t, file.Periods, 1)
}
