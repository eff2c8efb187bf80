package feed

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// PeriodsFile is a parsed planetary period tree plus the metadata needed to
// key the timeline cache and compute activation ages.
type PeriodsFile struct {
	Version   string
	BirthDate time.Time
	Periods   []core.PlanetaryPeriod
}

// periodDocument is the on-disk shape of a period tree file.
type periodDocument struct {
	Version   string         `yaml:"version"`
	BirthDate string         `yaml:"birth_date"`
	Periods   []PeriodRecord `yaml:"periods"`
}

// PeriodRecord is the wire shape of one period entry, shared by the YAML
// period files and the JSON timeline endpoints.
type PeriodRecord struct {
	Planet string `yaml:"planet" json:"planet"`
	Level  string `yaml:"level" json:"level"`
	Start  string `yaml:"start" json:"start"`
	End    string `yaml:"end" json:"end"`
}

// LoadPeriods reads and parses a period tree file.
func LoadPeriods(path string) (*PeriodsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("periods: %w", err)
	}
	file, err := ParsePeriods(data)
	if err != nil {
		if perr, ok := err.(*ParseError); ok {
			perr.Path = path
		}
		return nil, err
	}
	return file, nil
}

// ParsePeriods parses a period tree file with strict field validation:
//
//	version: vimshottari-2026-01
//	birth_date: 1990-05-14
//	periods:
//	  - planet: Jupiter
//	    level: major
//	    start: 2020-01-01
//	    end: 2036-01-01
//
// Every record needs a parseable planet, level, and date pair. Tree-shape
// problems (gaps, overlaps, inverted spans) are not rejected here; the
// timing engine degrades such trees to an indeterminate timeline.
func ParsePeriods(data []byte) (*PeriodsFile, error) {
	var rawMap map[string]any
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, parseErrorf("invalid YAML: %v", err)
	}
	if field := unknownField(rawMap, "version", "birth_date", "periods"); field != "" {
		return nil, parseErrorf("unknown field %q", field)
	}
	if entries, ok := rawMap["periods"].([]any); ok {
		for i, entry := range entries {
			m, ok := entry.(map[string]any)
			if !ok {
				continue // shape errors surface in the typed decode
			}
			if field := unknownField(m, "planet", "level", "start", "end"); field != "" {
				return nil, parseErrorf("periods[%d]: unknown field %q", i, field)
			}
		}
	}

	var doc periodDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, parseErrorf("failed to parse periods: %v", err)
	}

	file := &PeriodsFile{Version: doc.Version}
	var err error
	if file.BirthDate, err = parseDate("birth_date", doc.BirthDate); err != nil {
		return nil, err
	}

	for i, rec := range doc.Periods {
		period, err := rec.Period()
		if err != nil {
			return nil, parseErrorf("periods[%d]: %v", i, err)
		}
		file.Periods = append(file.Periods, period)
	}
	return file, nil
}

// Period converts a wire record into a core period, validating every field.
func (r PeriodRecord) Period() (core.PlanetaryPeriod, error) {
	if r.Planet == "" {
		return core.PlanetaryPeriod{}, errors.New("missing planet")
	}
	planet, ok := core.ParsePlanet(r.Planet)
	if !ok {
		return core.PlanetaryPeriod{}, fmt.Errorf("unknown planet %q", r.Planet)
	}
	if r.Level == "" {
		return core.PlanetaryPeriod{}, errors.New("missing level")
	}
	level, ok := core.ParsePeriodLevel(r.Level)
	if !ok {
		return core.PlanetaryPeriod{}, fmt.Errorf("unknown level %q", r.Level)
	}
	if r.Start == "" {
		return core.PlanetaryPeriod{}, errors.New("missing start")
	}
	start, err := time.Parse(dateLayout, r.Start)
	if err != nil {
		return core.PlanetaryPeriod{}, fmt.Errorf("invalid start %q (want YYYY-MM-DD)", r.Start)
	}
	if r.End == "" {
		return core.PlanetaryPeriod{}, errors.New("missing end")
	}
	end, err := time.Parse(dateLayout, r.End)
	if err != nil {
		return core.PlanetaryPeriod{}, fmt.Errorf("invalid end %q (want YYYY-MM-DD)", r.End)
	}
	return core.PlanetaryPeriod{Planet: planet, Level: level, Start: start, End: end}, nil
}
