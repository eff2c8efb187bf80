package feed

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// DetectionsFile is a parsed detection feed: raw yoga detections for one
// chart (or several, when entries carry their own chart ids) plus the
// reference dates timeline computation uses.
type DetectionsFile struct {
	ChartID    string
	BirthDate  time.Time
	Now        time.Time
	Detections []core.YogaDetection
}

// detectionDocument is the on-disk shape of a detection feed.
type detectionDocument struct {
	ChartID    string            `yaml:"chart_id"`
	BirthDate  string            `yaml:"birth_date"`
	Now        string            `yaml:"now"`
	Detections []DetectionRecord `yaml:"detections"`
}

// DetectionRecord is the wire shape of one detection entry, shared by the
// YAML feed files and the JSON analysis endpoint.
type DetectionRecord struct {
	Name     string   `yaml:"name" json:"name"`
	Strength string   `yaml:"strength" json:"strength"`
	Planets  []string `yaml:"planets" json:"planets,omitempty"`
	Houses   []int    `yaml:"houses" json:"houses,omitempty"`
	ChartID  string   `yaml:"chart_id" json:"chart_id,omitempty"`
}

// LoadDetections reads and parses a detection feed file.
func LoadDetections(path string) (*DetectionsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("detections: %w", err)
	}
	file, err := ParseDetections(data)
	if err != nil {
		if perr, ok := err.(*ParseError); ok {
			perr.Path = path
		}
		return nil, err
	}
	return file, nil
}

// ParseDetections parses a detection feed with strict field validation:
//
//	chart_id: chart-001
//	birth_date: 1990-05-14
//	detections:
//	  - name: Gajakesari Yoga
//	    strength: Strong
//	    planets: [Jupiter, Moon]
//	    houses: [1, 4]
//
// Entries may carry their own chart_id; the file-level id is the default.
// Names are kept verbatim for the normalizer; strengths and planets must
// parse as wire enum values.
func ParseDetections(data []byte) (*DetectionsFile, error) {
	var rawMap map[string]any
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, parseErrorf("invalid YAML: %v", err)
	}
	if field := unknownField(rawMap, "chart_id", "birth_date", "now", "detections"); field != "" {
		return nil, parseErrorf("unknown field %q", field)
	}
	if entries, ok := rawMap["detections"].([]any); ok {
		for i, entry := range entries {
			m, ok := entry.(map[string]any)
			if !ok {
				continue // shape errors surface in the typed decode
			}
			if field := unknownField(m, "name", "strength", "planets", "houses", "chart_id"); field != "" {
				return nil, parseErrorf("detections[%d]: unknown field %q", i, field)
			}
		}
	}

	var doc detectionDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, parseErrorf("failed to parse detections: %v", err)
	}

	file := &DetectionsFile{ChartID: doc.ChartID}
	var err error
	if file.BirthDate, err = parseDate("birth_date", doc.BirthDate); err != nil {
		return nil, err
	}
	if file.Now, err = parseDate("now", doc.Now); err != nil {
		return nil, err
	}

	for i, rec := range doc.Detections {
		det, err := rec.Detection(doc.ChartID)
		if err != nil {
			return nil, parseErrorf("detections[%d]: %v", i, err)
		}
		file.Detections = append(file.Detections, det)
	}
	return file, nil
}

// Detection converts a wire record into a core detection, validating the
// enum-valued fields. An entry-level chart id wins over the default.
func (r DetectionRecord) Detection(defaultChart string) (core.YogaDetection, error) {
	if r.Name == "" {
		return core.YogaDetection{}, errors.New("missing name")
	}
	if r.Strength == "" {
		return core.YogaDetection{}, fmt.Errorf("%q: missing strength", r.Name)
	}
	strength, ok := core.ParseStrength(r.Strength)
	if !ok {
		return core.YogaDetection{}, fmt.Errorf("%q: unknown strength %q", r.Name, r.Strength)
	}
	det := core.YogaDetection{
		RawName:  r.Name,
		Strength: strength,
		ChartID:  defaultChart,
	}
	if r.ChartID != "" {
		det.ChartID = r.ChartID
	}
	for _, p := range r.Planets {
		planet, ok := core.ParsePlanet(p)
		if !ok {
			return core.YogaDetection{}, fmt.Errorf("%q: unknown planet %q", r.Name, p)
		}
		det.Planets = append(det.Planets, planet)
	}
	for _, h := range r.Houses {
		if h < 1 || h > 12 {
			return core.YogaDetection{}, fmt.Errorf("%q: house %d out of range 1-12", r.Name, h)
		}
	}
	det.Houses = r.Houses
	return det, nil
}
