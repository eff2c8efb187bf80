package feed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// implementedDocument is the on-disk shape of an implemented-set file.
type implementedDocument struct {
	Implemented []string `yaml:"implemented"`
}

// LoadImplemented reads and parses an implemented-set file.
func LoadImplemented(path string) (map[string]struct{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("implemented set: %w", err)
	}
	set, err := ParseImplemented(data)
	if err != nil {
		if perr, ok := err.(*ParseError); ok {
			perr.Path = path
		}
		return nil, err
	}
	return set, nil
}

// ParseImplemented parses the list of canonical names the upstream detector
// actually implements:
//
//	implemented:
//	  - Gaja Kesari Yoga
//	  - Dhana Yoga
//
// Names are kept verbatim; coverage matches them case-sensitively against
// catalog canonical names. Duplicates collapse into the set.
func ParseImplemented(data []byte) (map[string]struct{}, error) {
	var rawMap map[string]any
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, parseErrorf("invalid YAML: %v", err)
	}
	if field := unknownField(rawMap, "implemented"); field != "" {
		return nil, parseErrorf("unknown field %q", field)
	}

	var doc implementedDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, parseErrorf("failed to parse implemented set: %v", err)
	}

	set := make(map[string]struct{}, len(doc.Implemented))
	for i, name := range doc.Implemented {
		if name == "" {
			return nil, parseErrorf("implemented[%d]: empty name", i)
		}
		set[name] = struct{}{}
	}
	return set, nil
}
