package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overlayDocument is the on-disk shape of an alias overlay file.
type overlayDocument struct {
	Aliases map[string][]string `yaml:"aliases"`
}

// OverlayParseError represents an alias overlay parsing error.
type OverlayParseError struct {
	Path    string
	Message string
}

func (e *OverlayParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("alias overlay: %s", e.Message)
	}
	return fmt.Sprintf("alias overlay %s: %s", e.Path, e.Message)
}

// LoadOverlay reads an alias overlay file. The file maps canonical names to
// extra variant spellings curated from the review queue:
//
//	aliases:
//	  Gaja Kesari Yoga:
//	    - Gajakeshari Yoga
//
// Canonical names are not validated here; Build rejects unknown names and
// variant collisions when the overlay is merged.
func LoadOverlay(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("alias overlay: %w", err)
	}
	overlay, err := ParseOverlay(data)
	if err != nil {
		if perr, ok := err.(*OverlayParseError); ok {
			perr.Path = path
		}
		return nil, err
	}
	return overlay, nil
}

// ParseOverlay parses overlay YAML with strict field validation.
func ParseOverlay(data []byte) (map[string][]string, error) {
	// Decode into a map first to reject unknown top-level fields.
	var rawMap map[string]any
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, &OverlayParseError{Message: fmt.Sprintf("invalid YAML: %v", err)}
	}
	for field := range rawMap {
		if field != "aliases" {
			return nil, &OverlayParseError{Message: fmt.Sprintf("unknown field %q", field)}
		}
	}

	var doc overlayDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &OverlayParseError{Message: fmt.Sprintf("failed to parse aliases: %v", err)}
	}

	for canonical, variants := range doc.Aliases {
		if canonical == "" {
			return nil, &OverlayParseError{Message: "empty canonical name"}
		}
		for _, v := range variants {
			if v == "" {
				return nil, &OverlayParseError{Message: fmt.Sprintf("empty variant under %q", canonical)}
			}
		}
	}
	return doc.Aliases, nil
}
