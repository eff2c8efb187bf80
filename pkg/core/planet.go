package core

import "strings"

// Planet identifies one of the nine grahas used by the period tree and the
// forming-planet sets. The two lunar nodes (Rahu, Ketu) count as planets for
// dasha purposes.
type Planet string

// The nine grahas.
const (
	Sun     Planet = "Sun"
	Moon    Planet = "Moon"
	Mars    Planet = "Mars"
	Mercury Planet = "Mercury"
	Jupiter Planet = "Jupiter"
	Venus   Planet = "Venus"
	Saturn  Planet = "Saturn"
	Rahu    Planet = "Rahu"
	Ketu    Planet = "Ketu"
)

// AllPlanets lists the nine grahas in traditional weekday-plus-nodes order.
var AllPlanets = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

// String returns the display name of the planet.
func (p Planet) String() string { return string(p) }

// Valid reports whether p names one of the nine grahas.
func (p Planet) Valid() bool {
	for _, known := range AllPlanets {
		if p == known {
			return true
		}
	}
	return false
}

// planetNames maps lower-cased spellings, including the common Sanskrit
// names, to the canonical planet identifier.
var planetNames = map[string]Planet{
	"sun": Sun, "surya": Sun,
	"moon": Moon, "chandra": Moon,
	"mars": Mars, "mangal": Mars, "kuja": Mars,
	"mercury": Mercury, "budha": Mercury,
	"jupiter": Jupiter, "guru": Jupiter, "brihaspati": Jupiter,
	"venus": Venus, "shukra": Venus,
	"saturn": Saturn, "shani": Saturn,
	"rahu": Rahu,
	"ketu": Ketu,
}

// ParsePlanet converts a string to a Planet, accepting English and common
// Sanskrit spellings case-insensitively. Returns the planet and true if
// recognized, or an empty Planet and false otherwise.
func ParsePlanet(s string) (Planet, bool) {
	p, ok := planetNames[strings.ToLower(strings.TrimSpace(s))]
	return p, ok
}
