// Package catalog holds the canonical yoga registry: the curated definition
// table, the folded variant index built from it, and the alias overlay merged
// in from review-queue curation.
//
// A Registry is built once and never mutated. Catalog changes (a new overlay,
// a new curation release) produce a new Registry instance that callers swap
// in whole, so concurrent readers never observe a partially updated index.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arytiwari/jioastro-sub006/internal/normalize"
	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// Registry is an immutable snapshot of the canonical catalog.
type Registry struct {
	version string
	builtAt time.Time

	// defs holds definitions in curation order.
	defs []*core.YogaDefinition

	// byCanonical maps the exact canonical display name to its definition.
	byCanonical map[string]*core.YogaDefinition

	// byVariant maps every folded variant (canonical names included) to its
	// definition. This is the normalizer's O(1) index.
	byVariant map[string]*core.YogaDefinition

	// byToken maps folded name tokens to candidate definitions for
	// dictionary-based suggestions. The generic "yoga" token is excluded.
	byToken map[string][]*core.YogaDefinition

	// rank maps canonical names to curation order for stable sorting.
	rank map[string]int
}

// BuildOptions control registry construction.
type BuildOptions struct {
	// Overlay maps canonical names to extra variant spellings curated from
	// the review queue. Overlay entries are validated exactly like built-in
	// variants: an unknown canonical name or a variant collision is a fatal
	// configuration error.
	Overlay map[string][]string
}

// Build constructs a registry from the built-in catalog table plus the
// optional overlay. It fails fast on any data-integrity violation: a missing
// required field, a duplicate canonical name, or a variant string claimed by
// two canonical entries.
func Build(opts BuildOptions) (*Registry, error) {
	return buildFrom(definitions, opts)
}

func buildFrom(src []core.YogaDefinition, opts BuildOptions) (*Registry, error) {
	r := &Registry{
		version:     uuid.NewString(),
		builtAt:     time.Now().UTC(),
		defs:        make([]*core.YogaDefinition, 0, len(src)),
		byCanonical: make(map[string]*core.YogaDefinition, len(src)),
		byVariant:   make(map[string]*core.YogaDefinition, len(src)*2),
		byToken:     make(map[string][]*core.YogaDefinition),
		rank:        make(map[string]int, len(src)),
	}

	for i := range src {
		def := src[i]
		if err := validateDefinition(&def, i); err != nil {
			return nil, err
		}
		if _, dup := r.byCanonical[def.CanonicalName]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate canonical name %q", i, def.CanonicalName)
		}

		d := &def
		r.defs = append(r.defs, d)
		r.byCanonical[def.CanonicalName] = d
		r.rank[def.CanonicalName] = i

		if err := r.index(def.CanonicalName, d); err != nil {
			return nil, err
		}
		for _, variant := range def.VariantNames {
			if err := r.index(variant, d); err != nil {
				return nil, err
			}
		}
	}

	for canonical, variants := range opts.Overlay {
		d, ok := r.byCanonical[canonical]
		if !ok {
			return nil, fmt.Errorf("alias overlay: unknown canonical name %q", canonical)
		}
		for _, variant := range variants {
			if err := r.index(variant, d); err != nil {
				return nil, fmt.Errorf("alias overlay: %w", err)
			}
		}
	}

	return r, nil
}

func validateDefinition(def *core.YogaDefinition, i int) error {
	if strings.TrimSpace(def.CanonicalName) == "" {
		return fmt.Errorf("catalog entry %d: missing canonical name", i)
	}
	if !def.Tier.Valid() {
		return fmt.Errorf("catalog entry %d (%q): invalid tier %q", i, def.CanonicalName, def.Tier)
	}
	if !def.LifeArea.Valid() {
		return fmt.Errorf("catalog entry %d (%q): invalid life area %q", i, def.CanonicalName, def.LifeArea)
	}
	for _, p := range def.FormingPlanets {
		if !p.Valid() {
			return fmt.Errorf("catalog entry %d (%q): unknown planet %q", i, def.CanonicalName, p)
		}
	}
	return nil
}

// index registers one folded spelling for a definition. A folded string may
// be listed more than once for the same entry (harmless), but never for two
// different entries.
func (r *Registry) index(name string, d *core.YogaDefinition) error {
	folded := normalize.Fold(name)
	if folded == "" {
		return fmt.Errorf("catalog entry %q: variant %q folds to empty string", d.CanonicalName, name)
	}
	if existing, ok := r.byVariant[folded]; ok {
		if existing == d {
			return nil
		}
		return &core.ConflictError{Variant: folded, First: existing.CanonicalName, Second: d.CanonicalName}
	}
	r.byVariant[folded] = d

	for _, token := range strings.Split(folded, " ") {
		if token == "yoga" {
			continue
		}
		if !containsDef(r.byToken[token], d) {
			r.byToken[token] = append(r.byToken[token], d)
		}
	}
	return nil
}

func containsDef(defs []*core.YogaDefinition, d *core.YogaDefinition) bool {
	for _, existing := range defs {
		if existing == d {
			return true
		}
	}
	return false
}

// Version identifies this registry build. Two builds never share a version.
func (r *Registry) Version() string { return r.version }

// BuiltAt reports when this registry instance was constructed.
func (r *Registry) BuiltAt() time.Time { return r.builtAt }

// Count returns the number of canonical entries.
func (r *Registry) Count() int { return len(r.defs) }

// VariantCount returns the number of distinct folded spellings the variant
// index resolves, canonical names included.
func (r *Registry) VariantCount() int { return len(r.byVariant) }

// Lookup resolves any known spelling to its definition. The input is folded
// before lookup, so callers may pass raw or already-folded strings.
func (r *Registry) Lookup(name string) (*core.YogaDefinition, bool) {
	def, ok := r.byVariant[normalize.Fold(name)]
	return def, ok
}

// Get returns the definition for an exact canonical name.
func (r *Registry) Get(canonical string) (*core.YogaDefinition, bool) {
	def, ok := r.byCanonical[canonical]
	return def, ok
}

// Definitions returns all entries in curation order. The returned slice is a
// copy; the definitions themselves are shared and must not be mutated.
func (r *Registry) Definitions() []*core.YogaDefinition {
	out := make([]*core.YogaDefinition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Classify returns the curated tier and life area for a canonical name.
// Unknown names get the conservative default: TierStandard, no life area,
// ok=false (callers surface this as unclassified).
func (r *Registry) Classify(canonical string) (core.Tier, core.LifeArea, bool) {
	if def, ok := r.byCanonical[canonical]; ok {
		return def.Tier, def.LifeArea, true
	}
	return core.TierStandard, "", false
}

// Suggest returns up to max canonical names nearest to the query, for the
// encyclopedia not-found path. Nearness is dictionary-based: shared folded
// tokens, with a bonus when a name starts with the folded query. No edit
// distance is involved.
func (r *Registry) Suggest(query string, max int) []string {
	folded := normalize.Fold(query)
	if folded == "" || max <= 0 {
		return nil
	}

	scores := make(map[*core.YogaDefinition]int)
	for _, token := range strings.Split(folded, " ") {
		if token == "yoga" {
			continue
		}
		for _, d := range r.byToken[token] {
			scores[d] += 2
		}
		// A token that prefixes an indexed token still counts, at half
		// weight, so truncated spellings surface their family.
		if len(token) >= 3 {
			for idxToken, defs := range r.byToken {
				if idxToken != token && strings.HasPrefix(idxToken, token) {
					for _, d := range defs {
						scores[d]++
					}
				}
			}
		}
	}
	for d := range scores {
		if strings.HasPrefix(normalize.Fold(d.CanonicalName), folded) {
			scores[d] += 3
		}
	}

	ranked := make([]*core.YogaDefinition, 0, len(scores))
	for d := range scores {
		ranked = append(ranked, d)
	}
	sort.Slice(ranked, func(i, j int) bool {
		si, sj := scores[ranked[i]], scores[ranked[j]]
		if si != sj {
			return si > sj
		}
		return r.rank[ranked[i].CanonicalName] < r.rank[ranked[j].CanonicalName]
	})

	if len(ranked) > max {
		ranked = ranked[:max]
	}
	names := make([]string, len(ranked))
	for i, d := range ranked {
		names[i] = d.CanonicalName
	}
	return names
}
