// Package normalize resolves raw detected-yoga name strings to canonical
// catalog entries. Resolution is dictionary-based: an exact lookup against a
// precomputed variant index, with a single reorder retry for two-token
// compound names. There is no fuzzy or edit-distance matching.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// Fold canonicalizes a raw name for index lookup: lower-case, hyphen runs
// and whitespace runs collapsed to a single space, leading/trailing space
// trimmed. Fold is idempotent: Fold(Fold(x)) == Fold(x).
func Fold(raw string) string {
	lowered := strings.ToLower(strings.ReplaceAll(raw, "-", " "))
	return strings.Join(strings.Fields(lowered), " ")
}

// Index is the variant-lookup surface the resolver needs. The catalog
// registry satisfies it.
type Index interface {
	// Lookup resolves a folded variant string to its definition.
	Lookup(folded string) (*core.YogaDefinition, bool)
}

// Resolution is the outcome of resolving one raw name. It is a pure value:
// identical raw input against the same index always yields the same result.
type Resolution struct {
	// Raw is the input string as received.
	Raw string
	// Key is the grouping key: the canonical name when resolved, the folded
	// input string when not. Keys are stable within a registry version.
	Key string
	// Display is the name to show: the canonical name, or the title-cased
	// folded input for a passthrough.
	Display string
	// Definition is the matched catalog entry; nil for a passthrough.
	Definition *core.YogaDefinition
	// Unresolved marks a passthrough result.
	Unresolved bool
}

// Resolver resolves raw names against a variant index.
type Resolver struct {
	idx Index
}

// NewResolver creates a resolver bound to a variant index.
func NewResolver(idx Index) *Resolver {
	return &Resolver{idx: idx}
}

// Resolve maps a raw name to a canonical catalog entry, or to a passthrough
// result tagged Unresolved when no variant matches. Recording passthroughs
// for review is the caller's concern; Resolve itself has no side effects.
func (r *Resolver) Resolve(raw string) Resolution {
	folded := Fold(raw)

	if def, ok := r.idx.Lookup(folded); ok {
		return resolved(raw, def)
	}

	// Compound-name retry: two-token names (a trailing "yoga" token aside)
	// may appear in either order. One swap, one retry.
	if swapped, ok := swapTokens(folded); ok {
		if def, ok := r.idx.Lookup(swapped); ok {
			return resolved(raw, def)
		}
	}

	return Resolution{
		Raw:        raw,
		Key:        folded,
		Display:    cases.Title(language.English).String(folded),
		Unresolved: true,
	}
}

func resolved(raw string, def *core.YogaDefinition) Resolution {
	return Resolution{
		Raw:        raw,
		Key:        def.CanonicalName,
		Display:    def.CanonicalName,
		Definition: def,
	}
}

// swapTokens returns the folded name with its two leading tokens swapped,
// leaving a trailing "yoga" token in place. Returns false when the name is
// not a two-token compound.
func swapTokens(folded string) (string, bool) {
	tokens := strings.Split(folded, " ")
	body := tokens
	trailer := ""
	if n := len(tokens); n > 0 && tokens[n-1] == "yoga" {
		body = tokens[:n-1]
		trailer = " yoga"
	}
	if len(body) != 2 {
		return "", false
	}
	return body[1] + " " + body[0] + trailer, true
}
