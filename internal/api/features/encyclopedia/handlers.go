package encyclopedia

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/arytiwari/jioastro-sub006/internal/api/features/common"
	"github.com/arytiwari/jioastro-sub006/internal/engine"
	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// Handlers provides HTTP handlers for the encyclopedia feature.
type Handlers struct {
	engine *engine.Engine
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(eng *engine.Engine) *Handlers {
	return &Handlers{engine: eng}
}

// ListResponse is the body for GET /api/yogas.
type ListResponse struct {
	Version string                 `json:"version"`
	Count   int                    `json:"count"`
	Yogas   []*core.YogaDefinition `json:"yogas"`
}

// List returns catalog entries in registry order, optionally filtered by
// tier, life area, and a case-insensitive name search.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	reg := h.engine.Registry()
	query := r.URL.Query()

	var tier core.Tier
	if s := query.Get("tier"); s != "" {
		parsed, ok := core.ParseTier(s)
		if !ok {
			common.WriteError(w, http.StatusBadRequest,
				fmt.Sprintf("unknown tier %q (valid: major_positive, major_challenge, standard, minor, subtle)", s))
			return
		}
		tier = parsed
	}

	var area core.LifeArea
	if s := query.Get("area"); s != "" {
		parsed, ok := core.ParseLifeArea(s)
		if !ok {
			common.WriteError(w, http.StatusBadRequest, fmt.Sprintf("unknown life area %q", s))
			return
		}
		area = parsed
	}

	search := strings.ToLower(strings.TrimSpace(query.Get("q")))

	defs := reg.Definitions()
	filtered := make([]*core.YogaDefinition, 0, len(defs))
	for _, def := range defs {
		if tier != "" && def.Tier != tier {
			continue
		}
		if area != "" && def.LifeArea != area {
			continue
		}
		if search != "" && !matchesSearch(def, search) {
			continue
		}
		filtered = append(filtered, def)
	}

	common.WriteJSON(w, http.StatusOK, ListResponse{
		Version: reg.Version(),
		Count:   len(filtered),
		Yogas:   filtered,
	})
}

// Get returns one definition by any known variant spelling. Misses get the
// structured 404 body with near-miss suggestions.
func (h *Handlers) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	def, err := h.engine.Lookup(name)
	if err != nil {
		common.LookupFailure(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, def)
}

// matchesSearch reports whether the search term appears in the canonical
// name or any variant, ignoring case.
func matchesSearch(def *core.YogaDefinition, search string) bool {
	if strings.Contains(strings.ToLower(def.CanonicalName), search) {
		return true
	}
	for _, v := range def.VariantNames {
		if strings.Contains(strings.ToLower(v), search) {
			return true
		}
	}
	return false
}
