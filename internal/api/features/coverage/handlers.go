package coverage

import (
	"net/http"
	"strings"

	"github.com/arytiwari/jioastro-sub006/internal/api/features/common"
	"github.com/arytiwari/jioastro-sub006/internal/engine"
	"github.com/arytiwari/jioastro-sub006/internal/normalize"
	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// Handlers provides HTTP handlers for the coverage feature.
type Handlers struct {
	engine *engine.Engine
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(eng *engine.Engine) *Handlers {
	return &Handlers{engine: eng}
}

// Report returns the per-tier coverage report. The optional observed query
// parameter takes a comma-separated list of yoga names; names that resolve
// count toward their tier, the rest are reported as unresolved.
func (h *Handlers) Report(w http.ResponseWriter, r *http.Request) {
	var observed []core.NormalizedYoga

	if raw := r.URL.Query().Get("observed"); raw != "" {
		resolver := normalize.NewResolver(h.engine.Registry())
		for _, name := range strings.Split(raw, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			res := resolver.Resolve(name)
			if res.Unresolved {
				observed = append(observed, core.NormalizedYoga{
					CanonicalName: res.Display,
					Unresolved:    true,
				})
				continue
			}
			observed = append(observed, core.NormalizedYoga{
				CanonicalName: res.Definition.CanonicalName,
				Tier:          res.Definition.Tier,
				LifeArea:      res.Definition.LifeArea,
			})
		}
	}

	common.WriteJSON(w, http.StatusOK, h.engine.Coverage(observed))
}
