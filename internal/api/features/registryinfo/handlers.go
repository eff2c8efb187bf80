package registryinfo

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/arytiwari/jioastro-sub006/internal/api/features/common"
	"github.com/arytiwari/jioastro-sub006/internal/api/notifier"
	"github.com/arytiwari/jioastro-sub006/internal/engine"
)

// Handlers provides HTTP handlers for the registryinfo feature.
type Handlers struct {
	engine   *engine.Engine
	notifier *notifier.Notifier
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(eng *engine.Engine, notify *notifier.Notifier) *Handlers {
	return &Handlers{engine: eng, notifier: notify}
}

// InfoResponse is the body for GET /api/registry and the data payload of
// registry change events.
type InfoResponse struct {
	Version  string    `json:"version"`
	BuiltAt  time.Time `json:"built_at"`
	Entries  int       `json:"entries"`
	Variants int       `json:"variants"`
}

// Info returns metadata for the currently loaded registry snapshot.
func (h *Handlers) Info(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, http.StatusOK, h.info())
}

// Events streams registry change notifications as Server-Sent Events. One
// event is sent immediately so clients learn the current snapshot, then one
// per hot-swap until the client disconnects.
func (h *Handlers) Events(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		common.WriteError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	updates := h.notifier.Subscribe()
	defer h.notifier.Unsubscribe(updates)

	h.sendEvent(w, flusher, "registry")

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			h.sendEvent(w, flusher, "registry_reloaded")
		}
	}
}

func (h *Handlers) info() InfoResponse {
	reg := h.engine.Registry()
	return InfoResponse{
		Version:  reg.Version(),
		BuiltAt:  reg.BuiltAt(),
		Entries:  reg.Count(),
		Variants: reg.VariantCount(),
	}
}

func (h *Handlers) sendEvent(w http.ResponseWriter, flusher http.Flusher, event string) {
	data, err := json.Marshal(h.info())
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\n", event)
	fmt.Fprintf(w, "data: %s\n\n", data)
	flusher.Flush()
}
