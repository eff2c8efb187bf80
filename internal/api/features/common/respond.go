// Package common provides shared request and response helpers for API features.
package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// ErrorPayload is the body for plain error responses.
type ErrorPayload struct {
	Error string `json:"error"`
}

// NotFoundPayload is the body for name-lookup misses. Suggestions carry
// near-miss canonical names for the query.
type NotFoundPayload struct {
	Error       string   `json:"error"`
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a plain error body with the given status code.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorPayload{Error: msg})
}

// WriteNotFound writes the 404 body for a failed name lookup,
// including suggestions when the catalog has near misses.
func WriteNotFound(w http.ResponseWriter, nf *core.NotFound) {
	suggestions := nf.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	WriteJSON(w, http.StatusNotFound, NotFoundPayload{
		Error:       "not_found",
		Query:       nf.Query,
		Suggestions: suggestions,
	})
}

// DecodeJSON decodes a request body into v. Unknown fields are rejected
// so misspelled keys fail loudly instead of being silently dropped.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// LookupFailure maps a lookup error onto the wire: catalog misses become
// the structured 404 body, anything else a 500.
func LookupFailure(w http.ResponseWriter, err error) {
	var nf *core.NotFound
	if errors.As(err, &nf) {
		WriteNotFound(w, nf)
		return
	}
	WriteError(w, http.StatusInternalServerError, err.Error())
}
