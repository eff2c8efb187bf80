package core

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrStoreNotConfigured is returned by store operations when no state
// database is configured.
var ErrStoreNotConfigured = errors.New("state store not configured")

// ConflictError is the fatal configuration error raised when catalog
// construction finds a variant string claimed by two canonical entries.
type ConflictError struct {
	Variant string // normalized variant string
	First   string // canonical name that first claimed the variant
	Second  string // canonical name that also claims it
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("variant %q claimed by both %q and %q", e.Variant, e.First, e.Second)
}

// NotFound is the structured result for an encyclopedia query that matched
// no catalog entry. It is a renderable value, not an error to be raised.
type NotFound struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func (n *NotFound) Error() string {
	if len(n.Suggestions) > 0 {
		return fmt.Sprintf("no yoga named %q (did you mean %q?)", n.Query, n.Suggestions[0])
	}
	return fmt.Sprintf("no yoga named %q", n.Query)
}
