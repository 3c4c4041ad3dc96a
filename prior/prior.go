// Package prior implements the PriorKnowledge capability interface
// consumed by the Hill-Climbing engine: required and forbidden edge
// sets, with consistency checks against a label set and between the
// two edge sets (spec.md §4.2). Static does not check the required
// edges for cycles; the Hill-Climbing engine does when it inserts them.
package prior

import "errors"

// Sentinel errors.
var (
	// ErrUnknownLabel is returned when a required/forbidden edge
	// references a label outside the bound label set.
	ErrUnknownLabel = errors.New("prior: edge references an unknown label")

	// ErrConflict is returned when the same edge is both required and forbidden.
	ErrConflict = errors.New("prior: edge is both required and forbidden")
)

// PriorKnowledge is the capability interface Hill-Climbing consumes
// (spec.md §4.2): required and forbidden directed edges, keyed by
// label pair.
type PriorKnowledge interface {
	// Labels returns the label set this prior knowledge is consistent with.
	Labels() []string

	// Required returns every required directed edge (from, to).
	Required() [][2]string

	// Forbidden returns every forbidden directed edge (from, to).
	Forbidden() [][2]string

	// HasRequired reports whether (x, y) is a required edge.
	HasRequired(x, y string) bool

	// HasForbidden reports whether (x, y) is a forbidden edge.
	HasForbidden(x, y string) bool
}
