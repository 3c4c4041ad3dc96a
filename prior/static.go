package prior

import "fmt"

// Static is a fixed PriorKnowledge built from explicit required and
// forbidden edge lists, validated against a label set at construction
// (spec.md §4.2: "must be consistent with the graph's label set").
type Static struct {
	labels    []string
	labelSet  map[string]bool
	required  map[[2]string]bool
	forbidden map[[2]string]bool
}

var _ PriorKnowledge = (*Static)(nil)

// NewStatic builds a Static prior over labels with the given required
// and forbidden edge lists. Returns ErrUnknownLabel if any edge
// references a label outside labels, or ErrConflict if the same edge
// appears in both lists.
func NewStatic(labels []string, required, forbidden [][2]string) (*Static, error) {
	labelSet := make(map[string]bool, len(labels))
	for _, l := range labels {
		labelSet[l] = true
	}

	reqSet := make(map[[2]string]bool, len(required))
	for _, e := range required {
		if !labelSet[e[0]] || !labelSet[e[1]] {
			return nil, fmt.Errorf("prior: required edge (%s,%s): %w", e[0], e[1], ErrUnknownLabel)
		}
		reqSet[e] = true
	}
	forbSet := make(map[[2]string]bool, len(forbidden))
	for _, e := range forbidden {
		if !labelSet[e[0]] || !labelSet[e[1]] {
			return nil, fmt.Errorf("prior: forbidden edge (%s,%s): %w", e[0], e[1], ErrUnknownLabel)
		}
		if reqSet[e] {
			return nil, fmt.Errorf("prior: edge (%s,%s): %w", e[0], e[1], ErrConflict)
		}
		forbSet[e] = true
	}

	return &Static{
		labels:    append([]string(nil), labels...),
		labelSet:  labelSet,
		required:  reqSet,
		forbidden: forbSet,
	}, nil
}

// Labels returns the bound label set.
func (s *Static) Labels() []string { return append([]string(nil), s.labels...) }

// Required returns every required directed edge.
func (s *Static) Required() [][2]string { return keys(s.required) }

// Forbidden returns every forbidden directed edge.
func (s *Static) Forbidden() [][2]string { return keys(s.forbidden) }

// HasRequired reports whether (x, y) is required.
func (s *Static) HasRequired(x, y string) bool { return s.required[[2]string{x, y}] }

// HasForbidden reports whether (x, y) is forbidden.
func (s *Static) HasForbidden(x, y string) bool { return s.forbidden[[2]string{x, y}] }

func keys(m map[[2]string]bool) [][2]string {
	out := make([][2]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
