// Package score implements the scoring-criterion capability interface
// consumed by the Hill-Climbing engine, the discrete BIC/BDeu/AIC and
// continuous GaussianBIC scores, and the two-phase score cache
// (spec.md §4.2-4.3). The cache's Query/Extend/ParExtend split mirrors
// the ecosystem's fork/join style (golang.org/x/sync/errgroup, per
// SPEC_FULL.md §2 domain stack) to avoid contended concurrent maps
// during parallel fan-out.
package score

import (
	"errors"

	"github.com/graphcausal/cgm/graph"
)

// Sentinel errors.
var (
	// ErrVariableOutOfRange is returned when a variable index does not
	// belong to the bound dataset.
	ErrVariableOutOfRange = errors.New("score: variable index out of range")

	// ErrEmptyDataset is returned when a score is bound to a dataset
	// with zero samples.
	ErrEmptyDataset = errors.New("score: dataset has no samples")
)

// ScoringCriterion is the capability the Hill-Climbing engine
// requires of any score, decomposable or not (spec.md §4.2).
type ScoringCriterion interface {
	// Labels returns the bound dataset's variable labels.
	Labels() []string

	// MaxInDegreeHint optionally advises a maximum parent-set size;
	// ok is false when the criterion offers no such hint.
	MaxInDegreeHint() (hint int, ok bool)
}

// DecomposableScoringCriterion additionally exposes the per-family
// local score s(x | parents); a global score is the sum over
// vertices.
type DecomposableScoringCriterion interface {
	ScoringCriterion

	// Call returns the local family score of x given parents (any order).
	Call(x int, parents []int) (float64, error)
}

// NonDecomposableScoringCriterion exposes only a whole-graph score;
// Hill-Climbing's delta evaluation for these must clone-and-rescore
// (spec.md §4.5, §9 "Ownership of graphs in the non-decomposable path").
type NonDecomposableScoringCriterion interface {
	ScoringCriterion

	// CallGraph returns the global score s(G).
	CallGraph(g *graph.Graph) (float64, error)
}
