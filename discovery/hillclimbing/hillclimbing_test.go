package hillclimbing

import (
	"testing"

	"github.com/graphcausal/cgm/graph"
	"github.com/graphcausal/cgm/prior"
	"github.com/graphcausal/cgm/score"
	"github.com/stretchr/testify/require"
)

// countParentsScore is the trivial scoring criterion from spec.md §8's
// concrete end-to-end scenario 1: the local score of every family is
// simply its parent count, so any valid Add operator strictly improves
// the total score and the engine greedily saturates in-degree capacity.
type countParentsScore struct{ labels []string }

var _ score.DecomposableScoringCriterion = countParentsScore{}

func (c countParentsScore) Labels() []string                 { return c.labels }
func (c countParentsScore) MaxInDegreeHint() (int, bool)      { return 0, false }
func (c countParentsScore) Call(_ int, parents []int) (float64, error) {
	return float64(len(parents)), nil
}

func TestDiscover_RejectsEmptyLabels(t *testing.T) {
	_, err := Discover(countParentsScore{})
	require.ErrorIs(t, err, ErrNoLabels)
}

func TestDiscover_MaxInDegreeZeroForbidsAllAdds(t *testing.T) {
	crit := countParentsScore{labels: []string{"a", "b", "c"}}
	res, err := Discover(crit, WithMaxInDegree(0))
	require.NoError(t, err)
	require.Equal(t, 0, res.Graph.DirectedSize())
}

func TestDiscover_MaxIterZeroYieldsInitialGraph(t *testing.T) {
	crit := countParentsScore{labels: []string{"a", "b", "c"}}
	res, err := Discover(crit, WithMaxIter(0))
	require.NoError(t, err)
	require.Equal(t, 0, res.Graph.DirectedSize())
}

func TestDiscover_MaxInDegreeOneSaturatesIntoATree(t *testing.T) {
	crit := countParentsScore{labels: []string{"a", "b", "c", "d"}}
	res, err := Discover(crit, WithMaxInDegree(1))
	require.NoError(t, err)

	g := res.Graph
	require.True(t, g.IsAcyclic())
	require.Equal(t, g.Order()-1, g.DirectedSize())
	for v := 0; v < g.Order(); v++ {
		require.LessOrEqual(t, g.InDegree(v), 1)
	}
}

func TestDiscover_RequiredEdgeCycleFails(t *testing.T) {
	crit := countParentsScore{labels: []string{"a", "b", "c"}}
	pk, err := prior.NewStatic(crit.labels, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}}, nil)
	require.NoError(t, err)
	_, err = Discover(crit, WithPriorKnowledge(pk))
	require.ErrorIs(t, err, ErrRequiredCycle)
}

func TestDiscover_ForbiddenEdgeNeverAdded(t *testing.T) {
	crit := countParentsScore{labels: []string{"a", "b"}}
	pk, err := prior.NewStatic(crit.labels, nil, [][2]string{{"a", "b"}, {"b", "a"}})
	require.NoError(t, err)
	res, err := Discover(crit, WithPriorKnowledge(pk))
	require.NoError(t, err)
	require.Equal(t, 0, res.Graph.DirectedSize())
}

func TestDiscover_NonDecomposableCriterion(t *testing.T) {
	crit := &edgeCountGraphScore{labels: []string{"a", "b", "c"}}
	res, err := Discover(crit, WithMaxInDegree(1))
	require.NoError(t, err)
	require.True(t, res.Graph.IsAcyclic())
	require.Equal(t, res.Graph.Order()-1, res.Graph.DirectedSize())
}

// edgeCountGraphScore is a non-decomposable counterpart to
// countParentsScore: the whole-graph score is simply its edge count.
type edgeCountGraphScore struct{ labels []string }

var _ score.NonDecomposableScoringCriterion = (*edgeCountGraphScore)(nil)

func (e *edgeCountGraphScore) Labels() []string            { return e.labels }
func (e *edgeCountGraphScore) MaxInDegreeHint() (int, bool) { return 0, false }
func (e *edgeCountGraphScore) CallGraph(g *graph.Graph) (float64, error) {
	return float64(g.DirectedSize() + g.UndirectedSize()), nil
}
