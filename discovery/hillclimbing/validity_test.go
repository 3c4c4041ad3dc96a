package hillclimbing

import (
	"testing"

	"github.com/graphcausal/cgm/graph"
	"github.com/stretchr/testify/require"
)

func TestAddValid_RejectsInDegreeCap(t *testing.T) {
	g := graph.NewDirected([]string{"a", "b", "c"})
	ai, _ := g.IndexOf("a")
	bi, _ := g.IndexOf("b")
	ci, _ := g.IndexOf("c")
	indeg := []int{0, 1, 0}

	require.False(t, addValid(g, indeg, 1, ci, bi))
	require.True(t, addValid(g, indeg, 1, ai, ci))
}

func TestAddValid_RejectsCycle(t *testing.T) {
	g := graph.NewDirected([]string{"a", "b", "c"})
	require.NoError(t, g.AddDirectedEdge("a", "b"))
	require.NoError(t, g.AddDirectedEdge("b", "c"))
	ai, _ := g.IndexOf("a")
	ci, _ := g.IndexOf("c")
	indeg := []int{0, 1, 1}

	require.False(t, addValid(g, indeg, 99, ci, ai)) // c->a would close a->b->c->a
}

func TestRevValid_RejectsWhenOtherChildReaches(t *testing.T) {
	g := graph.NewDirected([]string{"a", "b", "c"})
	require.NoError(t, g.AddDirectedEdge("a", "b"))
	require.NoError(t, g.AddDirectedEdge("a", "c"))
	require.NoError(t, g.AddDirectedEdge("c", "b"))
	ai, _ := g.IndexOf("a")
	bi, _ := g.IndexOf("b")
	indeg := []int{0, 2, 1}

	// Rev(a,b): a's other child c reaches b (c->b), so reversing a->b
	// into b->a would still leave a path a->c->b->a, a cycle.
	require.False(t, revValid(g, indeg, 99, ai, bi))
}

func TestRevValid_AllowsIndependentChild(t *testing.T) {
	g := graph.NewDirected([]string{"a", "b", "c"})
	require.NoError(t, g.AddDirectedEdge("a", "b"))
	require.NoError(t, g.AddDirectedEdge("a", "c"))
	ai, _ := g.IndexOf("a")
	bi, _ := g.IndexOf("b")
	indeg := []int{0, 1, 1}

	require.True(t, revValid(g, indeg, 99, ai, bi))
}

func TestRevValid_RejectsInDegreeCap(t *testing.T) {
	g := graph.NewDirected([]string{"a", "b"})
	require.NoError(t, g.AddDirectedEdge("a", "b"))
	ai, _ := g.IndexOf("a")
	bi, _ := g.IndexOf("b")
	indeg := []int{1, 1}

	require.False(t, revValid(g, indeg, 1, ai, bi))
}
