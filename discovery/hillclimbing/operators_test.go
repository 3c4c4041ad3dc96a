package hillclimbing

import (
	"testing"

	"github.com/graphcausal/cgm/graph"
	"github.com/stretchr/testify/require"
)

func TestEdgeSet_InsertionOrderSurvivesRemoval(t *testing.T) {
	s := newEdgeSet()
	s.Insert(edge{0, 1})
	s.Insert(edge{0, 2})
	s.Insert(edge{1, 2})
	s.Remove(edge{0, 2})

	require.Equal(t, []edge{{0, 1}, {1, 2}}, s.Ordered())
	require.False(t, s.Contains(edge{0, 2}))
}

func TestEdgeSet_ReinsertAppendsAtEnd(t *testing.T) {
	s := newEdgeSet()
	s.Insert(edge{0, 1})
	s.Insert(edge{0, 2})
	s.Remove(edge{0, 1})
	s.Insert(edge{0, 1})

	require.Equal(t, []edge{{0, 2}, {0, 1}}, s.Ordered())
}

func TestBuildOperatorSpaces_ExcludesExistingAndForbidden(t *testing.T) {
	g := graph.NewDirected([]string{"a", "b", "c"})
	require.NoError(t, g.AddDirectedEdge("a", "b"))
	ai, _ := g.IndexOf("a")
	bi, _ := g.IndexOf("b")
	ci, _ := g.IndexOf("c")

	add, del, rev := buildOperatorSpaces(g, nil, []int{ai, bi, ci})

	require.False(t, add.Contains(edge{ai, bi}))
	require.True(t, add.Contains(edge{bi, ai}))
	require.True(t, add.Contains(edge{ai, ci}))
	require.True(t, del.Contains(edge{ai, bi}))
	require.True(t, rev.Contains(edge{ai, bi}))
}

func TestApplyOperatorSpaceUpdate_Add(t *testing.T) {
	add, del, rev := newEdgeSet(), newEdgeSet(), newEdgeSet()
	add.Insert(edge{0, 1})
	add.Insert(edge{1, 0})

	applyOperatorSpaceUpdate(add, del, rev, operator{kind: opAdd, x: 0, y: 1})

	require.False(t, add.Contains(edge{0, 1}))
	require.True(t, del.Contains(edge{0, 1}))
	require.True(t, rev.Contains(edge{0, 1}))
}

func TestApplyOperatorSpaceUpdate_Del(t *testing.T) {
	add, del, rev := newEdgeSet(), newEdgeSet(), newEdgeSet()
	del.Insert(edge{0, 1})
	rev.Insert(edge{0, 1})

	applyOperatorSpaceUpdate(add, del, rev, operator{kind: opDel, x: 0, y: 1})

	require.True(t, add.Contains(edge{0, 1}))
	require.False(t, del.Contains(edge{0, 1}))
	require.False(t, rev.Contains(edge{0, 1}))
}

func TestApplyOperatorSpaceUpdate_Rev(t *testing.T) {
	add, del, rev := newEdgeSet(), newEdgeSet(), newEdgeSet()
	del.Insert(edge{0, 1})
	rev.Insert(edge{0, 1})

	applyOperatorSpaceUpdate(add, del, rev, operator{kind: opRev, x: 0, y: 1})

	require.True(t, add.Contains(edge{0, 1}))
	require.True(t, del.Contains(edge{1, 0}))
	require.True(t, rev.Contains(edge{1, 0}))
	require.False(t, del.Contains(edge{0, 1}))
	require.False(t, rev.Contains(edge{0, 1}))
}
