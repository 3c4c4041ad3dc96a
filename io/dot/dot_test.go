package dot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/graphcausal/cgm/graph"
	"github.com/stretchr/testify/require"
)

func TestWriteRead_RoundTripsPartiallyDirectedGraph(t *testing.T) {
	g := graph.NewPartiallyDirected([]string{"a", "b", "c", "d"})
	require.NoError(t, g.AddDirectedEdge("a", "b"))
	require.NoError(t, g.AddUndirectedEdge("b", "c"))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g, "G"))

	got, err := Read(&buf)
	require.NoError(t, err)

	require.Equal(t, g.Labels(), got.Labels())
	require.Equal(t, g.DirectedSize(), got.DirectedSize())
	require.Equal(t, g.UndirectedSize(), got.UndirectedSize())

	ai, _ := got.IndexOf("a")
	bi, _ := got.IndexOf("b")
	ci, _ := got.IndexOf("c")
	require.Contains(t, got.Children(ai), bi)
	require.True(t, got.HasEdge(bi, ci))
	require.False(t, got.HasEdge(ai, ci))
}

func TestWrite_UndirectedEdgeGetsDirNoneAttribute(t *testing.T) {
	g := graph.NewPartiallyDirected([]string{"x", "y"})
	require.NoError(t, g.AddUndirectedEdge("x", "y"))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g, ""))

	require.Contains(t, buf.String(), "x -> y [ dir = none ];")
	require.Contains(t, buf.String(), "digraph G {")
}

func TestWrite_IsolatedVertexSurvivesRoundTrip(t *testing.T) {
	g := graph.NewPartiallyDirected([]string{"lonely", "a", "b"})
	require.NoError(t, g.AddDirectedEdge("a", "b"))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g, "G"))

	got, err := Read(&buf)
	require.NoError(t, err)
	_, ok := got.IndexOf("lonely")
	require.True(t, ok)
}

func TestRead_RejectsNonDigraphDocument(t *testing.T) {
	_, err := Read(strings.NewReader("graph G { a -- b; }"))
	require.ErrorIs(t, err, ErrSyntax)
}

func TestRead_RejectsUnterminatedBody(t *testing.T) {
	_, err := Read(strings.NewReader("digraph G { a -> b;"))
	require.ErrorIs(t, err, ErrSyntax)
}

func TestRead_ParsesBareVertexDeclaration(t *testing.T) {
	got, err := Read(strings.NewReader("digraph G {\n\ta;\n\tb;\n}\n"))
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"a", "b"}, got.Labels())
	require.Equal(t, 0, got.DirectedSize())
}
