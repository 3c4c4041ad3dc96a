package pcstable

import (
	"testing"

	"github.com/graphcausal/cgm/citest"
	"github.com/graphcausal/cgm/graph"
	"github.com/stretchr/testify/require"
)

var _ citest.ConditionalIndependenceTest = (*fakeTest)(nil)

// fakeTest is a minimal citest.ConditionalIndependenceTest whose Call
// answers are scripted directly, exercising the engine's wiring without
// a real Chi-Squared evaluation.
type fakeTest struct {
	labels    []string
	independ  map[string]bool // key: keyFor(x, y, z), e.g. "a,b:c"
	callCount int
}

func (f *fakeTest) Labels() []string { return f.labels }

func (f *fakeTest) WithSignificanceLevel(alpha float64) (citest.ConditionalIndependenceTest, error) {
	return f, nil
}

func (f *fakeTest) Call(x, y int, z []int) (bool, error) {
	f.callCount++
	return f.independ[keyFor(x, y, z)], nil
}

func (f *fakeTest) Eval(x, y int, z []int) (int, float64, float64, error) {
	return 0, 0, 1, nil
}

func keyFor(x, y int, z []int) string {
	out := make([]byte, 0, 16)
	out = append(out, byte('a'+x), ',', byte('a'+y), ':')
	for _, v := range z {
		out = append(out, byte('a'+v))
	}
	return string(out)
}

func TestDiscover_RejectsEmptyLabels(t *testing.T) {
	_, err := Discover(&fakeTest{})
	require.ErrorIs(t, err, ErrNoLabels)
}

func TestDiscover_TriangleWithNoConditionalIndependence(t *testing.T) {
	// a,b,c fully dependent at every level: skeleton stays complete,
	// then v-structure/Meek closure run over it (no unshielded triple
	// exists on a triangle, so nothing gets oriented).
	test := &fakeTest{labels: []string{"a", "b", "c"}, independ: map[string]bool{}}
	res, err := Discover(test)
	require.NoError(t, err)
	require.Equal(t, 3, res.Graph.UndirectedSize())
	require.Equal(t, 0, res.Graph.DirectedSize())
}

func TestMeekRule1_OrientsChain(t *testing.T) {
	g := graph.NewPartiallyDirected([]string{"a", "b", "c"})
	require.NoError(t, g.AddDirectedEdge("a", "b"))
	require.NoError(t, g.AddUndirectedEdge("b", "c"))

	meekClosure(g, false)

	bi, _ := g.IndexOf("b")
	ci, _ := g.IndexOf("c")
	require.Contains(t, g.Children(bi), ci)
}

func TestMeekRule2_OrientsTriangle(t *testing.T) {
	g := graph.NewPartiallyDirected([]string{"a", "b", "c"})
	require.NoError(t, g.AddDirectedEdge("a", "b"))
	require.NoError(t, g.AddDirectedEdge("b", "c"))
	require.NoError(t, g.AddUndirectedEdge("a", "c"))

	meekClosure(g, false)

	ai, _ := g.IndexOf("a")
	ci, _ := g.IndexOf("c")
	require.Contains(t, g.Children(ai), ci)
}

func TestOrientVStructures_UnshieldedTripleOrients(t *testing.T) {
	// a−y−z unshielded (no a-z edge), y not in sepset(a,z) => a→y←z.
	g := graph.NewPartiallyDirected([]string{"a", "y", "z"})
	require.NoError(t, g.AddUndirectedEdge("a", "y"))
	require.NoError(t, g.AddUndirectedEdge("y", "z"))
	ai, _ := g.IndexOf("a")
	yi, _ := g.IndexOf("y")
	zi, _ := g.IndexOf("z")

	orientVStructures(g, map[SepSetKey][]int{
		{X: ai, Y: zi}: {},
		{X: zi, Y: ai}: {},
	})

	require.Contains(t, g.Children(ai), yi)
	require.Contains(t, g.Children(zi), yi)
}

func TestOrientVStructures_ShieldedTripleSkipped(t *testing.T) {
	g := graph.NewPartiallyDirected([]string{"a", "y", "z"})
	require.NoError(t, g.AddUndirectedEdge("a", "y"))
	require.NoError(t, g.AddUndirectedEdge("y", "z"))
	require.NoError(t, g.AddUndirectedEdge("a", "z"))

	orientVStructures(g, map[SepSetKey][]int{})

	require.Equal(t, 0, g.DirectedSize())
}

func TestOrientVStructures_SkipsWhenYInSepSet(t *testing.T) {
	g := graph.NewPartiallyDirected([]string{"a", "y", "z"})
	require.NoError(t, g.AddUndirectedEdge("a", "y"))
	require.NoError(t, g.AddUndirectedEdge("y", "z"))
	ai, _ := g.IndexOf("a")
	yi, _ := g.IndexOf("y")
	zi, _ := g.IndexOf("z")

	orientVStructures(g, map[SepSetKey][]int{
		{X: ai, Y: zi}: {yi},
		{X: zi, Y: ai}: {yi},
	})

	require.Equal(t, 0, g.DirectedSize())
}

func TestCandidateSet_ExcludesEndpoints(t *testing.T) {
	g := graph.NewPartiallyDirected([]string{"a", "b", "c", "d"})
	require.NoError(t, g.AddUndirectedEdge("a", "b"))
	require.NoError(t, g.AddUndirectedEdge("a", "c"))
	require.NoError(t, g.AddUndirectedEdge("b", "d"))
	ai, _ := g.IndexOf("a")
	bi, _ := g.IndexOf("b")
	ci, _ := g.IndexOf("c")
	di, _ := g.IndexOf("d")

	got := candidateSet(g, ai, bi)
	require.ElementsMatch(t, []int{ci, di}, got)
}

func TestCombinations_SizeZeroIsEmptySubset(t *testing.T) {
	got := combinations([]int{1, 2, 3}, 0)
	require.Equal(t, [][]int{{}}, got)
}

func TestCombinations_SizeGreaterThanSetIsNil(t *testing.T) {
	got := combinations([]int{1, 2}, 3)
	require.Nil(t, got)
}

func TestCombinations_EnumeratesAllSubsets(t *testing.T) {
	got := combinations([]int{1, 2, 3}, 2)
	require.ElementsMatch(t, [][]int{{1, 2}, {1, 3}, {2, 3}}, got)
}
