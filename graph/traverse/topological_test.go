package traverse_test

import (
	"errors"
	"testing"

	"github.com/graphcausal/cgm/graph"
	"github.com/graphcausal/cgm/graph/traverse"
)

func mustDirected(t *testing.T, labels []string, edges [][2]string) *graph.Graph {
	t.Helper()
	var es []graph.Edge
	for _, e := range edges {
		es = append(es, graph.Edge{From: e[0], To: e[1]})
	}
	g, err := graph.FromEdgeList(graph.Directed, labels, es)
	if err != nil {
		t.Fatalf("FromEdgeList: %v", err)
	}
	return g
}

func TestTopologicalSort_Errors(t *testing.T) {
	if _, err := traverse.TopologicalSort(nil); !errors.Is(err, traverse.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := mustUndirected(t, []string{"a"}, nil)
	if _, err := traverse.TopologicalSort(g); !errors.Is(err, traverse.ErrNotDirected) {
		t.Errorf("undirected graph: want ErrNotDirected, got %v", err)
	}
}

func TestTopologicalSort_Chain(t *testing.T) {
	g := mustDirected(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})
	order, err := traverse.TopologicalSort(g)
	if err != nil {
		t.Fatalf("TopologicalSort: %v", err)
	}
	ai, _ := g.IndexOf("a")
	bi, _ := g.IndexOf("b")
	ci, _ := g.IndexOf("c")
	pos := make(map[int]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	if !(pos[ai] < pos[bi] && pos[bi] < pos[ci]) {
		t.Errorf("order %v does not respect a->b->c", order)
	}
}

func TestTopologicalSort_Cycle(t *testing.T) {
	g := mustDirected(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})
	if _, err := traverse.TopologicalSort(g); !errors.Is(err, traverse.ErrCycle) {
		t.Errorf("cyclic graph: want ErrCycle, got %v", err)
	}
}
