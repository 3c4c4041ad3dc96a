package traverse_test

import (
	"errors"
	"testing"

	"github.com/graphcausal/cgm/graph/traverse"
)

func TestBFS_Errors(t *testing.T) {
	if _, err := traverse.BFS(nil, 0); !errors.Is(err, traverse.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := mustUndirected(t, []string{"a"}, nil)
	if _, err := traverse.BFS(g, 9); !errors.Is(err, traverse.ErrStartNotFound) {
		t.Errorf("bad start: want ErrStartNotFound, got %v", err)
	}
}

func TestBFS_Distances(t *testing.T) {
	g := mustUndirected(t, []string{"a", "b", "c", "d"}, [][2]string{
		{"a", "b"}, {"b", "c"}, {"c", "d"},
	})
	ai, _ := g.IndexOf("a")
	di, _ := g.IndexOf("d")
	res, err := traverse.BFS(g, ai)
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if res.Distance[di] != 3 {
		t.Errorf("Distance[d] = %d; want 3", res.Distance[di])
	}
}

func TestBFS_MaxDepth(t *testing.T) {
	g := mustUndirected(t, []string{"a", "b", "c", "d"}, [][2]string{
		{"a", "b"}, {"b", "c"}, {"c", "d"},
	})
	ai, _ := g.IndexOf("a")
	di, _ := g.IndexOf("d")
	res, err := traverse.BFS(g, ai, traverse.WithMaxDepth(1))
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if res.Distance[di] != -1 {
		t.Errorf("Distance[d] = %d; want -1 (unreached beyond MaxDepth)", res.Distance[di])
	}
}

func TestBFS_Forest(t *testing.T) {
	g := mustUndirected(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}})
	ai, _ := g.IndexOf("a")
	ci, _ := g.IndexOf("c")
	res, err := traverse.BFS(g, ai, traverse.WithForest())
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if len(res.Order) != 3 {
		t.Fatalf("Order len = %d; want 3", len(res.Order))
	}
	if res.Distance[ci] == -1 {
		t.Errorf("Distance[c] unreached even with WithForest")
	}
}

func TestBFS_OnVisitError(t *testing.T) {
	g := mustUndirected(t, []string{"a", "b"}, [][2]string{{"a", "b"}})
	ai, _ := g.IndexOf("a")
	boom := errors.New("boom")
	_, err := traverse.BFS(g, ai, traverse.WithOnVisit(func(v, depth int) error {
		return boom
	}))
	if !errors.Is(err, boom) {
		t.Errorf("OnVisit error not propagated: got %v", err)
	}
}
