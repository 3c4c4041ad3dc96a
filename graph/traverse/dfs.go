package traverse

import (
	"context"

	"github.com/graphcausal/cgm/graph"
)

// DFSOptions configures DFS via functional options.
type DFSOptions struct {
	Ctx    context.Context
	Forest bool // visit every vertex, not just those reachable from start
}

// DFSOption configures a DFSOptions.
type DFSOption func(*DFSOptions)

// WithDFSContext sets a cancellation context.
func WithDFSContext(ctx context.Context) DFSOption {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDFSForest visits every vertex in index order, not only those
// reachable from start.
func WithDFSForest() DFSOption { return func(o *DFSOptions) { o.Forest = true } }

func defaultDFSOptions() DFSOptions { return DFSOptions{Ctx: context.Background()} }

// DFSResult records pre-order visitation Order, per-vertex Discovery /
// Finish timestamps (in the classic CLRS sense, 1-indexed, used by
// DFSEdges for back/forward/cross classification), and Predecessor.
type DFSResult struct {
	Order       []int
	Discovery   []int
	Finish      []int
	Predecessor []int
}

// DFS runs a depth-first search over g starting at index start,
// producing pre-order Order plus discovery/finish times. With
// WithDFSForest, every vertex is visited (index order is used to pick
// the next unvisited root once a tree is exhausted), matching the
// ecosystem's "tree" vs "forest" BFS/DFS variants.
func DFS(g *graph.Graph, start int, opts ...DFSOption) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if start < 0 || start >= g.Order() {
		return nil, ErrStartNotFound
	}
	o := defaultDFSOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Order()
	res := &DFSResult{
		Order:       make([]int, 0, n),
		Discovery:   make([]int, n),
		Finish:      make([]int, n),
		Predecessor: make([]int, n),
	}
	visited := make([]bool, n)
	for i := range res.Predecessor {
		res.Predecessor[i] = noSentinel
	}
	clock := 0

	var visit func(u int) error
	visit = func(u int) error {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}
		visited[u] = true
		clock++
		res.Discovery[u] = clock
		res.Order = append(res.Order, u)
		for _, v := range neighborsFor(g, u) {
			if !visited[v] {
				res.Predecessor[v] = u
				if err := visit(v); err != nil {
					return err
				}
			}
		}
		clock++
		res.Finish[u] = clock
		return nil
	}

	if err := visit(start); err != nil {
		return nil, err
	}
	if o.Forest {
		for v := 0; v < n; v++ {
			if !visited[v] {
				if err := visit(v); err != nil {
					return nil, err
				}
			}
		}
	}
	return res, nil
}
