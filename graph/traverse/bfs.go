package traverse

import (
	"context"
	"fmt"

	"github.com/graphcausal/cgm/graph"
)

// noSentinel marks "no predecessor" in BFSResult.Predecessor, mirroring
// the teacher's convention of an explicit sentinel rather than -1
// silently meaning two different things.
const noSentinel = -1

// BFSOptions configures BFS via functional options, following the
// ecosystem's bfs.Option / bfs.BFSOptions pattern.
type BFSOptions struct {
	Ctx       context.Context
	Forest    bool // continue to the next unvisited vertex once the queue drains
	OnVisit   func(v int, depth int) error
	MaxDepth  int // 0 disables the limit
}

// Option configures a BFSOptions.
type Option func(*BFSOptions)

// WithContext sets a cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithForest enables the forest variant: once the queue from the
// initial source is exhausted, BFS continues from the next unvisited
// vertex (in index order) rather than stopping.
func WithForest() Option { return func(o *BFSOptions) { o.Forest = true } }

// WithMaxDepth bounds exploration to depth <= d. d<=0 disables the limit.
func WithMaxDepth(d int) Option { return func(o *BFSOptions) { o.MaxDepth = d } }

// WithOnVisit registers a callback invoked when a vertex is dequeued
// and visited; a non-nil error aborts the traversal.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *BFSOptions) { o.OnVisit = fn }
}

func defaultBFSOptions() BFSOptions {
	return BFSOptions{Ctx: context.Background()}
}

// BFSResult records the outcome of a breadth-first search: visit
// Order, per-vertex Distance from the source (or -1 if unreached,
// unless Forest is set, in which case every vertex is reached),
// and Predecessor (noSentinel for roots/unreached).
type BFSResult struct {
	Order       []int
	Distance    []int
	Predecessor []int
}

// BFS runs a breadth-first search over g starting at index start.
// Returns ErrGraphNil, ErrStartNotFound, or any error returned by a
// WithOnVisit hook.
func BFS(g *graph.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if start < 0 || start >= g.Order() {
		return nil, ErrStartNotFound
	}
	o := defaultBFSOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Order()
	res := &BFSResult{
		Order:       make([]int, 0, n),
		Distance:    make([]int, n),
		Predecessor: make([]int, n),
	}
	for i := range res.Distance {
		res.Distance[i] = -1
		res.Predecessor[i] = noSentinel
	}

	visitFrom := func(src int) error {
		res.Distance[src] = 0
		queue := []int{src}
		for len(queue) > 0 {
			select {
			case <-o.Ctx.Done():
				return o.Ctx.Err()
			default:
			}
			cur := queue[0]
			queue = queue[1:]
			res.Order = append(res.Order, cur)
			if o.OnVisit != nil {
				if err := o.OnVisit(cur, res.Distance[cur]); err != nil {
					return fmt.Errorf("traverse: BFS OnVisit(%d): %w", cur, err)
				}
			}
			if o.MaxDepth > 0 && res.Distance[cur] >= o.MaxDepth {
				continue
			}
			for _, nb := range neighborsFor(g, cur) {
				if res.Distance[nb] != -1 {
					continue
				}
				res.Distance[nb] = res.Distance[cur] + 1
				res.Predecessor[nb] = cur
				queue = append(queue, nb)
			}
		}
		return nil
	}

	if err := visitFrom(start); err != nil {
		return nil, err
	}
	if o.Forest {
		for v := 0; v < n; v++ {
			if res.Distance[v] == -1 {
				if err := visitFrom(v); err != nil {
					return nil, err
				}
			}
		}
	}
	return res, nil
}
