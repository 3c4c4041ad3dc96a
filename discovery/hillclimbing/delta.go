package hillclimbing

import (
	"sort"
	"sync"

	"github.com/graphcausal/cgm/graph"
	"github.com/graphcausal/cgm/score"
)

// evaluateDecomposable computes the family-local Δ for op against g
// (spec.md §4.5 "Decomposable case"), returning any fresh (key, value)
// cache fragments the caller must batch-insert after the fan-out
// completes via famCache.Extend.
func evaluateDecomposable(famCache *score.DecomposableCache, g *graph.Graph, op operator) (float64, []score.Pair[score.FamilyKey], error) {
	switch op.kind {
	case opAdd:
		parentsY := g.Parents(op.y)
		return evalFamilyDelta(famCache, parentsY, op.y, withParent(parentsY, op.x))
	case opDel:
		parentsY := g.Parents(op.y)
		return evalFamilyDelta(famCache, parentsY, op.y, withoutParent(parentsY, op.x))
	case opRev:
		dx, fragsX, err := evalFamilyDelta(famCache, g.Parents(op.x), op.x, withParent(g.Parents(op.x), op.y))
		if err != nil {
			return 0, nil, err
		}
		dy, fragsY, err := evalFamilyDelta(famCache, g.Parents(op.y), op.y, withoutParent(g.Parents(op.y), op.x))
		if err != nil {
			return 0, nil, err
		}
		return dx + dy, append(fragsX, fragsY...), nil
	}
	return 0, nil, nil
}

func evalFamilyDelta(famCache *score.DecomposableCache, oldParents []int, v int, newParents []int) (float64, []score.Pair[score.FamilyKey], error) {
	oldOwned, oldVal, err := famCache.Query(score.NewFamilyKey(v, oldParents))
	if err != nil {
		return 0, nil, err
	}
	newOwned, newVal, err := famCache.Query(score.NewFamilyKey(v, newParents))
	if err != nil {
		return 0, nil, err
	}
	var frags []score.Pair[score.FamilyKey]
	if oldOwned != nil {
		frags = append(frags, score.Pair[score.FamilyKey]{Key: *oldOwned, Value: oldVal})
	}
	if newOwned != nil {
		frags = append(frags, score.Pair[score.FamilyKey]{Key: *newOwned, Value: newVal})
	}
	return newVal - oldVal, frags, nil
}

func withParent(parents []int, p int) []int {
	out := append([]int(nil), parents...)
	out = append(out, p)
	sort.Ints(out)
	return out
}

func withoutParent(parents []int, p int) []int {
	out := make([]int, 0, len(parents))
	for _, q := range parents {
		if q != p {
			out = append(out, q)
		}
	}
	return out
}

// mutateGraphForOp applies op's structural edit to g in place, used
// both for the accepted-operator commit and for the non-decomposable
// path's clone-and-rescore.
func mutateGraphForOp(g *graph.Graph, op operator) error {
	switch op.kind {
	case opAdd:
		return g.AddDirectedEdge(g.LabelAt(op.x), g.LabelAt(op.y))
	case opDel:
		return g.DelEdgeAt(op.x, op.y)
	case opRev:
		if err := g.DelEdgeAt(op.x, op.y); err != nil {
			return err
		}
		return g.AddDirectedEdge(g.LabelAt(op.y), g.LabelAt(op.x))
	}
	return nil
}

// candidateRegistry holds the clone-and-apply candidate graphs built
// during a non-decomposable search step, keyed by score.HashGraph, so
// the GraphCache's fixed compute closure (set once in Discover) can
// re-derive the graph a cache miss needs to score (score/cache.go's
// GraphCache doc: "pairing it with a lookup function that re-derives
// the *graph.Graph to score").
type candidateRegistry struct {
	mu     sync.RWMutex
	graphs map[string]*graph.Graph
}

func newCandidateRegistry() *candidateRegistry {
	return &candidateRegistry{graphs: make(map[string]*graph.Graph)}
}

func (r *candidateRegistry) put(key string, g *graph.Graph) {
	r.mu.Lock()
	r.graphs[key] = g
	r.mu.Unlock()
}

func (r *candidateRegistry) get(key string) (*graph.Graph, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.graphs[key]
	return g, ok
}

func (r *candidateRegistry) reset() {
	r.mu.Lock()
	r.graphs = make(map[string]*graph.Graph)
	r.mu.Unlock()
}
