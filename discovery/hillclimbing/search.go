package hillclimbing

import (
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/graphcausal/cgm/graph"
	"github.com/graphcausal/cgm/score"
)

// engine holds the mutable search state threaded through a Discover
// call's iterations (spec.md §5 "Shared-resource policy": graph,
// in-degree vector, and operator spaces are mutated only on the main
// thread between parallel phases).
type engine struct {
	options Options
	graph   *graph.Graph
	indeg   []int
	add     *edgeSet
	del     *edgeSet
	rev     *edgeSet

	famCache   *score.DecomposableCache
	graphCache *score.GraphCache
	registry   *candidateRegistry
	nondecomp  score.NonDecomposableScoringCriterion
}

// resolveGraphScore is the GraphCache compute closure, constructed
// once and bound into score.NewGraphCache: a cache miss re-derives the
// candidate *graph.Graph from e.registry (populated earlier in the same
// search step, before the concurrent fan-out) and scores it.
func (e *engine) resolveGraphScore(key string) (float64, error) {
	g, ok := e.registry.get(key)
	if !ok {
		return 0, errCandidateGraphMissing(key)
	}
	return e.nondecomp.CallGraph(g)
}

// candidateList orders every live operator add-set first, then
// del-set, then rev-set, each in insertion order (spec.md §5's tie-break
// rule).
func (e *engine) candidateList() []operator {
	var out []operator
	for _, ed := range e.add.Ordered() {
		out = append(out, operator{kind: opAdd, x: ed.X, y: ed.Y})
	}
	for _, ed := range e.del.Ordered() {
		out = append(out, operator{kind: opDel, x: ed.X, y: ed.Y})
	}
	for _, ed := range e.rev.Ordered() {
		out = append(out, operator{kind: opRev, x: ed.X, y: ed.Y})
	}
	return out
}

func (e *engine) validOperators() []operator {
	maxInDegree := e.options.maxInDegree()
	all := e.candidateList()
	out := make([]operator, 0, len(all))
	for _, op := range all {
		switch op.kind {
		case opAdd:
			if addValid(e.graph, e.indeg, maxInDegree, op.x, op.y) {
				out = append(out, op)
			}
		case opDel:
			out = append(out, op)
		case opRev:
			if revValid(e.graph, e.indeg, maxInDegree, op.x, op.y) {
				out = append(out, op)
			}
		}
	}
	return out
}

type evalOutcome struct {
	delta float64
	valid bool
}

// run drives the greedy search loop (spec.md §4.5 "Search Step" /
// "Termination") starting from the already-seeded total score.
func (e *engine) run(total float64) (float64, error) {
	decomposable := e.famCache != nil
	for iter := 0; iter < e.options.maxIter(); iter++ {
		candidates := e.validOperators()
		if len(candidates) == 0 {
			return total, nil
		}

		outcomes := make([]evalOutcome, len(candidates))
		var err error
		if decomposable {
			err = e.evaluateDecomposableStep(candidates, outcomes)
		} else {
			err = e.evaluateNonDecomposableStep(candidates, outcomes, total)
		}
		if err != nil {
			return 0, err
		}

		best := -1
		for i, o := range outcomes {
			if !o.valid {
				continue
			}
			if best == -1 || o.delta > outcomes[best].delta {
				best = i
			}
		}
		if best == -1 || outcomes[best].delta <= 0 {
			return total, nil
		}

		op := candidates[best]
		if err := mutateGraphForOp(e.graph, op); err != nil {
			return 0, err
		}
		switch op.kind {
		case opAdd:
			e.indeg[op.y]++
		case opDel:
			e.indeg[op.y]--
		case opRev:
			e.indeg[op.y]--
			e.indeg[op.x]++
		}
		applyOperatorSpaceUpdate(e.add, e.del, e.rev, op)
		total += outcomes[best].delta
	}
	return total, nil
}

func (e *engine) evaluateDecomposableStep(candidates []operator, outcomes []evalOutcome) error {
	eg, _ := errgroup.WithContext(e.options.Ctx)
	eg.SetLimit(e.options.workers())

	var mu sync.Mutex
	var allFrags []score.Pair[score.FamilyKey]

	for i, op := range candidates {
		i, op := i, op
		eg.Go(func() error {
			delta, frags, err := evaluateDecomposable(e.famCache, e.graph, op)
			if err != nil {
				return err
			}
			outcomes[i] = evalOutcome{delta: delta, valid: !math.IsNaN(delta)}
			if len(frags) > 0 {
				mu.Lock()
				allFrags = append(allFrags, frags...)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	e.famCache.Extend(allFrags)
	return nil
}

func (e *engine) evaluateNonDecomposableStep(candidates []operator, outcomes []evalOutcome, total float64) error {
	e.registry.reset()
	eg, _ := errgroup.WithContext(e.options.Ctx)
	eg.SetLimit(e.options.workers())

	var mu sync.Mutex
	var allFrags []score.Pair[string]

	for i, op := range candidates {
		i, op := i, op
		eg.Go(func() error {
			cg := e.graph.Clone()
			if err := mutateGraphForOp(cg, op); err != nil {
				return err
			}
			key := score.HashGraph(cg)
			e.registry.put(key, cg)

			owned, val, err := e.graphCache.Query(key)
			if err != nil {
				return err
			}
			outcomes[i] = evalOutcome{delta: val - total, valid: !math.IsNaN(val)}
			if owned != nil {
				mu.Lock()
				allFrags = append(allFrags, score.Pair[string]{Key: *owned, Value: val})
				mu.Unlock()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	e.graphCache.Extend(allFrags)
	return nil
}
