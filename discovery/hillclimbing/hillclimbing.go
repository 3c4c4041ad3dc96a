// Package hillclimbing implements the greedy score-based structure
// discovery engine (spec.md §4.5): single-edge Add/Del/Rev operators
// over a directed graph, validity checked against acyclicity and prior
// knowledge, evaluated by a decomposable family-local delta or a
// non-decomposable clone-and-rescore, accepted greedily until no
// operator improves the score or max_iter is reached. Parallel
// evaluation is grounded on golang.org/x/sync/errgroup, following
// SPEC_FULL.md §2's domain stack wiring, mirroring discovery/pcstable's
// fan-out/barrier shape.
package hillclimbing

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"

	"github.com/graphcausal/cgm/graph"
	"github.com/graphcausal/cgm/prior"
	"github.com/graphcausal/cgm/score"
)

// Sentinel errors.
var (
	// ErrNoLabels is returned when the bound scoring criterion has an empty label set.
	ErrNoLabels = errors.New("hillclimbing: scoring criterion has no labels")

	// ErrRequiredCycle is returned when the prior knowledge's required
	// edges cannot be inserted into the initial graph without a cycle.
	ErrRequiredCycle = errors.New("hillclimbing: required edges create a cycle")

	// ErrForbiddenEdgePresent is returned when the initial graph
	// already contains an edge the prior knowledge forbids.
	ErrForbiddenEdgePresent = errors.New("hillclimbing: initial graph contains a forbidden edge")

	// ErrUnsupportedCriterion is returned when crit implements neither
	// score.DecomposableScoringCriterion nor score.NonDecomposableScoringCriterion.
	ErrUnsupportedCriterion = errors.New("hillclimbing: scoring criterion is neither decomposable nor non-decomposable")

	// errCandidateGraphMissingSentinel backs errCandidateGraphMissing;
	// it should never surface in practice since every key queried
	// against graphCache during a search step was registered moments
	// earlier by the same step.
	errCandidateGraphMissingSentinel = errors.New("hillclimbing: candidate graph missing from registry")
)

func errCandidateGraphMissing(key string) error {
	return fmt.Errorf("hillclimbing: resolveGraphScore(%q): %w", key, errCandidateGraphMissingSentinel)
}

// Options configures Discover via functional options, following the
// ecosystem's Option func(*Options) pattern (mirrored from pcstable.Options).
type Options struct {
	Ctx         context.Context
	Workers     int // 0 means runtime.GOMAXPROCS(0)
	MaxInDegree int // negative means unbounded
	MaxIter     int // negative means unbounded
	Seed        int64
	HasSeed     bool
	Prior       prior.PriorKnowledge
	Initial     *graph.Graph
}

// Option configures Options.
type Option func(*Options)

// WithContext sets the parent context of each step's evaluation
// fan-out. No evaluation task checks it, so cancelling it does not
// stop Discover.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers bounds the per-iteration operator fan-out to n concurrent
// goroutines (runtime.GOMAXPROCS(0) if n <= 0).
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithMaxInDegree bounds the in-degree of every vertex; 0 forbids every
// Add operator (spec.md §9 boundary: "max_in_degree = 0 forbids all
// adds"). Unset means unbounded.
func WithMaxInDegree(d int) Option {
	return func(o *Options) { o.MaxInDegree = d }
}

// WithMaxIter bounds the number of search-step iterations; 0 yields the
// initial graph unchanged (spec.md §9). Unset means unbounded.
func WithMaxIter(n int) Option {
	return func(o *Options) { o.MaxIter = n }
}

// WithSeed shuffles the vertex traversal order used to build the
// operator spaces, for a reproducible (but score-equivalent) search
// path; it never alters the search space itself (spec.md §4.5).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed; o.HasSeed = true }
}

// WithPriorKnowledge supplies required/forbidden edge constraints.
func WithPriorKnowledge(pk prior.PriorKnowledge) Option {
	return func(o *Options) { o.Prior = pk }
}

// WithInitialGraph seeds the search from g instead of the empty graph
// on the criterion's label set. g is cloned, never mutated in place.
func WithInitialGraph(g *graph.Graph) Option {
	return func(o *Options) { o.Initial = g }
}

func defaultOptions() Options {
	return Options{Ctx: context.Background(), MaxInDegree: -1, MaxIter: -1}
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (o Options) maxInDegree() int {
	if o.MaxInDegree < 0 {
		return int(^uint(0) >> 1) // max int: unbounded
	}
	return o.MaxInDegree
}

func (o Options) maxIter() int {
	if o.MaxIter < 0 {
		return int(^uint(0) >> 1)
	}
	return o.MaxIter
}

// Result is the output of Discover: the final directed acyclic graph
// and its total score (spec.md §8: "the running total equals the fresh
// global score to within 1e-8").
type Result struct {
	Graph *graph.Graph
	Score float64
}

// Discover runs Hill-Climbing over crit, producing a directed acyclic
// graph over crit's label set (spec.md §4.5).
func Discover(crit score.ScoringCriterion, opts ...Option) (*Result, error) {
	labels := crit.Labels()
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := initialGraph(labels, o.Initial)
	if err := applyRequiredEdges(g, o.Prior); err != nil {
		return nil, err
	}
	if err := checkNoForbiddenEdgePresent(g, o.Prior); err != nil {
		return nil, err
	}

	indeg := computeInDegree(g)
	order := vertexOrder(g.Order(), o)
	add, del, rev := buildOperatorSpaces(g, o.Prior, order)

	decomp, isDecomp := crit.(score.DecomposableScoringCriterion)
	nondecomp, isNonDecomp := crit.(score.NonDecomposableScoringCriterion)
	if !isDecomp && !isNonDecomp {
		return nil, ErrUnsupportedCriterion
	}

	eng := &engine{
		options: o,
		graph:   g,
		indeg:   indeg,
		add:     add,
		del:     del,
		rev:     rev,
	}

	var total float64
	var err error
	if isDecomp {
		eng.famCache = score.NewDecomposableCache(decomp)
		total, err = initialDecomposableScore(eng.famCache, g)
	} else {
		eng.graphCache = score.NewGraphCache(eng.resolveGraphScore)
		eng.registry = newCandidateRegistry()
		total, err = nondecomp.CallGraph(g)
	}
	if err != nil {
		return nil, err
	}
	eng.nondecomp = nondecomp

	total, err = eng.run(total)
	if err != nil {
		return nil, err
	}
	return &Result{Graph: g, Score: total}, nil
}

func initialGraph(labels []string, initial *graph.Graph) *graph.Graph {
	if initial == nil {
		return graph.NewDirected(labels)
	}
	return initial.Clone()
}

func applyRequiredEdges(g *graph.Graph, pk prior.PriorKnowledge) error {
	if pk == nil {
		return nil
	}
	for _, e := range pk.Required() {
		if err := g.AddDirectedEdge(e[0], e[1]); err != nil {
			if errors.Is(err, graph.ErrEdgeExists) {
				continue
			}
			return err
		}
	}
	if !g.IsAcyclic() {
		return ErrRequiredCycle
	}
	return nil
}

func checkNoForbiddenEdgePresent(g *graph.Graph, pk prior.PriorKnowledge) error {
	if pk == nil {
		return nil
	}
	n := g.Order()
	for x := 0; x < n; x++ {
		for _, y := range g.Children(x) {
			if pk.HasForbidden(g.LabelAt(x), g.LabelAt(y)) {
				return ErrForbiddenEdgePresent
			}
		}
	}
	return nil
}

func computeInDegree(g *graph.Graph) []int {
	n := g.Order()
	indeg := make([]int, n)
	for v := 0; v < n; v++ {
		indeg[v] = g.InDegree(v)
	}
	return indeg
}

func vertexOrder(n int, o Options) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if o.HasSeed {
		r := rand.New(rand.NewSource(o.Seed))
		r.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	}
	return order
}

func initialDecomposableScore(famCache *score.DecomposableCache, g *graph.Graph) (float64, error) {
	n := g.Order()
	var total float64
	var frags []score.Pair[score.FamilyKey]
	for v := 0; v < n; v++ {
		key := score.NewFamilyKey(v, g.Parents(v))
		owned, val, err := famCache.Query(key)
		if err != nil {
			return 0, err
		}
		total += val
		if owned != nil {
			frags = append(frags, score.Pair[score.FamilyKey]{Key: *owned, Value: val})
		}
	}
	famCache.Extend(frags)
	return total, nil
}
