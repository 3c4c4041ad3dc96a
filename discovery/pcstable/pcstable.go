// Package pcstable implements the PC-Stable constraint-based structure
// discovery engine (spec.md §4.4): stable skeleton discovery via
// barrier-separated conditional-independence fan-out, v-structure
// orientation over unshielded triples, and Meek-rule closure. Parallel
// fan-out is grounded on golang.org/x/sync/errgroup, following
// SPEC_FULL.md §2's domain stack wiring.
package pcstable

import (
	"context"
	"errors"
	"runtime"

	"github.com/graphcausal/cgm/citest"
	"github.com/graphcausal/cgm/graph"
)

// ErrNoLabels is returned when the bound test has an empty label set.
var ErrNoLabels = errors.New("pcstable: test has no labels")

// Options configures Discover via functional options, following the
// ecosystem's Option func(*Options) pattern.
type Options struct {
	Ctx          context.Context
	Workers      int  // 0 means runtime.GOMAXPROCS(0)
	IncludeRule4 bool // meek_procedure_until_4 vs until_3
}

// Option configures Options.
type Option func(*Options)

// WithContext sets the context of the skeleton-discovery fan-out: each
// edge's task checks it before running its tests, and once it is done
// Discover returns its error.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers bounds the skeleton-discovery fan-out to n concurrent
// goroutines (runtime.GOMAXPROCS(0) if n <= 0).
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithMeekRule4 enables Meek's rule 4 (meek_procedure_until_4); the
// default runs only rules 1-3 (meek_procedure_until_3, spec.md §4.4).
func WithMeekRule4() Option {
	return func(o *Options) { o.IncludeRule4 = true }
}

func defaultOptions() Options {
	return Options{Ctx: context.Background(), Workers: 0}
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// SepSetKey is an ordered index pair used as the separating-set map's key.
type SepSetKey struct{ X, Y int }

// Result is the output of Discover: the CPDAG-like partially-directed
// graph plus the separating sets recorded during skeleton discovery.
type Result struct {
	Graph   *graph.Graph
	SepSets map[SepSetKey][]int
}

// Discover runs PC-Stable over test's bound dataset, producing a
// partially-directed acyclic graph over the test's label set
// (spec.md §4.4).
func Discover(test citest.ConditionalIndependenceTest, opts ...Option) (*Result, error) {
	labels := test.Labels()
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := graph.NewComplete(graph.PartiallyDirected, labels)
	sepsets := make(map[SepSetKey][]int)

	if err := discoverSkeleton(o, test, g, sepsets); err != nil {
		return nil, err
	}
	orientVStructures(g, sepsets)
	meekClosure(g, o.IncludeRule4)

	return &Result{Graph: g, SepSets: sepsets}, nil
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
