package pcstable

import (
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/graphcausal/cgm/citest"
	"github.com/graphcausal/cgm/graph"
)

type pendingRemoval struct {
	x, y int
	z    []int
}

// discoverSkeleton runs spec.md §4.4 Phase 1: starting from the
// complete undirected graph g already holds, it repeatedly widens the
// conditioning-set size c, testing every current edge against every
// size-c subset of its endpoints' combined adjacency in parallel
// (all reading the same frozen g — the "stable" property), and only
// applies the resulting removals once the whole level's fan-out
// completes.
func discoverSkeleton(o Options, test citest.ConditionalIndependenceTest, g *graph.Graph, sepsets map[SepSetKey][]int) error {
	c := 0
	for {
		edges := currentUndirectedEdges(g)
		if len(edges) == 0 {
			return nil
		}

		var (
			mu           sync.Mutex
			pending      []pendingRemoval
			anyCandidate bool
		)

		eg, ctx := errgroup.WithContext(o.Ctx)
		eg.SetLimit(o.workers())

		for _, e := range edges {
			e := e
			eg.Go(func() error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				candidates := candidateSet(g, e[0], e[1])
				if len(candidates) < c {
					return nil
				}
				mu.Lock()
				anyCandidate = true
				mu.Unlock()

				for _, z := range combinations(candidates, c) {
					indep, err := test.Call(e[0], e[1], z)
					if err != nil {
						return err
					}
					if indep {
						mu.Lock()
						pending = append(pending, pendingRemoval{x: e[0], y: e[1], z: z})
						mu.Unlock()
						break
					}
				}
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}
		if !anyCandidate {
			return nil
		}

		for _, r := range pending {
			if err := g.DelEdgeAt(r.x, r.y); err != nil {
				return err
			}
			sepsets[SepSetKey{X: r.x, Y: r.y}] = r.z
			sepsets[SepSetKey{X: r.y, Y: r.x}] = r.z
		}
		c++
	}
}

// currentUndirectedEdges snapshots g's undirected edge set as ordered
// index pairs (x<y); valid during skeleton discovery, since no edge
// is directed until Phase 2 begins.
func currentUndirectedEdges(g *graph.Graph) [][2]int {
	n := g.Order()
	var out [][2]int
	for i := 0; i < n; i++ {
		for _, j := range g.Neighbours(i) {
			if i < j {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

// candidateSet returns the deduplicated union of x's and y's
// neighbours, excluding x and y themselves (spec.md §4.4 "adj(x)∖{y}
// ∪ adj(y)∖{x}"), sorted ascending for deterministic combination order.
func candidateSet(g *graph.Graph, x, y int) []int {
	seen := make(map[int]bool)
	for _, v := range g.Neighbours(x) {
		if v != y {
			seen[v] = true
		}
	}
	for _, v := range g.Neighbours(y) {
		if v != x {
			seen[v] = true
		}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// combinations enumerates every size-c subset of set, in ascending
// lexicographic order, each returned subset itself ascending.
func combinations(set []int, c int) [][]int {
	if c == 0 {
		return [][]int{{}}
	}
	if c > len(set) {
		return nil
	}
	var out [][]int
	chosen := make([]int, 0, c)
	var pick func(start int)
	pick = func(start int) {
		if len(chosen) == c {
			cp := append([]int(nil), chosen...)
			out = append(out, cp)
			return
		}
		for i := start; i < len(set); i++ {
			chosen = append(chosen, set[i])
			pick(i + 1)
			chosen = chosen[:len(chosen)-1]
		}
	}
	pick(0)
	return out
}
