package graph

import "github.com/graphcausal/cgm/unionfind"

// Separated answers a graphical (u- or d-) separation query: does every
// path between X and Y pass through Z? For an Undirected graph this
// removes Z's incident edges and checks connectivity directly
// (u-separation). For a Directed or PartiallyDirected graph it first
// restricts to the ancestral subgraph of X ∪ Y ∪ Z, moralizes it (spec
// §4.1's Moral), then removes Z's incident edges and checks
// connectivity (d-separation) — the standard reduction this library's
// Union-Find is purpose-built for (spec.md §3: "used during
// d-separation queries"), grounded on
// original_source/.../models/graphical_separation.rs's
// GraphicalSeparation, reworked around this package's Moral/Ancestors
// rather than transliterating its trait-bound plumbing.
//
// X and Y must be non-empty and X, Y, Z pairwise disjoint. Reports
// true iff no connected component of the reduced graph contains a
// vertex from both X and Y.
func (g *Graph) Separated(x, y, z []int) (bool, error) {
	if len(x) == 0 || len(y) == 0 {
		return false, ErrEmptySeparationSet
	}
	if !disjointIndexSets(x, y) || !disjointIndexSets(y, z) || !disjointIndexSets(z, x) {
		return false, ErrOverlappingSeparationSets
	}

	var h *Graph
	if g.kind == Undirected {
		h = g.Clone()
	} else {
		sub, err := g.ancestralSubgraph(x, y, z)
		if err != nil {
			return false, err
		}
		h = sub.Moral()
	}

	lx, ly, lz := g.reindex(h, x), g.reindex(h, y), g.reindex(h, z)

	for _, zi := range lz {
		for _, w := range h.Neighbours(zi) {
			h.undirected.Set(zi, w, false)
			h.undirected.Set(w, zi, false)
		}
	}

	dsu := unionfind.New(h.Order())
	for i := 0; i < h.Order(); i++ {
		for _, j := range h.Neighbours(i) {
			dsu.Union(i, j)
		}
	}
	for _, xi := range lx {
		for _, yi := range ly {
			if dsu.Connected(xi, yi) {
				return false, nil
			}
		}
	}
	return true, nil
}

// ancestralSubgraph returns the induced subgraph of g over
// (X ∪ Y ∪ Z) together with all of its ancestors.
func (g *Graph) ancestralSubgraph(x, y, z []int) (*Graph, error) {
	seen := make(map[int]bool)
	mark := func(idx []int) {
		for _, s := range idx {
			seen[s] = true
			for _, a := range g.Ancestors(s) {
				seen[a] = true
			}
		}
	}
	mark(x)
	mark(y)
	mark(z)

	labels := make([]string, 0, len(seen))
	for idx := range seen {
		labels = append(labels, g.LabelAt(idx))
	}
	return g.Subgraph(labels)
}

// reindex maps indices valid in g's label space to their position in
// h's label space (h is g itself, a clone, or a label-sorted
// subgraph/moralization of g, so every label still resolves).
func (g *Graph) reindex(h *Graph, idx []int) []int {
	out := make([]int, 0, len(idx))
	for _, i := range idx {
		if li, ok := h.IndexOf(g.LabelAt(i)); ok {
			out = append(out, li)
		}
	}
	return out
}

func disjointIndexSets(a, b []int) bool {
	set := make(map[int]bool, len(a))
	for _, v := range a {
		set[v] = true
	}
	for _, v := range b {
		if set[v] {
			return false
		}
	}
	return true
}
