package pcstable

import "github.com/graphcausal/cgm/graph"

// orientVStructures implements spec.md §4.4 Phase 2: for every
// unshielded triple (x,y,z) — x and z both neighbours of y, x and z
// not themselves adjacent — if y is not in the recorded separating
// set of (x,z), orient x→y←z, provided both edges are still
// undirected (a prior triple in the same pass may already have
// oriented one of them, per the Open Question in spec.md §9: skip and
// preserve insertion order deterministically).
func orientVStructures(g *graph.Graph, sepsets map[SepSetKey][]int) {
	n := g.Order()
	for y := 0; y < n; y++ {
		neighbours := g.Neighbours(y)
		for a := 0; a < len(neighbours); a++ {
			for b := a + 1; b < len(neighbours); b++ {
				x, z := neighbours[a], neighbours[b]
				if g.HasEdge(x, z) {
					continue // shielded triple
				}
				if containsInt(sepsets[SepSetKey{X: x, Y: z}], y) {
					continue
				}
				if !containsInt(g.Neighbours(x), y) || !containsInt(g.Neighbours(y), z) {
					continue // one edge already oriented this pass
				}
				_ = g.OrientEdgeAt(x, y)
				_ = g.OrientEdgeAt(z, y)
			}
		}
	}
}
