package hillclimbing

import "github.com/graphcausal/cgm/graph"

// addValid implements spec.md §4.5's Add(x,y) validity rule: the
// target's in-degree has headroom, the reverse edge is absent, and no
// directed path y⇝x already exists (which would make x→y a cycle).
func addValid(g *graph.Graph, indeg []int, maxInDegree, x, y int) bool {
	if indeg[y] >= maxInDegree {
		return false
	}
	if containsInt(g.Children(y), x) {
		return false
	}
	return !g.HasDirectedPath(y, x)
}

// revValid implements spec.md §4.5's Rev(x,y) validity rule: x has
// in-degree headroom, and no OTHER child of x reaches y (a directed
// path x⇝y that avoids the edge x→y itself, which would make y→x a cycle).
func revValid(g *graph.Graph, indeg []int, maxInDegree, x, y int) bool {
	if indeg[x] >= maxInDegree {
		return false
	}
	for _, c := range g.Children(x) {
		if c == y {
			continue
		}
		if g.HasDirectedPath(c, y) {
			return false
		}
	}
	return true
}
