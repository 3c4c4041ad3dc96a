package pcstable

import "github.com/graphcausal/cgm/graph"

// meekClosure applies spec.md §4.4 Phase 3's four orientation rules
// repeatedly until a full pass produces no new orientation. Rule 4 is
// included only when includeRule4 is set (meek_procedure_until_4 vs
// the default meek_procedure_until_3).
func meekClosure(g *graph.Graph, includeRule4 bool) {
	for {
		changed := meekRule1(g)
		changed = meekRule2(g) || changed
		changed = meekRule3(g) || changed
		if includeRule4 {
			changed = meekRule4(g) || changed
		}
		if !changed {
			return
		}
	}
}

// meekRule1: a→b, b−c, a not adjacent to c ⇒ orient b→c.
func meekRule1(g *graph.Graph) bool {
	changed := false
	n := g.Order()
	for b := 0; b < n; b++ {
		for _, a := range g.Parents(b) {
			for _, c := range g.Neighbours(b) {
				if g.HasEdge(a, c) {
					continue
				}
				if err := g.OrientEdgeAt(b, c); err == nil {
					changed = true
				}
			}
		}
	}
	return changed
}

// meekRule2: a→b→c, a−c ⇒ orient a→c.
func meekRule2(g *graph.Graph) bool {
	changed := false
	n := g.Order()
	for a := 0; a < n; a++ {
		for _, c := range g.Neighbours(a) {
			for _, b := range g.Children(a) {
				if containsInt(g.Parents(c), b) {
					if err := g.OrientEdgeAt(a, c); err == nil {
						changed = true
					}
					break
				}
			}
		}
	}
	return changed
}

// meekRule3: a−b, and non-adjacent x,y with x→b, y→b, a−x, a−y ⇒ orient a→b.
func meekRule3(g *graph.Graph) bool {
	changed := false
	n := g.Order()
	for a := 0; a < n; a++ {
		neighboursA := g.Neighbours(a)
		for _, b := range g.Neighbours(a) {
			var candidates []int
			for _, p := range g.Parents(b) {
				if containsInt(neighboursA, p) {
					candidates = append(candidates, p)
				}
			}
			found := false
			for i := 0; i < len(candidates) && !found; i++ {
				for j := i + 1; j < len(candidates) && !found; j++ {
					if !g.HasEdge(candidates[i], candidates[j]) {
						found = true
					}
				}
			}
			if found {
				if err := g.OrientEdgeAt(a, b); err == nil {
					changed = true
				}
			}
		}
	}
	return changed
}

// meekRule4: a−b, chain a−d, d→c, c→b, d not adjacent to b ⇒ orient a→b.
func meekRule4(g *graph.Graph) bool {
	changed := false
	n := g.Order()
	for a := 0; a < n; a++ {
		for _, b := range g.Neighbours(a) {
			for _, d := range g.Neighbours(a) {
				if d == b || g.HasEdge(d, b) {
					continue
				}
				for _, c := range g.Children(d) {
					if containsInt(g.Parents(b), c) {
						if err := g.OrientEdgeAt(a, b); err == nil {
							changed = true
						}
						break
					}
				}
			}
		}
	}
	return changed
}
