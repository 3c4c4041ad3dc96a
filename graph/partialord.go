package graph

// Ordering is the result of comparing two graphs under the subgraph
// partial order (spec §9, grounded on
// original_source/causal-hub/src/graphs/partial_ord.rs: "a graph G ≤ H
// when their vertex sets compare consistently and their edge sets
// compare consistently in the same direction; otherwise they are
// incomparable"). It is a partial order, not a lattice: two graphs
// with incomparable edge sets over the same labels are Incomparable,
// not merged.
type Ordering int

const (
	// Incomparable means neither graph is a subgraph of the other.
	Incomparable Ordering = iota
	// Equal means the two graphs have identical label sets and edge sets.
	Equal
	// Subgraph means the left graph's labels and edges are each a subset of the right's.
	Subgraph
	// Supergraph means the left graph's labels and edges are each a superset of the right's.
	Supergraph
)

// Compare returns the partial-order relation of g to h. Both must
// share the same Kind; labels and matrices are compared after mapping
// through each graph's own label→index so the result does not depend
// on construction order.
func Compare(g, h *Graph) Ordering {
	gSubH := isSubgraphOf(g, h)
	hSubG := isSubgraphOf(h, g)
	switch {
	case gSubH && hSubG:
		return Equal
	case gSubH:
		return Subgraph
	case hSubG:
		return Supergraph
	default:
		return Incomparable
	}
}

// isSubgraphOf reports whether every vertex and edge of g also appears in h.
func isSubgraphOf(g, h *Graph) bool {
	for _, l := range g.labels {
		if !h.HasVertex(l) {
			return false
		}
	}
	for _, e := range g.EdgeList() {
		hi, hj, err := h.pairIndex(e.From, e.To)
		if err != nil {
			return false
		}
		gi, gj, _ := g.pairIndex(e.From, e.To)
		if g.undirected.At(gi, gj) && !h.undirected.At(hi, hj) {
			return false
		}
		if g.directed.At(gi, gj) && !h.directed.At(hi, hj) {
			return false
		}
	}
	return true
}

// IsSubgraph reports whether g is a (non-strict) subgraph of h.
func IsSubgraph(g, h *Graph) bool { return isSubgraphOf(g, h) }

// IsSupergraph reports whether g is a (non-strict) supergraph of h.
func IsSupergraph(g, h *Graph) bool { return isSubgraphOf(h, g) }
