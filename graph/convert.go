package graph

// ToUndirected returns a new Undirected Graph over the same label set
// whose edge set is the symmetric union of g's skeleton: every edge,
// regardless of original direction, becomes an undirected edge.
func (g *Graph) ToUndirected() *Graph {
	n := g.Order()
	out := newEmpty(Undirected, g.labels)
	sk := g.Skeleton()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if sk.At(i, j) {
				out.undirected.Set(i, j, true)
				out.undirected.Set(j, i, true)
			}
		}
	}
	return out
}

// Moral returns the moral graph of g: ToUndirected(g) plus, for every
// vertex v, an undirected edge between every unordered pair of v's
// parents (v-structure moralisation, spec §4.1).
func (g *Graph) Moral() *Graph {
	out := g.ToUndirected()
	n := g.Order()
	for v := 0; v < n; v++ {
		parents := g.Parents(v)
		for a := 0; a < len(parents); a++ {
			for b := a + 1; b < len(parents); b++ {
				p, q := parents[a], parents[b]
				if !out.undirected.At(p, q) {
					out.undirected.Set(p, q, true)
					out.undirected.Set(q, p, true)
				}
			}
		}
	}
	return out
}

// EdgeList returns the graph's edges as label pairs: undirected edges
// once each (lexicographically smaller label first), directed edges
// as From→To.
func (g *Graph) EdgeList() []Edge {
	n := g.Order()
	out := make([]Edge, 0, g.Size())
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if g.undirected.At(i, j) {
				out = append(out, Edge{From: g.labels[i], To: g.labels[j]})
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if g.directed.At(i, j) {
				out = append(out, Edge{From: g.labels[i], To: g.labels[j]})
			}
		}
	}
	return out
}

// Subgraph returns the node-induced subgraph over the given labels:
// the undirected and directed matrices are masked to the rows/columns
// selected by labels, preserved in the label set's sorted order.
// Returns ErrVertexNotFound if any label is absent from g.
func (g *Graph) Subgraph(labels []string) (*Graph, error) {
	for _, l := range labels {
		if !g.HasVertex(l) {
			return nil, wrapNotFound(l)
		}
	}
	out := newEmpty(g.kind, labels)
	for a, la := range out.labels {
		ga := g.index[la]
		for b, lb := range out.labels {
			gb := g.index[lb]
			out.undirected.Set(a, b, g.undirected.At(ga, gb))
			out.directed.Set(a, b, g.directed.At(ga, gb))
		}
	}
	return out, nil
}
