package traverse

import "github.com/graphcausal/cgm/graph"

// neighborsFor returns the traversal-relevant adjacency of i, chosen
// per the graph's Kind: directed graphs follow out-edges (Children),
// undirected graphs follow their single Neighbours matrix, and
// partially-directed graphs union Neighbours and Children so a
// traversal can cross both an undirected edge and a directed edge out
// of the same vertex (design note: "Partially-directed DFS edges must
// union neighbours and children when expanding").
func neighborsFor(g *graph.Graph, i int) []int {
	switch g.Kind() {
	case graph.Directed:
		return g.Children(i)
	case graph.Undirected:
		return g.Neighbours(i)
	default:
		children := g.Children(i)
		neigh := g.Neighbours(i)
		if len(children) == 0 {
			return neigh
		}
		seen := make(map[int]bool, len(children)+len(neigh))
		out := make([]int, 0, len(children)+len(neigh))
		for _, v := range neigh {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
		for _, v := range children {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
		return out
	}
}
