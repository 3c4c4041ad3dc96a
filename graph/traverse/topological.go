package traverse

import "github.com/graphcausal/cgm/graph"

// TopologicalSort computes a linear ordering of g's vertices such that
// for every directed edge u→v, u precedes v, via Kahn's algorithm
// maintaining a residual in-degree map (spec §4.1). Requires a
// Directed graph (ErrNotDirected otherwise); returns ErrCycle if any
// vertex retains positive in-degree once the queue drains.
func TopologicalSort(g *graph.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Kind() != graph.Directed {
		return nil, ErrNotDirected
	}
	n := g.Order()
	indeg := make([]int, n)
	for v := 0; v < n; v++ {
		indeg[v] = g.InDegree(v)
	}
	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}
	order := make([]int, 0, n)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		for _, v := range g.Children(u) {
			indeg[v]--
			if indeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}
	if len(order) != n {
		return nil, ErrCycle
	}
	return order, nil
}
