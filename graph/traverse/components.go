package traverse

import "github.com/graphcausal/cgm/graph"

// ConnectedComponents partitions g's vertices into maximal connected
// components via repeated BFS over g.Adjacents (direction-blind, so a
// Directed or PartiallyDirected graph's edges count in either
// direction), starting a new search from each unvisited vertex in
// index order. Each returned slice holds vertex indices in discovery
// order.
func ConnectedComponents(g *graph.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Order()
	visited := make([]bool, n)
	var components [][]int

	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		var comp []int
		queue := []int{root}
		visited[root] = true
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			comp = append(comp, u)
			for _, v := range g.Adjacents(u) {
				if !visited[v] {
					visited[v] = true
					queue = append(queue, v)
				}
			}
		}
		components = append(components, comp)
	}
	return components, nil
}
