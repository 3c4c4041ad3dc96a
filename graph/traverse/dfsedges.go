package traverse

import "github.com/graphcausal/cgm/graph"

// EdgeKind classifies an edge encountered during a depth-first search.
type EdgeKind int

const (
	// TreeEdge discovers a previously unvisited vertex.
	TreeEdge EdgeKind = iota
	// BackEdge points to an ancestor still on the recursion stack.
	BackEdge
	// ForwardEdge points to a already-finished descendant.
	ForwardEdge
	// CrossEdge points to an already-finished vertex that is neither ancestor nor descendant.
	CrossEdge
)

// DFSEdge is one classified edge produced by DFSEdges.
type DFSEdge struct {
	From, To int
	Kind     EdgeKind
}

// DFSEdges classifies every edge traversed by a full-forest depth-first
// search of g as Tree, Back, Forward, or Cross, per the CLRS
// discovery/finish-time scheme. Undirected graphs (and the undirected
// half of a partially-directed graph) never produce Forward or Cross
// edges and skip the edge leading straight back to the immediate
// predecessor, since an undirected neighbor list always includes the
// parent (design note: "Undirected DFS edges must filter out the
// immediate predecessor to avoid spurious back edges").
func DFSEdges(g *graph.Graph) ([]DFSEdge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Order()
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make([]int, n)
	discovery := make([]int, n)
	clock := 0
	out := make([]DFSEdge, 0, n)
	undirectedTraversal := g.Kind() != graph.Directed

	var visit func(u, parent int) error
	visit = func(u, parent int) error {
		color[u] = gray
		clock++
		discovery[u] = clock
		directedOut := make(map[int]bool)
		if undirectedTraversal {
			for _, c := range g.Children(u) {
				directedOut[c] = true
			}
		}
		for _, v := range neighborsFor(g, u) {
			if undirectedTraversal && v == parent {
				continue
			}
			switch color[v] {
			case white:
				out = append(out, DFSEdge{From: u, To: v, Kind: TreeEdge})
				if err := visit(v, u); err != nil {
					return err
				}
			case gray:
				out = append(out, DFSEdge{From: u, To: v, Kind: BackEdge})
			case black:
				if undirectedTraversal && !directedOut[v] {
					// Undirected edges never produce forward/cross edges;
					// any non-tree, non-back undirected edge here is the
					// mirror of an edge already classified from the other
					// endpoint.
					continue
				}
				if discovery[u] < discovery[v] {
					out = append(out, DFSEdge{From: u, To: v, Kind: ForwardEdge})
				} else {
					out = append(out, DFSEdge{From: u, To: v, Kind: CrossEdge})
				}
			}
		}
		color[u] = black
		return nil
	}

	for u := 0; u < n; u++ {
		if color[u] == white {
			if err := visit(u, noSentinel); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
