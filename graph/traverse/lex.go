package traverse

import "github.com/graphcausal/cgm/graph"

// LexBFSResult is the outcome of LexBFS: the visit Order and the
// Predecessor of each discovered vertex (noSentinel for the source).
type LexBFSResult struct {
	Order       []int
	Predecessor []int
}

// LexBFS runs lexicographic breadth-first search from start over g's
// undirected adjacency (Neighbours), via partition refinement: the
// to-visit set starts as one partition containing every vertex with
// start moved to its front; each step takes the first vertex of the
// first partition, then splits every remaining partition into
// (neighbors-of-x, non-neighbors-of-x), preserving relative order and
// placing the neighbor half first. Grounded on
// original_source/.../lexicographic_breadth_first_search.rs.
func LexBFS(g *graph.Graph, start int) (*LexBFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Order()
	if start < 0 || start >= n {
		return nil, ErrStartNotFound
	}
	res := &LexBFSResult{Order: make([]int, 0, n), Predecessor: make([]int, n)}
	for i := range res.Predecessor {
		res.Predecessor[i] = noSentinel
	}
	if n == 0 {
		return res, nil
	}

	first := make([]int, 0, n)
	first = append(first, start)
	for v := 0; v < n; v++ {
		if v != start {
			first = append(first, v)
		}
	}
	partitions := [][]int{first}

	for len(partitions) > 0 {
		p := partitions[0]
		x := p[0]
		p = p[1:]
		if len(p) > 0 {
			partitions[0] = p
		} else {
			partitions = partitions[1:]
		}
		res.Order = append(res.Order, x)

		neighbors := make(map[int]bool)
		for _, v := range g.Neighbours(x) {
			neighbors[v] = true
		}
		var next [][]int
		consumed := 0
		for i := 0; i < len(partitions) && len(neighbors) > 0; i++ {
			consumed = i + 1
			part := partitions[i]
			var withNbr, withoutNbr []int
			for _, y := range part {
				if neighbors[y] {
					delete(neighbors, y)
					if res.Predecessor[y] == noSentinel && y != start {
						res.Predecessor[y] = x
					}
					withNbr = append(withNbr, y)
				} else {
					withoutNbr = append(withoutNbr, y)
				}
			}
			if len(withNbr) > 0 {
				next = append(next, withNbr)
			}
			if len(withoutNbr) > 0 {
				next = append(next, withoutNbr)
			}
		}
		if consumed < len(partitions) {
			next = append(next, partitions[consumed:]...)
		}
		partitions = next
	}
	return res, nil
}

// LexDFSResult is the outcome of LexDFS.
type LexDFSResult struct {
	Order       []int
	Predecessor []int
}

// LexDFS runs lexicographic depth-first search from start over g's
// undirected adjacency: every undiscovered vertex carries a label
// (a deque of the discovery indices of its already-visited neighbors,
// most recent first); at each step the undiscovered vertex with the
// lexicographically greatest label is chosen next (ties broken toward
// the smaller vertex index), mirroring
// original_source/.../lexicographic_depth_first_search.rs's
// max_by(label, then reverse index) selection.
func LexDFS(g *graph.Graph, start int) (*LexDFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Order()
	if start < 0 || start >= n {
		return nil, ErrStartNotFound
	}
	res := &LexDFSResult{Order: make([]int, 0, n), Predecessor: make([]int, n)}
	for i := range res.Predecessor {
		res.Predecessor[i] = noSentinel
	}
	if n == 0 {
		return res, nil
	}

	pending := make(map[int][]int, n) // vertex -> label (front-pushed deque)
	for v := 0; v < n; v++ {
		pending[v] = nil
	}
	pending[start] = []int{0}
	index := 0

	labelLess := func(a, b []int) bool {
		la, lb := len(a), len(b)
		for i := 0; i < la && i < lb; i++ {
			if a[i] != b[i] {
				return a[i] < b[i]
			}
		}
		return la < lb
	}

	for len(pending) > 0 {
		// Select the undiscovered vertex with the greatest label,
		// breaking ties toward the smaller index (mirrors the Rust
		// implementation's max_by(label, then reverse index)).
		x := -1
		for v, lbl := range pending {
			switch {
			case x == -1:
				x = v
			case labelLess(pending[x], lbl):
				x = v
			case equalLabels(pending[x], lbl) && v < x:
				x = v
			}
		}

		delete(pending, x)
		res.Order = append(res.Order, x)
		for _, y := range g.Neighbours(x) {
			if lbl, ok := pending[y]; ok {
				if res.Predecessor[y] == noSentinel && y != start {
					res.Predecessor[y] = x
				}
				pending[y] = append([]int{index}, lbl...)
			}
		}
		index++
	}
	return res, nil
}

func equalLabels(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
