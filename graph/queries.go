package graph

// Labels returns the graph's sorted vertex label set. The returned
// slice is a defensive copy; mutating it has no effect on g.
func (g *Graph) Labels() []string {
	out := make([]string, len(g.labels))
	copy(out, g.labels)
	return out
}

// Order returns |L|, the number of vertices.
func (g *Graph) Order() int { return len(g.labels) }

// Size returns the total edge count: undirected_size + directed_size.
func (g *Graph) Size() int { return g.UndirectedSize() + g.DirectedSize() }

// UndirectedSize returns the number of undirected edges (each
// unordered pair counted once).
func (g *Graph) UndirectedSize() int { return g.undirected.Popcount() / 2 }

// DirectedSize returns the number of directed edges (each i→j counted once).
func (g *Graph) DirectedSize() int { return g.directed.Popcount() }

// HasVertex reports whether label is present.
func (g *Graph) HasVertex(label string) bool {
	_, ok := g.index[label]
	return ok
}

// IndexOf returns the stable index of label, or (-1, false) if absent.
func (g *Graph) IndexOf(label string) (int, bool) {
	i, ok := g.index[label]
	if !ok {
		return -1, false
	}
	return i, true
}

// LabelAt returns the label at index i. Panics if i is out of range,
// mirroring the teacher's direct-index BitMatrix access contract.
func (g *Graph) LabelAt(i int) string { return g.labels[i] }

// HasEdge reports whether any edge (undirected or directed, in either
// direction) connects the vertices at indices i and j.
func (g *Graph) HasEdge(i, j int) bool {
	return g.undirected.At(i, j) || g.directed.At(i, j) || g.directed.At(j, i)
}

// HasEdgeLabel is the label-keyed counterpart to HasEdge. Returns
// ErrVertexNotFound if either label is absent.
func (g *Graph) HasEdgeLabel(a, b string) (bool, error) {
	i, j, err := g.pairIndex(a, b)
	if err != nil {
		return false, err
	}
	return g.HasEdge(i, j), nil
}

func (g *Graph) pairIndex(a, b string) (int, int, error) {
	i, ok := g.index[a]
	if !ok {
		return 0, 0, wrapNotFound(a)
	}
	j, ok := g.index[b]
	if !ok {
		return 0, 0, wrapNotFound(b)
	}
	return i, j, nil
}

func wrapNotFound(label string) error {
	return &notFoundError{label: label}
}

type notFoundError struct{ label string }

func (e *notFoundError) Error() string { return "graph: vertex not found: " + e.label }
func (e *notFoundError) Unwrap() error { return ErrVertexNotFound }

// Skeleton returns undirected ∨ directed ∨ directedᵀ, symmetric by
// construction. It is computed fresh on every call (spec §4.1: "the
// skeleton view is derived").
func (g *Graph) Skeleton() *BitMatrix {
	n := g.Order()
	sk := NewBitMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if g.undirected.At(i, j) || g.directed.At(i, j) || g.directed.At(j, i) {
				sk.Set(i, j, true)
			}
		}
	}
	return sk
}

// Adjacents returns the indices incident to i regardless of direction.
func (g *Graph) Adjacents(i int) []int {
	n := g.Order()
	out := make([]int, 0, 8)
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		if g.undirected.At(i, j) || g.directed.At(i, j) || g.directed.At(j, i) {
			out = append(out, j)
		}
	}
	return out
}

// Neighbours returns the indices undirected-incident to i.
func (g *Graph) Neighbours(i int) []int {
	n := g.Order()
	out := make([]int, 0, 8)
	for j := 0; j < n; j++ {
		if j != i && g.undirected.At(i, j) {
			out = append(out, j)
		}
	}
	return out
}

// Parents returns the indices j such that j→i is a directed edge.
func (g *Graph) Parents(i int) []int {
	n := g.Order()
	out := make([]int, 0, 8)
	for j := 0; j < n; j++ {
		if j != i && g.directed.At(j, i) {
			out = append(out, j)
		}
	}
	return out
}

// Children returns the indices j such that i→j is a directed edge.
func (g *Graph) Children(i int) []int {
	n := g.Order()
	out := make([]int, 0, 8)
	for j := 0; j < n; j++ {
		if j != i && g.directed.At(i, j) {
			out = append(out, j)
		}
	}
	return out
}

// InDegree returns len(Parents(i)).
func (g *Graph) InDegree(i int) int { return len(g.Parents(i)) }

// OutDegree returns len(Children(i)).
func (g *Graph) OutDegree(i int) int { return len(g.Children(i)) }

// Degree returns the undirected degree of i (len(Neighbours(i))).
func (g *Graph) Degree(i int) int { return len(g.Neighbours(i)) }

// Ancestors returns the transitive closure of Parents from i (i excluded),
// computed by a breadth-first search over Parents.
func (g *Graph) Ancestors(i int) []int { return g.closure(i, g.Parents) }

// Descendants returns the transitive closure of Children from i (i excluded).
func (g *Graph) Descendants(i int) []int { return g.closure(i, g.Children) }

func (g *Graph) closure(start int, step func(int) []int) []int {
	seen := make(map[int]bool)
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nxt := range step(cur) {
			if !seen[nxt] {
				seen[nxt] = true
				queue = append(queue, nxt)
			}
		}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	return out
}

// HasPath reports whether j is reachable from i via a breadth-first
// search that follows Adjacents (i.e. the skeleton, direction-blind).
func (g *Graph) HasPath(i, j int) bool {
	if i == j {
		return true
	}
	seen := make(map[int]bool)
	queue := []int{i}
	seen[i] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nxt := range g.Adjacents(cur) {
			if nxt == j {
				return true
			}
			if !seen[nxt] {
				seen[nxt] = true
				queue = append(queue, nxt)
			}
		}
	}
	return false
}

// HasDirectedPath reports whether there is a directed path i ⇝ j
// following only Children edges. Used by the Hill-Climbing engine's
// acyclicity checks (spec §4.5).
func (g *Graph) HasDirectedPath(i, j int) bool {
	if i == j {
		return true
	}
	seen := make(map[int]bool)
	queue := []int{i}
	seen[i] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nxt := range g.Children(cur) {
			if nxt == j {
				return true
			}
			if !seen[nxt] {
				seen[nxt] = true
				queue = append(queue, nxt)
			}
		}
	}
	return false
}

// IsAcyclic reports whether the directed matrix contains no cycle,
// via a depth-first-search back-edge check over a forest traversal.
func (g *Graph) IsAcyclic() bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	n := g.Order()
	color := make([]int, n)
	var visit func(int) bool
	visit = func(u int) bool {
		color[u] = gray
		for _, v := range g.Children(u) {
			switch color[v] {
			case gray:
				return false // back edge
			case white:
				if !visit(v) {
					return false
				}
			}
		}
		color[u] = black
		return true
	}
	for u := 0; u < n; u++ {
		if color[u] == white {
			if !visit(u) {
				return false
			}
		}
	}
	return true
}
