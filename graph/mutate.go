package graph

import (
	"fmt"
	"sort"
)

// AddVertex inserts label into the graph, re-sorting the label set and
// rewriting both adjacency matrices by a 4-block reshape into a freshly
// allocated, larger matrix. Returns ErrEmptyLabel or ErrVertexExists.
//
// Complexity: O(|L|²), matching the teacher ecosystem's vertex-removal
// cost (lvlath/core.Graph.RemoveVertex is O(deg(v)+M); here insertion
// touches every matrix cell because the representation is dense).
func (g *Graph) AddVertex(label string) error {
	if label == "" {
		return ErrEmptyLabel
	}
	if g.HasVertex(label) {
		return fmt.Errorf("graph: AddVertex(%q): %w", label, ErrVertexExists)
	}

	oldLabels := g.labels
	newLabels := make([]string, len(oldLabels)+1)
	copy(newLabels, oldLabels)
	newLabels[len(oldLabels)] = label
	sort.Strings(newLabels)

	oldIndex := g.index
	newIndex := buildIndex(newLabels)
	n := len(newLabels)

	reshape := func(old *BitMatrix) *BitMatrix {
		fresh := NewBitMatrix(n)
		for a, la := range oldLabels {
			for b, lb := range oldLabels {
				if old.At(a, b) {
					fresh.Set(newIndex[la], newIndex[lb], true)
				}
			}
		}
		return fresh
	}

	g.undirected = reshape(g.undirected)
	g.directed = reshape(g.directed)
	g.labels = newLabels
	g.index = newIndex
	_ = oldIndex
	return nil
}

// DelVertex removes label from the graph, re-sorting the remaining
// labels and rewriting both matrices by a 4-block reshape into a
// freshly allocated, smaller matrix. Every edge incident to label is
// dropped. Returns ErrVertexNotFound if absent.
//
// Complexity: O(|L|²).
func (g *Graph) DelVertex(label string) error {
	doomed, ok := g.index[label]
	if !ok {
		return fmt.Errorf("graph: DelVertex(%q): %w", label, ErrVertexNotFound)
	}

	oldLabels := g.labels
	newLabels := make([]string, 0, len(oldLabels)-1)
	for _, l := range oldLabels {
		if l != label {
			newLabels = append(newLabels, l)
		}
	}
	newIndex := buildIndex(newLabels)
	n := len(newLabels)

	reshape := func(old *BitMatrix) *BitMatrix {
		fresh := NewBitMatrix(n)
		for a, la := range oldLabels {
			if a == doomed {
				continue
			}
			for b, lb := range oldLabels {
				if b == doomed {
					continue
				}
				if old.At(a, b) {
					fresh.Set(newIndex[la], newIndex[lb], true)
				}
			}
		}
		return fresh
	}

	g.undirected = reshape(g.undirected)
	g.directed = reshape(g.directed)
	g.labels = newLabels
	g.index = newIndex
	return nil
}

// AddUndirectedEdge inserts an undirected edge between a and b. Valid
// for Undirected and PartiallyDirected graphs; returns ErrWrongKind on
// a Directed graph. Returns ErrSelfLoop if a == b, ErrVertexNotFound if
// either label is absent, ErrEdgeExists if any edge already connects
// the pair (in either matrix).
func (g *Graph) AddUndirectedEdge(a, b string) error {
	if g.kind == Directed {
		return fmt.Errorf("graph: AddUndirectedEdge: %w", ErrWrongKind)
	}
	i, j, err := g.pairIndex(a, b)
	if err != nil {
		return fmt.Errorf("graph: AddUndirectedEdge: %w", err)
	}
	if i == j {
		return fmt.Errorf("graph: AddUndirectedEdge(%q,%q): %w", a, b, ErrSelfLoop)
	}
	if g.HasEdge(i, j) {
		return fmt.Errorf("graph: AddUndirectedEdge(%q,%q): %w", a, b, ErrEdgeExists)
	}
	g.undirected.Set(i, j, true)
	g.undirected.Set(j, i, true)
	return nil
}

// AddDirectedEdge inserts a directed edge a→b. Valid for Directed and
// PartiallyDirected graphs; returns ErrWrongKind on an Undirected
// graph. Same validation as AddUndirectedEdge otherwise.
func (g *Graph) AddDirectedEdge(a, b string) error {
	if g.kind == Undirected {
		return fmt.Errorf("graph: AddDirectedEdge: %w", ErrWrongKind)
	}
	i, j, err := g.pairIndex(a, b)
	if err != nil {
		return fmt.Errorf("graph: AddDirectedEdge: %w", err)
	}
	if i == j {
		return fmt.Errorf("graph: AddDirectedEdge(%q,%q): %w", a, b, ErrSelfLoop)
	}
	if g.HasEdge(i, j) {
		return fmt.Errorf("graph: AddDirectedEdge(%q,%q): %w", a, b, ErrEdgeExists)
	}
	g.directed.Set(i, j, true)
	return nil
}

// AddEdge is sugar that dispatches to AddDirectedEdge or
// AddUndirectedEdge based on the graph's Kind (PartiallyDirected
// graphs default to undirected, matching the "start from the complete
// undirected graph" step of PC-Stable skeleton discovery, spec §4.4).
func (g *Graph) AddEdge(a, b string) error {
	if g.kind == Directed {
		return g.AddDirectedEdge(a, b)
	}
	return g.AddUndirectedEdge(a, b)
}

// DelEdge removes whichever edge currently connects a and b (undirected,
// a→b, or b→a). Returns ErrEdgeNotFound if none does.
func (g *Graph) DelEdge(a, b string) error {
	i, j, err := g.pairIndex(a, b)
	if err != nil {
		return fmt.Errorf("graph: DelEdge: %w", err)
	}
	switch {
	case g.undirected.At(i, j):
		g.undirected.Set(i, j, false)
		g.undirected.Set(j, i, false)
	case g.directed.At(i, j):
		g.directed.Set(i, j, false)
	case g.directed.At(j, i):
		g.directed.Set(j, i, false)
	default:
		return fmt.Errorf("graph: DelEdge(%q,%q): %w", a, b, ErrEdgeNotFound)
	}
	return nil
}

// OrientEdge promotes the undirected edge a−b to the directed edge
// a→b. Requires a PartiallyDirected graph and an existing undirected
// edge; returns ErrWrongKind or ErrNotUndirected otherwise.
func (g *Graph) OrientEdge(a, b string) error {
	if g.kind != PartiallyDirected {
		return fmt.Errorf("graph: OrientEdge: %w", ErrWrongKind)
	}
	i, j, err := g.pairIndex(a, b)
	if err != nil {
		return fmt.Errorf("graph: OrientEdge: %w", err)
	}
	if !g.undirected.At(i, j) {
		return fmt.Errorf("graph: OrientEdge(%q,%q): %w", a, b, ErrNotUndirected)
	}
	g.undirected.Set(i, j, false)
	g.undirected.Set(j, i, false)
	g.directed.Set(i, j, true)
	return nil
}

// OrientEdgeAt is the index-keyed counterpart of OrientEdge, used by
// the discovery engines which operate on indices throughout a call to
// avoid repeated label lookups.
func (g *Graph) OrientEdgeAt(i, j int) error {
	if g.kind != PartiallyDirected {
		return fmt.Errorf("graph: OrientEdgeAt: %w", ErrWrongKind)
	}
	if !g.undirected.At(i, j) {
		return fmt.Errorf("graph: OrientEdgeAt(%d,%d): %w", i, j, ErrNotUndirected)
	}
	g.undirected.Set(i, j, false)
	g.undirected.Set(j, i, false)
	g.directed.Set(i, j, true)
	return nil
}

// DelEdgeAt is the index-keyed counterpart of DelEdge.
func (g *Graph) DelEdgeAt(i, j int) error {
	switch {
	case g.undirected.At(i, j):
		g.undirected.Set(i, j, false)
		g.undirected.Set(j, i, false)
	case g.directed.At(i, j):
		g.directed.Set(i, j, false)
	case g.directed.At(j, i):
		g.directed.Set(j, i, false)
	default:
		return fmt.Errorf("graph: DelEdgeAt(%d,%d): %w", i, j, ErrEdgeNotFound)
	}
	return nil
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	return &Graph{
		kind:       g.kind,
		labels:     g.Labels(),
		index:      buildIndex(g.Labels()),
		undirected: g.undirected.Clone(),
		directed:   g.directed.Clone(),
	}
}
