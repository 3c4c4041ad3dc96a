package graph

import (
	"fmt"
	"sort"
)

// Kind distinguishes the three flavors of Graph this package supports.
// A Graph's Kind never changes after construction; it only gates which
// mutating methods are legal (see errors.go: ErrWrongKind).
type Kind uint8

const (
	// Undirected graphs maintain only the undirected matrix.
	Undirected Kind = iota
	// Directed graphs maintain only the directed matrix.
	Directed
	// PartiallyDirected graphs maintain both matrices, disjoint, and
	// support OrientEdge to promote an undirected edge to a directed one.
	PartiallyDirected
)

// Graph is a dense adjacency-matrix graph over a lexicographically
// sorted vertex label set L. Depending on Kind it maintains one or
// both of the undirected/directed matrices; the skeleton (the union of
// both, with the directed matrix also counted transposed) is always
// derived on demand by Skeleton, never cached, so it can never go
// stale with respect to the invariant undirected ∧ directed = 0.
//
// Vertex indices are stable for the Graph's lifetime and change only
// under AddVertex/DelVertex, which rebuild label slice, index map, and
// both matrices by a 4-block reshape (see mutate.go).
type Graph struct {
	kind       Kind
	labels     []string
	index      map[string]int
	undirected *BitMatrix
	directed   *BitMatrix
}

func sortedCopy(labels []string) []string {
	out := make([]string, len(labels))
	copy(out, labels)
	sort.Strings(out)
	return out
}

func buildIndex(labels []string) map[string]int {
	idx := make(map[string]int, len(labels))
	for i, l := range labels {
		idx[l] = i
	}
	return idx
}

func newEmpty(kind Kind, labels []string) *Graph {
	sorted := sortedCopy(labels)
	n := len(sorted)
	return &Graph{
		kind:       kind,
		labels:     sorted,
		index:      buildIndex(sorted),
		undirected: NewBitMatrix(n),
		directed:   NewBitMatrix(n),
	}
}

// NewUndirected returns a Graph with no edges over the given labels.
// Labels need not be pre-sorted; the constructor sorts them.
func NewUndirected(labels []string) *Graph { return newEmpty(Undirected, labels) }

// NewDirected returns a Graph with no edges over the given labels.
func NewDirected(labels []string) *Graph { return newEmpty(Directed, labels) }

// NewPartiallyDirected returns a Graph with no edges over the given labels.
func NewPartiallyDirected(labels []string) *Graph { return newEmpty(PartiallyDirected, labels) }

// NewComplete returns a Graph of the given Kind with every unordered
// pair of distinct vertices connected. For Directed it connects both
// i→j and j→i; for Undirected and PartiallyDirected the complete edge
// set is undirected.
func NewComplete(kind Kind, labels []string) *Graph {
	g := newEmpty(kind, labels)
	n := len(g.labels)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			switch kind {
			case Directed:
				g.directed.Set(i, j, true)
			default:
				if i < j {
					g.undirected.Set(i, j, true)
					g.undirected.Set(j, i, true)
				}
			}
		}
	}
	return g
}

// Edge is an ordered pair of labels, used by FromEdgeList and EdgeList.
type Edge struct {
	From string
	To   string
}

// FromEdgeList builds a Graph of the given Kind over labels, inserting
// each edge. For Undirected/PartiallyDirected the From/To order of an
// edge is irrelevant (it is stored symmetrically); for Directed it is
// the edge direction. Returns ErrVertexNotFound if an edge references
// a label outside labels.
func FromEdgeList(kind Kind, labels []string, edges []Edge) (*Graph, error) {
	g := newEmpty(kind, labels)
	for _, e := range edges {
		var err error
		switch kind {
		case Directed:
			err = g.AddDirectedEdge(e.From, e.To)
		default:
			err = g.AddUndirectedEdge(e.From, e.To)
		}
		if err != nil {
			return nil, err
		}
	}
	return g, nil
}

// FromAdjacency builds a Graph of the given Kind directly from caller
// supplied undirected/directed matrices, validating every invariant in
// spec §3: square, matching dimension, empty diagonal, symmetric
// undirected matrix, and undirected/directed disjointness.
//
// Either matrix may be nil, meaning "all false" (an empty n×n matrix
// is assumed, with n = len(labels)).
func FromAdjacency(kind Kind, labels []string, undirected, directed *BitMatrix) (*Graph, error) {
	sorted := sortedCopy(labels)
	n := len(sorted)
	if undirected == nil {
		undirected = NewBitMatrix(n)
	}
	if directed == nil {
		directed = NewBitMatrix(n)
	}
	if undirected.N() != n || directed.N() != n {
		return nil, fmt.Errorf("graph: FromAdjacency: %w: labels=%d undirected=%d directed=%d",
			ErrDimensionMismatch, n, undirected.N(), directed.N())
	}
	if !undirected.HasEmptyDiagonal() || !directed.HasEmptyDiagonal() {
		return nil, fmt.Errorf("graph: FromAdjacency: %w: non-empty diagonal", ErrMalformedMatrix)
	}
	if kind != Directed && !undirected.IsSymmetric() {
		return nil, fmt.Errorf("graph: FromAdjacency: %w: undirected matrix is asymmetric", ErrMalformedMatrix)
	}
	if kind == Undirected && directed.Popcount() != 0 {
		return nil, fmt.Errorf("graph: FromAdjacency: %w: directed entries on an Undirected graph", ErrMalformedMatrix)
	}
	if kind == Directed && undirected.Popcount() != 0 {
		return nil, fmt.Errorf("graph: FromAdjacency: %w: undirected entries on a Directed graph", ErrMalformedMatrix)
	}
	if !undirected.disjoint(directed) {
		return nil, fmt.Errorf("graph: FromAdjacency: %w: undirected and directed overlap", ErrMalformedMatrix)
	}
	return &Graph{
		kind:       kind,
		labels:     sorted,
		index:      buildIndex(sorted),
		undirected: undirected.Clone(),
		directed:   directed.Clone(),
	}, nil
}

// Kind reports the graph's fixed flavor.
func (g *Graph) Kind() Kind { return g.kind }
