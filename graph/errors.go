// Package graph implements the dense adjacency-matrix graph substrate
// shared by the discovery engines: undirected, directed, and
// partially-directed graphs over a lexicographically sorted vertex
// label set, plus the traversal and moralization operations built on
// top of them.
//
// A Graph never silently drops an invariant violation: mutating
// methods return a sentinel error (checked with errors.Is) rather than
// panicking, mirroring the surrounding ecosystem's error-handling
// convention of package-level sentinels wrapped with fmt.Errorf.
package graph

import "errors"

// Sentinel errors for graph package operations.
var (
	// ErrEmptyLabel indicates a vertex label is the empty string.
	ErrEmptyLabel = errors.New("graph: vertex label is empty")

	// ErrVertexNotFound indicates an operation referenced a label absent from the graph.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrVertexExists indicates AddVertex was called with a label already present.
	ErrVertexExists = errors.New("graph: vertex already exists")

	// ErrSelfLoop indicates an edge operation targeted a vertex with itself.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")

	// ErrEdgeNotFound indicates an operation referenced an edge that does not exist.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrEdgeExists indicates an edge already connects the given pair in some orientation.
	ErrEdgeExists = errors.New("graph: edge already exists between vertices")

	// ErrNotUndirected indicates a directed-only operation was attempted on an edge
	// that is not currently undirected (e.g. OrientEdge on a missing undirected edge).
	ErrNotUndirected = errors.New("graph: edge is not undirected")

	// ErrWrongKind indicates a mutation was attempted that its Kind forbids
	// (e.g. AddDirectedEdge on a pure undirected graph).
	ErrWrongKind = errors.New("graph: operation not supported for this graph kind")

	// ErrDimensionMismatch indicates two graphs or a graph and a matrix disagree in order.
	ErrDimensionMismatch = errors.New("graph: dimension mismatch")

	// ErrMalformedMatrix indicates a matrix passed to a constructor violates
	// a structural invariant (non-square, asymmetric undirected, overlapping
	// undirected/directed entries, non-false diagonal).
	ErrMalformedMatrix = errors.New("graph: malformed adjacency matrix")

	// ErrCyclic indicates an operation that requires acyclicity (e.g.
	// topological sort) found a cycle.
	ErrCyclic = errors.New("graph: graph is cyclic")

	// ErrEmptySeparationSet indicates Separated was called with an empty X or Y.
	ErrEmptySeparationSet = errors.New("graph: separation query requires non-empty X and Y")

	// ErrOverlappingSeparationSets indicates X, Y and Z were not pairwise disjoint.
	ErrOverlappingSeparationSets = errors.New("graph: separation query requires pairwise disjoint X, Y, Z")
)
