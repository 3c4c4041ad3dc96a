// Package traverse implements the traversal algorithms spec'd over the
// graph package's substrate: breadth-first search, depth-first search
// (vertex order and edge classification), topological sort,
// lexicographic BFS/DFS, and connected components.
//
// Every algorithm here is read-only with respect to its *graph.Graph
// argument; none of them mutate it. The functional-options + sentinel
// error style (Option func(*Options), WithX(...) Option,
// errors.New + errors.Is) follows the ecosystem's bfs/dfs packages
// (github.com/katalvlaran/lvlath/bfs, .../dfs).
package traverse

import "errors"

// Sentinel errors shared across this package's algorithms.
var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrStartNotFound is returned when a start index is out of range.
	ErrStartNotFound = errors.New("traverse: start vertex not found")

	// ErrCycle is returned by TopologicalSort when the directed graph has a cycle.
	ErrCycle = errors.New("traverse: graph has a cycle")

	// ErrNotDirected is returned by TopologicalSort on a non-Directed graph.
	ErrNotDirected = errors.New("traverse: topological sort requires a directed graph")
)
