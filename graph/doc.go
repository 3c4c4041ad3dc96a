// Package graph's three constructors (NewUndirected, NewDirected,
// NewPartiallyDirected) all share one representation: a Kind tag plus
// a pair of dense BitMatrix adjacency matrices over a sorted label
// set. This keeps the query surface (Neighbours, Parents, Children,
// Ancestors, Descendants, HasPath, IsAcyclic, Moral, ...) uniform
// across all three flavors instead of exploding into per-kind types,
// the same "one struct, composable flags" design the ecosystem's
// lvlath/core.Graph uses for its directed/weighted/multi/loop axes.
//
// Traversal algorithms (BFS, DFS, DFS-edge classification, topological
// sort, lexicographic BFS/DFS, connected components) live in the
// sibling package graph/traverse, which depends only on the read-only
// query methods here.
package graph
