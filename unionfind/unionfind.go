// Package unionfind implements a disjoint-set forest (union-find) over
// dense integer indices, with path compression and union by rank. It
// is the index-keyed counterpart to the ecosystem's string-keyed DSU
// (github.com/katalvlaran/lvlath/prim_kruskal.Kruskal), adapted to the
// graph package's vertex-index addressing.
package unionfind

// DSU is a disjoint-set forest over the indices [0, n).
type DSU struct {
	parent []int
	rank   []int
}

// New builds a DSU over n singleton sets, one per index in [0, n).
func New(n int) *DSU {
	d := &DSU{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

// Find returns the representative of u's set, compressing the path
// from u to the root as it walks up.
func (d *DSU) Find(u int) int {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}
	return u
}

// Union merges the sets containing u and v, attaching the smaller-rank
// root under the larger-rank one and reports whether a merge occurred
// (false if u and v were already in the same set).
func (d *DSU) Union(u, v int) bool {
	rootU, rootV := d.Find(u), d.Find(v)
	if rootU == rootV {
		return false
	}
	switch {
	case d.rank[rootU] < d.rank[rootV]:
		d.parent[rootU] = rootV
	case d.rank[rootU] > d.rank[rootV]:
		d.parent[rootV] = rootU
	default:
		d.parent[rootV] = rootU
		d.rank[rootU]++
	}
	return true
}

// Connected reports whether u and v are in the same set.
func (d *DSU) Connected(u, v int) bool { return d.Find(u) == d.Find(v) }
