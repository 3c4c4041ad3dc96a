package hillclimbing

import (
	"github.com/graphcausal/cgm/graph"
	"github.com/graphcausal/cgm/prior"
)

// opKind distinguishes the three single-edge operator families of
// spec.md §4.5.
type opKind int

const (
	opAdd opKind = iota
	opDel
	opRev
)

// edge is an ordered pair of vertex indices, used both as an operator
// target and as the edgeSet element type.
type edge struct{ X, Y int }

// operator is a candidate structural modification: kind plus the edge
// it targets (always read as "from X to Y" regardless of kind: Add(X,Y)
// inserts X→Y, Del(X,Y) removes X→Y, Rev(X,Y) flips X→Y into Y→X).
type operator struct {
	kind opKind
	x, y int
}

// edgeSet is an insertion-ordered set of edges, preserving first-
// insertion order even across removals (spec.md §5: "ties are broken by
// iteration order... each in insertion order"). Removal is lazy
// (tombstoned in the membership map); Ordered() filters them out.
type edgeSet struct {
	order []edge
	has   map[edge]bool
}

func newEdgeSet() *edgeSet { return &edgeSet{has: make(map[edge]bool)} }

// Insert adds e if absent, appending it to the insertion order.
func (s *edgeSet) Insert(e edge) {
	if s.has[e] {
		return
	}
	s.has[e] = true
	s.order = append(s.order, e)
}

// Remove tombstones e; a later Insert of the same edge re-appends it at
// the end of the order, matching a fresh insertion.
func (s *edgeSet) Remove(e edge) {
	delete(s.has, e)
}

// Contains reports current membership.
func (s *edgeSet) Contains(e edge) bool { return s.has[e] }

// Ordered returns the live members in insertion order.
func (s *edgeSet) Ordered() []edge {
	// A re-inserted edge also has a stale entry earlier in s.order; only
	// its last occurrence is the live one.
	last := make(map[edge]int, len(s.has))
	for i, e := range s.order {
		last[e] = i
	}
	out := make([]edge, 0, len(s.has))
	for i, e := range s.order {
		if s.has[e] && last[e] == i {
			out = append(out, e)
		}
	}
	return out
}

// buildOperatorSpaces computes the three initial operator spaces of
// spec.md §4.5's Initialisation step, iterating vertices in order
// (shuffled per WithSeed) so the resulting insertion order is
// reproducible.
func buildOperatorSpaces(g *graph.Graph, pk prior.PriorKnowledge, order []int) (add, del, rev *edgeSet) {
	add, del, rev = newEdgeSet(), newEdgeSet(), newEdgeSet()

	for _, x := range order {
		for _, y := range order {
			if x == y {
				continue
			}
			if containsInt(g.Children(x), y) {
				continue // (x,y) already in E
			}
			if pk != nil && pk.HasForbidden(g.LabelAt(x), g.LabelAt(y)) {
				continue
			}
			add.Insert(edge{x, y})
		}
	}

	for _, x := range order {
		for _, y := range g.Children(x) {
			required := pk != nil && pk.HasRequired(g.LabelAt(x), g.LabelAt(y))
			if !required {
				del.Insert(edge{x, y})
			}
			forbiddenReverse := pk != nil && pk.HasForbidden(g.LabelAt(y), g.LabelAt(x))
			if !required && !forbiddenReverse {
				rev.Insert(edge{x, y})
			}
		}
	}
	return add, del, rev
}

// applyOperatorSpaceUpdate mutates add/del/rev per spec.md §4.5's
// "Operator-Space Updates" table, given the operator just performed.
func applyOperatorSpaceUpdate(add, del, rev *edgeSet, op operator) {
	switch op.kind {
	case opAdd:
		add.Remove(edge{op.x, op.y})
		del.Insert(edge{op.x, op.y})
		if add.Contains(edge{op.y, op.x}) {
			rev.Insert(edge{op.x, op.y})
		}
	case opDel:
		add.Insert(edge{op.x, op.y})
		del.Remove(edge{op.x, op.y})
		rev.Remove(edge{op.x, op.y})
	case opRev:
		add.Remove(edge{op.y, op.x})
		del.Remove(edge{op.x, op.y})
		rev.Remove(edge{op.x, op.y})
		add.Insert(edge{op.x, op.y})
		del.Insert(edge{op.y, op.x})
		rev.Insert(edge{op.y, op.x})
	}
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
