package graph

import "fmt"

// BitMatrix is a dense, row-major, n×n boolean adjacency matrix.
//
// It plays the role the teacher ecosystem's matrix.Dense plays for
// weighted float64 matrices (github.com/katalvlaran/lvlath/matrix):
// a flat backing slice addressed as row*n+col, O(1) At/Set, O(n²)
// Clone. Boolean rather than float64 because the graph substrate only
// ever needs "edge present or absent" — weights belong to the
// DataSet/ScoringCriterion layers, not the graph.
type BitMatrix struct {
	n    int
	data []bool
}

// NewBitMatrix allocates an n×n matrix with every entry false.
// Complexity: O(n²).
func NewBitMatrix(n int) *BitMatrix {
	if n < 0 {
		n = 0
	}
	return &BitMatrix{n: n, data: make([]bool, n*n)}
}

// N returns the matrix dimension.
func (m *BitMatrix) N() int { return m.n }

func (m *BitMatrix) index(i, j int) int {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(fmt.Sprintf("graph: BitMatrix index (%d,%d) out of range for n=%d", i, j, m.n))
	}
	return i*m.n + j
}

// At reports whether the entry (i,j) is set.
// Complexity: O(1).
func (m *BitMatrix) At(i, j int) bool {
	return m.data[m.index(i, j)]
}

// Set assigns the entry (i,j).
// Complexity: O(1).
func (m *BitMatrix) Set(i, j int, v bool) {
	m.data[m.index(i, j)] = v
}

// Clone returns a deep copy.
// Complexity: O(n²).
func (m *BitMatrix) Clone() *BitMatrix {
	cp := make([]bool, len(m.data))
	copy(cp, m.data)
	return &BitMatrix{n: m.n, data: cp}
}

// Popcount returns the number of true entries.
// Complexity: O(n²).
func (m *BitMatrix) Popcount() int {
	c := 0
	for _, b := range m.data {
		if b {
			c++
		}
	}
	return c
}

// Or returns a new matrix that is the element-wise OR of m and o.
// Complexity: O(n²).
func (m *BitMatrix) Or(o *BitMatrix) *BitMatrix {
	out := NewBitMatrix(m.n)
	for i := range m.data {
		out.data[i] = m.data[i] || o.data[i]
	}
	return out
}

// Transpose returns a new matrix with rows and columns swapped.
// Complexity: O(n²).
func (m *BitMatrix) Transpose() *BitMatrix {
	out := NewBitMatrix(m.n)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			out.Set(j, i, m.At(i, j))
		}
	}
	return out
}

// IsSymmetric reports whether At(i,j) == At(j,i) for all i,j.
// Complexity: O(n²).
func (m *BitMatrix) IsSymmetric() bool {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.At(i, j) != m.At(j, i) {
				return false
			}
		}
	}
	return true
}

// HasEmptyDiagonal reports whether every diagonal entry is false.
// Complexity: O(n).
func (m *BitMatrix) HasEmptyDiagonal() bool {
	for i := 0; i < m.n; i++ {
		if m.At(i, i) {
			return false
		}
	}
	return true
}

// disjoint reports whether m and o share no true entry in common.
// Complexity: O(n²).
func (m *BitMatrix) disjoint(o *BitMatrix) bool {
	for i := range m.data {
		if m.data[i] && o.data[i] {
			return false
		}
	}
	return true
}
