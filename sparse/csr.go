// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// CSR is an immutable r×c complex matrix in compressed sparse row form.
// Row i owns colIdx/vals in [rowPtr[i], rowPtr[i+1]); columns inside a row
// are strictly increasing.
type CSR struct {
	r, c   int          // number of rows and columns
	rowPtr []int        // len r+1, rowPtr[0] == 0, rowPtr[r] == nnz
	colIdx []int        // column of each stored value
	vals   []complex128 // stored values, row-major
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *CSR) Rows() int { return m.r }

// Cols returns the number of columns.
// Complexity: O(1).
func (m *CSR) Cols() int { return m.c }

// NNZ returns the number of stored entries.
// Complexity: O(1).
func (m *CSR) NNZ() int { return len(m.vals) }

// At returns the value at (i, j); structurally absent cells read as 0.
// Returns ErrOutOfRange for invalid indices.
// Complexity: O(log k) where k is the number of entries in row i.
func (m *CSR) At(i, j int) (complex128, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, sparseErrorf(fmt.Sprintf("CSR.At(%d,%d)", i, j), ErrOutOfRange)
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	row := m.colIdx[lo:hi]
	p := sort.SearchInts(row, j)
	if p < len(row) && row[p] == j {
		return m.vals[lo+p], nil
	}

	return 0, nil
}

// Triples returns a fresh row-major copy of the stored entries.
// Complexity: O(nnz).
func (m *CSR) Triples() []Triple {
	out := make([]Triple, 0, len(m.vals))
	for i := 0; i < m.r; i++ {
		for p := m.rowPtr[i]; p < m.rowPtr[i+1]; p++ {
			out = append(out, Triple{Row: i, Col: m.colIdx[p], Val: m.vals[p]})
		}
	}

	return out
}

// Each calls fn for every stored entry in row-major order.
func (m *CSR) Each(fn func(i, j int, v complex128)) {
	for i := 0; i < m.r; i++ {
		for p := m.rowPtr[i]; p < m.rowPtr[i+1]; p++ {
			fn(i, m.colIdx[p], m.vals[p])
		}
	}
}

// Diagonal returns the main diagonal (length min(r, c)), zeros included.
// Complexity: O(min(r,c) · log k).
func (m *CSR) Diagonal() []complex128 {
	n := m.r
	if m.c < n {
		n = m.c
	}
	d := make([]complex128, n)
	for i := 0; i < n; i++ {
		d[i], _ = m.At(i, i) // indices are in range by construction
	}

	return d
}

// Clone returns a deep copy that shares no storage with m.
// Complexity: O(nnz + r).
func (m *CSR) Clone() *CSR {
	return &CSR{
		r:      m.r,
		c:      m.c,
		rowPtr: append([]int(nil), m.rowPtr...),
		colIdx: append([]int(nil), m.colIdx...),
		vals:   append([]complex128(nil), m.vals...),
	}
}

// Dense expands m into a freshly allocated row-major [][]complex128.
// Complexity: O(r*c).
func (m *CSR) Dense() [][]complex128 {
	out := make([][]complex128, m.r)
	for i := range out {
		out[i] = make([]complex128, m.c)
	}
	m.Each(func(i, j int, v complex128) { out[i][j] = v })

	return out
}

// String implements fmt.Stringer: one "(i, j) value" line per stored entry.
func (m *CSR) String() string {
	var sb strings.Builder
	sb.WriteString("CSR ")
	sb.WriteString(strconv.Itoa(m.r))
	sb.WriteString("x")
	sb.WriteString(strconv.Itoa(m.c))
	sb.WriteString(" nnz=")
	sb.WriteString(strconv.Itoa(len(m.vals)))
	sb.WriteString("\n")
	m.Each(func(i, j int, v complex128) {
		fmt.Fprintf(&sb, "  (%d, %d) %v\n", i, j, v)
	})

	return sb.String()
}

// newEmpty returns an r×c CSR without stored entries.
func newEmpty(r, c int) *CSR {
	return &CSR{r: r, c: c, rowPtr: make([]int, r+1)}
}
