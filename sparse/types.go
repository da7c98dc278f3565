// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by the builder and the CSR kernels.
package sparse

// Triple is a single stored entry of a sparse matrix.
type Triple struct {
	Row int        // row index, 0-based
	Col int        // column index, 0-based
	Val complex128 // stored value (never an explicit zero unless kept by options)
}

// pairKey is an ordered (row, col) pair used as the DOK map key in Builder.
// Using ints keeps the key compact and hash-friendly.
type pairKey struct {
	r int // row index
	c int // column index
}

// less orders keys row-major (row asc, then column asc).
func (k pairKey) less(o pairKey) bool {
	if k.r != o.r {
		return k.r < o.r
	}

	return k.c < o.c
}
