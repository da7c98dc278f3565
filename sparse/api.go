// SPDX-License-Identifier: MIT
// Package sparse — constructors for common shapes.

package sparse

// NewZeros returns an n×m matrix with no stored entries.
// Errors: ErrBadShape when rows<=0 or cols<=0.
func NewZeros(rows, cols int) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, sparseErrorf("NewZeros", ErrBadShape)
	}

	return newEmpty(rows, cols), nil
}

// NewIdentity returns I_n.
// Errors: ErrBadShape when n<=0.
func NewIdentity(n int) (*CSR, error) {
	if n <= 0 {
		return nil, sparseErrorf("NewIdentity", ErrBadShape)
	}
	d := make([]complex128, n)
	for i := range d {
		d[i] = 1
	}
	m, err := NewDiagonal(d)
	if err != nil {
		return nil, sparseErrorf("NewIdentity", err)
	}

	return m, nil
}

// NewDiagonal returns the square matrix with d on its main diagonal.
// Zero diagonal entries are not stored.
// Errors: ErrBadShape for an empty d, ErrNaNInf for non-finite entries.
func NewDiagonal(d []complex128, opts ...Option) (*CSR, error) {
	b, err := NewBuilder(len(d), len(d), opts...)
	if err != nil {
		return nil, sparseErrorf("NewDiagonal", err)
	}
	for i, v := range d {
		if err = b.Set(i, i, v); err != nil {
			return nil, sparseErrorf("NewDiagonal", err)
		}
	}

	return b.Build(), nil
}
