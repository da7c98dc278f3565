// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/oqs/sparse"
	"github.com/stretchr/testify/require"
)

// TestAddSub verifies element-wise sums and that cancellations leave no entries.
func TestAddSub(t *testing.T) {
	a := tridiag3(t)
	b := mustBuild(t, 3, 3, tri(0, 0, 1), tri(2, 2, 5))

	sum, err := sparse.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, []complex128{2, 2, 5}, sum.Diagonal())

	diff, err := sparse.Sub(a, a)
	require.NoError(t, err)
	require.Equal(t, 0, diff.NNZ())
}

// TestAddSubShapeErrors ensures shape and nil checks are enforced.
func TestAddSubShapeErrors(t *testing.T) {
	a := tridiag3(t)
	b := mustBuild(t, 2, 2)

	_, err := sparse.Add(a, b)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = sparse.Sub(nil, a)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestScale covers complex scaling, zero scaling and invalid factors.
func TestScale(t *testing.T) {
	a := tridiag3(t)

	s, err := sparse.Scale(a, 2i)
	require.NoError(t, err)
	v, err := s.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, complex128(2), v) // (-1i)*(2i) = 2

	z, err := sparse.Scale(a, 0)
	require.NoError(t, err)
	require.Equal(t, 0, z.NNZ())

	_, err = sparse.Scale(a, complex(math.NaN(), 0))
	require.ErrorIs(t, err, sparse.ErrNaNInf)
}

// TestTransposeConj checks plain and conjugate transposes on a rectangular input.
func TestTransposeConj(t *testing.T) {
	m := mustBuild(t, 2, 3, tri(0, 2, 1+2i), tri(1, 0, 3))

	tr, err := sparse.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, []sparse.Triple{tri(0, 1, 3), tri(2, 0, 1+2i)}, tr.Triples())

	ct, err := sparse.ConjTranspose(m)
	require.NoError(t, err)
	require.Equal(t, []sparse.Triple{tri(0, 1, 3), tri(2, 0, 1-2i)}, ct.Triples())

	_, err = sparse.ConjTranspose(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestMatVec verifies y = m·x and the length guard.
func TestMatVec(t *testing.T) {
	m := tridiag3(t)

	y, err := sparse.MatVec(m, []complex128{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []complex128{1 - 1i, 5 + 1i, 3}, y)

	_, err = sparse.MatVec(m, []complex128{1})
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}
