// SPDX-License-Identifier: MIT
// Package sparse — structural kernels.
//
// Every kernel allocates a fresh CSR and never mutates its operands.
// Results are re-staged through a Builder with NaN/Inf validation off
// (operands were already validated at ingestion) and exact-zero dropping
// on, so cancellations (e.g. A − A) leave no stored entries.

package sparse

import "math/cmplx"

// Operation tags for error wrapping (no magic strings).
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opScale         = "Scale"
	opTranspose     = "Transpose"
	opConjTranspose = "ConjTranspose"
	opMatVec        = "MatVec"
)

// kernelBuilder returns the staging area used by kernels.
func kernelBuilder(r, c int) *Builder {
	return &Builder{
		r:       r,
		c:       c,
		entries: make(map[pairKey]complex128),
		opts:    gatherOptions(WithNoValidateNaNInf()),
	}
}

// addSub computes a + sign*b for sign ∈ {+1, −1}.
// Complexity: O(nnz(a) + nnz(b)) map work plus the sort in Build.
func addSub(a, b *CSR, sign complex128, tag string) (*CSR, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, sparseErrorf(tag, err)
	}
	out := kernelBuilder(a.r, a.c)
	a.Each(func(i, j int, v complex128) { out.entries[pairKey{r: i, c: j}] += v })
	b.Each(func(i, j int, v complex128) { out.entries[pairKey{r: i, c: j}] += sign * v })

	return out.Build(), nil
}

// Add returns a + b. Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b *CSR) (*CSR, error) { return addSub(a, b, 1, opAdd) }

// Sub returns a − b. Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b *CSR) (*CSR, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha*m. Scaling by zero yields an empty matrix of the same shape.
func Scale(m *CSR, alpha complex128) (*CSR, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opScale, err)
	}
	if cmplx.IsNaN(alpha) || cmplx.IsInf(alpha) {
		return nil, sparseErrorf(opScale, ErrNaNInf)
	}
	out := kernelBuilder(m.r, m.c)
	m.Each(func(i, j int, v complex128) { out.entries[pairKey{r: i, c: j}] = alpha * v })

	return out.Build(), nil
}

// transpose is the shared body of Transpose and ConjTranspose.
func transpose(m *CSR, conj bool, tag string) (*CSR, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(tag, err)
	}
	out := kernelBuilder(m.c, m.r)
	m.Each(func(i, j int, v complex128) {
		if conj {
			v = cmplx.Conj(v)
		}
		out.entries[pairKey{r: j, c: i}] = v
	})

	return out.Build(), nil
}

// Transpose returns mᵀ.
func Transpose(m *CSR) (*CSR, error) { return transpose(m, false, opTranspose) }

// ConjTranspose returns the Hermitian adjoint m† (conjugate transpose).
func ConjTranspose(m *CSR) (*CSR, error) { return transpose(m, true, opConjTranspose) }

// MatVec returns y = m·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(x) != Cols.
// Complexity: O(nnz + r).
func MatVec(m *CSR, x []complex128) ([]complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opMatVec, err)
	}
	if len(x) != m.c {
		return nil, sparseErrorf(opMatVec, ErrDimensionMismatch)
	}
	y := make([]complex128, m.r)
	for i := 0; i < m.r; i++ {
		var acc complex128
		for p := m.rowPtr[i]; p < m.rowPtr[i+1]; p++ {
			acc += m.vals[p] * x[m.colIdx[p]]
		}
		y[i] = acc
	}

	return y, nil
}
