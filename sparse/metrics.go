// SPDX-License-Identifier: MIT
// Package sparse — scalar metrics and structural predicates.
//
// EqualWithin is the comparison contract used against stored reference
// operators: ‖a − b‖_F < tol, the same Frobenius norm scipy.sparse.linalg.norm
// computes by default.

package sparse

import "math"

// FrobeniusNorm returns sqrt(Σ |m_ij|²) over stored entries.
// Accumulates with a running scale (LAPACK dnrm2 style) to avoid overflow.
// Complexity: O(nnz).
func FrobeniusNorm(m *CSR) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, sparseErrorf("FrobeniusNorm", err)
	}
	scale, ssq := 0.0, 1.0
	accumulate := func(x float64) {
		if x == 0 {
			return
		}
		ax := math.Abs(x)
		if scale < ax {
			ssq = 1 + ssq*(scale/ax)*(scale/ax)
			scale = ax
		} else {
			ssq += (ax / scale) * (ax / scale)
		}
	}
	for _, v := range m.vals {
		accumulate(real(v))
		accumulate(imag(v))
	}

	return scale * math.Sqrt(ssq), nil
}

// Trace returns Σ m_ii. Errors: ErrNilMatrix, ErrNonSquare.
func Trace(m *CSR) (complex128, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, sparseErrorf("Trace", err)
	}
	var tr complex128
	for _, d := range m.Diagonal() {
		tr += d
	}

	return tr, nil
}

// DiffNorm returns ‖a − b‖_F.
func DiffNorm(a, b *CSR) (float64, error) {
	d, err := Sub(a, b)
	if err != nil {
		return 0, sparseErrorf("DiffNorm", err)
	}

	return FrobeniusNorm(d)
}

// EqualWithin reports whether ‖a − b‖_F < tol.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad tol).
func EqualWithin(a, b *CSR, tol float64) (bool, error) {
	tol, err := ValidateTolerance(tol)
	if err != nil {
		return false, sparseErrorf("EqualWithin", err)
	}
	n, err := DiffNorm(a, b)
	if err != nil {
		return false, sparseErrorf("EqualWithin", err)
	}

	return n < tol, nil
}

// IsHermitian reports whether ‖m − m†‖_F <= tol. With tol = 0 it demands
// exact equality with the conjugate transpose.
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad tol).
// Complexity: O(nnz log nnz).
func IsHermitian(m *CSR, tol float64) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, sparseErrorf("IsHermitian", err)
	}
	tol, err := ValidateTolerance(tol)
	if err != nil {
		return false, sparseErrorf("IsHermitian", err)
	}
	adj, err := ConjTranspose(m)
	if err != nil {
		return false, sparseErrorf("IsHermitian", err)
	}
	n, err := DiffNorm(m, adj)
	if err != nil {
		return false, sparseErrorf("IsHermitian", err)
	}

	return n <= tol, nil
}

// IsTridiagonal reports whether every stored entry satisfies |i − j| <= 1.
func IsTridiagonal(m *CSR) (bool, error) {
	return IsBanded(m, 1)
}

// IsBanded reports whether every stored entry satisfies |i − j| <= width.
func IsBanded(m *CSR, width int) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, sparseErrorf("IsBanded", err)
	}
	ok := true
	m.Each(func(i, j int, _ complex128) {
		if i-j > width || j-i > width {
			ok = false
		}
	})

	return ok, nil
}
