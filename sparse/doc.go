// SPDX-License-Identifier: MIT

// Package sparse provides immutable complex-valued sparse matrices in
// compressed sparse row (CSR) form, together with the small kernel set
// needed to build and validate quantum operators.
//
// 🚀 What is in the box?
//
//	• Builder — mutable staging area (DOK map) with Set/Add, index and
//	  NaN/Inf validation, explicit-zero dropping.
//	• CSR     — read-only snapshot produced by Builder.Build.
//	• Kernels — Add, Sub, Scale, Transpose, ConjTranspose, MatVec.
//	• Metrics — FrobeniusNorm, Trace, EqualWithin, IsHermitian, IsTridiagonal.
//
// ⚙️ Usage:
//
//	b, err := sparse.NewBuilder(3, 3)
//	if err != nil {
//	  // handle ErrBadShape
//	}
//	_ = b.Set(0, 1, -1)
//	_ = b.Set(1, 0, -1)
//	h := b.Build()
//	ok, _ := sparse.IsHermitian(h, 0)
//
// Determinism:
//
//	Triples are always emitted in row-major order (row asc, then column
//	asc), independent of the order in which entries were staged.
//
// Concurrency:
//
//	CSR values expose no mutators and may be shared freely across
//	goroutines. A Builder is not safe for concurrent use.
package sparse
