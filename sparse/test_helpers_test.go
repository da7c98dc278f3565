// SPDX-License-Identifier: MIT
// Package sparse_test contains small deterministic fixtures shared by the
// sparse tests.

package sparse_test

import (
	"testing"

	"github.com/katalvlaran/oqs/sparse"
	"github.com/stretchr/testify/require"
)

// mustBuild BUILDS an r×c CSR from triples or fails the test.
func mustBuild(tb testing.TB, r, c int, ts ...sparse.Triple) *sparse.CSR {
	tb.Helper()
	m, err := sparse.FromTriples(r, c, ts)
	require.NoError(tb, err)

	return m
}

// tri is a compact Triple constructor for table literals.
func tri(i, j int, v complex128) sparse.Triple {
	return sparse.Triple{Row: i, Col: j, Val: v}
}

// tridiag3 returns the Hermitian 3×3 matrix
//
//	[ 1   -1i  0 ]
//	[ 1i   2   3 ]
//	[ 0    3   0 ]
func tridiag3(tb testing.TB) *sparse.CSR {
	tb.Helper()

	return mustBuild(tb, 3, 3,
		tri(0, 0, 1), tri(0, 1, -1i),
		tri(1, 0, 1i), tri(1, 1, 2), tri(1, 2, 3),
		tri(2, 1, 3),
	)
}
