// SPDX-License-Identifier: MIT

package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/oqs/sparse"
)

// ExampleEqualWithin shows the reference-comparison contract.
func ExampleEqualWithin() {
	b, _ := sparse.NewBuilder(2, 2)
	_ = b.Set(0, 1, -1)
	_ = b.Set(1, 0, -1)
	h := b.Build()

	herm, _ := sparse.IsHermitian(h, 0)
	same, _ := sparse.EqualWithin(h, h.Clone(), 1e-14)
	fmt.Println("hermitian:", herm)
	fmt.Println("equal:", same)

	// Output:
	// hermitian: true
	// equal: true
}
