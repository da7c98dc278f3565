// SPDX-License-Identifier: MIT

package sparse

import (
	"math/cmplx"
	"sort"
)

// Builder stages entries of a rows×cols matrix in a dictionary-of-keys map
// and freezes them into a CSR on Build. A Builder is not safe for
// concurrent use; the CSR it produces is.
type Builder struct {
	r, c    int                   // shape
	entries map[pairKey]complex128 // staged values
	opts    Options               // resolved policy
}

// NewBuilder creates an empty rows×cols staging area.
// Stage 1 (Validate): rows and cols must be > 0.
// Stage 2 (Prepare): resolve options, allocate the DOK map.
// Complexity: O(1).
func NewBuilder(rows, cols int, opts ...Option) (*Builder, error) {
	if rows <= 0 || cols <= 0 {
		return nil, sparseErrorf("NewBuilder", ErrBadShape)
	}

	return &Builder{
		r:       rows,
		c:       cols,
		entries: make(map[pairKey]complex128),
		opts:    gatherOptions(opts...),
	}, nil
}

// Rows returns the number of rows of the matrix being built.
func (b *Builder) Rows() int { return b.r }

// Cols returns the number of columns of the matrix being built.
func (b *Builder) Cols() int { return b.c }

// check validates indices and, under the numeric policy, the value.
func (b *Builder) check(method string, i, j int, v complex128) error {
	if i < 0 || i >= b.r || j < 0 || j >= b.c {
		return sparseErrorf("Builder."+method, ErrOutOfRange)
	}
	if b.opts.validateNaNInf && (cmplx.IsNaN(v) || cmplx.IsInf(v)) {
		return sparseErrorf("Builder."+method, ErrNaNInf)
	}

	return nil
}

// Set assigns v at (i, j), overwriting any staged value.
// Returns ErrOutOfRange for invalid indices and ErrNaNInf for non-finite v
// when validation is enabled.
// Complexity: O(1) amortized.
func (b *Builder) Set(i, j int, v complex128) error {
	if err := b.check("Set", i, j, v); err != nil {
		return err
	}
	b.entries[pairKey{r: i, c: j}] = v

	return nil
}

// Add accumulates v into (i, j). Used when several operator terms land on
// the same cell (e.g. b1†b1 and b2†b2 on the diagonal).
// Complexity: O(1) amortized.
func (b *Builder) Add(i, j int, v complex128) error {
	if err := b.check("Add", i, j, v); err != nil {
		return err
	}
	b.entries[pairKey{r: i, c: j}] += v

	return nil
}

// Len reports the number of staged cells (including cells that Build may drop).
func (b *Builder) Len() int { return len(b.entries) }

// Build freezes the staged entries into a fresh CSR.
// Stage 1: collect surviving keys (drop policy |v| <= eps when enabled).
// Stage 2: sort keys row-major for deterministic layout.
// Stage 3: fill rowPtr/colIdx/vals.
// The Builder stays usable; later mutations do not affect the returned CSR.
// Complexity: O(nnz log nnz + rows).
func (b *Builder) Build() *CSR {
	keys := make([]pairKey, 0, len(b.entries))
	for k, v := range b.entries {
		if b.opts.dropZeros && cmplx.Abs(v) <= b.opts.eps {
			continue
		}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(x, y int) bool { return keys[x].less(keys[y]) })

	m := &CSR{
		r:      b.r,
		c:      b.c,
		rowPtr: make([]int, b.r+1),
		colIdx: make([]int, len(keys)),
		vals:   make([]complex128, len(keys)),
	}
	for idx, k := range keys {
		m.rowPtr[k.r+1]++
		m.colIdx[idx] = k.c
		m.vals[idx] = b.entries[k]
	}
	for i := 0; i < b.r; i++ {
		m.rowPtr[i+1] += m.rowPtr[i]
	}

	return m
}

// FromTriples builds a rows×cols CSR from a list of triples. Duplicate
// coordinates accumulate, matching the COO convention of most sparse
// toolkits.
func FromTriples(rows, cols int, ts []Triple, opts ...Option) (*CSR, error) {
	b, err := NewBuilder(rows, cols, opts...)
	if err != nil {
		return nil, sparseErrorf("FromTriples", err)
	}
	for _, t := range ts {
		if err = b.Add(t.Row, t.Col, t.Val); err != nil {
			return nil, sparseErrorf("FromTriples", err)
		}
	}

	return b.Build(), nil
}
