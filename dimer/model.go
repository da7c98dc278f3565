// SPDX-License-Identifier: MIT

package dimer

import (
	"fmt"

	"github.com/katalvlaran/oqs/sparse"
)

// Model bundles every object a Lindblad solver needs for one parameter set.
// All matrices share dimension Size; treat them as read-only.
type Model struct {
	Params       Params
	Size         int
	Hamiltonian  *sparse.CSR
	Driving      []*sparse.CSR     // aligned with DrivingFuncs
	DrivingFuncs []DrivingFunction // aligned with Driving
	Periods      []float64
	Dissipators  []*sparse.CSR // rate Params.DissGamma applied by the solver
}

// Build validates p and constructs the full operator set.
func Build(p Params) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, dimerErrorf("Build", err)
	}

	size, err := SysSize(p.NumParticles)
	if err != nil {
		return nil, dimerErrorf("Build", err)
	}
	h, err := Hamiltonian(p.NumParticles, p.E, p.U, p.J)
	if err != nil {
		return nil, dimerErrorf("Build", err)
	}
	drv, err := DrivingHamiltonians(p.NumParticles)
	if err != nil {
		return nil, dimerErrorf("Build", err)
	}
	fns, err := DrivingFunctions(p.DrvType, p.DrvAmpl, p.DrvFreq, p.DrvPhas)
	if err != nil {
		return nil, dimerErrorf("Build", err)
	}
	periods, err := Periods(p.DrvFreq)
	if err != nil {
		return nil, dimerErrorf("Build", err)
	}
	diss, err := Dissipators(p.NumParticles, p.DissType)
	if err != nil {
		return nil, dimerErrorf("Build", err)
	}

	m := &Model{
		Params:       p,
		Size:         size,
		Hamiltonian:  h,
		Driving:      drv,
		DrivingFuncs: fns,
		Periods:      periods,
		Dissipators:  diss,
	}
	if err = m.Validate(); err != nil {
		return nil, dimerErrorf("Build", err)
	}

	return m, nil
}

// Validate checks that every operator is Size×Size and that the driving
// operators and functions pair up. Violations report ErrDimensionMismatch.
func (m *Model) Validate() error {
	if len(m.Driving) != len(m.DrivingFuncs) {
		return fmt.Errorf("%w: %d driving operators, %d driving functions",
			ErrDimensionMismatch, len(m.Driving), len(m.DrivingFuncs))
	}
	if len(m.Periods) != len(m.DrivingFuncs) {
		return fmt.Errorf("%w: %d periods, %d driving functions",
			ErrDimensionMismatch, len(m.Periods), len(m.DrivingFuncs))
	}
	ops := make([]*sparse.CSR, 0, 1+len(m.Driving)+len(m.Dissipators))
	ops = append(ops, m.Hamiltonian)
	ops = append(ops, m.Driving...)
	ops = append(ops, m.Dissipators...)

	return CheckDimensions(m.Size, ops...)
}

// CheckDimensions reports ErrDimensionMismatch unless every op is size×size.
// Callers composing the free builders with different inputs use it to
// catch mismatched particle numbers.
func CheckDimensions(size int, ops ...*sparse.CSR) error {
	for i, op := range ops {
		if op == nil {
			return fmt.Errorf("%w: operator %d is nil", ErrDimensionMismatch, i)
		}
		if op.Rows() != size || op.Cols() != size {
			return fmt.Errorf("%w: operator %d is %dx%d, want %dx%d",
				ErrDimensionMismatch, i, op.Rows(), op.Cols(), size, size)
		}
	}

	return nil
}
