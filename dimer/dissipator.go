// SPDX-License-Identifier: MIT

package dimer

import (
	"math"

	"github.com/katalvlaran/oqs/sparse"
)

// Dissipators returns the Lindblad jump operators of channel kind, one per
// channel (one for the dimer). The rate γ is not applied here; the solver
// multiplies the dissipator term by DissGamma.
//
// Matrix elements in the basis |k, N−k⟩ use the ladder-operator rules
// b1†|k⟩ = √(k+1)|k+1⟩, b1|k⟩ = √k|k−1⟩ (and likewise for site 2 with N−k):
//
//	DissipationDephasing:     L[k,k] = 2k − N
//	DissipationPhaseLocking:  L[k,k]   = 2k − N              (b1†b1 − b2†b2)
//	                          L[k+1,k] = −√((k+1)(N−k))      (−b1†b2)
//	                          L[k−1,k] = +√(k(N−k+1))        (+b2†b1)
func Dissipators(numParticles int, kind DissipationType) ([]*sparse.CSR, error) {
	l, err := Dissipator(numParticles, kind)
	if err != nil {
		return nil, err
	}

	return []*sparse.CSR{l}, nil
}

// Dissipator returns the single jump operator of channel kind.
// Unsupported kinds fail with ErrInvalidParameter.
func Dissipator(numParticles int, kind DissipationType) (*sparse.CSR, error) {
	var (
		l   *sparse.CSR
		err error
	)
	switch kind {
	case DissipationDephasing:
		l, err = imbalance(numParticles)
	case DissipationPhaseLocking:
		l, err = phaseLocking(numParticles)
	default:
		err = invalidf("dissipation type %d", int(kind))
	}
	if err != nil {
		return nil, dimerErrorf("Dissipator", err)
	}

	return l, nil
}

// phaseLocking builds (b1† + b2†)(b1 − b2) = b1†b1 − b1†b2 + b2†b1 − b2†b2.
func phaseLocking(numParticles int) (*sparse.CSR, error) {
	size, err := SysSize(numParticles)
	if err != nil {
		return nil, err
	}
	b, err := sparse.NewBuilder(size, size)
	if err != nil {
		return nil, err
	}
	n := float64(numParticles)
	for k := 0; k < size; k++ {
		fk := float64(k)
		// b1†b1 − b2†b2
		if err = b.Add(k, k, complex(2*fk-n, 0)); err != nil {
			return nil, err
		}
		// −b1†b2: |k⟩ → |k+1⟩
		if k < numParticles {
			if err = b.Add(k+1, k, complex(-math.Sqrt((fk+1)*(n-fk)), 0)); err != nil {
				return nil, err
			}
		}
		// +b2†b1: |k⟩ → |k−1⟩
		if k > 0 {
			if err = b.Add(k-1, k, complex(math.Sqrt(fk*(n-fk+1)), 0)); err != nil {
				return nil, err
			}
		}
	}

	return b.Build(), nil
}
