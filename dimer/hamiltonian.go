// SPDX-License-Identifier: MIT

package dimer

import (
	"math"

	"github.com/katalvlaran/oqs/sparse"
)

// Hamiltonian builds the static Bose–Hubbard dimer Hamiltonian
//
//	H = E(n1 − n2) + U/2 [n1(n1−1) + n2(n2−1)] − J(b1†b2 + b2†b1)
//
// in the basis |k, N−k⟩. The result is real, symmetric and tridiagonal:
//
//	H[k,k]   = E(2k−N) + U/2 [k(k−1) + (N−k)(N−k−1)]
//	H[k,k+1] = H[k+1,k] = −J √((k+1)(N−k))
//
// N = 0 yields the 1×1 zero matrix.
func Hamiltonian(numParticles int, e, u, j float64) (*sparse.CSR, error) {
	size, err := SysSize(numParticles)
	if err != nil {
		return nil, dimerErrorf("Hamiltonian", err)
	}
	for _, c := range []struct {
		name string
		v    float64
	}{{"E", e}, {"U", u}, {"J", j}} {
		if err = checkFinite(c.name, c.v); err != nil {
			return nil, dimerErrorf("Hamiltonian", err)
		}
	}

	b, err := sparse.NewBuilder(size, size)
	if err != nil {
		return nil, dimerErrorf("Hamiltonian", err)
	}
	n := float64(numParticles)
	for k := 0; k < size; k++ {
		fk := float64(k)
		onsite := e*(2*fk-n) + u/2*(fk*(fk-1)+(n-fk)*(n-fk-1))
		if err = b.Set(k, k, complex(onsite, 0)); err != nil {
			return nil, dimerErrorf("Hamiltonian", err)
		}
		if k == numParticles {
			continue
		}
		hop := complex(-j*math.Sqrt((fk+1)*(n-fk)), 0)
		if err = b.Set(k, k+1, hop); err != nil {
			return nil, dimerErrorf("Hamiltonian", err)
		}
		if err = b.Set(k+1, k, hop); err != nil {
			return nil, dimerErrorf("Hamiltonian", err)
		}
	}

	return b.Build(), nil
}

// DrivingHamiltonians returns the operators coupled to the periodic drive,
// aligned index-by-index with DrivingFunctions. The dimer has a single
// channel: the population imbalance n1 − n2, diag(2k − N), which is traceless.
func DrivingHamiltonians(numParticles int) ([]*sparse.CSR, error) {
	imb, err := imbalance(numParticles)
	if err != nil {
		return nil, dimerErrorf("DrivingHamiltonians", err)
	}

	return []*sparse.CSR{imb}, nil
}

// imbalance builds diag(2k − N).
func imbalance(numParticles int) (*sparse.CSR, error) {
	size, err := SysSize(numParticles)
	if err != nil {
		return nil, err
	}
	d := make([]complex128, size)
	for k := range d {
		d[k] = complex(float64(2*k-numParticles), 0)
	}

	return sparse.NewDiagonal(d)
}
