// SPDX-License-Identifier: MIT

// Package dimer builds the operators of a driven, dissipative two-site
// Bose–Hubbard dimer for consumption by a Lindblad master-equation solver.
//
// 🚀 What is the dimer?
//
//	N bosons shared between two sites. With the total number fixed, the
//	Fock space reduces to N+1 states; state k holds k bosons on site 1 and
//	N−k on site 2:
//
//	  |k⟩ = |k, N−k⟩,   k = 0..N
//
// ✨ Building blocks (all pure, all safe for concurrent use):
//   - SysSize              — dimension N+1 of the truncated basis
//   - Hamiltonian          — tridiagonal H(E, U, J)
//   - DrivingHamiltonians  — population-imbalance operator n1 − n2
//   - DrivingFunctions     — harmonic or square scalar drive f(t)
//   - Periods              — fundamental period 2π/ω of the drive
//   - Dissipators          — Lindblad jump operators (rate applied by the solver)
//
// ⚙️ Usage:
//
//	m, err := dimer.Build(dimer.Params{
//	  NumParticles: 10, U: 0.5, J: 1,
//	  DrvType: dimer.DriveSquare, DrvAmpl: 3.4, DrvFreq: 1,
//	  DissType: dimer.DissipationPhaseLocking, DissGamma: 0.1,
//	})
//	if err != nil {
//	  // errors.Is(err, dimer.ErrInvalidParameter)
//	}
//	h := m.Hamiltonian                  // *sparse.CSR, 11×11
//	f := m.DrivingFuncs[0]              // f(t) multiplies m.Driving[0]
//	l := m.Dissipators[0]               // jump operator, rate m.Params.DissGamma
//
// The time evolution itself is out of scope for this package.
package dimer
