// Package oqs builds the operators of an open quantum system, a driven
// and dissipative two-site Bose–Hubbard dimer, ready for a Lindblad
// master-equation solver.
//
// Everything is organized under a few subpackages:
//
//	sparse/  — immutable complex CSR matrices, builder, kernels and norms
//	dimer/   — Hamiltonian, driving operators and functions, jump operators
//	fixture/ — text codec and naming convention for stored reference operators
//	config/  — layered parameter loading (defaults, YAML, env, flags)
//
// Quick example:
//
//	m, err := dimer.Build(dimer.Params{
//		NumParticles: 10, U: 0.5, J: 1,
//		DrvType: dimer.DriveSquare, DrvAmpl: 3.4, DrvFreq: 1,
//		DissType: dimer.DissipationPhaseLocking, DissGamma: 0.1,
//	})
//	// m.Hamiltonian, m.Driving, m.DrivingFuncs, m.Periods, m.Dissipators
//
//	go get github.com/katalvlaran/oqs/dimer
package oqs
