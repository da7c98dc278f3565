// SPDX-License-Identifier: MIT

package fixture

import (
	"fmt"

	"github.com/katalvlaran/oqs/dimer"
)

// Artifact is the operator-kind prefix of a fixture file name.
type Artifact string

const (
	// ArtifactHamiltonian names the static Hamiltonian.
	ArtifactHamiltonian Artifact = "hamiltonian_mtx"

	// ArtifactDriving names the first driving operator.
	ArtifactDriving Artifact = "hamiltonian_drv_mtx"

	// ArtifactDissipator names the first jump operator.
	ArtifactDissipator Artifact = "diss_0_mtx"
)

// DissipatorArtifact returns the artifact prefix of the i-th jump operator.
func DissipatorArtifact(i int) Artifact {
	return Artifact(fmt.Sprintf("diss_%d_mtx", i))
}

// Suffix renders the parameter part of a fixture name, extension included.
func Suffix(p dimer.Params) string {
	return fmt.Sprintf("_np(%d)_diss(%d_%.4f)_prm(%.4f_%.4f_%.4f)_drv(%d_%.4f_%.4f_%.4f).txt",
		p.NumParticles,
		int(p.DissType), p.DissGamma,
		p.E, p.U, p.J,
		int(p.DrvType), p.DrvAmpl, p.DrvFreq, p.DrvPhas,
	)
}

// Name returns the full fixture file name for artifact a under parameters p.
func Name(a Artifact, p dimer.Params) string {
	return string(a) + Suffix(p)
}
