// SPDX-License-Identifier: MIT

package dimer_test

import (
	"testing"

	"github.com/katalvlaran/oqs/dimer"
	"github.com/katalvlaran/oqs/fixture"
	"github.com/katalvlaran/oqs/sparse"
	"github.com/stretchr/testify/require"
)

// The operators under testdata/ were regenerated locally from the
// closed-form matrix elements, so this test pins the builders against
// drift in those formulas and in the fixture format. The coefficient
// conventions themselves are checked by the hand-derived matrices in
// TestHamiltonianSmall and TestPhaseLockingSmall.

// referenceTol is the Frobenius-norm tolerance against stored operators.
const referenceTol = 1e-14

// TestReferenceOperators compares every builder against the stored
// operators of each case in testdata/cases.yaml.
func TestReferenceOperators(t *testing.T) {
	cases, err := fixture.LoadCases("testdata/cases.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			p := c.Params

			size, err := dimer.SysSize(p.NumParticles)
			require.NoError(t, err)
			require.Equal(t, c.SysSize, size)

			h, err := dimer.Hamiltonian(p.NumParticles, p.E, p.U, p.J)
			require.NoError(t, err)
			assertMatchesFixture(t, c.Path("testdata", fixture.ArtifactHamiltonian), size, h)

			drv, err := dimer.DrivingHamiltonians(p.NumParticles)
			require.NoError(t, err)
			assertMatchesFixture(t, c.Path("testdata", fixture.ArtifactDriving), size, drv[0])

			diss, err := dimer.Dissipators(p.NumParticles, p.DissType)
			require.NoError(t, err)
			assertMatchesFixture(t, c.Path("testdata", fixture.ArtifactDissipator), size, diss[0])
		})
	}
}

func assertMatchesFixture(t *testing.T, path string, size int, got *sparse.CSR) {
	t.Helper()
	want, err := fixture.LoadFile(path, size)
	require.NoError(t, err)

	diff, err := sparse.DiffNorm(want, got)
	require.NoError(t, err)
	require.Less(t, diff, referenceTol, "fixture %s", path)
}
