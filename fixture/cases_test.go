// SPDX-License-Identifier: MIT

package fixture_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oqs/dimer"
	"github.com/katalvlaran/oqs/fixture"
)

func TestDecodeCases(t *testing.T) {
	src := `
cases:
  - name: harmonic
    sys_size: 4
    params:
      num_particles: 3
      u: 0.5
      j: 1
      drv_type: 0
      drv_ampl: 1.5
      drv_freq: 2
      diss_type: 0
      diss_gamma: 0.05
`
	cases, err := fixture.DecodeCases(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, cases, 1)

	c := cases[0]
	assert.Equal(t, "harmonic", c.Name)
	assert.Equal(t, 4, c.SysSize)
	assert.Equal(t, dimer.DriveHarmonic, c.Params.DrvType)
	assert.Equal(t, dimer.DissipationDephasing, c.Params.DissType)
	assert.Equal(t, 2.0, c.Params.DrvFreq)
	assert.Equal(t,
		filepath.Join("dir", "diss_0_mtx_np(3)_diss(0_0.0500)_prm(0.0000_0.5000_1.0000)_drv(0_1.5000_2.0000_0.0000).txt"),
		c.Path("dir", fixture.ArtifactDissipator))
}

func TestDecodeCases_Errors(t *testing.T) {
	_, err := fixture.DecodeCases(strings.NewReader("cases:\n  - name: x\n    params:\n      bogus: 1\n"))
	require.Error(t, err, "unknown keys are rejected")

	_, err = fixture.DecodeCases(strings.NewReader("cases:\n  - sys_size: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")

	cases, err := fixture.DecodeCases(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestLoadCases_Reference(t *testing.T) {
	cases, err := fixture.LoadCases("../dimer/testdata/cases.yaml")
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, "square_drive", cases[0].Name)
	assert.Equal(t, dimer.DriveSquare, cases[0].Params.DrvType)
	assert.Equal(t, 11, cases[1].SysSize)
}
