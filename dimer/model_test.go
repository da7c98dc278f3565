// SPDX-License-Identifier: MIT

package dimer_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/oqs/dimer"
	"github.com/katalvlaran/oqs/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareParams() dimer.Params {
	return dimer.Params{
		NumParticles: 10,
		E:            0,
		U:            0.5,
		J:            1,
		DrvType:      dimer.DriveSquare,
		DrvAmpl:      3.4,
		DrvFreq:      1,
		DrvPhas:      0,
		DissType:     dimer.DissipationPhaseLocking,
		DissGamma:    0.1,
	}
}

// TestBuild checks the composed model is dimensionally consistent.
func TestBuild(t *testing.T) {
	m, err := dimer.Build(squareParams())
	require.NoError(t, err)

	assert.Equal(t, 11, m.Size)
	assert.Equal(t, 11, m.Hamiltonian.Rows())
	require.Len(t, m.Driving, 1)
	require.Len(t, m.DrivingFuncs, 1)
	require.Len(t, m.Dissipators, 1)
	assert.Equal(t, []float64{2 * math.Pi}, m.Periods)
	assert.Equal(t, 3.4, m.DrivingFuncs[0](0))
	assert.Equal(t, 0.1, m.Params.DissGamma)
	require.NoError(t, m.Validate())
}

// TestParamsValidate walks every guarded field.
func TestParamsValidate(t *testing.T) {
	require.NoError(t, squareParams().Validate())

	for _, tc := range []struct {
		name   string
		mutate func(p *dimer.Params)
	}{
		{"negative N", func(p *dimer.Params) { p.NumParticles = -1 }},
		{"NaN E", func(p *dimer.Params) { p.E = math.NaN() }},
		{"Inf U", func(p *dimer.Params) { p.U = math.Inf(1) }},
		{"NaN J", func(p *dimer.Params) { p.J = math.NaN() }},
		{"Inf amplitude", func(p *dimer.Params) { p.DrvAmpl = math.Inf(-1) }},
		{"NaN phase", func(p *dimer.Params) { p.DrvPhas = math.NaN() }},
		{"zero frequency", func(p *dimer.Params) { p.DrvFreq = 0 }},
		{"negative square frequency", func(p *dimer.Params) { p.DrvFreq = -1 }},
		{"unknown drive", func(p *dimer.Params) { p.DrvType = 9 }},
		{"unknown dissipation", func(p *dimer.Params) { p.DissType = 9 }},
		{"negative gamma", func(p *dimer.Params) { p.DissGamma = -0.1 }},
		{"NaN gamma", func(p *dimer.Params) { p.DissGamma = math.NaN() }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := squareParams()
			tc.mutate(&p)
			require.ErrorIs(t, p.Validate(), dimer.ErrInvalidParameter)

			_, err := dimer.Build(p)
			require.ErrorIs(t, err, dimer.ErrInvalidParameter)
		})
	}
}

// TestModelValidateMismatch composes operators built for different N.
func TestModelValidateMismatch(t *testing.T) {
	m, err := dimer.Build(squareParams())
	require.NoError(t, err)

	other, err := dimer.Hamiltonian(5, 0, 0.5, 1)
	require.NoError(t, err)
	m.Hamiltonian = other
	require.ErrorIs(t, m.Validate(), dimer.ErrDimensionMismatch)

	m, err = dimer.Build(squareParams())
	require.NoError(t, err)
	m.DrivingFuncs = nil
	require.ErrorIs(t, m.Validate(), dimer.ErrDimensionMismatch)
}

// TestCheckDimensions covers nil and rectangular operators.
func TestCheckDimensions(t *testing.T) {
	h, err := dimer.Hamiltonian(3, 0, 1, 1)
	require.NoError(t, err)
	require.NoError(t, dimer.CheckDimensions(4, h))
	require.ErrorIs(t, dimer.CheckDimensions(5, h), dimer.ErrDimensionMismatch)
	require.ErrorIs(t, dimer.CheckDimensions(4, h, nil), dimer.ErrDimensionMismatch)

	rect, err := sparse.NewZeros(4, 3)
	require.NoError(t, err)
	require.ErrorIs(t, dimer.CheckDimensions(4, rect), dimer.ErrDimensionMismatch)
}
