// SPDX-License-Identifier: MIT

package dimer

import "math"

// checkFinite rejects NaN and ±Inf.
func checkFinite(name string, x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return invalidf("%s must be finite, got %v", name, x)
	}

	return nil
}

// checkFrequency rejects zero and non-finite drive frequencies.
func checkFrequency(freq float64) error {
	if err := checkFinite("frequency", freq); err != nil {
		return err
	}
	if freq == 0 {
		return invalidf("frequency must be non-zero")
	}

	return nil
}

// Validate checks every field of p against its domain.
// It is the single gate used by Build; the individual builders repeat only
// the checks relevant to their own inputs.
func (p Params) Validate() error {
	if p.NumParticles < 0 {
		return invalidf("num_particles must be >= 0, got %d", p.NumParticles)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"e", p.E}, {"u", p.U}, {"j", p.J},
		{"drv_ampl", p.DrvAmpl}, {"drv_phas", p.DrvPhas},
		{"diss_gamma", p.DissGamma},
	} {
		if err := checkFinite(f.name, f.v); err != nil {
			return err
		}
	}
	if !p.DrvType.Valid() {
		return invalidf("drive type %d", int(p.DrvType))
	}
	if err := checkFrequency(p.DrvFreq); err != nil {
		return err
	}
	if p.DrvType == DriveSquare && p.DrvFreq < 0 {
		return invalidf("square drive needs a positive frequency, got %v", p.DrvFreq)
	}
	if !p.DissType.Valid() {
		return invalidf("dissipation type %d", int(p.DissType))
	}
	if p.DissGamma < 0 {
		return invalidf("diss_gamma must be >= 0, got %v", p.DissGamma)
	}

	return nil
}
