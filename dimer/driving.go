// SPDX-License-Identifier: MIT

package dimer

import "math"

// DrivingFunctions returns the scalar drive f(t) for each operator returned
// by DrivingHamiltonians (one for the dimer).
//
//   - DriveHarmonic: f(t) = ampl·sin(freq·t + phase).
//   - DriveSquare:   with P = 2π/freq, f(t) = ampl when (t mod P) < P/2,
//     otherwise −ampl. t mod P is reduced into [0, P), so negative and very
//     large t are handled. The phase is ignored by the square wave.
//
// The returned closures capture their parameters by value and are safe to
// call concurrently. Unknown kinds, non-finite parameters, and a zero (or,
// for the square wave, negative) frequency fail with ErrInvalidParameter.
func DrivingFunctions(kind DriveType, ampl, freq, phase float64) ([]DrivingFunction, error) {
	for _, c := range []struct {
		name string
		v    float64
	}{{"amplitude", ampl}, {"phase", phase}} {
		if err := checkFinite(c.name, c.v); err != nil {
			return nil, dimerErrorf("DrivingFunctions", err)
		}
	}
	if err := checkFrequency(freq); err != nil {
		return nil, dimerErrorf("DrivingFunctions", err)
	}

	switch kind {
	case DriveHarmonic:
		return []DrivingFunction{harmonic(ampl, freq, phase)}, nil
	case DriveSquare:
		if freq < 0 {
			return nil, dimerErrorf("DrivingFunctions", invalidf("square drive needs a positive frequency, got %v", freq))
		}
		return []DrivingFunction{square(ampl, freq)}, nil
	default:
		return nil, dimerErrorf("DrivingFunctions", invalidf("drive type %d", int(kind)))
	}
}

func harmonic(ampl, freq, phase float64) DrivingFunction {
	return func(t float64) float64 {
		return ampl * math.Sin(freq*t+phase)
	}
}

func square(ampl, freq float64) DrivingFunction {
	period := 2.0 * math.Pi / freq
	half := period * 0.5

	return func(t float64) float64 {
		m := math.Mod(t, period)
		if m < 0 {
			m += period
		}
		if m < half {
			return ampl
		}
		return -ampl
	}
}

// Periods returns the fundamental period 2π/|freq| of every drive channel
// (one for the dimer). The period is always positive. Zero or non-finite
// frequencies fail with ErrInvalidParameter.
func Periods(freq float64) ([]float64, error) {
	if err := checkFrequency(freq); err != nil {
		return nil, dimerErrorf("Periods", err)
	}

	return []float64{2.0 * math.Pi / math.Abs(freq)}, nil
}

// Sample evaluates f at num evenly spaced points on [0, period], both ends
// included (the last point is exactly period). num must be >= 2.
func Sample(f DrivingFunction, period float64, num int) (times, values []float64, err error) {
	if f == nil {
		return nil, nil, dimerErrorf("Sample", invalidf("nil driving function"))
	}
	if err = checkFinite("period", period); err != nil {
		return nil, nil, dimerErrorf("Sample", err)
	}
	if num < 2 {
		return nil, nil, dimerErrorf("Sample", invalidf("need at least 2 samples, got %d", num))
	}

	step := period / float64(num-1)
	times = make([]float64, num)
	values = make([]float64, num)
	for i := range times {
		times[i] = float64(i) * step
	}
	times[num-1] = period
	for i, t := range times {
		values[i] = f(t)
	}

	return times, values, nil
}
