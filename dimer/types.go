// SPDX-License-Identifier: MIT

package dimer

import "fmt"

// DriveType selects the waveform of the periodic drive.
// The integer values are the wire encoding used in parameter files and
// fixture names; do not renumber.
type DriveType int

const (
	// DriveHarmonic is f(t) = A·sin(ωt + φ).
	DriveHarmonic DriveType = 0

	// DriveSquare is +A on the first half of each period and −A on the second.
	DriveSquare DriveType = 1
)

// String returns the lowercase waveform name.
func (d DriveType) String() string {
	switch d {
	case DriveHarmonic:
		return "harmonic"
	case DriveSquare:
		return "square"
	default:
		return fmt.Sprintf("DriveType(%d)", int(d))
	}
}

// Valid reports whether d is a supported waveform.
func (d DriveType) Valid() bool {
	return d == DriveHarmonic || d == DriveSquare
}

// ParseDriveType converts a wire tag into a DriveType.
func ParseDriveType(tag int) (DriveType, error) {
	d := DriveType(tag)
	if !d.Valid() {
		return 0, invalidf("drive type %d", tag)
	}

	return d, nil
}

// DissipationType selects the Lindblad jump operator.
// Integer values are the wire encoding; do not renumber.
type DissipationType int

const (
	// DissipationDephasing is L = b1†b1 − b2†b2 (diagonal, Hermitian).
	DissipationDephasing DissipationType = 0

	// DissipationPhaseLocking is L = (b1† + b2†)(b1 − b2), which pumps the
	// dimer towards the symmetric (in-phase) state.
	DissipationPhaseLocking DissipationType = 1
)

// String returns the lowercase channel name.
func (d DissipationType) String() string {
	switch d {
	case DissipationDephasing:
		return "dephasing"
	case DissipationPhaseLocking:
		return "phase-locking"
	default:
		return fmt.Sprintf("DissipationType(%d)", int(d))
	}
}

// Valid reports whether d is a supported dissipation channel.
func (d DissipationType) Valid() bool {
	return d == DissipationDephasing || d == DissipationPhaseLocking
}

// ParseDissipationType converts a wire tag into a DissipationType.
func ParseDissipationType(tag int) (DissipationType, error) {
	d := DissipationType(tag)
	if !d.Valid() {
		return 0, invalidf("dissipation type %d", tag)
	}

	return d, nil
}

// DrivingFunction is the scalar coefficient f(t) multiplying a driving operator.
type DrivingFunction func(t float64) float64

// Params is the full physical parameter set of one dimer run. Field tags
// follow the snake_case wire names used by parameter files and fixtures.
type Params struct {
	NumParticles int             `koanf:"num_particles" yaml:"num_particles"`
	E            float64         `koanf:"e" yaml:"e"`
	U            float64         `koanf:"u" yaml:"u"`
	J            float64         `koanf:"j" yaml:"j"`
	DrvType      DriveType       `koanf:"drv_type" yaml:"drv_type"`
	DrvAmpl      float64         `koanf:"drv_ampl" yaml:"drv_ampl"`
	DrvFreq      float64         `koanf:"drv_freq" yaml:"drv_freq"`
	DrvPhas      float64         `koanf:"drv_phas" yaml:"drv_phas"`
	DissType     DissipationType `koanf:"diss_type" yaml:"diss_type"`
	DissGamma    float64         `koanf:"diss_gamma" yaml:"diss_gamma"` // consumed by the solver only
}
