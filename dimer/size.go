// SPDX-License-Identifier: MIT

package dimer

// SysSize returns the dimension of the fixed-N Fock space: numParticles+1.
// Fails with ErrInvalidParameter for a negative particle number.
func SysSize(numParticles int) (int, error) {
	if numParticles < 0 {
		return 0, dimerErrorf("SysSize", invalidf("num_particles must be >= 0, got %d", numParticles))
	}

	return numParticles + 1, nil
}
