// SPDX-License-Identifier: MIT

package dimer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned for out-of-domain or non-finite numeric
	// input and for unsupported drive/dissipation tags.
	ErrInvalidParameter = errors.New("dimer: invalid parameter")

	// ErrDimensionMismatch is returned when operators built for different
	// particle numbers are composed together.
	ErrDimensionMismatch = errors.New("dimer: dimension mismatch")
)

// dimerErrorf wraps err with the public entry point name.
func dimerErrorf(tag string, err error) error {
	return fmt.Errorf("dimer.%s: %w", tag, err)
}

// invalidf builds an ErrInvalidParameter with a description of the offending value.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}
