// SPDX-License-Identifier: MIT

package fixture

import "errors"

var (
	// ErrMalformedLine is returned when a fixture line is not a valid triple.
	ErrMalformedLine = errors.New("fixture: malformed line")

	// ErrBadSize is returned when the requested matrix dimension is not positive.
	ErrBadSize = errors.New("fixture: matrix size must be > 0")
)
