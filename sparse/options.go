// SPDX-License-Identifier: MIT

// Builder configuration. Options are read once by NewBuilder; a built CSR
// carries no policy. With dropZeros set, Build omits every staged entry
// whose magnitude is at most eps.

package sparse

// Builder defaults.
const (
	// DefaultEpsilon is the magnitude at or below which an entry counts as zero
	// for the drop policy. Exact zero keeps the structure faithful to the
	// formulas that produced it.
	DefaultEpsilon = 0.0

	// DefaultValidateNaNInf rejects NaN/±Inf components on Set/Add.
	DefaultValidateNaNInf = true

	// DefaultDropZeros omits entries with |v| <= eps from the built CSR.
	DefaultDropZeros = true
)

const panicEpsilonInvalid = "sparse: WithEpsilon: eps must be finite, non-negative"

// Option adjusts a Builder's numeric policy.
type Option func(*Options)

// Options is the resolved policy. Callers pass Option values instead.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	dropZeros      bool    // DefaultDropZeros
}

// WithEpsilon sets the drop threshold eps used by the zero-drop policy.
// Panics with a stable message when eps is NaN, ±Inf or negative.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on Set/Add.
// Use only for controlled experiments; kernels downstream assume finite data.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithDropZeros omits entries with |v| <= eps from the built matrix (the default).
func WithDropZeros() Option {
	return func(o *Options) { o.dropZeros = true }
}

// WithKeepZeros keeps explicitly staged zeros as stored entries.
func WithKeepZeros() Option {
	return func(o *Options) { o.dropZeros = false }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		dropZeros:      DefaultDropZeros,
	}
}

// gatherOptions applies opts on top of the defaults, left to right.
// nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
