// SPDX-License-Identifier: MIT

package dimer_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/oqs/dimer"
	"github.com/katalvlaran/oqs/sparse"
	"github.com/stretchr/testify/require"
)

// TestConcurrentBuilds builds and evaluates models from many goroutines and
// checks every result equals the sequential one. Run with -race.
func TestConcurrentBuilds(t *testing.T) {
	ref, err := dimer.Build(squareParams())
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	diffs := make(chan float64, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := dimer.Build(squareParams())
			if err != nil {
				errs <- err
				return
			}
			// Shared read-only use of the reference model.
			_ = ref.DrivingFuncs[0](float64(w))
			d, err := sparse.DiffNorm(ref.Hamiltonian, m.Hamiltonian)
			if err != nil {
				errs <- err
				return
			}
			diffs <- d
		}()
	}
	wg.Wait()
	close(errs)
	close(diffs)

	for err := range errs {
		require.NoError(t, err)
	}
	for d := range diffs {
		require.Zero(t, d)
	}
}
