package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonFiniteInput reports that a sample block contains NaN or Inf.
// It is the only error condition raised by the analysis pipeline; every
// stage rejects such input before doing any transform work.
var ErrNonFiniteInput = errors.New("input contains a non-finite value")

// ValidateFinite returns ErrNonFiniteInput (wrapped with the offending
// index) if any sample is NaN or Inf, nil otherwise.
func ValidateFinite(samples []float32) error {
	for i, v := range samples {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %v at index %d", ErrNonFiniteInput, v, i)
		}
	}

	return nil
}
