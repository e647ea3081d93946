// Package layers provides validation helpers enforcing the parameter
// contracts of the layer constructors.
//
// Each function returns a wrapped sentinel error when its precondition is
// violated; the method tag becomes the error-context prefix.
package layers

import (
	"fmt"
	"math/rand"
)

// validateWires ensures the wire set admits two-wire imprimitive gates.
// Returns "<Method>: need at least 2 wires, got <n>" wrapping
// ErrInsufficientWires otherwise.
// Complexity: O(1).
func validateWires(method string, n int) error {
	if n < MinImprimitiveWires {
		return fmt.Errorf("%s: need at least %d wires, got %d: %w",
			method, MinImprimitiveWires, n, ErrInsufficientWires)
	}

	return nil
}

// validateRatio enforces p ∈ [MinRatioImprim, MaxRatioImprim).
// The upper bound is exclusive: with p == 1 only the non-consuming
// imprimitive branch could ever fire and the layer loop would not
// terminate. Complexity: O(1).
func validateRatio(method string, p float64) error {
	if p < MinRatioImprim || p >= MaxRatioImprim {
		return fmt.Errorf("%s: ratio_imprim=%v not in [%v,%v): %w",
			method, p, MinRatioImprim, MaxRatioImprim, ErrInvalidRatio)
	}

	return nil
}

// validateRNG ensures a stochastic layer has an injected random source.
// Complexity: O(1).
func validateRNG(method string, rng *rand.Rand) error {
	if rng == nil {
		return fmt.Errorf("%s: rng is required (use WithSeed or WithRand): %w",
			method, ErrNeedRandSource)
	}

	return nil
}
