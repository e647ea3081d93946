// SPDX-License-Identifier: MIT
// Package: varqc/layers
//
// constants.go — shared constants and method tags (no magic literals).

package layers

// Method tags used as error-context prefixes, one per public constructor.
const (
	methodStronglyEntanglingLayer  = "StronglyEntanglingLayer"
	methodStronglyEntanglingLayers = "StronglyEntanglingLayers"
	methodRandomLayer              = "RandomLayer"
	methodRandomLayers             = "RandomLayers"
	methodCVNeuralNetLayer         = "CVNeuralNetLayer"
	methodCVNeuralNetLayers        = "CVNeuralNetLayers"
)

// Shared numeric domains and defaults.
const (
	// MinImprimitiveWires is the smallest wire set admitting two-wire gates.
	MinImprimitiveWires = 2

	// RotAngleCount is the parameter count of the general Rot gate.
	RotAngleCount = 3

	// DefaultRange is the nearest-neighbor entangling range.
	DefaultRange = 1

	// DefaultRatioImprim is the default imprimitive-to-rotation ratio.
	DefaultRatioImprim = 0.3

	// MinRatioImprim / MaxRatioImprim bound the admissible ratio domain
	// [MinRatioImprim, MaxRatioImprim) — the upper bound is exclusive
	// (see ErrInvalidRatio).
	MinRatioImprim = 0.0
	MaxRatioImprim = 1.0
)
