// SPDX-License-Identifier: MIT
// Package: varqc/layers
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • layerConfig is the single source of truth for all layer knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newLayerConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng          = nil                      (stochastic layers must opt in)
//   • imprimitive  = circuit.CNOT
//   • rotations    = {RX, RY, RZ}             (copied, never shared)
//   • ratioImprim  = DefaultRatioImprim (0.3)
//   • ranges       = nil                      (resolved to all-ones per L)
//   • mesh         = StaticMesh(Rectangular)
//   • beamsplitter = StaticConvention(Standard)

package layers

import (
	"math/rand" // RNG source for stochastic layers

	"github.com/katalvlaran/varqc/circuit"
	"github.com/katalvlaran/varqc/interferometer"
)

// defaultRotations is the immutable default rotation palette. Resolved
// configs receive a fresh copy, so no caller can mutate shared state.
var defaultRotations = []circuit.Gate{circuit.RX, circuit.RY, circuit.RZ}

// layerConfig aggregates all knobs used by layer constructors.
// It is passed by VALUE to implementations (immutable to callers).
type layerConfig struct {
	// RNG for stochastic choices; nil means "no randomness available".
	rng *rand.Rand

	// Two-wire imprimitive gate; parameterless by option contract.
	imprimitive circuit.Gate

	// Rotation palette for the random layer; single-wire single-param gates.
	rotations []circuit.Gate

	// Probability threshold for the imprimitive branch, in [0,1).
	ratioImprim float64

	// Per-layer range sequence for StronglyEntanglingLayers; nil → all ones.
	ranges []int

	// Interferometer selectors forwarded by the CV neural-net layer.
	mesh         interferometer.MeshParam
	beamsplitter interferometer.ConventionParam
}

// newLayerConfig constructs a config with deterministic defaults and applies
// all options in order (last-wins semantics).
// Complexity: O(len(opts)) time, O(1) space beyond the palette copy.
func newLayerConfig(opts ...LayerOption) layerConfig {
	cfg := layerConfig{
		rng:          nil,
		imprimitive:  circuit.CNOT,
		rotations:    append([]circuit.Gate(nil), defaultRotations...),
		ratioImprim:  DefaultRatioImprim,
		ranges:       nil,
		mesh:         interferometer.StaticMesh(interferometer.Rectangular),
		beamsplitter: interferometer.StaticConvention(interferometer.Standard),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	// Return by value to encourage immutability for callers.
	return cfg
}
