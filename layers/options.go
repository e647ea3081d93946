// SPDX-License-Identifier: MIT
// Package: varqc/layers
//
// options.go — functional options for the layers package.
//
// Contract (strict):
//   • Options are functional (type LayerOption func(*layerConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (programmer errors). Layer constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through layerConfig.
//
// Note on WithRatioImprim: the *value* of the ratio is a runtime input, so
// out-of-range ratios surface as ErrInvalidRatio from the layer constructor
// rather than a panic here (only structurally meaningless option inputs
// like nil RNGs or empty palettes panic).

package layers

import (
	"math/rand" // RNG source for stochastic layers

	"github.com/katalvlaran/varqc/circuit"
	"github.com/katalvlaran/varqc/interferometer"
)

// LayerOption customizes a layer constructor by mutating a layerConfig
// instance before any gate is emitted.
// Complexity: applying N options costs O(N) time, O(1) space.
type LayerOption func(*layerConfig)

// WithRand provides an explicit RNG for stochastic layers.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) LayerOption {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("layers: WithRand(nil)")
	}
	return func(c *layerConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) LayerOption {
	return func(c *layerConfig) {
		// Seeded source → reproducible gate placement.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithImprimitive sets the two-wire entangling gate shared by all layers of
// a constructor. Panics unless the gate is a parameterless two-wire gate
// (the imprimitive contract: fixed entangler, no trainable parameters).
func WithImprimitive(g circuit.Gate) LayerOption {
	if g.Name == "" || g.Arity != 2 || g.Params != 0 {
		panic("layers: WithImprimitive requires a parameterless two-wire gate")
	}
	return func(c *layerConfig) {
		c.imprimitive = g
	}
}

// WithRotations sets the rotation-gate palette sampled by RandomLayer(s).
// The frequency of a gate in the palette determines how often it is drawn.
// Panics on an empty palette or on any gate that is not a single-wire,
// single-parameter rotation. The palette is copied; later mutation of the
// caller's slice has no effect.
func WithRotations(gates ...circuit.Gate) LayerOption {
	if len(gates) == 0 {
		panic("layers: WithRotations requires at least one gate")
	}
	for _, g := range gates {
		if g.Name == "" || g.Arity != 1 || g.Params != 1 {
			panic("layers: WithRotations requires single-wire single-parameter gates")
		}
	}
	palette := append([]circuit.Gate(nil), gates...)
	return func(c *layerConfig) {
		c.rotations = palette
	}
}

// WithRatioImprim sets the probability threshold for emitting an
// imprimitive gate in RandomLayer(s). The admissible domain is [0,1);
// out-of-range values are rejected at layer construction with
// ErrInvalidRatio (see package doc for why 1 is excluded).
func WithRatioImprim(p float64) LayerOption {
	return func(c *layerConfig) {
		c.ratioImprim = p
	}
}

// WithRanges sets the per-layer range hyperparameter sequence consumed by
// StronglyEntanglingLayers: layer l entangles wire i with wire
// (i+ranges[l]) mod n. When supplied, its length must equal the layer
// count L (else ErrShape); when omitted, every layer uses DefaultRange.
func WithRanges(ranges ...int) LayerOption {
	rs := append([]int(nil), ranges...)
	return func(c *layerConfig) {
		c.ranges = rs
	}
}

// WithMesh forwards a mesh selector to both interferometer passes of the
// CV neural-net layer. Traced markers are rejected by the interferometer
// itself with ErrStructuralParameter.
func WithMesh(m interferometer.MeshParam) LayerOption {
	return func(c *layerConfig) {
		c.mesh = m
	}
}

// WithBeamsplitter forwards a beamsplitter-convention selector to both
// interferometer passes of the CV neural-net layer.
func WithBeamsplitter(conv interferometer.ConventionParam) LayerOption {
	return func(c *layerConfig) {
		c.beamsplitter = conv
	}
}
