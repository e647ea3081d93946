// SPDX-License-Identifier: MIT
// Package: varqc/layers
//
// impl_random.go — stochastic random-layer constructors.
//
// Canonical model:
//   - Consume a flat weight vector left to right. At each step draw
//     u ∈ [0,1): if u > ratioImprim, emit one single-wire rotation
//     (gate kind uniform over the palette, target wire uniform over the
//     wire set) parametrized by the next unconsumed weight, advancing the
//     consumption counter; otherwise emit one parameterless imprimitive on
//     the first two entries of a uniform random permutation of the wires,
//     consuming nothing.
//   - Termination: the rotation branch is the only one advancing the
//     counter and fires with probability 1-ratioImprim > 0, so the loop
//     terminates with probability one. ratioImprim == 1 is rejected up
//     front (ErrInvalidRatio) precisely because it voids that argument.
//
// Contract:
//   - len(wires) ≥ 2 (else ErrInsufficientWires).
//   - ratioImprim ∈ [0,1) (else ErrInvalidRatio).
//   - cfg.rng non-nil (else ErrNeedRandSource): randomness is always
//     injected, never global.
//   - Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   - Reproducible per seed: draw order per step is fixed — branch draw,
//     then gate-kind draw and wire draw (rotation) or permutation draw
//     (imprimitive).
//
// Complexity:
//   - Expected O(K/(1-ratioImprim)) gate emissions for K weights.

package layers

import (
	"fmt"

	"github.com/katalvlaran/varqc/circuit"
)

// RandomLayer appends one layer of randomly placed gates to c, consuming
// every entry of weights exactly once as a rotation angle.
//
// Gate kinds are drawn from the rotation palette (WithRotations, default
// RX/RY/RZ with equal frequency); the imprimitive (WithImprimitive,
// default CNOT) intersperses with probability ratioImprim
// (WithRatioImprim, default 0.3) and consumes no weights. An RNG must be
// supplied via WithSeed or WithRand.
func RandomLayer(c *circuit.Circuit, weights []float64, wires []circuit.Wire, opts ...LayerOption) error {
	cfg := newLayerConfig(opts...)

	if err := validateRandomLayer(methodRandomLayer, c, cfg, wires); err != nil {
		return err
	}

	return randomLayer(methodRandomLayer, c, cfg, weights, wires)
}

// RandomLayers appends one RandomLayer per row of weights (shape (L, K)),
// sharing one configuration and one RNG stream across all layers.
func RandomLayers(c *circuit.Circuit, weights [][]float64, wires []circuit.Wire, opts ...LayerOption) error {
	cfg := newLayerConfig(opts...)

	if err := validateRandomLayer(methodRandomLayers, c, cfg, wires); err != nil {
		return err
	}

	for l := range weights {
		if err := randomLayer(methodRandomLayers, c, cfg, weights[l], wires); err != nil {
			return fmt.Errorf("layer %d: %w", l, err)
		}
	}

	return nil
}

// validateRandomLayer checks the stochastic preconditions without emitting
// anything: non-nil tape, ≥2 wires, ratio in [0,1), RNG present.
func validateRandomLayer(method string, c *circuit.Circuit, cfg layerConfig, wires []circuit.Wire) error {
	if c == nil {
		return fmt.Errorf("%s: %w", method, ErrNilCircuit)
	}
	if err := validateWires(method, len(wires)); err != nil {
		return err
	}
	if err := validateRatio(method, cfg.ratioImprim); err != nil {
		return err
	}

	return validateRNG(method, cfg.rng)
}

// randomLayer emits one validated layer, consuming weights left to right.
func randomLayer(method string, c *circuit.Circuit, cfg layerConfig, weights []float64, wires []circuit.Wire) error {
	rng := cfg.rng

	i := 0 // consumption counter over weights
	for i < len(weights) {
		if rng.Float64() > cfg.ratioImprim {
			// Rotation branch: consumes weights[i], advances the counter.
			gate := cfg.rotations[rng.Intn(len(cfg.rotations))]
			wire := wires[rng.Intn(len(wires))]
			if err := c.Apply(gate, weights[i:i+1], []circuit.Wire{wire}); err != nil {
				return fmt.Errorf("%s: %s(wire %v): %w", method, gate.Name, wire, err)
			}
			i++
		} else {
			// Imprimitive branch: consumes nothing, counter untouched.
			perm := rng.Perm(len(wires))
			pair := []circuit.Wire{wires[perm[0]], wires[perm[1]]}
			if err := c.Apply(cfg.imprimitive, nil, pair); err != nil {
				return fmt.Errorf("%s: %s(wires %v): %w", method, cfg.imprimitive.Name, pair, err)
			}
		}
	}

	return nil
}
