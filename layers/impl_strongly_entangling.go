// SPDX-License-Identifier: MIT
// Package: varqc/layers
//
// impl_strongly_entangling.go — strongly entangling layer constructors.
//
// Canonical model:
//   - Single layer: one 3-angle Rot per wire from row i of the weight
//     matrix, then one imprimitive per wire i coupling positions
//     (i, (i+r) mod n). r is the layer's range hyperparameter.
//   - Repeated form: one single layer per leading row of a 3-D weight
//     tensor, range drawn per layer from the configured sequence
//     (default all ones → nearest-neighbor cascades), imprimitive shared.
//
// Contract:
//   - len(wires) ≥ 2 (else ErrInsufficientWires).
//   - weights shape (len(wires), 3) per layer (else ErrShape).
//   - Returns only sentinel errors; never panics at runtime.
//   - Nothing is emitted for a layer that fails validation; the repeated
//     form validates every layer slice before emitting the first gate.
//
// Determinism:
//   - Pure function of (weights, wires, r, options): stable rotation order
//     i asc, then stable imprimitive order i asc.
//
// Complexity:
//   - Single layer: O(n) gate emissions, O(1) extra space.
//   - Repeated: O(L·n).

package layers

import (
	"fmt"

	"github.com/katalvlaran/varqc/circuit"
)

// StronglyEntanglingLayer appends one strongly entangling layer to c:
// a 3-angle Rot on every wire followed by a cascade of two-wire
// imprimitive gates with range r.
//
// weights must have shape (len(wires), 3): row i parametrizes the Rot on
// wires[i]. The second operand of the i-th imprimitive is the wire at
// position (i+r) mod len(wires); r may be any integer (negative ranges
// wrap the same way).
func StronglyEntanglingLayer(c *circuit.Circuit, weights [][]float64, wires []circuit.Wire, r int, opts ...LayerOption) error {
	cfg := newLayerConfig(opts...)

	if err := validateEntanglingLayer(methodStronglyEntanglingLayer, c, weights, wires); err != nil {
		return err
	}

	return stronglyEntanglingLayer(methodStronglyEntanglingLayer, c, cfg, weights, wires, r)
}

// StronglyEntanglingLayers appends one strongly entangling layer per
// leading row of weights (shape (L, len(wires), 3)).
//
// The per-layer range sequence comes from WithRanges and must then have
// length L; without it every layer uses DefaultRange (nearest neighbor).
// The imprimitive gate (WithImprimitive, default CNOT) is shared across
// all layers. All L layer slices are validated before the first gate of
// the first layer is emitted.
func StronglyEntanglingLayers(c *circuit.Circuit, weights [][][]float64, wires []circuit.Wire, opts ...LayerOption) error {
	cfg := newLayerConfig(opts...)

	// Resolve the per-layer range sequence against the layer count.
	ranges := cfg.ranges
	if ranges == nil {
		ranges = make([]int, len(weights))
		for l := range ranges {
			ranges[l] = DefaultRange
		}
	} else if len(ranges) != len(weights) {
		return fmt.Errorf("%s: %d ranges for %d layers: %w",
			methodStronglyEntanglingLayers, len(ranges), len(weights), ErrShape)
	}

	// Validate every layer slice up front: a shape error in layer l must
	// not leave layers 0..l-1 already on the tape.
	for l := range weights {
		if err := validateEntanglingLayer(methodStronglyEntanglingLayers, c, weights[l], wires); err != nil {
			return fmt.Errorf("layer %d: %w", l, err)
		}
	}

	for l := range weights {
		if err := stronglyEntanglingLayer(methodStronglyEntanglingLayers, c, cfg, weights[l], wires, ranges[l]); err != nil {
			return fmt.Errorf("layer %d: %w", l, err)
		}
	}

	return nil
}

// validateEntanglingLayer checks the single-layer preconditions without
// emitting anything: non-nil tape, ≥2 wires, weight shape (n, 3).
func validateEntanglingLayer(method string, c *circuit.Circuit, weights [][]float64, wires []circuit.Wire) error {
	if c == nil {
		return fmt.Errorf("%s: %w", method, ErrNilCircuit)
	}
	if err := validateWires(method, len(wires)); err != nil {
		return err
	}
	if len(weights) != len(wires) {
		return fmt.Errorf("%s: %d weight rows for %d wires: %w",
			method, len(weights), len(wires), ErrShape)
	}
	for i := range weights {
		if len(weights[i]) != RotAngleCount {
			return fmt.Errorf("%s: weight row %d has %d angles, want %d: %w",
				method, i, len(weights[i]), RotAngleCount, ErrShape)
		}
	}

	return nil
}

// stronglyEntanglingLayer emits one validated layer.
// Emission order: Rot on wires[0..n-1], then imprimitives i = 0..n-1.
func stronglyEntanglingLayer(method string, c *circuit.Circuit, cfg layerConfig, weights [][]float64, wires []circuit.Wire, r int) error {
	for i, wire := range wires {
		if err := c.Apply(circuit.Rot, weights[i], []circuit.Wire{wire}); err != nil {
			return fmt.Errorf("%s: Rot(wire %v): %w", method, wire, err)
		}
	}

	n := len(wires)
	for i := 0; i < n; i++ {
		// Euclidean modulus: negative ranges wrap into [0,n).
		j := ((i+r)%n + n) % n
		pair := []circuit.Wire{wires[i], wires[j]}
		if err := c.Apply(cfg.imprimitive, nil, pair); err != nil {
			return fmt.Errorf("%s: %s(wires %v): %w", method, cfg.imprimitive.Name, pair, err)
		}
	}

	return nil
}
