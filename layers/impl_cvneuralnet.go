// SPDX-License-Identifier: MIT
// Package: varqc/layers
//
// impl_cvneuralnet.go — continuous-variable neural-net layer constructors.
//
// Canonical model (per layer, over M modes):
//   1. interferometer pass with (Theta1, Phi1, Varphi1)
//   2. Squeezing(R[i], PhiR[i]) on every mode
//   3. interferometer pass with (Theta2, Phi2, Varphi2)
//   4. Displacement(A[i], PhiA[i]) on every mode
//   5. Kerr(Kerr[i]) nonlinearity on every mode
//
// Contract:
//   - Interferometer angle arrays have length K = M(M-1)/2; per-mode
//     arrays length M; Varphi1/Varphi2 length M or M-1 (last mode then
//     receives no output rotation). Violations → ErrShape before any
//     emission.
//   - Mesh and beamsplitter-convention selectors come from WithMesh /
//     WithBeamsplitter and apply to both passes; traced markers are
//     rejected by the interferometer with ErrStructuralParameter.
//   - Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   - Pure function of weights, wires, and options.
//
// Complexity:
//   - O(M²) gate emissions per layer, O(L·M²) for the repeated form.

package layers

import (
	"fmt"

	"github.com/katalvlaran/varqc/circuit"
	"github.com/katalvlaran/varqc/interferometer"
)

// CVWeights groups the eleven parameter arrays of one CV neural-net layer.
// For M modes, K below denotes M(M-1)/2.
type CVWeights struct {
	// Theta1, Phi1 are the first interferometer's transmittivity and phase
	// angles, length K each; Varphi1 its output rotations, length M or M-1.
	Theta1, Phi1, Varphi1 []float64

	// R, PhiR are squeezing amounts and angles, length M each.
	R, PhiR []float64

	// Theta2, Phi2, Varphi2 parametrize the second interferometer.
	Theta2, Phi2, Varphi2 []float64

	// A, PhiA are displacement magnitudes and angles, length M each.
	A, PhiA []float64

	// Kerr holds the per-mode Kerr parameters, length M.
	Kerr []float64
}

// CVLayersWeights stacks L layers of CVWeights: each field carries one row
// per layer, and all eleven fields must share the same leading length L.
type CVLayersWeights struct {
	Theta1, Phi1, Varphi1 [][]float64
	R, PhiR               [][]float64
	Theta2, Phi2, Varphi2 [][]float64
	A, PhiA               [][]float64
	Kerr                  [][]float64
}

// Layers reports the leading layer dimension L shared by all eleven
// tensors, or an ErrShape-wrapped error if they disagree.
func (w CVLayersWeights) Layers() (int, error) {
	l := len(w.Theta1)
	fields := []struct {
		name string
		rows int
	}{
		{"Phi1", len(w.Phi1)}, {"Varphi1", len(w.Varphi1)},
		{"R", len(w.R)}, {"PhiR", len(w.PhiR)},
		{"Theta2", len(w.Theta2)}, {"Phi2", len(w.Phi2)}, {"Varphi2", len(w.Varphi2)},
		{"A", len(w.A)}, {"PhiA", len(w.PhiA)}, {"Kerr", len(w.Kerr)},
	}
	for _, f := range fields {
		if f.rows != l {
			return 0, fmt.Errorf("%s has %d layers, Theta1 has %d: %w", f.name, f.rows, l, ErrShape)
		}
	}

	return l, nil
}

// layer extracts the l-th CVWeights slice. Callers must have checked l
// against Layers().
func (w CVLayersWeights) layer(l int) CVWeights {
	return CVWeights{
		Theta1: w.Theta1[l], Phi1: w.Phi1[l], Varphi1: w.Varphi1[l],
		R: w.R[l], PhiR: w.PhiR[l],
		Theta2: w.Theta2[l], Phi2: w.Phi2[l], Varphi2: w.Varphi2[l],
		A: w.A[l], PhiA: w.PhiA[l],
		Kerr: w.Kerr[l],
	}
}

// CVNeuralNetLayer appends one continuous-variable neural-net layer to c:
// interferometer, squeezing, interferometer, displacement, Kerr.
func CVNeuralNetLayer(c *circuit.Circuit, w CVWeights, wires []circuit.Wire, opts ...LayerOption) error {
	cfg := newLayerConfig(opts...)

	if err := validateCVLayer(methodCVNeuralNetLayer, c, w, len(wires)); err != nil {
		return err
	}

	return cvNeuralNetLayer(methodCVNeuralNetLayer, c, cfg, w, wires)
}

// CVNeuralNetLayers appends one CV neural-net layer per leading row of the
// eleven weight tensors. All L layer slices are validated before the first
// gate of the first layer is emitted.
func CVNeuralNetLayers(c *circuit.Circuit, w CVLayersWeights, wires []circuit.Wire, opts ...LayerOption) error {
	cfg := newLayerConfig(opts...)

	nLayers, err := w.Layers()
	if err != nil {
		return fmt.Errorf("%s: %w", methodCVNeuralNetLayers, err)
	}

	for l := 0; l < nLayers; l++ {
		if err = validateCVLayer(methodCVNeuralNetLayers, c, w.layer(l), len(wires)); err != nil {
			return fmt.Errorf("layer %d: %w", l, err)
		}
	}

	for l := 0; l < nLayers; l++ {
		if err = cvNeuralNetLayer(methodCVNeuralNetLayers, c, cfg, w.layer(l), wires); err != nil {
			return fmt.Errorf("layer %d: %w", l, err)
		}
	}

	return nil
}

// validateCVLayer checks all eleven per-layer shapes against the mode
// count without emitting anything.
func validateCVLayer(method string, c *circuit.Circuit, w CVWeights, modes int) error {
	if c == nil {
		return fmt.Errorf("%s: %w", method, ErrNilCircuit)
	}
	if modes < 1 {
		return fmt.Errorf("%s: need at least 1 mode, got %d: %w", method, modes, ErrShape)
	}

	k := modes * (modes - 1) / 2
	angle := []struct {
		name string
		got  int
	}{
		{"Theta1", len(w.Theta1)}, {"Phi1", len(w.Phi1)},
		{"Theta2", len(w.Theta2)}, {"Phi2", len(w.Phi2)},
	}
	for _, f := range angle {
		if f.got != k {
			return fmt.Errorf("%s: %s length %d, want %d: %w", method, f.name, f.got, k, ErrShape)
		}
	}

	perMode := []struct {
		name string
		got  int
	}{
		{"R", len(w.R)}, {"PhiR", len(w.PhiR)},
		{"A", len(w.A)}, {"PhiA", len(w.PhiA)},
		{"Kerr", len(w.Kerr)},
	}
	for _, f := range perMode {
		if f.got != modes {
			return fmt.Errorf("%s: %s length %d, want %d: %w", method, f.name, f.got, modes, ErrShape)
		}
	}

	// Output rotations follow the interferometer contract: M or M-1.
	for _, f := range []struct {
		name string
		got  int
	}{
		{"Varphi1", len(w.Varphi1)}, {"Varphi2", len(w.Varphi2)},
	} {
		if f.got != modes && f.got != modes-1 {
			return fmt.Errorf("%s: %s length %d, want %d or %d: %w",
				method, f.name, f.got, modes, modes-1, ErrShape)
		}
	}

	return nil
}

// cvNeuralNetLayer emits one validated layer, stages 1–5 in order.
func cvNeuralNetLayer(method string, c *circuit.Circuit, cfg layerConfig, w CVWeights, wires []circuit.Wire) error {
	ifmOpts := interferometer.Options{Mesh: cfg.mesh, Beamsplitter: cfg.beamsplitter}

	if err := interferometer.Apply(c, w.Theta1, w.Phi1, w.Varphi1, wires, &ifmOpts); err != nil {
		return fmt.Errorf("%s: first interferometer: %w", method, err)
	}

	for i, wire := range wires {
		if err := c.Apply(circuit.Squeezing, []float64{w.R[i], w.PhiR[i]}, []circuit.Wire{wire}); err != nil {
			return fmt.Errorf("%s: Squeezing(wire %v): %w", method, wire, err)
		}
	}

	if err := interferometer.Apply(c, w.Theta2, w.Phi2, w.Varphi2, wires, &ifmOpts); err != nil {
		return fmt.Errorf("%s: second interferometer: %w", method, err)
	}

	for i, wire := range wires {
		if err := c.Apply(circuit.Displacement, []float64{w.A[i], w.PhiA[i]}, []circuit.Wire{wire}); err != nil {
			return fmt.Errorf("%s: Displacement(wire %v): %w", method, wire, err)
		}
	}

	for i, wire := range wires {
		if err := c.Apply(circuit.Kerr, []float64{w.Kerr[i]}, []circuit.Wire{wire}); err != nil {
			return fmt.Errorf("%s: Kerr(wire %v): %w", method, wire, err)
		}
	}

	return nil
}
