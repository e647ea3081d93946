package interferometer

import (
	"fmt"

	"github.com/katalvlaran/varqc/circuit"
)

// File-local constants (no magic literals; stable method tags).
const (
	methodPlacements = "Placements"
	methodApply      = "Apply"
)

// Placements — mesh layout without gate emission
//
// Description:
//
//	Computes the ordered sequence of two-mode element placements for an
//	N-wire interferometer under the chosen mesh topology. This is the pure
//	combinatorial core; Apply consumes it to emit gates.
//
// Algorithm Outline:
//
//	Rectangular (Clements et al., depth N):
//	  for column l = 0..N-1:
//	    for adjacent pair position k = 0..N-2:
//	      include (k, k+1) iff (l+k) mod 2 != 1
//	  The parity rule alternates which pairs fire in successive columns,
//	  producing the brick-wall pattern.
//
//	Triangular (Reck et al., depth 2N-3):
//	  for column l = 0..2N-4:
//	    for k = |l+1-(N-1)|, stepping by 2, up to N-2 inclusive:
//	      include (k, k+1)
//
//	Either way the shared element counter assigns Index 0,1,2,... in
//	emission order: a strict monotonic walk over the θ/φ arrays with no
//	repeats and no gaps, totalling exactly N(N-1)/2 placements.
//
// Determinism:
//
//	Pure function of (n, mesh); identical inputs yield identical sequences.
//
// Complexity:
//
//	Time O(N²), space O(N²) for the returned slice.
//
// Errors:
//   - ErrShape           — n < 1.
//   - ErrUnsupportedMesh — mesh is neither Rectangular nor Triangular.
//
// n == 1 yields an empty, non-nil sequence: a single mode needs no
// two-mode elements.
func Placements(n int, mesh Mesh) ([]Placement, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: need at least 1 wire, got %d: %w", methodPlacements, n, ErrShape)
	}

	out := make([]Placement, 0, n*(n-1)/2)
	idx := 0 // shared element counter: θ/φ consumption order

	switch mesh {
	case Rectangular:
		for l := 0; l < n; l++ {
			for k := 0; k < n-1; k++ {
				// Skip even or odd pairs depending on the column.
				if (l+k)%2 != 1 {
					out = append(out, Placement{Layer: l, A: k, B: k + 1, Index: idx})
					idx++
				}
			}
		}
	case Triangular:
		for l := 0; l < 2*n-3; l++ {
			for k := abs(l + 1 - (n - 1)); k < n-1; k += 2 {
				out = append(out, Placement{Layer: l, A: k, B: k + 1, Index: idx})
				idx++
			}
		}
	default:
		return nil, fmt.Errorf("%s: mesh=%d: %w", methodPlacements, int(mesh), ErrUnsupportedMesh)
	}

	return out, nil
}

// Depth reports the column count of the mesh for n wires: n for
// Rectangular, 2n-3 for Triangular (0 for the degenerate n == 1).
// Unknown meshes report -1.
func Depth(n int, mesh Mesh) int {
	if n <= 1 {
		return 0
	}
	switch mesh {
	case Rectangular:
		return n
	case Triangular:
		return 2*n - 3
	default:
		return -1
	}
}

// Apply emits the full interferometer onto the tape: the two-mode element
// mesh over wires, then one output Rotation per entry of varphi.
//
// Contract:
//   - theta, phi: length N(N-1)/2 each (transmittivity / phase angles),
//     consumed in Placement.Index order.
//   - varphi: length N or N-1 output rotation angles; with N-1 the last
//     wire receives no output rotation.
//   - wires: the N target wires; caller ordering defines adjacency.
//   - opts: nil means DefaultOptions(). Traced mesh/convention selectors
//     are rejected before any emission.
//
// N == 1 degenerates to a single Rotation(varphi[0]) on the sole wire.
//
// Errors (all raised before the first gate is emitted):
//   - ErrNilCircuit          — c is nil.
//   - ErrStructuralParameter — traced mesh or convention selector.
//   - ErrUnsupportedMesh     — unrecognized mesh value.
//   - ErrShape               — θ/φ/φ′ length inconsistent with len(wires).
//
// Complexity: O(N²) time, O(N²) transient space for the placement list.
// Deterministic: identical inputs produce identical tapes.
func Apply(c *circuit.Circuit, theta, phi, varphi []float64, wires []circuit.Wire, opts *Options) error {
	if c == nil {
		return fmt.Errorf("%s: %w", methodApply, ErrNilCircuit)
	}

	// Resolve options; nil selects the documented defaults.
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}

	// Structural selectors must be static: they decide circuit topology.
	if cfg.Beamsplitter.traced {
		return fmt.Errorf("%s: beamsplitter convention influences the circuit architecture: %w",
			methodApply, ErrStructuralParameter)
	}
	if cfg.Mesh.traced {
		return fmt.Errorf("%s: mesh influences the circuit architecture: %w",
			methodApply, ErrStructuralParameter)
	}

	n := len(wires)
	if n < 1 {
		return fmt.Errorf("%s: need at least 1 wire, got %d: %w", methodApply, n, ErrShape)
	}

	// Shape preconditions come before any emission (no half-built meshes).
	if len(varphi) != n && len(varphi) != n-1 {
		return fmt.Errorf("%s: varphi length %d, want %d or %d: %w",
			methodApply, len(varphi), n, n-1, ErrShape)
	}

	if n == 1 {
		if len(varphi) == 0 {
			// varphi of length N-1 == 0: nothing to emit.
			return nil
		}
		// The interferometer is a single rotation.
		if err := c.Apply(circuit.Rotation, []float64{varphi[0]}, wires[:1]); err != nil {
			return fmt.Errorf("%s: Rotation(wire %v): %w", methodApply, wires[0], err)
		}

		return nil
	}

	k := n * (n - 1) / 2
	if len(theta) != k {
		return fmt.Errorf("%s: theta length %d, want %d: %w", methodApply, len(theta), k, ErrShape)
	}
	if len(phi) != k {
		return fmt.Errorf("%s: phi length %d, want %d: %w", methodApply, len(phi), k, ErrShape)
	}

	placements, err := Placements(n, cfg.Mesh.mesh)
	if err != nil {
		return fmt.Errorf("%s: %w", methodApply, err)
	}

	// Emit the two-mode elements in placement order. Under the Clements
	// convention the phase moves out of the beamsplitter into a preceding
	// rotation on the element's first wire; element count and θ/φ
	// consumption order are identical under both conventions.
	clements := cfg.Beamsplitter.conv == Clements
	for _, p := range placements {
		pair := []circuit.Wire{wires[p.A], wires[p.B]}
		if clements {
			if err = c.Apply(circuit.Rotation, []float64{phi[p.Index]}, pair[:1]); err != nil {
				return fmt.Errorf("%s: Rotation(wire %v): %w", methodApply, pair[0], err)
			}
			if err = c.Apply(circuit.Beamsplitter, []float64{theta[p.Index], 0}, pair); err != nil {
				return fmt.Errorf("%s: Beamsplitter(wires %v): %w", methodApply, pair, err)
			}
		} else {
			if err = c.Apply(circuit.Beamsplitter, []float64{theta[p.Index], phi[p.Index]}, pair); err != nil {
				return fmt.Errorf("%s: Beamsplitter(wires %v): %w", methodApply, pair, err)
			}
		}
	}

	// Apply the final local phase shifts in wire order.
	for i, p := range varphi {
		if err = c.Apply(circuit.Rotation, []float64{p}, wires[i:i+1]); err != nil {
			return fmt.Errorf("%s: Rotation(wire %v): %w", methodApply, wires[i], err)
		}
	}

	return nil
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
