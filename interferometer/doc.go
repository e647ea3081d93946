// Package interferometer lays out a universal linear interferometer as a
// mesh of two-mode beamsplitter elements followed by single-mode phase
// rotations.
//
// Two mesh topologies are supported:
//
//   - Rectangular — the brick-wall scheme of Clements et al. (2016):
//     N(N-1)/2 beamsplitters arranged in N columns, adjacent pairs firing
//     under an alternating parity rule. Minimal circuit depth.
//
//   - Triangular — the scheme of Reck et al. (1994): the same N(N-1)/2
//     beamsplitters arranged in 2N-3 columns.
//
// Both topologies consume one transmittivity angle θ[n] and one phase
// angle φ[n] per element, in strictly increasing element order, and are
// followed by one local rotation per entry of the output-phase array φ′
// (length N or N-1; with N-1, the last wire receives no output rotation).
//
// The two beamsplitter conventions differ only in where the phase angle
// lands: Standard parametrizes each element as BS(θ[n], φ[n]); Clements
// emits a preceding Rotation(φ[n]) on the element's first wire and then
// BS(θ[n], 0). Element count and θ/φ consumption order are identical.
//
// The mesh topology and the beamsplitter convention change the circuit's
// structure, so they must be static values: both are passed as tagged
// parameters (StaticMesh/StaticConvention) and a traced/trainable marker
// (TracedMesh/TracedConvention) is rejected with ErrStructuralParameter
// before any gate is emitted.
//
// Pure layout (no gate emission) is available via Placements; full gate
// emission onto a circuit.Circuit tape via Apply.
package interferometer
