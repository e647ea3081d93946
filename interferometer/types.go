// Package interferometer defines mesh topologies, beamsplitter conventions,
// and the tagged structural parameters guarding them.
package interferometer

// Mesh selects the two-mode element layout pattern.
//
//   - Rectangular — Clements et al. brick-wall: N columns, parity-filtered
//     adjacent pairs, minimal depth. The first element acts on wires 0 and 1.
//
//   - Triangular — Reck et al.: 2N-3 columns. For N=4 the first element
//     acts on wires 2 and 3, the second on 1 and 2, the third on 0 and 1.
type Mesh int

const (
	// Rectangular mode: N columns, depth N, the default.
	Rectangular Mesh = iota

	// Triangular mode: 2N-3 columns, depth 2N-3.
	Triangular
)

// String renders the mesh name for error messages and debugging.
func (m Mesh) String() string {
	switch m {
	case Rectangular:
		return "rectangular"
	case Triangular:
		return "triangular"
	default:
		return "unknown"
	}
}

// Convention selects where each element's phase angle φ[n] lands.
type Convention int

const (
	// Standard convention: each element is a single BS(θ[n], φ[n]).
	Standard Convention = iota

	// Clements convention: Rotation(φ[n]) on the element's first wire,
	// then BS(θ[n], 0). One extra single-mode gate per element.
	Clements
)

// String renders the convention name for error messages and debugging.
func (c Convention) String() string {
	switch c {
	case Standard:
		return "standard"
	case Clements:
		return "clements"
	default:
		return "unknown"
	}
}

// MeshParam is a tagged mesh selector: either a concrete static Mesh or an
// explicit traced/trainable marker. The mesh changes circuit topology, so
// only static values are accepted by Apply; traced markers fail with
// ErrStructuralParameter.
type MeshParam struct {
	mesh   Mesh
	traced bool
}

// StaticMesh wraps a concrete mesh choice.
func StaticMesh(m Mesh) MeshParam {
	return MeshParam{mesh: m}
}

// TracedMesh marks the mesh selector as a trainable/traced framework value.
// Apply rejects it: topology is not expressible as a differentiable quantity.
func TracedMesh() MeshParam {
	return MeshParam{traced: true}
}

// ConventionParam is the tagged beamsplitter-convention selector, with the
// same static-vs-traced contract as MeshParam.
type ConventionParam struct {
	conv   Convention
	traced bool
}

// StaticConvention wraps a concrete beamsplitter-convention choice.
func StaticConvention(c Convention) ConventionParam {
	return ConventionParam{conv: c}
}

// TracedConvention marks the convention selector as a trainable/traced
// framework value; Apply rejects it.
func TracedConvention() ConventionParam {
	return ConventionParam{traced: true}
}

// Options configures Apply.
//
// Fields:
//   - Mesh         — tagged mesh selector, default StaticMesh(Rectangular).
//   - Beamsplitter — tagged convention selector, default StaticConvention(Standard).
//
// Example:
//
//	opts := interferometer.DefaultOptions()
//	opts.Mesh = interferometer.StaticMesh(interferometer.Triangular)
//	err := interferometer.Apply(c, theta, phi, varphi, wires, &opts)
type Options struct {
	Mesh         MeshParam
	Beamsplitter ConventionParam
}

// DefaultOptions returns the rectangular mesh with the standard
// beamsplitter convention.
func DefaultOptions() Options {
	return Options{
		Mesh:         StaticMesh(Rectangular),
		Beamsplitter: StaticConvention(Standard),
	}
}

// Placement describes one two-mode element of the mesh:
// which column it sits in, which adjacent wire positions it couples, and
// which θ/φ entry it consumes.
//
// A and B are positions into the caller-supplied wire slice (B == A+1),
// not wire label values.
type Placement struct {
	// Layer is the mesh column index (0-based).
	Layer int

	// A and B are the coupled wire positions, B == A+1.
	A, B int

	// Index is the θ/φ entry the element consumes; strictly increasing
	// across the emitted sequence, 0..N(N-1)/2-1.
	Index int
}
