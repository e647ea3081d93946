// errors.go — sentinel errors for the interferometer package.
//
// Error policy (matches varqc conventions):
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Implementations attach method context via %w wrapping.
//   • All errors surface before the first gate of the offending mesh is
//     emitted; nothing is retried or recovered internally.

package interferometer

import "errors"

// ErrStructuralParameter indicates that a topology-altering selector (mesh
// or beamsplitter convention) was supplied as a traced/trainable value.
// These selectors change the circuit's structure and cannot be trained.
// Usage: if errors.Is(err, ErrStructuralParameter) { /* pass a static value */ }.
var ErrStructuralParameter = errors.New("interferometer: structural parameter cannot be traced")

// ErrUnsupportedMesh indicates an unrecognized mesh-topology identifier.
// Usage: if errors.Is(err, ErrUnsupportedMesh) { /* use Rectangular or Triangular */ }.
var ErrUnsupportedMesh = errors.New("interferometer: unsupported mesh topology")

// ErrShape indicates a parameter array whose length is inconsistent with
// the wire count: θ/φ must have length N(N-1)/2 and φ′ length N or N-1.
// Usage: if errors.Is(err, ErrShape) { /* fix array lengths */ }.
var ErrShape = errors.New("interferometer: parameter array has wrong length")

// ErrNilCircuit indicates Apply was handed a nil circuit tape.
// Usage: if errors.Is(err, ErrNilCircuit) { /* pass circuit.New() */ }.
var ErrNilCircuit = errors.New("interferometer: nil circuit")
