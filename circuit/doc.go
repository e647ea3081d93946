// Package circuit defines the central Wire, Gate, Op, and Circuit types
// shared by every layer constructor in varqc.
//
// A Circuit is an append-only tape of gate applications. Layer constructors
// never execute anything; they validate their inputs and append Op records
// via Apply, which enforces each gate's declared arity and positional
// parameter count. Simulation and hardware backends consume the tape
// through Ops() and are entirely external to this module.
//
// Wires are opaque integer labels. All layout arithmetic in varqc operates
// on positions within a caller-supplied wire slice, never on label values,
// so labels may be arbitrary and non-contiguous and the caller's ordering
// is always preserved.
//
// Errors:
//
//	ErrUnknownGate    - gate descriptor has an empty name.
//	ErrArityMismatch  - target-wire count differs from the gate's arity.
//	ErrParamCount     - positional-parameter count differs from the gate's declared count.
package circuit
