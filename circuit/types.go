// Package circuit declares the capability descriptors and tape records
// used across varqc. This file defines Wire, Gate, Op, Circuit, and the
// package sentinel errors.
package circuit

import "errors"

// Sentinel errors for tape operations.
var (
	// ErrUnknownGate indicates a Gate descriptor with an empty Name was applied.
	ErrUnknownGate = errors.New("circuit: unknown gate")

	// ErrArityMismatch indicates the target-wire count differs from the gate's arity.
	ErrArityMismatch = errors.New("circuit: wire count does not match gate arity")

	// ErrParamCount indicates the positional-parameter count differs from the
	// gate's declared parameter count.
	ErrParamCount = errors.New("circuit: parameter count does not match gate")
)

// Wire is an opaque label for a qubit or optical mode.
//
// Labels carry no structure: layer constructors index into the caller's
// wire slice by position, so values need not be contiguous or sorted.
type Wire int

// Gate is the capability descriptor of a gate primitive: everything the
// layout code needs to know about it. The gate's semantics (its unitary)
// live in whatever backend consumes the tape.
type Gate struct {
	// Name uniquely identifies the gate kind (e.g. "Rot", "CNOT").
	Name string

	// Arity is the number of target wires the gate acts on (1 or 2).
	Arity int

	// Params is the number of positional numeric parameters the gate takes.
	Params int
}

// Op records one gate application on the tape: which gate, with which
// parameter values, on which wires. Params and Wires are private copies;
// mutating the caller's slices after Apply never changes the tape.
type Op struct {
	// Gate is the descriptor of the applied gate.
	Gate Gate

	// Params holds the positional parameter values, len == Gate.Params.
	Params []float64

	// Wires holds the target wires in order, len == Gate.Arity.
	Wires []Wire
}

// Circuit is an append-only tape of gate applications under construction.
//
// The zero value is ready to use. A Circuit is not safe for concurrent
// mutation; each goroutine should build its own tape (see package doc).
type Circuit struct {
	ops []Op
}

// New returns an empty circuit tape.
func New() *Circuit {
	return &Circuit{}
}
