// SPDX-License-Identifier: MIT
// Package: varqc/layers
//
// errors.go — sentinel errors for the layers package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using %w with a method-tag prefix.
//   • Layer constructors MUST NOT panic at runtime; validation panics are
//     confined to option constructor functions (WithX...).
//   • Every error surfaces before the first gate of the offending layer is
//     emitted; nothing is retried or recovered internally.

package layers

import "errors"

// ErrInsufficientWires indicates fewer than two wires were supplied to a
// layer that places two-wire imprimitive gates.
// Usage: if errors.Is(err, ErrInsufficientWires) { /* supply ≥ 2 wires */ }.
var ErrInsufficientWires = errors.New("layers: at least two wires required for imprimitive gates")

// ErrShape indicates a weight array whose dimensions are inconsistent with
// the wire count or the layer count implied by the other arguments.
// Usage: if errors.Is(err, ErrShape) { /* fix weight tensor shape */ }.
var ErrShape = errors.New("layers: weight array has wrong shape")

// ErrNeedRandSource indicates a stochastic layer was invoked without an RNG
// in the resolved config (WithSeed or WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("layers: rng is required")

// ErrInvalidRatio indicates an imprimitive ratio outside the half-open
// interval [0,1). A ratio of exactly 1 is rejected because the rotation
// branch is the only one that consumes weights: with probability-1
// imprimitives the layer loop would never terminate.
// Usage: if errors.Is(err, ErrInvalidRatio) { /* choose p in [0,1) */ }.
var ErrInvalidRatio = errors.New("layers: imprimitive ratio out of range")

// ErrNilCircuit indicates a layer constructor was handed a nil circuit tape.
// Usage: if errors.Is(err, ErrNilCircuit) { /* pass circuit.New() */ }.
var ErrNilCircuit = errors.New("layers: nil circuit")
