// Package layers provides reusable layer constructors for variational
// quantum circuits: fixed-structure blocks that consume slices of weight
// arrays in a documented order and append gates to a circuit.Circuit tape.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – LayerOption:   a function that mutates layerConfig before use.
//     – layerConfig:   holds RNG, imprimitive choice, rotation palette, etc.
//   - Deterministic layers:
//     – StronglyEntanglingLayer(s): per-wire 3-angle rotations followed by a
//     modular-range cascade of two-wire imprimitive gates.
//     – CVNeuralNetLayer(s): the 5-stage continuous-variable pipeline of
//     interferometer / squeezing / interferometer / displacement / Kerr.
//   - Stochastic layers:
//     – RandomLayer(s): randomly placed single-wire rotations and two-wire
//     imprimitives, driven by an injected *rand.Rand.
//   - Validation helpers:
//     – validateWires, validateRatio, validateRNG.
//
// Guarantees:
//
//   - Fail-fast: every precondition of a layer is checked before its first
//     gate is emitted, so a returned error never leaves a half-built layer.
//   - Determinism: deterministic layers are pure functions of their inputs;
//     stochastic layers are reproducible for a fixed WithSeed.
//   - No hidden state: the default rotation palette and imprimitive are
//     immutable package constants copied into each resolved config; caller
//     weight slices are never mutated or aliased.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; algorithms themselves never panic at runtime.
//
// See individual function documentation for detailed contracts, emission
// orders, and performance notes.
package layers
