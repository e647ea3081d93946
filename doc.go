// Package varqc builds parametrized quantum-circuit layers — reusable,
// composable blocks of gates with trainable numeric parameters — for
// variational quantum computing.
//
// 🚀 What is varqc?
//
//	A deterministic, dependency-light library that brings together:
//		• Gate tape: an append-only circuit record with arity/param checks
//		• Interferometer meshes: rectangular (Clements) & triangular (Reck)
//		  beamsplitter layouts with guaranteed universality and minimal depth
//		• Deterministic layers: strongly-entangling and CV neural-net blocks
//		• Stochastic layers: seeded random circuit generation
//
// ✨ Why choose varqc?
//
//   - Reproducible – all randomness flows through an injected *rand.Rand
//   - Rock-solid guarantees – every precondition checked before emission
//   - Pure Go – no cgo, no hidden deps
//   - Composable – layers append to any circuit.Circuit tape you hand them
//
// Under the hood, everything is organized under three subpackages:
//
//	circuit/        — gate descriptors, wire labels & the op tape
//	interferometer/ — two-mode mesh layout + gate emission
//	layers/         — single & repeated layer constructors behind options
//
// Quick ASCII example of a 4-mode rectangular mesh (o = beamsplitter):
//
//	0 ─o───o───
//	1 ─o─o─o─o─
//	2 ─o─o─o─o─
//	3 ─o───o───
//
//	six elements in four columns: the brick-wall pattern of Clements et al.
//
// Simulation backends, gradients and hardware execution are deliberately
// out of scope: varqc only decides which gate touches which wires with
// which parameters, in which order.
//
//	go get github.com/katalvlaran/varqc
package varqc
