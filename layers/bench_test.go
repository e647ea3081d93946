package layers_test

import (
	"testing"

	"github.com/katalvlaran/varqc/circuit"
	"github.com/katalvlaran/varqc/layers"
)

// benchmarkStronglyEntangling emits L layers over n wires b.N times.
func benchmarkStronglyEntangling(b *testing.B, nLayers, n int) {
	wires := make([]circuit.Wire, n)
	for i := range wires {
		wires[i] = circuit.Wire(i)
	}
	weights := make([][][]float64, nLayers)
	for l := range weights {
		weights[l] = make([][]float64, n)
		for i := range weights[l] {
			weights[l][i] = []float64{0.1, 0.2, 0.3}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := circuit.New()
		if err := layers.StronglyEntanglingLayers(c, weights, wires); err != nil {
			b.Fatalf("StronglyEntanglingLayers failed: %v", err)
		}
	}
}

// BenchmarkStronglyEntangling_4x8 benchmarks 4 layers over 8 wires.
func BenchmarkStronglyEntangling_4x8(b *testing.B) {
	benchmarkStronglyEntangling(b, 4, 8)
}

// BenchmarkStronglyEntangling_16x32 benchmarks 16 layers over 32 wires.
func BenchmarkStronglyEntangling_16x32(b *testing.B) {
	benchmarkStronglyEntangling(b, 16, 32)
}

// BenchmarkRandomLayer_64 benchmarks one random layer consuming 64 weights
// over 8 wires with the default imprimitive ratio.
func BenchmarkRandomLayer_64(b *testing.B) {
	wires := make([]circuit.Wire, 8)
	for i := range wires {
		wires[i] = circuit.Wire(i)
	}
	weights := make([]float64, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := circuit.New()
		if err := layers.RandomLayer(c, weights, wires, layers.WithSeed(int64(i))); err != nil {
			b.Fatalf("RandomLayer failed: %v", err)
		}
	}
}

// BenchmarkCVNeuralNetLayer_8 benchmarks one CV layer over 8 modes.
func BenchmarkCVNeuralNetLayer_8(b *testing.B) {
	const m = 8
	k := m * (m - 1) / 2
	wires := make([]circuit.Wire, m)
	for i := range wires {
		wires[i] = circuit.Wire(i)
	}
	w := layers.CVWeights{
		Theta1: make([]float64, k), Phi1: make([]float64, k), Varphi1: make([]float64, m),
		R: make([]float64, m), PhiR: make([]float64, m),
		Theta2: make([]float64, k), Phi2: make([]float64, k), Varphi2: make([]float64, m),
		A: make([]float64, m), PhiA: make([]float64, m),
		Kerr: make([]float64, m),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := circuit.New()
		if err := layers.CVNeuralNetLayer(c, w, wires); err != nil {
			b.Fatalf("CVNeuralNetLayer failed: %v", err)
		}
	}
}
