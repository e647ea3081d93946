package layers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/varqc/circuit"
	"github.com/katalvlaran/varqc/layers"
)

// seqWires returns wires labelled 0..n-1.
func seqWires(n int) []circuit.Wire {
	w := make([]circuit.Wire, n)
	for i := range w {
		w[i] = circuit.Wire(i)
	}

	return w
}

// rotWeights returns an (n, 3) weight matrix with recognizable entries:
// row i is (base+i, base+i+0.1, base+i+0.2).
func rotWeights(base float64, n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		v := base + float64(i)
		out[i] = []float64{v, v + 0.1, v + 0.2}
	}

	return out
}

// imprimitivePairs collects the wire pairs of all two-wire gates on the tape.
func imprimitivePairs(c *circuit.Circuit) [][]circuit.Wire {
	var pairs [][]circuit.Wire
	for _, op := range c.Ops() {
		if op.Gate.Arity == 2 {
			pairs = append(pairs, op.Wires)
		}
	}

	return pairs
}

// TestStronglyEntanglingLayer_Range1 pins the canonical 4-wire nearest
// neighbor cascade: rotations first, then pairs (0,1),(1,2),(2,3),(3,0).
func TestStronglyEntanglingLayer_Range1(t *testing.T) {
	c := circuit.New()
	wires := seqWires(4)
	weights := rotWeights(1, 4)

	require.NoError(t, layers.StronglyEntanglingLayer(c, weights, wires, 1))

	require.Equal(t, 8, c.Len(), "4 rotations + 4 imprimitives")

	// Rotations come first, in wire order, carrying their weight rows.
	for i := 0; i < 4; i++ {
		op := c.At(i)
		assert.Equal(t, "Rot", op.Gate.Name)
		assert.Equal(t, weights[i], op.Params)
		assert.Equal(t, []circuit.Wire{wires[i]}, op.Wires)
	}

	want := [][]circuit.Wire{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	assert.Equal(t, want, imprimitivePairs(c))
}

// TestStronglyEntanglingLayer_Range2 verifies the modular pairing for r=2.
func TestStronglyEntanglingLayer_Range2(t *testing.T) {
	c := circuit.New()

	require.NoError(t, layers.StronglyEntanglingLayer(c, rotWeights(0, 4), seqWires(4), 2))

	want := [][]circuit.Wire{{0, 2}, {1, 3}, {2, 0}, {3, 1}}
	assert.Equal(t, want, imprimitivePairs(c))
}

// TestStronglyEntanglingLayer_NegativeRange verifies Euclidean wrapping.
func TestStronglyEntanglingLayer_NegativeRange(t *testing.T) {
	c := circuit.New()

	require.NoError(t, layers.StronglyEntanglingLayer(c, rotWeights(0, 3), seqWires(3), -1))

	want := [][]circuit.Wire{{0, 2}, {1, 0}, {2, 1}}
	assert.Equal(t, want, imprimitivePairs(c))
}

// TestStronglyEntanglingLayer_InsufficientWires verifies the two-wire
// minimum for both zero and one wire.
func TestStronglyEntanglingLayer_InsufficientWires(t *testing.T) {
	c := circuit.New()

	err := layers.StronglyEntanglingLayer(c, rotWeights(0, 1), seqWires(1), 1)
	assert.ErrorIs(t, err, layers.ErrInsufficientWires)

	err = layers.StronglyEntanglingLayer(c, nil, nil, 1)
	assert.ErrorIs(t, err, layers.ErrInsufficientWires)

	assert.Zero(t, c.Len(), "nothing emitted for rejected layers")
}

// TestStronglyEntanglingLayer_ShapeErrors covers weight-matrix mismatches.
func TestStronglyEntanglingLayer_ShapeErrors(t *testing.T) {
	c := circuit.New()
	wires := seqWires(3)

	// Too few rows.
	err := layers.StronglyEntanglingLayer(c, rotWeights(0, 2), wires, 1)
	assert.ErrorIs(t, err, layers.ErrShape)

	// A row with the wrong angle count.
	bad := rotWeights(0, 3)
	bad[1] = []float64{1, 2}
	err = layers.StronglyEntanglingLayer(c, bad, wires, 1)
	assert.ErrorIs(t, err, layers.ErrShape)

	assert.Zero(t, c.Len())
}

// TestStronglyEntanglingLayer_NilCircuit verifies the nil-tape guard.
func TestStronglyEntanglingLayer_NilCircuit(t *testing.T) {
	err := layers.StronglyEntanglingLayer(nil, rotWeights(0, 2), seqWires(2), 1)
	assert.ErrorIs(t, err, layers.ErrNilCircuit)
}

// TestStronglyEntanglingLayer_Imprimitive verifies WithImprimitive(CZ).
func TestStronglyEntanglingLayer_Imprimitive(t *testing.T) {
	c := circuit.New()

	require.NoError(t, layers.StronglyEntanglingLayer(c, rotWeights(0, 2), seqWires(2), 1,
		layers.WithImprimitive(circuit.CZ)))

	assert.Equal(t, 2, c.Count("CZ"))
	assert.Zero(t, c.Count("CNOT"))
}

// TestStronglyEntanglingLayers_DefaultRanges verifies one layer per leading
// row with nearest-neighbor entangling throughout.
func TestStronglyEntanglingLayers_DefaultRanges(t *testing.T) {
	c := circuit.New()
	weights := [][][]float64{rotWeights(0, 3), rotWeights(10, 3)}

	require.NoError(t, layers.StronglyEntanglingLayers(c, weights, seqWires(3)))

	require.Equal(t, 12, c.Len(), "2 layers × (3 rotations + 3 imprimitives)")
	want := [][]circuit.Wire{{0, 1}, {1, 2}, {2, 0}, {0, 1}, {1, 2}, {2, 0}}
	assert.Equal(t, want, imprimitivePairs(c))

	// Layer 1's rotations carry layer 1's weight rows.
	assert.Equal(t, weights[1][0], c.At(6).Params)
}

// TestStronglyEntanglingLayers_PerLayerRanges verifies WithRanges: each
// layer draws its own range from the sequence.
func TestStronglyEntanglingLayers_PerLayerRanges(t *testing.T) {
	c := circuit.New()
	weights := [][][]float64{rotWeights(0, 4), rotWeights(1, 4)}

	require.NoError(t, layers.StronglyEntanglingLayers(c, weights, seqWires(4),
		layers.WithRanges(1, 2)))

	want := [][]circuit.Wire{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // layer 0, r=1
		{0, 2}, {1, 3}, {2, 0}, {3, 1}, // layer 1, r=2
	}
	assert.Equal(t, want, imprimitivePairs(c))
}

// TestStronglyEntanglingLayers_RangesLengthMismatch verifies the L-vs-ranges
// shape check, raised before any emission.
func TestStronglyEntanglingLayers_RangesLengthMismatch(t *testing.T) {
	c := circuit.New()
	weights := [][][]float64{rotWeights(0, 2), rotWeights(1, 2)}

	err := layers.StronglyEntanglingLayers(c, weights, seqWires(2), layers.WithRanges(1))
	assert.ErrorIs(t, err, layers.ErrShape)
	assert.Zero(t, c.Len())
}

// TestStronglyEntanglingLayers_BadMiddleLayer verifies that a shape error
// in any layer slice prevents the earlier layers from being emitted.
func TestStronglyEntanglingLayers_BadMiddleLayer(t *testing.T) {
	c := circuit.New()
	weights := [][][]float64{rotWeights(0, 2), rotWeights(1, 1), rotWeights(2, 2)}

	err := layers.StronglyEntanglingLayers(c, weights, seqWires(2))
	assert.ErrorIs(t, err, layers.ErrShape)
	assert.Zero(t, c.Len(), "up-front validation must keep the tape empty")
}
