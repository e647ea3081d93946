package interferometer_test

import (
	"fmt"

	"github.com/katalvlaran/varqc/circuit"
	"github.com/katalvlaran/varqc/interferometer"
)

// ExamplePlacements demonstrates the brick-wall layout for four modes:
// six elements across four columns, pairs alternating by column parity.
func ExamplePlacements() {
	ps, err := interferometer.Placements(4, interferometer.Rectangular)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, p := range ps {
		fmt.Printf("column %d: wires (%d,%d) consume θ[%d]/φ[%d]\n", p.Layer, p.A, p.B, p.Index, p.Index)
	}
	// Output:
	// column 0: wires (0,1) consume θ[0]/φ[0]
	// column 0: wires (2,3) consume θ[1]/φ[1]
	// column 1: wires (1,2) consume θ[2]/φ[2]
	// column 2: wires (0,1) consume θ[3]/φ[3]
	// column 2: wires (2,3) consume θ[4]/φ[4]
	// column 3: wires (1,2) consume θ[5]/φ[5]
}

// ExampleApply builds a full two-mode interferometer under the Clements
// beamsplitter convention and prints the emitted tape.
func ExampleApply() {
	c := circuit.New()
	opts := interferometer.DefaultOptions()
	opts.Beamsplitter = interferometer.StaticConvention(interferometer.Clements)

	theta := []float64{0.4}
	phi := []float64{1.2}
	varphi := []float64{0.1, 0.2}

	if err := interferometer.Apply(c, theta, phi, varphi, []circuit.Wire{0, 1}, &opts); err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, op := range c.Ops() {
		fmt.Printf("%s%v on %v\n", op.Gate.Name, op.Params, op.Wires)
	}
	// Output:
	// Rotation[1.2] on [0]
	// Beamsplitter[0.4 0] on [0 1]
	// Rotation[0.1] on [0]
	// Rotation[0.2] on [1]
}
