package circuit

// Standard gate descriptors.
//
// The descriptor set mirrors the primitives a variational framework supplies:
// discrete-variable rotations and imprimitives, plus the continuous-variable
// gates used by interferometer and CV neural-net layers. Arity and parameter
// counts are the only facts varqc relies on.
var (
	// Rot is the general single-qubit rotation R(φ,θ,ω): three Euler angles.
	Rot = Gate{Name: "Rot", Arity: 1, Params: 3}

	// RX is a single-qubit rotation about the Pauli-X axis.
	RX = Gate{Name: "RX", Arity: 1, Params: 1}

	// RY is a single-qubit rotation about the Pauli-Y axis.
	RY = Gate{Name: "RY", Arity: 1, Params: 1}

	// RZ is a single-qubit rotation about the Pauli-Z axis.
	RZ = Gate{Name: "RZ", Arity: 1, Params: 1}

	// CNOT is the parameterless controlled-NOT imprimitive.
	CNOT = Gate{Name: "CNOT", Arity: 2, Params: 0}

	// CZ is the parameterless controlled-Z imprimitive.
	CZ = Gate{Name: "CZ", Arity: 2, Params: 0}

	// Beamsplitter is the two-mode beamsplitter BS(θ,φ):
	// transmittivity angle θ and phase angle φ.
	Beamsplitter = Gate{Name: "Beamsplitter", Arity: 2, Params: 2}

	// Rotation is the single-mode phase rotation R(φ).
	Rotation = Gate{Name: "Rotation", Arity: 1, Params: 1}

	// Squeezing is the single-mode squeezing gate S(r,φ).
	Squeezing = Gate{Name: "Squeezing", Arity: 1, Params: 2}

	// Displacement is the single-mode displacement gate D(a,φ).
	Displacement = Gate{Name: "Displacement", Arity: 1, Params: 2}

	// Kerr is the single-mode Kerr nonlinearity K(κ).
	Kerr = Gate{Name: "Kerr", Arity: 1, Params: 1}
)
