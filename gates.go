package goqubit

// Predefined gates for convenience.
// Use these instead of constructing Gate structs manually.
//
// Example:
//
//	q.Apply(goqubit.H, goqubit.X, goqubit.S)
var (
	// X is the Pauli-X (NOT) gate: swaps the |0⟩ and |1⟩ amplitudes.
	X = Gate{Kind: KindX}

	// Y is the Pauli-Y gate: swaps amplitudes with a ±i phase.
	Y = Gate{Kind: KindY}

	// Z is the Pauli-Z gate: flips the sign of the |1⟩ amplitude.
	Z = Gate{Kind: KindZ}

	// H is the Hadamard gate: maps |0⟩ to the equal superposition
	// (|0⟩ + |1⟩)/√2.
	H = Gate{Kind: KindH}

	// S is the phase gate: multiplies the |1⟩ amplitude by i.
	S = Gate{Kind: KindS}

	// SDg is the conjugate of S: multiplies the |1⟩ amplitude by -i.
	SDg = Gate{Kind: KindSDg}

	// T is the π/8 gate: multiplies the |1⟩ amplitude by e^{iπ/4}.
	T = Gate{Kind: KindT}

	// TDg is the conjugate of T: multiplies the |1⟩ amplitude by e^{-iπ/4}.
	TDg = Gate{Kind: KindTDg}
)

// RX returns a rotation gate about the X axis by theta radians.
// Rotations are periodic in theta with period 4π; any real angle is valid.
func RX(theta float64) Gate {
	return Gate{Kind: KindRX, Theta: theta}
}

// RY returns a rotation gate about the Y axis by theta radians.
func RY(theta float64) Gate {
	return Gate{Kind: KindRY, Theta: theta}
}

// RZ returns a rotation gate about the Z axis by theta radians.
// RZ changes only the relative phase of the amplitudes, never the
// measurement probabilities.
func RZ(theta float64) Gate {
	return Gate{Kind: KindRZ, Theta: theta}
}

// Gates returns one instance of every fixed gate in the library.
// Rotation gates are excluded since they require an angle.
func Gates() []Gate {
	return []Gate{X, Y, Z, H, S, SDg, T, TDg}
}
