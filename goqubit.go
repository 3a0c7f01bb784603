// Package goqubit provides a Go library for simulating the quantum state
// of a single qubit and applying standard single-qubit gates to it.
//
// # Features
//
//   - Two-amplitude state vector with automatic normalization
//   - Standard gate set: Pauli X/Y/Z, Hadamard, phase gates S/T (and
//     their conjugates S'/T'), parametrized rotations RX/RY/RZ
//   - Gate notation parsing ("H X RZ(pi/3)")
//   - Measurement-probability queries and Bloch sphere coordinates
//   - Gate history tracking with state classification callbacks
//
// # Quick Start
//
// Create a qubit in |0⟩ and apply gates:
//
//	q := goqubit.New()
//
//	// Apply gates using predefined constants
//	q.Apply(goqubit.H, goqubit.X)
//
//	// Or from notation
//	q.ApplyNotation("RZ(pi/3) S T")
//
//	fmt.Println("P(|0⟩):", q.ProbZero())
//	fmt.Println("P(|1⟩):", q.ProbOne())
//
// # Predefined Gates
//
// The package provides predefined gates for convenience:
//
//	goqubit.X   // Pauli-X (NOT)
//	goqubit.Y   // Pauli-Y
//	goqubit.Z   // Pauli-Z (phase flip)
//	goqubit.H   // Hadamard
//	goqubit.S   // Phase gate (π/2 phase)
//	goqubit.SDg // S conjugate
//	goqubit.T   // π/8 gate (π/4 phase)
//	goqubit.TDg // T conjugate
//
// Rotation gates take an angle in radians:
//
//	goqubit.RX(math.Pi / 2)
//	goqubit.RY(math.Pi / 4)
//	goqubit.RZ(math.Pi / 3)
//
// # State Classification
//
// The library classifies states by their measurement probabilities:
//
//   - ClassZero: the state measures |0⟩ with certainty
//   - ClassOne: the state measures |1⟩ with certainty
//   - ClassSuperposition: both outcomes have nonzero probability
//   - ClassBalanced: both outcomes are equally likely
//
// Every gate in the library is unitary, so the normalization invariant
// |α|² + |β|² = 1 holds after each application. The state type itself
// performs no unitarity validation; callers supplying matrices directly
// via ApplyMatrix are trusted to keep them unitary.
package goqubit
