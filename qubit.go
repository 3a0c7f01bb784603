package goqubit

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Epsilon is the numeric tolerance used by normalization and state
// classification. Norms within Epsilon of zero are treated as zero.
const Epsilon = 1e-10

// Qubit represents the state of a single two-level quantum system:
//
//	|ψ⟩ = Alpha·|0⟩ + Beta·|1⟩
//
// The squared magnitudes of the two amplitudes sum to 1 after
// construction and after every library-gate application.
type Qubit struct {
	Alpha complex128 // amplitude for basis state |0⟩
	Beta  complex128 // amplitude for basis state |1⟩
}

// New creates a qubit in the |0⟩ basis state.
func New() *Qubit {
	return &Qubit{Alpha: 1}
}

// NewOne creates a qubit in the |1⟩ basis state.
func NewOne() *Qubit {
	return &Qubit{Beta: 1}
}

// FromAmplitudes creates a qubit from arbitrary amplitudes, normalizing
// them so that |α|² + |β|² = 1. The inputs need not be pre-normalized.
//
// If both amplitudes are numerically zero (norm ≤ Epsilon) normalization
// is skipped and the raw values are kept. Such a zero state is physically
// invalid; the guard only prevents a division by near-zero.
func FromAmplitudes(alpha, beta complex128) *Qubit {
	q := &Qubit{Alpha: alpha, Beta: beta}
	q.Normalize()
	return q
}

// Normalize rescales both amplitudes so that |α|² + |β|² = 1.
// No-op when the norm is within Epsilon of zero.
func (q *Qubit) Normalize() {
	norm := math.Sqrt(q.ProbZero() + q.ProbOne())
	if norm > Epsilon {
		s := complex(1/norm, 0)
		q.Alpha *= s
		q.Beta *= s
	}
}

// ProbZero returns the probability of measuring |0⟩: |α|².
func (q *Qubit) ProbZero() float64 {
	return normSqr(q.Alpha)
}

// ProbOne returns the probability of measuring |1⟩: |β|².
func (q *Qubit) ProbOne() float64 {
	return normSqr(q.Beta)
}

// ApplyMatrix multiplies the state vector by a 2x2 matrix in place.
//
// Both new amplitudes are computed from the old pair before either field
// is overwritten. The matrix is not checked for unitarity; callers are
// trusted to supply unitary matrices (the gate library always does).
func (q *Qubit) ApplyMatrix(m Matrix) {
	alpha := m[0][0]*q.Alpha + m[0][1]*q.Beta
	beta := m[1][0]*q.Alpha + m[1][1]*q.Beta
	q.Alpha = alpha
	q.Beta = beta
}

// Apply applies a sequence of gates to the qubit in order.
func (q *Qubit) Apply(gates ...Gate) {
	for _, g := range gates {
		q.ApplyMatrix(g.Matrix())
	}
}

// ApplyNotation parses a space-separated gate sequence and applies it.
// Example: "H X RZ(pi/3)"
// Returns ErrInvalidNotation without touching the state if any token is
// invalid.
func (q *Qubit) ApplyNotation(s string) error {
	gates, err := ParseGates(s)
	if err != nil {
		return err
	}
	q.Apply(gates...)
	return nil
}

// Clone creates an independent copy of the qubit state.
func (q *Qubit) Clone() *Qubit {
	clone := *q
	return &clone
}

// Reset returns the qubit to the |0⟩ basis state.
func (q *Qubit) Reset() {
	q.Alpha = 1
	q.Beta = 0
}

// BlochVector returns the Bloch sphere coordinates (x, y, z) of the
// state. For a normalized state the vector has unit length; global phase
// does not affect the result.
func (q *Qubit) BlochVector() (x, y, z float64) {
	// x = 2·Re(ᾱβ), y = 2·Im(ᾱβ), z = |α|² − |β|²
	cross := cmplx.Conj(q.Alpha) * q.Beta
	return 2 * real(cross), 2 * imag(cross), q.ProbZero() - q.ProbOne()
}

// String renders the state in ket notation, e.g.
//
//	(0.707+0.000i)|0⟩ + (0.707+0.000i)|1⟩
func (q *Qubit) String() string {
	return fmt.Sprintf("(%.3f%+.3fi)|0⟩ + (%.3f%+.3fi)|1⟩",
		real(q.Alpha), imag(q.Alpha), real(q.Beta), imag(q.Beta))
}

// normSqr returns |c|² without the sqrt/square round trip of cmplx.Abs.
func normSqr(c complex128) float64 {
	return real(c)*real(c) + imag(c)*imag(c)
}
