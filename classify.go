package goqubit

// StateClass describes a qubit state by its measurement probabilities.
type StateClass int

const (
	// ClassZero indicates the state measures |0⟩ with certainty.
	ClassZero StateClass = iota

	// ClassOne indicates the state measures |1⟩ with certainty.
	ClassOne

	// ClassSuperposition indicates both outcomes have probability
	// strictly between 0 and 1.
	ClassSuperposition

	// ClassBalanced indicates an equal-magnitude superposition:
	// both outcomes have probability 1/2.
	ClassBalanced
)

// String returns a short identifier for the state class.
func (c StateClass) String() string {
	switch c {
	case ClassZero:
		return "zero"
	case ClassOne:
		return "one"
	case ClassSuperposition:
		return "superposition"
	case ClassBalanced:
		return "balanced"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the state class.
func (c StateClass) DisplayName() string {
	switch c {
	case ClassZero:
		return "Basis state |0⟩"
	case ClassOne:
		return "Basis state |1⟩"
	case ClassSuperposition:
		return "Superposition"
	case ClassBalanced:
		return "Balanced superposition"
	default:
		return "Unknown"
	}
}

// Classify determines the state class of a qubit within the given
// tolerance. A non-positive tolerance falls back to Epsilon.
func Classify(q *Qubit, tol float64) StateClass {
	if tol <= 0 {
		tol = Epsilon
	}

	p0 := q.ProbZero()
	p1 := q.ProbOne()

	switch {
	case p1 <= tol:
		return ClassZero
	case p0 <= tol:
		return ClassOne
	case p0-p1 <= tol && p1-p0 <= tol:
		return ClassBalanced
	default:
		return ClassSuperposition
	}
}
