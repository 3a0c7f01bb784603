package goqubit

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
	"strings"
	"time"
)

// Kind identifies a gate family in standard notation.
type Kind string

const (
	KindX   Kind = "X"  // Pauli-X (NOT)
	KindY   Kind = "Y"  // Pauli-Y
	KindZ   Kind = "Z"  // Pauli-Z (phase flip)
	KindH   Kind = "H"  // Hadamard
	KindS   Kind = "S"  // Phase gate (π/2 phase)
	KindSDg Kind = "S'" // S conjugate
	KindT   Kind = "T"  // π/8 gate (π/4 phase)
	KindTDg Kind = "T'" // T conjugate
	KindRX  Kind = "RX" // Rotation about the X axis
	KindRY  Kind = "RY" // Rotation about the Y axis
	KindRZ  Kind = "RZ" // Rotation about the Z axis
)

// Gate represents a single-qubit gate with an optional rotation angle and
// optional timestamp.
type Gate struct {
	Kind  Kind      // Which gate family
	Theta float64   // Rotation angle in radians (RX/RY/RZ only)
	Time  time.Time // When the gate was applied (optional)
}

// rotation reports whether the gate takes an angle parameter.
func (g Gate) rotation() bool {
	switch g.Kind {
	case KindRX, KindRY, KindRZ:
		return true
	}
	return false
}

// Matrix builds the 2x2 unitary matrix for this gate. A fresh matrix is
// constructed on every call; matrices are never cached.
func (g Gate) Matrix() Matrix {
	switch g.Kind {
	case KindX:
		return Matrix{
			{0, 1},
			{1, 0},
		}
	case KindY:
		return Matrix{
			{0, -1i},
			{1i, 0},
		}
	case KindZ:
		return Matrix{
			{1, 0},
			{0, -1},
		}
	case KindH:
		h := complex(1/math.Sqrt2, 0)
		return Matrix{
			{h, h},
			{h, -h},
		}
	case KindS:
		return Matrix{
			{1, 0},
			{0, 1i},
		}
	case KindSDg:
		return Matrix{
			{1, 0},
			{0, -1i},
		}
	case KindT:
		return Matrix{
			{1, 0},
			{0, cmplx.Exp(complex(0, math.Pi/4))},
		}
	case KindTDg:
		return Matrix{
			{1, 0},
			{0, cmplx.Exp(complex(0, -math.Pi/4))},
		}
	case KindRX:
		c := complex(math.Cos(g.Theta/2), 0)
		s := complex(0, -math.Sin(g.Theta/2))
		return Matrix{
			{c, s},
			{s, c},
		}
	case KindRY:
		c := complex(math.Cos(g.Theta/2), 0)
		s := complex(math.Sin(g.Theta/2), 0)
		return Matrix{
			{c, -s},
			{s, c},
		}
	case KindRZ:
		return Matrix{
			{cmplx.Exp(complex(0, -g.Theta/2)), 0},
			{0, cmplx.Exp(complex(0, g.Theta/2))},
		}
	default:
		// Unknown kinds act as the identity rather than corrupting state.
		return Matrix{
			{1, 0},
			{0, 1},
		}
	}
}

// Notation returns the standard notation string for this gate.
// Examples: X, H, S', RZ(0.5236)
func (g Gate) Notation() string {
	if g.rotation() {
		return fmt.Sprintf("%s(%s)", g.Kind, formatAngle(g.Theta))
	}
	return string(g.Kind)
}

// Inverse returns the inverse of this gate.
// X/Y/Z/H are self-inverse, S'/T' invert S/T, and rotations negate the
// angle.
func (g Gate) Inverse() Gate {
	inv := g
	switch g.Kind {
	case KindS:
		inv.Kind = KindSDg
	case KindSDg:
		inv.Kind = KindS
	case KindT:
		inv.Kind = KindTDg
	case KindTDg:
		inv.Kind = KindT
	case KindRX, KindRY, KindRZ:
		inv.Theta = -g.Theta
	}
	return inv
}

// WithTime returns a copy of the gate with the specified timestamp.
func (g Gate) WithTime(t time.Time) Gate {
	g.Time = t
	return g
}

// String returns the notation string (alias for Notation).
func (g Gate) String() string {
	return g.Notation()
}

// ParseGate parses a notation string into a Gate.
// Examples: X, H, S', T', RX(1.5708), RZ(pi/3), RY(-pi/4)
// Returns ErrInvalidNotation if the token is not a valid gate.
func ParseGate(s string) (Gate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Gate{}, ErrInvalidNotation
	}

	// Rotation gates carry a parenthesized angle.
	if open := strings.IndexByte(s, '('); open >= 0 {
		if !strings.HasSuffix(s, ")") {
			return Gate{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}

		var kind Kind
		switch strings.ToUpper(s[:open]) {
		case "RX":
			kind = KindRX
		case "RY":
			kind = KindRY
		case "RZ":
			kind = KindRZ
		default:
			return Gate{}, fmt.Errorf("%w: %q", ErrUnknownGate, s[:open])
		}

		theta, err := parseAngle(s[open+1 : len(s)-1])
		if err != nil {
			return Gate{}, err
		}
		return Gate{Kind: kind, Theta: theta}, nil
	}

	switch strings.ToUpper(s) {
	case "X":
		return Gate{Kind: KindX}, nil
	case "Y":
		return Gate{Kind: KindY}, nil
	case "Z":
		return Gate{Kind: KindZ}, nil
	case "H":
		return Gate{Kind: KindH}, nil
	case "S":
		return Gate{Kind: KindS}, nil
	case "S'", "S`", "SDG":
		return Gate{Kind: KindSDg}, nil
	case "T":
		return Gate{Kind: KindT}, nil
	case "T'", "T`", "TDG":
		return Gate{Kind: KindTDg}, nil
	case "RX", "RY", "RZ":
		return Gate{}, fmt.Errorf("%w: %s requires an angle", ErrInvalidNotation, strings.ToUpper(s))
	default:
		return Gate{}, fmt.Errorf("%w: %q", ErrUnknownGate, s)
	}
}

// ParseGates parses a space-separated sequence of gates.
// Example: "H X RZ(pi/3)"
// Unlike lenient parsers, an invalid token fails the whole sequence.
func ParseGates(s string) ([]Gate, error) {
	parts := strings.Fields(s)
	gates := make([]Gate, 0, len(parts))

	for _, part := range parts {
		gate, err := ParseGate(part)
		if err != nil {
			return nil, err
		}
		gates = append(gates, gate)
	}

	return gates, nil
}

// FormatGates formats a slice of gates as a space-separated notation string.
func FormatGates(gates []Gate) string {
	if len(gates) == 0 {
		return ""
	}

	parts := make([]string, len(gates))
	for i, g := range gates {
		parts[i] = g.Notation()
	}

	return strings.Join(parts, " ")
}

// parseAngle parses a rotation angle in radians. Plain decimal values and
// pi fractions are accepted: "1.5708", "pi", "-pi/4", "3pi/2".
func parseAngle(s string) (float64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, fmt.Errorf("%w: empty angle", ErrInvalidAngle)
	}

	sign := 1.0
	if strings.HasPrefix(s, "-") {
		sign = -1
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	idx := strings.Index(s, "pi")
	if idx < 0 {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAngle, s)
		}
		return sign * v, nil
	}

	// <mult>pi[/<div>]
	mult := 1.0
	if idx > 0 {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s[:idx], "*"), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAngle, s)
		}
		mult = v
	}

	div := 1.0
	if rest := s[idx+2:]; rest != "" {
		if !strings.HasPrefix(rest, "/") {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAngle, s)
		}
		v, err := strconv.ParseFloat(rest[1:], 64)
		if err != nil || v == 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAngle, s)
		}
		div = v
	}

	return sign * mult * math.Pi / div, nil
}

// formatAngle renders an angle for notation output, preferring short pi
// fractions when they are exact.
func formatAngle(theta float64) string {
	for _, div := range []float64{1, 2, 3, 4, 6, 8} {
		if theta == math.Pi/div {
			if div == 1 {
				return "pi"
			}
			return fmt.Sprintf("pi/%g", div)
		}
		if theta == -math.Pi/div {
			if div == 1 {
				return "-pi"
			}
			return fmt.Sprintf("-pi/%g", div)
		}
	}
	return strconv.FormatFloat(theta, 'g', -1, 64)
}
