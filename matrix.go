package goqubit

// Matrix is a 2x2 complex matrix in row-major order: Matrix[row][col].
//
// Gate matrices are built fresh on each application and consumed
// immediately; they are never stored or cached. The state's 2-dimensional
// Hilbert space is fixed, so no dynamic matrix type is needed.
type Matrix [2][2]complex128

// Mul returns the matrix product m·n. Useful for composing a gate
// sequence into a single matrix before applying it.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		{m[0][0]*n[0][0] + m[0][1]*n[1][0], m[0][0]*n[0][1] + m[0][1]*n[1][1]},
		{m[1][0]*n[0][0] + m[1][1]*n[1][0], m[1][0]*n[0][1] + m[1][1]*n[1][1]},
	}
}

// Identity returns the 2x2 identity matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0},
		{0, 1},
	}
}
