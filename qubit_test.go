package goqubit

import (
	"math"
	"testing"
)

// close10 reports whether two values agree within the package tolerance.
func close10(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func TestNew_IsZeroState(t *testing.T) {
	q := New()
	if !close10(q.ProbZero(), 1) {
		t.Errorf("ProbZero = %v, want 1", q.ProbZero())
	}
	if !close10(q.ProbOne(), 0) {
		t.Errorf("ProbOne = %v, want 0", q.ProbOne())
	}
}

func TestNewOne_IsOneState(t *testing.T) {
	q := NewOne()
	if !close10(q.ProbZero(), 0) {
		t.Errorf("ProbZero = %v, want 0", q.ProbZero())
	}
	if !close10(q.ProbOne(), 1) {
		t.Errorf("ProbOne = %v, want 1", q.ProbOne())
	}
}

func TestFromAmplitudes_Normalizes(t *testing.T) {
	// 3-4-5 triangle: probabilities come out as 9/25 and 16/25.
	q := FromAmplitudes(3, 4)

	if !close10(q.ProbZero()+q.ProbOne(), 1) {
		t.Errorf("total probability = %v, want 1", q.ProbZero()+q.ProbOne())
	}
	if !close10(q.ProbZero(), 9.0/25.0) {
		t.Errorf("ProbZero = %v, want 9/25", q.ProbZero())
	}
	if !close10(q.ProbOne(), 16.0/25.0) {
		t.Errorf("ProbOne = %v, want 16/25", q.ProbOne())
	}
}

func TestFromAmplitudes_ComplexInputs(t *testing.T) {
	q := FromAmplitudes(1+1i, 1-1i)
	if !close10(q.ProbZero()+q.ProbOne(), 1) {
		t.Errorf("total probability = %v, want 1", q.ProbZero()+q.ProbOne())
	}
	if !close10(q.ProbZero(), 0.5) {
		t.Errorf("ProbZero = %v, want 0.5", q.ProbZero())
	}
}

// The near-zero norm guard is a documented edge case: normalization
// silently no-ops instead of dividing by near-zero. The resulting state
// is physically invalid but must stay finite.
func TestFromAmplitudes_ZeroVectorGuard(t *testing.T) {
	q := FromAmplitudes(0, 0)

	if q.Alpha != 0 || q.Beta != 0 {
		t.Errorf("amplitudes = (%v, %v), want raw zeros", q.Alpha, q.Beta)
	}
	if math.IsNaN(q.ProbZero()) || math.IsInf(q.ProbZero(), 0) {
		t.Errorf("ProbZero = %v, want finite", q.ProbZero())
	}
}

func TestNormalize_NoOpBelowTolerance(t *testing.T) {
	q := &Qubit{Alpha: complex(1e-12, 0), Beta: complex(1e-12, 0)}
	q.Normalize()

	if q.Alpha != complex(1e-12, 0) {
		t.Errorf("Alpha = %v, want unchanged", q.Alpha)
	}
}

func TestApplyMatrix_ComputesFromOldPair(t *testing.T) {
	// A matrix whose rows both read alpha and beta detects any partial
	// overwrite of the state mid-calculation.
	q := FromAmplitudes(3, 4)
	alpha, beta := q.Alpha, q.Beta

	h := complex(1/math.Sqrt2, 0)
	q.ApplyMatrix(Matrix{
		{h, h},
		{h, -h},
	})

	wantAlpha := h*alpha + h*beta
	wantBeta := h*alpha - h*beta
	if q.Alpha != wantAlpha || q.Beta != wantBeta {
		t.Errorf("state = (%v, %v), want (%v, %v)", q.Alpha, q.Beta, wantAlpha, wantBeta)
	}
}

func TestClone_IsIndependent(t *testing.T) {
	q := New()
	clone := q.Clone()
	clone.Apply(X)

	if !close10(q.ProbZero(), 1) {
		t.Error("modifying the clone changed the original")
	}
	if !close10(clone.ProbOne(), 1) {
		t.Error("clone did not apply the gate")
	}
}

func TestReset_ReturnsToZeroState(t *testing.T) {
	q := New()
	q.Apply(H, T, RX(0.3))
	q.Reset()

	if !close10(q.ProbZero(), 1) {
		t.Errorf("ProbZero = %v after Reset, want 1", q.ProbZero())
	}
}

func TestBlochVector_BasisAndSuperposition(t *testing.T) {
	x, y, z := New().BlochVector()
	if !close10(x, 0) || !close10(y, 0) || !close10(z, 1) {
		t.Errorf("|0⟩ Bloch vector = (%v, %v, %v), want (0, 0, 1)", x, y, z)
	}

	q := New()
	q.Apply(H)
	x, y, z = q.BlochVector()
	if !close10(x, 1) || !close10(y, 0) || !close10(z, 0) {
		t.Errorf("|+⟩ Bloch vector = (%v, %v, %v), want (1, 0, 0)", x, y, z)
	}
}

func TestApplyNotation_InvalidLeavesStateUntouched(t *testing.T) {
	q := New()
	if err := q.ApplyNotation("H Q X"); err == nil {
		t.Fatal("expected error for unknown gate")
	}
	if !close10(q.ProbZero(), 1) {
		t.Error("failed ApplyNotation mutated the state")
	}
}
