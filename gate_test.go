package goqubit

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func TestXGate_FlipsZeroToOne(t *testing.T) {
	q := New()
	q.Apply(X)

	if !close10(q.ProbZero(), 0) {
		t.Errorf("ProbZero = %v, want 0", q.ProbZero())
	}
	if !close10(q.ProbOne(), 1) {
		t.Errorf("ProbOne = %v, want 1", q.ProbOne())
	}
}

func TestXTwice_ReturnsToOriginal(t *testing.T) {
	q := FromAmplitudes(complex(0.6, 0.1), complex(0, 0.79))
	p0, p1 := q.ProbZero(), q.ProbOne()

	q.Apply(X, X)

	if !close10(q.ProbZero(), p0) || !close10(q.ProbOne(), p1) {
		t.Errorf("probabilities = (%v, %v), want (%v, %v)", q.ProbZero(), q.ProbOne(), p0, p1)
	}
}

func TestHGate_CreatesBalancedSuperposition(t *testing.T) {
	q := New()
	q.Apply(H)

	if !close10(q.ProbZero(), 0.5) {
		t.Errorf("ProbZero = %v, want 0.5", q.ProbZero())
	}
	if !close10(q.ProbOne(), 0.5) {
		t.Errorf("ProbOne = %v, want 0.5", q.ProbOne())
	}
}

func TestYGate_SwapsWithPhase(t *testing.T) {
	q := New()
	q.Apply(Y)

	// Y|0⟩ = i|1⟩
	if q.Alpha != 0 || q.Beta != 1i {
		t.Errorf("state = (%v, %v), want (0, i)", q.Alpha, q.Beta)
	}
}

func TestZGate_FlipsBetaSign(t *testing.T) {
	q := NewOne()
	q.Apply(Z)

	if q.Beta != -1 {
		t.Errorf("Beta = %v, want -1", q.Beta)
	}
}

func TestSGate_MultipliesBetaByI(t *testing.T) {
	q := NewOne()
	q.Apply(S)

	if q.Beta != 1i {
		t.Errorf("Beta = %v, want i", q.Beta)
	}
}

func TestTGate_AppliesPiOver4Phase(t *testing.T) {
	q := NewOne()
	q.Apply(T)

	want := cmplx.Exp(complex(0, math.Pi/4))
	if cmplx.Abs(q.Beta-want) > Epsilon {
		t.Errorf("Beta = %v, want %v", q.Beta, want)
	}
}

func TestRZ_PreservesProbabilities(t *testing.T) {
	angles := []float64{0, 0.1, math.Pi / 3, math.Pi, 2 * math.Pi, -math.Pi / 7, 13.37}

	for _, theta := range angles {
		q := FromAmplitudes(3, 4)
		p0, p1 := q.ProbZero(), q.ProbOne()

		q.Apply(RZ(theta))

		if !close10(q.ProbZero(), p0) || !close10(q.ProbOne(), p1) {
			t.Errorf("RZ(%v) changed probabilities: (%v, %v) -> (%v, %v)",
				theta, p0, p1, q.ProbZero(), q.ProbOne())
		}
	}
}

func TestAllGates_PreserveNorm(t *testing.T) {
	states := []*Qubit{
		New(),
		NewOne(),
		FromAmplitudes(3, 4),
		FromAmplitudes(1+2i, -0.5+0.25i),
		FromAmplitudes(-1i, 1i),
	}
	gates := append(Gates(), RX(0.7), RY(-1.9), RZ(math.Pi/5))

	for _, state := range states {
		for _, g := range gates {
			q := state.Clone()
			q.Apply(g)

			total := q.ProbZero() + q.ProbOne()
			if !close10(total, 1) {
				t.Errorf("gate %s: total probability = %v, want 1", g.Notation(), total)
			}
		}
	}
}

func TestSequence_HXY_ThenReverse_ReturnsToZero(t *testing.T) {
	q := New()
	q.Apply(H, X, Y)
	q.Apply(Y, X, H)

	if !close10(q.ProbZero(), 1) {
		t.Errorf("ProbZero = %v, want 1", q.ProbZero())
	}
	if !close10(q.ProbOne(), 0) {
		t.Errorf("ProbOne = %v, want 0", q.ProbOne())
	}
}

func TestInverse_UndoesEveryGate(t *testing.T) {
	gates := append(Gates(), RX(0.7), RY(2.1), RZ(-math.Pi/3))

	for _, g := range gates {
		q := FromAmplitudes(complex(0.8, 0.1), complex(-0.3, 0.5))
		alpha, beta := q.Alpha, q.Beta

		q.Apply(g, g.Inverse())

		if cmplx.Abs(q.Alpha-alpha) > Epsilon || cmplx.Abs(q.Beta-beta) > Epsilon {
			t.Errorf("%s then %s: state = (%v, %v), want (%v, %v)",
				g.Notation(), g.Inverse().Notation(), q.Alpha, q.Beta, alpha, beta)
		}
	}
}

func TestRotations_PeriodicIn4Pi(t *testing.T) {
	for _, rot := range []func(float64) Gate{RX, RY, RZ} {
		q := FromAmplitudes(3, 4)
		alpha, beta := q.Alpha, q.Beta

		q.Apply(rot(4 * math.Pi))

		if cmplx.Abs(q.Alpha-alpha) > 1e-9 || cmplx.Abs(q.Beta-beta) > 1e-9 {
			t.Errorf("%s: 4π rotation is not the identity", rot(0).Kind)
		}
	}
}

func TestParseGate_ValidNotations(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
		theta float64
	}{
		{"X", KindX, 0},
		{"y", KindY, 0},
		{"Z", KindZ, 0},
		{"H", KindH, 0},
		{"S", KindS, 0},
		{"S'", KindSDg, 0},
		{"sdg", KindSDg, 0},
		{"T", KindT, 0},
		{"T'", KindTDg, 0},
		{"RX(1.5708)", KindRX, 1.5708},
		{"rx(pi/2)", KindRX, math.Pi / 2},
		{"RY(-pi/4)", KindRY, -math.Pi / 4},
		{"RZ(pi)", KindRZ, math.Pi},
		{"RZ(3pi/2)", KindRZ, 3 * math.Pi / 2},
		{"RZ(2pi)", KindRZ, 2 * math.Pi},
	}

	for _, tt := range tests {
		g, err := ParseGate(tt.input)
		if err != nil {
			t.Errorf("ParseGate(%q): %v", tt.input, err)
			continue
		}
		if g.Kind != tt.kind {
			t.Errorf("ParseGate(%q).Kind = %v, want %v", tt.input, g.Kind, tt.kind)
		}
		if math.Abs(g.Theta-tt.theta) > Epsilon {
			t.Errorf("ParseGate(%q).Theta = %v, want %v", tt.input, g.Theta, tt.theta)
		}
	}
}

func TestParseGate_InvalidNotations(t *testing.T) {
	invalid := []string{"", "Q", "X2", "RX", "RX()", "RX(abc)", "RX(pi", "RZ(pi/0)"}

	for _, s := range invalid {
		if _, err := ParseGate(s); err == nil {
			t.Errorf("ParseGate(%q) succeeded, want error", s)
		}
	}
}

func TestParseGate_UnknownGateSentinel(t *testing.T) {
	_, err := ParseGate("W")
	if !errors.Is(err, ErrUnknownGate) {
		t.Errorf("err = %v, want ErrUnknownGate", err)
	}
}

func TestParseGates_FailsOnAnyInvalidToken(t *testing.T) {
	if _, err := ParseGates("H X Q"); err == nil {
		t.Error("expected error for sequence containing unknown gate")
	}
}

func TestNotation_RoundTrip(t *testing.T) {
	gates := []Gate{X, H, S, SDg, T, TDg, RX(math.Pi / 2), RY(-math.Pi / 4), RZ(0.123)}
	formatted := FormatGates(gates)

	parsed, err := ParseGates(formatted)
	if err != nil {
		t.Fatalf("ParseGates(%q): %v", formatted, err)
	}
	if len(parsed) != len(gates) {
		t.Fatalf("parsed %d gates, want %d", len(parsed), len(gates))
	}

	for i, g := range parsed {
		if g.Kind != gates[i].Kind {
			t.Errorf("gate %d: Kind = %v, want %v", i, g.Kind, gates[i].Kind)
		}
		if math.Abs(g.Theta-gates[i].Theta) > Epsilon {
			t.Errorf("gate %d: Theta = %v, want %v", i, g.Theta, gates[i].Theta)
		}
	}
}

func TestGateNotation_PiFractions(t *testing.T) {
	if got := RZ(math.Pi / 2).Notation(); got != "RZ(pi/2)" {
		t.Errorf("Notation = %q, want RZ(pi/2)", got)
	}
	if got := RX(-math.Pi).Notation(); got != "RX(-pi)" {
		t.Errorf("Notation = %q, want RX(-pi)", got)
	}
	if got := SDg.Notation(); got != "S'" {
		t.Errorf("Notation = %q, want S'", got)
	}
}
