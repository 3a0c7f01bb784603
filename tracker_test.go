package goqubit

import (
	"errors"
	"math"
	"testing"
)

func TestTracker_RecordsHistory(t *testing.T) {
	tr := NewTracker()
	tr.Apply(H, X, RZ(math.Pi/3))

	if len(tr.History()) != 3 {
		t.Fatalf("history length = %d, want 3", len(tr.History()))
	}
	if got := tr.Notation(); got != "H X RZ(pi/3)" {
		t.Errorf("Notation = %q, want %q", got, "H X RZ(pi/3)")
	}
	for i, g := range tr.History() {
		if g.Time.IsZero() {
			t.Errorf("gate %d has no timestamp", i)
		}
	}
}

func TestTracker_WithoutHistory(t *testing.T) {
	tr := NewTracker(WithHistory(false))
	tr.Apply(H, X)

	if len(tr.History()) != 0 {
		t.Errorf("history length = %d, want 0", len(tr.History()))
	}
	if _, err := tr.Undo(); !errors.Is(err, ErrEmptyHistory) {
		t.Errorf("Undo err = %v, want ErrEmptyHistory", err)
	}
}

func TestTracker_UndoRestoresState(t *testing.T) {
	tr := NewTracker()
	tr.Apply(H, T, RY(0.7))

	for i := 0; i < 3; i++ {
		if _, err := tr.Undo(); err != nil {
			t.Fatalf("Undo: %v", err)
		}
	}

	if !close10(tr.Qubit().ProbZero(), 1) {
		t.Errorf("ProbZero = %v after undoing everything, want 1", tr.Qubit().ProbZero())
	}
	if len(tr.History()) != 0 {
		t.Errorf("history length = %d, want 0", len(tr.History()))
	}
}

func TestTracker_ClassCallbackFiresOnTransition(t *testing.T) {
	tr := NewTracker()

	var classes []StateClass
	tr.SetClassCallback(func(c StateClass) {
		classes = append(classes, c)
	})

	tr.Apply(H) // zero -> balanced
	tr.Apply(H) // balanced -> zero
	tr.Apply(X) // zero -> one; no intermediate events

	want := []StateClass{ClassBalanced, ClassZero, ClassOne}
	if len(classes) != len(want) {
		t.Fatalf("got %d class events %v, want %d", len(classes), classes, len(want))
	}
	for i, c := range classes {
		if c != want[i] {
			t.Errorf("event %d = %v, want %v", i, c, want[i])
		}
	}
}

func TestTracker_GateCallback(t *testing.T) {
	tr := NewTracker()

	var seen []string
	tr.SetGateCallback(func(g Gate) {
		seen = append(seen, g.Notation())
	})

	tr.Apply(H, X)

	if len(seen) != 2 || seen[0] != "H" || seen[1] != "X" {
		t.Errorf("callbacks = %v, want [H X]", seen)
	}
}

func TestTracker_ResetReturnsToInitialState(t *testing.T) {
	initial := NewOne()
	tr := NewTracker(WithInitialState(initial))
	tr.Apply(H, S)
	tr.Reset()

	if !close10(tr.Qubit().ProbOne(), 1) {
		t.Errorf("ProbOne = %v after Reset, want 1", tr.Qubit().ProbOne())
	}
	if len(tr.History()) != 0 {
		t.Errorf("history not cleared on Reset")
	}

	// The tracker must hold its own copy of the initial state.
	initial.Apply(X)
	tr.Reset()
	if !close10(tr.Qubit().ProbOne(), 1) {
		t.Error("tracker shares state with the caller's initial qubit")
	}
}

func TestClassify_Table(t *testing.T) {
	rot := New()
	rot.Apply(RY(math.Pi / 3)) // unequal superposition

	tests := []struct {
		name string
		q    *Qubit
		want StateClass
	}{
		{"zero state", New(), ClassZero},
		{"one state", NewOne(), ClassOne},
		{"hadamard state", FromAmplitudes(1, 1), ClassBalanced},
		{"unequal superposition", rot, ClassSuperposition},
		{"three four five", FromAmplitudes(3, 4), ClassSuperposition},
	}

	for _, tt := range tests {
		if got := Classify(tt.q, 0); got != tt.want {
			t.Errorf("%s: Classify = %v, want %v", tt.name, got, tt.want)
		}
	}
}
