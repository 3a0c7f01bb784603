package goqubit

import "time"

// Tracker wraps a Qubit and provides gate history recording and state
// classification change detection.
type Tracker struct {
	qubit         *Qubit
	history       []Gate
	lastClass     StateClass
	gateCallback  func(Gate)
	classCallback func(StateClass)
	cfg           *config
}

// NewTracker creates a new tracker. By default it starts from |0⟩ with
// history recording enabled.
func NewTracker(opts ...Option) *Tracker {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	q := cfg.initial.Clone()
	return &Tracker{
		qubit:     q,
		lastClass: Classify(q, cfg.classTolerance),
		cfg:       cfg,
	}
}

// SetGateCallback sets a callback that fires after each applied gate.
func (t *Tracker) SetGateCallback(cb func(Gate)) {
	t.gateCallback = cb
}

// SetClassCallback sets a callback that fires when the state moves into
// a different class (e.g. from a basis state into superposition).
func (t *Tracker) SetClassCallback(cb func(StateClass)) {
	t.classCallback = cb
}

// Reset resets the tracker to its configured initial state and clears
// the gate history.
func (t *Tracker) Reset() {
	t.qubit = t.cfg.initial.Clone()
	t.history = nil
	t.lastClass = Classify(t.qubit, t.cfg.classTolerance)
}

// Apply applies gates in order, recording each one and checking for
// class transitions. Gates without a timestamp are stamped with the
// application time.
func (t *Tracker) Apply(gates ...Gate) {
	for _, g := range gates {
		if g.Time.IsZero() {
			g = g.WithTime(time.Now())
		}
		t.qubit.Apply(g)
		if t.cfg.history {
			t.history = append(t.history, g)
		}
		if t.gateCallback != nil {
			t.gateCallback(g)
		}
		t.checkClassTransition()
	}
}

// ApplyNotation parses a gate sequence and applies it.
func (t *Tracker) ApplyNotation(s string) error {
	gates, err := ParseGates(s)
	if err != nil {
		return err
	}
	t.Apply(gates...)
	return nil
}

// Undo reverses the most recent gate by applying its inverse and removes
// it from the history. Requires history recording.
func (t *Tracker) Undo() (Gate, error) {
	if len(t.history) == 0 {
		return Gate{}, ErrEmptyHistory
	}

	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]
	t.qubit.Apply(last.Inverse())
	t.checkClassTransition()
	return last, nil
}

// checkClassTransition fires the class callback when the state class
// changed since the previous check.
func (t *Tracker) checkClassTransition() {
	current := Classify(t.qubit, t.cfg.classTolerance)
	if current != t.lastClass {
		t.lastClass = current
		if t.classCallback != nil {
			t.classCallback(current)
		}
	}
}

// Class returns the current state class.
func (t *Tracker) Class() StateClass {
	return Classify(t.qubit, t.cfg.classTolerance)
}

// History returns the recorded gates in application order.
// The returned slice is shared; callers must not modify it.
func (t *Tracker) History() []Gate {
	return t.history
}

// Notation returns the recorded history as a notation string.
func (t *Tracker) Notation() string {
	return FormatGates(t.history)
}

// Qubit returns the underlying qubit for inspection.
func (t *Tracker) Qubit() *Qubit {
	return t.qubit
}

// StateString returns the ket rendering of the current state.
func (t *Tracker) StateString() string {
	return t.qubit.String()
}
