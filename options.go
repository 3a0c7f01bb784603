package goqubit

// Option configures Tracker behavior.
type Option func(*config)

type config struct {
	history        bool
	initial        *Qubit
	classTolerance float64
}

func defaultConfig() *config {
	return &config{
		history:        true,
		initial:        New(),
		classTolerance: Epsilon,
	}
}

// WithHistory enables or disables gate history recording.
// When enabled (default), applied gates are stored and accessible via
// History(). Disable this for long-running sessions to reduce memory
// usage; Undo is unavailable without history.
func WithHistory(enabled bool) Option {
	return func(c *config) {
		c.history = enabled
	}
}

// WithInitialState sets the state the tracker starts from and returns to
// on Reset. The state is cloned; the caller's value is not shared.
func WithInitialState(q *Qubit) Option {
	return func(c *config) {
		if q != nil {
			c.initial = q.Clone()
		}
	}
}

// WithClassTolerance sets the tolerance used for state classification.
// Useful when gate sequences accumulate floating-point error beyond the
// default Epsilon. Non-positive values keep the default.
func WithClassTolerance(tol float64) Option {
	return func(c *config) {
		if tol > 0 {
			c.classTolerance = tol
		}
	}
}
