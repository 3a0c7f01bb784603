package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/spinhalf/goqubit"

	"github.com/spinhalf/goqubit/internal/storage"
)

// State represents the current state of a recording session.
type State int

const (
	StateIdle State = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the session state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session manages a gate recording session: it drives a tracker and
// persists each applied gate to the database.
type Session struct {
	db        *storage.DB
	stateFile *StateFile

	mu        sync.RWMutex
	state     State
	sessionID string
	startTime time.Time
	gateIndex int
	tracker   *goqubit.Tracker

	// Repositories
	sessionRepo *storage.SessionRepository
	gateRepo    *storage.GateRepository

	// Callbacks
	onGate  func(goqubit.Gate)
	onClass func(goqubit.StateClass)
}

// NewSession creates a new session manager.
func NewSession(db *storage.DB, stateFile *StateFile) *Session {
	return &Session{
		db:          db,
		stateFile:   stateFile,
		state:       StateIdle,
		sessionRepo: storage.NewSessionRepository(db),
		gateRepo:    storage.NewGateRepository(db),
	}
}

// SetGateCallback sets the callback for recorded gates.
func (s *Session) SetGateCallback(cb func(goqubit.Gate)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onGate = cb
}

// SetClassCallback sets the callback for state class changes.
func (s *Session) SetClassCallback(cb func(goqubit.StateClass)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onClass = cb
}

// State returns the current session state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SessionID returns the current session ID.
func (s *Session) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// ElapsedMs returns the elapsed time since session start in milliseconds.
func (s *Session) ElapsedMs() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.startTime.IsZero() {
		return 0
	}
	return time.Since(s.startTime).Milliseconds()
}

// Start begins a new recording session from the given initial state.
func (s *Session) Start(initial *goqubit.Qubit, notes, appVersion string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return "", fmt.Errorf("session already recording (id %s)", s.sessionID)
	}
	if initial == nil {
		initial = goqubit.New()
	}

	id, err := s.sessionRepo.Create(initial, notes, appVersion)
	if err != nil {
		return "", fmt.Errorf("failed to start session: %w", err)
	}

	tracker := goqubit.NewTracker(goqubit.WithInitialState(initial))
	if s.onClass != nil {
		tracker.SetClassCallback(s.onClass)
	}

	s.state = StateRecording
	s.sessionID = id
	s.startTime = time.Now()
	s.gateIndex = 0
	s.tracker = tracker

	if s.stateFile != nil {
		if err := s.stateFile.SetLastSessionID(id); err != nil {
			return "", fmt.Errorf("failed to save state file: %w", err)
		}
	}

	return id, nil
}

// RecordGate applies a gate to the session state and persists it.
func (s *Session) RecordGate(g goqubit.Gate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return fmt.Errorf("no active recording session")
	}

	if g.Time.IsZero() {
		g = g.WithTime(time.Now())
	}
	s.tracker.Apply(g)

	if _, err := s.gateRepo.Create(s.sessionID, s.gateIndex, g, s.tracker.Qubit()); err != nil {
		return fmt.Errorf("failed to record gate: %w", err)
	}
	s.gateIndex++

	if s.onGate != nil {
		s.onGate(g)
	}

	return nil
}

// RecordNotation parses a gate sequence and records each gate.
func (s *Session) RecordNotation(notation string) error {
	gates, err := goqubit.ParseGates(notation)
	if err != nil {
		return err
	}
	for _, g := range gates {
		if err := s.RecordGate(g); err != nil {
			return err
		}
	}
	return nil
}

// Undo reverses the most recent gate. The undone gate remains in the
// database history; undo is itself recorded as the inverse gate.
func (s *Session) Undo() error {
	s.mu.Lock()
	last, err := s.lastGateLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	return s.RecordGate(last.Inverse())
}

func (s *Session) lastGateLocked() (goqubit.Gate, error) {
	if s.state != StateRecording {
		return goqubit.Gate{}, fmt.Errorf("no active recording session")
	}
	history := s.tracker.History()
	if len(history) == 0 {
		return goqubit.Gate{}, goqubit.ErrEmptyHistory
	}
	return history[len(history)-1], nil
}

// Qubit returns a copy of the current session state.
func (s *Session) Qubit() *goqubit.Qubit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tracker == nil {
		return goqubit.New()
	}
	return s.tracker.Qubit().Clone()
}

// Class returns the current state classification.
func (s *Session) Class() goqubit.StateClass {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tracker == nil {
		return goqubit.ClassZero
	}
	return s.tracker.Class()
}

// GateCount returns the number of gates recorded so far.
func (s *Session) GateCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gateIndex
}

// End finishes the recording session and stores the final probabilities.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return fmt.Errorf("no active recording session")
	}

	if err := s.sessionRepo.End(s.sessionID, s.tracker.Qubit()); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	s.state = StateEnded
	return nil
}
