package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spinhalf/goqubit"
)

// Session represents a recorded gate session in the database.
type Session struct {
	SessionID     string
	StartedAt     time.Time
	EndedAt       *time.Time
	DurationMs    *int64
	InitialState  goqubit.Qubit
	FinalProbZero *float64
	FinalProbOne  *float64
	Notes         *string
	AppVersion    *string
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session starting from the given state and returns its ID.
func (r *SessionRepository) Create(initial *goqubit.Qubit, notes, appVersion string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var notesPtr, appVersionPtr *string
	if notes != "" {
		notesPtr = &notes
	}
	if appVersion != "" {
		appVersionPtr = &appVersion
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at,
			initial_alpha_re, initial_alpha_im, initial_beta_re, initial_beta_im,
			notes, app_version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, startedAt.Format(time.RFC3339),
		real(initial.Alpha), imag(initial.Alpha), real(initial.Beta), imag(initial.Beta),
		notesPtr, appVersionPtr)

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// End marks a session as complete and records the final probabilities.
func (r *SessionRepository) End(sessionID string, final *goqubit.Qubit) error {
	endedAt := time.Now().UTC()

	// Get start time to calculate duration
	var startedAtStr string
	err := r.db.QueryRow("SELECT started_at FROM sessions WHERE session_id = ?", sessionID).Scan(&startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to get session start time: %w", err)
	}

	startedAt, err := time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to parse start time: %w", err)
	}

	durationMs := endedAt.Sub(startedAt).Milliseconds()

	_, err = r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, duration_ms = ?, final_prob_zero = ?, final_prob_one = ?
		WHERE session_id = ?
	`, endedAt.Format(time.RFC3339), durationMs, final.ProbZero(), final.ProbOne(), sessionID)

	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	return nil
}

// Get retrieves a session by ID. Returns nil when not found.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	var s Session
	var startedAtStr string
	var endedAtStr sql.NullString
	var aRe, aIm, bRe, bIm float64

	err := r.db.QueryRow(`
		SELECT session_id, started_at, ended_at, duration_ms,
			initial_alpha_re, initial_alpha_im, initial_beta_re, initial_beta_im,
			final_prob_zero, final_prob_one, notes, app_version
		FROM sessions
		WHERE session_id = ?
	`, sessionID).Scan(
		&s.SessionID, &startedAtStr, &endedAtStr, &s.DurationMs,
		&aRe, &aIm, &bRe, &bIm,
		&s.FinalProbZero, &s.FinalProbOne, &s.Notes, &s.AppVersion,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	s.InitialState = goqubit.Qubit{
		Alpha: complex(aRe, aIm),
		Beta:  complex(bRe, bIm),
	}
	s.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
	if endedAtStr.Valid {
		t, _ := time.Parse(time.RFC3339, endedAtStr.String)
		s.EndedAt = &t
	}

	return &s, nil
}

// GetLast retrieves the most recent session.
func (r *SessionRepository) GetLast() (*Session, error) {
	var sessionID string
	err := r.db.QueryRow(`
		SELECT session_id FROM sessions
		ORDER BY started_at DESC
		LIMIT 1
	`).Scan(&sessionID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last session: %w", err)
	}

	return r.Get(sessionID)
}

// List retrieves recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id FROM sessions
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan session id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	sessions := make([]Session, 0, len(ids))
	for _, id := range ids {
		s, err := r.Get(id)
		if err != nil {
			return nil, err
		}
		if s != nil {
			sessions = append(sessions, *s)
		}
	}

	return sessions, nil
}

// Delete removes a session and its gates.
func (r *SessionRepository) Delete(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
