package storage

import (
	"database/sql"
	"fmt"

	"github.com/spinhalf/goqubit"
)

// GateRecord represents an applied gate in the database, together with
// the state snapshot taken right after the application.
type GateRecord struct {
	GateID    int64
	SessionID string
	GateIndex int
	TsMs      int64
	Notation  string
	Kind      string
	Theta     float64
	State     goqubit.Qubit
	ProbZero  float64
	ProbOne   float64
}

// GateRepository provides CRUD operations for gate records.
type GateRepository struct {
	db *DB
}

// NewGateRepository creates a new gate repository.
func NewGateRepository(db *DB) *GateRepository {
	return &GateRepository{db: db}
}

// Create records a single applied gate and returns its ID.
// after is the qubit state immediately following the application.
func (r *GateRepository) Create(sessionID string, gateIndex int, g goqubit.Gate, after *goqubit.Qubit) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO gates (session_id, gate_index, ts_ms, notation, kind, theta,
			alpha_re, alpha_im, beta_re, beta_im, prob_zero, prob_one)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, sessionID, gateIndex, g.Time.UnixMilli(), g.Notation(), string(g.Kind), g.Theta,
		real(after.Alpha), imag(after.Alpha), real(after.Beta), imag(after.Beta),
		after.ProbZero(), after.ProbOne())

	if err != nil {
		return 0, fmt.Errorf("failed to create gate record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get gate ID: %w", err)
	}

	return id, nil
}

// CreateBatch records a replayed gate sequence in a single transaction.
// The sequence is applied to a clone of the session's initial state so
// each row carries its post-application snapshot.
func (r *GateRepository) CreateBatch(sessionID string, initial *goqubit.Qubit, gates []goqubit.Gate) error {
	q := initial.Clone()

	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, g := range gates {
			q.Apply(g)
			_, err := tx.Exec(`
				INSERT INTO gates (session_id, gate_index, ts_ms, notation, kind, theta,
					alpha_re, alpha_im, beta_re, beta_im, prob_zero, prob_one)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, sessionID, i, g.Time.UnixMilli(), g.Notation(), string(g.Kind), g.Theta,
				real(q.Alpha), imag(q.Alpha), real(q.Beta), imag(q.Beta),
				q.ProbZero(), q.ProbOne())
			if err != nil {
				return fmt.Errorf("failed to create gate record %d: %w", i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all gate records for a session in order.
func (r *GateRepository) GetBySession(sessionID string) ([]GateRecord, error) {
	rows, err := r.db.Query(`
		SELECT gate_id, session_id, gate_index, ts_ms, notation, kind, theta,
			alpha_re, alpha_im, beta_re, beta_im, prob_zero, prob_one
		FROM gates
		WHERE session_id = ?
		ORDER BY gate_index
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get gate records: %w", err)
	}
	defer rows.Close()

	var records []GateRecord
	for rows.Next() {
		var rec GateRecord
		var aRe, aIm, bRe, bIm float64

		if err := rows.Scan(
			&rec.GateID, &rec.SessionID, &rec.GateIndex, &rec.TsMs,
			&rec.Notation, &rec.Kind, &rec.Theta,
			&aRe, &aIm, &bRe, &bIm, &rec.ProbZero, &rec.ProbOne,
		); err != nil {
			return nil, fmt.Errorf("failed to scan gate record: %w", err)
		}

		rec.State = goqubit.Qubit{
			Alpha: complex(aRe, aIm),
			Beta:  complex(bRe, bIm),
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate gate records: %w", err)
	}

	return records, nil
}

// CountBySession returns the number of gates recorded for a session.
func (r *GateRepository) CountBySession(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM gates WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count gate records: %w", err)
	}
	return count, nil
}
