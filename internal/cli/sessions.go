package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/spinhalf/goqubit"
	"github.com/spinhalf/goqubit/internal/session"
	"github.com/spinhalf/goqubit/internal/storage"
)

var (
	showLast      bool
	exportOutPath string
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Inspect recorded gate sessions",
	Long:  `List, show, and export gate sessions recorded by apply --save and explore.`,
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	RunE:  runSessionsList,
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show a session's gate-by-gate history",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSessionsShow,
}

var sessionsExportCmd = &cobra.Command{
	Use:   "export [session-id]",
	Short: "Export a session as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSessionsExport,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)

	sessionsCmd.AddCommand(sessionsListCmd)

	sessionsCmd.AddCommand(sessionsShowCmd)
	sessionsShowCmd.Flags().BoolVar(&showLast, "last", false, "Show the most recent session")

	sessionsCmd.AddCommand(sessionsExportCmd)
	sessionsExportCmd.Flags().BoolVar(&showLast, "last", false, "Export the most recent session")
	sessionsExportCmd.Flags().StringVarP(&exportOutPath, "output", "o", "", "Output file (default: stdout)")
}

// resolveSession picks a session from the positional arg, --last, or the
// state file's last recorded session.
func resolveSession(repo *storage.SessionRepository, args []string) (*storage.Session, error) {
	if len(args) == 1 {
		s, err := repo.Get(args[0])
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, fmt.Errorf("session %s not found", args[0])
		}
		return s, nil
	}

	if !showLast {
		if sf, err := session.NewDefaultStateFile(); err == nil {
			if id := sf.State().LastSessionID; id != "" {
				if s, err := repo.Get(id); err == nil && s != nil {
					return s, nil
				}
			}
		}
	}

	s, err := repo.GetLast()
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("no sessions recorded yet")
	}
	return s, nil
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(50)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet")
		return nil
	}

	gateRepo := storage.NewGateRepository(db)
	for _, s := range sessions {
		count, _ := gateRepo.CountBySession(s.SessionID)

		status := "active"
		if s.EndedAt != nil {
			status = "ended"
		}
		fmt.Printf("%s  %s  %3d gates  %s", s.SessionID, s.StartedAt.Format(time.RFC3339), count, status)
		if s.Notes != nil {
			fmt.Printf("  %q", *s.Notes)
		}
		fmt.Println()
	}
	return nil
}

func runSessionsShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := resolveSession(storage.NewSessionRepository(db), args)
	if err != nil {
		return err
	}

	records, err := storage.NewGateRepository(db).GetBySession(s.SessionID)
	if err != nil {
		return err
	}

	fmt.Printf("Session: %s\n", s.SessionID)
	fmt.Printf("Started: %s\n", s.StartedAt.Format(time.RFC3339))
	if s.EndedAt != nil {
		fmt.Printf("Ended:   %s\n", s.EndedAt.Format(time.RFC3339))
	}
	if s.Notes != nil {
		fmt.Printf("Notes:   %s\n", *s.Notes)
	}
	initial := s.InitialState
	fmt.Printf("Initial: %s\n", initial.String())
	fmt.Println()

	for _, rec := range records {
		state := rec.State
		fmt.Printf("%3d  %-10s  %s  P(0)=%.4f P(1)=%.4f\n",
			rec.GateIndex, rec.Notation, state.String(), rec.ProbZero, rec.ProbOne)
	}

	if s.FinalProbZero != nil && s.FinalProbOne != nil {
		fmt.Println()
		fmt.Printf("Final: P(|0⟩)=%.4f P(|1⟩)=%.4f\n", *s.FinalProbZero, *s.FinalProbOne)
	}
	return nil
}

// exported JSON structures

// SessionExport is the JSON structure written by sessions export.
type SessionExport struct {
	SessionID  string       `json:"session_id"`
	StartedAt  string       `json:"started_at"`
	EndedAt    string       `json:"ended_at,omitempty"`
	DurationMs int64        `json:"duration_ms,omitempty"`
	Notes      string       `json:"notes,omitempty"`
	Initial    StateExport  `json:"initial_state"`
	Gates      []GateExport `json:"gates"`
	Notation   string       `json:"notation"`
}

// StateExport is a JSON-friendly qubit state snapshot.
type StateExport struct {
	AlphaRe  float64 `json:"alpha_re"`
	AlphaIm  float64 `json:"alpha_im"`
	BetaRe   float64 `json:"beta_re"`
	BetaIm   float64 `json:"beta_im"`
	ProbZero float64 `json:"prob_zero"`
	ProbOne  float64 `json:"prob_one"`
}

// GateExport is a single gate application in the export timeline.
type GateExport struct {
	Index    int         `json:"index"`
	TsMs     int64       `json:"ts_ms"`
	Notation string      `json:"notation"`
	Kind     string      `json:"kind"`
	Theta    float64     `json:"theta,omitempty"`
	After    StateExport `json:"after"`
}

func stateExport(q goqubit.Qubit) StateExport {
	return StateExport{
		AlphaRe:  real(q.Alpha),
		AlphaIm:  imag(q.Alpha),
		BetaRe:   real(q.Beta),
		BetaIm:   imag(q.Beta),
		ProbZero: q.ProbZero(),
		ProbOne:  q.ProbOne(),
	}
}

func runSessionsExport(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := resolveSession(storage.NewSessionRepository(db), args)
	if err != nil {
		return err
	}

	records, err := storage.NewGateRepository(db).GetBySession(s.SessionID)
	if err != nil {
		return err
	}

	export := SessionExport{
		SessionID: s.SessionID,
		StartedAt: s.StartedAt.Format(time.RFC3339),
		Initial:   stateExport(s.InitialState),
		Gates:     make([]GateExport, 0, len(records)),
	}
	if s.EndedAt != nil {
		export.EndedAt = s.EndedAt.Format(time.RFC3339)
	}
	if s.DurationMs != nil {
		export.DurationMs = *s.DurationMs
	}
	if s.Notes != nil {
		export.Notes = *s.Notes
	}

	notations := make([]goqubit.Gate, 0, len(records))
	for _, rec := range records {
		export.Gates = append(export.Gates, GateExport{
			Index:    rec.GateIndex,
			TsMs:     rec.TsMs,
			Notation: rec.Notation,
			Kind:     rec.Kind,
			Theta:    rec.Theta,
			After:    stateExport(rec.State),
		})
		notations = append(notations, goqubit.Gate{Kind: goqubit.Kind(rec.Kind), Theta: rec.Theta})
	}
	export.Notation = goqubit.FormatGates(notations)

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal export: %w", err)
	}

	if exportOutPath == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(exportOutPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("Exported session %s to %s\n", s.SessionID, exportOutPath)
	return nil
}
