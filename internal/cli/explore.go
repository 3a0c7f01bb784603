package cli

import (
	"errors"
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/spinhalf/goqubit"
	"github.com/spinhalf/goqubit/internal/session"
)

var exploreNoSave bool

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Interactive gate exploration mode",
	Long: `Start an interactive TUI for applying gates to a qubit and watching
the state evolve in real time.

Keyboard shortcuts:
  x y z h      apply Pauli-X/Y/Z or Hadamard
  s / S        apply S / S'
  t / T        apply T / T'
  1 2 3        apply RX/RY/RZ with the current step angle
  [ / ]        halve / double the rotation step
  u            undo the last gate
  r            reset to |0⟩ and clear history
  q/Esc        quit (the session is saved unless --no-save)`,
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)

	exploreCmd.Flags().BoolVar(&exploreNoSave, "no-save", false, "Do not record the session to the database")
}

// Model
type exploreModel struct {
	tracker  *goqubit.Tracker
	step     float64 // rotation step angle in radians
	lastGate string
	err      error
	quitting bool
	width    int
	height   int
}

func newExploreModel() *exploreModel {
	return &exploreModel{
		tracker: goqubit.NewTracker(),
		step:    math.Pi / 8,
	}
}

func (m *exploreModel) Init() tea.Cmd {
	return nil
}

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *exploreModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil

	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "x":
		m.applyGate(goqubit.X)
	case "y":
		m.applyGate(goqubit.Y)
	case "z":
		m.applyGate(goqubit.Z)
	case "h":
		m.applyGate(goqubit.H)
	case "s":
		m.applyGate(goqubit.S)
	case "S":
		m.applyGate(goqubit.SDg)
	case "t":
		m.applyGate(goqubit.T)
	case "T":
		m.applyGate(goqubit.TDg)
	case "1":
		m.applyGate(goqubit.RX(m.step))
	case "2":
		m.applyGate(goqubit.RY(m.step))
	case "3":
		m.applyGate(goqubit.RZ(m.step))

	case "[":
		if m.step > math.Pi/64 {
			m.step /= 2
		}
	case "]":
		if m.step < 2*math.Pi {
			m.step *= 2
		}

	case "u":
		g, err := m.tracker.Undo()
		if err != nil {
			if errors.Is(err, goqubit.ErrEmptyHistory) {
				m.err = fmt.Errorf("nothing to undo")
			} else {
				m.err = err
			}
		} else {
			m.lastGate = g.Notation() + " undone"
		}

	case "r":
		m.tracker.Reset()
		m.lastGate = ""
	}

	return m, nil
}

func (m *exploreModel) applyGate(g goqubit.Gate) {
	m.tracker.Apply(g)
	m.lastGate = g.Notation()
}

func (m *exploreModel) View() string {
	if m.quitting {
		return ""
	}

	q := m.tracker.Qubit()
	var b strings.Builder

	b.WriteString(titleStyle.Render("qsim explore"))
	b.WriteString("\n\n")
	b.WriteString(renderState(q))
	b.WriteString(renderBloch(q))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Class: %s\n", m.tracker.Class().DisplayName())
	fmt.Fprintf(&b, "Step:  %s rad\n", gateStyle.Render(fmt.Sprintf("%.4f", m.step)))

	if m.lastGate != "" {
		fmt.Fprintf(&b, "Last:  %s\n", gateStyle.Render(m.lastGate))
	}

	history := m.tracker.History()
	if len(history) > 0 {
		tail := history
		if len(tail) > 12 {
			tail = tail[len(tail)-12:]
		}
		fmt.Fprintf(&b, "Gates (%d): %s\n", len(history), goqubit.FormatGates(tail))
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("x y z h s/S t/T gates · 1/2/3 RX/RY/RZ · [/] step · u undo · r reset · q quit"))
	b.WriteString("\n")

	return b.String()
}

func runExplore(cmd *cobra.Command, args []string) error {
	model := newExploreModel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	m, ok := final.(*exploreModel)
	if !ok || exploreNoSave || len(m.tracker.History()) == 0 {
		return nil
	}

	id, err := saveExploreSession(m.tracker)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Printf("Saved session: %s (%d gates)\n", id, len(m.tracker.History()))
	return nil
}

// saveExploreSession persists the tracker's full history as one session.
func saveExploreSession(tr *goqubit.Tracker) (string, error) {
	db, err := openDB()
	if err != nil {
		return "", err
	}
	defer db.Close()

	stateFile, err := session.NewDefaultStateFile()
	if err != nil {
		return "", err
	}

	sess := session.NewSession(db, stateFile)
	id, err := sess.Start(goqubit.New(), "", version)
	if err != nil {
		return "", err
	}

	for _, g := range tr.History() {
		if err := sess.RecordGate(g); err != nil {
			return "", err
		}
	}

	if err := sess.End(); err != nil {
		return "", err
	}
	return id, nil
}
