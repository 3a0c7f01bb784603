package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spinhalf/goqubit"
	"github.com/spinhalf/goqubit/internal/session"
)

var (
	applyOne   bool
	applyAlpha string
	applyBeta  string
	applySave  bool
	applyNotes string
)

var applyCmd = &cobra.Command{
	Use:   "apply \"GATE [GATE ...]\"",
	Short: "Apply a gate sequence to a qubit",
	Long: `Apply a space-separated gate sequence to a qubit and print the
resulting state.

Gate notation:
  X Y Z H S S' T T'      fixed gates
  RX(a) RY(a) RZ(a)      rotations; angles accept radians or pi fractions

Examples:
  qsim apply "H X RZ(pi/3)"
  qsim apply --one "X"
  qsim apply --alpha 3 --beta 4 "RZ(pi)"
  qsim apply --save --notes "bell prep attempt" "H S"`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().BoolVar(&applyOne, "one", false, "Start from |1⟩ instead of |0⟩")
	applyCmd.Flags().StringVar(&applyAlpha, "alpha", "", "Initial |0⟩ amplitude, e.g. \"0.6\" or \"0.6+0.8i\" (normalized with --beta)")
	applyCmd.Flags().StringVar(&applyBeta, "beta", "", "Initial |1⟩ amplitude")
	applyCmd.Flags().BoolVar(&applySave, "save", false, "Record the session to the database")
	applyCmd.Flags().StringVar(&applyNotes, "notes", "", "Notes to store with the saved session")
}

// initialState builds the starting qubit from the flags.
func initialState() (*goqubit.Qubit, error) {
	if applyAlpha != "" || applyBeta != "" {
		if applyOne {
			return nil, fmt.Errorf("--one cannot be combined with --alpha/--beta")
		}

		alpha, err := parseAmplitude(applyAlpha)
		if err != nil {
			return nil, fmt.Errorf("invalid --alpha: %w", err)
		}
		beta, err := parseAmplitude(applyBeta)
		if err != nil {
			return nil, fmt.Errorf("invalid --beta: %w", err)
		}
		return goqubit.FromAmplitudes(alpha, beta), nil
	}

	if applyOne {
		return goqubit.NewOne(), nil
	}
	return goqubit.New(), nil
}

// parseAmplitude parses a complex amplitude; empty means zero.
func parseAmplitude(s string) (complex128, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseComplex(s, 128)
}

func runApply(cmd *cobra.Command, args []string) error {
	gates, err := goqubit.ParseGates(args[0])
	if err != nil {
		return err
	}

	q, err := initialState()
	if err != nil {
		return err
	}

	printState("Initial state:", q)

	if applySave {
		return applyRecorded(q, gates)
	}

	for _, g := range gates {
		q.Apply(g)
		if verbose {
			printState(fmt.Sprintf("After %s:", gateStyle.Render(g.Notation())), q)
		}
	}

	printState(fmt.Sprintf("After %s:", goqubit.FormatGates(gates)), q)
	fmt.Println(renderBloch(q))
	fmt.Printf("Classification: %s\n", goqubit.Classify(q, 0).DisplayName())
	return nil
}

// applyRecorded applies the sequence through a recording session so every
// gate lands in the database.
func applyRecorded(initial *goqubit.Qubit, gates []goqubit.Gate) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	stateFile, err := session.NewDefaultStateFile()
	if err != nil {
		return fmt.Errorf("failed to load state file: %w", err)
	}

	sess := session.NewSession(db, stateFile)
	id, err := sess.Start(initial, applyNotes, version)
	if err != nil {
		return err
	}

	for _, g := range gates {
		if err := sess.RecordGate(g); err != nil {
			return err
		}
		if verbose {
			printState(fmt.Sprintf("After %s:", gateStyle.Render(g.Notation())), sess.Qubit())
		}
	}

	if err := sess.End(); err != nil {
		return err
	}

	q := sess.Qubit()
	printState(fmt.Sprintf("After %s:", goqubit.FormatGates(gates)), q)
	fmt.Println(renderBloch(q))
	fmt.Printf("Classification: %s\n", goqubit.Classify(q, 0).DisplayName())
	fmt.Printf("Saved session: %s\n", id)
	return nil
}
