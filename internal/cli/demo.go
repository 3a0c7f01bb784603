package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/spinhalf/goqubit"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the gate demonstration sequences",
	Long: `Run a series of demonstrations showing how the standard gates act on
a single qubit:

  1. Basic gates (H, X, Z)
  2. Rotation gates (RY, RX, RZ)
  3. Creating superposition
  4. Phase gates (S, T)
  5. Gate reversibility`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func printState(msg string, q *goqubit.Qubit) {
	fmt.Println()
	fmt.Println(msg)
	fmt.Println(renderState(q))
	if verbose {
		fmt.Println(renderBloch(q))
	}
}

func applyAndPrint(q *goqubit.Qubit, g goqubit.Gate, msg string) {
	q.Apply(g)
	label := "After " + gateStyle.Render(g.Notation())
	if msg != "" {
		label += " " + msg
	}
	printState(label+":", q)
}

func runDemo(cmd *cobra.Command, args []string) error {
	// Demo 1: Basic gates
	fmt.Println(titleStyle.Render("═══ Demo 1: Basic Gates ═══"))
	q := goqubit.New()
	printState("Initial state: |0⟩", q)
	applyAndPrint(q, goqubit.H, "(Hadamard)")
	applyAndPrint(q, goqubit.X, "(NOT)")
	applyAndPrint(q, goqubit.Z, "(phase flip)")

	// Demo 2: Rotation gates
	fmt.Println()
	fmt.Println(titleStyle.Render("═══ Demo 2: Rotation Gates ═══"))
	q = goqubit.New()
	printState("Initial state: |0⟩", q)
	applyAndPrint(q, goqubit.RY(math.Pi/4), "")
	applyAndPrint(q, goqubit.RX(math.Pi/2), "")
	applyAndPrint(q, goqubit.RZ(math.Pi/3), "")

	// Demo 3: Creating superposition
	fmt.Println()
	fmt.Println(titleStyle.Render("═══ Demo 3: Creating Superposition ═══"))
	q = goqubit.New()
	printState("Start with |0⟩:", q)
	applyAndPrint(q, goqubit.H, "→ equal superposition")

	// Demo 4: Phase gates
	fmt.Println()
	fmt.Println(titleStyle.Render("═══ Demo 4: Phase Gates ═══"))
	q = goqubit.New()
	q.Apply(goqubit.H)
	printState("Start with |+⟩ = H|0⟩:", q)
	applyAndPrint(q, goqubit.S, "(π/2 phase)")
	applyAndPrint(q, goqubit.T, "(π/4 phase)")

	// Demo 5: Reversibility
	fmt.Println()
	fmt.Println(titleStyle.Render("═══ Demo 5: Gate Reversibility ═══"))
	q = goqubit.New()
	printState("Initial: |0⟩", q)

	forward := []goqubit.Gate{goqubit.H, goqubit.X, goqubit.Y}
	for _, g := range forward {
		q.Apply(g)
		fmt.Printf("  → Apply %s\n", gateStyle.Render(g.Notation()))
	}
	printState("After H X Y:", q)

	fmt.Println("  Reversing...")
	for i := len(forward) - 1; i >= 0; i-- {
		q.Apply(forward[i].Inverse())
		fmt.Printf("  → Apply %s (reverse)\n", gateStyle.Render(forward[i].Inverse().Notation()))
	}
	printState("Final state (back to |0⟩):", q)

	return nil
}
