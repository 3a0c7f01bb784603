package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spinhalf/goqubit"
)

// Styles shared by the demo, apply, and explore commands.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	stateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	gateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// probBar renders a probability as a fixed-width bar, e.g. "███░░░░░░░ 30.0%".
func probBar(p float64, width int) string {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	filled := int(p*float64(width) + 0.5)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %5.1f%%", barStyle.Render(bar), p*100)
}

// renderState formats the ket state plus both probability bars.
func renderState(q *goqubit.Qubit) string {
	var b strings.Builder
	b.WriteString(stateStyle.Render("State: " + q.String()))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  |0⟩ %s\n", probBar(q.ProbZero(), 20))
	fmt.Fprintf(&b, "  |1⟩ %s\n", probBar(q.ProbOne(), 20))
	return b.String()
}

// renderBloch formats the Bloch sphere coordinates on one line.
func renderBloch(q *goqubit.Qubit) string {
	x, y, z := q.BlochVector()
	return dimStyle.Render(fmt.Sprintf("Bloch: (%.3f, %.3f, %.3f)", x, y, z))
}
