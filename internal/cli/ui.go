package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/hillclimb/climb"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorGray  = lipgloss.Color("245")
)

var (
	styleLabel       = lipgloss.NewStyle().Foreground(colorGray)
	styleSteps       = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleUnreachable = lipgloss.NewStyle().Foreground(colorRed)
	styleSuccess     = lipgloss.NewStyle().Foreground(colorGreen)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

// printAnswer writes one "label: answer" line.
func printAnswer(w io.Writer, label string, a climb.Answer, color bool) {
	if !color {
		fmt.Fprintf(w, "%s: %s\n", label, a)
		return
	}
	icon, value := styleSuccess.Render(iconSuccess), styleSteps.Render(a.String())
	if !a.Found {
		icon, value = styleUnreachable.Render(iconError), styleUnreachable.Render(a.String())
	}
	fmt.Fprintf(w, "%s %s %s\n", icon, styleLabel.Render(label+":"), value)
}
