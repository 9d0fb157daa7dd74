// Package output prints styled terminal output for the CLI commands.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// longest bar drawn by Bars
const barWidth = 40

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

	out io.Writer = os.Stdout
)

// SetOutput redirects everything printed by the package
func SetOutput(w io.Writer) {
	out = w
}

func Success(msg string) {
	fmt.Fprintln(out, successStyle.Render("✔ "+msg))
}

func Error(msg string) {
	fmt.Fprintln(out, errorStyle.Render("✘ "+msg))
}

func Info(msg string) {
	fmt.Fprintln(out, infoStyle.Render(msg))
}

// Step prints an indented line in gray
func Step(msg string) {
	fmt.Fprintln(out, stepStyle.Render("   "+msg))
}

// Bars prints one horizontal bar per label, scaled to the largest value.
// labels and values must have the same length.
func Bars(labels []string, values []int) {
	if len(labels) == 0 {
		Step("(empty)")
		return
	}

	labelWidth, highest := 0, 0
	for i, label := range labels {
		labelWidth = max(labelWidth, len(label))
		highest = max(highest, values[i])
	}

	for i, label := range labels {
		length := 0
		if highest > 0 {
			length = values[i] * barWidth / highest
		}

		fmt.Fprintf(out, "   %-*s %s %d\n", labelWidth, label, barStyle.Render(strings.Repeat("█", length)), values[i])
	}
}
