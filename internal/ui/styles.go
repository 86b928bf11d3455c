// Package ui holds the terminal styling for topcoder-lib-setup output.
// Only the tool's own progress and summary lines are styled; npm writes to
// the inherited streams directly and is never touched.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	colorPrimary = lipgloss.Color("#2A9D8F") // Teal
	colorSuccess = lipgloss.Color("#10B981") // Green
	colorDanger  = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#6B7280") // Gray
)

var (
	stepStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorDanger)

	detailStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// Success renders a success line.
func Success(s string) string { return successStyle.Render(s) }

// Error renders an error line.
func Error(s string) string { return errorStyle.Render(s) }

// Detail renders a secondary detail line.
func Detail(s string) string { return detailStyle.Render(s) }

// StepWriter styles each line written through it as a step header.
// It is handed to the core as a plain io.Writer.
type StepWriter struct {
	W io.Writer
}

// Write styles p (one progress line, trailing newline included) and writes
// it to the underlying writer.
func (sw StepWriter) Write(p []byte) (int, error) {
	line := string(p)
	n := len(line)
	for n > 0 && (line[n-1] == '\n' || line[n-1] == '\r') {
		n--
	}
	if _, err := fmt.Fprintln(sw.W, stepStyle.Render(line[:n])); err != nil {
		return 0, err
	}
	return len(p), nil
}
