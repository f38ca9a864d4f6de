package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Define common styles
var (
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("35")).
			Bold(true)
)

// NewLogger creates the command logger. Verbose enables debug output.
func NewLogger(w io.Writer, prefix string, verbose bool) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: prefix,
		Level:  level,
	})
}
