// Package style centralizes terminal styling for dotsync output
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Styles used across dotsync output
var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	PathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	DiffAddStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	DiffDelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	DiffMetaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// ColorEnabled reports whether stdout wants styled output and flips
// pterm's global color switch accordingly
func ColorEnabled() bool {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		pterm.DisableColor()
		return false
	}
	if termenv.EnvColorProfile() == termenv.Ascii {
		pterm.DisableColor()
		return false
	}
	pterm.EnableColor()
	return true
}
