package ui

// Note: Warp terminal fix is in internal/termfix package, imported first in main.go

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorDarkGray = lipgloss.Color("8") // ANSI 8
)

var (
	labelStyle   = lipgloss.NewStyle().Bold(true)
	branchStyle  = lipgloss.NewStyle().Foreground(ColorGreen)
	ticketStyle  = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
	subjectStyle = lipgloss.NewStyle().Foreground(ColorYellow)
	dimStyle     = lipgloss.NewStyle().Foreground(ColorDarkGray)
)

// ConfigureColors pins lipgloss to the color profile termenv detects for the
// current output, so piped output degrades to plain text.
func ConfigureColors() {
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

func Label(s string) string   { return labelStyle.Render(s) }
func Branch(s string) string  { return branchStyle.Render(s) }
func Ticket(s string) string  { return ticketStyle.Render(s) }
func Subject(s string) string { return subjectStyle.Render(s) }
func Dim(s string) string     { return dimStyle.Render(s) }
