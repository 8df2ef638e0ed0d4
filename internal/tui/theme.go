package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha, the subset the host uses.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

var (
	statusStyle    = lipgloss.NewStyle().Foreground(colorGreen)
	statusErrStyle = lipgloss.NewStyle().Foreground(colorRed)
	footerStyle    = lipgloss.NewStyle().Background(colorMantle)
	keyStyle       = lipgloss.NewStyle().Foreground(colorPink).Bold(true)
	helpDescStyle  = lipgloss.NewStyle().Foreground(colorOverlay1)
	helpSepStyle   = lipgloss.NewStyle().Foreground(colorSurface0)
)

func newHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = helpDescStyle
	h.Styles.ShortSeparator = helpSepStyle
	return h
}
