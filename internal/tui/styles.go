// Package tui holds the terminal styles and terminal detection helpers shared
// by the sleep-progress output.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal or its size is
// unknown.
const DefaultWidth = 80

// Color palette
var (
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#38B2AC", Dark: "#4FD1C5"}
)

// Gradient endpoints for the progress bar fill. bubbles/progress wants plain
// hex strings, so these follow the dark variants of the palette.
const (
	GradientStart = "#7C3AED"
	GradientEnd   = "#4FD1C5"
)

// ETAStyle returns the style of the remaining-time label after the bar,
// bound to r so colors follow the output the bar is drawn on.
func ETAStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Foreground(ColorSecondary)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the column count of the terminal behind f, or DefaultWidth.
func Width(f *os.File) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}
