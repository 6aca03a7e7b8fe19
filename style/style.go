// Package style wraps lipgloss into small render functions.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/moodbuster/moodbuster/color"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a renderer painting the foreground.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

// Truncate returns a renderer that hard-wraps to max columns.
func Truncate(max int) func(string) string {
	return func(s string) string { return New().Width(max).Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

var Title = func(s string) string {
	return New().Foreground(color.New("230")).Background(color.New("62")).Padding(0, 1).Render(s)
}

var ErrorTitle = func(s string) string {
	return New().Foreground(color.New("230")).Background(color.Red).Padding(0, 1).Render(s)
}

// Tag renders s as a padded colored block, like the field badges on a suggestion card.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(fg).Background(bg).Padding(0, 1).Render(s) }
}

// TagPalette cycles badge colors across card rows.
var TagPalette = []lipgloss.Color{Mauve, Blue, Green, Peach, Pink, Teal, Yellow, Sapphire}
