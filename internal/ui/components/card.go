package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/santgross/BIOFIT-EXPERT/internal/ui/theme"
)

const (
	maxContentWidth = 64
	minContentWidth = 24
)

// ContentWidth is the shared inner width of every card on a screen, so
// stacked boxes line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, minContentWidth), maxContentWidth)
}

// Card renders content in a rounded box of content width cw.
func Card(content string, cw int) string {
	return AccentCard(content, cw, theme.Border)
}

// AccentCard is a Card whose border takes the given color, usually the
// module accent from theme.ModuleColors.
func AccentCard(content string, cw int, accent color.Color) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// Frame fills width x height with a double border and centers content
// inside it. The brand line sits under the content.
func Frame(content string, width, height int) string {
	brand := lipgloss.NewStyle().Foreground(theme.TextDim).Render("BIOFIT · Psyllium Muciloide")
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, content, "", brand))
}

// ActionButton renders a highlighted call to action such as a download.
func ActionButton(label string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		Padding(0, 1).
		Render("▸ " + label)
}

// ModuleAccent returns the accent color of a module id, falling back to the
// brand color.
func ModuleAccent(module string) color.Color {
	if c, ok := theme.ModuleColors[module]; ok {
		return c
	}
	return theme.Primary
}
