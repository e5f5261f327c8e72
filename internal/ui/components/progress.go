package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/santgross/BIOFIT-EXPERT/internal/ui/theme"
)

// ProgressBar displays a horizontal bar, used for the level track and the
// trivia countdown.
type ProgressBar struct {
	Label string
	// Percent is clamped to [0, 1].
	Percent float64
	// Suffix is printed after the bar; empty prints the percentage.
	Suffix string
	Width  int
	Fill   color.Color
}

// NewProgressBar creates a bar in the secondary brand color.
func NewProgressBar(label string, percent float64, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, Width: width, Fill: theme.Secondary}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var b strings.Builder
	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  ")
	}

	suffix := p.Suffix
	if suffix == "" {
		suffix = fmt.Sprintf("%d%%", int(clamp01(p.Percent)*100))
	}
	suffix = "  " + suffix

	barWidth := max(p.Width-lipgloss.Width(b.String())-lipgloss.Width(suffix), 4)
	filled := int(float64(barWidth) * clamp01(p.Percent))

	fill := p.Fill
	if fill == nil {
		fill = theme.Secondary
	}
	b.WriteString(lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)))
	b.WriteString(lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix))
	return b.String()
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
