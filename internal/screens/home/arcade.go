package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/santgross/BIOFIT-EXPERT/internal/player"
	"github.com/santgross/BIOFIT-EXPERT/internal/progress"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/components"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/theme"
)

func contentWidth(frameWidth int) int {
	return components.ContentWidth(frameWidth)
}

func renderGreeting(name string, cw int) string {
	title := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
		Render(fmt.Sprintf("¡Hola, %s!", name))
	sub := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("Elige tu siguiente entrenamiento")
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(title + "\n" + sub)
}

// renderStatsBar shows points, rank, badges and the track to the next rank
// in a double-bordered box.
func renderStatsBar(env *player.Env, badgeCount, cw int, compact bool) string {
	p := env.Current()
	pointStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	levelStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	badgeStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			pointStyle.Render(fmt.Sprintf("★%d", p.Points)),
			levelStyle.Render(progress.LevelName(p.Level)),
			badgeStyle.Render(fmt.Sprintf("🏅%d", badgeCount)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			pointStyle.Render(fmt.Sprintf("★ %d PUNTOS", p.Points)),
			levelStyle.Render("NIVEL "+progress.LevelName(p.Level)),
			badgeStyle.Render(fmt.Sprintf("🏅 %d LOGROS", badgeCount)),
		)
	}

	inner := cw - 4
	var bar components.ProgressBar
	if next, ok := progress.NextThreshold(p.Points, env.Pack.Thresholds); ok {
		bar = components.NewProgressBar("", float64(p.Points)/float64(next), inner)
		bar.Suffix = fmt.Sprintf("%d/%d", p.Points, next)
	} else {
		bar = components.NewProgressBar("", 1, inner)
		bar.Suffix = "¡Maestro!"
		bar.Fill = theme.ArcadeYellow
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats + "\n" + bar.View())
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 30

// renderArcadeMenu renders each menu item as a fixed-width button, with the
// selected item's hint underneath.
func renderArcadeMenu(menu components.Menu, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ArcadeYellow).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	disabledBtn := normalBtn.Foreground(theme.TextDim)
	hintStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)

	var rows []string
	for i, item := range menu.Items {
		switch {
		case item.Disabled:
			rows = append(rows, disabledBtn.Render("🔒 "+item.Label))
		case i == menu.Selected:
			rows = append(rows, selectedBtn.Render("▸ "+item.Label))
		default:
			rows = append(rows, normalBtn.Render(item.Label))
		}
		if (i == menu.Selected || item.Disabled) && item.Hint != "" {
			rows = append(rows, hintStyle.Render(item.Hint))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}

// renderArcadeMenuCompact renders menu items as simple text lines for small
// terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(menu components.Menu, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Render(menu.View())
}

func renderGuestNote(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Modo invitado: tu progreso no se guardará")
}

func renderError(msg string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Error).
		Width(cw).
		Align(lipgloss.Center).
		Render(msg)
}

func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

func renderFrame(content string, width, height int) string {
	return components.Frame(content, width, height)
}
