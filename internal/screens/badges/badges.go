// Package badges lists the achievement badges and how to earn them.
package badges

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/santgross/BIOFIT-EXPERT/internal/player"
	"github.com/santgross/BIOFIT-EXPERT/internal/progress"
	"github.com/santgross/BIOFIT-EXPERT/internal/screen"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/components"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/layout"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/theme"
)

// Screen shows every badge, earned or locked.
type Screen struct {
	env *player.Env
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
)

func New(env *player.Env) *Screen {
	return &Screen{env: env}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Mis Logros" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Volver"}}
}

func (s *Screen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }

// earned reports whether b counts as unlocked. Guests never hold badges.
func (s *Screen) earned(i int) bool {
	if s.env.IsGuest() {
		return false
	}
	return progress.BadgeUnlocked(s.env.Pack.Badges[i], s.env.Current())
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	p := s.env.Current()

	var cards []string
	unlocked := 0
	for i, b := range s.env.Pack.Badges {
		name := lipgloss.NewStyle().Bold(true)
		desc := lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw - 12)
		var head, foot string
		if s.earned(i) {
			unlocked++
			head = name.Foreground(theme.ArcadeYellow).Render(b.Icon + "  " + b.Name)
			foot = theme.Correct.Render("✓ Desbloqueado")
		} else {
			head = name.Foreground(theme.TextDim).Render("🔒  " + b.Name)
			foot = theme.Locked.Render(fmt.Sprintf("Requiere %d puntos (te faltan %d)",
				b.RequiredPoints, max(b.RequiredPoints-p.Points, 0)))
		}
		cards = append(cards, components.Card(strings.Join([]string{head, desc.Render(b.Description), foot}, "\n"), cw))
	}

	header := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("%d de %d logros desbloqueados", unlocked, len(s.env.Pack.Badges)))
	sections := append([]string{header, ""}, cards...)
	if s.env.IsGuest() {
		sections = append(sections, "", theme.Hint.Render("Inicia sesión para guardar tus logros."))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
