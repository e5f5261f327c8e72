// Package result shows the outcome of a finished mini-game session.
package result

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/santgross/BIOFIT-EXPERT/internal/content"
	"github.com/santgross/BIOFIT-EXPERT/internal/player"
	"github.com/santgross/BIOFIT-EXPERT/internal/progress"
	"github.com/santgross/BIOFIT-EXPERT/internal/router"
	"github.com/santgross/BIOFIT-EXPERT/internal/screen"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/components"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/layout"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/theme"
)

// Finish merges res into the trainee's progress and replaces the game screen
// with the result screen.
func Finish(env *player.Env, res progress.Result) tea.Cmd {
	return func() tea.Msg {
		out, err := env.Complete(context.Background(), res)
		return router.ReplaceScreenMsg{Screen: New(env, res, out, err)}
	}
}

// Saving is shown by a game screen between its last answer and the
// arrival of the result screen.
func Saving(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Hint.Render("Guardando tu progreso…"))
}

// Screen is the session summary.
type Screen struct {
	env      *player.Env
	res      progress.Result
	out      progress.Outcome
	err      error
	unlocked []content.Module
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
)

// New creates a result screen. err is the persistence error, if any.
func New(env *player.Env, res progress.Result, out progress.Outcome, err error) *Screen {
	s := &Screen{env: env, res: res, out: out, err: err}
	for _, m := range content.AllModules() {
		prev, ok := progress.Prerequisite(m)
		if ok && slices.Contains(out.NewIDs, progress.CompleteMarker(prev)) {
			s.unlocked = append(s.unlocked, m)
		}
	}
	return s
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return s.res.Module.DisplayName() }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Volver al Menú"}}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "space":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *Screen) heading() string {
	switch {
	case s.res.TimedOut:
		return "¡Tiempo Agotado!"
	case s.res.Module == content.ModuleMatch && s.res.Level == 0:
		return "Tablero incompleto"
	case s.res.Module == content.ModuleTrueFalse:
		return "¡Visita Completada!"
	case s.res.Module == content.ModuleScenario:
		return "Has demostrado gran criterio en el mostrador."
	default:
		return "¡Módulo terminado!"
	}
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	gold := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)

	lines := []string{
		theme.Title.Render(s.heading()),
		"",
		gold.Render(fmt.Sprintf("Puntaje: %d", s.res.Score)),
	}
	if s.res.Total > 0 {
		label := "Respuestas correctas"
		if s.res.Module == content.ModuleMatch {
			label = "Pares encontrados"
		}
		lines = append(lines, dim.Render(fmt.Sprintf("%s: %d de %d", label, s.res.Correct, s.res.Total)))
	}

	switch {
	case s.env.IsGuest():
		lines = append(lines, "", theme.Hint.Render("Modo invitado: tu puntaje no se guarda."))
	case s.err != nil:
		lines = append(lines, "", theme.Incorrect.Render("No se pudo guardar tu progreso. Intenta de nuevo más tarde."))
	case s.out.PointsAdded > 0:
		lines = append(lines, "", theme.Correct.Render(fmt.Sprintf("+%d puntos para tu certificación", s.out.PointsAdded)))
	case s.res.Score > 0:
		lines = append(lines, "", theme.Hint.Render("Sin puntos nuevos: ya completaste estas actividades."))
	}

	if s.out.LeveledUp() {
		lines = append(lines, "", gold.Render("⬆ ¡Subiste a nivel "+progress.LevelName(s.out.LevelAfter)+"!"))
	}
	for _, id := range s.out.NewBadges {
		if b, ok := s.env.Pack.Badge(id); ok {
			lines = append(lines, gold.Render(b.Icon+" Nueva insignia: "+b.Name))
		}
	}
	for _, m := range s.unlocked {
		lines = append(lines, theme.Selected.Render("🔓 Desbloqueaste "+m.DisplayName()))
	}
	if p := s.out.Progress; p != nil {
		lines = append(lines, "", dim.Render(fmt.Sprintf("Total: %d puntos · %s", p.Points, progress.LevelName(p.Level))))
	}

	card := components.Card(strings.Join(lines, "\n"), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
