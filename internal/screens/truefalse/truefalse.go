// Package truefalse is the "Verdadero o Falso" mini-game screen.
package truefalse

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/santgross/BIOFIT-EXPERT/internal/content"
	"github.com/santgross/BIOFIT-EXPERT/internal/game"
	"github.com/santgross/BIOFIT-EXPERT/internal/player"
	"github.com/santgross/BIOFIT-EXPERT/internal/screen"
	"github.com/santgross/BIOFIT-EXPERT/internal/screens/result"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/components"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/layout"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/theme"
)

// Screen plays one true/false session.
type Screen struct {
	env      *player.Env
	sess     *game.TrueFalse
	choice   components.Choice
	feedback *game.Feedback
	// done is set once the result has been handed to result.Finish.
	done   bool
	errMsg string
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
	_ screen.BackBlocker     = (*Screen)(nil)
)

// New starts a session for the active trainee.
func New(env *player.Env) *Screen {
	s := &Screen{
		env:    env,
		sess:   game.NewTrueFalse(env.Pack, env.SessionOptions()),
		choice: components.NewChoice("VERDADERO", "FALSO"),
	}
	if err := s.sess.Start(); err != nil {
		s.errMsg = "No hay preguntas disponibles para tu nivel."
	}
	return s
}

// BlocksBack holds Esc while the finished session is being saved.
func (s *Screen) BlocksBack() bool { return s.sess.Phase() == game.PhaseFinished && s.errMsg == "" }

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return content.ModuleTrueFalse.DisplayName() }

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.feedback != nil {
		return []layout.KeyHint{{Key: "Enter", Description: "Continuar"}, {Key: "Esc", Description: "Abandonar"}}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Elegir"},
		{Key: "Enter", Description: "Responder"},
		{Key: "1/2", Description: "V/F"},
		{Key: "Esc", Description: "Abandonar"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || s.errMsg != "" || s.done {
		return s, nil
	}

	if s.feedback != nil {
		if kmsg.String() != "enter" && kmsg.String() != "space" {
			return s, nil
		}
		more, err := s.sess.Next()
		if err != nil || !more {
			s.done = true
			return s, result.Finish(s.env, s.sess.Finish())
		}
		s.feedback = nil
		s.choice = components.NewChoice("VERDADERO", "FALSO")
		return s, nil
	}

	s.choice = s.choice.Update(kmsg)
	if !s.choice.Submitted() {
		return s, nil
	}
	q, ok := s.sess.Current()
	if !ok {
		return s, nil
	}
	fb, err := s.sess.Answer(q.ID, s.choice.Chosen == 0)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.feedback = &fb
	return s, nil
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Incorrect.Render(s.errMsg))
	}
	if s.done {
		return result.Saving(width, height)
	}
	q, _ := s.sess.Current()

	counter := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Pregunta %d de %d · Puntaje %d", s.sess.Index()+1, s.sess.Total(), s.sess.Score()))
	statement := components.AccentCard(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw-8).Render(q.Statement),
		cw, components.ModuleAccent(string(content.ModuleTrueFalse)))

	sections := []string{counter, "", statement, "", s.choice.View()}

	if fb := s.feedback; fb != nil {
		head := theme.Incorrect.Render("¡Atención!")
		if fb.Correct {
			head = theme.Correct.Render(fmt.Sprintf("¡Excelente! +%d", fb.Points))
		}
		verdict := "FALSO"
		if q.IsTrue {
			verdict = "VERDADERO"
		}
		sections = append(sections, "",
			head,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("La afirmación es "+verdict+"."),
			lipgloss.NewStyle().Foreground(theme.Text).Width(cw-4).Render(fb.Explanation),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, strings.Join(sections, "\n")))
}
