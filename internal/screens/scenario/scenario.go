// Package scenario is the "Casos de Mostrador" mini-game screen.
package scenario

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/santgross/BIOFIT-EXPERT/internal/coach"
	"github.com/santgross/BIOFIT-EXPERT/internal/content"
	"github.com/santgross/BIOFIT-EXPERT/internal/game"
	"github.com/santgross/BIOFIT-EXPERT/internal/player"
	"github.com/santgross/BIOFIT-EXPERT/internal/screen"
	"github.com/santgross/BIOFIT-EXPERT/internal/screens/result"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/components"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/layout"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/theme"
)

type tipMsg struct {
	ScenarioID int
	Tip        *coach.Tip
	Err        error
}

type tipState int

const (
	tipNone tipState = iota
	tipLoading
	tipReady
	tipFailed
)

// Screen plays one scenario session.
type Screen struct {
	env      *player.Env
	sess     *game.Scenario
	choice   components.Choice
	judged   bool
	feedback *game.Feedback
	done     bool
	errMsg   string

	tipState tipState
	tip      *coach.Tip
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
		sess:   game.NewScenario(env.Pack, env.SessionOptions()),
		choice: newChoice(),
	}
	if err := s.sess.Start(); err != nil {
		s.errMsg = "Cargando escenarios... no hay casos para tu nivel."
	}
	return s
}

func newChoice() components.Choice {
	return components.NewChoice("CORRECTO", "TIENE ERROR")
}

// BlocksBack holds Esc while the finished session is being saved.
func (s *Screen) BlocksBack() bool { return s.sess.Phase() == game.PhaseFinished && s.errMsg == "" }

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return content.ModuleScenario.DisplayName() }

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.feedback != nil {
		hints := []layout.KeyHint{{Key: "Enter", Description: s.nextLabel()}}
		if s.canAskCoach() {
			hints = append(hints, layout.KeyHint{Key: "C", Description: "Consejo del coach"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Abandonar"})
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Elegir"},
		{Key: "Enter", Description: "Evaluar"},
		{Key: "Esc", Description: "Abandonar"},
	}
}

func (s *Screen) nextLabel() string {
	if s.sess.Index() >= s.sess.Total()-1 {
		return "Finalizar Módulo"
	}
	return "Siguiente Caso"
}

func (s *Screen) canAskCoach() bool {
	return s.feedback != nil && !s.feedback.Correct && s.env.Coach.Enabled() && s.tipState == tipNone
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tipMsg:
		sc, ok := s.sess.Current()
		if !ok || sc.ID != msg.ScenarioID || s.tipState != tipLoading {
			return s, nil
		}
		if msg.Err != nil {
			s.tipState = tipFailed
			return s, nil
		}
		s.tipState = tipReady
		s.tip = msg.Tip
		return s, nil

	case tea.KeyPressMsg:
		if s.errMsg != "" || s.done {
			return s, nil
		}
		if s.feedback != nil {
			return s, s.afterFeedback(msg)
		}
		s.choice = s.choice.Update(msg)
		if !s.choice.Submitted() {
			return s, nil
		}
		sc, ok := s.sess.Current()
		if !ok {
			return s, nil
		}
		s.judged = s.choice.Chosen == 0
		fb, err := s.sess.Answer(sc.ID, s.judged)
		if err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.feedback = &fb
	}
	return s, nil
}

func (s *Screen) afterFeedback(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "c":
		if !s.canAskCoach() {
			return nil
		}
		s.tipState = tipLoading
		sc, _ := s.sess.Current()
		coachSvc, judged := s.env.Coach, s.judged
		return func() tea.Msg {
			tip, err := coachSvc.Suggest(context.Background(), sc, judged)
			return tipMsg{ScenarioID: sc.ID, Tip: tip, Err: err}
		}
	case "enter", "space":
		more, err := s.sess.Next()
		if err != nil || !more {
			s.done = true
			return result.Finish(s.env, s.sess.Finish())
		}
		s.feedback = nil
		s.choice = newChoice()
		s.tipState = tipNone
		s.tip = nil
	}
	return nil
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Incorrect.Render(s.errMsg))
	}
	if s.done {
		return result.Saving(width, height)
	}
	sc, _ := s.sess.Current()
	text := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 8)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	dialogue := strings.Join([]string{
		dim.Render("Cliente:"),
		text.Render("“" + sc.Customer + "”"),
		"",
		dim.Render("Dependiente:"),
		text.Render("“" + sc.ClerkResponse + "”"),
	}, "\n")

	sections := []string{
		dim.Render(fmt.Sprintf("Caso %d de %d · Puntaje %d", s.sess.Index()+1, s.sess.Total(), s.sess.Score())),
		"",
		lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Width(cw).
			Padding(1, 2).
			Render(dialogue),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("¿Evaluación de la respuesta?"),
		s.choice.View(),
	}

	if fb := s.feedback; fb != nil {
		head := theme.Incorrect.Render("HAY QUE MEJORAR")
		if fb.Correct {
			head = theme.Correct.Render(fmt.Sprintf("¡BIEN HECHO! +%d", fb.Points))
		}
		sections = append(sections, "", head)
		if sc.CorrectAction != "" {
			sections = append(sections, theme.Selected.Render("Criterio experto:"), text.Render(sc.CorrectAction))
		}
		sections = append(sections, text.Render(sc.Feedback))

		switch s.tipState {
		case tipLoading:
			sections = append(sections, "", theme.Hint.Render("Consultando al coach…"))
		case tipReady:
			sections = append(sections, "",
				lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render("Consejo del coach"),
				text.Render(s.tip.Tip),
				lipgloss.NewStyle().Foreground(theme.Secondary).Italic(true).Width(cw-8).Render("“"+s.tip.Phrase+"”"),
			)
		case tipFailed:
			sections = append(sections, "", theme.Hint.Render("El coach no está disponible ahora."))
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
