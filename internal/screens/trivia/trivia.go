// Package trivia is the timed "Trivia Contrarreloj" mini-game screen.
package trivia

import (
	"fmt"
	"strings"
	"time"

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

const (
	tickInterval = 250 * time.Millisecond
	// feedbackDelay is how long the answer stays on screen before the next
	// question appears.
	feedbackDelay = 900 * time.Millisecond
)

type tickMsg struct{ session string }

type advanceMsg struct {
	session string
	index   int
}

// Screen plays one trivia session against the clock.
type Screen struct {
	env      *player.Env
	sess     *game.Trivia
	choice   components.MultiChoice
	feedback *game.Feedback
	done     bool
	errMsg   string
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
	_ screen.BackBlocker     = (*Screen)(nil)
)

// New starts a session; the clock runs from here.
func New(env *player.Env) *Screen {
	s := &Screen{
		env:  env,
		sess: game.NewTrivia(env.Pack, env.SessionOptions(), env.TriviaBudget),
	}
	if err := s.sess.Start(); err != nil {
		s.errMsg = "No hay preguntas de trivia para tu nivel."
		return s
	}
	s.resetChoice()
	return s
}

func (s *Screen) resetChoice() {
	q, _ := s.sess.Current()
	s.choice = components.NewMultiChoice(q.Question, q.Options, q.CorrectIndex)
	s.feedback = nil
}

// BlocksBack holds Esc while the finished session is being saved.
func (s *Screen) BlocksBack() bool { return s.sess.Phase() == game.PhaseFinished && s.errMsg == "" }

func (s *Screen) Init() tea.Cmd {
	if s.errMsg != "" {
		return nil
	}
	return s.tick()
}

func (s *Screen) tick() tea.Cmd {
	id := s.sess.SessionID()
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{session: id} })
}

func (s *Screen) Title() string { return content.ModuleTrivia.DisplayName() }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Elegir"},
		{Key: "A-D", Description: "Responder"},
		{Key: "Enter", Description: "Confirmar"},
		{Key: "Esc", Description: "Abandonar"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" || s.done {
		return s, nil
	}
	switch msg := msg.(type) {
	case tickMsg:
		if msg.session != s.sess.SessionID() {
			return s, nil
		}
		if s.sess.Tick(s.env.Today()) {
			return s, s.finish()
		}
		return s, s.tick()

	case advanceMsg:
		if msg.session != s.sess.SessionID() || msg.index != s.sess.Index() || s.feedback == nil {
			return s, nil
		}
		return s, s.advance()

	case tea.KeyPressMsg:
		if s.feedback != nil {
			if msg.String() == "enter" || msg.String() == "space" {
				return s, s.advance()
			}
			return s, nil
		}
		s.choice = s.choice.Update(msg)
		if !s.choice.Submitted {
			return s, nil
		}
		q, _ := s.sess.Current()
		fb, err := s.sess.Answer(q.ID, s.choice.ChosenIndex)
		if err != nil {
			// Answered after the deadline.
			return s, s.finish()
		}
		s.feedback = &fb
		id, idx := s.sess.SessionID(), s.sess.Index()
		return s, tea.Tick(feedbackDelay, func(time.Time) tea.Msg { return advanceMsg{session: id, index: idx} })
	}
	return s, nil
}

func (s *Screen) advance() tea.Cmd {
	more, err := s.sess.Next()
	if err != nil || !more {
		return s.finish()
	}
	s.resetChoice()
	return nil
}

func (s *Screen) finish() tea.Cmd {
	s.done = true
	return result.Finish(s.env, s.sess.Finish())
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Incorrect.Render(s.errMsg))
	}
	if s.done {
		return result.Saving(width, height)
	}
	cw := components.ContentWidth(width)

	remaining := s.sess.Remaining(s.env.Today())
	budget := s.env.TriviaBudget
	if budget <= 0 {
		budget = game.DefaultTriviaBudget
	}
	timer := components.NewProgressBar("⏱", float64(remaining)/float64(budget), cw)
	timer.Suffix = fmt.Sprintf("%ds", int(remaining.Round(time.Second).Seconds()))
	if remaining <= 10*time.Second {
		timer.Fill = theme.Error
	} else {
		timer.Fill = theme.ArcadeYellow
	}

	sections := []string{
		timer.View(),
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("Pregunta %d de %d · Puntaje %d", s.sess.Index()+1, s.sess.Total(), s.sess.Score())),
		"",
		components.AccentCard(s.choice.View(), cw, components.ModuleAccent(string(content.ModuleTrivia))),
	}
	if fb := s.feedback; fb != nil {
		if fb.Correct {
			sections = append(sections, theme.Correct.Render(fmt.Sprintf("¡Correcto! +%d", fb.Points)))
		} else {
			sections = append(sections, theme.Incorrect.Render("Incorrecto. Respuesta: "+fb.Explanation))
		}
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
