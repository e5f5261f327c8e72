// Package match is the "Relaciona Conceptos" pairing board.
package match

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

const (
	colBenefits = 0
	colSystems  = 1
)

// Screen plays one match board. The trainee picks a benefit and a system;
// every pick of both counts as an attempt.
type Screen struct {
	env    *player.Env
	sess   *game.Match
	col    int
	row    [2]int
	picked [2]string
	// lastWrong holds the pair of the latest failed attempt.
	lastWrong [2]string
	message   string
	errMsg    string
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
	_ screen.BackBlocker     = (*Screen)(nil)
)

// New lays out a board for the active trainee.
func New(env *player.Env) *Screen {
	s := &Screen{
		env:  env,
		sess: game.NewMatch(env.Pack, env.SessionOptions()),
	}
	if err := s.sess.Start(); err != nil {
		s.errMsg = "No hay tablero disponible para tu nivel."
	}
	return s
}

// BlocksBack holds Esc while the finished session is being saved.
func (s *Screen) BlocksBack() bool { return s.sess.Phase() == game.PhaseFinished && s.errMsg == "" }

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return content.ModuleMatch.DisplayName() }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Columna"},
		{Key: "↑↓", Description: "Mover"},
		{Key: "Enter", Description: "Seleccionar"},
		{Key: "Esc", Description: "Abandonar"},
	}
}

func (s *Screen) column(c int) []content.MatchItem {
	if c == colBenefits {
		return s.sess.Benefits()
	}
	return s.sess.Systems()
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || s.errMsg != "" || s.sess.Phase() == game.PhaseFinished {
		return s, nil
	}

	items := s.column(s.col)
	switch kmsg.String() {
	case "left", "h":
		s.col = colBenefits
	case "right", "l", "tab":
		s.col = colSystems
	case "up", "k":
		if s.row[s.col] > 0 {
			s.row[s.col]--
		}
	case "down", "j":
		if s.row[s.col] < len(items)-1 {
			s.row[s.col]++
		}
	case "enter", "space":
		it := items[s.row[s.col]]
		if s.sess.Matched(it.ID) {
			return s, nil
		}
		if s.picked[s.col] == it.ID {
			s.picked[s.col] = ""
			return s, nil
		}
		s.picked[s.col] = it.ID
		if s.col == colBenefits {
			s.col = colSystems
		}
		return s, s.tryPair()
	}
	return s, nil
}

func (s *Screen) tryPair() tea.Cmd {
	a, b := s.picked[colBenefits], s.picked[colSystems]
	if a == "" || b == "" {
		return nil
	}
	s.picked = [2]string{}
	ok, err := s.sess.Attempt(a, b)
	if err != nil {
		s.message = err.Error()
		return nil
	}
	if !ok {
		s.lastWrong = [2]string{a, b}
		s.message = "Esa conexión no es correcta. ¡Intenta de nuevo!"
		return nil
	}
	s.lastWrong = [2]string{}
	s.message = "¡Conexión correcta!"
	s.col = colBenefits
	s.row[colBenefits] = s.firstOpen(colBenefits)
	s.row[colSystems] = s.firstOpen(colSystems)
	if s.sess.Phase() == game.PhaseFinished {
		return result.Finish(s.env, s.sess.Finish())
	}
	return nil
}

func (s *Screen) firstOpen(c int) int {
	for i, it := range s.column(c) {
		if !s.sess.Matched(it.ID) {
			return i
		}
	}
	return 0
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Incorrect.Render(s.errMsg))
	}
	if s.sess.Phase() == game.PhaseFinished {
		return result.Saving(width, height)
	}
	cw := components.ContentWidth(width)
	colWidth := max((cw-4)/2, 16)

	left := s.renderColumn(colBenefits, "BENEFICIOS", colWidth)
	right := s.renderColumn(colSystems, "SISTEMAS", colWidth)
	board := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)

	status := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(
		"Parejas %d/%d · Intentos %d · Puntaje posible %d",
		s.sess.MatchedPairs(), s.sess.Pairs(), s.sess.Attempts(),
		game.MatchScore(s.sess.Level(), s.sess.Pairs(), max(s.sess.Attempts(), s.sess.Pairs())),
	))

	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Conecta cada beneficio con su sistema"),
		status, "", board,
	}
	if s.message != "" {
		style := theme.Correct
		if s.lastWrong[0] != "" {
			style = theme.Incorrect
		}
		sections = append(sections, "", style.Render(s.message))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}

func (s *Screen) renderColumn(c int, heading string, width int) string {
	lines := []string{lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(heading), ""}
	for i, it := range s.column(c) {
		var style lipgloss.Style
		prefix := "  "
		switch {
		case s.sess.Matched(it.ID):
			style = theme.Correct
			prefix = "✓ "
		case s.picked[c] == it.ID:
			style = theme.Selected.Underline(true)
			prefix = "● "
		case it.ID == s.lastWrong[c]:
			style = theme.Incorrect
		case c == s.col && i == s.row[c]:
			style = theme.Selected
			prefix = "▸ "
		default:
			style = theme.Unselected
		}
		lines = append(lines, style.Width(width).Render(prefix+it.Text))
	}
	return strings.Join(lines, "\n")
}
