package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/santgross/BIOFIT-EXPERT/internal/content"
	"github.com/santgross/BIOFIT-EXPERT/internal/player"
	"github.com/santgross/BIOFIT-EXPERT/internal/screen"
	"github.com/santgross/BIOFIT-EXPERT/internal/store"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/layout"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/theme"
)

// historyLimit is how many sessions the screen loads.
const historyLimit = 50

type historyLoadedMsg struct {
	Sessions []store.SessionEventRecord
	Err      error
}

// HistoryScreen lists the trainee's past sessions.
type HistoryScreen struct {
	env      *player.Env
	sessions []store.SessionEventRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(env *player.Env) *HistoryScreen {
	return &HistoryScreen{
		env:      env,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sessions, err := s.env.RecentSessions(context.Background(), historyLimit)
		return historyLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Historial"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Detalles"},
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if s.env.IsGuest() {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Inicia sesión para guardar tu historial.")
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Cargando historial...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Aún no tienes sesiones. ¡Empieza a entrenar!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		m := content.Module(sess.Module)
		dateStr := sess.Timestamp.Format("02/01/2006 15:04")
		d := time.Duration(sess.DurationMs) * time.Millisecond
		durationStr := fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s %-20s  %d/%d  %4d pts  %s",
			prefix, dateStr, m.Icon(), m.DisplayName(), sess.Correct, sess.Total, sess.Score, durationStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, detail := range details(sess) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render("    "+detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func details(sess store.SessionEventRecord) []string {
	out := []string{
		fmt.Sprintf("Nivel de contenido %d · %d respondidas", sess.Level, sess.Answered),
	}
	if sess.PointsAdded > 0 {
		out = append(out, fmt.Sprintf("+%d puntos nuevos", sess.PointsAdded))
	} else {
		out = append(out, "Sin puntos nuevos (actividades ya completadas)")
	}
	if sess.TimedOut {
		out = append(out, "Tiempo agotado")
	}
	return out
}
