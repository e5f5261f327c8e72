package history

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/santgross/BIOFIT-EXPERT/internal/player/playertest"
	"github.com/santgross/BIOFIT-EXPERT/internal/store"
)

func TestHistoryListsSessions(t *testing.T) {
	f := playertest.New(t)
	f.SignIn(t, 0)
	ctx := context.Background()
	f.Log.AppendSessionEvent(ctx, store.SessionEventData{SessionID: "a", UserID: playertest.UserID, Module: "true-false", Level: 1, Score: 75, PointsAdded: 75, Correct: 3, Answered: 4, Total: 4, DurationMs: 65000})
	f.Log.AppendSessionEvent(ctx, store.SessionEventData{SessionID: "b", UserID: playertest.UserID, Module: "trivia", Level: 1, Score: 50, Correct: 1, Answered: 2, Total: 4, TimedOut: true})

	s := New(f.Env)
	if !strings.Contains(s.View(120, 40), "Cargando") {
		t.Error("expected loading state before data arrives")
	}
	s.Update(s.Init()())

	view := s.View(120, 40)
	if !strings.Contains(view, "Trivia Contrarreloj") || !strings.Contains(view, "Verdadero o Falso") {
		t.Error("expected both sessions")
	}
	if strings.Index(view, "Trivia") > strings.Index(view, "Verdadero") {
		t.Error("newest session should come first")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	view = s.View(120, 40)
	if !strings.Contains(view, "Tiempo agotado") || !strings.Contains(view, "Sin puntos nuevos") {
		t.Error("expanded row should show details")
	}
}

func TestGuestHistory(t *testing.T) {
	f := playertest.New(t)
	s := New(f.Env)
	s.Update(s.Init()())
	if !strings.Contains(s.View(120, 40), "Inicia sesión") {
		t.Error("guest should be asked to sign in")
	}
}
