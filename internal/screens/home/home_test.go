package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/santgross/BIOFIT-EXPERT/internal/player/playertest"
	"github.com/santgross/BIOFIT-EXPERT/internal/progress"
	"github.com/santgross/BIOFIT-EXPERT/internal/router"
	"github.com/santgross/BIOFIT-EXPERT/internal/screen"
	"github.com/santgross/BIOFIT-EXPERT/internal/screens/match"
	"github.com/santgross/BIOFIT-EXPERT/internal/screens/truefalse"
)

var enter = tea.KeyPressMsg{Code: tea.KeyEnter}

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "signin" }
func (s *stubScreen) Title() string                          { return "Ingreso" }

func signOut() screen.Screen { return &stubScreen{} }

func indexOf(h *HomeScreen, label string) int {
	for i, it := range h.menu.Items {
		if strings.Contains(it.Label, label) {
			return i
		}
	}
	return -1
}

func TestNewTraineeSeesUnlockChain(t *testing.T) {
	f := playertest.New(t)
	f.SignIn(t, 0)
	h := New(f.Env, signOut)

	items := h.menu.Items
	if items[0].Disabled {
		t.Error("first module should be open")
	}
	for i := 1; i < 4; i++ {
		if !items[i].Disabled {
			t.Errorf("module %d should be locked", i)
		}
	}
	if items[1].Hint != "🔒 Completa Verdadero o Falso" {
		t.Errorf("unexpected lock hint %q", items[1].Hint)
	}
	if h.menu.Selected != 0 {
		t.Errorf("cursor should start on the first module, got %d", h.menu.Selected)
	}

	view := h.View(120, 40)
	if !strings.Contains(view, "¡Hola, Ana!") {
		t.Error("expected greeting with first name")
	}
	if !strings.Contains(view, "0/400") {
		t.Error("expected progress toward Avanzado")
	}
}

func TestResumeUnlocksNextModule(t *testing.T) {
	f := playertest.New(t)
	f.SignIn(t, 0)
	h := New(f.Env, signOut)

	ids := []string{"tf-101", "tf-102", "tf-103", "tf-104", "tf-105", "true-false-level-1", "true-false-complete"}
	points := 125
	if err := f.Store.UpdateProgress(context.Background(), playertest.UserID, progress.Update{
		Points:              &points,
		CompletedActivities: ids,
	}); err != nil {
		t.Fatal(err)
	}
	h.Resume()

	if h.menu.Items[1].Disabled {
		t.Error("match should unlock after true/false is complete")
	}
	if !strings.HasPrefix(h.menu.Items[0].Hint, "✓") {
		t.Errorf("completed module should be checked, got %q", h.menu.Items[0].Hint)
	}
	if !h.menu.Items[2].Disabled {
		t.Error("scenario should stay locked")
	}
}

func TestGuestCanPracticeEverything(t *testing.T) {
	f := playertest.New(t)
	h := New(f.Env, signOut)
	for i := 0; i < 4; i++ {
		if h.menu.Items[i].Disabled {
			t.Errorf("guest module %d should be open", i)
		}
	}
	view := h.View(120, 40)
	if !strings.Contains(view, "Colega") || !strings.Contains(view, "Modo invitado") {
		t.Error("expected guest greeting and note")
	}
}

func TestEnterPushesGame(t *testing.T) {
	f := playertest.New(t)
	f.SignIn(t, 0, "true-false-complete")
	h := New(f.Env, signOut)

	_, cmd := h.Update(enter)
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*truefalse.Screen); !ok {
		t.Fatalf("expected true/false screen, got %T", push.Screen)
	}

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd = h.Update(enter)
	push = cmd().(router.PushScreenMsg)
	if _, ok := push.Screen.(*match.Screen); !ok {
		t.Fatalf("expected match screen, got %T", push.Screen)
	}
}

func TestSignOut(t *testing.T) {
	f := playertest.New(t)
	f.SignIn(t, 0)
	h := New(f.Env, signOut)

	h.menu.Selected = indexOf(h, "Cerrar sesión")
	_, cmd := h.Update(enter)
	if !f.Env.IsGuest() {
		t.Error("sign out should clear the trainee")
	}
	rep, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if _, ok := rep.Screen.(*stubScreen); !ok {
		t.Fatalf("expected sign-in screen, got %T", rep.Screen)
	}
}

func TestBadgeCount(t *testing.T) {
	f := playertest.New(t)
	f.SignIn(t, 650)
	h := New(f.Env, signOut)
	if h.badgeCount != 2 {
		t.Errorf("expected 2 badges at 650 points, got %d", h.badgeCount)
	}
	if i := indexOf(h, "Mis logros (2)"); i < 0 {
		t.Error("badge count should be in the menu label")
	}
}
