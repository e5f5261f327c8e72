package result

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/santgross/BIOFIT-EXPERT/internal/content"
	"github.com/santgross/BIOFIT-EXPERT/internal/player/playertest"
	"github.com/santgross/BIOFIT-EXPERT/internal/progress"
	"github.com/santgross/BIOFIT-EXPERT/internal/router"
)

func TestUnlockAndBadge(t *testing.T) {
	f := playertest.New(t)
	f.SignIn(t, 0)

	res := progress.Result{Module: content.ModuleTrueFalse, Level: 1, Score: 200, Correct: 4, Total: 4}
	out := progress.Outcome{
		Score:       200,
		PointsAdded: 200,
		NewIDs:      []string{"tf-1", progress.CompleteMarker(content.ModuleTrueFalse)},
		LevelBefore: 1,
		LevelAfter:  1,
		NewBadges:   []string{"mes1"},
		Progress:    &progress.UserProgress{Points: 200, Level: 1},
	}
	s := New(f.Env, res, out, nil)

	if len(s.unlocked) != 1 || s.unlocked[0] != content.ModuleMatch {
		t.Fatalf("unlocked = %v, want [match]", s.unlocked)
	}
	view := s.View(100, 40)
	for _, want := range []string{"¡Visita Completada!", "Puntaje: 200", "+200 puntos", "Nueva insignia", "Desbloqueaste " + content.ModuleMatch.DisplayName()} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestRepeatSessionAddsNothing(t *testing.T) {
	f := playertest.New(t)
	f.SignIn(t, 100)

	res := progress.Result{Module: content.ModuleScenario, Level: 1, Score: 100, Correct: 2, Total: 2}
	s := New(f.Env, res, progress.Outcome{Score: 100}, nil)
	if !strings.Contains(s.View(100, 40), "Sin puntos nuevos") {
		t.Error("expected already-completed note")
	}
}

func TestSaveErrorStillShowsScore(t *testing.T) {
	f := playertest.New(t)
	f.SignIn(t, 0)

	res := progress.Result{Module: content.ModuleTrivia, Level: 1, Score: 150, TimedOut: true, Total: 5, Correct: 3}
	s := New(f.Env, res, progress.Outcome{Score: 150}, errors.New("disk full"))
	view := s.View(100, 40)
	for _, want := range []string{"¡Tiempo Agotado!", "Puntaje: 150", "No se pudo guardar"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestGuestNote(t *testing.T) {
	f := playertest.New(t)
	res := progress.Result{Module: content.ModuleMatch, Level: 1, Score: 100, Correct: 4, Total: 4}
	s := New(f.Env, res, progress.Outcome{Score: 100}, nil)
	if !strings.Contains(s.View(100, 40), "Modo invitado") {
		t.Error("expected guest note")
	}
}

func TestEnterPops(t *testing.T) {
	f := playertest.New(t)
	s := New(f.Env, progress.Result{Module: content.ModuleTrueFalse}, progress.Outcome{}, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should leave the result screen")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestFinishPersistsAndReplaces(t *testing.T) {
	f := playertest.New(t)
	f.SignIn(t, 0)

	res := progress.Result{
		SessionID: "s1",
		Module:    content.ModuleTrueFalse,
		Level:     1,
		Score:     50,
		Correct:   1,
		Answered:  1,
		Total:     1,
		Awards:    []progress.Award{{ID: "tf-1", Points: 50}},
		PoolIDs:   []string{"tf-1", "tf-2"},
	}
	msg, ok := Finish(f.Env, res)().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	s := msg.Screen.(*Screen)
	if s.err != nil {
		t.Fatalf("unexpected error: %v", s.err)
	}
	if s.out.PointsAdded != 50 {
		t.Errorf("points added = %d, want 50", s.out.PointsAdded)
	}
	if f.Env.Current().Points != 50 {
		t.Errorf("env progress not refreshed: %d", f.Env.Current().Points)
	}
	if n := len(f.Log.Events); n != 1 {
		t.Errorf("session events = %d, want 1", n)
	}
}
