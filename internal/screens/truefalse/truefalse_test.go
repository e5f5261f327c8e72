package truefalse

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/santgross/BIOFIT-EXPERT/internal/player/playertest"
	"github.com/santgross/BIOFIT-EXPERT/internal/router"
	"github.com/santgross/BIOFIT-EXPERT/internal/screens/result"
)

var enter = tea.KeyPressMsg{Code: tea.KeyEnter}

func key(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: []rune(s)[0], Text: s}
}

// playAll answers every question, correctly when right is true, and returns
// the command emitted after the last one.
func playAll(t *testing.T, s *Screen, right bool) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for i := 0; i < s.sess.Total(); i++ {
		q, ok := s.sess.Current()
		if !ok {
			t.Fatalf("no current question at %d", i)
		}
		k := "2"
		if q.IsTrue == right {
			k = "1"
		}
		s.Update(key(k))
		if s.feedback == nil {
			t.Fatalf("expected feedback after answering question %d", i)
		}
		if s.feedback.Correct != right {
			t.Fatalf("question %d: correct = %v, want %v", i, s.feedback.Correct, right)
		}
		_, cmd = s.Update(enter)
	}
	return cmd
}

func TestPlayThroughPersistsResult(t *testing.T) {
	f := playertest.New(t)
	f.SignIn(t, 0)

	s := New(f.Env)
	if s.sess.Total() != 4 {
		t.Fatalf("expected 4 questions, got %d", s.sess.Total())
	}
	cmd := playAll(t, s, true)
	if cmd == nil {
		t.Fatal("expected finish command after last question")
	}
	if !s.BlocksBack() {
		t.Error("finished session should block Esc while saving")
	}

	rep, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if _, ok := rep.Screen.(*result.Screen); !ok {
		t.Fatalf("expected result screen, got %T", rep.Screen)
	}
	if got := f.Env.Current().Points; got != 100 {
		t.Errorf("expected 100 points, got %d", got)
	}
	if len(f.Log.Events) != 1 || f.Log.Events[0].Correct != 4 {
		t.Errorf("expected one session event with 4 correct, got %+v", f.Log.Events)
	}
	if view := rep.Screen.View(120, 40); !strings.Contains(view, "+100 puntos") {
		t.Error("result should show the points added")
	}
}

func TestWrongAnswerShowsExplanation(t *testing.T) {
	f := playertest.New(t)
	s := New(f.Env)

	q, _ := s.sess.Current()
	k := "1"
	if q.IsTrue {
		k = "2"
	}
	s.Update(key(k))
	if s.feedback == nil || s.feedback.Correct {
		t.Fatal("expected incorrect feedback")
	}
	view := s.View(120, 40)
	if !strings.Contains(view, "¡Atención!") {
		t.Error("expected warning heading")
	}
	if !strings.Contains(view, "La afirmación es") {
		t.Error("expected the verdict line")
	}
}

func TestGuestSessionIsNotPersisted(t *testing.T) {
	f := playertest.New(t)
	s := New(f.Env)

	cmd := playAll(t, s, false)
	if cmd == nil {
		t.Fatal("expected finish command")
	}
	cmd()
	if len(f.Log.Events) != 0 {
		t.Errorf("guest sessions must not be logged, got %d", len(f.Log.Events))
	}
	if f.Store.Writes != 0 {
		t.Errorf("guest sessions must not write progress, got %d writes", f.Store.Writes)
	}
}

func TestKeysIgnoredDuringFeedbackExceptContinue(t *testing.T) {
	f := playertest.New(t)
	s := New(f.Env)
	s.Update(key("1"))
	idx := s.sess.Index()

	s.Update(key("2"))
	if s.sess.Index() != idx || s.feedback == nil {
		t.Error("answer keys should be ignored while feedback shows")
	}
	s.Update(enter)
	if s.sess.Index() != idx+1 || s.feedback != nil {
		t.Error("enter should move to the next question")
	}
}

func TestFinishIsSentOnce(t *testing.T) {
	f := playertest.New(t)
	f.SignIn(t, 0)
	s := New(f.Env)

	cmd := playAll(t, s, true)
	if cmd == nil {
		t.Fatal("expected finish command")
	}
	if _, again := s.Update(enter); again != nil {
		t.Error("a second Enter must not finish the session again")
	}
	cmd()
	if len(f.Log.Events) != 1 {
		t.Errorf("expected one session event, got %d", len(f.Log.Events))
	}
}

func TestSavingStateAfterLastAnswer(t *testing.T) {
	f := playertest.New(t)
	s := New(f.Env)
	playAll(t, s, true)

	view := s.View(120, 40)
	if !strings.Contains(view, "Guardando") {
		t.Error("expected the saving state while the result is stored")
	}
	if strings.Contains(view, "Pregunta 5") {
		t.Error("counter must not run past the last question")
	}
}
