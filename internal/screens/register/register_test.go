package register

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/santgross/BIOFIT-EXPERT/internal/account"
	"github.com/santgross/BIOFIT-EXPERT/internal/content"
	"github.com/santgross/BIOFIT-EXPERT/internal/logging"
	"github.com/santgross/BIOFIT-EXPERT/internal/player"
	"github.com/santgross/BIOFIT-EXPERT/internal/progress"
	"github.com/santgross/BIOFIT-EXPERT/internal/screen"
	"github.com/santgross/BIOFIT-EXPERT/internal/store"
)

type stubHome struct{}

func (stubHome) Init() tea.Cmd                             { return nil }
func (h stubHome) Update(tea.Msg) (screen.Screen, tea.Cmd) { return h, nil }
func (stubHome) View(int, int) string                      { return "home" }
func (stubHome) Title() string                             { return "Inicio" }

var (
	ctrlA = tea.KeyPressMsg{Code: 'a', Mod: tea.ModCtrl}
	ctrlS = tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
)

func newScreen(t *testing.T) (*Screen, *player.Env, *store.Store) {
	t.Helper()
	st, err := store.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	pack := content.Builtin()
	env := &player.Env{
		Pack:     pack,
		Progress: progress.NewService(st.ProgressRepo(), pack, logging.Discard()),
		Accounts: account.NewService(st, "sgross@pharmabrand.com.ec", logging.Discard()),
		Logger:   logging.Discard(),
	}
	return New(env, func() screen.Screen { return stubHome{} }), env, st
}

func fillValid(s *Screen) {
	values := []string{"Ana", "Pérez", "ana@farmacia.ec", "0991234567", "Farmacia Central", "", "biofit25"}
	for i, v := range values {
		s.form.Fields[i].SetValue(v)
	}
}

func submit(t *testing.T, s *Screen) tea.Cmd {
	t.Helper()
	_, cmd := s.Update(ctrlS)
	if cmd == nil {
		t.Fatal("expected submit command")
	}
	_, next := s.Update(cmd())
	return next
}

func TestConsentRequired(t *testing.T) {
	s, _, _ := newScreen(t)
	fillValid(s)

	_, cmd := s.Update(ctrlS)
	if cmd != nil {
		t.Error("should not submit without consent")
	}
	if !strings.Contains(s.errMsg, "política de protección de datos") {
		t.Errorf("unexpected error %q", s.errMsg)
	}
}

func TestConsentToggles(t *testing.T) {
	s, _, _ := newScreen(t)
	s.Update(ctrlA)
	if !s.consent {
		t.Fatal("ctrl+a should accept the policy")
	}
	s.Update(ctrlA)
	if s.consent {
		t.Error("second ctrl+a should withdraw consent")
	}
}

func TestRegisterSignsIn(t *testing.T) {
	s, env, st := newScreen(t)
	fillValid(s)
	s.Update(ctrlA)

	if next := submit(t, s); next == nil {
		t.Fatal("successful registration should navigate home")
	}
	u := env.User()
	if u == nil {
		t.Fatal("new trainee should be signed in")
	}
	if u.PharmacyName != "Farmacia Central" {
		t.Errorf("pharmacy = %q", u.PharmacyName)
	}
	if _, err := st.UserByEmail(t.Context(), "ana@farmacia.ec"); err != nil {
		t.Errorf("user not stored: %v", err)
	}
	if env.Current().Points != 0 || env.Current().Level != progress.MinLevel {
		t.Errorf("fresh progress expected, got %+v", env.Current())
	}
}

func TestValidationNamesFields(t *testing.T) {
	s, env, _ := newScreen(t)
	fillValid(s)
	s.form.Fields[fieldPhone].SetValue("")
	s.Update(ctrlA)

	if next := submit(t, s); next != nil {
		t.Error("invalid form should not navigate")
	}
	if !env.IsGuest() {
		t.Error("nobody should be signed in")
	}
	if !strings.Contains(s.errMsg, "Celular") {
		t.Errorf("expected phone field in %q", s.errMsg)
	}
}

func TestDuplicateEmail(t *testing.T) {
	s, _, _ := newScreen(t)
	fillValid(s)
	s.Update(ctrlA)
	submit(t, s)

	again := New(s.env, s.home)
	fillValid(again)
	again.Update(ctrlA)
	submit(t, again)
	if again.errMsg != "Ese correo ya está registrado." {
		t.Errorf("unexpected error %q", again.errMsg)
	}
}

func TestEnterAdvancesFields(t *testing.T) {
	s, _, _ := newScreen(t)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.form.Focus != fieldLastName {
		t.Errorf("focus = %d, want last name", s.form.Focus)
	}
}
