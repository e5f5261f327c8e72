// Package signin is the entry screen: sign in, create an account or
// practice as a guest.
package signin

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/santgross/BIOFIT-EXPERT/internal/account"
	"github.com/santgross/BIOFIT-EXPERT/internal/player"
	"github.com/santgross/BIOFIT-EXPERT/internal/router"
	"github.com/santgross/BIOFIT-EXPERT/internal/screen"
	"github.com/santgross/BIOFIT-EXPERT/internal/screens/register"
	"github.com/santgross/BIOFIT-EXPERT/internal/store"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/components"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/layout"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/theme"
)

const (
	fieldEmail = iota
	fieldPassword
)

type signedInMsg struct {
	User *store.User
	Err  error
}

// Screen is the sign-in form.
type Screen struct {
	env     *player.Env
	home    func() screen.Screen
	form    components.Form
	initCmd tea.Cmd
	busy    bool
	errMsg  string
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
)

// New creates the sign-in screen. home builds the screen shown once a
// trainee is signed in or chooses guest play.
func New(env *player.Env, home func() screen.Screen) *Screen {
	form, cmd := components.NewForm(
		components.NewField("Correo electrónico", "tu@farmacia.com", false, 254),
		components.NewField("Contraseña", "", true, 72),
	)
	return &Screen{env: env, home: home, form: form, initCmd: cmd}
}

func (s *Screen) Init() tea.Cmd { return s.initCmd }

func (s *Screen) Title() string { return "Ingreso" }

func (s *Screen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: "Campo"}, {Key: "Enter", Description: "Ingresar"}}
	if s.env.Accounts != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+R", Description: "Registrarse"})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+G", Description: "Invitado"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Salir"},
	)
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case signedInMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = describe(msg.Err)
			return s, nil
		}
		return s, s.enter()

	case tea.KeyPressMsg:
		if s.busy {
			return s, nil
		}
		switch msg.String() {
		case "ctrl+g":
			s.env.PlayAsGuest()
			return s, s.enter()
		case "ctrl+r":
			if s.env.Accounts == nil {
				return s, nil
			}
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: register.New(s.env, s.home)}
			}
		case "enter":
			if s.form.Focus == fieldEmail {
				return s, s.form.Move(1)
			}
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)
	return s, cmd
}

func (s *Screen) submit() tea.Cmd {
	if s.env.Accounts == nil {
		s.errMsg = "Sin base de datos: usa Ctrl+G para practicar como invitado."
		return nil
	}
	email := strings.TrimSpace(s.form.Value(fieldEmail))
	password := s.form.Value(fieldPassword)
	if email == "" || password == "" {
		s.errMsg = "Por favor completa todos los campos."
		return nil
	}
	s.busy = true
	s.errMsg = ""
	env := s.env
	return func() tea.Msg {
		ctx := context.Background()
		u, err := env.Accounts.Login(ctx, email, password)
		if err != nil {
			return signedInMsg{Err: err}
		}
		if err := env.SignIn(ctx, u); err != nil {
			return signedInMsg{Err: err}
		}
		return signedInMsg{User: u}
	}
}

func (s *Screen) enter() tea.Cmd {
	next := s.home()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func describe(err error) string {
	if errors.Is(err, account.ErrInvalidCredentials) {
		return "Correo o contraseña incorrectos."
	}
	return "No se pudo ingresar: " + err.Error()
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)

	heading := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Ingreso de Usuario")
	intro := lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw - 6).Align(lipgloss.Center).
		Render("Completa los módulos para dominar los beneficios del Psyllium Muciloide.")

	sections := []string{heading, intro, "", s.form.View()}
	if s.busy {
		sections = append(sections, "", theme.Hint.Render("Verificando…"))
	}
	if s.errMsg != "" {
		sections = append(sections, "", theme.Incorrect.Render(s.errMsg))
	}
	sections = append(sections, "", theme.Hint.Render("¿Sin cuenta? Ctrl+R para registrarte o Ctrl+G para practicar."))

	card := components.Card(strings.Join(sections, "\n"), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
