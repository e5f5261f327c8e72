// Package register is the trainee registration form with the data
// protection consent.
package register

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
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/components"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/layout"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/theme"
)

const (
	fieldFirstName = iota
	fieldLastName
	fieldEmail
	fieldPhone
	fieldPharmacy
	fieldRepresentative
	fieldPassword
)

var fieldLabels = map[string]string{
	"FirstName":          "Nombre",
	"LastName":           "Apellido",
	"Email":              "Correo",
	"Phone":              "Celular",
	"PharmacyName":       "Farmacia",
	"RepresentativeName": "Representante",
	"Password":           "Contraseña (mínimo 6 caracteres)",
	"PrivacyAccepted":    "Aceptación de la política de datos",
}

const consentText = "Autorizo el tratamiento de mis datos personales (nombre, teléfono, correo y farmacia) " +
	"conforme a la Ley Orgánica de Protección de Datos Personales del Ecuador, únicamente para gestionar " +
	"mi acceso, recibir contenidos educativos y validar mi participación en dinámicas y premios."

type registeredMsg struct {
	Err error
}

// Screen is the registration form.
type Screen struct {
	env     *player.Env
	home    func() screen.Screen
	form    components.Form
	consent bool
	initCmd tea.Cmd
	busy    bool
	errMsg  string
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
)

// New creates the registration screen. home builds the screen shown after a
// successful registration.
func New(env *player.Env, home func() screen.Screen) *Screen {
	form, cmd := components.NewForm(
		components.NewField("Nombre", "", false, 80),
		components.NewField("Apellido", "", false, 80),
		components.NewField("Correo electrónico", "tu@farmacia.com", false, 254),
		components.NewField("Celular", "09XXXXXXXX", false, 20),
		components.NewField("Farmacia", "", false, 120),
		components.NewField("Representante (opcional)", "", false, 120),
		components.NewField("Contraseña", "", true, 72),
	)
	return &Screen{env: env, home: home, form: form, initCmd: cmd}
}

func (s *Screen) Init() tea.Cmd { return s.initCmd }

func (s *Screen) Title() string { return "Registro de Usuario" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Campo"},
		{Key: "Ctrl+A", Description: "Aceptar política"},
		{Key: "Ctrl+S", Description: "Registrarme"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case registeredMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = describe(msg.Err)
			return s, nil
		}
		next := s.home()
		return s, tea.Sequence(
			func() tea.Msg { return router.PopScreenMsg{} },
			func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} },
		)

	case tea.KeyPressMsg:
		if s.busy {
			return s, nil
		}
		switch msg.String() {
		case "ctrl+a":
			s.consent = !s.consent
			return s, nil
		case "ctrl+s":
			return s, s.submit()
		case "enter":
			if s.form.Focus < len(s.form.Fields)-1 {
				return s, s.form.Move(1)
			}
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)
	return s, cmd
}

func (s *Screen) input() account.RegisterInput {
	return account.RegisterInput{
		FirstName:          s.form.Value(fieldFirstName),
		LastName:           s.form.Value(fieldLastName),
		Email:              s.form.Value(fieldEmail),
		Phone:              s.form.Value(fieldPhone),
		PharmacyName:       s.form.Value(fieldPharmacy),
		RepresentativeName: s.form.Value(fieldRepresentative),
		Password:           s.form.Value(fieldPassword),
		PrivacyAccepted:    s.consent,
	}
}

func (s *Screen) submit() tea.Cmd {
	in := s.input()
	if !s.consent {
		s.errMsg = "Debes aceptar la política de protección de datos (Ctrl+A)."
		return nil
	}
	s.busy = true
	s.errMsg = ""
	env := s.env
	return func() tea.Msg {
		ctx := context.Background()
		u, err := env.Accounts.Register(ctx, in)
		if err != nil {
			return registeredMsg{Err: err}
		}
		return registeredMsg{Err: env.SignIn(ctx, u)}
	}
}

func describe(err error) string {
	var verr *account.ValidationError
	switch {
	case errors.As(err, &verr):
		names := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			if label, ok := fieldLabels[f]; ok {
				f = label
			}
			names = append(names, f)
		}
		return "Revisa: " + strings.Join(names, ", ")
	case errors.Is(err, account.ErrEmailTaken):
		return "Ese correo ya está registrado."
	default:
		return "No se pudo registrar: " + err.Error()
	}
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)

	box := "[ ]"
	if s.consent {
		box = theme.Correct.Render("[✓]")
	}
	consent := box + " " + lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw-12).Render(consentText)

	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Registro de Usuario"),
		"",
		s.form.View(),
		"",
		consent,
	}
	if s.busy {
		sections = append(sections, "", theme.Hint.Render("Registrando…"))
	}
	if s.errMsg != "" {
		sections = append(sections, "", theme.Incorrect.Render(s.errMsg))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Padding(0, 2).
		Render(strings.Join(sections, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, card)
}
