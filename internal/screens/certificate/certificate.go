// Package certificate shows certificate eligibility and saves the PDF.
package certificate

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/santgross/BIOFIT-EXPERT/internal/content"
	"github.com/santgross/BIOFIT-EXPERT/internal/export"
	"github.com/santgross/BIOFIT-EXPERT/internal/player"
	"github.com/santgross/BIOFIT-EXPERT/internal/progress"
	"github.com/santgross/BIOFIT-EXPERT/internal/screen"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/components"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/layout"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/theme"
)

type savedMsg struct {
	Path string
	Err  error
}

// Screen is the certificate page.
type Screen struct {
	env    *player.Env
	saving bool
	path   string
	errMsg string
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
)

func New(env *player.Env) *Screen {
	return &Screen{env: env}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Certificado" }

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.env.CertificateEligible() {
		return []layout.KeyHint{{Key: "P", Description: "Descargar PDF"}, {Key: "Esc", Description: "Volver"}}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Volver"}}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		s.saving = false
		if msg.Err != nil {
			s.env.Log().Error("save certificate", "error", msg.Err)
			s.errMsg = "No se pudo guardar el certificado."
			return s, nil
		}
		s.path = msg.Path
		s.errMsg = ""
	case tea.KeyPressMsg:
		if msg.String() != "p" || s.saving || !s.env.CertificateEligible() {
			return s, nil
		}
		s.saving = true
		cert := export.Certificate{FullName: s.env.User().FullName(), IssuedAt: s.env.Today()}
		dir := s.env.CertificateDir
		return s, func() tea.Msg {
			path, err := export.SaveCertificate(dir, cert)
			return savedMsg{Path: path, Err: err}
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var body []string

	switch {
	case s.env.IsGuest():
		body = append(body,
			theme.Locked.Render("🔒 Certificado no disponible"),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Inicia sesión para obtener tu certificado."),
		)

	case s.env.CertificateEligible():
		body = append(body,
			lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render("🎓 CERTIFICADO DE EXCELENCIA"),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Se certifica que"),
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.env.User().FullName()),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("es Embajador BIOFIT"),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Fecha de emisión: "+export.SpanishDate(s.env.Today())),
		)
		switch {
		case s.saving:
			body = append(body, "", theme.Hint.Render("Generando PDF…"))
		case s.path != "":
			body = append(body, "", theme.Correct.Render("✓ Guardado en "+s.path))
		default:
			body = append(body, "", components.ActionButton("Descargar PDF (P)", 24))
		}

	default:
		body = append(body,
			theme.Locked.Render("🔒 Certificado bloqueado"),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Render("Para obtenerlo necesitas:"),
		)
		body = append(body, s.requirements()...)
	}

	if s.errMsg != "" {
		body = append(body, "", theme.Incorrect.Render(s.errMsg))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		components.Card(strings.Join(body, "\n"), cw))
}

func (s *Screen) requirements() []string {
	p := s.env.Current()
	done := p.Completed()
	check := func(ok bool, label string) string {
		if ok {
			return theme.Correct.Render("✓ " + label)
		}
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("○ " + label)
	}

	var lines []string
	for _, m := range content.AllModules() {
		lines = append(lines, check(done.Has(progress.CompleteMarker(m)), "Completar "+m.DisplayName()))
	}
	maestro := s.env.Pack.Thresholds.Maestro
	lines = append(lines, check(p.Points >= maestro,
		fmt.Sprintf("Nivel Maestro (%d/%d puntos)", min(p.Points, maestro), maestro)))
	return lines
}
