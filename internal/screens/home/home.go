package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/santgross/BIOFIT-EXPERT/internal/content"
	"github.com/santgross/BIOFIT-EXPERT/internal/player"
	"github.com/santgross/BIOFIT-EXPERT/internal/progress"
	"github.com/santgross/BIOFIT-EXPERT/internal/router"
	"github.com/santgross/BIOFIT-EXPERT/internal/screen"
	"github.com/santgross/BIOFIT-EXPERT/internal/screens/badges"
	"github.com/santgross/BIOFIT-EXPERT/internal/screens/certificate"
	"github.com/santgross/BIOFIT-EXPERT/internal/screens/history"
	"github.com/santgross/BIOFIT-EXPERT/internal/screens/match"
	"github.com/santgross/BIOFIT-EXPERT/internal/screens/scenario"
	"github.com/santgross/BIOFIT-EXPERT/internal/screens/trivia"
	"github.com/santgross/BIOFIT-EXPERT/internal/screens/truefalse"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/components"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/layout"
)

// taglines are shown next to available modules.
var taglines = map[content.Module]string{
	content.ModuleTrueFalse: "Mitos y Realidades BIOFIT",
	content.ModuleMatch:     "Precio, Beneficios y Acción",
	content.ModuleScenario:  "Simulación de Venta",
	content.ModuleTrivia:    "Demuestra lo que sabes",
}

// HomeScreen is the module hub.
type HomeScreen struct {
	env     *player.Env
	signOut func() screen.Screen

	menu          components.Menu
	badgeCount    int
	mascotVariant MascotVariant
	errMsg        string
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.Resumer         = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
)

// New creates the hub. signOut builds the screen shown after "Cerrar
// sesión".
func New(env *player.Env, signOut func() screen.Screen) *HomeScreen {
	h := &HomeScreen{env: env, signOut: signOut}
	h.rebuild()
	return h
}

// newGame returns the screen for module m.
func newGame(env *player.Env, m content.Module) screen.Screen {
	switch m {
	case content.ModuleTrueFalse:
		return truefalse.New(env)
	case content.ModuleMatch:
		return match.New(env)
	case content.ModuleScenario:
		return scenario.New(env)
	default:
		return trivia.New(env)
	}
}

// rebuild recomputes the menu and stats from the cached progress.
func (h *HomeScreen) rebuild() {
	env := h.env
	p := env.Current()
	completed := p.Completed()

	var items []components.MenuItem
	for _, m := range content.AllModules() {
		item := components.MenuItem{Label: m.Icon() + " " + m.DisplayName()}
		switch {
		case !env.Available(m):
			item.Disabled = true
			if prev, ok := progress.Prerequisite(m); ok {
				item.Hint = "🔒 Completa " + prev.DisplayName()
			}
		case completed.Has(progress.CompleteMarker(m)):
			item.Hint = "✓ " + taglines[m]
		default:
			item.Hint = taglines[m]
		}
		if !item.Disabled {
			item.Action = func() tea.Cmd {
				return func() tea.Msg { return router.PushScreenMsg{Screen: newGame(env, m)} }
			}
		}
		items = append(items, item)
	}

	h.badgeCount = 0
	for _, b := range env.Pack.Badges {
		if !env.IsGuest() && progress.BadgeUnlocked(b, p) {
			h.badgeCount++
		}
	}

	certHint := "Alcanza Maestro y completa los 4 módulos"
	if env.CertificateEligible() {
		certHint = "¡Disponible!"
	}

	items = append(items,
		components.MenuItem{
			Label: fmt.Sprintf("🏅 Mis logros (%d)", h.badgeCount),
			Action: func() tea.Cmd {
				return func() tea.Msg { return router.PushScreenMsg{Screen: badges.New(env)} }
			},
		},
		components.MenuItem{
			Label: "🎓 Certificado",
			Hint:  certHint,
			Action: func() tea.Cmd {
				return func() tea.Msg { return router.PushScreenMsg{Screen: certificate.New(env)} }
			},
		},
		components.MenuItem{
			Label: "📜 Historial",
			Action: func() tea.Cmd {
				return func() tea.Msg { return router.PushScreenMsg{Screen: history.New(env)} }
			},
		},
		components.MenuItem{
			Label: "Cerrar sesión",
			Action: func() tea.Cmd {
				env.SignOut()
				next := h.signOut()
				return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
			},
		},
		components.MenuItem{Label: "Salir", Action: func() tea.Cmd { return tea.Quit }},
	)

	selected := h.menu.Selected
	h.menu = components.NewMenu(items)
	if selected > 0 && selected < len(items) && !items[selected].Disabled {
		h.menu.Selected = selected
	}

	switch {
	case env.IsGuest():
		h.mascotVariant = MascotAlert
	case progress.ModulesCompleted(p) == len(content.AllModules()):
		h.mascotVariant = MascotCelebrating
	default:
		h.mascotVariant = MascotIdle
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Resume reloads progress when a game or info screen is popped.
func (h *HomeScreen) Resume() tea.Cmd {
	h.errMsg = ""
	if err := h.env.Refresh(context.Background()); err != nil {
		h.errMsg = "No se pudo actualizar tu progreso."
	}
	h.rebuild()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Entrar"},
		{Key: "Ctrl+C", Description: "Salir"},
	}
}

func (h *HomeScreen) View(width, height int) string {
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderGreeting(h.greetingName(), cw))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}
	sections = append(sections, renderStatsBar(h.env, h.badgeCount, cw, compact))
	if compact {
		sections = append(sections, renderArcadeMenuCompact(h.menu, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menu, cw))
	}
	if h.env.IsGuest() {
		sections = append(sections, renderGuestNote(cw))
	}
	if h.errMsg != "" {
		sections = append(sections, renderError(h.errMsg, cw))
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) greetingName() string {
	if u := h.env.User(); u != nil && u.FirstName != "" {
		return u.FirstName
	}
	return "Colega"
}

func (h *HomeScreen) Title() string {
	return "Inicio"
}
