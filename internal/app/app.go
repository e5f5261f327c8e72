// Package app is the root Bubble Tea model of the trainee TUI.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/santgross/BIOFIT-EXPERT/internal/player"
	"github.com/santgross/BIOFIT-EXPERT/internal/router"
	"github.com/santgross/BIOFIT-EXPERT/internal/screen"
	"github.com/santgross/BIOFIT-EXPERT/internal/screens/home"
	"github.com/santgross/BIOFIT-EXPERT/internal/screens/signin"
	"github.com/santgross/BIOFIT-EXPERT/internal/screens/welcome"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    *player.Env
	router *router.Router
	width  int
	height int
}

// NewAppModel creates the model starting on the welcome screen. Without an
// account service the trainee goes straight to the hub as a guest.
func NewAppModel(env *player.Env) AppModel {
	return AppModel{
		env:    env,
		router: router.New(rootScreen(env)),
	}
}

func rootScreen(env *player.Env) screen.Screen {
	var toSignIn func() screen.Screen
	toHome := func() screen.Screen { return home.New(env, toSignIn) }
	toSignIn = func() screen.Screen { return signin.New(env, toHome) }
	if env.Accounts == nil {
		env.PlayAsGuest()
		toSignIn = toHome
	}
	return welcome.New(toSignIn)
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if b, ok := m.router.Active().(screen.BackBlocker); ok && b.BlocksBack() {
				return m, nil
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.env.Status(), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Volver"},
			{Key: "Ctrl+C", Description: "Salir"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Enter", Description: "Continuar"},
			{Key: "Ctrl+C", Description: "Salir"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, env *player.Env) error {
	p := tea.NewProgram(NewAppModel(env))

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Quit()
		case <-done:
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
