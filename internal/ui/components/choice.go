package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/santgross/BIOFIT-EXPERT/internal/ui/theme"
)

// Choice is a row of two buttons, such as VERDADERO / FALSO. Left/right
// moves the selection; Enter submits it.
type Choice struct {
	Labels   [2]string
	Selected int
	// Chosen is -1 until the trainee submits.
	Chosen int
}

// NewChoice creates a two-button choice with the first button selected.
func NewChoice(left, right string) Choice {
	return Choice{Labels: [2]string{left, right}, Chosen: -1}
}

// Submitted reports whether a button was pressed.
func (c Choice) Submitted() bool {
	return c.Chosen >= 0
}

// Update handles keyboard selection. Shortcut keys "1" and "2" press a
// button directly.
func (c Choice) Update(msg tea.Msg) Choice {
	if c.Submitted() {
		return c
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c
	}
	switch kmsg.String() {
	case "left", "h", "shift+tab":
		c.Selected = 0
	case "right", "l", "tab":
		c.Selected = 1
	case "1":
		c.Selected, c.Chosen = 0, 0
	case "2":
		c.Selected, c.Chosen = 1, 1
	case "enter", "space":
		c.Chosen = c.Selected
	}
	return c
}

// View renders both buttons side by side.
func (c Choice) View() string {
	buttons := make([]string, 2)
	for i, label := range c.Labels {
		switch {
		case c.Submitted() && i == c.Chosen:
			buttons[i] = theme.ButtonActive.Render("▸ " + label)
		case c.Submitted():
			buttons[i] = theme.ButtonInactive.Foreground(theme.TextDim).Render(label)
		case i == c.Selected:
			buttons[i] = theme.ButtonActive.Render("▸ " + label)
		default:
			buttons[i] = theme.ButtonInactive.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, buttons[0], "   ", buttons[1])
}
