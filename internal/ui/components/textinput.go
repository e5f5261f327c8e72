package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/santgross/BIOFIT-EXPERT/internal/ui/theme"
)

// Field is a labelled text input used by the sign-in and registration
// forms.
type Field struct {
	Label string
	Model textinput.Model
}

// NewField creates a labelled input. secret masks the typed characters.
func NewField(label, placeholder string, secret bool, limit int) Field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	if limit > 0 {
		ti.CharLimit = limit
	}
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	return Field{Label: label, Model: ti}
}

// Focus gives the field keyboard focus.
func (f *Field) Focus() tea.Cmd {
	return f.Model.Focus()
}

// Blur removes keyboard focus.
func (f *Field) Blur() {
	f.Model.Blur()
}

// Update forwards msg to the input.
func (f Field) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// Value returns the current input value.
func (f Field) Value() string {
	return f.Model.Value()
}

// SetValue replaces the input value.
func (f *Field) SetValue(v string) {
	f.Model.SetValue(v)
}

// View renders the label above the input.
func (f Field) View() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	if f.Model.Focused() {
		label = theme.Selected
	}
	return label.Render(f.Label) + "\n" + lipgloss.NewStyle().Foreground(theme.Text).Render("  "+f.Model.View())
}

// Form is an ordered set of fields with one focused at a time.
type Form struct {
	Fields []Field
	Focus  int
}

// NewForm focuses the first field.
func NewForm(fields ...Field) (Form, tea.Cmd) {
	f := Form{Fields: fields}
	var cmd tea.Cmd
	if len(fields) > 0 {
		cmd = f.Fields[0].Focus()
	}
	return f, cmd
}

// Move shifts focus by delta, wrapping around.
func (f *Form) Move(delta int) tea.Cmd {
	if len(f.Fields) == 0 {
		return nil
	}
	f.Fields[f.Focus].Blur()
	f.Focus = (f.Focus + delta + len(f.Fields)) % len(f.Fields)
	return f.Fields[f.Focus].Focus()
}

// Update handles tab/shift+tab/up/down navigation and forwards other input to
// the focused field.
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return f, f.Move(1)
		case "shift+tab", "up":
			return f, f.Move(-1)
		}
	}
	if len(f.Fields) == 0 {
		return f, nil
	}
	var cmd tea.Cmd
	f.Fields[f.Focus], cmd = f.Fields[f.Focus].Update(msg)
	return f, cmd
}

// Value returns the value of field i.
func (f Form) Value(i int) string {
	return f.Fields[i].Value()
}

// View renders every field.
func (f Form) View() string {
	out := ""
	for i, field := range f.Fields {
		if i > 0 {
			out += "\n\n"
		}
		out += field.View()
	}
	return out
}
