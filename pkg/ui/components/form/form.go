package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/teamdesk/teamdesk/pkg/ui/common"
)

// SubmitMsg is sent when the user submits the form.
type SubmitMsg struct{}

// Field is a single labeled text input.
type Field struct {
	Label    string
	Input    textinput.Model
	ReadOnly bool
}

// NewField creates a form field.
func NewField(label, placeholder string) Field {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 254
	return Field{
		Label: label,
		Input: in,
	}
}

// NewPasswordField creates a form field with hidden input.
func NewPasswordField(label string) Field {
	f := NewField(label, "")
	f.Input.EchoMode = textinput.EchoPassword
	f.Input.EchoCharacter = '•'
	return f
}

// NewReadOnlyField creates a non-editable field with a fixed value.
func NewReadOnlyField(label, value string) Field {
	f := NewField(label, "")
	f.Input.SetValue(value)
	f.ReadOnly = true
	return f
}

// Form is a vertical group of text inputs with focus cycling.
type Form struct {
	common   common.Common
	fields   []Field
	focus    int
	err      string
	disabled bool
}

// New creates a new form.
func New(c common.Common, fields ...Field) *Form {
	f := &Form{
		common: c,
		fields: fields,
	}
	f.focus = f.firstEditable()
	if f.focus >= 0 {
		f.fields[f.focus].Input.Focus()
	}
	return f
}

func (f *Form) firstEditable() int {
	for i, fl := range f.fields {
		if !fl.ReadOnly {
			return i
		}
	}
	return -1
}

// Value returns the trimmed value of the i-th field.
func (f *Form) Value(i int) string {
	return strings.TrimSpace(f.fields[i].Input.Value())
}

// SetValue sets the value of the i-th field.
func (f *Form) SetValue(i int, v string) {
	f.fields[i].Input.SetValue(v)
}

// SetError sets the inline error line. An empty string clears it.
func (f *Form) SetError(err string) {
	f.err = err
}

// Error returns the current inline error line.
func (f *Form) Error() string {
	return f.err
}

// SetDisabled blocks input while a mutation is in flight.
func (f *Form) SetDisabled(disabled bool) {
	f.disabled = disabled
}

// Disabled returns whether the form is disabled.
func (f *Form) Disabled() bool {
	return f.disabled
}

// Reset clears all editable fields and errors.
func (f *Form) Reset() {
	for i := range f.fields {
		if !f.fields[i].ReadOnly {
			f.fields[i].Input.SetValue("")
		}
	}
	f.err = ""
	f.setFocus(f.firstEditable())
}

// SetSize implements common.Component.
func (f *Form) SetSize(width, height int) {
	f.common.SetSize(width, height)
	for i := range f.fields {
		f.fields[i].Input.Width = width - len(f.fields[i].Label) - 4
	}
}

func (f *Form) setFocus(focus int) {
	for i := range f.fields {
		f.fields[i].Input.Blur()
	}
	f.focus = focus
	if focus >= 0 && !f.fields[focus].ReadOnly {
		f.fields[focus].Input.Focus()
	}
}

func (f *Form) moveFocus(delta int) {
	if len(f.fields) == 0 {
		return
	}
	i := f.focus
	for range f.fields {
		i = (i + delta + len(f.fields)) % len(f.fields)
		if !f.fields[i].ReadOnly {
			f.setFocus(i)
			return
		}
	}
}

// Init implements tea.Model.
func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if f.disabled {
			return f, nil
		}
		switch msg.String() {
		case "tab", "down":
			f.moveFocus(1)
			return f, nil
		case "shift+tab", "up":
			f.moveFocus(-1)
			return f, nil
		case "enter":
			return f, func() tea.Msg { return SubmitMsg{} }
		}
	}
	if f.focus >= 0 && !f.disabled {
		var cmd tea.Cmd
		f.fields[f.focus].Input, cmd = f.fields[f.focus].Input.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return f, tea.Batch(cmds...)
}

// View implements tea.Model.
func (f *Form) View() string {
	st := f.common.Styles
	s := strings.Builder{}
	for i, fl := range f.fields {
		label := st.Form.Label
		if i == f.focus {
			label = st.Form.LabelFocus
		}
		s.WriteString(label.Render(fl.Label))
		s.WriteString(" ")
		if fl.ReadOnly {
			s.WriteString(st.Form.Value.Render(fl.Input.Value()))
		} else {
			s.WriteString(fl.Input.View())
		}
		s.WriteString("\n")
	}
	if f.err != "" {
		s.WriteString(st.Form.Error.Render(f.err))
		s.WriteString("\n")
	}
	if f.disabled {
		s.WriteString(st.Form.Hint.Render("Подождите…"))
		s.WriteString("\n")
	}
	return s.String()
}
