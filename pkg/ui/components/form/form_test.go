package form

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matryer/is"

	"github.com/teamdesk/teamdesk/pkg/ui/common"
)

func newTestForm(t *testing.T, fields ...Field) *Form {
	t.Helper()
	c := common.NewCommon(context.Background(), nil, nil, 80, 24)
	f := New(c, fields...)
	f.SetSize(80, 24)
	return f
}

func TestFocusSkipsReadOnlyFields(t *testing.T) {
	is := is.New(t)
	f := newTestForm(t,
		NewReadOnlyField("Организация", "Рога и Копыта"),
		NewField("Логин", ""),
		NewPasswordField("Пароль"),
	)

	m, _ := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("lena")})
	f = m.(*Form)
	is.Equal(f.Value(1), "lena")

	// tab moves to the password field, wrapping past the read-only one.
	m, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f = m.(*Form)
	m, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("secret")})
	f = m.(*Form)
	is.Equal(f.Value(2), "secret")

	m, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f = m.(*Form)
	m, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+1")})
	f = m.(*Form)
	is.Equal(f.Value(1), "lena+1")
	is.Equal(f.Value(0), "Рога и Копыта")
}

func TestSubmitEmitted(t *testing.T) {
	is := is.New(t)
	f := newTestForm(t, NewField("Email", ""))

	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	is.True(cmd != nil)
	_, ok := cmd().(SubmitMsg)
	is.True(ok)
}

func TestDisabledFormIgnoresInput(t *testing.T) {
	is := is.New(t)
	f := newTestForm(t, NewField("Email", ""))
	f.SetDisabled(true)

	m, cmd := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("nope")})
	f = m.(*Form)
	is.Equal(cmd, nil)
	is.Equal(f.Value(0), "")

	_, cmd = f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	is.Equal(cmd, nil)
	is.True(strings.Contains(f.View(), "Подождите"))
}

func TestResetClearsEditableOnly(t *testing.T) {
	is := is.New(t)
	f := newTestForm(t,
		NewReadOnlyField("Email", "max@example.com"),
		NewField("Логин", ""),
	)
	m, _ := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("max")})
	f = m.(*Form)
	f.SetError("boom")

	f.Reset()
	is.Equal(f.Value(1), "")
	is.Equal(f.Value(0), "max@example.com")
	is.Equal(f.Error(), "")
}
