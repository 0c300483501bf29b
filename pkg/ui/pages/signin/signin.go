// Package signin implements the login form. It is the page every guarded
// page falls back to when no usable session exists.
package signin

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/teamdesk/teamdesk/pkg/api"
	"github.com/teamdesk/teamdesk/pkg/proto"
	"github.com/teamdesk/teamdesk/pkg/ui/common"
	"github.com/teamdesk/teamdesk/pkg/ui/components/form"
)

// AuthMsg carries freshly issued tokens after a successful login.
type AuthMsg struct {
	Tokens proto.TokenPair
	// From is the page the user was on before being redirected here, so
	// the UI can return there after the guard re-check.
	From string
}

type loginResultMsg struct {
	tokens proto.TokenPair
	err    error
}

const (
	fieldUsername = iota
	fieldPassword
)

// Signin is the login page model.
type Signin struct {
	common common.Common
	form   *form.Form
	notice string
	// from remembers which page redirected here.
	from string
}

// New creates a new signin page.
func New(c common.Common) *Signin {
	f := form.New(c,
		form.NewField("Логин", ""),
		form.NewPasswordField("Пароль"),
	)
	return &Signin{
		common: c,
		form:   f,
	}
}

// SetNotice sets the redirect message shown above the form.
func (s *Signin) SetNotice(notice string) {
	s.notice = notice
}

// SetFrom remembers the page that redirected to signin.
func (s *Signin) SetFrom(from string) {
	s.from = from
}

// SetSize implements common.Component.
func (s *Signin) SetSize(width, height int) {
	s.common.SetSize(width, height)
	s.form.SetSize(width, height)
}

// ShortHelp implements help.KeyMap.
func (s *Signin) ShortHelp() []key.Binding {
	return []key.Binding{
		s.common.KeyMap.Section,
		s.common.KeyMap.Select,
		s.common.KeyMap.Quit,
	}
}

// FullHelp implements help.KeyMap.
func (s *Signin) FullHelp() [][]key.Binding {
	return [][]key.Binding{s.ShortHelp()}
}

// Init implements tea.Model.
func (s *Signin) Init() tea.Cmd {
	s.form.Reset()
	s.form.SetDisabled(false)
	return s.form.Init()
}

// Update implements tea.Model.
func (s *Signin) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)
	switch msg := msg.(type) {
	case form.SubmitMsg:
		username := s.form.Value(fieldUsername)
		password := s.form.Value(fieldPassword)
		if username == "" || password == "" {
			return s, nil
		}
		s.form.SetError("")
		s.form.SetDisabled(true)
		return s, s.loginCmd(username, password)
	case loginResultMsg:
		s.form.SetDisabled(false)
		if msg.err != nil {
			s.form.SetError("Ошибка входа: " + loginError(msg.err))
			return s, nil
		}
		s.notice = ""
		return s, func() tea.Msg {
			return AuthMsg{Tokens: msg.tokens, From: s.from}
		}
	}
	f, cmd := s.form.Update(msg)
	s.form = f.(*form.Form)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return s, tea.Batch(cmds...)
}

// View implements tea.Model.
func (s *Signin) View() string {
	st := s.common.Styles
	parts := make([]string, 0, 3)
	if s.notice != "" {
		parts = append(parts, st.Notice.Render(s.notice))
	}
	parts = append(parts, st.HeaderOrg.Render("Вход"))
	parts = append(parts, s.form.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *Signin) loginCmd(username, password string) tea.Cmd {
	client := s.common.Client
	ctx := s.common.Context()
	return func() tea.Msg {
		tokens, err := client.Login(ctx, username, password)
		return loginResultMsg{tokens: tokens, err: err}
	}
}

// loginError prefers the backend detail over the transport error.
func loginError(err error) string {
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) && reqErr.Detail != "" {
		return reqErr.Detail
	}
	return err.Error()
}
