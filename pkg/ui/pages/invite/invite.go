// Package invite implements the invitation form.
package invite

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/teamdesk/teamdesk/pkg/api"
	"github.com/teamdesk/teamdesk/pkg/ui/common"
	"github.com/teamdesk/teamdesk/pkg/ui/components/form"
)

type sendResultMsg struct {
	err error
}

const fieldEmail = 0

// Invite is the invitation page model.
type Invite struct {
	common  common.Common
	form    *form.Form
	success bool
}

// New creates a new invite page.
func New(c common.Common) *Invite {
	return &Invite{
		common: c,
		form: form.New(c,
			form.NewField("Email", ""),
		),
	}
}

// Typing reports that the email field always owns the keyboard.
func (i *Invite) Typing() bool {
	return true
}

// SetSize implements common.Component.
func (i *Invite) SetSize(width, height int) {
	i.common.SetSize(width, height)
	i.form.SetSize(width, height)
}

// ShortHelp implements help.KeyMap.
func (i *Invite) ShortHelp() []key.Binding {
	return []key.Binding{
		i.common.KeyMap.Select,
		i.common.KeyMap.Quit,
	}
}

// FullHelp implements help.KeyMap.
func (i *Invite) FullHelp() [][]key.Binding {
	return [][]key.Binding{i.ShortHelp()}
}

// Init implements tea.Model.
func (i *Invite) Init() tea.Cmd {
	i.success = false
	i.form.Reset()
	i.form.SetDisabled(false)
	return i.form.Init()
}

// Update implements tea.Model.
func (i *Invite) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)
	switch msg := msg.(type) {
	case form.SubmitMsg:
		email := i.form.Value(fieldEmail)
		if email == "" {
			return i, nil
		}
		i.success = false
		i.form.SetError("")
		i.form.SetDisabled(true)
		return i, i.sendCmd(email)
	case sendResultMsg:
		i.form.SetDisabled(false)
		if msg.err != nil {
			i.form.SetError(sendError(msg.err))
			return i, nil
		}
		i.success = true
		i.form.Reset()
		return i, nil
	}
	f, cmd := i.form.Update(msg)
	i.form = f.(*form.Form)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return i, tea.Batch(cmds...)
}

// View implements tea.Model.
func (i *Invite) View() string {
	st := i.common.Styles
	parts := []string{
		st.HeaderOrg.Render("Пригласить пользователя"),
	}
	if i.success {
		parts = append(parts, st.Success.Render("Приглашение успешно отправлено!"))
	}
	parts = append(parts, i.form.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (i *Invite) sendCmd(email string) tea.Cmd {
	client := i.common.Client
	ctx := i.common.Context()
	return func() tea.Msg {
		return sendResultMsg{err: client.SendInvite(ctx, email)}
	}
}

func sendError(err error) string {
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) && reqErr.Detail != "" {
		return reqErr.Detail
	}
	return "Ошибка при отправке приглашения"
}
