// Package register implements invite-based registration. The invite token
// is validated first; only a valid invite renders the password form.
package register

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

// DoneMsg is sent after a successful registration. The UI returns to the
// signin page with the message attached.
type DoneMsg struct {
	Notice string
}

type inviteResultMsg struct {
	invite proto.Invite
	err    error
}

type registerResultMsg struct {
	err error
}

type state int

const (
	checkingState state = iota
	formState
	invalidState
)

const (
	fieldOrg = iota
	fieldEmail
	fieldPassword
	fieldConfirm
)

// Register is the invite registration page model.
type Register struct {
	common common.Common
	token  string
	state  state
	form   *form.Form
	err    string
}

// New creates a new register page for an invite token.
func New(c common.Common, token string) *Register {
	return &Register{
		common: c,
		token:  token,
		state:  checkingState,
	}
}

// SetSize implements common.Component.
func (r *Register) SetSize(width, height int) {
	r.common.SetSize(width, height)
	if r.form != nil {
		r.form.SetSize(width, height)
	}
}

// ShortHelp implements help.KeyMap.
func (r *Register) ShortHelp() []key.Binding {
	return []key.Binding{
		r.common.KeyMap.Section,
		r.common.KeyMap.Select,
		r.common.KeyMap.Quit,
	}
}

// FullHelp implements help.KeyMap.
func (r *Register) FullHelp() [][]key.Binding {
	return [][]key.Binding{r.ShortHelp()}
}

// Init implements tea.Model.
func (r *Register) Init() tea.Cmd {
	r.state = checkingState
	return r.validateCmd()
}

// Update implements tea.Model.
func (r *Register) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)
	switch msg := msg.(type) {
	case inviteResultMsg:
		if msg.err != nil {
			r.state = invalidState
			r.err = inviteError(msg.err)
			return r, nil
		}
		if !msg.invite.Valid {
			r.state = invalidState
			r.err = msg.invite.Error
			if r.err == "" {
				r.err = "Недействительное приглашение"
			}
			return r, nil
		}
		r.state = formState
		r.form = form.New(r.common,
			form.NewReadOnlyField("Организация", msg.invite.Organization),
			form.NewReadOnlyField("Email", msg.invite.Email),
			form.NewPasswordField("Пароль (минимум 8 символов)"),
			form.NewPasswordField("Подтвердите пароль"),
		)
		r.form.SetSize(r.common.Width, r.common.Height)
		return r, r.form.Init()
	case form.SubmitMsg:
		if r.state != formState {
			return r, nil
		}
		password := r.form.Value(fieldPassword)
		confirm := r.form.Value(fieldConfirm)
		if len(password) < 8 {
			r.form.SetError("Пароль должен содержать минимум 8 символов")
			return r, nil
		}
		if password != confirm {
			r.form.SetError("Пароли не совпадают")
			return r, nil
		}
		r.form.SetError("")
		r.form.SetDisabled(true)
		return r, r.registerCmd(password)
	case registerResultMsg:
		if r.form != nil {
			r.form.SetDisabled(false)
		}
		if msg.err != nil {
			r.form.SetError(inviteError(msg.err))
			return r, nil
		}
		return r, func() tea.Msg {
			return DoneMsg{Notice: "Регистрация завершена. Войдите в систему."}
		}
	}
	if r.state == formState {
		f, cmd := r.form.Update(msg)
		r.form = f.(*form.Form)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return r, tea.Batch(cmds...)
}

// View implements tea.Model.
func (r *Register) View() string {
	st := r.common.Styles
	switch r.state {
	case checkingState:
		return st.Spinner.Render("Загрузка...")
	case invalidState:
		return lipgloss.JoinVertical(lipgloss.Left,
			st.ErrorTitle.Render("Недействительное приглашение"),
			st.ErrorBody.Render(r.err),
		)
	default:
		return lipgloss.JoinVertical(lipgloss.Left,
			st.HeaderOrg.Render("Регистрация по приглашению"),
			r.form.View(),
		)
	}
}

func (r *Register) validateCmd() tea.Cmd {
	client := r.common.Client
	ctx := r.common.Context()
	token := r.token
	return func() tea.Msg {
		invite, err := client.ValidateInvite(ctx, token)
		return inviteResultMsg{invite: invite, err: err}
	}
}

func (r *Register) registerCmd(password string) tea.Cmd {
	client := r.common.Client
	ctx := r.common.Context()
	token := r.token
	return func() tea.Msg {
		return registerResultMsg{err: client.RegisterByInvite(ctx, token, password)}
	}
}

func inviteError(err error) string {
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) && reqErr.Detail != "" {
		return reqErr.Detail
	}
	if errors.Is(err, proto.ErrInviteInvalid) {
		return "Недействительное приглашение"
	}
	return err.Error()
}
