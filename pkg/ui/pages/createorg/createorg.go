// Package createorg implements the organization creation form shown to a
// freshly registered user without an organization.
package createorg

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/teamdesk/teamdesk/pkg/api"
	"github.com/teamdesk/teamdesk/pkg/proto"
	"github.com/teamdesk/teamdesk/pkg/query"
	"github.com/teamdesk/teamdesk/pkg/ui/common"
	"github.com/teamdesk/teamdesk/pkg/ui/components/form"
)

// CreatedMsg is sent after the organization has been created. The UI moves
// to the dashboard with the confirmation notice.
type CreatedMsg struct {
	Org    proto.Organization
	Notice string
}

type createResultMsg struct {
	org proto.Organization
	err error
}

const fieldName = 0

// CreateOrg is the organization creation page model.
type CreateOrg struct {
	common common.Common
	form   *form.Form
}

// New creates a new organization creation page.
func New(c common.Common) *CreateOrg {
	return &CreateOrg{
		common: c,
		form: form.New(c,
			form.NewField("Название организации", ""),
		),
	}
}

// Typing reports that the name field always owns the keyboard.
func (p *CreateOrg) Typing() bool {
	return true
}

// SetSize implements common.Component.
func (p *CreateOrg) SetSize(width, height int) {
	p.common.SetSize(width, height)
	p.form.SetSize(width, height)
}

// ShortHelp implements help.KeyMap.
func (p *CreateOrg) ShortHelp() []key.Binding {
	return []key.Binding{
		p.common.KeyMap.Select,
		p.common.KeyMap.Quit,
	}
}

// FullHelp implements help.KeyMap.
func (p *CreateOrg) FullHelp() [][]key.Binding {
	return [][]key.Binding{p.ShortHelp()}
}

// Init implements tea.Model.
func (p *CreateOrg) Init() tea.Cmd {
	p.form.Reset()
	p.form.SetDisabled(false)
	return p.form.Init()
}

// Update implements tea.Model.
func (p *CreateOrg) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)
	switch msg := msg.(type) {
	case form.SubmitMsg:
		name := p.form.Value(fieldName)
		if name == "" {
			// Validated locally, no request leaves the client.
			p.form.SetError("Название организации обязательно")
			return p, nil
		}
		p.form.SetError("")
		p.form.SetDisabled(true)
		return p, p.createCmd(name)
	case createResultMsg:
		p.form.SetDisabled(false)
		if msg.err != nil {
			p.form.SetError(createError(msg.err))
			return p, nil
		}
		p.common.Cache.Invalidate(query.KindOrganizations)
		org := msg.org
		return p, func() tea.Msg {
			return CreatedMsg{
				Org:    org,
				Notice: fmt.Sprintf("Организация %q успешно создана!", org.Name),
			}
		}
	}
	f, cmd := p.form.Update(msg)
	p.form = f.(*form.Form)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return p, tea.Batch(cmds...)
}

// View implements tea.Model.
func (p *CreateOrg) View() string {
	st := p.common.Styles
	return lipgloss.JoinVertical(lipgloss.Left,
		st.HeaderOrg.Render("Создать организацию"),
		p.form.View(),
	)
}

func (p *CreateOrg) createCmd(name string) tea.Cmd {
	client := p.common.Client
	ctx := p.common.Context()
	return func() tea.Msg {
		org, err := client.CreateOrganization(ctx, name)
		return createResultMsg{org: org, err: err}
	}
}

func createError(err error) string {
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) {
		if f := reqErr.Field("name"); f != "" {
			return f
		}
		if reqErr.Detail != "" {
			return reqErr.Detail
		}
	}
	return "Ошибка при создании организации"
}
