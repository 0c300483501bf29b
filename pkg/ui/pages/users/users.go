// Package users implements the organization user list with admin role
// management.
package users

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/teamdesk/teamdesk/pkg/access"
	"github.com/teamdesk/teamdesk/pkg/proto"
	"github.com/teamdesk/teamdesk/pkg/query"
	"github.com/teamdesk/teamdesk/pkg/ui/common"
)

type usersMsg struct {
	seq   int
	org   proto.Organization
	users []proto.User
	err   error
}

type roleResultMsg struct {
	err error
}

// Users is the organization users page model.
type Users struct {
	common  common.Common
	admin   bool
	org     proto.Organization
	users   []proto.User
	cursor  int
	loading bool
	mutated bool
	err     error
	seq     int
}

// New creates a new users page.
func New(c common.Common) *Users {
	return &Users{
		common: c,
	}
}

// SetAdmin marks the current user as an organization admin, unlocking role
// management.
func (u *Users) SetAdmin(admin bool) {
	u.admin = admin
}

// SetSize implements common.Component.
func (u *Users) SetSize(width, height int) {
	u.common.SetSize(width, height)
}

// ShortHelp implements help.KeyMap.
func (u *Users) ShortHelp() []key.Binding {
	b := []key.Binding{
		u.common.KeyMap.UpDown,
	}
	if u.admin {
		b = append(b,
			key.NewBinding(
				key.WithKeys("a"),
				key.WithHelp("a", "grant admin"),
			),
			key.NewBinding(
				key.WithKeys("x"),
				key.WithHelp("x", "revoke admin"),
			),
		)
	}
	return append(b, u.common.KeyMap.Quit)
}

// FullHelp implements help.KeyMap.
func (u *Users) FullHelp() [][]key.Binding {
	return [][]key.Binding{u.ShortHelp()}
}

// Init implements tea.Model.
func (u *Users) Init() tea.Cmd {
	u.loading = true
	u.err = nil
	u.seq++
	return u.fetchCmd(u.seq)
}

// Update implements tea.Model.
func (u *Users) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.String() == "up" || msg.String() == "k":
			if u.cursor > 0 {
				u.cursor--
			}
		case msg.String() == "down" || msg.String() == "j":
			if u.cursor < len(u.users)-1 {
				u.cursor++
			}
		case key.Matches(msg, u.common.KeyMap.Refresh):
			u.common.Cache.Invalidate(query.KindOrganizations, query.KindOrgUsers)
			return u, u.Init()
		case msg.String() == "a":
			if !u.admin || u.mutated || u.cursor >= len(u.users) {
				return u, nil
			}
			user := u.users[u.cursor]
			if access.IsOrgAdmin(u.org, user.ID) {
				return u, nil
			}
			u.mutated = true
			return u, u.grantCmd(user.Email)
		case msg.String() == "x":
			if !u.admin || u.mutated || u.cursor >= len(u.users) {
				return u, nil
			}
			user := u.users[u.cursor]
			if !access.IsOrgAdmin(u.org, user.ID) {
				return u, nil
			}
			u.mutated = true
			return u, u.revokeCmd(user.ID)
		}
	case usersMsg:
		if msg.seq != u.seq {
			return u, nil
		}
		u.loading = false
		if msg.err != nil {
			u.err = msg.err
			return u, nil
		}
		u.err = nil
		u.org = msg.org
		u.users = msg.users
		if u.cursor >= len(u.users) {
			u.cursor = 0
		}
	case roleResultMsg:
		u.mutated = false
		if msg.err != nil {
			return u, common.ErrorCmd(msg.err)
		}
		// The admin set is server truth; refetch rather than patching.
		query.InvalidateKinds{
			query.KindOrganizations,
			query.KindOrgUsers,
		}.Reconcile(u.common.Cache)
		return u, u.Init()
	}
	return u, nil
}

// View implements tea.Model.
func (u *Users) View() string {
	st := u.common.Styles
	s := strings.Builder{}
	s.WriteString(st.HeaderOrg.Render("Пользователи"))
	s.WriteString("\n")
	switch {
	case u.loading:
		s.WriteString(st.Spinner.Render("Загрузка..."))
	case u.err != nil:
		s.WriteString(st.Form.Error.Render("Ошибка загрузки пользователей: " + u.err.Error()))
	case len(u.users) == 0:
		s.WriteString(st.List.NoItems.Render("Нет пользователей в организации"))
	default:
		for i, user := range u.users {
			s.WriteString(u.itemView(user, i == u.cursor))
			s.WriteString("\n")
		}
	}
	return s.String()
}

func (u *Users) itemView(user proto.User, active bool) string {
	st := u.common.Styles
	item := st.List.Normal
	if active {
		item = st.List.Active
	}
	role := "Участник"
	roleStyle := item.Desc
	if access.IsOrgAdmin(u.org, user.ID) {
		role = "Администратор"
		roleStyle = st.AdminBadge
	}
	line := item.Title.Render(user.Username) + "  " +
		item.Desc.Render(user.Email) + "  " +
		roleStyle.Render(role)
	return item.Base.Render(line)
}

// fetchCmd loads the first organization and its user list. Both reads go
// through the cache.
func (u *Users) fetchCmd(seq int) tea.Cmd {
	client := u.common.Client
	cache := u.common.Cache
	ctx := u.common.Context()
	return func() tea.Msg {
		orgs, err := query.Fetch(ctx, cache,
			query.Key{Kind: query.KindOrganizations},
			func(ctx context.Context) ([]proto.Organization, error) {
				return client.Organizations(ctx)
			})
		if err != nil {
			return usersMsg{seq: seq, err: err}
		}
		if len(orgs) == 0 {
			return usersMsg{seq: seq, err: proto.ErrNoOrganization}
		}
		org := orgs[0]
		users, err := query.Fetch(ctx, cache,
			query.Key{Kind: query.KindOrgUsers, ID: org.ID},
			func(ctx context.Context) ([]proto.User, error) {
				return client.OrganizationUsers(ctx, org.ID)
			})
		return usersMsg{seq: seq, org: org, users: users, err: err}
	}
}

func (u *Users) grantCmd(email string) tea.Cmd {
	client := u.common.Client
	ctx := u.common.Context()
	orgID := u.org.ID
	return func() tea.Msg {
		return roleResultMsg{err: client.AddOrganizationAdmin(ctx, orgID, email)}
	}
}

func (u *Users) revokeCmd(userID int64) tea.Cmd {
	client := u.common.Client
	ctx := u.common.Context()
	orgID := u.org.ID
	return func() tea.Msg {
		return roleResultMsg{err: client.RemoveOrganizationAdmin(ctx, orgID, userID)}
	}
}
