// Package dashboard implements the landing page: the user's own presence
// status and the live status list of the whole team.
package dashboard

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/teamdesk/teamdesk/pkg/proto"
	"github.com/teamdesk/teamdesk/pkg/query"
	"github.com/teamdesk/teamdesk/pkg/ui/common"
)

type teamMsg struct {
	seq   int
	users []proto.User
	err   error
}

type statusResultMsg struct {
	status proto.Status
	err    error
}

// Dashboard is the dashboard page model.
type Dashboard struct {
	common  common.Common
	profile proto.Profile
	team    []proto.User
	// selected is the status the cursor is on; profile.Status is the one
	// the server knows about.
	selected proto.Status
	updating bool
	loading  bool
	err      error
	// seq tags team fetches so a response landing after a refresh or page
	// switch is dropped.
	seq int
}

// New creates a new dashboard page.
func New(c common.Common) *Dashboard {
	return &Dashboard{
		common: c,
	}
}

// SetProfile sets the signed-in user's profile.
func (d *Dashboard) SetProfile(p proto.Profile) {
	d.profile = p
	d.selected = p.Status
}

// SetSize implements common.Component.
func (d *Dashboard) SetSize(width, height int) {
	d.common.SetSize(width, height)
}

// ShortHelp implements help.KeyMap.
func (d *Dashboard) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←→", "status"),
		),
		d.common.KeyMap.Select,
		d.common.KeyMap.Refresh,
		d.common.KeyMap.Quit,
	}
}

// FullHelp implements help.KeyMap.
func (d *Dashboard) FullHelp() [][]key.Binding {
	return [][]key.Binding{d.ShortHelp()}
}

// Init implements tea.Model.
func (d *Dashboard) Init() tea.Cmd {
	d.loading = true
	d.err = nil
	d.seq++
	return d.fetchTeamCmd(d.seq)
}

// Update implements tea.Model.
func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.String() == "left":
			d.selected = prevStatus(d.selected)
		case msg.String() == "right":
			d.selected = nextStatus(d.selected)
		case key.Matches(msg, d.common.KeyMap.Select):
			if d.updating || d.selected == d.profile.Status {
				return d, nil
			}
			d.updating = true
			return d, d.updateStatusCmd(d.selected)
		case key.Matches(msg, d.common.KeyMap.Refresh):
			d.common.Cache.Invalidate(query.KindTeamStatus)
			return d, d.Init()
		}
	case teamMsg:
		if msg.seq != d.seq {
			return d, nil
		}
		d.loading = false
		if msg.err != nil {
			d.err = msg.err
			return d, nil
		}
		d.err = nil
		d.team = msg.users
	case statusResultMsg:
		d.updating = false
		if msg.err != nil {
			return d, common.ErrorCmd(msg.err)
		}
		d.profile.Status = msg.status
		// The team list is patched in place instead of refetched. The
		// next full refetch reconciles it with the server.
		d.applyOptimistic(msg.status)
		d.seq++
		return d, d.fetchCachedTeamCmd(d.seq)
	}
	return d, nil
}

func (d *Dashboard) applyOptimistic(status proto.Status) {
	userID := int64(0)
	if claims, err := d.common.Session.Claims(); err == nil {
		userID = claims.UserID
	}
	strategy := query.Optimistic{
		Key: query.Key{Kind: query.KindTeamStatus},
		Patch: func(val any) any {
			users, ok := val.([]proto.User)
			if !ok {
				return val
			}
			out := make([]proto.User, len(users))
			copy(out, users)
			for i := range out {
				if (userID != 0 && out[i].ID == userID) || out[i].Username == d.profile.Username {
					out[i].Status = status
				}
			}
			return out
		},
	}
	strategy.Reconcile(d.common.Cache)
}

// View implements tea.Model.
func (d *Dashboard) View() string {
	st := d.common.Styles
	s := strings.Builder{}
	s.WriteString(st.HeaderOrg.Render("Мой статус"))
	s.WriteString("\n")
	s.WriteString(d.statusSelectorView())
	s.WriteString("\n\n")
	s.WriteString(st.HeaderOrg.Render("Статусы команды"))
	s.WriteString("\n")
	switch {
	case d.loading:
		s.WriteString(st.Spinner.Render("Загрузка..."))
	case d.err != nil:
		s.WriteString(st.Form.Error.Render("Ошибка: " + d.err.Error()))
	case len(d.team) == 0:
		s.WriteString(st.List.NoItems.Render("Нет пользователей в организации"))
	default:
		for _, u := range d.team {
			s.WriteString(d.userView(u))
			s.WriteString("\n")
		}
	}
	return s.String()
}

func (d *Dashboard) statusSelectorView() string {
	st := d.common.Styles
	parts := make([]string, 0, len(proto.Statuses()))
	for _, status := range proto.Statuses() {
		label := status.Label()
		style := st.List.Normal.Title
		switch status {
		case d.selected:
			style = st.List.Active.Title
			label = "[" + label + "]"
		case d.profile.Status:
			style = st.StatusStyle(status)
		}
		parts = append(parts, style.Render(label))
	}
	line := strings.Join(parts, "  ")
	if d.updating {
		line += "  " + st.Form.Hint.Render("Подождите…")
	}
	return line
}

func (d *Dashboard) userView(u proto.User) string {
	st := d.common.Styles
	dot := st.StatusStyle(u.Status).Render("●")
	name := st.List.Normal.Title.Render(u.Username)
	status := st.StatusStyle(u.Status).Render(u.Status.Label())
	changed := ""
	if u.LastStatusChange != nil {
		changed = st.List.Normal.Desc.Render(humanize.Time(*u.LastStatusChange))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		dot, " ", name, "  ", status, "  ", changed,
	)
}

func (d *Dashboard) fetchTeamCmd(seq int) tea.Cmd {
	client := d.common.Client
	cache := d.common.Cache
	ctx := d.common.Context()
	return func() tea.Msg {
		users, err := query.Fetch(ctx, cache,
			query.Key{Kind: query.KindTeamStatus},
			func(ctx context.Context) ([]proto.User, error) {
				return client.TeamStatus(ctx)
			})
		return teamMsg{seq: seq, users: users, err: err}
	}
}

// fetchCachedTeamCmd rereads the team list from the cache. After an
// optimistic patch it returns the patched entry without a request.
func (d *Dashboard) fetchCachedTeamCmd(seq int) tea.Cmd {
	return d.fetchTeamCmd(seq)
}

func (d *Dashboard) updateStatusCmd(status proto.Status) tea.Cmd {
	client := d.common.Client
	ctx := d.common.Context()
	return func() tea.Msg {
		return statusResultMsg{status: status, err: client.UpdateStatus(ctx, status)}
	}
}

func nextStatus(s proto.Status) proto.Status {
	all := proto.Statuses()
	for i, st := range all {
		if st == s {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func prevStatus(s proto.Status) proto.Status {
	all := proto.Statuses()
	for i, st := range all {
		if st == s {
			return all[(i-1+len(all))%len(all)]
		}
	}
	return all[0]
}
