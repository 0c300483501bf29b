// Package ui implements the teamdesk terminal dashboard. The top-level
// model owns the auth guard: every page below it renders only for a session
// the server has vouched for.
package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/teamdesk/teamdesk/pkg/access"
	"github.com/teamdesk/teamdesk/pkg/proto"
	"github.com/teamdesk/teamdesk/pkg/query"
	"github.com/teamdesk/teamdesk/pkg/ui/common"
	"github.com/teamdesk/teamdesk/pkg/ui/components/footer"
	"github.com/teamdesk/teamdesk/pkg/ui/components/header"
	"github.com/teamdesk/teamdesk/pkg/ui/components/statusbar"
	"github.com/teamdesk/teamdesk/pkg/ui/components/tabs"
	"github.com/teamdesk/teamdesk/pkg/ui/pages/createorg"
	"github.com/teamdesk/teamdesk/pkg/ui/pages/dashboard"
	"github.com/teamdesk/teamdesk/pkg/ui/pages/invite"
	"github.com/teamdesk/teamdesk/pkg/ui/pages/project"
	"github.com/teamdesk/teamdesk/pkg/ui/pages/projects"
	"github.com/teamdesk/teamdesk/pkg/ui/pages/register"
	"github.com/teamdesk/teamdesk/pkg/ui/pages/signin"
	"github.com/teamdesk/teamdesk/pkg/ui/pages/users"
)

// State is the auth guard state.
type State int

const (
	// UnauthenticatedState renders the sign-in (or invite registration)
	// page. No guarded page is reachable.
	UnauthenticatedState State = iota
	// CheckingState means a token exists and the profile check is in
	// flight.
	CheckingState
	// AuthorizedState renders the guarded pages.
	AuthorizedState
	// DeniedState means the profile check failed for a reason other than
	// an expired session. The session is kept and an error is shown.
	DeniedState
)

type page int

const (
	dashboardPage page = iota
	projectsPage
	usersPage
	invitePage
	projectPage
	createOrgPage
)

var menuTabs = []string{"Dashboard", "Проекты", "Пользователи", "Пригласить"}

type authMsg struct {
	profile proto.Profile
	orgs    []proto.Organization
	err     error
}

type logoutMsg struct{}

// UI is the main UI model.
type UI struct {
	common     common.Common
	state      State
	pages      []common.Page
	activePage page
	tabs       *tabs.Tabs
	header     *header.Header
	statusbar  *statusbar.Model
	footer     *footer.Footer

	signin   *signin.Signin
	register *register.Register

	profile proto.Profile
	orgs    []proto.Organization
	admin   bool

	logoutKey key.Binding
	notice    string
	err       error
}

// New returns a new UI model.
func New(c common.Common) *UI {
	ui := &UI{
		common:    c,
		state:     UnauthenticatedState,
		signin:    signin.New(c),
		tabs:      tabs.New(c, menuTabs),
		header:    header.New(c, ""),
		statusbar: statusbar.New(c),
		logoutKey: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "logout"),
		),
	}
	ui.pages = make([]common.Page, createOrgPage+1)
	ui.pages[dashboardPage] = dashboard.New(c)
	ui.pages[projectsPage] = projects.New(c)
	ui.pages[usersPage] = users.New(c)
	ui.pages[invitePage] = invite.New(c)
	ui.pages[projectPage] = project.New(c)
	ui.pages[createOrgPage] = createorg.New(c)
	ui.footer = footer.New(c, ui)
	ui.SetSize(c.Width, c.Height)
	return ui
}

// NewWithInvite returns a UI model starting on the invite registration page.
func NewWithInvite(c common.Common, token string) *UI {
	ui := New(c)
	ui.register = register.New(c, token)
	return ui
}

// State returns the guard state.
func (ui *UI) State() State {
	return ui.state
}

// ActivePage returns the name of the visible guarded page.
func (ui *UI) ActivePage() string {
	if int(ui.activePage) < len(menuTabs) {
		return menuTabs[ui.activePage]
	}
	return "Проекты"
}

func (ui *UI) getMargins() (wm, hm int) {
	style := ui.common.Styles.App
	wm = style.GetHorizontalFrameSize()
	hm = style.GetVerticalFrameSize() +
		1 + // header
		1 + // tabs
		1 + // statusbar
		ui.footer.Height()
	return
}

// ShortHelp implements help.KeyMap.
func (ui *UI) ShortHelp() []key.Binding {
	b := make([]key.Binding, 0)
	switch ui.state {
	case AuthorizedState:
		b = append(b, ui.pages[ui.activePage].ShortHelp()...)
		b = append(b, ui.logoutKey)
	case UnauthenticatedState:
		if ui.register != nil {
			b = append(b, ui.register.ShortHelp()...)
		} else {
			b = append(b, ui.signin.ShortHelp()...)
		}
	default:
		b = append(b, ui.common.KeyMap.Back, ui.common.KeyMap.Quit)
	}
	return b
}

// FullHelp implements help.KeyMap.
func (ui *UI) FullHelp() [][]key.Binding {
	return [][]key.Binding{ui.ShortHelp()}
}

// SetSize implements common.Component.
func (ui *UI) SetSize(width, height int) {
	ui.common.SetSize(width, height)
	wm, hm := ui.getMargins()
	ui.header.SetSize(width-wm, 1)
	ui.tabs.SetSize(width-wm, 1)
	ui.statusbar.SetSize(width-wm, 1)
	ui.footer.SetSize(width-wm, ui.footer.Height())
	ui.signin.SetSize(width-wm, height-hm)
	if ui.register != nil {
		ui.register.SetSize(width-wm, height-hm)
	}
	for _, p := range ui.pages {
		if p != nil {
			p.SetSize(width-wm, height-hm)
		}
	}
}

// Init implements tea.Model. It runs the guard: without a token the sign-in
// page renders immediately, otherwise the session is checked against the
// server before any page shows.
func (ui *UI) Init() tea.Cmd {
	if ui.register != nil {
		ui.state = UnauthenticatedState
		return ui.register.Init()
	}
	if !ui.common.Session.LoggedIn() {
		ui.state = UnauthenticatedState
		ui.signin.SetNotice("Требуется авторизация")
		ui.signin.SetFrom(ui.ActivePage())
		return ui.signin.Init()
	}
	ui.state = CheckingState
	return ui.checkCmd()
}

// Update implements tea.Model.
func (ui *UI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		ui.SetSize(msg.Width, msg.Height)
		return ui, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ui.common.KeyMap.Quit):
			if !ui.typing() {
				return ui, tea.Quit
			}
			if msg.String() == "ctrl+c" {
				return ui, tea.Quit
			}
		case key.Matches(msg, ui.logoutKey) && ui.state == AuthorizedState:
			return ui, ui.logoutCmd()
		case key.Matches(msg, ui.common.KeyMap.Back) && ui.state == DeniedState:
			// Retry the check, the session is untouched.
			ui.err = nil
			ui.state = CheckingState
			return ui, ui.checkCmd()
		case key.Matches(msg, ui.common.KeyMap.Back) && ui.state == AuthorizedState && ui.activePage == projectPage:
			ui.activePage = projectsPage
			return ui, ui.pages[ui.activePage].Init()
		case key.Matches(msg, ui.common.KeyMap.Help) && ui.state == AuthorizedState:
			ui.footer.SetShowAll(!ui.footer.ShowAll())
			return ui, nil
		}
	case authMsg:
		return ui, ui.handleAuth(msg)
	case signin.AuthMsg:
		if err := ui.common.Session.SetTokens(msg.Tokens.Access, msg.Tokens.Refresh); err != nil {
			return ui, common.ErrorCmd(err)
		}
		ui.common.Cache.Clear()
		ui.state = CheckingState
		return ui, ui.checkCmd()
	case register.DoneMsg:
		ui.register = nil
		ui.state = UnauthenticatedState
		ui.signin.SetNotice(msg.Notice)
		return ui, ui.signin.Init()
	case createorg.CreatedMsg:
		ui.notice = msg.Notice
		ui.state = CheckingState
		return ui, ui.checkCmd()
	case logoutMsg:
		ui.common.Cache.Clear()
		ui.state = UnauthenticatedState
		ui.signin.SetNotice("Вы успешно вышли из системы")
		ui.signin.SetFrom("")
		return ui, ui.signin.Init()
	case projects.SelectMsg:
		ui.activePage = projectPage
		detail := ui.pages[projectPage].(*project.Project)
		detail.SetProjectID(msg.ID)
		detail.SetAdmin(ui.admin)
		return ui, detail.Init()
	case tabs.ActiveTabMsg:
		if ui.state == AuthorizedState && int(msg) < len(menuTabs) {
			if p := page(msg); p != ui.activePage {
				ui.activePage = p
				ui.notice = ""
				ui.err = nil
				cmds = append(cmds, ui.pages[p].Init())
			}
		}
	case common.ErrorMsg:
		ui.err = msg
		return ui, nil
	case common.NoticeMsg:
		ui.notice = string(msg)
		return ui, nil
	}

	switch ui.state {
	case UnauthenticatedState:
		if ui.register != nil {
			r, cmd := ui.register.Update(msg)
			ui.register = r.(*register.Register)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		} else {
			s, cmd := ui.signin.Update(msg)
			ui.signin = s.(*signin.Signin)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	case AuthorizedState:
		menuPage := ui.activePage != projectPage && ui.activePage != createOrgPage
		if _, isKey := msg.(tea.KeyMsg); menuPage && !(isKey && ui.typing()) {
			t, cmd := ui.tabs.Update(msg)
			ui.tabs = t.(*tabs.Tabs)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		p, cmd := ui.pages[ui.activePage].Update(msg)
		ui.pages[ui.activePage] = p.(common.Page)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return ui, tea.Batch(cmds...)
}

// handleAuth resolves a finished profile check.
func (ui *UI) handleAuth(msg authMsg) tea.Cmd {
	if msg.err != nil {
		if errors.Is(msg.err, proto.ErrUnauthorized) {
			// The token is dead. Drop it and start over at signin.
			if err := ui.common.Session.Clear(); err != nil {
				ui.common.Logger.Error("clear session", "err", err)
			}
			ui.common.Cache.Clear()
			ui.state = UnauthenticatedState
			ui.signin.SetNotice("Сессия истекла. Пожалуйста, войдите снова.")
			ui.signin.SetFrom(ui.ActivePage())
			return ui.signin.Init()
		}
		ui.state = DeniedState
		ui.err = msg.err
		return nil
	}
	ui.profile = msg.profile
	ui.orgs = msg.orgs
	ui.admin = access.IsAdmin(msg.orgs, msg.profile.ID)
	ui.state = AuthorizedState
	ui.header.SetOrg(msg.profile.OrganizationName)
	ui.header.SetUser(msg.profile.Username + " · " + msg.profile.Status.Label())

	role := "Участник"
	if ui.admin {
		role = "Администратор"
	}
	ui.statusbar.Update(statusbar.StatusBarMsg{
		Key:   msg.profile.Username,
		Value: msg.profile.OrganizationName,
		Info:  msg.profile.Status.Label(),
		Extra: role,
	})

	if len(msg.orgs) == 0 {
		ui.activePage = createOrgPage
		return ui.pages[createOrgPage].Init()
	}
	if ui.activePage == createOrgPage {
		ui.activePage = dashboardPage
	}
	dash := ui.pages[dashboardPage].(*dashboard.Dashboard)
	dash.SetProfile(msg.profile)
	ui.pages[projectsPage].(*projects.Projects).SetAdmin(ui.admin)
	ui.pages[projectPage].(*project.Project).SetAdmin(ui.admin)
	ui.pages[usersPage].(*users.Users).SetAdmin(ui.admin)
	return tea.Batch(
		ui.tabs.Init(),
		tabs.SelectTabCmd(int(ui.activePage)),
		ui.pages[ui.activePage].Init(),
	)
}

// typer is implemented by pages that sometimes own printable keys.
type typer interface {
	Typing() bool
}

// typing reports whether a text input currently owns the keyboard, in which
// case "q" must not quit and "tab" must not switch menu tabs.
func (ui *UI) typing() bool {
	switch ui.state {
	case UnauthenticatedState:
		return true
	case AuthorizedState:
		if t, ok := ui.pages[ui.activePage].(typer); ok {
			return t.Typing()
		}
	}
	return false
}

// View implements tea.Model.
func (ui *UI) View() string {
	s := strings.Builder{}
	switch ui.state {
	case UnauthenticatedState:
		if ui.register != nil {
			s.WriteString(ui.register.View())
		} else {
			s.WriteString(ui.signin.View())
		}
		s.WriteString("\n")
		s.WriteString(ui.footer.View())
	case CheckingState:
		s.WriteString(ui.common.Styles.Spinner.Render("Загрузка..."))
	case DeniedState:
		s.WriteString(lipgloss.JoinVertical(lipgloss.Left,
			ui.common.Styles.ErrorTitle.Render("Ошибка"),
			ui.common.Styles.ErrorBody.Render(ui.err.Error()),
			ui.footer.View(),
		))
	case AuthorizedState:
		parts := []string{
			ui.header.View(),
			ui.tabs.View(),
		}
		if ui.notice != "" {
			parts = append(parts, ui.common.Styles.Success.Render(ui.notice))
		}
		if ui.err != nil {
			parts = append(parts, ui.common.Styles.Form.Error.Render("Ошибка: "+ui.err.Error()))
		}
		parts = append(parts,
			ui.pages[ui.activePage].View(),
			ui.statusbar.View(),
			ui.footer.View(),
		)
		s.WriteString(lipgloss.JoinVertical(lipgloss.Left, parts...))
	}
	return ui.common.Zone.Scan(ui.common.Styles.App.Render(s.String()))
}

func (ui *UI) checkCmd() tea.Cmd {
	client := ui.common.Client
	cache := ui.common.Cache
	ctx := ui.common.Context()
	return func() tea.Msg {
		profile, err := client.Profile(ctx)
		if err != nil {
			return authMsg{err: err}
		}
		orgs, err := query.Fetch(ctx, cache,
			query.Key{Kind: query.KindOrganizations},
			func(ctx context.Context) ([]proto.Organization, error) {
				return client.Organizations(ctx)
			})
		if err != nil {
			return authMsg{err: err}
		}
		return authMsg{profile: profile, orgs: orgs}
	}
}

// logoutCmd tells the server, then forgets the session locally either way.
func (ui *UI) logoutCmd() tea.Cmd {
	client := ui.common.Client
	sess := ui.common.Session
	ctx := ui.common.Context()
	logger := ui.common.Logger
	return func() tea.Msg {
		if err := client.Logout(ctx); err != nil {
			logger.Error("logout", "err", err)
		}
		if err := sess.Clear(); err != nil {
			return common.ErrorMsg(err)
		}
		return logoutMsg{}
	}
}
