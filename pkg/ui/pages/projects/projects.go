// Package projects implements the project listing with its status filter
// and the admin-only project creation form.
package projects

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/teamdesk/teamdesk/pkg/api"
	"github.com/teamdesk/teamdesk/pkg/proto"
	"github.com/teamdesk/teamdesk/pkg/query"
	"github.com/teamdesk/teamdesk/pkg/ui/common"
	"github.com/teamdesk/teamdesk/pkg/ui/components/form"
)

// SelectMsg carries the project the user opened.
type SelectMsg struct {
	ID int64
}

type projectsMsg struct {
	seq      int
	projects []proto.Project
	err      error
}

type createResultMsg struct {
	err error
}

type mode int

const (
	listMode mode = iota
	createMode
)

const (
	fieldName = iota
	fieldDescription
)

// filters cycles all -> active -> completed.
var filters = []string{"", "active", "completed"}

func filterLabel(f string) string {
	switch f {
	case "active":
		return "Активные"
	case "completed":
		return "Завершенные"
	default:
		return "Все"
	}
}

// Projects is the project listing page model.
type Projects struct {
	common   common.Common
	admin    bool
	projects []proto.Project
	cursor   int
	filter   int
	mode     mode
	form     *form.Form
	loading  bool
	err      error
	seq      int
}

// New creates a new projects page.
func New(c common.Common) *Projects {
	return &Projects{
		common: c,
	}
}

// SetAdmin marks the current user as an organization admin, unlocking the
// creation form.
func (p *Projects) SetAdmin(admin bool) {
	p.admin = admin
}

// Typing reports whether the creation form owns the keyboard.
func (p *Projects) Typing() bool {
	return p.mode == createMode
}

// SetSize implements common.Component.
func (p *Projects) SetSize(width, height int) {
	p.common.SetSize(width, height)
	if p.form != nil {
		p.form.SetSize(width, height)
	}
}

// ShortHelp implements help.KeyMap.
func (p *Projects) ShortHelp() []key.Binding {
	if p.mode == createMode {
		return []key.Binding{
			p.common.KeyMap.Section,
			p.common.KeyMap.Select,
			p.common.KeyMap.Back,
		}
	}
	b := []key.Binding{
		p.common.KeyMap.UpDown,
		p.common.KeyMap.Select,
		p.common.KeyMap.Filter,
	}
	if p.admin {
		b = append(b, p.common.KeyMap.Create)
	}
	return append(b, p.common.KeyMap.Quit)
}

// FullHelp implements help.KeyMap.
func (p *Projects) FullHelp() [][]key.Binding {
	return [][]key.Binding{p.ShortHelp()}
}

// Init implements tea.Model.
func (p *Projects) Init() tea.Cmd {
	p.mode = listMode
	p.loading = true
	p.err = nil
	p.seq++
	return p.fetchCmd(p.seq)
}

// Update implements tea.Model.
func (p *Projects) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if p.mode == createMode {
			switch {
			case key.Matches(msg, p.common.KeyMap.Back):
				p.mode = listMode
				return p, nil
			}
			break
		}
		switch {
		case msg.String() == "up" || msg.String() == "k":
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil
		case msg.String() == "down" || msg.String() == "j":
			if p.cursor < len(p.projects)-1 {
				p.cursor++
			}
			return p, nil
		case key.Matches(msg, p.common.KeyMap.Filter):
			p.filter = (p.filter + 1) % len(filters)
			p.cursor = 0
			p.loading = true
			p.seq++
			return p, p.fetchCmd(p.seq)
		case key.Matches(msg, p.common.KeyMap.Refresh):
			p.common.Cache.Invalidate(query.KindProjects)
			return p, p.Init()
		case key.Matches(msg, p.common.KeyMap.Create):
			if !p.admin {
				return p, nil
			}
			p.mode = createMode
			p.form = form.New(p.common,
				form.NewField("Название", ""),
				form.NewField("Описание", ""),
			)
			p.form.SetSize(p.common.Width, p.common.Height)
			return p, p.form.Init()
		case key.Matches(msg, p.common.KeyMap.Select):
			if p.cursor < len(p.projects) {
				id := p.projects[p.cursor].ID
				return p, func() tea.Msg { return SelectMsg{ID: id} }
			}
			return p, nil
		}
	case form.SubmitMsg:
		if p.mode != createMode {
			return p, nil
		}
		name := p.form.Value(fieldName)
		if name == "" {
			p.form.SetError("Название обязательно")
			return p, nil
		}
		p.form.SetError("")
		p.form.SetDisabled(true)
		return p, p.createCmd(name, p.form.Value(fieldDescription))
	case createResultMsg:
		if p.form != nil {
			p.form.SetDisabled(false)
		}
		if msg.err != nil {
			p.form.SetError("Ошибка создания проекта: " + msg.err.Error())
			return p, nil
		}
		// Refetch instead of appending; the server owns ordering and
		// computed fields.
		query.InvalidateKinds{query.KindProjects}.Reconcile(p.common.Cache)
		return p, p.Init()
	case projectsMsg:
		if msg.seq != p.seq {
			return p, nil
		}
		p.loading = false
		if msg.err != nil {
			p.err = msg.err
			return p, nil
		}
		p.err = nil
		p.projects = msg.projects
		if p.cursor >= len(p.projects) {
			p.cursor = 0
		}
	}
	if p.mode == createMode && p.form != nil {
		f, cmd := p.form.Update(msg)
		p.form = f.(*form.Form)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return p, tea.Batch(cmds...)
}

// View implements tea.Model.
func (p *Projects) View() string {
	st := p.common.Styles
	s := strings.Builder{}
	s.WriteString(st.HeaderOrg.Render("Проекты организации"))
	s.WriteString("  ")
	s.WriteString(st.Form.Hint.Render("Статус: " + filterLabel(filters[p.filter])))
	s.WriteString("\n")
	if p.mode == createMode {
		s.WriteString(st.HeaderUser.Copy().UnsetAlign().Render("Создать проект"))
		s.WriteString("\n")
		s.WriteString(p.form.View())
		return s.String()
	}
	switch {
	case p.loading:
		s.WriteString(st.Spinner.Render("Загрузка..."))
	case p.err != nil:
		s.WriteString(st.Form.Error.Render("Ошибка: " + p.err.Error()))
	case len(p.projects) == 0:
		s.WriteString(st.List.NoItems.Render("Нет доступных проектов."))
	default:
		for i, project := range p.projects {
			s.WriteString(p.itemView(project, i == p.cursor))
			s.WriteString("\n")
		}
	}
	return s.String()
}

func (p *Projects) itemView(project proto.Project, active bool) string {
	st := p.common.Styles
	item := st.List.Normal
	if active {
		item = st.List.Active
	}
	title := item.Title.Render(project.Name)
	status := st.Form.Hint.Render(project.Status.Label())
	members := item.Desc.Render(fmt.Sprintf("Участников: %d", len(project.Members)))
	deadline := ""
	if project.Deadline != nil {
		deadline = item.Desc.Render(humanize.Time(*project.Deadline))
	}
	line := title + "  " + status + "  " + members
	if deadline != "" {
		line += "  " + deadline
	}
	return item.Base.Render(line)
}

func (p *Projects) fetchCmd(seq int) tea.Cmd {
	client := p.common.Client
	cache := p.common.Cache
	ctx := p.common.Context()
	filter := filters[p.filter]
	return func() tea.Msg {
		projects, err := query.Fetch(ctx, cache,
			query.Key{Kind: query.KindProjects, Filter: filter},
			func(ctx context.Context) ([]proto.Project, error) {
				return client.Projects(ctx, api.ProjectFilter{Status: filter})
			})
		return projectsMsg{seq: seq, projects: projects, err: err}
	}
}

func (p *Projects) createCmd(name, description string) tea.Cmd {
	client := p.common.Client
	ctx := p.common.Context()
	return func() tea.Msg {
		_, err := client.CreateProject(ctx, api.CreateProjectRequest{
			Name:        name,
			Description: description,
			Status:      proto.ProjectActive,
		})
		return createResultMsg{err: err}
	}
}
