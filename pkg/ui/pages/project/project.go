// Package project implements the project detail page with its task and
// member tabs.
package project

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/teamdesk/teamdesk/pkg/api"
	"github.com/teamdesk/teamdesk/pkg/proto"
	"github.com/teamdesk/teamdesk/pkg/query"
	"github.com/teamdesk/teamdesk/pkg/ui/common"
	"github.com/teamdesk/teamdesk/pkg/ui/components/form"
	"github.com/teamdesk/teamdesk/pkg/ui/components/tabs"
)

type projectMsg struct {
	seq     int
	project proto.Project
	err     error
}

type tasksMsg struct {
	seq   int
	tasks []proto.Task
	err   error
}

type mutationMsg struct {
	err error
}

type mode int

const (
	listMode mode = iota
	taskFormMode
	memberFormMode
)

const (
	tabTasks = iota
	tabMembers
)

const (
	taskFieldTitle = iota
	taskFieldDescription
	taskFieldPriority
	taskFieldDeadline
)

var tabNames = []string{"Задачи", "Участники"}

// Project is the project detail page model.
type Project struct {
	common    common.Common
	id        int64
	admin     bool
	project   proto.Project
	tasks     []proto.Task
	tabs      *tabs.Tabs
	activeTab int
	cursor    int
	mode      mode
	form      *form.Form
	loading   bool
	err       error
	seq       int
}

// New creates a new project detail page.
func New(c common.Common) *Project {
	return &Project{
		common: c,
		tabs:   tabs.New(c, tabNames),
	}
}

// SetAdmin marks the current user as an organization admin.
func (p *Project) SetAdmin(admin bool) {
	p.admin = admin
}

// SetProjectID sets the project to show.
func (p *Project) SetProjectID(id int64) {
	p.id = id
}

// Typing reports whether one of the forms owns the keyboard.
func (p *Project) Typing() bool {
	return p.mode != listMode
}

// SetSize implements common.Component.
func (p *Project) SetSize(width, height int) {
	p.common.SetSize(width, height)
	p.tabs.SetSize(width, 1)
	if p.form != nil {
		p.form.SetSize(width, height)
	}
}

// ShortHelp implements help.KeyMap.
func (p *Project) ShortHelp() []key.Binding {
	if p.mode != listMode {
		return []key.Binding{
			p.common.KeyMap.Select,
			p.common.KeyMap.Back,
		}
	}
	b := []key.Binding{
		p.common.KeyMap.Section,
		p.common.KeyMap.UpDown,
	}
	if p.admin {
		b = append(b, p.common.KeyMap.Create)
		if p.activeTab == tabMembers {
			b = append(b, key.NewBinding(
				key.WithKeys("x"),
				key.WithHelp("x", "remove"),
			))
		}
	}
	return append(b, p.common.KeyMap.Back)
}

// FullHelp implements help.KeyMap.
func (p *Project) FullHelp() [][]key.Binding {
	return [][]key.Binding{p.ShortHelp()}
}

// Init implements tea.Model.
func (p *Project) Init() tea.Cmd {
	p.mode = listMode
	p.cursor = 0
	p.loading = true
	p.err = nil
	p.seq++
	return tea.Batch(
		p.tabs.Init(),
		p.fetchProjectCmd(p.seq),
		p.fetchTasksCmd(p.seq),
	)
}

// Update implements tea.Model.
func (p *Project) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)
	switch msg := msg.(type) {
	case tabs.ActiveTabMsg:
		p.activeTab = int(msg)
		p.cursor = 0
	case tea.KeyMsg:
		if p.mode != listMode {
			if key.Matches(msg, p.common.KeyMap.Back) {
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
			if p.cursor < p.itemCount()-1 {
				p.cursor++
			}
			return p, nil
		case key.Matches(msg, p.common.KeyMap.Refresh):
			p.common.Cache.InvalidateID(query.KindProject, p.id)
			p.common.Cache.InvalidateID(query.KindTasks, p.id)
			return p, p.Init()
		case key.Matches(msg, p.common.KeyMap.Create):
			if !p.admin {
				return p, nil
			}
			switch p.activeTab {
			case tabTasks:
				p.mode = taskFormMode
				p.form = form.New(p.common,
					form.NewField("Title", ""),
					form.NewField("Description", ""),
					form.NewField("Priority", "low/medium/high"),
					form.NewField("Deadline", "2006-01-02"),
				)
			case tabMembers:
				p.mode = memberFormMode
				p.form = form.New(p.common,
					form.NewField("Email участника", ""),
				)
			}
			p.form.SetSize(p.common.Width, p.common.Height)
			return p, p.form.Init()
		case msg.String() == "x":
			if !p.admin || p.activeTab != tabMembers {
				return p, nil
			}
			if p.cursor < len(p.project.Members) {
				return p, p.removeMemberCmd(p.project.Members[p.cursor].ID)
			}
			return p, nil
		}
	case form.SubmitMsg:
		switch p.mode {
		case taskFormMode:
			return p, p.submitTask()
		case memberFormMode:
			email := p.form.Value(0)
			if email == "" {
				return p, nil
			}
			p.form.SetError("")
			p.form.SetDisabled(true)
			return p, p.addMemberCmd(email)
		}
	case mutationMsg:
		if p.form != nil {
			p.form.SetDisabled(false)
		}
		if msg.err != nil {
			errText := msg.err.Error()
			if p.mode == memberFormMode {
				errText = "Ошибка при добавлении участника"
			}
			if p.form != nil && p.mode != listMode {
				p.form.SetError(errText)
				return p, nil
			}
			return p, common.ErrorCmd(msg.err)
		}
		// Invalidate then refetch; the member list and task list are
		// server truth, never patched locally.
		query.Strategies{
			query.InvalidateEntry{Kind: query.KindProject, ID: p.id},
			query.InvalidateEntry{Kind: query.KindTasks, ID: p.id},
		}.Reconcile(p.common.Cache)
		return p, p.Init()
	case projectMsg:
		if msg.seq != p.seq {
			return p, nil
		}
		p.loading = false
		if msg.err != nil {
			p.err = msg.err
			return p, nil
		}
		p.err = nil
		p.project = msg.project
	case tasksMsg:
		if msg.seq != p.seq {
			return p, nil
		}
		if msg.err != nil {
			p.err = msg.err
			return p, nil
		}
		p.tasks = msg.tasks
	}

	if p.mode == listMode {
		t, cmd := p.tabs.Update(msg)
		p.tabs = t.(*tabs.Tabs)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if p.mode != listMode && p.form != nil {
		f, cmd := p.form.Update(msg)
		p.form = f.(*form.Form)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return p, tea.Batch(cmds...)
}

func (p *Project) itemCount() int {
	if p.activeTab == tabTasks {
		return len(p.tasks)
	}
	return len(p.project.Members)
}

func (p *Project) submitTask() tea.Cmd {
	title := p.form.Value(taskFieldTitle)
	if title == "" {
		p.form.SetError("Название обязательно")
		return nil
	}
	priority := proto.PriorityMedium
	if v := p.form.Value(taskFieldPriority); v != "" {
		priority = proto.ParsePriority(v)
		if priority < proto.PriorityLow {
			p.form.SetError("Приоритет: low, medium или high")
			return nil
		}
	}
	var deadline *time.Time
	if v := p.form.Value(taskFieldDeadline); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			p.form.SetError("Дедлайн в формате 2006-01-02")
			return nil
		}
		deadline = &t
	}
	p.form.SetError("")
	p.form.SetDisabled(true)
	return p.createTaskCmd(api.CreateTaskRequest{
		Title:       title,
		Description: p.form.Value(taskFieldDescription),
		Priority:    priority,
		Deadline:    deadline,
		Project:     p.id,
	})
}

// View implements tea.Model.
func (p *Project) View() string {
	st := p.common.Styles
	s := strings.Builder{}
	s.WriteString(st.HeaderOrg.Render(p.project.Name))
	if p.project.Name != "" {
		s.WriteString("  ")
		s.WriteString(st.Form.Hint.Render(p.project.Status.Label()))
	}
	s.WriteString("\n")
	s.WriteString(p.tabs.View())
	s.WriteString("\n\n")
	switch {
	case p.loading:
		s.WriteString(st.Spinner.Render("Загрузка..."))
	case p.err != nil:
		s.WriteString(st.Form.Error.Render("Ошибка: Данные проекта не загружены"))
	case p.mode == taskFormMode:
		s.WriteString(st.HeaderUser.Copy().UnsetAlign().Render("Создать"))
		s.WriteString("\n")
		s.WriteString(p.form.View())
	case p.mode == memberFormMode:
		s.WriteString(st.HeaderUser.Copy().UnsetAlign().Render("Добавить участника"))
		s.WriteString("\n")
		s.WriteString(p.form.View())
	case p.activeTab == tabTasks:
		s.WriteString(p.tasksView())
	default:
		s.WriteString(p.membersView())
	}
	return s.String()
}

func (p *Project) tasksView() string {
	st := p.common.Styles
	if len(p.tasks) == 0 {
		return st.List.NoItems.Render("Нет доступных задач.")
	}
	s := strings.Builder{}
	for i, task := range p.tasks {
		item := st.List.Normal
		if i == p.cursor {
			item = st.List.Active
		}
		line := item.Title.Render(task.Title) + "  " +
			st.PriorityStyle(task.Priority).Render(task.Priority.String())
		if task.Deadline != nil {
			line += "  " + item.Desc.Render(humanize.Time(*task.Deadline))
		}
		s.WriteString(item.Base.Render(line))
		s.WriteString("\n")
	}
	return s.String()
}

func (p *Project) membersView() string {
	st := p.common.Styles
	if len(p.project.Members) == 0 {
		return st.List.NoItems.Render("Нет участников в проекте")
	}
	s := strings.Builder{}
	for i, member := range p.project.Members {
		item := st.List.Normal
		if i == p.cursor {
			item = st.List.Active
		}
		line := item.Title.Render(member.Username) + "  " +
			item.Desc.Render(member.Email)
		s.WriteString(item.Base.Render(line))
		s.WriteString("\n")
	}
	return s.String()
}

func (p *Project) fetchProjectCmd(seq int) tea.Cmd {
	client := p.common.Client
	cache := p.common.Cache
	ctx := p.common.Context()
	id := p.id
	return func() tea.Msg {
		project, err := query.Fetch(ctx, cache,
			query.Key{Kind: query.KindProject, ID: id},
			func(ctx context.Context) (proto.Project, error) {
				return client.Project(ctx, id)
			})
		return projectMsg{seq: seq, project: project, err: err}
	}
}

func (p *Project) fetchTasksCmd(seq int) tea.Cmd {
	client := p.common.Client
	cache := p.common.Cache
	ctx := p.common.Context()
	id := p.id
	return func() tea.Msg {
		tasks, err := query.Fetch(ctx, cache,
			query.Key{Kind: query.KindTasks, ID: id},
			func(ctx context.Context) ([]proto.Task, error) {
				return client.Tasks(ctx, id)
			})
		return tasksMsg{seq: seq, tasks: tasks, err: err}
	}
}

func (p *Project) createTaskCmd(req api.CreateTaskRequest) tea.Cmd {
	client := p.common.Client
	ctx := p.common.Context()
	return func() tea.Msg {
		_, err := client.CreateTask(ctx, req)
		return mutationMsg{err: err}
	}
}

func (p *Project) addMemberCmd(email string) tea.Cmd {
	client := p.common.Client
	ctx := p.common.Context()
	id := p.id
	return func() tea.Msg {
		return mutationMsg{err: client.AddProjectMember(ctx, id, email)}
	}
}

func (p *Project) removeMemberCmd(userID int64) tea.Cmd {
	client := p.common.Client
	ctx := p.common.Context()
	id := p.id
	return func() tea.Msg {
		return mutationMsg{err: client.RemoveProjectMember(ctx, id, userID)}
	}
}
