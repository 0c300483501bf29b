package project

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matryer/is"

	"github.com/teamdesk/teamdesk/pkg/api"
	"github.com/teamdesk/teamdesk/pkg/config"
	"github.com/teamdesk/teamdesk/pkg/proto"
	"github.com/teamdesk/teamdesk/pkg/session"
	"github.com/teamdesk/teamdesk/pkg/ui/common"
	"github.com/teamdesk/teamdesk/pkg/ui/components/form"
	"github.com/teamdesk/teamdesk/pkg/ui/components/tabs"
)

type memberBackend struct {
	mu      sync.Mutex
	members []proto.User
}

func (b *memberBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/core/projects/5/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		json.NewEncoder(w).Encode(proto.Project{ // nolint: errcheck
			ID:      5,
			Name:    "Запуск",
			Status:  proto.ProjectActive,
			Members: b.members,
		})
	})
	mux.HandleFunc("/api/core/projects/5/members/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		switch r.Method {
		case http.MethodPost:
			b.members = append(b.members, proto.User{
				ID:       int64(len(b.members) + 1),
				Username: "new-member",
				Email:    "new@example.com",
			})
			w.WriteHeader(http.StatusCreated)
		case http.MethodDelete:
			if len(b.members) > 0 {
				b.members = b.members[:len(b.members)-1]
			}
			w.WriteHeader(http.StatusNoContent)
		}
	})
	mux.HandleFunc("/api/tasks/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]proto.Task{}) // nolint: errcheck
	})
	return mux
}

func newTestPage(t *testing.T, handler http.Handler) *Project {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.DefaultConfig()
	cfg.DataPath = t.TempDir()
	cfg.Server.URL = srv.URL

	sess, err := session.Open(cfg)
	if err != nil {
		t.Fatal(err)
	}

	client := api.NewClient(cfg, sess)
	c := common.NewCommon(context.Background(), client, sess, 80, 24)
	p := New(c)
	p.SetSize(80, 24)
	return p
}

// drain runs a batched command tree, feeding every produced message back to
// the model until there is nothing left to run.
func drain(t *testing.T, p *Project, cmd tea.Cmd) *Project {
	t.Helper()
	if cmd == nil {
		return p
	}
	msg := cmd()
	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			p = drain(t, p, c)
		}
		return p
	default:
		m, next := p.Update(msg)
		return drain(t, m.(*Project), next)
	}
}

func TestMemberAddRefetchesProject(t *testing.T) {
	is := is.New(t)
	backend := &memberBackend{}
	p := newTestPage(t, backend.handler())
	p.SetProjectID(5)
	p.SetAdmin(true)

	p = drain(t, p, p.Init())
	is.Equal(len(p.project.Members), 0)

	// Switch to the members tab and open the add form.
	m, _ := p.Update(tabs.ActiveTabMsg(tabMembers))
	p = m.(*Project)
	m, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	p = m.(*Project)
	is.Equal(p.mode, memberFormMode)

	m, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("new@example.com")})
	p = m.(*Project)
	m, cmd := p.Update(form.SubmitMsg{})
	p = m.(*Project)
	is.True(cmd != nil)

	// The mutation invalidates the cached entry, so the refetch hits the
	// server and sees the new member.
	p = drain(t, p, cmd)
	is.Equal(len(p.project.Members), 1)
	is.Equal(p.project.Members[0].Username, "new-member")
}

func TestNonAdminCannotOpenForms(t *testing.T) {
	is := is.New(t)
	backend := &memberBackend{}
	p := newTestPage(t, backend.handler())
	p.SetProjectID(5)
	p.SetAdmin(false)

	p = drain(t, p, p.Init())

	m, _ := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	p = m.(*Project)
	is.Equal(p.mode, listMode)
}

func TestTaskTitleRequired(t *testing.T) {
	is := is.New(t)
	backend := &memberBackend{}
	p := newTestPage(t, backend.handler())
	p.SetProjectID(5)
	p.SetAdmin(true)

	p = drain(t, p, p.Init())

	m, _ := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	p = m.(*Project)
	is.Equal(p.mode, taskFormMode)

	m, cmd := p.Update(form.SubmitMsg{})
	p = m.(*Project)
	is.Equal(cmd, nil)
	is.True(strings.Contains(p.View(), "Название обязательно"))
}
