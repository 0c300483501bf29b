package projects

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
)

type projectBackend struct {
	mu       sync.Mutex
	projects []proto.Project
	filters  []string
}

func (b *projectBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/core/projects/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		switch r.Method {
		case http.MethodPost:
			var p proto.Project
			json.NewDecoder(r.Body).Decode(&p) // nolint: errcheck
			p.ID = int64(len(b.projects) + 1)
			b.projects = append(b.projects, p)
			json.NewEncoder(w).Encode(p) // nolint: errcheck
		default:
			status := r.URL.Query().Get("status")
			b.filters = append(b.filters, status)
			out := make([]proto.Project, 0, len(b.projects))
			for _, p := range b.projects {
				if status == "" || p.Status.String() == status {
					out = append(out, p)
				}
			}
			json.NewEncoder(w).Encode(out) // nolint: errcheck
		}
	})
	return mux
}

func newTestPage(t *testing.T, handler http.Handler) *Projects {
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

func TestFilterCycleRefetches(t *testing.T) {
	is := is.New(t)
	backend := &projectBackend{projects: []proto.Project{
		{ID: 1, Name: "Запуск", Status: proto.ProjectActive},
		{ID: 2, Name: "Архив", Status: proto.ProjectCompleted},
	}}
	p := newTestPage(t, backend.handler())

	m, _ := p.Update(p.Init()())
	p = m.(*Projects)
	is.Equal(len(p.projects), 2)

	// all -> active
	m, cmd := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	p = m.(*Projects)
	m, _ = p.Update(cmd())
	p = m.(*Projects)
	is.Equal(len(p.projects), 1)
	is.Equal(p.projects[0].Name, "Запуск")

	backend.mu.Lock()
	is.Equal(backend.filters, []string{"", "active"})
	backend.mu.Unlock()
}

func TestCreateGatedOnAdmin(t *testing.T) {
	is := is.New(t)
	backend := &projectBackend{}
	p := newTestPage(t, backend.handler())
	p.SetAdmin(false)

	m, _ := p.Update(p.Init()())
	p = m.(*Projects)

	m, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	p = m.(*Projects)
	is.Equal(p.mode, listMode)

	p.SetAdmin(true)
	m, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	p = m.(*Projects)
	is.Equal(p.mode, createMode)
}

func TestCreateInvalidatesAndRefetches(t *testing.T) {
	is := is.New(t)
	backend := &projectBackend{}
	p := newTestPage(t, backend.handler())
	p.SetAdmin(true)

	m, _ := p.Update(p.Init()())
	p = m.(*Projects)
	is.Equal(len(p.projects), 0)

	m, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	p = m.(*Projects)
	m, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Запуск")})
	p = m.(*Projects)
	m, cmd := p.Update(form.SubmitMsg{})
	p = m.(*Projects)
	is.True(cmd != nil)

	// Mutation result triggers the invalidated refetch.
	m, cmd = p.Update(cmd())
	p = m.(*Projects)
	m, _ = p.Update(cmd())
	p = m.(*Projects)

	is.Equal(len(p.projects), 1)
	is.Equal(p.projects[0].Name, "Запуск")
	is.Equal(p.mode, listMode)
}

func TestEmptyListMessage(t *testing.T) {
	is := is.New(t)
	backend := &projectBackend{}
	p := newTestPage(t, backend.handler())

	m, _ := p.Update(p.Init()())
	p = m.(*Projects)

	is.True(strings.Contains(p.View(), "Нет доступных проектов."))
}
