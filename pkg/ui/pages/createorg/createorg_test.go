package createorg

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
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

func newTestPage(t *testing.T, handler http.Handler) *CreateOrg {
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

func TestEmptyNameValidatedLocally(t *testing.T) {
	is := is.New(t)
	var requests int32
	p := newTestPage(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	}))
	p.Init()

	m, cmd := p.Update(form.SubmitMsg{})
	p = m.(*CreateOrg)

	is.Equal(cmd, nil)
	is.Equal(atomic.LoadInt32(&requests), int32(0))
	is.True(strings.Contains(p.View(), "Название организации обязательно"))
}

func TestCreateRoundTrip(t *testing.T) {
	is := is.New(t)
	var gotName string
	p := newTestPage(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
		}
		json.NewDecoder(r.Body).Decode(&body) // nolint: errcheck
		gotName = body.Name
		json.NewEncoder(w).Encode(proto.Organization{ // nolint: errcheck
			ID:   1,
			Name: body.Name,
		})
	}))
	p.Init()

	m, _ := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Моя команда")})
	p = m.(*CreateOrg)
	m, cmd := p.Update(form.SubmitMsg{})
	p = m.(*CreateOrg)
	is.True(cmd != nil)

	m, cmd = p.Update(cmd())
	p = m.(*CreateOrg)
	is.True(cmd != nil)

	msg, ok := cmd().(CreatedMsg)
	is.True(ok)
	is.Equal(gotName, "Моя команда")
	is.Equal(msg.Org.Name, "Моя команда")
	is.True(strings.Contains(msg.Notice, "успешно создана"))
}

func TestServerErrorShownInline(t *testing.T) {
	is := is.New(t)
	p := newTestPage(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string][]string{ // nolint: errcheck
			"name": {"Организация с таким названием уже существует"},
		})
	}))
	p.Init()

	m, _ := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Дубль")})
	p = m.(*CreateOrg)
	m, cmd := p.Update(form.SubmitMsg{})
	p = m.(*CreateOrg)
	m, _ = p.Update(cmd())
	p = m.(*CreateOrg)

	is.True(strings.Contains(p.View(), "уже существует"))
}
