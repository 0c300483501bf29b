package ui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matryer/is"

	"github.com/teamdesk/teamdesk/pkg/api"
	"github.com/teamdesk/teamdesk/pkg/config"
	"github.com/teamdesk/teamdesk/pkg/proto"
	"github.com/teamdesk/teamdesk/pkg/session"
	"github.com/teamdesk/teamdesk/pkg/ui/common"
)

func newTestUI(t *testing.T, handler http.Handler) (*UI, *session.Store) {
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
	ctx := config.WithContext(context.Background(), cfg)
	c := common.NewCommon(ctx, client, sess, 80, 40)
	ui := New(c)
	ui.SetSize(80, 40)
	return ui, sess
}

func okBackend(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/profile/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(proto.Profile{ // nolint: errcheck
			User: proto.User{
				ID:       1,
				Username: "lena",
				Status:   proto.StatusOnline,
			},
			OrganizationName: "Рога и Копыта",
		})
	})
	mux.HandleFunc("/api/core/organizations/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]proto.Organization{{ // nolint: errcheck
			ID:     7,
			Name:   "Рога и Копыта",
			Admins: []proto.UserRef{{ID: 1, Username: "lena"}},
		}})
	})
	mux.HandleFunc("/api/users/team-status/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]proto.User{}) // nolint: errcheck
	})
	return mux
}

func TestGuardRedirectsWithoutToken(t *testing.T) {
	is := is.New(t)
	ui, _ := newTestUI(t, okBackend(t))

	cmd := ui.Init()
	is.True(cmd != nil)
	is.Equal(ui.State(), UnauthenticatedState)

	view := ui.View()
	is.True(strings.Contains(view, "Требуется авторизация"))
	is.True(strings.Contains(view, "Вход"))
}

func TestGuardAuthorizesValidSession(t *testing.T) {
	is := is.New(t)
	ui, sess := newTestUI(t, okBackend(t))
	is.NoErr(sess.SetTokens("tok", "refresh"))

	cmd := ui.Init()
	is.Equal(ui.State(), CheckingState)

	m, _ := ui.Update(cmd())
	ui = m.(*UI)
	is.Equal(ui.State(), AuthorizedState)
	is.True(ui.admin)

	view := ui.View()
	is.True(strings.Contains(view, "Рога и Копыта"))
	is.True(strings.Contains(view, "lena"))
	// Status bar carries the resolved role.
	is.True(strings.Contains(view, "Администратор"))
}

func TestGuardClearsExpiredSession(t *testing.T) {
	is := is.New(t)
	ui, sess := newTestUI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{ // nolint: errcheck
			"detail": "Учетные данные не были предоставлены.",
		})
	}))
	is.NoErr(sess.SetTokens("stale", "refresh"))

	cmd := ui.Init()
	m, _ := ui.Update(cmd())
	ui = m.(*UI)

	is.Equal(ui.State(), UnauthenticatedState)
	is.True(!sess.LoggedIn())
	is.True(strings.Contains(ui.View(), "Сессия истекла. Пожалуйста, войдите снова."))
}

func TestGuardKeepsSessionOnServerError(t *testing.T) {
	is := is.New(t)
	ui, sess := newTestUI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	is.NoErr(sess.SetTokens("tok", "refresh"))

	cmd := ui.Init()
	m, _ := ui.Update(cmd())
	ui = m.(*UI)

	is.Equal(ui.State(), DeniedState)
	is.True(sess.LoggedIn())
}

func TestCreateOrgShownWithoutOrganization(t *testing.T) {
	is := is.New(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/profile/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(proto.Profile{ // nolint: errcheck
			User: proto.User{ID: 2, Username: "novice"},
		})
	})
	mux.HandleFunc("/api/core/organizations/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]proto.Organization{}) // nolint: errcheck
	})
	ui, sess := newTestUI(t, mux)
	is.NoErr(sess.SetTokens("tok", "refresh"))

	cmd := ui.Init()
	m, _ := ui.Update(cmd())
	ui = m.(*UI)

	is.Equal(ui.State(), AuthorizedState)
	is.True(strings.Contains(ui.View(), "Создать организацию"))
}

func TestLogoutReturnsToSignin(t *testing.T) {
	is := is.New(t)
	mux := okBackend(t).(*http.ServeMux)
	mux.HandleFunc("/api/users/auth/logout/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	ui, sess := newTestUI(t, mux)
	is.NoErr(sess.SetTokens("tok", "refresh"))

	cmd := ui.Init()
	m, _ := ui.Update(cmd())
	ui = m.(*UI)
	is.Equal(ui.State(), AuthorizedState)

	m, cmd = ui.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	ui = m.(*UI)
	m, _ = ui.Update(cmd())
	ui = m.(*UI)

	is.Equal(ui.State(), UnauthenticatedState)
	is.True(!sess.LoggedIn())
	is.True(strings.Contains(ui.View(), "Вы успешно вышли из системы"))
}
