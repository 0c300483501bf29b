package register

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
	"github.com/teamdesk/teamdesk/pkg/session"
	"github.com/teamdesk/teamdesk/pkg/ui/common"
	"github.com/teamdesk/teamdesk/pkg/ui/components/form"
)

func newTestPage(t *testing.T, token string, handler http.Handler) *Register {
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
	p := New(c, token)
	p.SetSize(80, 24)
	return p
}

func validBackend(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/validate-invite/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{ // nolint: errcheck
			"valid":        true,
			"organization": "Рога и Копыта",
			"email":        "new@example.com",
		})
	})
	mux.HandleFunc("/api/users/register-by-invite/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	return mux
}

func TestInvalidInviteRendersErrorOnly(t *testing.T) {
	is := is.New(t)
	p := newTestPage(t, "dead", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{ // nolint: errcheck
			"valid": false,
			"error": "Приглашение уже использовано",
		})
	}))

	cmd := p.Init()
	m, _ := p.Update(cmd())
	p = m.(*Register)

	view := p.View()
	is.True(strings.Contains(view, "Недействительное приглашение"))
	is.True(strings.Contains(view, "Приглашение уже использовано"))
	is.True(!strings.Contains(view, "Пароль"))
}

func TestValidInvitePrefillsForm(t *testing.T) {
	is := is.New(t)
	p := newTestPage(t, "tok-1", validBackend(t))

	cmd := p.Init()
	m, _ := p.Update(cmd())
	p = m.(*Register)

	view := p.View()
	is.True(strings.Contains(view, "Рога и Копыта"))
	is.True(strings.Contains(view, "new@example.com"))
	is.True(strings.Contains(view, "Пароль"))
}

func TestPasswordValidation(t *testing.T) {
	is := is.New(t)
	p := newTestPage(t, "tok-1", validBackend(t))
	cmd := p.Init()
	m, _ := p.Update(cmd())
	p = m.(*Register)

	// Too short.
	m, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("short")})
	p = m.(*Register)
	m, _ = p.Update(form.SubmitMsg{})
	p = m.(*Register)
	is.True(strings.Contains(p.View(), "Пароль должен содержать минимум 8 символов"))

	// Mismatch.
	m, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("enough99")})
	p = m.(*Register)
	m, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	p = m.(*Register)
	m, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("different99")})
	p = m.(*Register)
	m, _ = p.Update(form.SubmitMsg{})
	p = m.(*Register)
	is.True(strings.Contains(p.View(), "Пароли не совпадают"))
}

func TestSuccessfulRegistration(t *testing.T) {
	is := is.New(t)
	p := newTestPage(t, "tok-1", validBackend(t))
	cmd := p.Init()
	m, _ := p.Update(cmd())
	p = m.(*Register)

	m, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("password99")})
	p = m.(*Register)
	m, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	p = m.(*Register)
	m, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("password99")})
	p = m.(*Register)

	m, cmd = p.Update(form.SubmitMsg{})
	p = m.(*Register)
	is.True(cmd != nil)
	m, cmd = p.Update(cmd())
	p = m.(*Register)

	msg, ok := cmd().(DoneMsg)
	is.True(ok)
	is.True(strings.Contains(msg.Notice, "Регистрация завершена"))
}
