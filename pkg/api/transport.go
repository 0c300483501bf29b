package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/teamdesk/teamdesk/pkg/session"
	"github.com/teamdesk/teamdesk/pkg/version"
)

// bearerTransport injects the current access token into every outbound
// request. This is the only place credential headers are set; requests made
// while logged out simply go out unauthenticated and the backend decides.
type bearerTransport struct {
	session *session.Store
	base    http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if token := t.session.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	req.Header.Set("User-Agent", "Teamdesk/"+version.Version)

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	return base.RoundTrip(req) //nolint:wrapcheck
}
