// Package api implements the REST client for the teamdesk backend.
//
// All outbound requests go through a single transport that injects the
// session's bearer token. There is no automatic retry and no token refresh;
// an unauthorized response surfaces as proto.ErrUnauthorized and it is up to
// the caller to clear the session and return to sign-in.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/go-querystring/query"
	"github.com/teamdesk/teamdesk/pkg/config"
	"github.com/teamdesk/teamdesk/pkg/session"
)

// Client talks to the teamdesk backend. A single shared instance serves the
// whole process.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient returns a client for the configured backend, authenticating
// through the given session store.
func NewClient(cfg *config.Config, sess *session.Store) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.Server.URL, "/"),
		client: &http.Client{
			Timeout:   cfg.RequestTimeout(),
			Transport: &bearerTransport{session: sess},
		},
	}
}

// do issues a request and decodes the JSON response into out when non-nil.
// params is encoded into the query string via go-querystring; body is
// JSON-encoded. Non-2xx responses come back as *RequestError.
func (c *Client) do(ctx context.Context, method, path string, params, body, out any) error {
	u := c.baseURL + path
	if params != nil {
		vals, err := query.Values(params)
		if err != nil {
			return fmt.Errorf("encode query: %w", err)
		}
		if enc := vals.Encode(); enc != "" {
			u += "?" + enc
		}
	}

	var rd io.Reader
	if body != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode body: %w", err)
		}
		rd = &buf
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close() // nolint: errcheck

	bts, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return newRequestError(res.StatusCode, bts)
	}

	if out != nil && len(bts) > 0 {
		if err := json.Unmarshal(bts, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, params, out any) error {
	return c.do(ctx, http.MethodGet, path, params, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// delete issues a DELETE with a JSON body. The backend reads removal targets
// from the body rather than the path.
func (c *Client) delete(ctx context.Context, path string, body any) error {
	return c.do(ctx, http.MethodDelete, path, nil, body, nil)
}
