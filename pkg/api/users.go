package api

import (
	"context"
	"fmt"

	"github.com/teamdesk/teamdesk/pkg/proto"
)

// Login exchanges credentials for a token pair. The caller persists the pair
// in the session store.
func (c *Client) Login(ctx context.Context, username, password string) (proto.TokenPair, error) {
	var pair proto.TokenPair
	err := c.post(ctx, "/api/users/auth/login/", map[string]string{
		"username": username,
		"password": password,
	}, &pair)
	return pair, err
}

// RegisterRequest is the payload for registering through an invite link that
// still needs a username and email.
type RegisterRequest struct {
	Token    string `json:"token,omitempty"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerResponse struct {
	Tokens proto.TokenPair `json:"tokens"`
}

// Register creates an account and returns the issued token pair.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (proto.TokenPair, error) {
	var res registerResponse
	err := c.post(ctx, "/api/users/auth/register/", req, &res)
	return res.Tokens, err
}

type validateInviteParams struct {
	Token string `url:"token"`
}

// ValidateInvite checks an invite token. A well-formed response with
// Valid=false is not an error; the caller renders the backend's reason.
func (c *Client) ValidateInvite(ctx context.Context, token string) (proto.Invite, error) {
	var inv proto.Invite
	err := c.get(ctx, "/api/users/validate-invite/", validateInviteParams{Token: token}, &inv)
	return inv, err
}

// RegisterByInvite consumes an invite token, setting the account password.
func (c *Client) RegisterByInvite(ctx context.Context, token, password string) error {
	return c.post(ctx, "/api/users/register-by-invite/", map[string]string{
		"token":    token,
		"password": password,
	}, nil)
}

// Logout invalidates the session server-side. Local state is cleared by the
// caller regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/api/users/auth/logout/", struct{}{}, nil)
}

// Profile fetches the current user's profile. This is the auth guard's
// liveness probe: proto.ErrUnauthorized here means the session is dead.
func (c *Client) Profile(ctx context.Context) (proto.Profile, error) {
	var p proto.Profile
	err := c.get(ctx, "/api/users/profile/", nil, &p)
	return p, err
}

// TeamStatus lists all team members with their presence status.
func (c *Client) TeamStatus(ctx context.Context) ([]proto.User, error) {
	var users []proto.User
	err := c.get(ctx, "/api/users/team-status/", nil, &users)
	return users, err
}

// UpdateStatus sets the current user's presence status.
func (c *Client) UpdateStatus(ctx context.Context, status proto.Status) error {
	return c.post(ctx, "/api/users/update-status/", map[string]string{
		"status": status.String(),
	}, nil)
}

// SendInvite emails an organization invite to the given address.
func (c *Client) SendInvite(ctx context.Context, email string) error {
	return c.post(ctx, "/api/users/invite/", map[string]string{"email": email}, nil)
}

// OrganizationUsers lists the members of an organization.
func (c *Client) OrganizationUsers(ctx context.Context, orgID int64) ([]proto.User, error) {
	var users []proto.User
	err := c.get(ctx, fmt.Sprintf("/api/users/organization/%d/", orgID), nil, &users)
	return users, err
}
