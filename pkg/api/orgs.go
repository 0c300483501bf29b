package api

import (
	"context"
	"fmt"

	"github.com/teamdesk/teamdesk/pkg/proto"
)

// Organizations lists the organizations the current user belongs to,
// including each organization's admin set.
func (c *Client) Organizations(ctx context.Context) ([]proto.Organization, error) {
	var orgs []proto.Organization
	err := c.get(ctx, "/api/core/organizations/", nil, &orgs)
	return orgs, err
}

// CreateOrganization creates an organization with the current user as its
// admin.
func (c *Client) CreateOrganization(ctx context.Context, name string) (proto.Organization, error) {
	var org proto.Organization
	err := c.post(ctx, "/api/core/organizations/", map[string]string{"name": name}, &org)
	return org, err
}

// AddOrganizationAdmin grants the admin role to the user with the given
// email.
func (c *Client) AddOrganizationAdmin(ctx context.Context, orgID int64, email string) error {
	return c.post(ctx, fmt.Sprintf("/api/core/organizations/%d/admins/", orgID),
		map[string]string{"email": email}, nil)
}

// RemoveOrganizationAdmin revokes the admin role from a user.
func (c *Client) RemoveOrganizationAdmin(ctx context.Context, orgID, userID int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/core/organizations/%d/admins/", orgID),
		map[string]int64{"user_id": userID})
}
