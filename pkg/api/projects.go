package api

import (
	"context"
	"fmt"

	"github.com/teamdesk/teamdesk/pkg/proto"
)

// ProjectFilter narrows the project listing. The zero value lists everything.
type ProjectFilter struct {
	// Status filters by project status; empty means all.
	Status string `url:"status,omitempty"`
}

// Projects lists the organization's projects.
func (c *Client) Projects(ctx context.Context, filter ProjectFilter) ([]proto.Project, error) {
	var projects []proto.Project
	err := c.get(ctx, "/api/core/projects/", filter, &projects)
	return projects, err
}

// CreateProjectRequest is the payload for creating a project.
type CreateProjectRequest struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Status      proto.ProjectStatus `json:"status"`
}

// CreateProject creates a project.
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (proto.Project, error) {
	var project proto.Project
	err := c.post(ctx, "/api/core/projects/", req, &project)
	return project, err
}

// Project fetches a single project with its member list.
func (c *Client) Project(ctx context.Context, id int64) (proto.Project, error) {
	var project proto.Project
	err := c.get(ctx, fmt.Sprintf("/api/core/projects/%d/", id), nil, &project)
	return project, err
}

// AddProjectMember adds the user with the given email to a project.
func (c *Client) AddProjectMember(ctx context.Context, projectID int64, email string) error {
	return c.post(ctx, fmt.Sprintf("/api/core/projects/%d/members/", projectID),
		map[string]string{"email": email}, nil)
}

// RemoveProjectMember removes a user from a project.
func (c *Client) RemoveProjectMember(ctx context.Context, projectID, userID int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/core/projects/%d/members/", projectID),
		map[string]int64{"user_id": userID})
}
