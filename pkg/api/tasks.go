package api

import (
	"context"
	"time"

	"github.com/teamdesk/teamdesk/pkg/proto"
)

type taskFilter struct {
	Project int64 `url:"project"`
}

// Tasks lists a project's tasks.
func (c *Client) Tasks(ctx context.Context, projectID int64) ([]proto.Task, error) {
	var tasks []proto.Task
	err := c.get(ctx, "/api/tasks/", taskFilter{Project: projectID}, &tasks)
	return tasks, err
}

// CreateTaskRequest is the payload for creating a task.
type CreateTaskRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Priority    proto.Priority `json:"priority"`
	Deadline    *time.Time     `json:"deadline,omitempty"`
	Project     int64          `json:"project"`
}

// CreateTask creates a task in a project.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (proto.Task, error) {
	var task proto.Task
	err := c.post(ctx, "/api/tasks/", req, &task)
	return task, err
}
