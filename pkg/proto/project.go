package proto

import (
	"encoding"
	"errors"
	"time"
)

// ProjectStatus is the lifecycle status of a project.
type ProjectStatus int

const (
	// ProjectActive is a project that is being worked on.
	ProjectActive ProjectStatus = iota

	// ProjectCompleted is a finished project.
	ProjectCompleted
)

// String returns the wire representation of the project status.
func (s ProjectStatus) String() string {
	switch s {
	case ProjectActive:
		return "active"
	case ProjectCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Label returns the project status label shown in the UI.
func (s ProjectStatus) Label() string {
	switch s {
	case ProjectActive:
		return "Активный"
	case ProjectCompleted:
		return "Завершен"
	default:
		return s.String()
	}
}

// ParseProjectStatus parses a wire project status string.
func ParseProjectStatus(s string) ProjectStatus {
	switch s {
	case "active":
		return ProjectActive
	case "completed":
		return ProjectCompleted
	default:
		return ProjectStatus(-1)
	}
}

var (
	_ encoding.TextMarshaler   = ProjectStatus(0)
	_ encoding.TextUnmarshaler = (*ProjectStatus)(nil)
)

// ErrInvalidProjectStatus is returned when an invalid project status is
// provided.
var ErrInvalidProjectStatus = errors.New("invalid project status")

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ProjectStatus) UnmarshalText(text []byte) error {
	v := ParseProjectStatus(string(text))
	if v < 0 {
		return ErrInvalidProjectStatus
	}

	*s = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s ProjectStatus) MarshalText() (text []byte, err error) {
	return []byte(s.String()), nil
}

// Project represents a project within an organization.
type Project struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	Deadline    *time.Time    `json:"deadline,omitempty"`
	CreatedAt   *time.Time    `json:"created_at,omitempty"`

	// Members is only populated on the project detail endpoint.
	Members []User `json:"members,omitempty"`
}
