package proto

import (
	"encoding"
	"errors"
	"time"
)

// Priority is a task priority.
type Priority int

const (
	// PriorityLow is a low-priority task.
	PriorityLow Priority = iota

	// PriorityMedium is a medium-priority task.
	PriorityMedium

	// PriorityHigh is a high-priority task.
	PriorityHigh
)

// String returns the wire representation of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// ParsePriority parses a wire priority string.
func ParsePriority(s string) Priority {
	switch s {
	case "low":
		return PriorityLow
	case "medium":
		return PriorityMedium
	case "high":
		return PriorityHigh
	default:
		return Priority(-1)
	}
}

var (
	_ encoding.TextMarshaler   = Priority(0)
	_ encoding.TextUnmarshaler = (*Priority)(nil)
)

// ErrInvalidPriority is returned when an invalid priority is provided.
var ErrInvalidPriority = errors.New("invalid priority")

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Priority) UnmarshalText(text []byte) error {
	v := ParsePriority(string(text))
	if v < 0 {
		return ErrInvalidPriority
	}

	*p = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Priority) MarshalText() (text []byte, err error) {
	return []byte(p.String()), nil
}

// Task represents a task attached to a project.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Project     int64      `json:"project"`
	AssignedTo  string     `json:"assigned_to,omitempty"`
}
