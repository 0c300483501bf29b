package proto

import (
	"encoding"
	"errors"
	"time"
)

// Status is a user's presence status.
type Status int

const (
	// StatusOffline marks a user as away from work.
	StatusOffline Status = iota

	// StatusOnline marks a user as working.
	StatusOnline

	// StatusLunch marks a user as on a lunch break.
	StatusLunch

	// StatusMeeting marks a user as in a meeting.
	StatusMeeting

	// StatusVacation marks a user as on vacation.
	StatusVacation
)

// Statuses returns all statuses in display order.
func Statuses() []Status {
	return []Status{
		StatusOnline,
		StatusOffline,
		StatusLunch,
		StatusMeeting,
		StatusVacation,
	}
}

// String returns the wire representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOffline:
		return "offline"
	case StatusOnline:
		return "online"
	case StatusLunch:
		return "lunch"
	case StatusMeeting:
		return "meeting"
	case StatusVacation:
		return "vacation"
	default:
		return "unknown"
	}
}

// Label returns the status label shown in the UI.
func (s Status) Label() string {
	switch s {
	case StatusOffline:
		return "Offline"
	case StatusOnline:
		return "Online"
	case StatusLunch:
		return "Обед"
	case StatusMeeting:
		return "Встреча"
	case StatusVacation:
		return "Отпуск"
	default:
		return s.String()
	}
}

// ParseStatus parses a wire status string.
func ParseStatus(s string) Status {
	switch s {
	case "offline":
		return StatusOffline
	case "online":
		return StatusOnline
	case "lunch":
		return StatusLunch
	case "meeting":
		return StatusMeeting
	case "vacation":
		return StatusVacation
	default:
		return Status(-1)
	}
}

var (
	_ encoding.TextMarshaler   = Status(0)
	_ encoding.TextUnmarshaler = (*Status)(nil)
)

// ErrInvalidStatus is returned when an invalid status is provided.
var ErrInvalidStatus = errors.New("invalid status")

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	v := ParseStatus(string(text))
	if v < 0 {
		return ErrInvalidStatus
	}

	*s = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() (text []byte, err error) {
	return []byte(s.String()), nil
}

// User represents a user account.
type User struct {
	ID               int64      `json:"id"`
	Username         string     `json:"username"`
	Email            string     `json:"email"`
	Status           Status     `json:"status"`
	LastStatusChange *time.Time `json:"last_status_change,omitempty"`
}

// Profile is the current user's profile as returned by the backend.
type Profile struct {
	User

	// OrganizationName is the display name of the user's organization.
	// Empty when the user does not belong to one.
	OrganizationName string `json:"organization_name"`
}
