package proto

import (
	"errors"
)

var (
	// ErrUnauthorized is returned when the backend rejects the session's
	// credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrNoOrganization is returned when the user belongs to no organization.
	ErrNoOrganization = errors.New("no organization")
	// ErrInviteInvalid is returned when an invite token is invalid, expired,
	// or already used.
	ErrInviteInvalid = errors.New("invite token invalid")
)
