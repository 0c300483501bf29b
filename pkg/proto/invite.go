package proto

// Invite is a pending organization invitation, validated then consumed
// exactly once by registration.
type Invite struct {
	// Valid reports whether the invite token is usable.
	Valid bool `json:"valid"`

	// Organization is the name of the inviting organization.
	Organization string `json:"organization"`

	// Email is the address the invite was sent to.
	Email string `json:"email"`

	// Error carries the backend's reason when Valid is false.
	Error string `json:"error,omitempty"`
}

// TokenPair is an access/refresh token pair issued on login or registration.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
