package proto

// UserRef is a lightweight reference to a user embedded in other resources.
type UserRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Organization represents an organization.
//
// Admins defines authorization: a user administers the organization iff
// their id appears in Admins.
type Organization struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Admins      []UserRef `json:"admins"`
	CurrentUser *UserRef  `json:"current_user,omitempty"`
}
