package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the access token claims the client cares about. The backend
// issues standard JWTs; the client never verifies them, it only peeks at the
// payload for display hints.
type Claims struct {
	// UserID is the id of the user the token was issued to.
	UserID int64 `json:"user_id"`

	jwt.RegisteredClaims
}

// Claims decodes the current access token without verifying its signature.
// Expiry is still discovered reactively through 401 responses; these claims
// are hints only. Returns ErrNoSession when logged out.
func (s *Store) Claims() (*Claims, error) {
	token := s.AccessToken()
	if token == "" {
		return nil, ErrNoSession
	}

	var claims Claims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &claims, nil
}

// ExpiresAt returns the access token's expiry hint, or the zero time when it
// cannot be decoded.
func (s *Store) ExpiresAt() time.Time {
	claims, err := s.Claims()
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
