package session

import (
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/matryer/is"
	"github.com/teamdesk/teamdesk/pkg/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataPath = t.TempDir()
	return cfg
}

func TestOpenWithoutFile(t *testing.T) {
	is := is.New(t)
	s, err := Open(testConfig(t))
	is.NoErr(err)
	is.True(!s.LoggedIn())
	is.Equal(s.AccessToken(), "")
	is.Equal(s.RefreshToken(), "")
}

func TestSetTokensPersists(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(t)

	s, err := Open(cfg)
	is.NoErr(err)
	is.NoErr(s.SetTokens("access-1", "refresh-1"))
	is.True(s.LoggedIn())

	// A fresh store sees the persisted pair.
	s2, err := Open(cfg)
	is.NoErr(err)
	is.Equal(s2.AccessToken(), "access-1")
	is.Equal(s2.RefreshToken(), "refresh-1")
}

func TestClearRemovesFile(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(t)

	s, err := Open(cfg)
	is.NoErr(err)
	is.NoErr(s.SetTokens("access-1", "refresh-1"))
	is.NoErr(s.Clear())
	is.True(!s.LoggedIn())

	_, err = os.Stat(cfg.SessionPath())
	is.True(os.IsNotExist(err))

	// Clearing twice is fine.
	is.NoErr(s.Clear())
}

func TestOpenCorruptFile(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(t)
	is.NoErr(os.WriteFile(cfg.SessionPath(), []byte("{not yaml"), 0o600))

	s, err := Open(cfg)
	is.NoErr(err)
	is.True(!s.LoggedIn())
}

func TestClaims(t *testing.T) {
	is := is.New(t)
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}).SignedString([]byte("test-key"))
	is.NoErr(err)

	s, err := Open(testConfig(t))
	is.NoErr(err)
	is.NoErr(s.SetTokens(token, "refresh"))

	claims, err := s.Claims()
	is.NoErr(err)
	is.Equal(claims.UserID, int64(42))
	is.True(s.ExpiresAt().Equal(exp))
}

func TestClaimsOpaqueToken(t *testing.T) {
	is := is.New(t)
	s, err := Open(testConfig(t))
	is.NoErr(err)
	is.NoErr(s.SetTokens("not-a-jwt", "refresh"))

	_, err = s.Claims()
	is.True(err != nil)
	is.True(s.ExpiresAt().IsZero())
}

func TestClaimsLoggedOut(t *testing.T) {
	is := is.New(t)
	s, err := Open(testConfig(t))
	is.NoErr(err)

	_, err = s.Claims()
	is.Equal(err, ErrNoSession)
}
