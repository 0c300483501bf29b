// Package session persists the access/refresh token pair issued by the
// backend and exposes it to the API client.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/teamdesk/teamdesk/pkg/config"
	"gopkg.in/yaml.v3"
)

// ErrNoSession is returned when no session is persisted.
var ErrNoSession = errors.New("no session")

type tokenFile struct {
	AccessToken  string `yaml:"access_token"`
	RefreshToken string `yaml:"refresh_token"`
}

// Store holds the access/refresh token pair for the current user.
//
// The pair is persisted under the data path and survives restarts until
// explicitly cleared. A missing or unreadable file is equivalent to being
// logged out.
type Store struct {
	mu     sync.RWMutex
	path   string
	tokens tokenFile
}

// Open returns a session store backed by the config's session file,
// initialized from whatever is persisted there.
func Open(cfg *config.Config) (*Store, error) {
	if cfg == nil {
		return nil, config.ErrNilConfig
	}

	s := &Store{path: cfg.SessionPath()}
	bts, err := os.ReadFile(s.path)
	if err != nil {
		// Treat a missing file as a logged-out session.
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	if err := yaml.Unmarshal(bts, &s.tokens); err != nil {
		// A corrupt session file is not fatal, the next login rewrites it.
		s.tokens = tokenFile{}
	}

	return s, nil
}

// SetTokens stores and persists both tokens.
func (s *Store) SetTokens(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens = tokenFile{AccessToken: access, RefreshToken: refresh}

	bts, err := yaml.Marshal(s.tokens)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), os.ModePerm); err != nil {
		return fmt.Errorf("create data path: %w", err)
	}

	if err := os.WriteFile(s.path, bts, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	return nil
}

// AccessToken returns the current access token, or an empty string when
// logged out.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.AccessToken
}

// RefreshToken returns the current refresh token, or an empty string when
// logged out.
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.RefreshToken
}

// LoggedIn reports whether an access token is present.
func (s *Store) LoggedIn() bool {
	return s.AccessToken() != ""
}

// Clear removes both tokens and deletes the persisted session file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens = tokenFile{}

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}

	return nil
}
