package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestParseEnvOverrides(t *testing.T) {
	is := is.New(t)
	td := t.TempDir()
	is.NoErr(os.Setenv("TEAMDESK_DATA_PATH", td))
	is.NoErr(os.Setenv("TEAMDESK_SERVER_URL", "https://desk.example.com/"))
	t.Cleanup(func() {
		is.NoErr(os.Unsetenv("TEAMDESK_DATA_PATH"))
		is.NoErr(os.Unsetenv("TEAMDESK_SERVER_URL"))
	})
	cfg := DefaultConfig()
	is.NoErr(cfg.ParseEnv())
	// Trailing slash is trimmed so URL joining stays predictable.
	is.Equal(cfg.Server.URL, "https://desk.example.com")
	is.Equal(cfg.DataPath, td)
}

func TestParseMissingFileFallsBackToEnv(t *testing.T) {
	is := is.New(t)
	td := t.TempDir()
	is.NoErr(os.Setenv("TEAMDESK_DATA_PATH", td))
	t.Cleanup(func() { is.NoErr(os.Unsetenv("TEAMDESK_DATA_PATH")) })
	cfg := DefaultConfig()
	is.NoErr(cfg.Parse())
	is.Equal(cfg.Server.URL, "http://localhost:8000")
}

func TestWriteThenParseRoundTrip(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	cfg.DataPath = t.TempDir()
	cfg.Server.URL = "http://10.0.0.5:8000"
	cfg.Server.Timeout = 30
	is.NoErr(cfg.WriteConfig())

	got := DefaultConfig()
	got.DataPath = cfg.DataPath
	is.NoErr(got.Parse())
	is.Equal(got.Server.URL, "http://10.0.0.5:8000")
	is.Equal(got.Server.Timeout, 30)
}

func TestValidateDefaultsTimeout(t *testing.T) {
	is := is.New(t)
	cfg := &Config{
		DataPath: t.TempDir(),
		Server:   ServerConfig{URL: "http://localhost:8000", Timeout: -1},
	}
	is.NoErr(cfg.Validate())
	is.Equal(cfg.Server.Timeout, 15)
}

func TestValidateRequiresServerURL(t *testing.T) {
	is := is.New(t)
	cfg := &Config{DataPath: t.TempDir()}
	err := cfg.Validate()
	is.True(err != nil)
}

func TestSessionPath(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	cfg.DataPath = t.TempDir()
	is.Equal(cfg.SessionPath(), filepath.Join(cfg.DataPath, "session.yaml"))
}
