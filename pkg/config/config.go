package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ErrNilConfig is returned when a nil config is passed around.
var ErrNilConfig = errors.New("nil config")

// ServerConfig is the configuration of the backend the client talks to.
type ServerConfig struct {
	// URL is the base URL of the backend API server.
	URL string `env:"URL" yaml:"url"`

	// Timeout is the number of seconds to wait for a single request.
	Timeout int `env:"TIMEOUT" yaml:"timeout"`
}

// LogConfig is the logger configuration.
type LogConfig struct {
	// Format is the format of the logs.
	// Valid values are "json", "logfmt", and "text".
	Format string `env:"FORMAT" yaml:"format"`

	// Time format for the log `ts` field.
	// Format must be described in Golang's time format.
	TimeFormat string `env:"TIME_FORMAT" yaml:"time_format"`

	// Path to a file to write logs to.
	// If not set, logs will be written to stderr.
	Path string `env:"PATH" yaml:"path"`
}

// Config is the configuration for teamdesk.
type Config struct {
	// Server is the backend API configuration.
	Server ServerConfig `envPrefix:"SERVER_" yaml:"server"`

	// Log is the logger configuration.
	Log LogConfig `envPrefix:"LOG_" yaml:"log"`

	// DataPath is the path to the directory where teamdesk keeps its
	// config and session files.
	DataPath string `env:"DATA_PATH" yaml:"-"`
}

// IsDebug returns true if the client is running in debug mode.
func IsDebug() bool {
	debug, _ := strconv.ParseBool(os.Getenv("TEAMDESK_DEBUG"))
	return debug
}

// IsVerbose returns true if the client is running in verbose mode.
// Verbose mode is only enabled if debug mode is enabled.
func IsVerbose() bool {
	verbose, _ := strconv.ParseBool(os.Getenv("TEAMDESK_VERBOSE"))
	return IsDebug() && verbose
}

// parseFile parses the given file as a configuration file.
// The file must be in YAML format.
func parseFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer f.Close() // nolint: errcheck
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	return cfg.Validate()
}

// ParseFile parses the config from the default file path.
// This also calls Validate() on the config.
func (c *Config) ParseFile() error {
	return parseFile(c, c.ConfigPath())
}

// parseEnv parses the environment variables as a configuration file.
func parseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{
		Prefix: "TEAMDESK_",
	}); err != nil {
		return fmt.Errorf("parse environment variables: %w", err)
	}

	return cfg.Validate()
}

// ParseEnv parses the config from the environment variables.
// This also calls Validate() on the config.
func (c *Config) ParseEnv() error {
	return parseEnv(c)
}

// Parse parses the config from the default file path and environment
// variables. This also calls Validate() on the config.
func (c *Config) Parse() error {
	if c.Exist() {
		if err := c.ParseFile(); err != nil {
			return err
		}
	}

	return c.ParseEnv()
}

// writeConfig writes the configuration to the given file.
func writeConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(newConfigFile(cfg)), 0o644) // nolint: errcheck, gosec
}

// WriteConfig writes the configuration to the default file.
func (c *Config) WriteConfig() error {
	return writeConfig(c, c.ConfigPath())
}

// DefaultDataPath returns the path to the data directory.
// It uses the TEAMDESK_DATA_PATH environment variable if set, otherwise the
// user config directory.
func DefaultDataPath() string {
	dp := os.Getenv("TEAMDESK_DATA_PATH")
	if dp == "" {
		if base, err := os.UserConfigDir(); err == nil {
			dp = filepath.Join(base, "teamdesk")
		} else {
			dp = "data"
		}
	}

	return dp
}

// ConfigPath returns the path to the config file.
func (c *Config) ConfigPath() string { // nolint:revive
	return filepath.Join(c.DataPath, "config.yaml")
}

// SessionPath returns the path to the persisted session file.
func (c *Config) SessionPath() string {
	return filepath.Join(c.DataPath, "session.yaml")
}

func exist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Exist returns true if the config file exists.
func (c *Config) Exist() bool {
	return exist(filepath.Join(c.DataPath, "config.yaml"))
}

// DefaultConfig returns the default Config. All the path values are relative
// to the data directory.
// Use Validate() to validate the config and ensure absolute paths.
func DefaultConfig() *Config {
	return &Config{
		DataPath: DefaultDataPath(),
		Server: ServerConfig{
			URL:     "http://localhost:8000",
			Timeout: 15,
		},
		Log: LogConfig{
			Format:     "text",
			TimeFormat: time.DateTime,
		},
	}
}

// Validate validates the configuration.
// It updates the configuration with absolute paths.
func (c *Config) Validate() error {
	// Use absolute paths
	if !filepath.IsAbs(c.DataPath) {
		dp, err := filepath.Abs(c.DataPath)
		if err != nil {
			return err
		}
		c.DataPath = dp
	}

	c.Server.URL = strings.TrimSuffix(c.Server.URL, "/")
	if c.Server.URL == "" {
		return errors.New("server url is required")
	}

	if c.Server.Timeout <= 0 {
		c.Server.Timeout = 15
	}

	if c.Log.Path != "" && !filepath.IsAbs(c.Log.Path) {
		c.Log.Path = filepath.Join(c.DataPath, c.Log.Path)
	}

	return nil
}

// RequestTimeout returns the per-request timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Server.Timeout) * time.Second
}
