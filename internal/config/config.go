// Package config handles XDG configuration directory, API endpoint and
// logger settings.
package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const (
	// AppName is the application directory name.
	AppName = "taskman"

	// SessionFile is the stored session filename.
	SessionFile = "session.json"

	// apiURLEnvVar overrides the API base URL.
	apiURLEnvVar = "TASKMAN_API_URL"

	// DefaultAPIURL is the Task Manager API base URL used when the
	// environment does not override it.
	DefaultAPIURL = "http://localhost:3000/api"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// APIURL is the Task Manager API base URL, without a trailing slash.
	APIURL string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Logger is the structured logger for diagnostic output.
	Logger zerolog.Logger
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/taskman or $HOME/.config/taskman.
// The API base URL comes from TASKMAN_API_URL when set.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:    dir,
		APIURL: GetEnv(apiURLEnvVar, DefaultAPIURL),
		Logger: zerolog.Nop(),
	}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SessionPath returns the path to the stored session file.
func (c *Config) SessionPath() string {
	return filepath.Join(c.Dir, SessionFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// NewLogger builds the CLI logger writing to w. Debug mode enables
// per-request logging; otherwise only warnings and errors are emitted.
func NewLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
}

// GetEnv returns the value of envVar, or defaultValue when unset or empty.
func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
