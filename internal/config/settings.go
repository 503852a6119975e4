package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	ioutils "github.com/handiism/song-review-hub/internal/io"
	"github.com/handiism/song-review-hub/internal/model"
	"github.com/handiism/song-review-hub/internal/session"
)

// Environment variables read by ApplyEnv.
const (
	EnvAPIURL   = "REVIEWHUB_API_URL"
	EnvListen   = "REVIEWHUB_LISTEN"
	EnvUserID   = "REVIEWHUB_USER_ID"
	EnvLogLevel = "REVIEWHUB_LOG_LEVEL"
)

// Settings holds all configuration options.
type Settings struct {
	// Backend
	APIBaseURL            string `json:"api_base_url" yaml:"api_base_url"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds" yaml:"request_timeout_seconds"` // 0 = no timeout

	// Browser shell
	ListenAddr string `json:"listen_addr" yaml:"listen_addr"`

	// Identity of the local user
	CurrentUserID int `json:"current_user_id" yaml:"current_user_id"`

	// Cover thumbnails, in pixels per side
	CoverMaxSize int `json:"cover_max_size" yaml:"cover_max_size"`

	// Logging
	LogLevel string `json:"log_level" yaml:"log_level"` // trace, debug, info, warn, error
	LogJSON  bool   `json:"log_json" yaml:"log_json"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		APIBaseURL:            "http://localhost:3001",
		RequestTimeoutSeconds: 0,
		ListenAddr:            ":8080",
		CurrentUserID:         1,
		CoverMaxSize:          600,
		LogLevel:              "info",
		LogJSON:               false,
	}
}

// DefaultPath returns the per-user settings file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "reviewhub", "config.json")
}

// Load reads settings from a JSON or YAML file, chosen by extension. A
// missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON or YAML file, chosen by extension.
func (s *Settings) Save(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return ioutils.WriteFile(path, data)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// ApplyEnv overrides settings from the environment. Variables found in
// envFiles (default ".env") are loaded first without replacing variables that
// are already set; missing files are ignored.
func (s *Settings) ApplyEnv(envFiles ...string) error {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	if v := os.Getenv(EnvAPIURL); v != "" {
		s.APIBaseURL = v
	}
	if v := os.Getenv(EnvListen); v != "" {
		s.ListenAddr = v
	}
	if v := os.Getenv(EnvUserID); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvUserID, err)
		}
		s.CurrentUserID = id
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = v
	}
	return nil
}

// Validate checks values that would otherwise fail later in confusing ways.
func (s *Settings) Validate() error {
	if s.APIBaseURL == "" {
		return fmt.Errorf("api_base_url is required")
	}
	if s.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("request_timeout_seconds must not be negative")
	}
	if s.CoverMaxSize < 0 {
		return fmt.Errorf("cover_max_size must not be negative")
	}
	if hclog.LevelFromString(s.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("unknown log_level %q", s.LogLevel)
	}
	return nil
}

// RequestTimeout returns the per-request timeout; zero means none.
func (s *Settings) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

// Session returns the identity of the configured user.
func (s *Settings) Session() session.Session {
	return session.New(model.ID(s.CurrentUserID))
}

// NewLogger builds the root logger for name, writing to stderr.
func (s *Settings) NewLogger(name string) hclog.Logger {
	return s.NewLoggerTo(name, os.Stderr)
}

// NewLoggerTo is NewLogger with a custom output, for shells that own the
// terminal.
func (s *Settings) NewLoggerTo(name string, out io.Writer) hclog.Logger {
	level := hclog.LevelFromString(s.LogLevel)
	if level == hclog.NoLevel {
		level = hclog.Info
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      level,
		JSONFormat: s.LogJSON,
		Output:     out,
	})
}
