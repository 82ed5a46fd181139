package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures how armview reaches ARM and where it logs.
type Config struct {
	ARMURL                string `validate:"required,url"`
	PollSeconds           int    `validate:"min=1,max=3600"`
	RequestTimeoutSeconds int    `validate:"min=1,max=300"`
	LogFile               string `validate:"required"`
	LogLevel              string `validate:"oneof=debug info warn error"`
}

const (
	defaultConfigPath     = "~/.config/armview/config.toml"
	defaultLogFile        = "~/.local/share/armview/armview.log"
	defaultARMURL         = "http://127.0.0.1:8090"
	defaultPollSeconds    = 5
	defaultRequestTimeout = 5
	defaultLogLevel       = "info"
)

var validate = validator.New()

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		ARMURL:                defaultARMURL,
		PollSeconds:           defaultPollSeconds,
		RequestTimeoutSeconds: defaultRequestTimeout,
		LogFile:               mustExpand(defaultLogFile),
		LogLevel:              defaultLogLevel,
	}
}

// Load locates and parses the armview config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ARMURL                string `toml:"arm_url"`
		PollSeconds           int    `toml:"poll_seconds"`
		RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
		LogFile               string `toml:"log_file"`
		LogLevel              string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.ARMURL); v != "" {
		if !strings.Contains(v, "://") {
			v = "http://" + v
		}
		cfg.ARMURL = strings.TrimRight(v, "/")
	}
	if raw.PollSeconds != 0 {
		cfg.PollSeconds = raw.PollSeconds
	}
	if raw.RequestTimeoutSeconds != 0 {
		cfg.RequestTimeoutSeconds = raw.RequestTimeoutSeconds
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.ToLower(strings.TrimSpace(raw.LogLevel)); v != "" {
		cfg.LogLevel = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges and formats.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			fields := make([]string, 0, len(invalid))
			for _, fe := range invalid {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// PollInterval returns the refresh cadence for every feed.
func (c Config) PollInterval() time.Duration {
	if c.PollSeconds <= 0 {
		return defaultPollSeconds * time.Second
	}
	return time.Duration(c.PollSeconds) * time.Second
}

// RequestTimeout bounds a single API request.
func (c Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return defaultRequestTimeout * time.Second
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// LogPath returns the armview log file, defaulting when unset.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogFile) == "" {
		return mustExpand(defaultLogFile)
	}
	return c.LogFile
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ against the home directory and returns an
// absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
