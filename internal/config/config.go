package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures egcctl settings.
type Config struct {
	// DocumentPath is the EGCAPILite.json location. Empty means the
	// platform default resolved by egcapi.DefaultPath.
	DocumentPath     string
	PollInterval     time.Duration
	FlashbackSeconds int
	LogLevel         string
	LogFormat        string
}

const (
	defaultConfigPath       = "~/.config/egcctl/config.toml"
	defaultPollSeconds      = 1
	defaultFlashbackSeconds = 30
	defaultLogLevel         = "info"
	defaultLogFormat        = "console"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		PollInterval:     defaultPollSeconds * time.Second,
		FlashbackSeconds: defaultFlashbackSeconds,
		LogLevel:         defaultLogLevel,
		LogFormat:        defaultLogFormat,
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the egcctl config, falling back to defaults when missing.
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
		DocumentPath     string `toml:"document_path"`
		PollSeconds      int    `toml:"poll_seconds"`
		FlashbackSeconds int    `toml:"flashback_seconds"`
		LogLevel         string `toml:"log_level"`
		LogFormat        string `toml:"log_format"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if doc := strings.TrimSpace(raw.DocumentPath); doc != "" {
		expanded, err := ExpandPath(doc)
		if err != nil {
			return Config{}, fmt.Errorf("document_path: %w", err)
		}
		cfg.DocumentPath = expanded
	}
	if raw.PollSeconds > 0 {
		cfg.PollInterval = time.Duration(raw.PollSeconds) * time.Second
	}
	if raw.FlashbackSeconds > 0 {
		cfg.FlashbackSeconds = raw.FlashbackSeconds
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if format := strings.TrimSpace(raw.LogFormat); format != "" {
		cfg.LogFormat = strings.ToLower(format)
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

// ExpandPath expands a leading "~" and returns an absolute path.
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
