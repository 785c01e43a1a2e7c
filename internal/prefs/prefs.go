// Package prefs persists egcctl dashboard preferences in
// ~/.config/egcctl/prefs.toml. Unreadable or invalid files fall back to
// defaults; preferences are never worth failing startup over.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/egcctl/internal/config"
)

// Prefs holds dashboard preferences.
type Prefs struct {
	Theme        string `toml:"theme"`
	ShowFeatures bool   `toml:"show_features"`
}

const (
	defaultPrefsPath = "~/.config/egcctl/prefs.toml"
	defaultTheme     = "Nightfox"
)

// Default returns the preferences used when nothing is stored.
func Default() Prefs {
	return Prefs{Theme: defaultTheme}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path (DefaultPath when empty).
func Load(path string) Prefs {
	resolved, err := resolvePath(path)
	if err != nil {
		return Default()
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return Default()
	}

	p := Default()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Default()
	}
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	return p
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return config.ExpandPath(defaultPrefsPath)
	}
	return config.ExpandPath(path)
}
