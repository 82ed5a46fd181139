// Package prefs persists armview's display preferences in
// ~/.config/armview/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/armview/internal/config"
)

// Prefs holds the color scheme and light/dark mode.
type Prefs struct {
	Scheme string `toml:"scheme"`
	Mode   string `toml:"mode"`
}

const (
	ModeDark  = "dark"
	ModeLight = "light"
)

const (
	defaultPrefsPath = "~/.config/armview/prefs.toml"
	defaultScheme    = "blue"
)

// Default returns the preferences used when nothing is stored.
func Default() Prefs {
	return Prefs{Scheme: defaultScheme, Mode: ModeDark}
}

// Load reads preferences from path, or the default location when path is
// empty. A missing file yields Default with no error. An unreadable or
// malformed file yields Default together with the error so the caller can
// report it and carry on.
func Load(path string) (Prefs, error) {
	resolved, err := resolve(path)
	if err != nil {
		return Default(), err
	}
	data, err := os.ReadFile(resolved)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read prefs: %w", err)
	}

	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse prefs %s: %w", resolved, err)
	}
	return p.normalized(), nil
}

// Save writes p to path, creating the parent directory. The file is replaced
// by rename so a crash never leaves it half written.
func Save(path string, p Prefs) error {
	resolved, err := resolve(path)
	if err != nil {
		return err
	}
	data, err := toml.Marshal(p.normalized())
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

func (p Prefs) normalized() Prefs {
	p.Scheme = strings.ToLower(strings.TrimSpace(p.Scheme))
	if p.Scheme == "" {
		p.Scheme = defaultScheme
	}
	if strings.EqualFold(strings.TrimSpace(p.Mode), ModeLight) {
		p.Mode = ModeLight
	} else {
		p.Mode = ModeDark
	}
	return p
}

func resolve(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	resolved, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("resolve prefs path: %w", err)
	}
	return resolved, nil
}
