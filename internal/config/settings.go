// Package config manages the optional ~/.flowy/config.toml settings file.
package config

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the TOML settings file inside the Flowy config directory.
const FileName = "config.toml"

// Package-level hook for testing. In production this resolves under $HOME.
var getConfigPath = defaultConfigPath

// Settings is the full config.toml structure we care about.
type Settings struct {
	Desktop DesktopSettings `toml:"desktop"`
	Log     LogSettings     `toml:"log"`
}

// DesktopSettings represents the [desktop] section.
type DesktopSettings struct {
	// Shortcut overrides the platform default toggle chord, e.g. "Ctrl+Alt+F".
	// Empty means use the platform default.
	Shortcut string `toml:"shortcut"`
	// ShortcutRequired makes a failed shortcut registration abort startup.
	// Pointer so an absent key can be told apart from an explicit false.
	ShortcutRequired *bool `toml:"shortcut_required"`
	// ExportDir is the directory the import/export dialogs open in.
	ExportDir string `toml:"export_dir"`
}

// LogSettings represents the [log] section.
type LogSettings struct {
	// Level is one of "debug", "info", "warn", "error". Empty keeps the build default.
	Level string `toml:"level"`
}

// RequireShortcut reports whether shortcut registration failure is fatal.
func (d DesktopSettings) RequireShortcut() bool {
	return d.ShortcutRequired == nil || *d.ShortcutRequired
}

// Defaults returns the settings used when no file exists.
func Defaults() *Settings {
	return &Settings{}
}

// Manager loads and saves settings.
type Manager struct {
	path string
}

// NewManager creates a manager for the default config path.
func NewManager() *Manager {
	return NewManagerAt(getConfigPath())
}

// NewManagerAt creates a manager for the settings file at path.
func NewManagerAt(path string) *Manager {
	return &Manager{path: path}
}

// Path returns the file the manager reads and writes.
func (m *Manager) Path() string {
	return m.path
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("warning: could not determine home directory, using temp dir: %v", err)
		return filepath.Join(os.TempDir(), ".flowy", FileName)
	}
	return filepath.Join(home, ".flowy", FileName)
}

// Load reads settings. A missing or unparseable file yields defaults; only
// I/O failures other than "not exist" are returned.
func (m *Manager) Load() (*Settings, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return Defaults(), err
	}

	var settings Settings
	if err := toml.Unmarshal(data, &settings); err != nil {
		log.Printf("warning: failed to parse %s, using defaults: %v", m.path, err)
		return Defaults(), nil
	}

	normalize(&settings)
	return &settings, nil
}

func normalize(s *Settings) {
	s.Desktop.Shortcut = strings.TrimSpace(s.Desktop.Shortcut)
	s.Desktop.ExportDir = expandHome(strings.TrimSpace(s.Desktop.ExportDir))

	level, ok := ParseLevel(s.Log.Level)
	if !ok {
		level = ""
	}
	s.Log.Level = level
}

// ParseLevel canonicalizes a log level name. It reports false for anything
// other than debug, info, warn (or warning) and error.
func ParseLevel(level string) (string, bool) {
	level = strings.ToLower(strings.TrimSpace(level))
	switch level {
	case "debug", "info", "warn", "error":
		return level, true
	case "warning":
		return "warn", true
	}
	return "", false
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// Save writes settings, preserving sections this package does not own.
func (m *Manager) Save(s *Settings) error {
	existingData, _ := os.ReadFile(m.path)

	var existing map[string]interface{}
	if len(existingData) > 0 {
		if err := toml.Unmarshal(existingData, &existing); err != nil {
			existing = make(map[string]interface{})
		}
	} else {
		existing = make(map[string]interface{})
	}

	desktop := map[string]interface{}{
		"shortcut":   s.Desktop.Shortcut,
		"export_dir": s.Desktop.ExportDir,
	}
	if s.Desktop.ShortcutRequired != nil {
		desktop["shortcut_required"] = *s.Desktop.ShortcutRequired
	}
	existing["desktop"] = desktop
	existing["log"] = map[string]interface{}{
		"level": s.Log.Level,
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	if len(existingData) == 0 {
		buf.WriteString("# Flowy Configuration\n\n")
	}
	if err := toml.NewEncoder(&buf).Encode(existing); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	return os.WriteFile(m.path, buf.Bytes(), 0600)
}
