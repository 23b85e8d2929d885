// Package shortcut binds the global key chord that shows and hides the main window.
package shortcut

import (
	"fmt"
	"strings"
)

// Modifier is a platform-neutral modifier key.
type Modifier int

const (
	ModCmd Modifier = iota // Command on macOS, Super/Win elsewhere
	ModCtrl
	ModAlt // Option on macOS
	ModShift
)

var modifierNames = [...]string{
	ModCmd:   "Cmd",
	ModCtrl:  "Ctrl",
	ModAlt:   "Alt",
	ModShift: "Shift",
}

func (m Modifier) String() string {
	if int(m) < 0 || int(m) >= len(modifierNames) {
		return fmt.Sprintf("Modifier(%d)", int(m))
	}
	return modifierNames[m]
}

var modifierAliases = map[string]Modifier{
	"cmd":     ModCmd,
	"command": ModCmd,
	"super":   ModCmd,
	"meta":    ModCmd,
	"win":     ModCmd,
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"shift":   ModShift,
}

// keyAliases maps lower-cased key tokens to their canonical names.
var keyAliases = func() map[string]string {
	m := map[string]string{
		"space":  "Space",
		"enter":  "Return",
		"return": "Return",
		"tab":    "Tab",
		"esc":    "Escape",
		"escape": "Escape",
	}
	for c := 'a'; c <= 'z'; c++ {
		m[string(c)] = strings.ToUpper(string(c))
	}
	for c := '0'; c <= '9'; c++ {
		m[string(c)] = string(c)
	}
	for i := 1; i <= 12; i++ {
		name := fmt.Sprintf("F%d", i)
		m[strings.ToLower(name)] = name
	}
	return m
}()

// Chord is a parsed key combination: at least one modifier and one key.
type Chord struct {
	Modifiers []Modifier // sorted, no duplicates
	Key       string     // canonical key name, e.g. "Space", "K", "F5"
}

// String returns the canonical form, e.g. "Cmd+Shift+Space".
func (c Chord) String() string {
	parts := make([]string, 0, len(c.Modifiers)+1)
	for _, m := range c.Modifiers {
		parts = append(parts, m.String())
	}
	parts = append(parts, c.Key)
	return strings.Join(parts, "+")
}

// Parse reads a chord like "Ctrl+Shift+Space". Tokens are case-insensitive
// and at least one modifier is required.
func Parse(s string) (Chord, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Chord{}, fmt.Errorf("empty shortcut")
	}

	var (
		seen [len(modifierNames)]bool
		key  string
	)
	for _, tok := range strings.Split(s, "+") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" {
			return Chord{}, fmt.Errorf("shortcut %q: empty token", s)
		}
		if mod, ok := modifierAliases[tok]; ok {
			seen[mod] = true
			continue
		}
		name, ok := keyAliases[tok]
		if !ok {
			return Chord{}, fmt.Errorf("shortcut %q: unknown key %q", s, tok)
		}
		if key != "" {
			return Chord{}, fmt.Errorf("shortcut %q: more than one key", s)
		}
		key = name
	}

	if key == "" {
		return Chord{}, fmt.Errorf("shortcut %q: no key", s)
	}

	var c Chord
	for m, ok := range seen {
		if ok {
			c.Modifiers = append(c.Modifiers, Modifier(m))
		}
	}
	if len(c.Modifiers) == 0 {
		return Chord{}, fmt.Errorf("shortcut %q: needs at least one modifier", s)
	}
	c.Key = key
	return c, nil
}

// platformChords is the default toggle chord per GOOS.
var platformChords = map[string]string{
	"darwin":  "Cmd+Shift+Space",
	"windows": "Ctrl+Shift+Space",
	"linux":   "Ctrl+Shift+Space",
}

const fallbackChord = "Ctrl+Shift+Space"

// DefaultChord returns the platform default chord string for goos.
func DefaultChord(goos string) string {
	if c, ok := platformChords[goos]; ok {
		return c
	}
	return fallbackChord
}

// Resolve picks the chord for goos, preferring a non-empty override.
func Resolve(goos, override string) (Chord, error) {
	if s := strings.TrimSpace(override); s != "" {
		return Parse(s)
	}
	return Parse(DefaultChord(goos))
}
