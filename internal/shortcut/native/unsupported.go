//go:build !darwin && !linux && !windows

package native

import (
	"errors"

	"github.com/lyeka/flowy/internal/shortcut"
)

// Bind always fails; there is no global hotkey service on this platform.
func Bind(shortcut.Chord) (shortcut.Binding, error) {
	return nil, errors.New("global shortcuts are not supported on this platform")
}
