//go:build darwin || windows

package native

import (
	"fmt"

	"golang.design/x/hotkey"

	"github.com/lyeka/flowy/internal/shortcut"
)

var keyCodes = map[string]hotkey.Key{
	"Space":  hotkey.KeySpace,
	"Return": hotkey.KeyReturn,
	"Tab":    hotkey.KeyTab,
	"Escape": hotkey.KeyEscape,

	"A": hotkey.KeyA, "B": hotkey.KeyB, "C": hotkey.KeyC, "D": hotkey.KeyD,
	"E": hotkey.KeyE, "F": hotkey.KeyF, "G": hotkey.KeyG, "H": hotkey.KeyH,
	"I": hotkey.KeyI, "J": hotkey.KeyJ, "K": hotkey.KeyK, "L": hotkey.KeyL,
	"M": hotkey.KeyM, "N": hotkey.KeyN, "O": hotkey.KeyO, "P": hotkey.KeyP,
	"Q": hotkey.KeyQ, "R": hotkey.KeyR, "S": hotkey.KeyS, "T": hotkey.KeyT,
	"U": hotkey.KeyU, "V": hotkey.KeyV, "W": hotkey.KeyW, "X": hotkey.KeyX,
	"Y": hotkey.KeyY, "Z": hotkey.KeyZ,

	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,

	"F1": hotkey.KeyF1, "F2": hotkey.KeyF2, "F3": hotkey.KeyF3, "F4": hotkey.KeyF4,
	"F5": hotkey.KeyF5, "F6": hotkey.KeyF6, "F7": hotkey.KeyF7, "F8": hotkey.KeyF8,
	"F9": hotkey.KeyF9, "F10": hotkey.KeyF10, "F11": hotkey.KeyF11, "F12": hotkey.KeyF12,
}

// translate maps a chord onto golang.design/x/hotkey modifiers and key.
func translate(c shortcut.Chord) ([]hotkey.Modifier, hotkey.Key, error) {
	key, ok := keyCodes[c.Key]
	if !ok {
		return nil, 0, fmt.Errorf("key %q not supported", c.Key)
	}
	mods := make([]hotkey.Modifier, 0, len(c.Modifiers))
	for _, m := range c.Modifiers {
		pm, ok := platformModifiers[m]
		if !ok {
			return nil, 0, fmt.Errorf("modifier %s not supported on this platform", m)
		}
		mods = append(mods, pm)
	}
	return mods, key, nil
}

// Bind creates an unregistered hotkey for c.
func Bind(c shortcut.Chord) (shortcut.Binding, error) {
	mods, key, err := translate(c)
	if err != nil {
		return nil, err
	}

	hk := hotkey.New(mods, key)
	b := newBinding()
	b.grab = func() error {
		if err := hk.Register(); err != nil {
			return err
		}
		go forward(hk.Keydown(), b.down, b.stop)
		return nil
	}
	b.release = hk.Unregister
	return b, nil
}
