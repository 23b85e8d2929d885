package native

import (
	"fmt"
	"strings"
	"sync"

	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/lyeka/flowy/internal/shortcut"
)

// X11 maps Alt to Mod1 and Super to Mod4 on standard keymaps.
var modifierNames = map[shortcut.Modifier]string{
	shortcut.ModCmd:   "mod4",
	shortcut.ModCtrl:  "control",
	shortcut.ModAlt:   "mod1",
	shortcut.ModShift: "shift",
}

// keysyms maps canonical key names to X keysym names.
var keysyms = func() map[string]string {
	m := map[string]string{
		"Space":  "space",
		"Return": "Return",
		"Tab":    "Tab",
		"Escape": "Escape",
	}
	for c := 'A'; c <= 'Z'; c++ {
		m[string(c)] = strings.ToLower(string(c))
	}
	for c := '0'; c <= '9'; c++ {
		m[string(c)] = string(c)
	}
	for i := 1; i <= 12; i++ {
		name := fmt.Sprintf("F%d", i)
		m[name] = name
	}
	return m
}()

// keyString renders c in xgbutil's "mod-mod-key" form.
func keyString(c shortcut.Chord) (string, error) {
	sym, ok := keysyms[c.Key]
	if !ok {
		return "", fmt.Errorf("key %q not supported", c.Key)
	}
	parts := make([]string, 0, len(c.Modifiers)+1)
	for _, m := range c.Modifiers {
		name, ok := modifierNames[m]
		if !ok {
			return "", fmt.Errorf("modifier %s not supported on this platform", m)
		}
		parts = append(parts, name)
	}
	return strings.Join(append(parts, sym), "-"), nil
}

// Bind connects to the X server named by $DISPLAY and prepares a grab for c
// on the root window. Without an X server it returns an error.
func Bind(c shortcut.Chord) (shortcut.Binding, error) {
	keyStr, err := keyString(c)
	if err != nil {
		return nil, err
	}

	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}
	keybind.Initialize(xu)
	root := xu.RootWin()

	var closeOnce sync.Once
	closeConn := func() { closeOnce.Do(func() { xu.Conn().Close() }) }

	pressed := make(chan struct{}, 1)
	b := newBinding()
	b.grab = func() error {
		onPress := keybind.KeyPressFun(func(*xgbutil.XUtil, xevent.KeyPressEvent) {
			select {
			case pressed <- struct{}{}:
			default:
			}
		})
		if err := onPress.Connect(xu, root, keyStr, true); err != nil {
			closeConn()
			return err
		}
		go xevent.Main(xu)
		go forward(pressed, b.down, b.stop)
		return nil
	}
	b.release = func() error {
		keybind.Detach(xu, root)
		xevent.Quit(xu)
		closeConn()
		return nil
	}
	return b, nil
}
