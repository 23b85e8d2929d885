package native

import (
	"golang.design/x/hotkey"

	"github.com/lyeka/flowy/internal/shortcut"
)

var platformModifiers = map[shortcut.Modifier]hotkey.Modifier{
	shortcut.ModCmd:   hotkey.ModWin,
	shortcut.ModCtrl:  hotkey.ModCtrl,
	shortcut.ModAlt:   hotkey.ModAlt,
	shortcut.ModShift: hotkey.ModShift,
}
