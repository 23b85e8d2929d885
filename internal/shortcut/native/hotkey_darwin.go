package native

import (
	"golang.design/x/hotkey"

	"github.com/lyeka/flowy/internal/shortcut"
)

var platformModifiers = map[shortcut.Modifier]hotkey.Modifier{
	shortcut.ModCmd:   hotkey.ModCmd,
	shortcut.ModCtrl:  hotkey.ModCtrl,
	shortcut.ModAlt:   hotkey.ModOption,
	shortcut.ModShift: hotkey.ModShift,
}
