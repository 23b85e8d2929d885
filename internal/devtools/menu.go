// Package devtools builds the application menu, including the Developer menu
// that debug builds carry.
package devtools

import (
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"

	"github.com/lyeka/flowy/internal/logging"
)

const (
	DeveloperMenuLabel = "Developer"
	ToggleItemLabel    = "Toggle DevTools"
)

// Panel is the main window's DevTools panel.
type Panel interface {
	IsOpen() bool
	SetOpen(open bool)
}

// Enabled reports whether the binary was built in debug mode.
func Enabled() bool {
	return debugBuild
}

// Toggle inverts the panel state and returns the new state.
func Toggle(p Panel) bool {
	open := !p.IsOpen()
	p.SetOpen(open)
	logging.L().Debug("devtools toggled", logging.Bool("open", open))
	return open
}

// ApplicationMenu returns the menu for goos. macOS always gets the standard
// app and edit menus so clipboard shortcuts work in the webview. The
// Developer menu is added only when debug is set.
func ApplicationMenu(goos string, debug bool, panel Panel) *menu.Menu {
	appMenu := menu.NewMenu()
	if goos == "darwin" {
		appMenu.Append(menu.AppMenu())
		appMenu.Append(menu.EditMenu())
	}
	if debug && panel != nil {
		dev := appMenu.AddSubmenu(DeveloperMenuLabel)
		dev.AddText(ToggleItemLabel, keys.Combo("i", keys.CmdOrCtrlKey, keys.OptionOrAltKey), func(_ *menu.CallbackData) {
			Toggle(panel)
		})
	}
	if len(appMenu.Items) == 0 {
		return nil
	}
	return appMenu
}
