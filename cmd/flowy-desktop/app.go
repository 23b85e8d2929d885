package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	goruntime "runtime"
	"strings"
	"sync"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/lyeka/flowy/internal/config"
	"github.com/lyeka/flowy/internal/desktop"
	"github.com/lyeka/flowy/internal/host"
	"github.com/lyeka/flowy/internal/logging"
	"github.com/lyeka/flowy/internal/shortcut"
)

// quitApp is replaced in tests.
var quitApp = wailsRuntime.Quit

// App is bound to the front-end. Its exported methods are the front-end's
// show_notification, export_data and import_data commands, plus the
// settings the front-end can change.
type App struct {
	ctx        context.Context
	host       *host.Runtime
	bridge     *desktop.App
	shortcuts  *shortcut.Registrar
	store      *config.Manager
	goos       string
	startupErr error

	settingsMu sync.Mutex
	settings   *config.Settings
}

// NewApp creates a new App application struct. bind registers the toggle
// shortcut with the OS; store persists settings changed from the front-end.
func NewApp(settings *config.Settings, store *config.Manager, bind shortcut.Binder) *App {
	if settings == nil {
		settings = config.Defaults()
	}
	h := host.New(false)
	return &App{
		host:      h,
		bridge:    desktop.NewApp(h, h, desktop.WithExportDir(settings.Desktop.ExportDir)),
		shortcuts: shortcut.NewRegistrar(h, bind),
		store:     store,
		settings:  settings,
		goos:      goruntime.GOOS,
	}
}

// startup is called when the app starts.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	a.host.Startup(ctx)

	if err := a.registerShortcut(ctx); err != nil {
		if a.settings.Desktop.RequireShortcut() {
			logging.L().Error("startup aborted: global shortcut unavailable", logging.Err(err))
			a.startupErr = err
			quitApp(ctx)
			return
		}
		logging.L().Warn("continuing without global shortcut", logging.Err(err))
		return
	}
	if chord, ok := a.shortcuts.Chord(); ok {
		logging.L().Info("global shortcut registered", logging.String("chord", chord.String()))
	}
}

func (a *App) registerShortcut(ctx context.Context) error {
	chord, err := shortcut.Resolve(a.goos, a.settings.Desktop.Shortcut)
	if err != nil {
		return err
	}
	return a.shortcuts.Start(ctx, chord)
}

// shutdown is called when the app is closing.
func (a *App) shutdown(ctx context.Context) {
	if err := a.shortcuts.Stop(); err != nil {
		logging.L().Warn("shortcut cleanup failed", logging.Err(err))
	}
	_ = logging.Sync()
}

// startupError returns the error that aborted startup, if any.
func (a *App) startupError() error {
	return a.startupErr
}

// GetVersion returns the application version.
func (a *App) GetVersion() string {
	return a.bridge.GetVersion()
}

// GetShortcut returns the active toggle shortcut, or "" if none is registered.
func (a *App) GetShortcut() string {
	chord, ok := a.shortcuts.Chord()
	if !ok {
		return ""
	}
	return chord.String()
}

// ShowNotification displays a native system notification.
func (a *App) ShowNotification(title, body string) error {
	return a.bridge.Notify(a.ctx, title, body)
}

// ExportData saves data to a file the user picks and returns its path.
// Rejects with "user cancelled" when the dialog is dismissed.
func (a *App) ExportData(data string) (string, error) {
	return a.bridge.Export(a.ctx, data)
}

// ImportData returns the contents of a file the user picks.
// Rejects with "user cancelled" when the dialog is dismissed.
func (a *App) ImportData() (string, error) {
	return a.bridge.Import(a.ctx)
}

// SetExportDirectory sets and persists the directory the export and import
// dialogs open in. Empty clears it. Returns the absolute directory stored.
func (a *App) SetExportDirectory(dir string) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", &desktop.FileError{Op: "settings", Path: dir, Err: err}
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", &desktop.FileError{Op: "settings", Path: abs, Err: err}
		}
		if !info.IsDir() {
			return "", &desktop.FileError{Op: "settings", Path: abs, Err: fmt.Errorf("%s is not a directory", abs)}
		}
		dir = abs
	}

	err := a.updateSettings(func(s *config.Settings) { s.Desktop.ExportDir = dir })
	if err != nil {
		return "", err
	}
	a.bridge.SetExportDir(dir)
	logging.L().Info("export directory changed", logging.String("dir", dir))
	return dir, nil
}

// SetLogLevel changes the log level now and for later launches.
func (a *App) SetLogLevel(level string) error {
	canonical, ok := config.ParseLevel(level)
	if !ok {
		return fmt.Errorf("unknown log level %q", level)
	}
	if err := a.updateSettings(func(s *config.Settings) { s.Log.Level = canonical }); err != nil {
		return err
	}
	logging.SetLevel(canonical)
	logging.L().Info("log level changed", logging.String("level", canonical))
	return nil
}

// updateSettings applies change to a copy of the settings and saves it; the
// in-memory settings only change once the file is written.
func (a *App) updateSettings(change func(*config.Settings)) error {
	a.settingsMu.Lock()
	defer a.settingsMu.Unlock()

	next := *a.settings
	change(&next)
	if err := a.store.Save(&next); err != nil {
		logging.L().Warn("settings save failed", logging.String("path", a.store.Path()), logging.Err(err))
		return &desktop.FileError{Op: "settings", Path: a.store.Path(), Err: err}
	}
	a.settings = &next
	return nil
}

// BridgeError is the rejection value the front-end receives from a failed
// bound call.
type BridgeError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// formatError is the Wails ErrorFormatter: it keeps the error's kind next to
// its message so the front-end does not have to match on text.
func formatError(err error) any {
	return BridgeError{
		Kind:    desktop.KindOf(err).String(),
		Message: err.Error(),
	}
}
