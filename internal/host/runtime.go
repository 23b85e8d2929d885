// Package host adapts the Wails runtime and the OS notification service to the
// capability interfaces used by the rest of the app.
package host

import (
	"context"
	"sync"

	"github.com/gen2brain/beeep"
	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/lyeka/flowy/internal/desktop"
)

// DevtoolsEvent is emitted to the front-end whenever the DevTools panel opens or closes.
const DevtoolsEvent = "devtools:visibility"

// Package-level hooks for testing. In production, these use the real implementations.
var (
	saveFileDialog   = wailsRuntime.SaveFileDialog
	openFileDialog   = wailsRuntime.OpenFileDialog
	windowShow       = wailsRuntime.WindowShow
	windowHide       = wailsRuntime.WindowHide
	windowUnminimise = wailsRuntime.WindowUnminimise
	appShow          = wailsRuntime.Show
	eventsEmit       = wailsRuntime.EventsEmit
	sendNotification = func(title, body string) error {
		return beeep.Notify(title, body, "")
	}
)

// Runtime is the Wails-backed host. Wails v2 has no query for window
// visibility, so the last state set through this type is tracked here.
type Runtime struct {
	mu           sync.Mutex
	ctx          context.Context
	visible      bool
	devtoolsOpen bool
}

// New creates a host. startHidden mirrors options.App.StartHidden.
func New(startHidden bool) *Runtime {
	return &Runtime{visible: !startHidden}
}

// Startup stores the Wails context. Window calls before this are no-ops.
func (r *Runtime) Startup(ctx context.Context) {
	r.mu.Lock()
	r.ctx = ctx
	r.mu.Unlock()
}

func (r *Runtime) appContext() context.Context {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ctx
}

// Notify shows a native notification.
func (r *Runtime) Notify(title, body string) error {
	return sendNotification(title, body)
}

// SaveFile presents the native save dialog.
func (r *Runtime) SaveFile(ctx context.Context, req desktop.SaveRequest) (string, error) {
	return saveFileDialog(r.dialogContext(ctx), wailsRuntime.SaveDialogOptions{
		Title:                req.Title,
		DefaultDirectory:     req.DefaultDirectory,
		DefaultFilename:      req.DefaultFilename,
		Filters:              toWailsFilters(req.Filters),
		CanCreateDirectories: true,
	})
}

// OpenFile presents the native open dialog.
func (r *Runtime) OpenFile(ctx context.Context, req desktop.OpenRequest) (string, error) {
	return openFileDialog(r.dialogContext(ctx), wailsRuntime.OpenDialogOptions{
		Title:            req.Title,
		DefaultDirectory: req.DefaultDirectory,
		Filters:          toWailsFilters(req.Filters),
	})
}

// dialogContext prefers the caller's context; it must derive from the Wails
// context for the runtime to find its frontend.
func (r *Runtime) dialogContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return r.appContext()
}

func toWailsFilters(filters []desktop.FileFilter) []wailsRuntime.FileFilter {
	out := make([]wailsRuntime.FileFilter, 0, len(filters))
	for _, f := range filters {
		out = append(out, wailsRuntime.FileFilter{DisplayName: f.DisplayName, Pattern: f.Pattern})
	}
	return out
}

// IsVisible reports the tracked main-window visibility.
func (r *Runtime) IsVisible() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.visible
}

// Show makes the main window visible.
func (r *Runtime) Show() {
	ctx := r.appContext()
	if ctx == nil {
		return
	}
	windowShow(ctx)
	r.setVisible(true)
}

// Hide hides the main window.
func (r *Runtime) Hide() {
	ctx := r.appContext()
	if ctx == nil {
		return
	}
	windowHide(ctx)
	r.setVisible(false)
}

func (r *Runtime) setVisible(visible bool) {
	r.mu.Lock()
	r.visible = visible
	r.mu.Unlock()
}

// Focus restores a minimised window and brings the app to the foreground.
func (r *Runtime) Focus() {
	ctx := r.appContext()
	if ctx == nil {
		return
	}
	windowUnminimise(ctx)
	appShow(ctx)
}

// IsOpen reports whether the DevTools panel is open.
func (r *Runtime) IsOpen() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.devtoolsOpen
}

// SetOpen opens or closes the DevTools panel. The panel lives in the
// front-end, which listens for DevtoolsEvent.
func (r *Runtime) SetOpen(open bool) {
	r.mu.Lock()
	r.devtoolsOpen = open
	ctx := r.ctx
	r.mu.Unlock()

	if ctx == nil {
		return
	}
	eventsEmit(ctx, DevtoolsEvent, open)
}
