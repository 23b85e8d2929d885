package shortcut

import (
	"context"
	"fmt"
	"sync"

	"github.com/lyeka/flowy/internal/logging"
)

// Window is the main window as seen by the toggle.
type Window interface {
	IsVisible() bool
	Show()
	Hide()
	Focus()
}

// Binding is one registered OS-level hotkey.
type Binding interface {
	Register() error
	Unregister() error
	Keydown() <-chan struct{}
}

// Binder creates a binding for a chord.
type Binder func(Chord) (Binding, error)

// Registrar owns the toggle hotkey for the lifetime of the app.
type Registrar struct {
	window Window
	bind   Binder

	toggleMu sync.Mutex

	mu      sync.Mutex
	binding Binding
	chord   Chord
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewRegistrar creates a registrar that binds chords through bind, usually
// native.Bind.
func NewRegistrar(window Window, bind Binder) *Registrar {
	return &Registrar{window: window, bind: bind}
}

// Toggle hides the window if it is visible, otherwise shows and focuses it.
// Concurrent toggles are serialized.
func (r *Registrar) Toggle() {
	r.toggleMu.Lock()
	defer r.toggleMu.Unlock()

	if r.window.IsVisible() {
		r.window.Hide()
		logging.L().Debug("main window hidden by shortcut")
		return
	}
	r.window.Show()
	r.window.Focus()
	logging.L().Debug("main window shown by shortcut")
}

// Start registers chord and toggles the window on every keydown until ctx is
// done or Stop is called. Registration errors are returned to the caller.
func (r *Registrar) Start(ctx context.Context, chord Chord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.binding != nil {
		return fmt.Errorf("shortcut %s already registered", r.chord)
	}

	b, err := r.bind(chord)
	if err != nil {
		return fmt.Errorf("failed to bind global shortcut %s: %w", chord, err)
	}
	if err := b.Register(); err != nil {
		return fmt.Errorf("failed to register global shortcut %s: %w", chord, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	r.binding, r.chord, r.cancel, r.done = b, chord, cancel, done

	go r.listen(ctx, b.Keydown(), done)
	return nil
}

func (r *Registrar) listen(ctx context.Context, keydown <-chan struct{}, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-keydown:
			if !ok {
				return
			}
			r.Toggle()
		}
	}
}

// Chord returns the registered chord, if any.
func (r *Registrar) Chord() (Chord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.chord, r.binding != nil
}

// Stop ends the listener and unregisters the hotkey. Safe to call when
// nothing is registered.
func (r *Registrar) Stop() error {
	r.mu.Lock()
	b, cancel, done := r.binding, r.cancel, r.done
	r.binding, r.cancel, r.done = nil, nil, nil
	r.chord = Chord{}
	r.mu.Unlock()

	if b == nil {
		return nil
	}
	cancel()
	<-done

	if err := b.Unregister(); err != nil {
		return fmt.Errorf("failed to unregister global shortcut: %w", err)
	}
	return nil
}
