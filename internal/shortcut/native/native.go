// Package native binds shortcut chords to the operating system's global
// hotkey service. X11 is used on Linux, golang.design/x/hotkey on macOS and
// Windows.
package native

import "sync"

// binding adapts a platform hotkey to shortcut.Binding.
type binding struct {
	grab    func() error
	release func() error

	down chan struct{}
	stop chan struct{}
	once sync.Once
}

func newBinding() *binding {
	return &binding{
		down: make(chan struct{}, 1),
		stop: make(chan struct{}),
	}
}

func (b *binding) Register() error {
	return b.grab()
}

func (b *binding) Keydown() <-chan struct{} {
	return b.down
}

func (b *binding) Unregister() error {
	b.once.Do(func() { close(b.stop) })
	return b.release()
}

// forward coalesces platform events into down; a keydown arriving while the
// previous one is still pending is dropped. It returns when stop is closed
// or events is closed.
func forward[E any](events <-chan E, down chan<- struct{}, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			select {
			case down <- struct{}{}:
			default:
			}
		}
	}
}
