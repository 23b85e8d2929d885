package shortcut

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	mu      sync.Mutex
	visible bool
	focused bool
	events  []string
}

func (w *fakeWindow) IsVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

func (w *fakeWindow) Show() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.visible = true
	w.events = append(w.events, "show")
}

func (w *fakeWindow) Hide() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.visible = false
	w.focused = false
	w.events = append(w.events, "hide")
}

func (w *fakeWindow) Focus() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.focused = true
	w.events = append(w.events, "focus")
}

func (w *fakeWindow) state() (visible, focused bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible, w.focused
}

type fakeBinding struct {
	down         chan struct{}
	registerErr  error
	registered   bool
	unregistered bool
}

func (b *fakeBinding) Register() error {
	if b.registerErr != nil {
		return b.registerErr
	}
	b.registered = true
	return nil
}

func (b *fakeBinding) Unregister() error {
	b.unregistered = true
	return nil
}

func (b *fakeBinding) Keydown() <-chan struct{} { return b.down }

func fakeBinder(b *fakeBinding, got *Chord) Binder {
	return func(c Chord) (Binding, error) {
		if got != nil {
			*got = c
		}
		return b, nil
	}
}

func mustParse(t *testing.T, s string) Chord {
	t.Helper()
	c, err := Parse(s)
	require.NoError(t, err)
	return c
}

func TestToggleShowsAndFocusesHiddenWindow(t *testing.T) {
	w := &fakeWindow{visible: false}
	r := NewRegistrar(w, nil)

	r.Toggle()

	visible, focused := w.state()
	assert.True(t, visible)
	assert.True(t, focused)
	assert.Equal(t, []string{"show", "focus"}, w.events)
}

func TestToggleHidesVisibleWindow(t *testing.T) {
	w := &fakeWindow{visible: true}
	r := NewRegistrar(w, nil)

	r.Toggle()

	visible, _ := w.state()
	assert.False(t, visible)
	assert.Equal(t, []string{"hide"}, w.events)
}

func TestToggleTwiceRestoresState(t *testing.T) {
	for _, initial := range []bool{true, false} {
		w := &fakeWindow{visible: initial}
		r := NewRegistrar(w, nil)

		r.Toggle()
		r.Toggle()

		visible, _ := w.state()
		assert.Equal(t, initial, visible)
	}
}

func TestConcurrentTogglesAreSerialized(t *testing.T) {
	w := &fakeWindow{visible: false}
	r := NewRegistrar(w, nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Toggle()
		}()
	}
	wg.Wait()

	// An even number of serialized toggles lands back where it started.
	visible, _ := w.state()
	assert.False(t, visible)
}

func TestStartKeydownTogglesWindow(t *testing.T) {
	w := &fakeWindow{visible: false}
	b := &fakeBinding{down: make(chan struct{})}
	var bound Chord
	r := NewRegistrar(w, fakeBinder(b, &bound))

	require.NoError(t, r.Start(context.Background(), mustParse(t, "Ctrl+Shift+Space")))
	defer r.Stop()

	assert.True(t, b.registered)
	assert.Equal(t, "Ctrl+Shift+Space", bound.String())

	b.down <- struct{}{}
	assert.Eventually(t, func() bool {
		visible, focused := w.state()
		return visible && focused
	}, time.Second, 5*time.Millisecond)

	b.down <- struct{}{}
	assert.Eventually(t, func() bool {
		visible, _ := w.state()
		return !visible
	}, time.Second, 5*time.Millisecond)
}

func TestStartRegistrationFailure(t *testing.T) {
	b := &fakeBinding{down: make(chan struct{}), registerErr: errors.New("hotkey already grabbed")}
	r := NewRegistrar(&fakeWindow{}, fakeBinder(b, nil))

	err := r.Start(context.Background(), mustParse(t, "Cmd+Shift+Space"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cmd+Shift+Space")
	assert.Contains(t, err.Error(), "hotkey already grabbed")

	_, ok := r.Chord()
	assert.False(t, ok)
	assert.NoError(t, r.Stop())
	assert.False(t, b.unregistered)
}

func TestStartBinderFailure(t *testing.T) {
	r := NewRegistrar(&fakeWindow{}, func(Chord) (Binding, error) {
		return nil, errors.New("modifier not supported")
	})

	err := r.Start(context.Background(), mustParse(t, "Ctrl+Space"))
	assert.ErrorContains(t, err, "modifier not supported")
}

func TestStartTwiceFails(t *testing.T) {
	b := &fakeBinding{down: make(chan struct{})}
	r := NewRegistrar(&fakeWindow{}, fakeBinder(b, nil))

	require.NoError(t, r.Start(context.Background(), mustParse(t, "Ctrl+Space")))
	defer r.Stop()

	assert.Error(t, r.Start(context.Background(), mustParse(t, "Ctrl+K")))
	c, ok := r.Chord()
	assert.True(t, ok)
	assert.Equal(t, "Ctrl+Space", c.String())
}

func TestStopUnregisters(t *testing.T) {
	b := &fakeBinding{down: make(chan struct{})}
	w := &fakeWindow{}
	r := NewRegistrar(w, fakeBinder(b, nil))

	require.NoError(t, r.Start(context.Background(), mustParse(t, "Ctrl+Space")))
	require.NoError(t, r.Stop())
	assert.True(t, b.unregistered)

	_, ok := r.Chord()
	assert.False(t, ok)
	assert.NoError(t, r.Stop(), "second stop is a no-op")
}

func TestContextCancelStopsListener(t *testing.T) {
	b := &fakeBinding{down: make(chan struct{})}
	w := &fakeWindow{}
	r := NewRegistrar(w, fakeBinder(b, nil))

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, r.Start(ctx, mustParse(t, "Ctrl+Space")))
	cancel()

	r.mu.Lock()
	done := r.done
	r.mu.Unlock()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("listener did not exit after context cancel")
	}

	require.NoError(t, r.Stop())
	assert.Empty(t, w.events)
}
