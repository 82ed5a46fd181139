package poll

import "sync"

// ActivitySignal reports whether the consuming context is currently active
// (visible, focused, attached). Subscribers are notified on transitions only;
// Subscribe does not replay the current state.
type ActivitySignal interface {
	Active() bool
	Subscribe(fn func(active bool)) (unsubscribe func())
}

type alwaysActive struct{}

func (alwaysActive) Active() bool { return true }

func (alwaysActive) Subscribe(func(bool)) func() { return func() {} }

// AlwaysActive returns a signal that never transitions.
func AlwaysActive() ActivitySignal { return alwaysActive{} }

// Toggle is a settable ActivitySignal. The zero value is inactive; use
// NewToggle to choose the initial state.
type Toggle struct {
	mu     sync.Mutex
	active bool
	next   uint64
	subs   map[uint64]func(bool)

	notify sync.Mutex
}

// NewToggle returns a Toggle starting in the given state.
func NewToggle(active bool) *Toggle {
	return &Toggle{active: active}
}

// Active reports the current state.
func (t *Toggle) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Set updates the state and notifies subscribers if it changed.
func (t *Toggle) Set(active bool) {
	t.notify.Lock()
	defer t.notify.Unlock()

	t.mu.Lock()
	if t.active == active {
		t.mu.Unlock()
		return
	}
	t.active = active
	fns := make([]func(bool), 0, len(t.subs))
	for _, fn := range t.subs {
		fns = append(fns, fn)
	}
	t.mu.Unlock()

	for _, fn := range fns {
		fn(active)
	}
}

// Subscribe registers fn for future transitions.
func (t *Toggle) Subscribe(fn func(bool)) func() {
	if fn == nil {
		return func() {}
	}
	t.mu.Lock()
	if t.subs == nil {
		t.subs = make(map[uint64]func(bool))
	}
	id := t.next
	t.next++
	t.subs[id] = fn
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.subs, id)
			t.mu.Unlock()
		})
	}
}

// Subscribers returns the number of registered callbacks.
func (t *Toggle) Subscribers() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subs)
}
