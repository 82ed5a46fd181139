package poll

import "sync"

// channel holds the latest value of one observable facet of a Store and the
// callbacks registered on it. Delivery is serialized so a subscriber never
// observes updates out of order; callbacks must not subscribe to the same
// channel from inside a delivery.
type channel[V any] struct {
	mu    sync.Mutex
	value V
	next  uint64
	subs  map[uint64]func(V)

	deliver sync.Mutex
}

func newChannel[V any](initial V) *channel[V] {
	return &channel[V]{
		value: initial,
		subs:  make(map[uint64]func(V)),
	}
}

func (c *channel[V]) get() V {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *channel[V]) set(v V) {
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()
}

// subscribe registers fn and immediately hands it the current value.
func (c *channel[V]) subscribe(fn func(V)) func() {
	if fn == nil {
		return func() {}
	}

	c.deliver.Lock()
	c.mu.Lock()
	id := c.next
	c.next++
	c.subs[id] = fn
	current := c.value
	c.mu.Unlock()
	fn(current)
	c.deliver.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}

// publish hands the current value to every registered callback.
func (c *channel[V]) publish() {
	c.deliver.Lock()
	defer c.deliver.Unlock()

	c.mu.Lock()
	current := c.value
	fns := make([]func(V), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(current)
	}
}

func (c *channel[V]) subscribers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}
