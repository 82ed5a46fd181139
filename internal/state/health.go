package state

import (
	"context"
	"sync"
	"time"

	"github.com/five82/armview/internal/poll"
	"github.com/zoobzio/clockz"
)

// Health summarises recent refresh outcomes for one feed.
type Health struct {
	LastAttempt         time.Time
	LastSuccess         time.Time
	LastError           string
	ConsecutiveFailures int // Number of consecutive failed refreshes
}

// IsOffline returns true when the feed has failed multiple refreshes in a row.
func (h Health) IsOffline() bool {
	return h.ConsecutiveFailures >= 2
}

// HasData reports whether the feed has ever refreshed successfully.
func (h Health) HasData() bool {
	return !h.LastSuccess.IsZero()
}

// healthBook records refresh outcomes per feed name.
type healthBook struct {
	clock clockz.Clock

	mu    sync.RWMutex
	feeds map[string]Health
}

func newHealthBook(clock clockz.Clock) *healthBook {
	return &healthBook{clock: clock, feeds: map[string]Health{}}
}

func (b *healthBook) get(name string) Health {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.feeds[name]
}

func (b *healthBook) record(name string, err error) {
	now := b.clock.Now()

	b.mu.Lock()
	defer b.mu.Unlock()

	h := b.feeds[name]
	h.LastAttempt = now
	if err != nil {
		h.LastError = poll.ErrorMessage(err)
		h.ConsecutiveFailures++
	} else {
		h.LastSuccess = now
		h.LastError = ""
		h.ConsecutiveFailures = 0
	}
	b.feeds[name] = h
}

// track wraps fetch so every outcome is recorded before the store publishes
// it. A panicking fetcher is recorded as a failure and the panic is re-raised
// for the store to recover.
func track[T any](b *healthBook, name string, fetch poll.Fetcher[T]) poll.Fetcher[T] {
	return func(ctx context.Context) (result T, err error) {
		defer func() {
			if r := recover(); r != nil {
				b.record(name, errPanicked)
				panic(r)
			}
		}()
		result, err = fetch(ctx)
		b.record(name, err)
		return result, err
	}
}
