package poll

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
	"go.uber.org/zap"
)

// Fetcher produces the polled value. The store treats it as opaque.
type Fetcher[T any] func(ctx context.Context) (T, error)

// State is a store's scheduling state.
type State int

const (
	StateIdle State = iota
	StateActive
	StateSuspended
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateSuspended:
		return "suspended"
	default:
		return "idle"
	}
}

const unknownError = "unknown error"

// Store keeps the last known value of a remote feed and refreshes it on a
// fixed interval while its consumer is active.
//
// At most one fetch runs at a time; refreshes requested while one is pending
// are dropped. A failed fetch records its message in the error channel and
// leaves the value untouched.
type Store[T any] struct {
	fetch    Fetcher[T]
	interval time.Duration
	name     string
	clock    clockz.Clock
	activity ActivitySignal
	logger   *zap.Logger
	ctx      context.Context
	timeout  time.Duration

	value   *channel[T]
	loading *channel[bool]
	errMsg  *channel[string]

	// flight is non-nil while a refresh is in flight and is closed when it
	// settles. It is the single-flight guard.
	flightMu sync.Mutex
	flight   chan struct{}

	mu       sync.Mutex
	state    State
	gen      uint64
	ticker   clockz.Ticker
	tickStop chan struct{}
	unwatch  func()
}

// New builds an idle store around fetch. The value channel starts at initial.
func New[T any](fetch Fetcher[T], initial T, interval time.Duration, opts ...Option) *Store[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Store[T]{
		fetch:    fetch,
		interval: interval,
		name:     o.name,
		clock:    o.clock,
		activity: o.activity,
		logger:   o.logger.With(zap.String("feed", o.name)),
		ctx:      o.ctx,
		timeout:  o.timeout,
		value:    newChannel(initial),
		loading:  newChannel(false),
		errMsg:   newChannel(""),
	}
}

// Name returns the store's label.
func (s *Store[T]) Name() string { return s.name }

// Interval returns the refresh cadence.
func (s *Store[T]) Interval() time.Duration { return s.interval }

// Value returns the last successfully fetched value, or the initial value.
func (s *Store[T]) Value() T { return s.value.get() }

// Loading reports whether a fetch is in flight.
func (s *Store[T]) Loading() bool { return s.loading.get() }

// Err returns the message of the most recent failed refresh, or "" after a
// success.
func (s *Store[T]) Err() string { return s.errMsg.get() }

// SubscribeValue registers fn for value updates. fn is called at once with the
// current value.
//
// Callbacks run while the refresh that produced the update still holds the
// in-flight guard, so a Refresh issued from inside fn is dropped. Hand it to
// another goroutine that calls Wait first.
func (s *Store[T]) SubscribeValue(fn func(T)) (unsubscribe func()) {
	return s.value.subscribe(fn)
}

// SubscribeLoading registers fn for loading flag updates. The same in-flight
// rule as SubscribeValue applies.
func (s *Store[T]) SubscribeLoading(fn func(bool)) (unsubscribe func()) {
	return s.loading.subscribe(fn)
}

// SubscribeError registers fn for error updates. An empty string means the
// last refresh succeeded. The same in-flight rule as SubscribeValue applies.
func (s *Store[T]) SubscribeError(fn func(string)) (unsubscribe func()) {
	return s.errMsg.subscribe(fn)
}

// State returns the current scheduling state.
func (s *Store[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Refresh fetches and publishes a new value, blocking until the fetch settles.
// If a refresh is already in flight the call returns immediately without
// fetching. A nil ctx uses the store's base context.
func (s *Store[T]) Refresh(ctx context.Context) {
	done, ok := s.acquire()
	if !ok {
		return
	}
	if ctx == nil {
		ctx = s.ctx
	}
	s.run(ctx, done)
}

// Wait blocks until the refresh in flight, if any, has published.
func (s *Store[T]) Wait() {
	s.flightMu.Lock()
	done := s.flight
	s.flightMu.Unlock()
	if done != nil {
		<-done
	}
}

// Start refreshes immediately, arms the interval ticker and begins observing
// the activity signal. Calling Start on a running store re-arms it.
func (s *Store[T]) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.disarmLocked()
	s.unwatchLocked()
	s.gen++
	gen := s.gen

	s.refreshAsyncLocked()
	// Subscribe before sampling so a transition in between is either seen
	// by Active or delivered to onActivity once s.mu is released.
	s.unwatch = s.activity.Subscribe(func(active bool) {
		s.onActivity(gen, active)
	})
	if s.activity.Active() {
		s.armLocked()
		s.state = StateActive
	} else {
		s.state = StateSuspended
	}

	s.logger.Debug("polling started",
		zap.Duration("interval", s.interval),
		zap.String("state", s.state.String()),
	)
	capitan.Emit(s.ctx, Started,
		KeyFeed.Field(s.name),
		KeyState.Field(s.state.String()),
	)
}

// Stop tears down the ticker and the activity subscription. The last
// published value and error are kept, and a refresh already in flight still
// publishes when it settles.
func (s *Store[T]) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.disarmLocked()
	s.unwatchLocked()
	if s.state == StateIdle {
		return
	}
	s.state = StateIdle

	s.logger.Debug("polling stopped")
	capitan.Emit(s.ctx, Stopped, KeyFeed.Field(s.name))
}

func (s *Store[T]) onActivity(gen uint64, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return
	}
	switch {
	case !active && s.state == StateActive:
		s.disarmLocked()
		s.state = StateSuspended
		s.logger.Debug("polling suspended")
		capitan.Emit(s.ctx, Suspended,
			KeyFeed.Field(s.name),
			KeyState.Field(s.state.String()),
		)
	case active && s.state == StateSuspended:
		s.refreshAsyncLocked()
		s.armLocked()
		s.state = StateActive
		s.logger.Debug("polling resumed")
		capitan.Emit(s.ctx, Resumed,
			KeyFeed.Field(s.name),
			KeyState.Field(s.state.String()),
		)
	}
}

func (s *Store[T]) armLocked() {
	s.disarmLocked()
	ticker := s.clock.NewTicker(s.interval)
	stop := make(chan struct{})
	s.ticker = ticker
	s.tickStop = stop
	go s.tickLoop(ticker, stop)
}

func (s *Store[T]) disarmLocked() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	close(s.tickStop)
	s.ticker = nil
	s.tickStop = nil
}

func (s *Store[T]) unwatchLocked() {
	if s.unwatch == nil {
		return
	}
	s.unwatch()
	s.unwatch = nil
}

func (s *Store[T]) tickLoop(ticker clockz.Ticker, stop chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
			s.tick(stop)
		}
	}
}

// tick ignores ticks from a ticker that was torn down while the tick was
// being delivered.
func (s *Store[T]) tick(stop chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tickStop != stop {
		return
	}
	s.refreshAsyncLocked()
}

func (s *Store[T]) refreshAsyncLocked() {
	done, ok := s.acquire()
	if !ok {
		return
	}
	go s.run(s.ctx, done)
}

// acquire takes the in-flight guard. When it returns true the caller owns
// the guard and must call run with the returned channel.
func (s *Store[T]) acquire() (chan struct{}, bool) {
	s.flightMu.Lock()
	if s.flight != nil {
		s.flightMu.Unlock()
		s.logger.Debug("refresh dropped, another is in flight")
		capitan.Emit(s.ctx, RefreshDropped, KeyFeed.Field(s.name))
		return nil, false
	}
	done := make(chan struct{})
	s.flight = done
	s.flightMu.Unlock()
	return done, true
}

func (s *Store[T]) release(done chan struct{}) {
	s.flightMu.Lock()
	s.flight = nil
	s.flightMu.Unlock()
	close(done)
}

func (s *Store[T]) run(ctx context.Context, done chan struct{}) {
	defer s.release(done)

	s.loading.set(true)
	s.loading.publish()

	started := s.clock.Now()
	result, err := s.invoke(ctx)
	elapsed := s.clock.Now().Sub(started)

	if err != nil {
		msg := ErrorMessage(err)
		s.errMsg.set(msg)
		s.loading.set(false)
		s.errMsg.publish()
		s.loading.publish()

		s.logger.Debug("refresh failed", zap.String("error", msg), zap.Duration("duration", elapsed))
		capitan.Emit(s.ctx, RefreshFailed,
			KeyFeed.Field(s.name),
			KeyError.Field(msg),
			KeyDuration.Field(elapsed),
		)
		return
	}

	s.value.set(result)
	s.errMsg.set("")
	s.loading.set(false)
	s.value.publish()
	s.errMsg.publish()
	s.loading.publish()

	s.logger.Debug("refresh succeeded", zap.Duration("duration", elapsed))
	capitan.Emit(s.ctx, RefreshSucceeded,
		KeyFeed.Field(s.name),
		KeyDuration.Field(elapsed),
	)
}

func (s *Store[T]) invoke(ctx context.Context) (result T, err error) {
	if s.fetch == nil {
		return result, errors.New("no fetcher configured")
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fetcher panicked: %v", r)
		}
	}()
	return s.fetch(ctx)
}

// ErrorMessage is the text a failed refresh records: the trimmed error string,
// or "unknown error" when that is empty. A nil error yields "".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return unknownError
	}
	return msg
}
