package poll

import (
	"context"
	"time"

	"github.com/zoobzio/clockz"
	"go.uber.org/zap"
)

// DefaultInterval applies when New is given a non-positive interval.
const DefaultInterval = 5 * time.Second

// Option configures a Store.
type Option func(*options)

type options struct {
	clock    clockz.Clock
	activity ActivitySignal
	logger   *zap.Logger
	name     string
	ctx      context.Context
	timeout  time.Duration
}

func defaultOptions() options {
	return options{
		clock:    clockz.RealClock,
		activity: AlwaysActive(),
		logger:   zap.NewNop(),
		name:     "feed",
		ctx:      context.Background(),
	}
}

// WithClock sets the time source for the refresh ticker.
// Use this with clockz.FakeClock for deterministic scheduling tests.
func WithClock(clock clockz.Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithActivity sets the signal that suspends and resumes scheduling.
func WithActivity(signal ActivitySignal) Option {
	return func(o *options) {
		if signal != nil {
			o.activity = signal
		}
	}
}

// WithLogger sets the logger used for refresh failures and lifecycle changes.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName labels the store in logs and events.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithContext sets the context handed to scheduled fetches. Stop does not
// cancel it; cancelling it aborts in-flight and future scheduled fetches.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithTimeout bounds each fetch with a deadline. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}
