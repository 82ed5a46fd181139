package state

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/five82/armview/internal/arm"
	"github.com/five82/armview/internal/poll"
	"github.com/zoobzio/clockz"
	"go.uber.org/zap"
)

// Feed names, also used as store names in logs and events.
const (
	FeedDashboard     = "dashboard"
	FeedDrives        = "drives"
	FeedJobs          = "jobs"
	FeedNotifications = "notifications"
	FeedTranscoder    = "transcoder"
)

// DefaultJobsPerPage is the page size of the jobs feed.
const DefaultJobsPerPage = 25

var errPanicked = errors.New("fetcher panicked")

// Runner is the lifecycle surface shared by every feed store.
type Runner interface {
	Name() string
	Start()
	Stop()
	Refresh(ctx context.Context)
	Wait()
	State() poll.State
	Interval() time.Duration
}

var _ Runner = (*poll.Store[arm.DashboardData])(nil)

// FeedOptions configures the stores built by NewFeeds. Zero values select
// defaults.
type FeedOptions struct {
	Interval    time.Duration
	Timeout     time.Duration
	JobsPerPage int
	Clock       clockz.Clock
	Activity    poll.ActivitySignal
	Logger      *zap.Logger
	Context     context.Context
}

// Feeds owns one polling store per ARM endpoint the dashboard renders.
type Feeds struct {
	Dashboard     *poll.Store[arm.DashboardData]
	Drives        *poll.Store[[]arm.Drive]
	Jobs          *poll.Store[arm.JobListResponse]
	Notifications *poll.Store[[]arm.Notification]
	Transcoder    *poll.Store[arm.TranscoderStats]

	health *healthBook
	order  []Runner
}

// NewFeeds builds idle stores backed by client. Nothing is fetched until a
// store is started or refreshed.
func NewFeeds(client arm.Fetcher, opts FeedOptions) *Feeds {
	clock := opts.Clock
	if clock == nil {
		clock = clockz.RealClock
	}
	perPage := opts.JobsPerPage
	if perPage <= 0 {
		perPage = DefaultJobsPerPage
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = poll.DefaultInterval
	}

	common := []poll.Option{
		poll.WithClock(clock),
		poll.WithActivity(opts.Activity),
		poll.WithLogger(opts.Logger),
		poll.WithContext(opts.Context),
		poll.WithTimeout(opts.Timeout),
	}
	with := func(name string) []poll.Option {
		return append([]poll.Option{poll.WithName(name)}, common...)
	}

	book := newHealthBook(clock)
	f := &Feeds{health: book}

	f.Dashboard = poll.New(
		track(book, FeedDashboard, client.FetchDashboard),
		arm.EmptyDashboard(), interval, with(FeedDashboard)...,
	)
	f.Drives = poll.New(
		track(book, FeedDrives, client.FetchDrives),
		[]arm.Drive{}, interval, with(FeedDrives)...,
	)
	jobsQuery := arm.JobQuery{Page: 1, PerPage: perPage}
	f.Jobs = poll.New(
		track(book, FeedJobs, func(ctx context.Context) (arm.JobListResponse, error) {
			return client.FetchJobs(ctx, jobsQuery)
		}),
		arm.JobListResponse{Jobs: []arm.Job{}, Page: 1, PerPage: perPage}, interval, with(FeedJobs)...,
	)
	f.Notifications = poll.New(
		track(book, FeedNotifications, client.FetchNotifications),
		[]arm.Notification{}, interval, with(FeedNotifications)...,
	)
	f.Transcoder = poll.New(
		track(book, FeedTranscoder, client.FetchTranscoderStats),
		arm.TranscoderStats{}, interval, with(FeedTranscoder)...,
	)

	f.order = []Runner{f.Dashboard, f.Drives, f.Jobs, f.Notifications, f.Transcoder}
	return f
}

// All returns every feed in a stable order.
func (f *Feeds) All() []Runner {
	out := make([]Runner, len(f.order))
	copy(out, f.order)
	return out
}

// Feed returns the feed with the given name, or nil.
func (f *Feeds) Feed(name string) Runner {
	for _, r := range f.order {
		if r.Name() == name {
			return r
		}
	}
	return nil
}

// Health returns the refresh history of the named feed.
func (f *Feeds) Health(name string) Health {
	return f.health.get(name)
}

// Offline reports whether the always-on dashboard feed has lost the API.
func (f *Feeds) Offline() bool {
	return f.health.get(FeedDashboard).IsOffline()
}

// RefreshAll refreshes every feed concurrently and waits for them to settle.
func (f *Feeds) RefreshAll(ctx context.Context) {
	var wg sync.WaitGroup
	for _, r := range f.order {
		wg.Add(1)
		go func(r Runner) {
			defer wg.Done()
			r.Refresh(ctx)
		}(r)
	}
	wg.Wait()
}

// StopAll stops every feed. In-flight refreshes still settle; call Wait to
// block on them.
func (f *Feeds) StopAll() {
	for _, r := range f.order {
		r.Stop()
	}
}

// Wait blocks until no feed has a refresh in flight.
func (f *Feeds) Wait() {
	for _, r := range f.order {
		r.Wait()
	}
}
