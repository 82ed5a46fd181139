package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/armview/internal/arm"
	"github.com/five82/armview/internal/poll"
	"github.com/five82/armview/internal/state"
)

// feedMsg reports that a feed published a value, loading flag or error.
type feedMsg struct {
	feed string
}

// feedStatus is the non-value part of a feed the views render.
type feedStatus struct {
	Loading bool
	Err     string
	Health  state.Health
}

// snapshot is a consistent copy of every feed taken on the program goroutine.
type snapshot struct {
	Dashboard     arm.DashboardData
	Drives        []arm.Drive
	Jobs          arm.JobListResponse
	Notifications []arm.Notification
	Transcoder    arm.TranscoderStats

	Offline bool
	status  map[string]feedStatus
}

// Status returns the loading, error and health state of the named feed.
func (s snapshot) Status(feed string) feedStatus {
	return s.status[feed]
}

// AnyLoading reports whether any feed has a fetch in flight.
func (s snapshot) AnyLoading() bool {
	for _, st := range s.status {
		if st.Loading {
			return true
		}
	}
	return false
}

func takeSnapshot(f *state.Feeds) snapshot {
	if f == nil {
		return snapshot{Dashboard: arm.EmptyDashboard(), status: map[string]feedStatus{}}
	}
	snap := snapshot{
		Dashboard:     f.Dashboard.Value(),
		Drives:        f.Drives.Value(),
		Jobs:          f.Jobs.Value(),
		Notifications: f.Notifications.Value(),
		Transcoder:    f.Transcoder.Value(),
		Offline:       f.Offline(),
		status:        make(map[string]feedStatus, 5),
	}
	record := func(name string, loading bool, err string) {
		snap.status[name] = feedStatus{Loading: loading, Err: err, Health: f.Health(name)}
	}
	record(state.FeedDashboard, f.Dashboard.Loading(), f.Dashboard.Err())
	record(state.FeedDrives, f.Drives.Loading(), f.Drives.Err())
	record(state.FeedJobs, f.Jobs.Loading(), f.Jobs.Err())
	record(state.FeedNotifications, f.Notifications.Loading(), f.Notifications.Err())
	record(state.FeedTranscoder, f.Transcoder.Loading(), f.Transcoder.Err())
	return snap
}

// bridge forwards store notifications into the program as feedMsg values.
// Notifications are only cues to re-snapshot, so a full queue drops them.
type bridge struct {
	updates chan tea.Msg
	unsubs  []func()
}

func newBridge(f *state.Feeds) *bridge {
	b := &bridge{updates: make(chan tea.Msg, updateBuffer)}
	if f == nil {
		return b
	}
	watch(b, f.Dashboard)
	watch(b, f.Drives)
	watch(b, f.Jobs)
	watch(b, f.Notifications)
	watch(b, f.Transcoder)
	return b
}

func watch[T any](b *bridge, s *poll.Store[T]) {
	name := s.Name()
	b.unsubs = append(b.unsubs,
		s.SubscribeValue(func(T) { b.notify(name) }),
		s.SubscribeLoading(func(bool) { b.notify(name) }),
		s.SubscribeError(func(string) { b.notify(name) }),
	)
}

func (b *bridge) notify(feed string) {
	select {
	case b.updates <- feedMsg{feed: feed}:
	default:
	}
}

// wait returns a command that blocks for the next notification.
func (b *bridge) wait() tea.Cmd {
	return func() tea.Msg {
		return <-b.updates
	}
}

// Close drops every store subscription.
func (b *bridge) Close() {
	for _, unsub := range b.unsubs {
		unsub()
	}
	b.unsubs = nil
}
