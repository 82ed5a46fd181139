package poll

import "github.com/zoobzio/capitan"

// Refresh outcome signals.
var (
	// RefreshSucceeded is emitted when a fetch completes and the value is published.
	RefreshSucceeded = capitan.NewSignal(
		"armview.poll.refresh.succeeded",
		"Feed refresh succeeded",
	)

	// RefreshFailed is emitted when a fetch fails; the previous value is retained.
	RefreshFailed = capitan.NewSignal(
		"armview.poll.refresh.failed",
		"Feed refresh failed",
	)

	// RefreshDropped is emitted when a refresh is requested while one is in flight.
	RefreshDropped = capitan.NewSignal(
		"armview.poll.refresh.dropped",
		"Feed refresh dropped while another was in flight",
	)
)

// Scheduling lifecycle signals.
var (
	// Started is emitted when a store is activated.
	Started = capitan.NewSignal(
		"armview.poll.started",
		"Feed polling started",
	)

	// Stopped is emitted when a store is deactivated.
	Stopped = capitan.NewSignal(
		"armview.poll.stopped",
		"Feed polling stopped",
	)

	// Suspended is emitted when the activity signal goes inactive.
	Suspended = capitan.NewSignal(
		"armview.poll.suspended",
		"Feed polling suspended",
	)

	// Resumed is emitted when the activity signal comes back.
	Resumed = capitan.NewSignal(
		"armview.poll.resumed",
		"Feed polling resumed",
	)
)

// Field keys for poll events.
var (
	// KeyFeed is the store's name.
	KeyFeed = capitan.NewStringKey("feed")

	// KeyError is the failure message of a refresh.
	KeyError = capitan.NewStringKey("error")

	// KeyDuration is how long the fetch took.
	KeyDuration = capitan.NewDurationKey("duration")

	// KeyState is the scheduling state after a transition.
	KeyState = capitan.NewStringKey("state")
)
