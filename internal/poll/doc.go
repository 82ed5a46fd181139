// Package poll provides the refresh primitive that keeps dashboard views in
// sync with the ARM API.
//
// # Overview
//
// A Store wraps a Fetcher with a fixed-interval ticker, a single-flight guard
// and three observable channels (value, loading, error). Consumers subscribe
// to the channels and drive the lifecycle with Start, Stop and Refresh.
//
//	store := poll.New(client.FetchDashboard, arm.DashboardData{}, 5*time.Second,
//		poll.WithName("dashboard"),
//		poll.WithActivity(focus),
//	)
//	unsubscribe := store.SubscribeValue(func(d arm.DashboardData) { render(d) })
//	defer unsubscribe()
//	store.Start()
//	defer store.Stop()
//
// # State machine
//
//	Idle ──Start──> Active ──activity lost──> Suspended
//	  ^               │  ^                        │
//	  └─────Stop──────┘  └──activity regained─────┘ (immediate refresh)
//
// Suspended stores keep no ticker. Stop returns to Idle from either state and
// may be followed by another Start.
//
// # Refresh semantics
//
// Ticks, manual Refresh calls and resume refreshes share one entry point. If
// a fetch is in flight the new request is dropped, not queued, so responses
// can never arrive out of order. A failed fetch sets the error channel and
// leaves the value untouched; the next tick tries again. Stop does not cancel
// an in-flight fetch; it still publishes when it settles.
//
// # Events
//
// Stores emit capitan signals (RefreshSucceeded, RefreshFailed,
// RefreshDropped, Started, Stopped, Suspended, Resumed) carrying KeyFeed and,
// where relevant, KeyError, KeyDuration and KeyState.
package poll
