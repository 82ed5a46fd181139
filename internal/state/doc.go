// Package state wires the ARM client into one polling store per feed.
//
// # Overview
//
// NewFeeds replaces the module-level singletons a single-page app would use
// with an explicit set of stores built once at startup:
//
//	feeds := state.NewFeeds(client, state.FeedOptions{
//		Interval: 5 * time.Second,
//		Activity: focus,
//		Logger:   logger,
//	})
//	feeds.Dashboard.Start()
//	defer func() {
//		feeds.StopAll()
//		feeds.Wait()
//	}()
//
// Every store shares the same clock, logger and activity signal, so losing
// terminal focus suspends all running feeds at once.
//
// # Health
//
// Each fetcher is wrapped so its outcome is recorded before the store
// publishes it. Health carries the last attempt and success times, the last
// error and a consecutive failure count. Two or more failures in a row mark
// the feed offline, and Offline reports that for the dashboard feed, which
// runs for the lifetime of the UI.
package state
