// Package app is the composition root of armview.
//
// Run loads the config, opens the log file, hooks poll events into the
// logger, builds the ARM client and the feeds, and hands them to the UI. When
// the UI exits every feed is stopped and in-flight refreshes are awaited
// before the logger is flushed.
//
// Startup failures (bad config, unusable log path, malformed arm_url) are
// returned to the caller. Refresh failures after startup never are; the
// feeds record them and the UI shows them over the last good data.
//
// FetchOverview backs the one-shot status command.
package app
