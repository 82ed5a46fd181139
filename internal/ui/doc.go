// Package ui renders the armview dashboard with Bubble Tea.
//
// The program has five views: Dashboard, Drives, Jobs, Notifications and
// Transcoder. Each view reads one feed from internal/state. The dashboard
// feed runs for the whole session because the header summarises it; the
// other feeds poll only while their view is shown.
//
// Store subscriptions never touch the model directly. They post a cue on a
// buffered channel, the program receives it as a feedMsg, and Update takes a
// fresh snapshot of every feed. Terminal focus reports drive the shared
// activity toggle, so polling pauses while the terminal is in the background.
//
// A failed refresh leaves the last good rows in place and adds a banner line
// naming the feed and the error.
//
// Colors come from a scheme (schemes.go) resolved for light or dark mode.
// Both are persisted through internal/prefs.
package ui
