// Package logging builds armview's zap logger and bridges poll events into it.
//
// New writes to a file because the terminal belongs to the TUI. JSON is the
// default encoding; LOG_FORMAT=console selects zap's development encoder.
// HookPollEvents registers capitan hooks that log feed lifecycle changes and
// refresh failures.
package logging
