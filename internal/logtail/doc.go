// Package logtail reads the end of log files and renders armview's JSON log
// lines for the terminal.
//
// # Reading
//
// Read keeps a ring buffer of maxLines entries while scanning the file once,
// so memory is O(maxLines) regardless of file size. A missing file yields no
// lines and no error. Tail does the same for text already in memory, such as
// an ARM log fetched over the API.
//
// # Rendering
//
// armview logs with zap's JSON encoder. FormatLine turns an entry into
//
//	2025-10-08 21:01:05 WARN [dashboard] refresh failed duration=0.25 error="API 500: Internal Server Error"
//
// with the level, feed and fields styled through lipgloss when color is
// requested. Extra fields are sorted by key. Lines that are not JSON objects
// are returned unchanged.
package logtail
