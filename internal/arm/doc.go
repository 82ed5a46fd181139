// Package arm provides an HTTP client for the Automatic Ripping Machine API.
//
// # Overview
//
// The client covers the read-only endpoints the dashboard polls. Every
// Fetch method takes a context and returns a typed payload, so a method value
// with no extra arguments can be handed straight to poll.New:
//
//	client, err := arm.NewClient("http://127.0.0.1:8090")
//	if err != nil {
//		return err
//	}
//	store := poll.New(client.FetchDashboard, arm.EmptyDashboard(), 5*time.Second)
//
// # API Endpoints
//
//   - GET /api/dashboard: active jobs, drive names, system and transcoder summary
//   - GET /api/drives: optical drives with their current job
//   - GET /api/jobs, /api/jobs/{id}, /api/jobs/{id}/progress: job history and detail
//   - GET /api/notifications: uncleared notifications
//   - GET /api/transcoder/stats, /api/transcoder/jobs: transcoder queue
//   - GET /api/logs, /api/logs/{name}: log files
//   - GET /api/settings: ARM and transcoder configuration
//
// # Request Handling
//
// All requests set Accept: application/json, a User-Agent of armview/<ver>
// and a fresh X-Request-ID so a request can be found in the ARM server log.
//
// # Error Handling
//
// Any non-2xx response becomes an *APIError. Its message is "API <code>:
// <reason>" unless the body is JSON with a non-empty "detail", in which case
// the detail is the message. Transport failures are wrapped as
// "execute request: ..." and malformed bodies as "decode response: ...".
//
// # Timestamps
//
// ARM emits ISO 8601 timestamps with or without an offset, and occasionally
// the bare database form "2006-01-02 15:04:05". ParseTime accepts all of
// them and returns the zero time for anything else.
package arm
