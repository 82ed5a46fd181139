package arm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Fetcher defines the read-only ARM endpoints the dashboard polls.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchDashboard(ctx context.Context) (DashboardData, error)
	FetchDrives(ctx context.Context) ([]Drive, error)
	FetchJobs(ctx context.Context, query JobQuery) (JobListResponse, error)
	FetchNotifications(ctx context.Context) ([]Notification, error)
	FetchTranscoderStats(ctx context.Context) (TranscoderStats, error)
	FetchTranscoderJobs(ctx context.Context, query TranscoderJobQuery) (TranscoderJobListResponse, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the ARM HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultBaseURL is where a stock ARM install listens.
	DefaultBaseURL   = "http://127.0.0.1:8090"
	defaultUserAgent = "armview/0.1"
	requestTimeout   = 5 * time.Second

	// maxErrorBody bounds how much of an error response is read for a detail.
	maxErrorBody = 64 << 10
)

// ClientOption customises a Client.
type ClientOption func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient builds a Client for the ARM instance at baseURL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalised API root.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// FetchDashboard retrieves the aggregated dashboard payload.
func (c *Client) FetchDashboard(ctx context.Context) (DashboardData, error) {
	if c == nil {
		return DashboardData{}, fmt.Errorf("client is nil")
	}
	var payload DashboardData
	if err := c.do(ctx, "/api/dashboard", &payload); err != nil {
		return DashboardData{}, err
	}
	return payload, nil
}

// FetchDrives retrieves every known optical drive.
func (c *Client) FetchDrives(ctx context.Context) ([]Drive, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Drive
	if err := c.do(ctx, "/api/drives", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// JobQuery configures /api/jobs requests. Zero fields are omitted.
type JobQuery struct {
	Page      int
	PerPage   int
	Status    string
	Search    string
	VideoType string
}

func (q JobQuery) values() url.Values {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if status := strings.TrimSpace(q.Status); status != "" {
		values.Set("status", status)
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		values.Set("search", search)
	}
	if vt := strings.TrimSpace(q.VideoType); vt != "" {
		values.Set("video_type", vt)
	}
	return values
}

// FetchJobs retrieves one page of the job history.
func (c *Client) FetchJobs(ctx context.Context, query JobQuery) (JobListResponse, error) {
	if c == nil {
		return JobListResponse{}, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/api/jobs", RawQuery: query.values().Encode()}
	var payload JobListResponse
	if err := c.doURL(ctx, rel, &payload); err != nil {
		return JobListResponse{}, err
	}
	return payload, nil
}

// FetchJob retrieves a job with its tracks and config.
func (c *Client) FetchJob(ctx context.Context, id int64) (JobDetail, error) {
	if c == nil {
		return JobDetail{}, fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return JobDetail{}, fmt.Errorf("job id required")
	}
	var payload JobDetail
	if err := c.do(ctx, "/api/jobs/"+strconv.FormatInt(id, 10), &payload); err != nil {
		return JobDetail{}, err
	}
	return payload, nil
}

// FetchJobProgress retrieves rip progress for a running job.
func (c *Client) FetchJobProgress(ctx context.Context, id int64) (RipProgress, error) {
	if c == nil {
		return RipProgress{}, fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return RipProgress{}, fmt.Errorf("job id required")
	}
	var payload RipProgress
	if err := c.do(ctx, "/api/jobs/"+strconv.FormatInt(id, 10)+"/progress", &payload); err != nil {
		return RipProgress{}, err
	}
	return payload, nil
}

// FetchNotifications retrieves the uncleared notifications.
func (c *Client) FetchNotifications(ctx context.Context) ([]Notification, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Notification
	if err := c.do(ctx, "/api/notifications", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchTranscoderStats retrieves the transcoder queue summary.
func (c *Client) FetchTranscoderStats(ctx context.Context) (TranscoderStats, error) {
	if c == nil {
		return TranscoderStats{}, fmt.Errorf("client is nil")
	}
	var payload TranscoderStats
	if err := c.do(ctx, "/api/transcoder/stats", &payload); err != nil {
		return TranscoderStats{}, err
	}
	return payload, nil
}

// TranscoderJobQuery configures /api/transcoder/jobs requests.
type TranscoderJobQuery struct {
	Status string
	Limit  int
	Offset int
}

// FetchTranscoderJobs retrieves transcoder jobs.
func (c *Client) FetchTranscoderJobs(ctx context.Context, query TranscoderJobQuery) (TranscoderJobListResponse, error) {
	if c == nil {
		return TranscoderJobListResponse{}, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	if status := strings.TrimSpace(query.Status); status != "" {
		values.Set("status", status)
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Offset > 0 {
		values.Set("offset", strconv.Itoa(query.Offset))
	}
	rel := &url.URL{Path: "/api/transcoder/jobs", RawQuery: values.Encode()}
	var payload TranscoderJobListResponse
	if err := c.doURL(ctx, rel, &payload); err != nil {
		return TranscoderJobListResponse{}, err
	}
	return payload, nil
}

// FetchLogs lists the log files on the ARM host.
func (c *Client) FetchLogs(ctx context.Context) ([]LogFile, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []LogFile
	if err := c.do(ctx, "/api/logs", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// LogMode selects how much of a log file is returned.
type LogMode string

const (
	LogModeTail LogMode = "tail"
	LogModeFull LogMode = "full"
)

// FetchLogContent retrieves a log file. An empty mode means tail and a
// non-positive lines value means 100.
func (c *Client) FetchLogContent(ctx context.Context, filename string, mode LogMode, lines int) (LogContent, error) {
	return c.fetchLogContent(ctx, "/api/logs/", filename, mode, lines)
}

// FetchTranscoderLogs lists the log files on the transcoder host.
func (c *Client) FetchTranscoderLogs(ctx context.Context) ([]LogFile, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []LogFile
	if err := c.do(ctx, "/api/transcoder/logs", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchTranscoderLogContent retrieves a transcoder log file with the same
// defaults as FetchLogContent.
func (c *Client) FetchTranscoderLogContent(ctx context.Context, filename string, mode LogMode, lines int) (LogContent, error) {
	return c.fetchLogContent(ctx, "/api/transcoder/logs/", filename, mode, lines)
}

func (c *Client) fetchLogContent(ctx context.Context, prefix, filename string, mode LogMode, lines int) (LogContent, error) {
	if c == nil {
		return LogContent{}, fmt.Errorf("client is nil")
	}
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return LogContent{}, fmt.Errorf("log filename required")
	}
	if mode == "" {
		mode = LogModeTail
	}
	if lines <= 0 {
		lines = 100
	}
	values := url.Values{}
	values.Set("mode", string(mode))
	values.Set("lines", strconv.Itoa(lines))
	rel := &url.URL{
		Path:     prefix + filename,
		RawPath:  prefix + url.PathEscape(filename),
		RawQuery: values.Encode(),
	}
	var payload LogContent
	if err := c.doMethod(ctx, http.MethodGet, rel, &payload); err != nil {
		return LogContent{}, err
	}
	return payload, nil
}

// FetchSettings retrieves the ARM and transcoder configuration.
func (c *Client) FetchSettings(ctx context.Context) (SettingsData, error) {
	if c == nil {
		return SettingsData{}, fmt.Errorf("client is nil")
	}
	var payload SettingsData
	if err := c.do(ctx, "/api/settings", &payload); err != nil {
		return SettingsData{}, err
	}
	return payload, nil
}

// JobAction is a POST action on /api/jobs/{id}/{action}.
type JobAction string

const (
	JobAbandon        JobAction = "abandon"
	JobCancel         JobAction = "cancel"
	JobStart          JobAction = "start"
	JobPause          JobAction = "pause"
	JobFixPermissions JobAction = "fix-permissions"
	JobRetranscode    JobAction = "retranscode"
)

// ActionResult is the acknowledgement ARM returns for a job or transcoder
// action. Endpoints that reply with an empty body leave it zero.
type ActionResult struct {
	Success *bool  `json:"success,omitempty"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

// RunJobAction posts action for job id.
func (c *Client) RunJobAction(ctx context.Context, id int64, action JobAction) (ActionResult, error) {
	if c == nil {
		return ActionResult{}, fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return ActionResult{}, fmt.Errorf("job id required")
	}
	switch action {
	case JobAbandon, JobCancel, JobStart, JobPause, JobFixPermissions, JobRetranscode:
	default:
		return ActionResult{}, fmt.Errorf("unknown job action %q", action)
	}
	path := "/api/jobs/" + strconv.FormatInt(id, 10) + "/" + string(action)
	return c.action(ctx, http.MethodPost, path)
}

// DeleteJob removes job id from ARM's database.
func (c *Client) DeleteJob(ctx context.Context, id int64) (ActionResult, error) {
	if c == nil {
		return ActionResult{}, fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return ActionResult{}, fmt.Errorf("job id required")
	}
	return c.action(ctx, http.MethodDelete, "/api/jobs/"+strconv.FormatInt(id, 10))
}

// RetryTranscoderJob requeues a failed transcoder job.
func (c *Client) RetryTranscoderJob(ctx context.Context, id int64) (ActionResult, error) {
	if c == nil {
		return ActionResult{}, fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return ActionResult{}, fmt.Errorf("transcoder job id required")
	}
	return c.action(ctx, http.MethodPost, "/api/transcoder/jobs/"+strconv.FormatInt(id, 10)+"/retry")
}

// DeleteTranscoderJob removes a transcoder job.
func (c *Client) DeleteTranscoderJob(ctx context.Context, id int64) (ActionResult, error) {
	if c == nil {
		return ActionResult{}, fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return ActionResult{}, fmt.Errorf("transcoder job id required")
	}
	return c.action(ctx, http.MethodDelete, "/api/transcoder/jobs/"+strconv.FormatInt(id, 10))
}

func (c *Client) action(ctx context.Context, method, path string) (ActionResult, error) {
	var payload ActionResult
	if err := c.doMethod(ctx, method, &url.URL{Path: path}, &payload); err != nil {
		return ActionResult{}, err
	}
	if payload.Success != nil && !*payload.Success {
		msg := strings.TrimSpace(payload.Message)
		if msg == "" {
			msg = "action rejected"
		}
		return payload, &APIError{StatusCode: http.StatusOK, Message: msg}
	}
	return payload, nil
}

func (c *Client) do(ctx context.Context, path string, dest any) error {
	return c.doMethod(ctx, http.MethodGet, &url.URL{Path: path}, dest)
}

func (c *Client) doURL(ctx context.Context, rel *url.URL, dest any) error {
	return c.doMethod(ctx, http.MethodGet, rel, dest)
}

// doMethod sends a bodyless request. For anything but GET an empty response
// body is accepted and leaves dest untouched.
func (c *Client) doMethod(ctx context.Context, method string, rel *url.URL, dest any) error {
	if ctx == nil {
		ctx = context.Background()
	}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		if method != http.MethodGet && errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("API %d: %s", resp.StatusCode, statusText(resp)),
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		return apiErr
	}
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if json.Unmarshal(body, &payload) != nil {
		return apiErr
	}
	if detail := detailMessage(payload.Detail); detail != "" {
		apiErr.Message = detail
	}
	return apiErr
}

// detailMessage accepts a string detail as-is and renders any other non-null
// JSON value compactly.
func detailMessage(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return strings.TrimSpace(text)
	}
	if bytes.Equal(raw, []byte("false")) || bytes.Equal(raw, []byte(`0`)) {
		return ""
	}
	return string(raw)
}

func statusText(resp *http.Response) string {
	// resp.Status is "404 Not Found"; prefer the server's reason phrase.
	if _, reason, ok := strings.Cut(resp.Status, " "); ok && reason != "" {
		return reason
	}
	return http.StatusText(resp.StatusCode)
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse arm_url %q: %w", baseURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse arm_url %q: missing host", baseURL)
	}
	u.Path = ""
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
