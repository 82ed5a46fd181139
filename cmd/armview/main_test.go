package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

type cliTestEnv struct {
	server     *httptest.Server
	configPath string
	logPath    string

	mu       sync.Mutex
	hits     map[string]int
	requests []string
}

func (e *cliTestEnv) hitCount(path string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hits[path]
}

// writes lists the non-GET requests the server saw as "METHOD path".
func (e *cliTestEnv) writes() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []string
	for _, r := range e.requests {
		if !strings.HasPrefix(r, http.MethodGet+" ") {
			out = append(out, r)
		}
	}
	return out
}

func setupCLITestEnv(t *testing.T, routes map[string]string) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	t.Setenv("HOME", filepath.Join(base, "home"))

	env := &cliTestEnv{hits: map[string]int{}}
	env.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.mu.Lock()
		env.hits[r.URL.Path]++
		env.requests = append(env.requests, r.Method+" "+r.URL.Path)
		env.mu.Unlock()
		body, ok := routes[r.URL.Path]
		if !ok {
			http.Error(w, `{"detail":"not found"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(env.server.Close)

	env.logPath = filepath.Join(base, "armview.log")
	env.configPath = filepath.Join(base, "config.toml")
	cfg := fmt.Sprintf("arm_url = %q\nlog_file = %q\n", env.server.URL, env.logPath)
	if err := os.WriteFile(env.configPath, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return env
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

var overviewRoutes = map[string]string{
	"/api/dashboard": `{
		"db_available": true,
		"ripping_enabled": true,
		"drives_online": 1,
		"notification_count": 1,
		"transcoder_online": true,
		"transcoder_stats": {"pending": 2, "processing": 1, "failed": 0},
		"active_jobs": [{"job_id": 7, "title": "Heat", "video_type": "movie", "status": "ripping", "start_time": "2025-01-02T10:00:00"}],
		"system_info": {"name": "ripper"}
	}`,
	"/api/drives":        `[{"name": "Top", "maker": "PIONEER", "model": "BDR-XD07", "mount": "/mnt/dev/sr0", "job_id_current": 7}]`,
	"/api/notifications": `[{"id": 1, "title": "Rip complete", "message": "Alien finished", "trigger_time": "2025-01-02T09:00:00"}]`,
}

func TestCLIStatus(t *testing.T) {
	env := setupCLITestEnv(t, overviewRoutes)

	out, _, err := runCLI(t, []string{"status"}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	for _, want := range []string{
		"== ARM ==",
		env.server.URL,
		"available",
		"online (2 pending, 1 processing, 0 failed)",
		"ripper",
		"== Active Jobs ==",
		"Heat",
		"== Drives ==",
		"PIONEER BDR-XD07",
		"job 7",
		"== Notifications ==",
		"Rip complete",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("status output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "╭") {
		t.Fatalf("non-terminal output should use the plain table style:\n%s", out)
	}
	for _, path := range []string{"/api/dashboard", "/api/drives", "/api/notifications"} {
		if got := env.hitCount(path); got != 1 {
			t.Fatalf("%s hit %d times, want 1", path, got)
		}
	}
}

func TestCLIStatusJSON(t *testing.T) {
	env := setupCLITestEnv(t, overviewRoutes)

	out, _, err := runCLI(t, []string{"status", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("status --json: %v", err)
	}
	var payload struct {
		Dashboard struct {
			DrivesOnline int `json:"drives_online"`
		} `json:"dashboard"`
		Drives []struct {
			Name string `json:"name"`
		} `json:"drives"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if payload.Dashboard.DrivesOnline != 1 || len(payload.Drives) != 1 || payload.Drives[0].Name != "Top" {
		t.Fatalf("payload = %+v", payload)
	}
}

func TestCLIStatusReportsUnreachableAPI(t *testing.T) {
	env := setupCLITestEnv(t, map[string]string{})

	_, _, err := runCLI(t, []string{"status"}, env.configPath)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "ARM API unreachable at "+env.server.URL) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("err = %v, want API detail", err)
	}
}

func TestCLIPollOverrideIsValidated(t *testing.T) {
	env := setupCLITestEnv(t, overviewRoutes)

	_, _, err := runCLI(t, []string{"--poll", "99999", "status"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "PollSeconds") {
		t.Fatalf("err = %v, want poll validation failure", err)
	}
}

func TestCLILogLocal(t *testing.T) {
	env := setupCLITestEnv(t, nil)

	out, _, err := runCLI(t, []string{"log"}, env.configPath)
	if err != nil {
		t.Fatalf("log on empty file: %v", err)
	}
	if !strings.Contains(out, "No log entries") {
		t.Fatalf("out = %q, want empty notice", out)
	}

	if err := os.WriteFile(env.logPath, []byte("first\nsecond\nthird\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	out, _, err = runCLI(t, []string{"log", "-n", "2"}, env.configPath)
	if err != nil {
		t.Fatalf("log -n 2: %v", err)
	}
	if strings.Contains(out, "first") || !strings.Contains(out, "second") || !strings.Contains(out, "third") {
		t.Fatalf("out = %q, want last two lines", out)
	}
}

func TestCLILogRemote(t *testing.T) {
	env := setupCLITestEnv(t, map[string]string{
		"/api/logs":         `[{"filename": "arm.log", "size": 2048, "modified": "2025-01-02T10:00:00"}]`,
		"/api/logs/arm.log": `{"filename": "arm.log", "content": "a\nb\nc\n", "lines": 3}`,
	})

	out, _, err := runCLI(t, []string{"log", "--list"}, env.configPath)
	if err != nil {
		t.Fatalf("log --list: %v", err)
	}
	if !strings.Contains(out, "arm.log") || !strings.Contains(out, "2 KB") {
		t.Fatalf("list output = %q", out)
	}

	out, _, err = runCLI(t, []string{"log", "--remote", "arm.log", "-n", "2"}, env.configPath)
	if err != nil {
		t.Fatalf("log --remote: %v", err)
	}
	if out != "b\nc\n" {
		t.Fatalf("remote output = %q, want last two lines", out)
	}

	_, _, err = runCLI(t, []string{"log", "--remote", "missing.log"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "fetch log missing.log") {
		t.Fatalf("err = %v, want missing log failure", err)
	}
}

func TestCLIJob(t *testing.T) {
	env := setupCLITestEnv(t, map[string]string{
		"/api/jobs/7": `{
			"job_id": 7, "title": "Heat", "year": "1995", "status": "ripping",
			"video_type": "movie", "disctype": "bluray", "devpath": "/dev/sr0",
			"tracks": [{"track_number": "0", "length": 10230, "aspect_ratio": "16:9", "main_feature": true, "filename": "title_t00.mkv"}]
		}`,
		"/api/jobs/7/progress": `{"progress": 42.5, "stage": "ripping", "tracks_total": 3, "tracks_ripped": 1}`,
	})

	out, _, err := runCLI(t, []string{"job", "7"}, env.configPath)
	if err != nil {
		t.Fatalf("job 7: %v", err)
	}
	for _, want := range []string{"== Job 7 ==", "Heat", "1995", "42.5% (1/3 tracks)", "== Tracks ==", "2h 50m", "title_t00.mkv"} {
		if !strings.Contains(out, want) {
			t.Fatalf("job output missing %q:\n%s", want, out)
		}
	}

	if _, _, err := runCLI(t, []string{"job", "abc"}, env.configPath); err == nil {
		t.Fatalf("expected invalid id error")
	}
}

func TestCLISettings(t *testing.T) {
	env := setupCLITestEnv(t, map[string]string{
		"/api/settings": `{"arm_config": {"RIPMETHOD": "mkv", "MAINFEATURE": null, "SKIP_TRANSCODE": "true"}, "transcoder_config": {}}`,
	})

	out, _, err := runCLI(t, []string{"settings", "--filter", "main"}, env.configPath)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if !strings.Contains(out, "MAINFEATURE") || !strings.Contains(out, "null") || strings.Contains(out, "RIPMETHOD") {
		t.Fatalf("settings output = %q", out)
	}
}

func TestCLIJobActions(t *testing.T) {
	env := setupCLITestEnv(t, map[string]string{
		"/api/jobs/7":         `{"job_id": 7, "title": "Heat", "status": "success", "tracks": []}`,
		"/api/jobs/7/abandon": `{"success": true, "message": "Job 7 abandoned"}`,
		"/api/jobs/7/pause":   `{"success": false, "message": "Job is not waiting"}`,
		"/api/jobs/8":         `{"success": true}`,
	})

	out, _, err := runCLI(t, []string{"job", "7", "--abandon"}, env.configPath)
	if err != nil {
		t.Fatalf("job --abandon: %v", err)
	}
	if !strings.HasPrefix(out, "Job 7: Job 7 abandoned\n") || !strings.Contains(out, "== Job 7 ==") {
		t.Fatalf("abandon output = %q, want acknowledgement then the refreshed job", out)
	}

	_, _, err = runCLI(t, []string{"job", "7", "--pause"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "Job is not waiting") {
		t.Fatalf("err = %v, want rejected pause", err)
	}

	out, _, err = runCLI(t, []string{"job", "8", "--delete"}, env.configPath)
	if err != nil {
		t.Fatalf("job --delete: %v", err)
	}
	if out != "Job 8: deleted ok\n" {
		t.Fatalf("delete output = %q", out)
	}
	if got := env.hitCount("/api/jobs/8"); got != 1 {
		t.Fatalf("job 8 hits = %d, want 1 (no refetch after delete)", got)
	}

	if _, _, err := runCLI(t, []string{"job", "7", "--start", "--cancel"}, env.configPath); err == nil {
		t.Fatalf("expected conflicting action flags to fail")
	}

	want := []string{"POST /api/jobs/7/abandon", "POST /api/jobs/7/pause", "DELETE /api/jobs/8"}
	got := env.writes()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("writes = %v, want %v", got, want)
	}
}

func TestCLITranscoder(t *testing.T) {
	env := setupCLITestEnv(t, map[string]string{
		"/api/transcoder/jobs": `{"jobs": [
			{"id": 3, "input_path": "/raw/Heat.mkv", "status": "failed", "progress": 12, "created_at": "2025-01-02T10:00:00"}
		], "total": 4}`,
		"/api/transcoder/jobs/3/retry": `{"status": "pending"}`,
		"/api/transcoder/jobs/3":       `{"success": true, "message": "Transcoder job 3 removed"}`,
	})

	out, _, err := runCLI(t, []string{"transcoder", "jobs", "--status", "failed"}, env.configPath)
	if err != nil {
		t.Fatalf("transcoder jobs: %v", err)
	}
	for _, want := range []string{"/raw/Heat.mkv", "failed", "12%", "1 of 4 jobs"} {
		if !strings.Contains(out, want) {
			t.Fatalf("jobs output missing %q:\n%s", want, out)
		}
	}

	out, _, err = runCLI(t, []string{"transcoder", "retry", "3"}, env.configPath)
	if err != nil {
		t.Fatalf("transcoder retry: %v", err)
	}
	if out != "Transcoder job 3: retry ok\n" {
		t.Fatalf("retry output = %q", out)
	}

	out, _, err = runCLI(t, []string{"transcoder", "delete", "3"}, env.configPath)
	if err != nil {
		t.Fatalf("transcoder delete: %v", err)
	}
	if out != "Transcoder job 3: Transcoder job 3 removed\n" {
		t.Fatalf("delete output = %q", out)
	}

	want := []string{"POST /api/transcoder/jobs/3/retry", "DELETE /api/transcoder/jobs/3"}
	if got := env.writes(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("writes = %v, want %v", got, want)
	}
}

func TestCLILogTranscoder(t *testing.T) {
	env := setupCLITestEnv(t, map[string]string{
		"/api/transcoder/logs":            `[{"filename": "worker.log", "size": 1024, "modified": "2025-01-02T10:00:00"}]`,
		"/api/transcoder/logs/worker.log": `{"filename": "worker.log", "content": "x\ny\n", "lines": 2}`,
	})

	out, _, err := runCLI(t, []string{"log", "--list", "--transcoder"}, env.configPath)
	if err != nil {
		t.Fatalf("log --list --transcoder: %v", err)
	}
	if !strings.Contains(out, "worker.log") {
		t.Fatalf("list output = %q", out)
	}

	out, _, err = runCLI(t, []string{"log", "--remote", "worker.log", "--transcoder"}, env.configPath)
	if err != nil {
		t.Fatalf("log --remote --transcoder: %v", err)
	}
	if out != "x\ny\n" {
		t.Fatalf("remote output = %q", out)
	}
	if got := env.hitCount("/api/logs"); got != 0 {
		t.Fatalf("ARM log list hits = %d, want 0", got)
	}

	if _, _, err := runCLI(t, []string{"log", "--transcoder"}, env.configPath); err == nil {
		t.Fatalf("expected --transcoder without a source to fail")
	}
}
