package ui

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/table"

	"github.com/five82/armview/internal/arm"
	"github.com/five82/armview/internal/state"
)

func TestViewCycle(t *testing.T) {
	if ViewTranscoder.next() != ViewDashboard {
		t.Fatalf("next after transcoder = %v, want dashboard", ViewTranscoder.next())
	}
	if ViewDashboard.prev() != ViewTranscoder {
		t.Fatalf("prev before dashboard = %v, want transcoder", ViewDashboard.prev())
	}
	feeds := map[View]string{
		ViewDashboard:     state.FeedDashboard,
		ViewDrives:        state.FeedDrives,
		ViewJobs:          state.FeedJobs,
		ViewNotifications: state.FeedNotifications,
		ViewTranscoder:    state.FeedTranscoder,
	}
	for v, want := range feeds {
		if v.Feed() != want {
			t.Fatalf("%s.Feed() = %q, want %q", v.Title(), v.Feed(), want)
		}
	}
}

func TestFlexColumns(t *testing.T) {
	cols := flexColumns(100, []table.Column{{Title: "A", Width: 10}, {Title: "B"}, {Title: "C", Width: 20}}, 1)
	// 100 - (12 + 22) - 2
	if cols[1].Width != 64 {
		t.Fatalf("flex width = %d, want 64", cols[1].Width)
	}
	cols = flexColumns(10, []table.Column{{Title: "A", Width: 10}, {Title: "B"}}, 1)
	if cols[1].Width != 12 {
		t.Fatalf("narrow flex width = %d, want minimum 12", cols[1].Width)
	}
}

func TestActiveJobRows(t *testing.T) {
	now := time.Date(2025, 1, 2, 10, 5, 0, 0, time.Local)
	d := arm.DashboardData{
		ActiveJobs: []arm.Job{
			{Title: "Heat", VideoType: "movie", DiscType: "bluray", DevPath: "/dev/sr0", Status: "ripping", StartTime: "2025-01-02 10:00:00"},
			{Label: "DISC_2", DevPath: "/dev/sr1", Status: "waiting"},
		},
		DriveNames: map[string]string{"/dev/sr0": "Top drive"},
	}
	rows := activeJobRows(d, now)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0][0] != "Heat" || rows[0][1] != "Movie" || rows[0][3] != "Top drive" || rows[0][4] != "Ripping" {
		t.Fatalf("row 0 = %v", rows[0])
	}
	if rows[0][5] != "5m 0s" {
		t.Fatalf("elapsed = %q, want 5m 0s", rows[0][5])
	}
	if rows[1][0] != "DISC_2" || rows[1][3] != "sr1" {
		t.Fatalf("row 1 = %v", rows[1])
	}
}

func TestDriveRows(t *testing.T) {
	id := int64(42)
	drives := []arm.Drive{
		{Name: "Top", Maker: "PIONEER", Model: "BDR-XD07", DriveMode: "auto_rip", ReadCD: true, ReadDVD: true, ReadBD: true, CurrentJob: &arm.Job{Title: "Heat"}},
		{Name: "Bottom", JobIDCurrent: &id, Stale: true},
		{},
	}
	rows := driveRows(drives)
	if rows[0][1] != "PIONEER BDR-XD07" || rows[0][2] != "Auto Rip" || rows[0][3] != "CD/DVD/BD" || rows[0][4] != "Heat" {
		t.Fatalf("row 0 = %v", rows[0])
	}
	if rows[1][1] != "(stale)" || rows[1][4] != "Job 42" || rows[1][3] != "-" {
		t.Fatalf("row 1 = %v", rows[1])
	}
	if rows[2][0] != "-" || rows[2][4] != "Idle" || rows[2][5] != "-" {
		t.Fatalf("row 2 = %v", rows[2])
	}
}

func TestJobRowsUseLengthForFinishedJobs(t *testing.T) {
	now := time.Date(2025, 1, 2, 12, 0, 0, 0, time.Local)
	rows := jobRows([]arm.Job{
		{JobID: 7, Title: "Heat", Year: "1995", YearManual: "1996", Status: "success", JobLength: "1:02:03", StartTime: "2025-01-02 10:00:00"},
		{JobID: 8, Status: "active", StartTime: "2025-01-02 11:30:00"},
	}, now)
	if rows[0][0] != "7" || rows[0][2] != "1996" || rows[0][7] != "1:02:03" {
		t.Fatalf("finished row = %v", rows[0])
	}
	if rows[1][1] != "Untitled" || rows[1][2] != "-" || rows[1][7] != "30m 0s" {
		t.Fatalf("active row = %v", rows[1])
	}
}

func TestTranscodeRows(t *testing.T) {
	rows := transcodeRows([]arm.TranscoderJob{
		{ID: 3, InputPath: "/media/raw/Heat (1995)/title_t00.mkv", Status: "transcoding", Progress: 140},
	}, time.Now())
	if rows[0][1] != "title_t00.mkv" || rows[0][3] != "100%" || rows[0][4] != "-" {
		t.Fatalf("row = %v", rows[0])
	}
}

func TestStatPercent(t *testing.T) {
	stats := map[string]any{
		"cpu_percent": 45.0,
		"memory":      map[string]any{"percent": 61.5},
		"storage":     []any{},
	}
	if v, ok := statPercent(stats, "cpu_percent"); !ok || v != 45 {
		t.Fatalf("cpu_percent = %v, %v", v, ok)
	}
	if v, ok := statPercent(stats, "memory.percent"); !ok || v != 61.5 {
		t.Fatalf("memory.percent = %v, %v", v, ok)
	}
	if _, ok := statPercent(stats, "storage.percent"); ok {
		t.Fatalf("storage.percent should not resolve")
	}
	if _, ok := statPercent(nil, "cpu_percent"); ok {
		t.Fatalf("nil stats should not resolve")
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("  ", 10); got != "" {
		t.Fatalf("truncateMiddle blank = %q, want empty", got)
	}
	if got := truncateMiddle("abcd", 2); got != "ab" {
		t.Fatalf("truncateMiddle limit<=3 = %q, want ab", got)
	}
	got := truncateMiddle("/var/log/arm/very_long_logfile_name.log", 20)
	if len([]rune(got)) > 20 {
		t.Fatalf("got %q (%d runes), want <=20", got, len([]rune(got)))
	}
	if got[len(got)-4:] != ".log" {
		t.Fatalf("got %q, want extension kept", got)
	}
}

func TestTitleCase(t *testing.T) {
	if got := titleCase("auto_rip"); got != "Auto Rip" {
		t.Fatalf("titleCase = %q, want Auto Rip", got)
	}
	if got := titleCase(" "); got != "" {
		t.Fatalf("titleCase blank = %q", got)
	}
}
