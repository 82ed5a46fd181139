package ui

import (
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"

	"github.com/five82/armview/internal/arm"
	"github.com/five82/armview/internal/format"
	"github.com/five82/armview/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewDashboard View = iota
	ViewDrives
	ViewJobs
	ViewNotifications
	ViewTranscoder
)

var viewOrder = []View{ViewDashboard, ViewDrives, ViewJobs, ViewNotifications, ViewTranscoder}

// Title returns the tab label.
func (v View) Title() string {
	switch v {
	case ViewDrives:
		return "Drives"
	case ViewJobs:
		return "Jobs"
	case ViewNotifications:
		return "Notifications"
	case ViewTranscoder:
		return "Transcoder"
	default:
		return "Dashboard"
	}
}

// Feed returns the name of the feed the view polls.
func (v View) Feed() string {
	switch v {
	case ViewDrives:
		return state.FeedDrives
	case ViewJobs:
		return state.FeedJobs
	case ViewNotifications:
		return state.FeedNotifications
	case ViewTranscoder:
		return state.FeedTranscoder
	default:
		return state.FeedDashboard
	}
}

func (v View) next() View {
	return viewOrder[(int(v)+1)%len(viewOrder)]
}

func (v View) prev() View {
	return viewOrder[(int(v)+len(viewOrder)-1)%len(viewOrder)]
}

// flexColumns gives the first flex column whatever width the fixed ones leave.
func flexColumns(width int, cols []table.Column, flex int) []table.Column {
	used := 0
	for i, c := range cols {
		if i != flex {
			used += c.Width + 2 // cell padding
		}
	}
	remaining := width - used - 2
	if remaining < 12 {
		remaining = 12
	}
	cols[flex].Width = remaining
	return cols
}

func activeJobColumns(width int) []table.Column {
	return flexColumns(width, []table.Column{
		{Title: "Title", Width: 0},
		{Title: "Type", Width: 8},
		{Title: "Disc", Width: 8},
		{Title: "Drive", Width: 12},
		{Title: "Status", Width: 12},
		{Title: "Elapsed", Width: 10},
	}, 0)
}

func activeJobRows(d arm.DashboardData, now time.Time) []table.Row {
	rows := make([]table.Row, 0, len(d.ActiveJobs))
	for _, j := range d.ActiveJobs {
		drive := d.DriveNames[j.DevPath]
		if drive == "" && j.DevPath != "" {
			drive = path.Base(j.DevPath)
		}
		rows = append(rows, table.Row{
			j.DisplayTitle(),
			format.VideoTypeLabel(j.VideoType),
			format.DiscTypeLabel(j.DiscType),
			orDash(drive),
			titleCase(j.Status),
			format.ElapsedTime(j.StartTime, now),
		})
	}
	return rows
}

func driveColumns(width int) []table.Column {
	return flexColumns(width, []table.Column{
		{Title: "Drive", Width: 12},
		{Title: "Model", Width: 0},
		{Title: "Mode", Width: 10},
		{Title: "Reads", Width: 10},
		{Title: "Current Job", Width: 24},
		{Title: "Mount", Width: 12},
	}, 1)
}

func driveRows(drives []arm.Drive) []table.Row {
	rows := make([]table.Row, 0, len(drives))
	for _, d := range drives {
		model := strings.TrimSpace(d.Maker + " " + d.Model)
		if d.Stale {
			model = strings.TrimSpace(model + " (stale)")
		}
		current := "Idle"
		if d.CurrentJob != nil {
			current = d.CurrentJob.DisplayTitle()
		} else if d.JobIDCurrent != nil {
			current = "Job " + strconv.FormatInt(*d.JobIDCurrent, 10)
		}
		rows = append(rows, table.Row{
			orDash(d.Name),
			orDash(model),
			orDash(titleCase(d.DriveMode)),
			driveCapabilities(d),
			current,
			orDash(d.Mount),
		})
	}
	return rows
}

func driveCapabilities(d arm.Drive) string {
	var caps []string
	if d.ReadCD {
		caps = append(caps, "CD")
	}
	if d.ReadDVD {
		caps = append(caps, "DVD")
	}
	if d.ReadBD {
		caps = append(caps, "BD")
	}
	if len(caps) == 0 {
		return "-"
	}
	return strings.Join(caps, "/")
}

func jobColumns(width int) []table.Column {
	return flexColumns(width, []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Title", Width: 0},
		{Title: "Year", Width: 4},
		{Title: "Type", Width: 8},
		{Title: "Disc", Width: 8},
		{Title: "Status", Width: 12},
		{Title: "Started", Width: 24},
		{Title: "Length", Width: 10},
	}, 1)
}

func jobRows(jobs []arm.Job, now time.Time) []table.Row {
	rows := make([]table.Row, 0, len(jobs))
	for _, j := range jobs {
		length := j.JobLength
		if format.IsJobActive(j.Status) {
			length = format.ElapsedTime(j.StartTime, now)
		}
		year := j.YearManual
		if year == "" {
			year = j.Year
		}
		rows = append(rows, table.Row{
			strconv.FormatInt(j.JobID, 10),
			j.DisplayTitle(),
			orDash(year),
			format.VideoTypeLabel(j.VideoType),
			format.DiscTypeLabel(j.DiscType),
			titleCase(j.Status),
			format.FormatDateTime(j.StartTime),
			orDash(length),
		})
	}
	return rows
}

func notificationColumns(width int) []table.Column {
	return flexColumns(width, []table.Column{
		{Title: "When", Width: 10},
		{Title: "Title", Width: 28},
		{Title: "Message", Width: 0},
		{Title: "Seen", Width: 4},
	}, 2)
}

func notificationRows(items []arm.Notification, now time.Time) []table.Row {
	rows := make([]table.Row, 0, len(items))
	for _, n := range items {
		seen := ""
		if n.Seen {
			seen = "yes"
		}
		rows = append(rows, table.Row{
			format.TimeAgo(n.TriggerTime, now),
			orDash(n.Title),
			strings.Join(strings.Fields(n.Message), " "),
			seen,
		})
	}
	return rows
}

func transcodeColumns(width int) []table.Column {
	return flexColumns(width, []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Input", Width: 0},
		{Title: "Status", Width: 12},
		{Title: "Progress", Width: 8},
		{Title: "Preset", Width: 16},
		{Title: "Started", Width: 10},
	}, 1)
}

func transcodeRows(jobs []arm.TranscoderJob, now time.Time) []table.Row {
	rows := make([]table.Row, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, table.Row{
			strconv.FormatInt(j.ID, 10),
			truncateMiddle(path.Base(j.InputPath), 60),
			titleCase(j.Status),
			fmt.Sprintf("%.0f%%", clampPercent(j.Progress)),
			orDash(j.Preset),
			format.TimeAgo(j.StartedAt, now),
		})
	}
	return rows
}

func clampPercent(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}

// statPercent reads a percentage from the untyped host stats, following a
// dotted key path such as "memory.percent".
func statPercent(stats map[string]any, key string) (float64, bool) {
	var cur any = stats
	for _, part := range strings.Split(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return 0, false
		}
		cur = m[part]
	}
	v, ok := cur.(float64)
	return v, ok
}
