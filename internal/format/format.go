package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/five82/armview/internal/arm"
)

const notAvailable = "N/A"

// dateTimeLayout renders local timestamps for tables and detail panes.
const dateTimeLayout = "Jan 2, 2006 3:04:05 PM"

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// TimeAgo renders how long before now the timestamp value was, in the
// largest whole unit: "42s ago", "5m ago", "3h ago", "2d ago". Empty or
// unparseable values render as "N/A". Future timestamps render as "0s ago".
func TimeAgo(value string, now time.Time) string {
	t := arm.ParseTime(value)
	if t.IsZero() {
		return notAvailable
	}
	seconds := int64(now.Sub(t) / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	if seconds < 60 {
		return fmt.Sprintf("%ds ago", seconds)
	}
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	return fmt.Sprintf("%dd ago", hours/24)
}

// FormatBytes renders n in base-1024 units with at most one decimal place,
// dropping a trailing ".0".
func FormatBytes(n int64) string {
	if n == 0 {
		return "0 B"
	}
	if n < 0 {
		return "-" + FormatBytes(-n)
	}
	value := float64(n)
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}
	text := strconv.FormatFloat(value, 'f', 1, 64)
	text = strings.TrimSuffix(text, ".0")
	return text + " " + byteUnits[unit]
}

// FormatDateTime renders value in the local time zone. Empty values render
// as "N/A" and unparseable ones are returned unchanged.
func FormatDateTime(value string) string {
	if strings.TrimSpace(value) == "" {
		return notAvailable
	}
	t := arm.ParseTime(value)
	if t.IsZero() {
		return value
	}
	return t.Local().Format(dateTimeLayout)
}

// ElapsedTime renders the time between start and now as "2h 5m", "5m 3s" or
// "3s". Empty or unparseable starts render as "N/A".
func ElapsedTime(start string, now time.Time) string {
	t := arm.ParseTime(start)
	if t.IsZero() {
		return notAvailable
	}
	return FormatDuration(now.Sub(t))
}

// FormatDuration renders d the way ElapsedTime does. Negative durations
// render as "0s".
func FormatDuration(d time.Duration) string {
	total := int64(d / time.Second)
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// Truncate shortens a string to the given limit, adding ellipsis if needed.
func Truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
