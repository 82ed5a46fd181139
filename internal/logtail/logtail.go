package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Read returns at most maxLines from the end of the file at path.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Tail returns the last maxLines lines of text, which may come from a remote
// log rather than a file.
func Tail(text string, maxLines int) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" || maxLines <= 0 {
		return nil
	}
	lines := strings.Split(text, "\n")
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return lines
}

// Entry is one decoded JSON log line.
type Entry struct {
	Time    time.Time
	Level   string
	Feed    string
	Message string
	Fields  map[string]any
}

// reserved keys are rendered in fixed positions rather than as key=value.
var reserved = map[string]bool{"ts": true, "level": true, "msg": true, "feed": true, "caller": true, "logger": true}

// Parse decodes a JSON log line. ok is false for lines that are not JSON
// objects, such as ARM's own plain-text logs.
func Parse(line string) (Entry, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return Entry{}, false
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return Entry{}, false
	}
	entry := Entry{Fields: map[string]any{}}
	for key, value := range raw {
		switch key {
		case "ts":
			entry.Time = parseTimestamp(value)
		case "level":
			entry.Level, _ = value.(string)
		case "msg":
			entry.Message, _ = value.(string)
		case "feed":
			entry.Feed, _ = value.(string)
		default:
			if !reserved[key] {
				entry.Fields[key] = value
			}
		}
	}
	return entry, true
}

func parseTimestamp(value any) time.Time {
	switch v := value.(type) {
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t
		}
	case float64:
		sec := int64(v)
		return time.Unix(sec, int64((v-float64(sec))*1e9))
	}
	return time.Time{}
}

var (
	timeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	feedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#87AFFF"))
	fieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	levelStyle = map[string]lipgloss.Style{
		"DEBUG": lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")).Bold(true),
		"INFO":  lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true),
		"WARN":  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		"ERROR": lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
	}
)

// FormatLine renders a JSON log line as
//
//	2025-10-08 21:01:05 WARN [dashboard] refresh failed duration=1.2s error="..."
//
// Lines that are not JSON are returned unchanged. Color adds lipgloss styles.
func FormatLine(line string, color bool) string {
	entry, ok := Parse(line)
	if !ok {
		return line
	}
	render := func(style lipgloss.Style, text string) string {
		if !color {
			return text
		}
		return style.Render(text)
	}

	var b strings.Builder
	if !entry.Time.IsZero() {
		b.WriteString(render(timeStyle, entry.Time.Local().Format("2006-01-02 15:04:05")))
		b.WriteByte(' ')
	}
	level := strings.ToUpper(entry.Level)
	if level == "" {
		level = "INFO"
	}
	b.WriteString(render(levelStyle[level], level))
	if entry.Feed != "" {
		b.WriteByte(' ')
		b.WriteString(render(feedStyle, "["+entry.Feed+"]"))
	}
	if entry.Message != "" {
		b.WriteByte(' ')
		b.WriteString(entry.Message)
	}

	keys := make([]string, 0, len(entry.Fields))
	for key := range entry.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		b.WriteByte(' ')
		b.WriteString(render(fieldStyle, key+"="+fieldValue(entry.Fields[key])))
	}
	return b.String()
}

// FormatLines applies FormatLine to every line.
func FormatLines(lines []string, color bool) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = FormatLine(line, color)
	}
	return out
}

func fieldValue(value any) string {
	switch v := value.(type) {
	case string:
		if strings.ContainsAny(v, " \t\"=") {
			return fmt.Sprintf("%q", v)
		}
		return v
	case nil:
		return "null"
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}
