package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "zero reads nothing",
			maxLines: 0,
			expected: nil,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFileIsEmpty(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestTail(t *testing.T) {
	if got := Tail("a\nb\nc\n", 2); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Fatalf("Tail = %v, want [b c]", got)
	}
	if got := Tail("a\nb", 10); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("Tail = %v, want [a b]", got)
	}
	if got := Tail("", 10); got != nil {
		t.Fatalf("Tail(empty) = %v, want nil", got)
	}
}

func TestParse(t *testing.T) {
	entry, ok := Parse(`{"level":"warn","ts":"2025-10-08T21:01:05.123Z","caller":"poll/store.go:338","msg":"refresh failed","feed":"dashboard","error":"API 500: Internal Server Error","duration":0.25}`)
	if !ok {
		t.Fatalf("Parse returned ok=false")
	}
	if entry.Level != "warn" || entry.Feed != "dashboard" || entry.Message != "refresh failed" {
		t.Fatalf("entry = %+v", entry)
	}
	if !entry.Time.Equal(time.Date(2025, 10, 8, 21, 1, 5, 123e6, time.UTC)) {
		t.Fatalf("Time = %v", entry.Time)
	}
	if _, ok := entry.Fields["caller"]; ok {
		t.Fatalf("caller should not be a field")
	}
	if entry.Fields["duration"] != 0.25 {
		t.Fatalf("duration = %v, want 0.25", entry.Fields["duration"])
	}

	if _, ok := Parse("2025-10-08 21:01:05 ARM: Starting rip"); ok {
		t.Fatalf("Parse(plain text) ok = true, want false")
	}
	if _, ok := Parse("{broken"); ok {
		t.Fatalf("Parse(broken json) ok = true, want false")
	}
}

func TestFormatLine(t *testing.T) {
	ts := time.Date(2025, 10, 8, 21, 1, 5, 0, time.UTC)
	stamp := ts.Local().Format("2006-01-02 15:04:05")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text passes through",
			input:    "ARM: Starting rip",
			expected: "ARM: Starting rip",
		},
		{
			name:     "warn with feed and fields",
			input:    `{"level":"warn","ts":"2025-10-08T21:01:05Z","msg":"refresh failed","feed":"dashboard","error":"API 500: Internal Server Error","attempt":2}`,
			expected: stamp + ` WARN [dashboard] refresh failed attempt=2 error="API 500: Internal Server Error"`,
		},
		{
			name:     "epoch timestamp and no feed",
			input:    fmt.Sprintf(`{"level":"info","ts":%d,"msg":"armview started"}`, ts.Unix()),
			expected: stamp + " INFO armview started",
		},
		{
			name:     "missing level defaults to info",
			input:    `{"msg":"hello"}`,
			expected: "INFO hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLine(tt.input, false); got != tt.expected {
				t.Errorf("FormatLine() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatLines_ColorKeepsText(t *testing.T) {
	lines := FormatLines([]string{`{"level":"error","msg":"boom","feed":"jobs"}`, "plain"}, true)
	if len(lines) != 2 {
		t.Fatalf("FormatLines returned %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "boom") || !strings.Contains(lines[0], "[jobs]") || !strings.Contains(lines[0], "ERROR") {
		t.Fatalf("colored line lost text: %q", lines[0])
	}
	if lines[1] != "plain" {
		t.Fatalf("plain line = %q, want unchanged", lines[1])
	}
}
