package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRead(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "read all (0)", maxLines: 0, expected: expectedAll},
		{name: "read all (negative)", maxLines: -1, expected: expectedAll},
		{name: "read partial (5)", maxLines: 5, expected: expectedAll[5:]},
		{name: "read exactly all (10)", maxLines: 10, expected: expectedAll},
		{name: "read more than exists (20)", maxLines: 20, expected: expectedAll},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Fatalf("Read() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "missing.log"), 5)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = %v, %v, want nil, nil", got, err)
	}
}

func TestParse(t *testing.T) {
	line := `{"level":"info","ts":"2026-10-14T09:00:00.000Z","logger":"gallery","msg":"program saved","id":"p2","path":"/tmp/Counter_(JS).txt"}`
	e, ok := Parse(line)
	if !ok {
		t.Fatalf("Parse returned false for a JSON line")
	}
	want := Entry{
		Time:   "2026-10-14T09:00:00.000Z",
		Level:  "INFO",
		Logger: "gallery",
		Msg:    "program saved",
		Fields: map[string]any{"id": "p2", "path": "/tmp/Counter_(JS).txt"},
	}
	if diff := cmp.Diff(want, e); diff != "" {
		t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_RejectsPlainText(t *testing.T) {
	for _, line := range []string{"", "plain text", "{not json"} {
		if _, ok := Parse(line); ok {
			t.Fatalf("Parse(%q) = true, want false", line)
		}
	}
}

func TestFormat(t *testing.T) {
	e := Entry{
		Time:   "2026-10-14T09:00:00.000Z",
		Level:  "WARN",
		Logger: "gallery",
		Msg:    "copy failed",
		Fields: map[string]any{"error": "no display", "attempt": float64(1)},
	}
	want := "2026-10-14T09:00:00.000Z WARN [gallery] copy failed attempt=1 error=no display"
	if got := Format(e); got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
	if got := Format(Entry{Msg: "bare"}); got != "bare" {
		t.Fatalf("Format(bare) = %q, want bare", got)
	}
}

func TestFormatLines_KeepsNonJSON(t *testing.T) {
	lines := []string{
		`{"level":"debug","msg":"preview opened","id":"p1"}`,
		"panic: something",
	}
	got := FormatLines(lines, false)
	want := []string{"DEBUG preview opened id=p1", "panic: something"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("FormatLines mismatch (-want +got):\n%s", diff)
	}

	colored := FormatLines(lines[:1], true)
	if !strings.Contains(colored[0], "preview opened") {
		t.Fatalf("Colorize dropped the message: %q", colored[0])
	}
}
