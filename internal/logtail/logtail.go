package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count, idx := 0, 0
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
		for i := range lines {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one decoded JSON log line.
type Entry struct {
	Time   string
	Level  string
	Logger string
	Msg    string
	Fields map[string]any
}

var reservedKeys = map[string]struct{}{
	"ts": {}, "level": {}, "logger": {}, "msg": {}, "caller": {}, "stacktrace": {},
}

// Parse decodes a JSON log line. Lines that are not JSON objects report false.
func Parse(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "{") {
		return Entry{}, false
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{}, false
	}

	e := Entry{
		Time:   stringField(raw, "ts"),
		Level:  strings.ToUpper(stringField(raw, "level")),
		Logger: stringField(raw, "logger"),
		Msg:    stringField(raw, "msg"),
	}
	for k, v := range raw {
		if _, skip := reservedKeys[k]; skip {
			continue
		}
		if e.Fields == nil {
			e.Fields = make(map[string]any)
		}
		e.Fields[k] = v
	}
	return e, true
}

func stringField(raw map[string]any, key string) string {
	if s, ok := raw[key].(string); ok {
		return s
	}
	if v, ok := raw[key]; ok && v != nil {
		return fmt.Sprint(v)
	}
	return ""
}

// fieldList renders fields as key=value pairs in key order.
func (e Entry) fieldList() string {
	if len(e.Fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, e.Fields[k]))
	}
	return strings.Join(parts, " ")
}

// Format renders an entry as "<time> <LEVEL> [logger] msg key=value...".
func Format(e Entry) string {
	return join(e.Time, e.Level, bracket(e.Logger), e.Msg, e.fieldList())
}

// Colors used by Colorize.
var (
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	loggerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#87AFFF"))
	fieldStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#D7AFFF"))
	levelStyles = map[string]lipgloss.Style{
		"DEBUG": lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")).Bold(true),
		"INFO":  lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true),
		"WARN":  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		"ERROR": lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
	}
)

// Colorize renders an entry like Format with the parts styled.
func Colorize(e Entry) string {
	level := e.Level
	if style, ok := levelStyles[level]; ok {
		level = style.Render(level)
	}
	fields := e.fieldList()
	if fields != "" {
		fields = fieldStyle.Render(fields)
	}
	logger := bracket(e.Logger)
	if logger != "" {
		logger = loggerStyle.Render(logger)
	}
	ts := e.Time
	if ts != "" {
		ts = timeStyle.Render(ts)
	}
	return join(ts, level, logger, e.Msg, fields)
}

// FormatLines decodes lines and formats them; lines that are not JSON are
// kept unchanged.
func FormatLines(lines []string, color bool) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		e, ok := Parse(line)
		switch {
		case !ok:
			out = append(out, line)
		case color:
			out = append(out, Colorize(e))
		default:
			out = append(out, Format(e))
		}
	}
	return out
}

func bracket(s string) string {
	if s == "" {
		return ""
	}
	return "[" + s + "]"
}

func join(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
