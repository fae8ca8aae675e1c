package gallery

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/atotto/clipboard"

	"github.com/five82/gallery/internal/state"
)

func TestSystemClipboard_WrapsErrors(t *testing.T) {
	if clipboard.Unsupported {
		t.Skip("no clipboard utility on this system")
	}
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })

	var got string
	writeClipboard = func(text string) error {
		got = text
		return nil
	}
	if err := (SystemClipboard{}).WriteAll("hello"); err != nil {
		t.Fatalf("WriteAll returned error: %v", err)
	}
	if got != "hello" {
		t.Fatalf("clipboard got %q, want hello", got)
	}

	boom := errors.New("boom")
	writeClipboard = func(string) error { return boom }
	if err := (SystemClipboard{}).WriteAll("x"); !errors.Is(err, boom) {
		t.Fatalf("WriteAll error = %v, want wrapped boom", err)
	}
}

func TestDirSaver_CreatesDirAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "downloads")

	path, err := DirSaver{Dir: dir}.Save("Counter_(JS).txt", []byte("code"))
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if path != filepath.Join(dir, "Counter_(JS).txt") {
		t.Fatalf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "code" {
		t.Fatalf("content = %q, want code", data)
	}
}

func TestDirSaver_KeepsFileInsideDir(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		want string
	}{
		{name: "../escape.txt", want: ".._escape.txt"},
		{name: "a/b.txt", want: "a_b.txt"},
		{name: "  ", want: "snippet.txt"},
		{name: "..", want: "snippet.txt"},
	}
	for _, tt := range tests {
		path, err := DirSaver{Dir: dir}.Save(tt.name, nil)
		if err != nil {
			t.Fatalf("Save(%q) returned error: %v", tt.name, err)
		}
		if got := filepath.Base(path); got != tt.want || filepath.Dir(path) != dir {
			t.Fatalf("Save(%q) path = %q, want %s inside %s", tt.name, path, tt.want, dir)
		}
	}
}

func TestDirSaver_UnwritableDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := (DirSaver{Dir: blocker}).Save("x.txt", nil); err == nil {
		t.Fatalf("Save into a file path returned nil error")
	}
}

func TestMemoryThemes(t *testing.T) {
	m := &memoryThemes{mode: state.ThemeLight}
	if err := m.SaveTheme(state.ThemeDark); err != nil {
		t.Fatalf("SaveTheme: %v", err)
	}
	if got := m.LoadTheme(); got != state.ThemeDark {
		t.Fatalf("LoadTheme = %q, want dark", got)
	}
}
