package gallery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/five82/gallery/internal/state"
)

// ErrClipboardUnsupported is returned when no clipboard utility is available.
var ErrClipboardUnsupported = errors.New("clipboard unsupported on this system")

// ThemeStore persists the theme flag.
type ThemeStore interface {
	LoadTheme() state.ThemeMode
	SaveTheme(state.ThemeMode) error
}

// Clipboard places text on the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Saver offers content to the user as a file and returns where it went.
type Saver interface {
	Save(name string, data []byte) (string, error)
}

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// SystemClipboard writes through xclip/xsel/wl-copy, pbcopy or the Windows
// clipboard API.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	if err := writeClipboard(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// DirSaver writes files into Dir, creating it when missing.
type DirSaver struct {
	Dir string
}

// Save implements Saver. Path separators in name are replaced so the file
// always lands directly inside Dir.
func (s DirSaver) Save(name string, data []byte) (string, error) {
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if name == "" || name == "." || name == ".." {
		name = "snippet.txt"
	}

	dir := s.Dir
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}

type memoryThemes struct {
	mode state.ThemeMode
}

func (m *memoryThemes) LoadTheme() state.ThemeMode { return m.mode }

func (m *memoryThemes) SaveTheme(mode state.ThemeMode) error {
	m.mode = mode
	return nil
}
