package state

import (
	"strings"

	"github.com/five82/gallery/internal/catalog"
)

// ThemeMode is the visual theme of the gallery.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// ParseThemeMode maps a stored value to a ThemeMode, defaulting to light.
func ParseThemeMode(value string) ThemeMode {
	if strings.EqualFold(strings.TrimSpace(value), string(ThemeDark)) {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the opposite theme.
func (m ThemeMode) Toggle() ThemeMode {
	if m == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Dark reports whether m is the dark theme.
func (m ThemeMode) Dark() bool {
	return m == ThemeDark
}

// Phase is a state of the preview pane.
type Phase int

const (
	Idle Phase = iota
	PreviewOpen
)

func (p Phase) String() string {
	if p == PreviewOpen {
		return "preview-open"
	}
	return "idle"
}

// State is the process-wide UI state.
type State struct {
	Theme     ThemeMode
	LastQuery string
	Lang      string

	preview *catalog.Program
}

// New returns an Idle state with the given theme.
func New(theme ThemeMode) *State {
	if theme != ThemeDark {
		theme = ThemeLight
	}
	return &State{Theme: theme}
}

// Phase reports the preview pane state.
func (s *State) Phase() Phase {
	if s.preview == nil {
		return Idle
	}
	return PreviewOpen
}

// PreviewOpen reports whether a program is shown in the preview pane.
func (s *State) PreviewOpen() bool {
	return s.preview != nil
}

// Previewed returns the program in the preview pane.
func (s *State) Previewed() (catalog.Program, bool) {
	if s.preview == nil {
		return catalog.Program{}, false
	}
	return *s.preview, true
}

// Open shows p in the preview pane, replacing any program already shown.
func (s *State) Open(p catalog.Program) {
	s.preview = &p
}

// Close hides the preview pane.
func (s *State) Close() {
	s.preview = nil
}
