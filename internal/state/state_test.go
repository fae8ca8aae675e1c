package state

import (
	"testing"

	"github.com/five82/gallery/internal/catalog"
)

func TestParseThemeMode(t *testing.T) {
	tests := []struct {
		in   string
		want ThemeMode
	}{
		{"", ThemeLight},
		{"light", ThemeLight},
		{"dark", ThemeDark},
		{"  DARK ", ThemeDark},
		{"solarized", ThemeLight},
	}
	for _, tt := range tests {
		if got := ParseThemeMode(tt.in); got != tt.want {
			t.Fatalf("ParseThemeMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestThemeMode_Toggle(t *testing.T) {
	if got := ThemeLight.Toggle(); got != ThemeDark {
		t.Fatalf("light.Toggle() = %q, want dark", got)
	}
	if got := ThemeDark.Toggle(); got != ThemeLight {
		t.Fatalf("dark.Toggle() = %q, want light", got)
	}
	if got := ThemeMode("").Toggle(); got != ThemeDark {
		t.Fatalf("unset.Toggle() = %q, want dark", got)
	}
}

func TestNew_DefaultsToLight(t *testing.T) {
	if s := New(""); s.Theme != ThemeLight {
		t.Fatalf("New(\"\").Theme = %q, want light", s.Theme)
	}
	if s := New(ThemeDark); s.Theme != ThemeDark {
		t.Fatalf("New(dark).Theme = %q, want dark", s.Theme)
	}
}

func TestPreviewTransitions(t *testing.T) {
	s := New(ThemeLight)
	if s.Phase() != Idle || s.PreviewOpen() {
		t.Fatalf("initial phase = %v, want idle", s.Phase())
	}

	// Close while idle is a no-op.
	s.Close()
	if s.Phase() != Idle {
		t.Fatalf("phase after idle Close = %v, want idle", s.Phase())
	}

	samples := catalog.Samples()
	s.Open(samples[0])
	if s.Phase() != PreviewOpen {
		t.Fatalf("phase after Open = %v, want preview-open", s.Phase())
	}

	s.Open(samples[1])
	got, ok := s.Previewed()
	if !ok || got.ID != "p2" {
		t.Fatalf("Previewed after re-open = %#v, %v; want p2", got, ok)
	}

	s.Close()
	if _, ok := s.Previewed(); ok || s.Phase() != Idle {
		t.Fatalf("preview should be closed")
	}
}

func TestOpen_CopiesProgram(t *testing.T) {
	s := New(ThemeLight)
	p := catalog.Program{ID: "a", Title: "A"}
	s.Open(p)
	p.Title = "changed"
	got, _ := s.Previewed()
	if got.Title != "A" {
		t.Fatalf("Previewed title = %q, want A", got.Title)
	}
}

func TestPhaseString(t *testing.T) {
	if Idle.String() != "idle" || PreviewOpen.String() != "preview-open" {
		t.Fatalf("unexpected phase strings %q %q", Idle, PreviewOpen)
	}
}
