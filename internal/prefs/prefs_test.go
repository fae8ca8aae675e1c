package prefs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/gallery/internal/state"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "gallery")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	prefsFile := filepath.Join(prefsDir, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"dark\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "dark" {
		t.Fatalf("Theme = %q, want %q", p.Theme, "dark")
	}
}

func TestLoad_UnknownThemeFallsBackToLight(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"Nightfox\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "light" {
		t.Fatalf("Theme = %q, want light", p.Theme)
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "subdir", "prefs.toml")

	if err := Save(prefsFile, Prefs{Theme: "dark"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Theme != "dark" {
		t.Fatalf("Theme = %q, want %q", loaded.Theme, "dark")
	}
}

func TestLoad_InvalidTOMLFallsBackToDefault(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestStore_ThemeRoundTrip(t *testing.T) {
	store := Store{Path: filepath.Join(t.TempDir(), "prefs.toml")}

	if got := store.LoadTheme(); got != state.ThemeLight {
		t.Fatalf("LoadTheme with no file = %q, want light", got)
	}
	if err := store.SaveTheme(state.ThemeDark); err != nil {
		t.Fatalf("SaveTheme: %v", err)
	}
	data, err := os.ReadFile(store.Path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), `dark`) {
		t.Fatalf("prefs file = %q, want it to store dark", data)
	}
	if got := store.LoadTheme(); got != state.ThemeDark {
		t.Fatalf("LoadTheme = %q, want dark", got)
	}
}

func TestSave_UnwritableDirFails(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	err := Save(filepath.Join(blocker, "prefs.toml"), Prefs{Theme: "dark"})
	if err == nil || !strings.Contains(err.Error(), "create prefs dir") {
		t.Fatalf("Save error = %v, want create prefs dir failure", err)
	}
}
