package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_NormalizesFields(t *testing.T) {
	c, err := New([]Program{{
		ID:          " p1 ",
		Title:       "  Hello  ",
		Description: " desc ",
		Lang:        " Go ",
		Code:        "  keep\n",
	}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	p, ok := c.Lookup("p1")
	if !ok {
		t.Fatalf("Lookup(p1) missed")
	}
	if p.Title != "Hello" || p.Description != "desc" || p.Lang != "Go" {
		t.Fatalf("program not trimmed: %#v", p)
	}
	if p.Code != "  keep\n" {
		t.Fatalf("Code = %q, want it kept literally", p.Code)
	}
}

func TestNew_RejectsMalformedEntries(t *testing.T) {
	tests := []struct {
		name     string
		programs []Program
		want     error
	}{
		{"empty id", []Program{{Title: "x"}}, ErrEmptyID},
		{"blank title", []Program{{ID: "a", Title: "  "}}, ErrEmptyTitle},
		{"duplicate id", []Program{{ID: "a", Title: "x"}, {ID: "a", Title: "y"}}, ErrDuplicateID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.programs)
			if !errors.Is(err, tt.want) {
				t.Fatalf("New error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	c := Default()
	all := c.All()
	all[0].Title = "changed"

	again := c.All()
	if again[0].Title != "Hello World (HTML)" {
		t.Fatalf("All should return a copy; got title %q", again[0].Title)
	}
	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}
}

func TestLookup_Miss(t *testing.T) {
	if _, ok := Default().Lookup("nope"); ok {
		t.Fatalf("Lookup(nope) hit, want miss")
	}
	var nilCatalog *Catalog
	if _, ok := nilCatalog.Lookup("p1"); ok {
		t.Fatalf("nil catalog Lookup hit, want miss")
	}
	if got := nilCatalog.All(); len(got) != 0 {
		t.Fatalf("nil catalog All = %v, want empty", got)
	}
}

func TestSamples_Order(t *testing.T) {
	var ids []string
	for _, p := range Default().All() {
		ids = append(ids, p.ID)
	}
	if strings.Join(ids, ",") != "p1,p2,p3" {
		t.Fatalf("sample ids = %v, want p1,p2,p3", ids)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	data := `
[[program]]
id = "go1"
title = "Hello (Go)"
description = "Prints a greeting."
lang = "Go"
code = '''
package main
'''

[[program]]
title = "No ID"
lang = "Shell"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	p, ok := c.Lookup("go1")
	if !ok || p.Code != "package main\n" {
		t.Fatalf("Lookup(go1) = %#v, %v", p, ok)
	}
	if _, ok := c.Lookup("p2"); !ok {
		t.Fatalf("entry without id should be numbered p2")
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `programs:
  - id: y1
    title: Query (SQL)
    lang: SQL
    code: |
      SELECT 1;
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	p, ok := c.Lookup("y1")
	if !ok || p.Lang != "SQL" || p.Code != "SELECT 1;\n" {
		t.Fatalf("Lookup(y1) = %#v, %v", p, ok)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Fatalf("Load missing file returned nil error")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[[program]\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(bad)
	if err == nil || !strings.Contains(err.Error(), "parse catalog") {
		t.Fatalf("Load bad toml error = %v, want parse catalog", err)
	}

	unknown := filepath.Join(dir, "catalog.json")
	if err := os.WriteFile(unknown, []byte("{}"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(unknown); err == nil {
		t.Fatalf("Load json returned nil error, want unsupported format")
	}
}
