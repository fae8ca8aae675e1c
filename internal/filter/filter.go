// Package filter derives subsets and metadata from a list of programs.
// Every function is pure and returns a fresh slice.
package filter

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/five82/gallery/internal/catalog"
)

// AllLanguages is the language selector that disables language filtering.
const AllLanguages = "all"

// ByQuery keeps programs whose title, description or language contains the
// query, ignoring case. An empty query keeps everything. Order is preserved.
func ByQuery(list []catalog.Program, query string) []catalog.Program {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]catalog.Program, 0, len(list))
	if q == "" {
		return append(out, list...)
	}
	for _, p := range list {
		if matchesQuery(p, q) {
			out = append(out, p)
		}
	}
	return out
}

// ByLanguage keeps programs whose language equals lang, ignoring case.
// An empty selector or "all" keeps everything.
func ByLanguage(list []catalog.Program, lang string) []catalog.Program {
	out := make([]catalog.Program, 0, len(list))
	if lang == "" || strings.EqualFold(lang, AllLanguages) {
		return append(out, list...)
	}
	for _, p := range list {
		if strings.EqualFold(p.Lang, lang) {
			out = append(out, p)
		}
	}
	return out
}

// Apply runs the query filter and then the language filter.
func Apply(list []catalog.Program, query, lang string) []catalog.Program {
	return ByLanguage(ByQuery(list, query), lang)
}

// UniqueLanguages returns the distinct, non-empty languages in list sorted
// with an English collator.
func UniqueLanguages(list []catalog.Program) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, p := range list {
		if p.Lang == "" {
			continue
		}
		if _, ok := seen[p.Lang]; ok {
			continue
		}
		seen[p.Lang] = struct{}{}
		out = append(out, p.Lang)
	}
	collate.New(language.English).SortStrings(out)
	return out
}

func matchesQuery(p catalog.Program, q string) bool {
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Lang), q)
}
