package filter

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/five82/gallery/internal/catalog"
)

func ids(list []catalog.Program) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}

func TestByQuery(t *testing.T) {
	samples := catalog.Samples()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty keeps all", "", []string{"p1", "p2", "p3"}},
		{"blank keeps all", "   ", []string{"p1", "p2", "p3"}},
		{"lang substring", "js", []string{"p2"}},
		{"case insensitive title", "HELLO", []string{"p1"}},
		{"description match", "card", []string{"p3"}},
		{"matches several", "a", []string{"p1", "p2", "p3"}},
		{"no match", "zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(ByQuery(samples, tt.query))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("ByQuery(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestByQuery_SubsequenceProperty(t *testing.T) {
	samples := catalog.Samples()
	for _, q := range []string{"", "s", "js", "html", "tiny", "(", "x", "zzz"} {
		got := ByQuery(samples, q)
		lower := strings.ToLower(strings.TrimSpace(q))

		// Walk the input once; kept elements must appear in order and match,
		// skipped elements must not match.
		j := 0
		for _, p := range samples {
			matches := lower == "" ||
				strings.Contains(strings.ToLower(p.Title), lower) ||
				strings.Contains(strings.ToLower(p.Description), lower) ||
				strings.Contains(strings.ToLower(p.Lang), lower)
			kept := j < len(got) && got[j].ID == p.ID
			if kept != matches {
				t.Fatalf("query %q: program %s kept=%v matches=%v", q, p.ID, kept, matches)
			}
			if kept {
				j++
			}
		}
		if j != len(got) {
			t.Fatalf("query %q: result is not a subsequence of the input", q)
		}
	}
}

func TestByQuery_EmptyQueryReturnsFreshCopy(t *testing.T) {
	samples := catalog.Samples()
	got := ByQuery(samples, "")
	if diff := cmp.Diff(samples, got); diff != "" {
		t.Fatalf("ByQuery empty mismatch (-want +got):\n%s", diff)
	}
	got[0].Title = "mutated"
	if samples[0].Title == "mutated" {
		t.Fatalf("ByQuery should not alias its input")
	}
}

func TestByQuery_MissingFieldsNeverFail(t *testing.T) {
	list := []catalog.Program{{ID: "a"}, {ID: "b", Lang: "Go"}}
	if got := ids(ByQuery(list, "go")); !cmp.Equal(got, []string{"b"}) {
		t.Fatalf("ByQuery = %v, want [b]", got)
	}
}

func TestByLanguage(t *testing.T) {
	list := []catalog.Program{
		{ID: "a", Lang: "Java"},
		{ID: "b", Lang: "JavaScript"},
		{ID: "c", Lang: "java"},
		{ID: "d"},
	}
	tests := []struct {
		lang string
		want []string
	}{
		{"", []string{"a", "b", "c", "d"}},
		{"all", []string{"a", "b", "c", "d"}},
		{"ALL", []string{"a", "b", "c", "d"}},
		{"JAVA", []string{"a", "c"}},
		{"javascript", []string{"b"}},
		{"script", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			got := ids(ByLanguage(list, tt.lang))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("ByLanguage(%q) mismatch (-want +got):\n%s", tt.lang, diff)
			}
		})
	}
}

func TestApply_CombinesFilters(t *testing.T) {
	got := ids(Apply(catalog.Samples(), "a", "css"))
	if diff := cmp.Diff([]string{"p3"}, got); diff != "" {
		t.Fatalf("Apply mismatch (-want +got):\n%s", diff)
	}
}

func TestUniqueLanguages(t *testing.T) {
	list := []catalog.Program{{Lang: "CSS"}, {Lang: "HTML"}, {Lang: "CSS"}}
	if diff := cmp.Diff([]string{"CSS", "HTML"}, UniqueLanguages(list)); diff != "" {
		t.Fatalf("UniqueLanguages mismatch (-want +got):\n%s", diff)
	}
}

func TestUniqueLanguages_SortedAndDistinct(t *testing.T) {
	list := []catalog.Program{
		{Lang: "Shell"}, {Lang: "go"}, {Lang: "Go"}, {Lang: ""}, {Lang: "awk"}, {Lang: "Shell"},
	}
	got := UniqueLanguages(list)
	want := []string{"awk", "go", "Go", "Shell"}
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Fatalf("UniqueLanguages set mismatch (-want +got):\n%s", diff)
	}

	col := collate.New(language.English)
	for i := 1; i < len(got); i++ {
		if col.CompareString(got[i-1], got[i]) > 0 {
			t.Fatalf("UniqueLanguages not ascending at %d: %v", i, got)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	if got := ByQuery(nil, "x"); got == nil || len(got) != 0 {
		t.Fatalf("ByQuery(nil) = %#v, want empty non-nil", got)
	}
	if got := ByLanguage(nil, "Go"); got == nil || len(got) != 0 {
		t.Fatalf("ByLanguage(nil) = %#v, want empty non-nil", got)
	}
	if got := UniqueLanguages(nil); got == nil || len(got) != 0 {
		t.Fatalf("UniqueLanguages(nil) = %#v, want empty non-nil", got)
	}
}
