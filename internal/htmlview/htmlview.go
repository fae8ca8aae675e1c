// Package htmlview writes the gallery as a static HTML page. Every catalog
// field passes through html/template's contextual escaping, so catalog text
// can never inject markup.
package htmlview

import (
	"fmt"
	"html/template"
	"io"

	"github.com/five82/gallery/internal/catalog"
	"github.com/five82/gallery/internal/view"
)

const page = `<!doctype html>
<html lang="en" data-theme="{{.Theme}}">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<main id="cards" role="list">
{{- if .Cards.Empty}}
<div class="card"><h3>` + view.EmptyTitle + `</h3><p>` + view.EmptyHint + `</p></div>
{{- else}}
{{- range .Cards.Cards}}
<article class="card" role="listitem">
  <h3>{{.Title}}</h3>
  <p>{{.Description}}</p>
  <div class="meta">
    <span class="lang">{{.Lang}}</span>
    <div class="actions">
    {{- range .Actions}}
      <button class="btn {{.Kind}}" data-id="{{.ID}}" data-action="{{.Kind}}">{{.Label}}</button>
    {{- end}}
    </div>
  </div>
</article>
{{- end}}
{{- end}}
</main>
</body>
</html>
`

var tmpl = template.Must(template.New("gallery").Parse(page))

// Options tune the rendered page.
type Options struct {
	Title string
	Theme string
}

// RenderCards writes an HTML document with one card per program, or the
// "No results" placeholder when list is empty.
func RenderCards(w io.Writer, list []catalog.Program, opts Options) error {
	if opts.Title == "" {
		opts.Title = "Programs"
	}
	if opts.Theme == "" {
		opts.Theme = "light"
	}
	data := struct {
		Title string
		Theme string
		Cards view.CardList
	}{
		Title: opts.Title,
		Theme: opts.Theme,
		Cards: view.Cards(list),
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render cards: %w", err)
	}
	return nil
}
