// Package web holds the dashboard's server-rendered HTML.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"strconv"

	"quantdec/internal/chart"
	"quantdec/internal/config"
	"quantdec/internal/pages"

	"github.com/yuin/goldmark"
)

//go:embed templates/*.html
var files embed.FS

// PageTemplate is the name gin renders for every dashboard page.
const PageTemplate = "page.html"

// Data is the template input for one page.
type Data struct {
	Site   config.PageConfig
	Pages  []pages.Page
	View   *pages.View
	Active string

	// Static links pages as sibling files instead of server routes.
	Static bool
}

// Templates parses the embedded templates with the dashboard helpers.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(files, "templates/*.html")
}

// Funcs returns the template helpers.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"markdown": Markdown,
		"num": func(v float64) string {
			return strconv.FormatFloat(v, 'f', -1, 64)
		},
		"svg": func(b []byte) template.HTML {
			// SVG comes from our own chart renderer, never from user input.
			return template.HTML(chart.Inline(b))
		},
	}
}

// Markdown converts trusted page copy to HTML. Conversion errors fall back to
// the escaped source text.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
