package web

import (
	"bytes"
	"testing"

	"quantdec/internal/config"
	"quantdec/internal/pages"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown(t *testing.T) {
	out := string(Markdown("### Your quantitative trading simulator"))
	assert.Contains(t, out, "<h3>Your quantitative trading simulator</h3>")
}

func TestTemplates_RenderStrategyPage(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	cfg := config.Default()
	r := pages.NewRouter(cfg)
	v, err := r.Render(pages.SlugStrategy, r.DefaultParams())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, PageTemplate, Data{
		Site:   cfg.Page,
		Pages:  r.Pages(),
		View:   v,
		Active: v.Page.Slug,
	}))

	html := buf.String()
	assert.Contains(t, html, "<title>QuantDec</title>")
	assert.Contains(t, html, `class="active">Strategy Builder</a>`)
	assert.Contains(t, html, `name="short_window"`)
	assert.Contains(t, html, "<svg")
	assert.Contains(t, html, "/api/v1/pages/strategy-builder/csv")
}

func TestTemplates_RenderHome(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	r := pages.NewRouter(nil)
	v, err := r.Render(pages.SlugHome, pages.Params{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, PageTemplate, Data{
		Site: config.Default().Page, Pages: r.Pages(), View: v, Active: v.Page.Slug,
	}))
	assert.Contains(t, buf.String(), "<h1>Welcome to QuantDec</h1>")
	assert.Contains(t, buf.String(), "<figcaption>Quantitative Finance in Action</figcaption>")
	assert.NotContains(t, buf.String(), "Download CSV")
}

func TestTemplates_RenderPerformanceStats(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	r := pages.NewRouter(nil)
	v, err := r.Render(pages.SlugPerformance, r.DefaultParams())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, PageTemplate, Data{
		Site: config.Default().Page, Pages: r.Pages(), View: v, Active: v.Page.Slug,
	}))
	html := buf.String()
	assert.Contains(t, html, `<table class="stats">`)
	for _, label := range []string{"<th>Mean</th>", "<th>Std Dev</th>", "<th>P05</th>", "<th>P95</th>", "<td>1,000</td>"} {
		assert.Contains(t, html, label)
	}
}

func TestTemplates_StaticLinks(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	r := pages.NewRouter(nil)
	v, err := r.Render(pages.SlugSimulator, r.DefaultParams())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, PageTemplate, Data{
		Site: config.Default().Page, Pages: r.Pages(), View: v, Active: v.Page.Slug, Static: true,
	}))
	html := buf.String()
	assert.Contains(t, html, `href="performance-dashboard.html"`)
	assert.Contains(t, html, `href="trading-simulator.csv"`)
	assert.Contains(t, html, `max="1000000"`)
	assert.NotContains(t, html, "<button")
}
