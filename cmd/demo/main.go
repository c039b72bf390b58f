package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"quantdec/internal/config"
	"quantdec/internal/pages"
	"quantdec/internal/web"

	"github.com/dustin/go-humanize"
	flag "github.com/spf13/pflag"
)

// Demo:
// - Render every dashboard page once with the configured defaults
// - Write each page as a standalone HTML file (home becomes index.html)
// - Optionally write each page's series next to it as CSV
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	outDir := flag.String("out", "snapshot", "Directory to write the pages into")
	withCSV := flag.Bool("csv", true, "Also write <page>.csv for pages with series")
	flag.Parse()

	if err := run(*cfgPath, *outDir, *withCSV); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfgPath, outDir string, withCSV bool) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	tmpl, err := web.Templates()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	router := pages.NewRouter(cfg)
	params := router.DefaultParams()

	for _, p := range router.Pages() {
		v, err := router.Render(p.Slug, params)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, web.PageTemplate, web.Data{
			Site:   cfg.Page,
			Pages:  router.Pages(),
			View:   v,
			Active: p.Slug,
			Static: true,
		}); err != nil {
			return fmt.Errorf("%s: %w", p.Slug, err)
		}
		name := p.Slug + ".html"
		if err := write(filepath.Join(outDir, name), buf.Bytes()); err != nil {
			return err
		}
		if p.Slug == pages.SlugHome {
			if err := write(filepath.Join(outDir, "index.html"), buf.Bytes()); err != nil {
				return err
			}
		}

		if !withCSV || !v.HasData() {
			continue
		}
		buf.Reset()
		if err := v.WriteCSV(&buf); err != nil {
			return fmt.Errorf("%s: %w", p.Slug, err)
		}
		if err := write(filepath.Join(outDir, p.Slug+".csv"), buf.Bytes()); err != nil {
			return err
		}
	}

	fmt.Printf("Snapshot written to %s (seed=%d, trades=%d)\n", outDir, cfg.Series.Seed, cfg.Simulator.Trades)
	return nil
}

func write(path string, b []byte) error {
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return err
	}
	fmt.Printf("  %-28s %s\n", filepath.Base(path), humanize.Bytes(uint64(len(b))))
	return nil
}
