// Package pages maps the dashboard's navigation entries to their renders.
//
// Every render is computed from scratch: a page never sees state left behind
// by another page or by an earlier render of itself.
package pages

import (
	"errors"
	"fmt"
	"strings"

	"quantdec/internal/config"
	"quantdec/internal/data"
	"quantdec/internal/simulator"
	"quantdec/internal/strategy"
)

var ErrUnknownPage = errors.New("unknown page")

const (
	SlugHome        = "home"
	SlugStrategy    = "strategy-builder"
	SlugSimulator   = "trading-simulator"
	SlugPerformance = "performance-dashboard"
)

// Page is one entry of the sidebar navigation.
type Page struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

var pageList = []Page{
	{Slug: SlugHome, Label: "Home"},
	{Slug: SlugStrategy, Label: "Strategy Builder"},
	{Slug: SlugSimulator, Label: "Trading Simulator"},
	{Slug: SlugPerformance, Label: "Performance Dashboard"},
}

type renderFunc func(r *Router, p Params) (*View, error)

// Router resolves navigation selections and renders pages.
type Router struct {
	cfg      *config.Config
	engine   *simulator.Engine
	strategy strategy.Strategy
	entropy  func() data.Source
	renders  map[string]renderFunc
}

// Option customises a Router.
type Option func(*Router)

// WithEntropy replaces the source used by the unseeded pages.
func WithEntropy(fn func() data.Source) Option {
	return func(r *Router) {
		if fn != nil {
			r.entropy = fn
		}
	}
}

// NewRouter builds a router over cfg. A nil cfg uses config.Default().
func NewRouter(cfg *config.Config, opts ...Option) *Router {
	if cfg == nil {
		cfg = config.Default()
	}
	r := &Router{
		cfg:      cfg,
		engine:   simulator.New(),
		strategy: strategy.SMACrossover{},
		entropy:  func() data.Source { return data.NewEntropySource() },
		renders: map[string]renderFunc{
			SlugHome:        renderHome,
			SlugStrategy:    renderStrategy,
			SlugSimulator:   renderSimulator,
			SlugPerformance: renderPerformance,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Config returns the configuration the router renders with.
func (r *Router) Config() *config.Config { return r.cfg }

// Pages lists the navigation entries in sidebar order.
func (r *Router) Pages() []Page {
	out := make([]Page, len(pageList))
	copy(out, pageList)
	return out
}

// Lookup resolves a label ("Trading Simulator") or slug ("trading-simulator").
// Matching ignores case and surrounding whitespace.
func (r *Router) Lookup(labelOrSlug string) (Page, bool) {
	key := strings.TrimSpace(labelOrSlug)
	for _, p := range pageList {
		if strings.EqualFold(key, p.Slug) || strings.EqualFold(key, p.Label) {
			return p, true
		}
	}
	return Page{}, false
}

// Render clamps p to the control bounds and renders the selected page.
func (r *Router) Render(labelOrSlug string, p Params) (*View, error) {
	page, ok := r.Lookup(labelOrSlug)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPage, labelOrSlug)
	}
	v, err := r.renders[page.Slug](r, r.Clamp(p))
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", page.Slug, err)
	}
	v.Page = page
	return v, nil
}

func (r *Router) seeded() data.Source {
	return data.NewSeededSource(r.cfg.Series.Seed)
}
