package pages

import (
	"io"
	"math"

	"quantdec/internal/analysis"
	"quantdec/internal/config"
	"quantdec/internal/model"
	"quantdec/internal/series"
	"quantdec/internal/simulator"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// View is everything a page shows, independent of how it is displayed.
type View struct {
	Page    Page
	Heading string

	// Intro and Notice are markdown shown above and below the controls.
	Intro  string
	Notice string
	Image  *Image

	Params   Params
	Controls []Control
	Metrics  []Metric
	// Stats describes the distribution behind the metrics, if any.
	Stats   []Metric
	Charts  []Chart
	Signals []model.Signal

	Strategy    *series.Result
	Simulation  *simulator.Result
	Performance *analysis.Report

	csv func(w io.Writer) error
}

// HasData reports whether the page exports any series.
func (v *View) HasData() bool { return v != nil && v.csv != nil }

type Image struct {
	URL     string
	Caption string
}

// Control is one numeric input with its bounds and current value.
type Control struct {
	Name       string
	Label      string
	Min        float64
	Max        float64
	Step       float64
	Default    float64
	Value      float64
	RangeLabel string
}

func newControl(name, label string, b config.Bounds, value float64) Control {
	return Control{
		Name:       name,
		Label:      label,
		Min:        b.Min,
		Max:        b.Max,
		Step:       b.Step,
		Default:    b.Default,
		Value:      value,
		RangeLabel: humanize.Commaf(b.Min) + " to " + humanize.Commaf(b.Max),
	}
}

// Metric is a labelled scalar tile.
type Metric struct {
	Label   string
	Value   float64
	Display string
}

func newMetric(label string, v float64) Metric {
	return Metric{Label: label, Value: v, Display: FormatFixed(v)}
}

func statMetrics(d analysis.Descriptive) []Metric {
	return []Metric{
		{Label: "Periods", Value: float64(d.Count), Display: humanize.Comma(int64(d.Count))},
		newMetric("Mean", d.Mean),
		newMetric("Std Dev", d.StdDev),
		newMetric("Min", d.Min),
		newMetric("Max", d.Max),
		newMetric("P05", d.P05),
		newMetric("P95", d.P95),
		newMetric("Positive", d.Positive),
	}
}

// FormatFixed renders v with two decimals. Undefined values show as "NaN".
func FormatFixed(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Chart is a rendered SVG line chart.
type Chart struct {
	Title string
	SVG   []byte
}
