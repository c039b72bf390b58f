// Package report renders dashboard pages for the terminal.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"quantdec/internal/pages"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/floats"
)

const DefaultWidth = 80

// Renderer writes a pages.View as styled terminal text.
type Renderer struct {
	color bool
	width int
	st    styles
}

// New returns a renderer. color=false emits plain text suitable for pipes.
func New(color bool, width int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Renderer{color: color, width: width, st: newStyles(color)}
}

// Render writes v to w.
func (r *Renderer) Render(w io.Writer, v *pages.View) error {
	var b strings.Builder

	b.WriteString(r.st.heading.Render(v.Heading))
	b.WriteString("\n\n")

	if v.Intro != "" {
		b.WriteString(r.markdown(v.Intro))
		b.WriteString("\n")
	}
	if v.Image != nil {
		fmt.Fprintf(&b, "%s %s\n\n", r.st.label.Render(v.Image.Caption+":"), v.Image.URL)
	}
	for _, c := range v.Controls {
		fmt.Fprintf(&b, "%s %s %s\n",
			r.st.label.Render(c.Label+":"),
			humanize.Commaf(c.Value),
			r.st.label.Render("("+c.RangeLabel+")"))
	}
	if len(v.Controls) > 0 {
		b.WriteString("\n")
	}
	if v.Notice != "" {
		b.WriteString(r.markdown(v.Notice))
		b.WriteString("\n")
	}
	if len(v.Metrics) > 0 {
		b.WriteString(r.tiles(v.Metrics))
		b.WriteString("\n\n")
	}
	if len(v.Stats) > 0 {
		b.WriteString(r.statsLine(v.Stats))
		b.WriteString("\n\n")
	}
	for _, s := range seriesOf(v) {
		b.WriteString(r.seriesLine(s))
		b.WriteString("\n")
	}
	if len(v.Signals) > 0 {
		fmt.Fprintf(&b, "\n%s %d\n", r.st.label.Render("Crossovers:"), len(v.Signals))
		for _, sig := range v.Signals {
			fmt.Fprintf(&b, "  #%-4d %-8s %s\n", sig.Index, sig.Kind, pages.FormatFixed(sig.Price))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) markdown(md string) string {
	style := "notty"
	if r.color {
		style = "dark"
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(r.width),
	)
	if err != nil {
		return md + "\n"
	}
	out, err := tr.Render(md)
	if err != nil {
		return md + "\n"
	}
	return strings.TrimSpace(out) + "\n"
}

func (r *Renderer) tiles(metrics []pages.Metric) string {
	boxes := make([]string, 0, len(metrics))
	for _, m := range metrics {
		value := r.st.plain
		switch {
		case math.IsNaN(m.Value):
		case m.Value > 0:
			value = r.st.up
		case m.Value < 0:
			value = r.st.down
		}
		boxes = append(boxes, r.st.tile.Render(r.st.label.Render(m.Label)+"\n"+value.Render(m.Display)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

type namedSeries struct {
	name   string
	values []float64
}

func (r *Renderer) statsLine(stats []pages.Metric) string {
	parts := make([]string, len(stats))
	for i, m := range stats {
		parts[i] = m.Label + " " + m.Display
	}
	return r.st.label.Render("Return stats:") + " " + strings.Join(parts, ", ")
}

func seriesOf(v *pages.View) []namedSeries {
	switch {
	case v.Strategy != nil:
		return []namedSeries{
			{"Price", v.Strategy.Price},
			{"SMA_Short", v.Strategy.Short.Values},
			{"SMA_Long", v.Strategy.Long.Values},
		}
	case v.Simulation != nil:
		return []namedSeries{{"Account Balance", v.Simulation.Balance}}
	case v.Performance != nil:
		return []namedSeries{{"Cumulative Returns", v.Performance.Cumulative}}
	}
	return nil
}

// seriesLine summarises a series on one line. Undefined points are skipped.
func (r *Renderer) seriesLine(s namedSeries) string {
	defined := make([]float64, 0, len(s.values))
	for _, x := range s.values {
		if !math.IsNaN(x) {
			defined = append(defined, x)
		}
	}
	if len(defined) == 0 {
		return fmt.Sprintf("%s no defined points", r.st.label.Render(s.name+":"))
	}
	return fmt.Sprintf("%s %d points, first %s, last %s, min %s, max %s",
		r.st.label.Render(s.name+":"),
		len(defined),
		pages.FormatFixed(defined[0]),
		pages.FormatFixed(defined[len(defined)-1]),
		pages.FormatFixed(floats.Min(defined)),
		pages.FormatFixed(floats.Max(defined)))
}
