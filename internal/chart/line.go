// Package chart renders dashboard line charts to SVG.
package chart

import (
	"bytes"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"
)

const (
	DefaultWidth  = 10 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// Series is one named line. Values[i] is plotted at x = i.
type Series struct {
	Name   string
	Values []float64
}

// Spec describes a line chart.
type Spec struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series

	Width  vg.Length
	Height vg.Length
}

// Line renders spec as an SVG document. NaN values break a series into
// separate segments rather than failing the render.
func Line(spec Spec) ([]byte, error) {
	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	for i, s := range spec.Series {
		segs := Segments(s.Values)
		for j, seg := range segs {
			l, err := plotter.NewLine(seg)
			if err != nil {
				return nil, fmt.Errorf("series %q: %w", s.Name, err)
			}
			l.LineStyle.Color = plotutil.Color(i)
			l.LineStyle.Width = vg.Points(1.5)
			p.Add(l)
			if j == 0 && s.Name != "" {
				p.Legend.Add(s.Name, l)
			}
		}
	}

	w, h := spec.Width, spec.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}

	c := vgsvg.New(w, h)
	p.Draw(draw.New(c))

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write svg: %w", err)
	}
	return buf.Bytes(), nil
}

// Segments splits values into runs of finite points, keeping each point's
// original index as its x coordinate.
func Segments(values []float64) []plotter.XYs {
	var (
		out []plotter.XYs
		cur plotter.XYs
	)
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: float64(i), Y: v})
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// Inline strips any XML prolog so the SVG can be embedded in an HTML page.
func Inline(svg []byte) []byte {
	if i := bytes.Index(svg, []byte("<svg")); i > 0 {
		return svg[i:]
	}
	return svg
}
