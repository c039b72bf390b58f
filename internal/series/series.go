// Package series generates synthetic price paths and their trailing moving
// averages.
package series

import (
	"errors"
	"fmt"
	"math"

	"quantdec/internal/data"
	"quantdec/internal/model"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultOffset lifts the random walk so displayed prices stay mostly positive.
const DefaultOffset = 100.0

// ErrInvalidWindow is returned when a moving-average window is below one.
var ErrInvalidWindow = errors.New("series: window must be >= 1")

// Params describes one Strategy Builder generation.
type Params struct {
	Length      int
	Offset      float64
	ShortWindow int
	LongWindow  int
}

// Result holds a price path and its two moving averages, all the same length.
type Result struct {
	Price model.PriceSeries
	Short model.MovingAverage
	Long  model.MovingAverage
}

// Generate draws a price path from src and derives both moving averages.
func Generate(src data.Source, p Params) (*Result, error) {
	if src == nil {
		return nil, errors.New("series: source is nil")
	}
	price := NewPriceSeries(src, p.Length, p.Offset)

	short, err := RollingMean(price, p.ShortWindow)
	if err != nil {
		return nil, fmt.Errorf("short average: %w", err)
	}
	long, err := RollingMean(price, p.LongWindow)
	if err != nil {
		return nil, fmt.Errorf("long average: %w", err)
	}
	return &Result{Price: price, Short: short, Long: long}, nil
}

// NewPriceSeries returns offset plus the running sum of n standard-normal draws.
func NewPriceSeries(src data.Source, n int, offset float64) model.PriceSeries {
	if n <= 0 {
		return model.PriceSeries{}
	}
	path := CumSum(data.Normals(src, n))
	floats.AddConst(offset, path)
	return model.PriceSeries(path)
}

// CumSum returns the running total of values in a new slice.
func CumSum(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	return floats.CumSum(out, values)
}

// RollingMean computes the trailing arithmetic mean over window values.
// Entries before the first full window are NaN. A window longer than the
// input leaves every entry undefined.
func RollingMean(values []float64, window int) (model.MovingAverage, error) {
	if window < 1 {
		return model.MovingAverage{}, fmt.Errorf("%w: got %d", ErrInvalidWindow, window)
	}
	out := make([]float64, len(values))
	for i := range out {
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		out[i] = stat.Mean(values[i-window+1:i+1], nil)
	}
	return model.MovingAverage{Window: window, Values: out}, nil
}
