// Package analysis computes the performance dashboard's summary statistics.
package analysis

import (
	"errors"
	"math"

	"quantdec/internal/data"
	"quantdec/internal/model"
	"quantdec/internal/series"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	// TradingDaysPerYear annualises daily-frequency returns.
	TradingDaysPerYear = 252

	// DefaultSamples is the length of the dashboard's returns series.
	DefaultSamples = 1000
)

// Report bundles the returns the dashboard charts with the numbers it shows,
// so the headline total return is always the chart's last point.
type Report struct {
	Returns    []float64
	Cumulative []float64
	Summary    model.ReturnsSummary
	Stats      Descriptive
}

// Compute draws n returns from src and summarises them.
func Compute(src data.Source, n int, periodsPerYear float64) (*Report, error) {
	if src == nil {
		return nil, errors.New("analysis: source is nil")
	}
	returns := data.Normals(src, n)
	return Analyze(returns, periodsPerYear), nil
}

// Analyze summarises an existing returns series.
func Analyze(returns []float64, periodsPerYear float64) *Report {
	cum := series.CumSum(returns)
	return &Report{
		Returns:    returns,
		Cumulative: cum,
		Summary: model.ReturnsSummary{
			TotalReturn: TotalReturn(cum),
			SharpeRatio: SharpeRatio(returns, periodsPerYear),
			MaxDrawdown: MaxDrawdown(cum),
		},
		Stats: Describe(returns),
	}
}

// Summarize computes the headline triple for returns.
func Summarize(returns []float64, periodsPerYear float64) model.ReturnsSummary {
	return Analyze(returns, periodsPerYear).Summary
}

// TotalReturn is the last cumulative value, 0 for an empty series.
func TotalReturn(cumulative []float64) float64 {
	if len(cumulative) == 0 {
		return 0
	}
	return cumulative[len(cumulative)-1]
}

// SharpeRatio is mean over population standard deviation, scaled by
// sqrt(periodsPerYear). It is NaN when the series is empty or has zero variance.
func SharpeRatio(returns []float64, periodsPerYear float64) float64 {
	if len(returns) == 0 {
		return math.NaN()
	}
	// Identical values can leave a rounding-size std behind; treat them as flat.
	if floats.Min(returns) == floats.Max(returns) {
		return math.NaN()
	}
	mean, std := stat.PopMeanStdDev(returns, nil)
	if std == 0 || math.IsNaN(std) {
		return math.NaN()
	}
	return mean / std * math.Sqrt(periodsPerYear)
}

// MaxDrawdown is the most negative gap between the cumulative series and its
// running maximum. It is 0 for an empty or non-decreasing series.
func MaxDrawdown(cumulative []float64) float64 {
	if len(cumulative) == 0 {
		return 0
	}
	peak := cumulative[0]
	worst := 0.0
	for _, v := range cumulative {
		if v > peak {
			peak = v
		}
		if dd := v - peak; dd < worst {
			worst = dd
		}
	}
	return worst
}
