package analysis

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Descriptive holds plain summary statistics of a returns series.
// Percentiles follow gonum's stat.LinInterp rule.
type Descriptive struct {
	Count int

	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	P05    float64
	P95    float64

	// Positive is the fraction of strictly positive observations.
	Positive float64
}

// Describe summarizes values. An empty input yields the zero Descriptive.
func Describe(values []float64) Descriptive {
	d := Descriptive{}
	if len(values) == 0 {
		return d
	}
	d.Count = len(values)
	d.Mean, d.StdDev = stat.PopMeanStdDev(values, nil)
	d.Min = floats.Min(values)
	d.Max = floats.Max(values)

	// stat.Quantile requires ascending input.
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	d.P05 = stat.Quantile(0.05, stat.LinInterp, sorted, nil)
	d.P95 = stat.Quantile(0.95, stat.LinInterp, sorted, nil)

	pos := 0
	for _, v := range values {
		if v > 0 {
			pos++
		}
	}
	d.Positive = float64(pos) / float64(len(values))
	return d
}
