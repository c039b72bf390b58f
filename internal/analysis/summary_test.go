package analysis

import (
	"math"
	"testing"

	"quantdec/internal/data"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_TotalReturnMatchesChart(t *testing.T) {
	rep, err := Compute(data.NewEntropySource(), DefaultSamples, TradingDaysPerYear)
	require.NoError(t, err)

	require.Len(t, rep.Returns, DefaultSamples)
	require.Len(t, rep.Cumulative, DefaultSamples)
	assert.Equal(t, rep.Cumulative[len(rep.Cumulative)-1], rep.Summary.TotalReturn)
	assert.LessOrEqual(t, rep.Summary.MaxDrawdown, 0.0)
	assert.True(t, rep.Summary.SharpeDefined())
	assert.Equal(t, DefaultSamples, rep.Stats.Count)
}

func TestCompute_NilSource(t *testing.T) {
	_, err := Compute(nil, 10, TradingDaysPerYear)
	require.Error(t, err)
}

func TestSharpeRatio(t *testing.T) {
	tests := []struct {
		name    string
		returns []float64
		want    float64
		nan     bool
	}{
		{name: "empty", returns: nil, nan: true},
		{name: "identical zeros", returns: []float64{0, 0, 0, 0}, nan: true},
		{name: "identical non-zero", returns: []float64{0.1, 0.1, 0.1}, nan: true},
		{name: "single value", returns: []float64{3}, nan: true},
		// mean 2, population std 1
		{name: "known", returns: []float64{1, 3}, want: 2 * math.Sqrt(TradingDaysPerYear)},
		{name: "negative mean", returns: []float64{-1, -3}, want: -2 * math.Sqrt(TradingDaysPerYear)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SharpeRatio(tt.returns, TradingDaysPerYear)
			if tt.nan {
				assert.True(t, math.IsNaN(got), "want NaN, got %v", got)
				return
			}
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestMaxDrawdown(t *testing.T) {
	tests := []struct {
		name string
		cum  []float64
		want float64
	}{
		{name: "empty", cum: nil, want: 0},
		{name: "non-decreasing", cum: []float64{1, 1, 2, 5}, want: 0},
		{name: "single dip", cum: []float64{0, 3, 1, 4}, want: -2},
		{name: "deepest of two", cum: []float64{5, 2, 6, 1, 7}, want: -5},
		{name: "starts falling", cum: []float64{-1, -2, -4}, want: -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxDrawdown(tt.cum))
		})
	}
}

func TestMaxDrawdown_NeverPositive(t *testing.T) {
	src := data.NewSeededSource(3)
	for i := 0; i < 20; i++ {
		rep, err := Compute(src, 50, TradingDaysPerYear)
		require.NoError(t, err)
		assert.LessOrEqual(t, rep.Summary.MaxDrawdown, 0.0)
	}
}

func TestSummarize_ZeroVariance(t *testing.T) {
	s := Summarize([]float64{0.5, 0.5, 0.5, 0.5}, TradingDaysPerYear)
	assert.True(t, math.IsNaN(s.SharpeRatio))
	assert.False(t, s.SharpeDefined())
	assert.Equal(t, 2.0, s.TotalReturn)
	assert.Equal(t, 0.0, s.MaxDrawdown)
}

func TestTotalReturn_Empty(t *testing.T) {
	assert.Zero(t, TotalReturn(nil))
}

func TestDescribe(t *testing.T) {
	d := Describe([]float64{4, -1, 2, 0, 5})
	assert.Equal(t, 5, d.Count)
	assert.Equal(t, -1.0, d.Min)
	assert.Equal(t, 5.0, d.Max)
	assert.InDelta(t, 2.0, d.Mean, 1e-12)
	assert.InDelta(t, 0.6, d.Positive, 1e-12)
	// sorted: -1 0 2 4 5; p05 falls inside the first step, p95 a quarter
	// of the way back from 5 toward 4
	assert.InDelta(t, -1.0, d.P05, 1e-12)
	assert.InDelta(t, 4.75, d.P95, 1e-12)
	assert.InDelta(t, math.Sqrt(5.2), d.StdDev, 1e-12)

	assert.Zero(t, Describe(nil).Count)
}
