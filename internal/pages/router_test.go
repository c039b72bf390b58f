package pages

import (
	"bytes"
	"encoding/csv"
	"errors"
	"math"
	"testing"

	"quantdec/internal/config"
	"quantdec/internal/data"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *Router {
	var seed uint64 = 7
	return NewRouter(config.Default(), WithEntropy(func() data.Source {
		seed++
		return data.NewSeededSource(seed)
	}))
}

func TestPages_Order(t *testing.T) {
	r := NewRouter(nil)
	got := r.Pages()
	require.Len(t, got, 4)
	assert.Equal(t, []string{"Home", "Strategy Builder", "Trading Simulator", "Performance Dashboard"},
		[]string{got[0].Label, got[1].Label, got[2].Label, got[3].Label})

	got[0].Label = "mutated"
	assert.Equal(t, "Home", r.Pages()[0].Label)
}

func TestLookup(t *testing.T) {
	r := NewRouter(nil)
	tests := []struct {
		in   string
		slug string
		ok   bool
	}{
		{"Home", SlugHome, true},
		{"strategy-builder", SlugStrategy, true},
		{"  trading simulator ", SlugSimulator, true},
		{"PERFORMANCE-DASHBOARD", SlugPerformance, true},
		{"Backtest", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, ok := r.Lookup(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.slug, p.Slug)
		})
	}
}

func TestClamp(t *testing.T) {
	r := NewRouter(nil)
	tests := []struct {
		name string
		in   Params
		want Params
	}{
		{"defaults pass through", r.DefaultParams(), Params{20, 100, 10000, 1000}},
		{"below bounds", Params{1, 10, 0, 5}, Params{5, 50, 1000, 100}},
		{"above bounds", Params{99, 500, 5e6, 1e5}, Params{50, 200, 1000000, 10000}},
		{"NaN money", Params{20, 100, math.NaN(), math.NaN()}, Params{20, 100, 10000, 1000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Clamp(tt.in))
		})
	}
}

func TestRender_UnknownPage(t *testing.T) {
	_, err := NewRouter(nil).Render("nope", Params{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPage))
}

func TestRender_Home(t *testing.T) {
	v, err := NewRouter(nil).Render("Home", Params{})
	require.NoError(t, err)

	assert.Equal(t, SlugHome, v.Page.Slug)
	assert.Equal(t, "Welcome to QuantDec", v.Heading)
	require.NotNil(t, v.Image)
	assert.Equal(t, "Quantitative Finance in Action", v.Image.Caption)
	assert.Empty(t, v.Charts)
	assert.False(t, v.HasData())
	assert.ErrorIs(t, v.WriteCSV(&bytes.Buffer{}), ErrNoSeries)
}

func TestRender_StrategyBuilder(t *testing.T) {
	r := newTestRouter()
	v, err := r.Render(SlugStrategy, Params{ShortWindow: 3, LongWindow: 120})
	require.NoError(t, err)

	assert.Equal(t, "📈 Strategy Builder", v.Heading)
	assert.Equal(t, 5, v.Params.ShortWindow, "short window clamped")
	require.Len(t, v.Controls, 2)
	assert.Equal(t, 5.0, v.Controls[0].Value)
	assert.Equal(t, "5 to 50", v.Controls[0].RangeLabel)

	res := v.Strategy
	require.NotNil(t, res)
	assert.Len(t, res.Price, 500)
	assert.Equal(t, 4, res.Short.Undefined())
	assert.Equal(t, 119, res.Long.Undefined())
	require.Len(t, v.Charts, 1)
	assert.Contains(t, string(v.Charts[0].SVG), "<svg")

	again, err := r.Render(SlugStrategy, Params{ShortWindow: 3, LongWindow: 120})
	require.NoError(t, err)
	assert.Equal(t, res.Price, again.Strategy.Price, "seeded page is reproducible")
}

func TestRender_StrategyCSV(t *testing.T) {
	v, err := newTestRouter().Render(SlugStrategy, Params{ShortWindow: 20, LongWindow: 100})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, v.WriteCSV(&buf))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 501)
	assert.Equal(t, []string{"index", "price", "sma_short", "sma_long"}, rows[0])
	assert.Equal(t, "", rows[1][2])
	assert.Equal(t, "", rows[99][3])
	assert.NotEmpty(t, rows[20][2])
	assert.NotEmpty(t, rows[100][3])
}

func TestRender_TradingSimulator(t *testing.T) {
	v, err := newTestRouter().Render("Trading Simulator", Params{InitialBalance: 5000, TradeSize: 250})
	require.NoError(t, err)

	assert.Equal(t, "Simulating 100 trades with random PnL outcomes...", v.Notice)
	sim := v.Simulation
	require.NotNil(t, sim)
	require.Len(t, sim.Balance, 101)
	assert.Equal(t, 5000.0, sim.Balance[0])
	assert.Equal(t, sim.FinalBalance, sim.Balance[100])

	require.Len(t, v.Metrics, 3)
	assert.Equal(t, "Final Balance", v.Metrics[0].Label)
	assert.Equal(t, FormatFixed(sim.FinalBalance), v.Metrics[0].Display)
	assert.Contains(t, string(v.Charts[0].SVG), "Simulated Trading Balance Over Time")

	var buf bytes.Buffer
	require.NoError(t, v.WriteCSV(&buf))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 102)
}

func TestRender_PerformanceDashboard(t *testing.T) {
	v, err := newTestRouter().Render(SlugPerformance, Params{})
	require.NoError(t, err)

	rep := v.Performance
	require.NotNil(t, rep)
	require.Len(t, rep.Cumulative, 1000)
	assert.Equal(t, rep.Cumulative[999], rep.Summary.TotalReturn)

	labels := []string{v.Metrics[0].Label, v.Metrics[1].Label, v.Metrics[2].Label}
	assert.Equal(t, []string{"Total Return", "Sharpe Ratio", "Max Drawdown"}, labels)
	assert.LessOrEqual(t, v.Metrics[2].Value, 0.0)

	require.Len(t, v.Stats, 8)
	assert.Equal(t, "1,000", v.Stats[0].Display)
	byLabel := map[string]Metric{}
	for _, m := range v.Stats {
		byLabel[m.Label] = m
	}
	assert.Equal(t, rep.Stats.Mean, byLabel["Mean"].Value)
	assert.Equal(t, rep.Stats.P05, byLabel["P05"].Value)
	assert.Equal(t, FormatFixed(rep.Stats.P95), byLabel["P95"].Display)
}

func TestRender_UnseededPagesVary(t *testing.T) {
	r := NewRouter(nil)
	a, err := r.Render(SlugPerformance, Params{})
	require.NoError(t, err)
	b, err := r.Render(SlugPerformance, Params{})
	require.NoError(t, err)
	assert.NotEqual(t, a.Performance.Returns, b.Performance.Returns)
}

func TestFormatFixed(t *testing.T) {
	assert.Equal(t, "3.14", FormatFixed(3.14159))
	assert.Equal(t, "-2.50", FormatFixed(-2.5))
	assert.Equal(t, "10000.00", FormatFixed(10000))
	assert.Equal(t, "NaN", FormatFixed(math.NaN()))
	assert.Equal(t, "+Inf", FormatFixed(math.Inf(1)))
}

func TestWriteColumns(t *testing.T) {
	var buf bytes.Buffer
	err := writeColumns(&buf, []string{"index", "v"}, []float64{1.5, math.NaN()})
	require.NoError(t, err)
	assert.Equal(t, "index,v\n0,1.500000\n1,\n", buf.String())

	require.Error(t, writeColumns(&buf, []string{"index"}, []float64{1}))
	require.Error(t, writeColumns(&buf, []string{"index", "a", "b"}, []float64{1}, []float64{1, 2}))
}
