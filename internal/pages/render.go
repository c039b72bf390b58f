package pages

import (
	"fmt"
	"io"

	"quantdec/internal/analysis"
	"quantdec/internal/chart"
	"quantdec/internal/series"
	"quantdec/internal/simulator"
	"quantdec/internal/strategy"
)

func renderHome(r *Router, _ Params) (*View, error) {
	pc := r.cfg.Page
	return &View{
		Heading: "Welcome to " + pc.Title,
		Intro:   "### Your quantitative trading simulator and strategy builder.",
		Image:   &Image{URL: pc.HeroImageURL, Caption: pc.HeroCaption},
		Notice:  "Use the sidebar to navigate through strategy building, simulation, and performance dashboards.",
	}, nil
}

func renderStrategy(r *Router, p Params) (*View, error) {
	res, err := series.Generate(r.seeded(), series.Params{
		Length:      r.cfg.Series.Length,
		Offset:      r.cfg.Series.Offset,
		ShortWindow: p.ShortWindow,
		LongWindow:  p.LongWindow,
	})
	if err != nil {
		return nil, err
	}

	svg, err := chart.Line(chart.Spec{
		Title:  "Simulated Price",
		XLabel: "Index",
		YLabel: "Price",
		Series: []chart.Series{
			{Name: "Price", Values: res.Price},
			{Name: "SMA_Short", Values: res.Short.Values},
			{Name: "SMA_Long", Values: res.Long.Values},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("price chart: %w", err)
	}

	c := r.cfg.Controls
	return &View{
		Heading: "📈 Strategy Builder",
		Intro:   "Define your strategy parameters:",
		Notice:  "Generating simulated price data...",
		Params:  p,
		Controls: []Control{
			newControl("short_window", "Short Moving Average Window", c.ShortWindow, float64(p.ShortWindow)),
			newControl("long_window", "Long Moving Average Window", c.LongWindow, float64(p.LongWindow)),
		},
		Charts:   []Chart{{Title: "Simulated Price", SVG: svg}},
		Signals:  strategy.Signals(r.strategy, res),
		Strategy: res,
		csv:      func(w io.Writer) error { return writeStrategyCSV(w, res) },
	}, nil
}

func renderSimulator(r *Router, p Params) (*View, error) {
	res, err := r.engine.Run(r.entropy(), simulator.Params{
		InitialBalance: p.InitialBalance,
		TradeSize:      p.TradeSize,
		Trades:         r.cfg.Simulator.Trades,
	})
	if err != nil {
		return nil, err
	}

	const title = "Simulated Trading Balance Over Time"
	svg, err := chart.Line(chart.Spec{
		Title:  title,
		XLabel: "Trade #",
		YLabel: "Balance",
		Series: []chart.Series{{Name: "Account Balance", Values: res.Balance}},
	})
	if err != nil {
		return nil, fmt.Errorf("balance chart: %w", err)
	}

	c := r.cfg.Controls
	return &View{
		Heading: "⚙️ Trading Simulator",
		Notice:  fmt.Sprintf("Simulating %d trades with random PnL outcomes...", r.cfg.Simulator.Trades),
		Params:  p,
		Controls: []Control{
			newControl("initial_balance", "Initial Balance", c.InitialBalance, p.InitialBalance),
			newControl("trade_size", "Trade Size", c.TradeSize, p.TradeSize),
		},
		Metrics: []Metric{
			newMetric("Final Balance", res.FinalBalance),
			newMetric("Total PnL", res.TotalPnL),
			newMetric("Win Rate %", res.WinRate()*100),
		},
		Charts:     []Chart{{Title: title, SVG: svg}},
		Simulation: res,
		csv:        func(w io.Writer) error { return simulator.WriteLedgerCSV(w, res) },
	}, nil
}

func renderPerformance(r *Router, _ Params) (*View, error) {
	rep, err := analysis.Compute(r.entropy(), r.cfg.Metrics.Samples, r.cfg.Metrics.PeriodsPerYear)
	if err != nil {
		return nil, err
	}

	const title = "Cumulative Returns"
	svg, err := chart.Line(chart.Spec{
		Title:  title,
		XLabel: "Period",
		YLabel: "Cumulative Return",
		Series: []chart.Series{{Name: title, Values: rep.Cumulative}},
	})
	if err != nil {
		return nil, fmt.Errorf("returns chart: %w", err)
	}

	return &View{
		Heading: "📊 Performance Dashboard",
		Intro:   "Here’s a summary of key metrics:",
		Metrics: []Metric{
			newMetric("Total Return", rep.Summary.TotalReturn),
			newMetric("Sharpe Ratio", rep.Summary.SharpeRatio),
			newMetric("Max Drawdown", rep.Summary.MaxDrawdown),
		},
		Stats:       statMetrics(rep.Stats),
		Charts:      []Chart{{Title: title, SVG: svg}},
		Performance: rep,
		csv:         func(w io.Writer) error { return writePerformanceCSV(w, rep) },
	}, nil
}
