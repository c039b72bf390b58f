package model

import "math"

// ReturnsSummary is the headline triple shown on the performance dashboard.
//
// SharpeRatio is NaN when the returns have zero variance (or there are none).
// MaxDrawdown is never positive; more negative means a deeper drawdown.
type ReturnsSummary struct {
	TotalReturn float64
	SharpeRatio float64
	MaxDrawdown float64
}

func (s ReturnsSummary) SharpeDefined() bool {
	return !math.IsNaN(s.SharpeRatio) && !math.IsInf(s.SharpeRatio, 0)
}

// SignalKind tells which way a moving-average crossover went.
type SignalKind string

const (
	SignalBullish SignalKind = "BULLISH"
	SignalBearish SignalKind = "BEARISH"
)

// Signal marks the index at which the short average crossed the long one.
type Signal struct {
	Index int
	Kind  SignalKind
	Price float64
	Short float64
	Long  float64
}
