package simulator

import "quantdec/internal/model"

// LedgerRow is one row of per-trade output.
// This is the primary artifact for "what happened" in a simulation.
type LedgerRow struct {
	// Trade is 1-based; trade #0 is the starting balance.
	Trade int

	// Draw is the raw standard-normal sample before scaling.
	Draw float64

	PnL    float64
	CumPnL float64

	BalanceBefore float64
	Balance       float64

	Outcome model.Outcome
}

type Result struct {
	Ledger []LedgerRow

	// Balance has len(Ledger)+1 points; Balance[0] is the initial balance.
	Balance []float64

	InitialBalance float64
	TradeSize      float64
	FinalBalance   float64
	TotalPnL       float64

	Wins   int
	Losses int
	Flats  int

	BestTrade  float64
	WorstTrade float64
}

// WinRate is the fraction of winning trades, 0 when no trades ran.
func (r *Result) WinRate() float64 {
	if r == nil || len(r.Ledger) == 0 {
		return 0
	}
	return float64(r.Wins) / float64(len(r.Ledger))
}
