package simulator

import (
	"errors"
	"fmt"

	"quantdec/internal/data"
	"quantdec/internal/model"
)

// DefaultTrades is the number of trades simulated per run.
const DefaultTrades = 100

// ErrInvalidTrades is returned by Run for a negative trade count.
var ErrInvalidTrades = errors.New("trade count must be >= 0")

// Params configures one simulation. InitialBalance and TradeSize are taken
// as given; range checks belong to the caller.
type Params struct {
	InitialBalance float64
	TradeSize      float64
	Trades         int
}

// Engine runs trading simulations. It holds no state and is safe for
// concurrent use.
type Engine struct{}

// New returns a simulation engine.
func New() *Engine { return &Engine{} }

// Run draws one standard-normal PnL per trade, scales it by the trade size
// and accumulates the results onto the initial balance.
// The balance is unconstrained and may go negative.
func (e *Engine) Run(src data.Source, p Params) (*Result, error) {
	if src == nil {
		return nil, fmt.Errorf("source is nil")
	}
	if p.Trades < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrades, p.Trades)
	}

	draws := data.Normals(src, p.Trades)
	ledger := make([]LedgerRow, 0, len(draws))
	balance := make([]float64, 0, len(draws)+1)
	balance = append(balance, p.InitialBalance)

	res := &Result{
		InitialBalance: p.InitialBalance,
		TradeSize:      p.TradeSize,
	}

	cum := 0.0
	for idx, z := range draws {
		pnl := z * p.TradeSize
		before := p.InitialBalance + cum
		cum += pnl
		after := p.InitialBalance + cum

		outcome := model.OutcomeFromPnL(pnl)
		switch outcome {
		case model.OutcomeWin:
			res.Wins++
		case model.OutcomeLoss:
			res.Losses++
		default:
			res.Flats++
		}
		if idx == 0 || pnl > res.BestTrade {
			res.BestTrade = pnl
		}
		if idx == 0 || pnl < res.WorstTrade {
			res.WorstTrade = pnl
		}

		ledger = append(ledger, LedgerRow{
			Trade:         idx + 1,
			Draw:          z,
			PnL:           pnl,
			CumPnL:        cum,
			BalanceBefore: before,
			Balance:       after,
			Outcome:       outcome,
		})
		balance = append(balance, after)
	}

	res.Ledger = ledger
	res.Balance = balance
	res.TotalPnL = cum
	res.FinalBalance = balance[len(balance)-1]
	return res, nil
}
