package model

// Outcome is a human-friendly label for a single simulated trade.
// Keep these values stable; they are intended for CSV output.
type Outcome string

const (
	OutcomeWin  Outcome = "WIN"
	OutcomeFlat Outcome = "FLAT"
	OutcomeLoss Outcome = "LOSS"
)

func OutcomeFromPnL(pnl float64) Outcome {
	switch {
	case pnl > 0:
		return OutcomeWin
	case pnl < 0:
		return OutcomeLoss
	default:
		return OutcomeFlat
	}
}

// Position is the stance implied by two moving averages at one index.
type Position string

const (
	PositionLong  Position = "LONG"
	PositionFlat  Position = "FLAT"
	PositionShort Position = "SHORT"
)

// PositionFromSpread maps short-minus-long to a position.
func PositionFromSpread(spread float64) Position {
	switch {
	case spread > 0:
		return PositionLong
	case spread < 0:
		return PositionShort
	default:
		return PositionFlat
	}
}
