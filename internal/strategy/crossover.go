package strategy

import (
	"quantdec/internal/model"
	"quantdec/internal/series"
)

// SMACrossover is long while the short average sits above the long one and
// short while it sits below. Indices without both averages are flat.
type SMACrossover struct{}

func (SMACrossover) Name() string { return "sma_crossover" }

func (SMACrossover) Decide(ctx Context) model.Position {
	i := ctx.Index
	if !ctx.Short.Defined(i) || !ctx.Long.Defined(i) {
		return model.PositionFlat
	}
	return model.PositionFromSpread(ctx.Short.Values[i] - ctx.Long.Values[i])
}

// Positions evaluates s at every index of res.
func Positions(s Strategy, res *series.Result) []model.Position {
	if res == nil {
		return nil
	}
	out := make([]model.Position, len(res.Price))
	for i, p := range res.Price {
		out[i] = s.Decide(Context{
			Index: i,
			Price: p,
			Short: res.Short,
			Long:  res.Long,
		})
	}
	return out
}

// Signals reports every flip between long and short. Flat stretches (equal
// averages) do not reset the last position, so touching without crossing is
// not a signal.
func Signals(s Strategy, res *series.Result) []model.Signal {
	positions := Positions(s, res)
	var (
		out  []model.Signal
		last = model.PositionFlat
	)
	for i, pos := range positions {
		if pos == model.PositionFlat {
			continue
		}
		if last != model.PositionFlat && pos != last {
			kind := model.SignalBullish
			if pos == model.PositionShort {
				kind = model.SignalBearish
			}
			out = append(out, model.Signal{
				Index: i,
				Kind:  kind,
				Price: res.Price[i],
				Short: res.Short.Values[i],
				Long:  res.Long.Values[i],
			})
		}
		last = pos
	}
	return out
}
