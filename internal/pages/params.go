package pages

import (
	"math"

	"quantdec/internal/config"
)

// Params carries the numeric controls. Pages ignore the ones they don't show.
type Params struct {
	ShortWindow    int     `json:"short_window"`
	LongWindow     int     `json:"long_window"`
	InitialBalance float64 `json:"initial_balance"`
	TradeSize      float64 `json:"trade_size"`
}

// DefaultParams returns every control at its configured default.
func (r *Router) DefaultParams() Params {
	c := r.cfg.Controls
	return Params{
		ShortWindow:    int(c.ShortWindow.Default),
		LongWindow:     int(c.LongWindow.Default),
		InitialBalance: c.InitialBalance.Default,
		TradeSize:      c.TradeSize.Default,
	}
}

// Clamp pins every control into its bounds. Windows are rounded to whole
// periods after clamping; NaN inputs fall back to the default.
func (r *Router) Clamp(p Params) Params {
	c := r.cfg.Controls
	return Params{
		ShortWindow:    clampInt(c.ShortWindow, p.ShortWindow),
		LongWindow:     clampInt(c.LongWindow, p.LongWindow),
		InitialBalance: clampFloat(c.InitialBalance, p.InitialBalance),
		TradeSize:      clampFloat(c.TradeSize, p.TradeSize),
	}
}

func clampInt(b config.Bounds, v int) int {
	return int(math.Round(b.Clamp(float64(v))))
}

func clampFloat(b config.Bounds, v float64) float64 {
	if math.IsNaN(v) {
		return b.Default
	}
	return b.Clamp(v)
}
