package models

import "quantdec/internal/pages"

// PageQuery holds the control values a page request may carry.
// Absent fields keep their defaults; present ones are clamped by the router.
type PageQuery struct {
	ShortWindow    *int     `form:"short_window"`
	LongWindow     *int     `form:"long_window"`
	InitialBalance *float64 `form:"initial_balance"`
	TradeSize      *float64 `form:"trade_size"`
}

// Apply overlays the supplied fields onto base.
func (q PageQuery) Apply(base pages.Params) pages.Params {
	out := base
	if q.ShortWindow != nil {
		out.ShortWindow = *q.ShortWindow
	}
	if q.LongWindow != nil {
		out.LongWindow = *q.LongWindow
	}
	if q.InitialBalance != nil {
		out.InitialBalance = *q.InitialBalance
	}
	if q.TradeSize != nil {
		out.TradeSize = *q.TradeSize
	}
	return out
}
