package strategy

import "quantdec/internal/model"

type Context struct {
	Index int
	Price float64
	Short model.MovingAverage
	Long  model.MovingAverage
}

type Strategy interface {
	Name() string
	Decide(ctx Context) model.Position
}
