package model

import "math"

// PriceSeries is a synthetic price path with one value per step.
type PriceSeries []float64

// MovingAverage is aligned index-for-index with the series it was computed from.
// Values[i] is NaN until a full window is available.
type MovingAverage struct {
	Window int
	Values []float64
}

func (m MovingAverage) Len() int { return len(m.Values) }

// Defined reports whether index i carries a value.
func (m MovingAverage) Defined(i int) bool {
	return i >= 0 && i < len(m.Values) && !math.IsNaN(m.Values[i])
}

// FirstDefined returns the first index with a value, or -1.
func (m MovingAverage) FirstDefined() int {
	for i := range m.Values {
		if m.Defined(i) {
			return i
		}
	}
	return -1
}

// Undefined counts the leading gap.
func (m MovingAverage) Undefined() int {
	n := 0
	for i := range m.Values {
		if m.Defined(i) {
			break
		}
		n++
	}
	return n
}
