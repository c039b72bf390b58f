package chart

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegments(t *testing.T) {
	nan := math.NaN()
	segs := Segments([]float64{nan, nan, 1, 2, nan, 3})

	require.Len(t, segs, 2)
	assert.Equal(t, 2.0, segs[0][0].X)
	assert.Equal(t, 1.0, segs[0][0].Y)
	assert.Len(t, segs[0], 2)
	assert.Equal(t, 5.0, segs[1][0].X)

	assert.Empty(t, Segments([]float64{nan}))
	assert.Equal(t, 0.0, Segments([]float64{7})[0][0].X)
}

func TestLine_RendersSVG(t *testing.T) {
	nan := math.NaN()
	svg, err := Line(Spec{
		Title:  "Simulated Trading Balance Over Time",
		XLabel: "Trade #",
		YLabel: "Balance",
		Series: []Series{
			{Name: "Price", Values: []float64{1, 2, 3, 2}},
			{Name: "SMA_Short", Values: []float64{nan, 1.5, 2.5, 2.5}},
		},
	})
	require.NoError(t, err)

	out := string(svg)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "Trade #")
	assert.Contains(t, out, "SMA_Short")
	assert.True(t, strings.HasPrefix(string(Inline(svg)), "<svg"))
}

func TestLine_AllUndefined(t *testing.T) {
	svg, err := Line(Spec{
		Title:  "empty",
		Series: []Series{{Name: "gap", Values: []float64{math.NaN(), math.NaN()}}},
	})
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}
