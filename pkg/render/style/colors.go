package style

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
)

// Cycle returns the i-th colour of the default colour cycle.
func Cycle(i int) color.Color {
	return plotutil.Color(i)
}

// Colormap assigns cycle colours to keys in the given order. Callers that
// need a key to keep its colour across figures pass the keys sorted.
func Colormap(keys []string) map[string]color.Color {
	m := make(map[string]color.Color, len(keys))
	for i, k := range keys {
		m[k] = Cycle(i)
	}
	return m
}

// WithAlpha returns c with its opacity set to alpha, clamped to [0, 1].
func WithAlpha(c color.Color, alpha float64) color.NRGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(alpha * 255))
	return n
}

// Enumerate pairs each value with its index: (i, y[i]).
func Enumerate(y []float64) plotter.XYs {
	xys := make(plotter.XYs, len(y))
	for i, v := range y {
		xys[i] = plotter.XY{X: float64(i), Y: v}
	}
	return xys
}
