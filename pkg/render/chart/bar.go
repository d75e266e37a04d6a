package chart

import (
	"image/color"
	"slices"
	"sort"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/render/sink"
	"github.com/matzehuels/plotkit/pkg/render/style"
)

// barFill is the share of its slot a bar covers.
const barFill = 0.8

// Bar is one named value.
type Bar struct {
	Key   string
	Value float64
}

// BarPlot draws bars in input order in the first cycle colour.
func BarPlot(bars []Bar, labels style.Labels) (*sink.Figure, error) {
	colors := make([]color.Color, len(bars))
	for i := range colors {
		colors[i] = style.Cycle(0)
	}
	return bar(bars, colors, labels)
}

// SortedBar draws bars by ascending value. Colours are assigned to the
// sorted keys, so a key keeps its colour across calls with the same keys.
func SortedBar(bars []Bar, labels style.Labels) (*sink.Figure, error) {
	sorted, colors := sortBars(bars)
	return bar(sorted, colors, labels)
}

func sortBars(bars []Bar) ([]Bar, []color.Color) {
	keys := make([]string, len(bars))
	for i, b := range bars {
		keys[i] = b.Key
	}
	sort.Strings(keys)
	cmap := style.Colormap(keys)

	sorted := slices.Clone(bars)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Value < sorted[j].Value })

	colors := make([]color.Color, len(sorted))
	for i, b := range sorted {
		colors[i] = cmap[b.Key]
	}
	return sorted, colors
}

func bar(bars []Bar, colors []color.Color, labels style.Labels) (*sink.Figure, error) {
	if len(bars) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "bar plot needs at least one bar")
	}
	if err := validate(labels); err != nil {
		return nil, err
	}

	p := style.NewPlot()
	width := barWidth(len(bars))
	names := make([]string, len(bars))
	for i, b := range bars {
		if err := errors.ValidateLabel(b.Key); err != nil {
			return nil, err
		}
		bc, err := plotter.NewBarChart(plotter.Values{b.Value}, width)
		if err != nil {
			return nil, invalidData(err, "bar "+b.Key)
		}
		bc.XMin = float64(i)
		bc.Color = colors[i]
		bc.LineStyle.Width = 0
		p.Add(bc)
		names[i] = b.Key
	}
	p.NominalX(names...)

	style.Apply(p, labels, false)
	return figure(p, style.DefaultMargins), nil
}

// barWidth splits the default data area into equal slots.
func barWidth(n int) vg.Length {
	m := style.DefaultMargins
	area := style.DefaultSize.Width - m.Left - m.Right
	return area / vg.Length(n) * barFill
}
