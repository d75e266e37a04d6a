package chart

import (
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/plotkit/pkg/render/sink"
	"github.com/matzehuels/plotkit/pkg/render/style"
)

// DefaultDotRadius is the radius of scatter markers.
var DefaultDotRadius = vg.Points(1)

// Points is one labelled point set.
type Points struct {
	Label string
	XYs   plotter.XYs
}

// ScatterOptions configures Scatter.
type ScatterOptions struct {
	Legend bool
	XLim   *style.Range
	YLim   *style.Range

	// Radius defaults to DefaultDotRadius.
	Radius vg.Length
}

// Scatter draws each point set as dots in its own colour.
func Scatter(sets []Points, labels style.Labels, opts ScatterOptions) (*sink.Figure, error) {
	if err := validate(labels, opts.XLim, opts.YLim); err != nil {
		return nil, err
	}
	radius := opts.Radius
	if radius <= 0 {
		radius = DefaultDotRadius
	}

	p := style.NewPlot()
	for i, set := range sets {
		s, err := plotter.NewScatter(set.XYs)
		if err != nil {
			return nil, invalidData(err, "points "+set.Label)
		}
		s.Color = style.Cycle(i)
		s.Radius = radius
		s.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(set.Label, s)
	}

	opts.XLim.Apply(&p.X)
	opts.YLim.Apply(&p.Y)
	style.Apply(p, labels, opts.Legend)
	return figure(p, style.DefaultMargins), nil
}
