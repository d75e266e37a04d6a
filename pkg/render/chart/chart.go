package chart

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/render/sink"
	"github.com/matzehuels/plotkit/pkg/render/style"
)

// DefaultLineWidth is the width of data lines.
var DefaultLineWidth = vg.Points(0.5)

// Chart is a plot drawn with its data area at fixed margins.
type Chart struct {
	Plot    *plot.Plot
	Margins style.Margins
}

// Draw implements sink.Drawer.
func (ch *Chart) Draw(c draw.Canvas) {
	ch.Plot.Draw(style.Place(ch.Plot, c, ch.Margins))
}

func figure(p *plot.Plot, m style.Margins) *sink.Figure {
	return sink.NewFigure(style.DefaultSize, &Chart{Plot: p, Margins: m})
}

// XYsFromRows converts [x, y] rows to points.
func XYsFromRows(rows [][]float64) (plotter.XYs, error) {
	xys := make(plotter.XYs, len(rows))
	for i, r := range rows {
		if len(r) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidShape, "points need to be 2D (row %d has %d values)", i, len(r))
		}
		xys[i] = plotter.XY{X: r[0], Y: r[1]}
	}
	return xys, nil
}

func invalidData(err error, what string) error {
	return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid %s", what)
}
