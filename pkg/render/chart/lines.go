package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/render/sink"
	"github.com/matzehuels/plotkit/pkg/render/style"
)

const bandOpacity = 0.1

// Line is one labelled polyline.
type Line struct {
	Label  string
	Points plotter.XYs

	// Width defaults to DefaultLineWidth and Color to the next cycle colour.
	Width  vg.Length
	Color  color.Color
	Dashes []vg.Length
}

// Pair is one row of an info table.
type Pair struct {
	Key   string
	Value string
}

// Info is an ordered key/value table.
type Info []Pair

// Add appends a row, formatting value with %v.
func (in Info) Add(key string, value any) Info {
	return append(in, Pair{Key: key, Value: fmt.Sprint(value)})
}

// LinesOptions configures Lines.
type LinesOptions struct {
	Legend bool

	// Info is drawn as a table to the right of the plot when non-empty.
	Info Info

	// Margins replaces style.DefaultMargins.
	Margins *style.Margins
}

// Lines draws one polyline per entry.
func Lines(lines []Line, labels style.Labels, opts LinesOptions) (*sink.Figure, error) {
	if err := validate(labels); err != nil {
		return nil, err
	}
	m := style.DefaultMargins
	if opts.Margins != nil {
		if err := opts.Margins.Validate(style.DefaultSize); err != nil {
			return nil, err
		}
		m = *opts.Margins
	}

	p := style.NewPlot()
	for i, ln := range lines {
		l, err := plotter.NewLine(ln.Points)
		if err != nil {
			return nil, invalidData(err, "line "+ln.Label)
		}
		l.Color = ln.Color
		if l.Color == nil {
			l.Color = style.Cycle(i)
		}
		l.Width = ln.Width
		if l.Width <= 0 {
			l.Width = DefaultLineWidth
		}
		l.Dashes = ln.Dashes
		p.Add(l)
		p.Legend.Add(ln.Label, l)
	}
	style.Apply(p, labels, opts.Legend)

	ch := &Chart{Plot: p, Margins: m}
	if len(opts.Info) == 0 {
		return sink.NewFigure(style.DefaultSize, ch), nil
	}

	for _, row := range opts.Info {
		if err := errors.ValidateLabel(row.Key); err != nil {
			return nil, err
		}
	}
	tiles := draw.Tiles{Rows: 1, Cols: 2}
	return sink.NewFigure(style.DefaultSize, sink.DrawerFunc(func(c draw.Canvas) {
		ch.Draw(tiles.At(c, 0, 0))
		infoTable{rows: opts.Info}.Draw(tiles.At(c, 1, 0))
	})), nil
}

// Band is a line with a symmetric error. Error holds (x, err) rows
// matching Line point for point.
type Band struct {
	Label string
	Line  plotter.XYs
	Error plotter.XYs
}

// LinesConfidence draws each band's line with the area between y-err and
// y+err shaded in the same colour.
func LinesConfidence(bands []Band, labels style.Labels, legend bool) (*sink.Figure, error) {
	if err := validate(labels); err != nil {
		return nil, err
	}

	p := style.NewPlot()
	for i, b := range bands {
		if len(b.Line) != len(b.Error) {
			return nil, errors.New(errors.ErrCodeInvalidShape,
				"band %q has %d points but %d errors", b.Label, len(b.Line), len(b.Error))
		}
		clr := style.Cycle(i)

		if len(b.Line) > 0 {
			poly, err := plotter.NewPolygon(envelope(b.Line, b.Error))
			if err != nil {
				return nil, invalidData(err, "band "+b.Label)
			}
			poly.Color = style.WithAlpha(clr, bandOpacity)
			poly.LineStyle.Width = 0
			p.Add(poly)
		}

		l, err := plotter.NewLine(b.Line)
		if err != nil {
			return nil, invalidData(err, "band "+b.Label)
		}
		l.Color = clr
		l.Width = DefaultLineWidth
		p.Add(l)
		p.Legend.Add(b.Label, l)
	}
	style.Apply(p, labels, legend)
	return figure(p, style.DefaultMargins), nil
}

// envelope returns the closed outline of line +/- err: the upper edge left
// to right followed by the lower edge right to left.
func envelope(line, err plotter.XYs) plotter.XYs {
	n := len(line)
	ring := make(plotter.XYs, 2*n)
	for i, pt := range line {
		ring[i] = plotter.XY{X: pt.X, Y: pt.Y + err[i].Y}
		ring[2*n-1-i] = plotter.XY{X: pt.X, Y: pt.Y - err[i].Y}
	}
	return ring
}

// infoTable draws key/value rows as a bordered two-column table centred
// in its canvas.
type infoTable struct {
	rows Info
}

func (t infoTable) Draw(c draw.Canvas) {
	txt := style.Text(style.LegendFontSize)
	txt.YAlign = draw.YCenter
	pad := vg.Points(3)
	rowH := txt.Height("Xg") + 2*pad

	var keyW, valW vg.Length
	for _, r := range t.rows {
		keyW = max(keyW, txt.Width(r.Key))
		valW = max(valW, txt.Width(r.Value))
	}
	keyW += 2 * pad
	valW += 2 * pad

	width := min(keyW+valW, c.Max.X-c.Min.X)
	height := rowH * vg.Length(len(t.rows))
	center := c.Center()
	x0, x1, x2 := center.X-width/2, center.X-width/2+keyW, center.X+width/2
	top := center.Y + height/2

	border := draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)}
	for i, r := range t.rows {
		y := top - vg.Length(i)*rowH
		c.StrokeLine2(border, x0, y, x2, y)
		mid := y - rowH/2
		c.FillText(txt, vg.Point{X: x0 + pad, Y: mid}, r.Key)
		c.FillText(txt, vg.Point{X: x1 + pad, Y: mid}, r.Value)
	}
	bottom := top - height
	c.StrokeLine2(border, x0, bottom, x2, bottom)
	for _, x := range []vg.Length{x0, x1, x2} {
		c.StrokeLine2(border, x, bottom, x, top)
	}
}
