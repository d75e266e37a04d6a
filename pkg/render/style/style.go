// Package style holds the shared look of plotkit figures: figure size,
// margins, fonts, grid lines, legend placement and the colour cycle.
//
// Every chart helper builds its plot with [NewPlot], draws data, calls
// [Apply] for titles and legend, and finally positions the data area with
// [Place]. Keeping these in one place is what makes figures from different
// helpers line up when they are put side by side in a document.
package style

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/plotkit/pkg/errors"
)

// Font sizes and line widths tuned for small (3in wide) figures.
var (
	TitleFontSize  = vg.Points(9)
	LabelFontSize  = vg.Points(8)
	TickFontSize   = vg.Points(7)
	LegendFontSize = vg.Points(7)
	GridLineWidth  = vg.Points(0.1)
)

// Size is a figure size.
type Size struct {
	Width  vg.Length
	Height vg.Length
}

// Inches returns a Size from inch dimensions.
func Inches(w, h float64) Size {
	return Size{Width: vg.Length(w) * vg.Inch, Height: vg.Length(h) * vg.Inch}
}

var (
	// DefaultSize is the size of single-panel charts.
	DefaultSize = Inches(3, 2)

	// SquareSize is the size of image grids.
	SquareSize = Inches(3, 3)
)

// Validate checks that both dimensions are positive.
func (s Size) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "figure size must be positive, got %vx%v", s.Width, s.Height)
	}
	return nil
}

// Labels are the title and axis labels of a chart.
type Labels struct {
	Title string
	X     string
	Y     string
}

// Validate checks every label.
func (l Labels) Validate() error {
	for _, s := range []string{l.Title, l.X, l.Y} {
		if err := errors.ValidateLabel(s); err != nil {
			return err
		}
	}
	return nil
}

// Range is an axis limit.
type Range struct {
	Min float64
	Max float64
}

// Validate checks that Min < Max.
func (r *Range) Validate() error {
	if r != nil && !(r.Min < r.Max) {
		return errors.New(errors.ErrCodeInvalidArgument, "axis limit min (%g) must be below max (%g)", r.Min, r.Max)
	}
	return nil
}

// Apply fixes the axis to r. A nil range leaves the axis untouched.
func (r *Range) Apply(a *plot.Axis) {
	if r == nil {
		return
	}
	a.Min, a.Max = r.Min, r.Max
}

// NewPlot returns a plot with major grid lines already added, so that
// data added afterwards is drawn on top of them.
func NewPlot() *plot.Plot {
	p := plot.New()

	g := plotter.NewGrid()
	g.Vertical.Width = GridLineWidth
	g.Horizontal.Width = GridLineWidth
	p.Add(g)

	p.X.Tick.Label.Font.Size = TickFontSize
	p.Y.Tick.Label.Font.Size = TickFontSize
	return p
}

// Apply sets the title, axis labels and fonts. When legend is false any
// legend entries added by the caller are discarded.
func Apply(p *plot.Plot, l Labels, legend bool) {
	p.Title.Text = l.Title
	p.Title.TextStyle.Font.Size = TitleFontSize

	p.X.Label.Text = l.X
	p.Y.Label.Text = l.Y
	p.X.Label.TextStyle.Font.Size = LabelFontSize
	p.Y.Label.TextStyle.Font.Size = LabelFontSize

	if !legend {
		p.Legend = plot.NewLegend()
		return
	}
	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = LegendFontSize
	p.Legend.ThumbnailWidth = vg.Points(12)
}

// Text returns a black text style in the plot font at the given size.
func Text(size vg.Length) draw.TextStyle {
	return draw.TextStyle{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, size),
		Handler: plot.DefaultTextHandler,
	}
}

// Place returns the part of c into which p must be drawn so that its data
// area sits exactly at the margins m. Sides where the axis decorations need
// more room than the margin allows are left uncropped.
func Place(p *plot.Plot, c draw.Canvas, m Margins) draw.Canvas {
	d := p.DataCanvas(c)

	left := excess(m.Left, d.Min.X-c.Min.X)
	right := excess(m.Right, c.Max.X-d.Max.X)
	bottom := excess(m.Bottom, d.Min.Y-c.Min.Y)
	top := excess(m.Top, c.Max.Y-d.Max.Y)

	return draw.Crop(c, left, -right, bottom, -top)
}

func excess(margin, used vg.Length) vg.Length {
	if margin > used {
		return margin - used
	}
	return 0
}
