package images

import (
	"image"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/grid"
	"github.com/matzehuels/plotkit/pkg/render/sink"
	"github.com/matzehuels/plotkit/pkg/render/style"
)

// Sizes of grid titles.
var (
	SuptitleFontSize = style.TitleFontSize
	TileFontSize     = style.TickFontSize
)

// GridOptions configures Grid.
type GridOptions struct {
	// Titles label each image. It must be empty or match the batch.
	Titles []string

	// Padding is the space between tiles in inches.
	Padding float64

	// Compact allows a grid one row shorter than it is wide when the
	// batch fits. By default grids are square.
	Compact bool
}

// Named is an image with a label.
type Named struct {
	Name   string
	Tensor Tensor
}

// Grid tiles a batch of images on a square figure under a common title.
// Cells past the end of the batch stay blank.
func Grid(batch []Tensor, title string, opts GridOptions) (*sink.Figure, error) {
	shape, err := grid.For(len(batch), !opts.Compact)
	if err != nil {
		return nil, err
	}
	if len(opts.Titles) != 0 && len(opts.Titles) != len(batch) {
		return nil, errors.New(errors.ErrCodeInvalidShape, "got %d titles for %d images", len(opts.Titles), len(batch))
	}
	if opts.Padding < 0 {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "padding must not be negative, got %g", opts.Padding)
	}
	if err := errors.ValidateLabel(title); err != nil {
		return nil, err
	}

	named := make([]Named, len(batch))
	for i, t := range batch {
		named[i].Tensor = t
		if len(opts.Titles) != 0 {
			named[i].Name = opts.Titles[i]
		}
	}
	g, err := newTiled(named, shape, vg.Length(opts.Padding)*vg.Inch)
	if err != nil {
		return nil, err
	}
	g.title = title
	return sink.NewFigure(style.SquareSize, g), nil
}

// Subgrid returns a drawer that tiles named images in shape, each labelled
// with its name. Place it with sink.Panels to put several grids on one
// figure.
func Subgrid(named []Named, shape grid.Shape, padding vg.Length) (sink.Drawer, error) {
	if shape.Rows < 1 || shape.Cols < 1 {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "grid shape must be at least 1x1, got %s", shape)
	}
	if !shape.Fits(len(named)) {
		return nil, errors.New(errors.ErrCodeInvalidShape, "%d images do not fit a %s grid", len(named), shape)
	}
	if padding < 0 {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "padding must not be negative")
	}
	return newTiled(named, shape, padding)
}

// Image draws a single image with no axes. The longer side of the figure
// is three inches.
func Image(t Tensor, title string) (*sink.Figure, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := errors.ValidateLabel(title); err != nil {
		return nil, err
	}
	size := style.SquareSize
	if t.Width > t.Height {
		size.Height = size.Width * vg.Length(t.Height) / vg.Length(t.Width)
	} else {
		size.Width = size.Height * vg.Length(t.Width) / vg.Length(t.Height)
	}
	if title != "" {
		size.Height += titleHeight(style.Text(SuptitleFontSize))
	}
	return sink.NewFigure(size, &tile{img: t.Image(), title: title, font: SuptitleFontSize}), nil
}

// tiled is a grid of image tiles with an optional title above it.
type tiled struct {
	shape grid.Shape
	tiles []*tile
	pad   vg.Length
	title string
}

func newTiled(named []Named, shape grid.Shape, pad vg.Length) (*tiled, error) {
	g := &tiled{shape: shape, pad: pad, tiles: make([]*tile, len(named))}
	for i, n := range named {
		if err := n.Tensor.Validate(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidShape, err, "image %d", i+1)
		}
		if err := errors.ValidateLabel(n.Name); err != nil {
			return nil, err
		}
		g.tiles[i] = &tile{img: n.Tensor.Image(), title: n.Name, font: TileFontSize}
	}
	return g, nil
}

func (g *tiled) Draw(c draw.Canvas) {
	var top vg.Length
	if g.title != "" {
		txt := style.Text(SuptitleFontSize)
		txt.XAlign = draw.XCenter
		txt.YAlign = draw.YTop
		top = titleHeight(txt)
		c.FillText(txt, vg.Point{X: c.Center().X, Y: c.Max.Y - titlePad}, g.title)
	}

	tiles := draw.Tiles{
		Rows:   g.shape.Rows,
		Cols:   g.shape.Cols,
		PadTop: top,
		PadX:   g.pad,
		PadY:   g.pad,
	}
	for i, t := range g.tiles {
		row, col := g.shape.Cell(i)
		t.Draw(tiles.At(c, col, row))
	}
}

const titlePad = vg.Length(2)

func titleHeight(txt draw.TextStyle) vg.Length {
	return txt.Height("Xg") + 2*titlePad
}

// tile is one image drawn at its aspect ratio, centred below its title.
type tile struct {
	img   image.Image
	title string
	font  vg.Length
}

func (t *tile) Draw(c draw.Canvas) {
	if t.title != "" {
		txt := style.Text(t.font)
		txt.XAlign = draw.XCenter
		txt.YAlign = draw.YTop
		c.FillText(txt, vg.Point{X: c.Center().X, Y: c.Max.Y - titlePad}, t.title)
		c = draw.Crop(c, 0, 0, 0, -titleHeight(txt))
	}
	r := fit(c.Rectangle, t.img.Bounds())
	if r.Size().X <= 0 || r.Size().Y <= 0 {
		return
	}
	c.DrawImage(r, t.img)
}

// fit returns the largest rectangle with the aspect ratio of b centred in r.
func fit(r vg.Rectangle, b image.Rectangle) vg.Rectangle {
	w, h := r.Max.X-r.Min.X, r.Max.Y-r.Min.Y
	if w <= 0 || h <= 0 || b.Dx() == 0 || b.Dy() == 0 {
		return vg.Rectangle{Min: r.Min, Max: r.Min}
	}
	aspect := vg.Length(b.Dx()) / vg.Length(b.Dy())
	if w/h > aspect {
		w = h * aspect
	} else {
		h = w / aspect
	}
	cx, cy := (r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2
	return vg.Rectangle{
		Min: vg.Point{X: cx - w/2, Y: cy - h/2},
		Max: vg.Point{X: cx + w/2, Y: cy + h/2},
	}
}
