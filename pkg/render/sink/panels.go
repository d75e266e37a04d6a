package sink

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/grid"
)

// Panels lays drawers out on a grid of equally sized cells.
type Panels struct {
	Shape grid.Shape

	// PadX and PadY separate columns and rows.
	PadX vg.Length
	PadY vg.Length

	cells []Drawer
}

// NewPanels returns an empty layout of the given shape.
func NewPanels(shape grid.Shape) (*Panels, error) {
	if shape.Rows < 1 || shape.Cols < 1 {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "panel grid must have at least one row and column, got %s", shape)
	}
	return &Panels{Shape: shape, cells: make([]Drawer, shape.Cells())}, nil
}

// Set places d at pos, counting from 1 in row-major order.
func (p *Panels) Set(pos int, d Drawer) error {
	if pos < 1 || pos > len(p.cells) {
		return errors.New(errors.ErrCodeInvalidArgument, "panel position %d out of range [1, %d]", pos, len(p.cells))
	}
	p.cells[pos-1] = d
	return nil
}

// Draw draws every occupied cell.
func (p *Panels) Draw(c draw.Canvas) {
	tiles := draw.Tiles{
		Rows: p.Shape.Rows,
		Cols: p.Shape.Cols,
		PadX: p.PadX,
		PadY: p.PadY,
	}
	for i, d := range p.cells {
		if d == nil {
			continue
		}
		row, col := p.Shape.Cell(i)
		d.Draw(tiles.At(c, col, row))
	}
}
