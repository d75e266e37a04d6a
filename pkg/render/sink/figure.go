package sink

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/render/style"
)

// Drawer draws itself into a canvas region.
type Drawer interface {
	Draw(c draw.Canvas)
}

// DrawerFunc adapts a function to the Drawer interface.
type DrawerFunc func(c draw.Canvas)

// Draw calls f(c).
func (f DrawerFunc) Draw(c draw.Canvas) { f(c) }

// Figure is a page of a fixed size holding one drawer.
type Figure struct {
	Width  vg.Length
	Height vg.Length

	// Background fills the page before the content is drawn.
	// Nil leaves the page transparent where the format supports it.
	Background color.Color

	Content Drawer
}

// NewFigure returns a figure of the given size with a white background.
func NewFigure(size style.Size, content Drawer) *Figure {
	return &Figure{
		Width:      size.Width,
		Height:     size.Height,
		Background: color.White,
		Content:    content,
	}
}

// Draw fills the background and draws the content into c.
func (f *Figure) Draw(c draw.Canvas) {
	if f.Background != nil {
		c.SetColor(f.Background)
		c.Fill(c.Rectangle.Path())
	}
	if f.Content != nil {
		f.Content.Draw(c)
	}
}

// Encode encodes the figure in format and writes it to w.
func (f *Figure) Encode(w io.Writer, format string) (int64, error) {
	if err := ValidateFormat(format); err != nil {
		return 0, err
	}
	if err := (style.Size{Width: f.Width, Height: f.Height}).Validate(); err != nil {
		return 0, err
	}

	cw, err := draw.NewFormattedCanvas(f.Width, f.Height, format)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidFormat, err, "create %s canvas", format)
	}
	f.Draw(draw.New(cw))

	n, err := cw.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("encode %s: %w", format, err)
	}
	return n, nil
}

// Render encodes the figure in format and returns the bytes.
func (f *Figure) Render(format string) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := f.Encode(&buf, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the figure to path, choosing the format from its extension.
// Missing parent directories are created.
func (f *Figure) Save(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := f.Render(format)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
