package sink

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/grid"
	"github.com/matzehuels/plotkit/pkg/render/style"
)

func box(c draw.Canvas) {
	c.SetColor(style.Cycle(0))
	c.Fill(c.Rectangle.Path())
}

func TestRender(t *testing.T) {
	fig := NewFigure(style.DefaultSize, DrawerFunc(box))

	tests := []struct {
		format string
		prefix []byte
	}{
		{"png", []byte("\x89PNG")},
		{"pdf", []byte("%PDF")},
		{"jpg", []byte{0xff, 0xd8}},
		{"eps", []byte("%%!PS")},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			data, err := fig.Render(tt.format)
			if err != nil {
				t.Fatalf("Render(%q) error: %v", tt.format, err)
			}
			if !bytes.HasPrefix(data, tt.prefix) {
				t.Errorf("Render(%q) starts with %q, want %q", tt.format, data[:min(8, len(data))], tt.prefix)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	data, err := NewFigure(style.DefaultSize, DrawerFunc(box)).Render("svg")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Errorf("svg output has no <svg element")
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name   string
		fig    *Figure
		format string
		code   errors.Code
	}{
		{"unknown format", NewFigure(style.DefaultSize, nil), "bmp", errors.ErrCodeInvalidFormat},
		{"empty format", NewFigure(style.DefaultSize, nil), "", errors.ErrCodeInvalidFormat},
		{"zero size", &Figure{}, "png", errors.ErrCodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fig.Render(tt.format)
			if !errors.Is(err, tt.code) {
				t.Errorf("Render() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "fig.png")

	if err := NewFigure(style.DefaultSize, DrawerFunc(box)).Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("saved file is not a png")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"out.png", "png", false},
		{"dir/out.SVG", "svg", false},
		{"a.b/fig.jpeg", "jpeg", false},
		{"fig.tiff", "tiff", false},
		{"fig", "", true},
		{"fig.bmp", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestFormats(t *testing.T) {
	want := []string{"eps", "jpeg", "jpg", "pdf", "png", "svg", "tex", "tif", "tiff"}
	got := Formats()
	if len(got) != len(want) {
		t.Fatalf("Formats() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Formats()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if err := ValidateFormats(nil); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormats(nil) = %v", err)
	}
	if err := ValidateFormats([]string{"png", "svg"}); err != nil {
		t.Errorf("ValidateFormats(png, svg) = %v", err)
	}
}

func TestPanels(t *testing.T) {
	panels, err := NewPanels(grid.Shape{Rows: 2, Cols: 2})
	if err != nil {
		t.Fatal(err)
	}

	got := map[int]vg.Rectangle{}
	record := func(pos int) Drawer {
		return DrawerFunc(func(c draw.Canvas) { got[pos] = c.Rectangle })
	}
	for _, pos := range []int{1, 2, 4} {
		if err := panels.Set(pos, record(pos)); err != nil {
			t.Fatalf("Set(%d) error: %v", pos, err)
		}
	}

	w, h := 4*vg.Inch, 2*vg.Inch
	panels.Draw(draw.New(vgimg.New(w, h)))

	want := map[int]vg.Rectangle{
		1: {Min: vg.Point{X: 0, Y: h / 2}, Max: vg.Point{X: w / 2, Y: h}},
		2: {Min: vg.Point{X: w / 2, Y: h / 2}, Max: vg.Point{X: w, Y: h}},
		4: {Min: vg.Point{X: w / 2, Y: 0}, Max: vg.Point{X: w, Y: h / 2}},
	}
	if len(got) != len(want) {
		t.Fatalf("drew %d panels, want %d", len(got), len(want))
	}
	for pos, r := range want {
		if got[pos] != r {
			t.Errorf("panel %d = %v, want %v", pos, got[pos], r)
		}
	}
}

func TestPanelsSetOutOfRange(t *testing.T) {
	panels, err := NewPanels(grid.Shape{Rows: 1, Cols: 3})
	if err != nil {
		t.Fatal(err)
	}
	for _, pos := range []int{0, -1, 4} {
		if err := panels.Set(pos, DrawerFunc(box)); !errors.Is(err, errors.ErrCodeInvalidArgument) {
			t.Errorf("Set(%d) error = %v, want INVALID_ARGUMENT", pos, err)
		}
	}
	if _, err := NewPanels(grid.Shape{}); err == nil {
		t.Error("NewPanels(0x0) succeeded")
	}
}
