package chart

import (
	"bytes"
	"image/color"
	"math"
	"testing"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/render/sink"
	"github.com/matzehuels/plotkit/pkg/render/style"
)

var labels = style.Labels{Title: "Title", X: "x", Y: "y"}

func renderPNG(t *testing.T, fig *sink.Figure) {
	t.Helper()
	data, err := fig.Render("png")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatal("output is not a png")
	}
}

func bimodal() []float64 {
	var xs []float64
	for i := range 200 {
		f := float64(i%20) / 20
		xs = append(xs, -2+f, 2+f)
	}
	return xs
}

func TestHistogram(t *testing.T) {
	var called bool
	lim := &style.Range{Min: -5, Max: 5}
	fig, err := Histogram(
		[]Sample{{Label: "a", Values: bimodal()}, {Label: "b", Values: []float64{0, 0.5, 1}}},
		labels,
		HistogramOptions{Density: true, XLim: lim, Callback: func(*plot.Plot) { called = true }},
	)
	if err != nil {
		t.Fatalf("Histogram() error: %v", err)
	}
	if !called {
		t.Error("callback was not run")
	}
	p := fig.Content.(*Chart).Plot
	if p.X.Min != lim.Min || p.X.Max != lim.Max {
		t.Errorf("x range = [%v, %v], want [%v, %v]", p.X.Min, p.X.Max, lim.Min, lim.Max)
	}
	if p.Title.Text != labels.Title {
		t.Errorf("title = %q", p.Title.Text)
	}
	if fig.Width != style.DefaultSize.Width || fig.Height != style.DefaultSize.Height {
		t.Errorf("figure size = %vx%v", fig.Width, fig.Height)
	}
	renderPNG(t, fig)
}

func TestHistogramErrors(t *testing.T) {
	tests := []struct {
		name    string
		samples []Sample
		opts    HistogramOptions
		code    errors.Code
	}{
		{"no samples", nil, HistogramOptions{}, errors.ErrCodeInvalidInput},
		{"empty sample", []Sample{{Label: "a"}}, HistogramOptions{}, errors.ErrCodeInvalidInput},
		{"nan", []Sample{{Label: "a", Values: []float64{1, math.NaN()}}}, HistogramOptions{}, errors.ErrCodeInvalidInput},
		{"bad xlim", []Sample{{Label: "a", Values: []float64{1}}}, HistogramOptions{XLim: &style.Range{Min: 1, Max: 0}}, errors.ErrCodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Histogram(tt.samples, labels, tt.opts)
			if !errors.Is(err, tt.code) {
				t.Errorf("Histogram() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestKDE(t *testing.T) {
	values := []float64{0, 1}
	got := KDE(values, 0.5, 3)
	if len(got) != 3 {
		t.Fatalf("KDE() returned %d points, want 3", len(got))
	}

	gauss := func(x, mu float64) float64 {
		return math.Exp(-(x-mu)*(x-mu)/(2*0.25)) / (0.5 * math.Sqrt(2*math.Pi))
	}
	for i, x := range []float64{0, 0.5, 1} {
		want := (gauss(x, 0) + gauss(x, 1)) / 2
		if got[i].X != x {
			t.Errorf("KDE()[%d].X = %v, want %v", i, got[i].X, x)
		}
		if math.Abs(got[i].Y-want) > 1e-12 {
			t.Errorf("KDE()[%d].Y = %v, want %v", i, got[i].Y, want)
		}
	}
	if got[0].Y != got[2].Y {
		t.Errorf("KDE of a symmetric sample is not symmetric: %v vs %v", got[0].Y, got[2].Y)
	}
}

func TestKDEDegenerate(t *testing.T) {
	tests := []struct {
		name      string
		values    []float64
		bandwidth float64
		n         int
	}{
		{"no values", nil, 0.3, 10},
		{"zero bandwidth", []float64{1}, 0, 10},
		{"one point", []float64{1}, 0.3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KDE(tt.values, tt.bandwidth, tt.n); got != nil {
				t.Errorf("KDE() = %v, want nil", got)
			}
		})
	}
}

func TestXYsFromRows(t *testing.T) {
	xys, err := XYsFromRows([][]float64{{0, 1}, {2, 3}})
	if err != nil {
		t.Fatal(err)
	}
	if xys[1] != (plotter.XY{X: 2, Y: 3}) {
		t.Errorf("XYsFromRows()[1] = %v", xys[1])
	}

	_, err = XYsFromRows([][]float64{{0, 1}, {2, 3, 4}})
	if !errors.Is(err, errors.ErrCodeInvalidShape) {
		t.Errorf("XYsFromRows(3D) error = %v, want INVALID_SHAPE", err)
	}
}

func TestLines(t *testing.T) {
	lines := []Line{
		{Label: "train", Points: style.Enumerate([]float64{3, 2, 1.5, 1.2})},
		{Label: "test", Points: style.Enumerate([]float64{3.2, 2.4, 2, 1.9}), Dashes: []vg.Length{vg.Points(2)}},
	}
	tests := []struct {
		name string
		opts LinesOptions
	}{
		{"plain", LinesOptions{}},
		{"legend", LinesOptions{Legend: true}},
		{"info", LinesOptions{Legend: true, Info: Info{}.Add("lr", 0.01).Add("epochs", 4)}},
		{"margins", LinesOptions{Margins: &style.Margins{Left: vg.Inch, Bottom: vg.Inch / 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fig, err := Lines(lines, labels, tt.opts)
			if err != nil {
				t.Fatalf("Lines() error: %v", err)
			}
			renderPNG(t, fig)
		})
	}
}

func TestLinesMarginsTooLarge(t *testing.T) {
	m := style.MarginsInches(2, 2, 0, 0)
	_, err := Lines(nil, labels, LinesOptions{Margins: &m})
	if !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("Lines() error = %v, want INVALID_ARGUMENT", err)
	}
}

func TestInfoAdd(t *testing.T) {
	info := Info{}.Add("lr", 0.5).Add("name", "run-1")
	want := Info{{"lr", "0.5"}, {"name", "run-1"}}
	if len(info) != len(want) {
		t.Fatalf("Info = %v", info)
	}
	for i := range want {
		if info[i] != want[i] {
			t.Errorf("Info[%d] = %v, want %v", i, info[i], want[i])
		}
	}
}

func TestLinesConfidence(t *testing.T) {
	line := style.Enumerate([]float64{1, 2, 3})
	errs := plotter.XYs{{X: 0, Y: 0.1}, {X: 1, Y: 0.2}, {X: 2, Y: 0.3}}

	fig, err := LinesConfidence([]Band{{Label: "a", Line: line, Error: errs}}, labels, true)
	if err != nil {
		t.Fatalf("LinesConfidence() error: %v", err)
	}
	renderPNG(t, fig)

	_, err = LinesConfidence([]Band{{Label: "a", Line: line, Error: errs[:2]}}, labels, true)
	if !errors.Is(err, errors.ErrCodeInvalidShape) {
		t.Errorf("LinesConfidence(mismatch) error = %v, want INVALID_SHAPE", err)
	}
}

func TestEnvelope(t *testing.T) {
	line := plotter.XYs{{X: 0, Y: 1}, {X: 1, Y: 2}}
	errs := plotter.XYs{{X: 0, Y: 0.5}, {X: 1, Y: 1}}

	got := envelope(line, errs)
	want := plotter.XYs{{X: 0, Y: 1.5}, {X: 1, Y: 3}, {X: 1, Y: 1}, {X: 0, Y: 0.5}}
	if len(got) != len(want) {
		t.Fatalf("envelope() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("envelope()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScatter(t *testing.T) {
	sets := []Points{
		{Label: "a", XYs: plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}}},
		{Label: "b", XYs: plotter.XYs{{X: 0.5, Y: 0.2}}},
	}
	fig, err := Scatter(sets, labels, ScatterOptions{Legend: true, YLim: &style.Range{Min: -1, Max: 2}})
	if err != nil {
		t.Fatalf("Scatter() error: %v", err)
	}
	if p := fig.Content.(*Chart).Plot; p.Y.Min != -1 || p.Y.Max != 2 {
		t.Errorf("y range = [%v, %v]", p.Y.Min, p.Y.Max)
	}
	renderPNG(t, fig)
}

func TestBarPlot(t *testing.T) {
	fig, err := BarPlot([]Bar{{"a", 3}, {"b", 1}, {"c", 2}}, labels)
	if err != nil {
		t.Fatalf("BarPlot() error: %v", err)
	}
	renderPNG(t, fig)

	if _, err := BarPlot(nil, labels); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("BarPlot(nil) error = %v, want INVALID_INPUT", err)
	}
	if _, err := SortedBar(nil, labels); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("SortedBar(nil) error = %v, want INVALID_INPUT", err)
	}
}

func TestSortBars(t *testing.T) {
	first, firstColors := sortBars([]Bar{{"c", 1}, {"a", 3}, {"b", 2}})
	second, secondColors := sortBars([]Bar{{"a", 0}, {"b", 5}, {"c", 9}})

	wantOrder := []string{"c", "b", "a"}
	for i, k := range wantOrder {
		if first[i].Key != k {
			t.Errorf("sorted[%d] = %q, want %q", i, first[i].Key, k)
		}
	}

	colorOf := func(bars []Bar, colors []color.Color, key string) color.Color {
		for i, b := range bars {
			if b.Key == key {
				return colors[i]
			}
		}
		t.Fatalf("key %q missing", key)
		return nil
	}
	for _, k := range []string{"a", "b", "c"} {
		if colorOf(first, firstColors, k) != colorOf(second, secondColors, k) {
			t.Errorf("key %q changed colour between calls", k)
		}
	}
	if colorOf(first, firstColors, "a") != style.Cycle(0) {
		t.Error("first sorted key does not get the first cycle colour")
	}
}

func TestSortBarsStable(t *testing.T) {
	got, _ := sortBars([]Bar{{"x", 1}, {"y", 1}, {"z", 0}})
	want := []string{"z", "x", "y"}
	for i, k := range want {
		if got[i].Key != k {
			t.Errorf("sorted[%d] = %q, want %q", i, got[i].Key, k)
		}
	}
}

func TestBarWidth(t *testing.T) {
	if got, want := barWidth(4), vg.Length(0.5*72*0.8); math.Abs(float64(got-want)) > 1e-9 {
		t.Errorf("barWidth(4) = %v, want %v", got, want)
	}
}
