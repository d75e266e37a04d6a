package io

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/render/chart"
	"github.com/matzehuels/plotkit/pkg/render/images"
	"github.com/matzehuels/plotkit/pkg/render/style"
)

const linesTOML = `
kind = "lines"
title = "Loss"
xlabel = "epoch"
ylabel = "loss"
legend = false

[[series]]
label = "train"
points = [[0.0, 3.0], [1.0, 2.0], [2.0, 1.5]]
width = 1.0

[[series]]
label = "test"
points = [[0.0, 3.2], [1.0, 2.6], [2.0, 2.4]]
dashes = [2.0, 1.0]

[[info]]
key = "lr"
value = "0.01"

[[info]]
key = "epochs"
value = "3"
`

func TestReadTOML(t *testing.T) {
	s, err := ReadTOML(strings.NewReader(linesTOML))
	if err != nil {
		t.Fatalf("ReadTOML() error: %v", err)
	}
	if s.Kind != KindLines || s.Title != "Loss" || s.XLabel != "epoch" {
		t.Errorf("header = %q %q %q", s.Kind, s.Title, s.XLabel)
	}
	if len(s.Series) != 2 || len(s.Series[1].Points) != 3 || s.Series[1].Dashes[0] != 2 {
		t.Errorf("series = %+v", s.Series)
	}
	if s.Legend == nil || *s.Legend {
		t.Errorf("legend = %v, want false", s.Legend)
	}
	if len(s.Info) != 2 || s.Info[0] != (Pair{"lr", "0.01"}) || s.Info[1].Key != "epochs" {
		t.Errorf("info = %+v, want ordered rows", s.Info)
	}
	if err := Validate(s); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestReadTOMLUnknownKey(t *testing.T) {
	_, err := ReadTOML(strings.NewReader("kind = \"bar\"\ntitel = \"typo\"\n"))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("ReadTOML() error = %v, want INVALID_INPUT", err)
	}
	if !strings.Contains(err.Error(), "titel") {
		t.Errorf("error %q does not name the key", err)
	}
}

func TestReadJSON(t *testing.T) {
	in := `{"kind": "image_grid", "title": "batch", "compact": true,
		"images": [{"title": "a", "channels": 1, "height": 1, "width": 2, "data": [0, 1]}]}`
	s, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if !s.Compact || len(s.Images) != 1 || s.Images[0].Width != 2 || s.Images[0].Title != "a" {
		t.Errorf("spec = %+v", s)
	}

	_, err = ReadJSON(strings.NewReader(`{"kind": "bar", "colour": "red"}`))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ReadJSON(unknown field) error = %v, want INVALID_INPUT", err)
	}
}

func TestImport(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "loss.toml")
	if err := os.WriteFile(tomlPath, []byte(linesTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Import(tomlPath)
	if err != nil {
		t.Fatalf("Import(toml) error: %v", err)
	}

	jsonPath := filepath.Join(dir, "loss.json")
	if err := ExportJSON(s, jsonPath); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}
	back, err := Import(jsonPath)
	if err != nil {
		t.Fatalf("Import(json) error: %v", err)
	}
	if back.Title != s.Title || len(back.Series) != len(s.Series) || len(back.Info) != 2 {
		t.Errorf("re-imported spec differs: %+v", back)
	}

	tests := []struct {
		path string
		code errors.Code
	}{
		{filepath.Join(dir, "missing.toml"), errors.ErrCodeFileNotFound},
		{filepath.Join(dir, "spec.yaml"), errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		if _, err := Import(tt.path); !errors.Is(err, tt.code) {
			t.Errorf("Import(%s) error = %v, want %s", filepath.Base(tt.path), err, tt.code)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		code errors.Code
	}{
		{"unknown kind", Spec{Kind: "pie"}, errors.ErrCodeInvalidKind},
		{"empty kind", Spec{}, errors.ErrCodeInvalidKind},
		{"bad xlim shape", Spec{Kind: KindScatter, XLim: []float64{1}}, errors.ErrCodeInvalidShape},
		{"bad xlim order", Spec{Kind: KindScatter, XLim: []float64{1, 0}}, errors.ErrCodeInvalidArgument},
		{"bad size", Spec{Kind: KindBar, Bars: []Bar{{"a", 1}}, SizeIn: []float64{3, 0}}, errors.ErrCodeInvalidShape},
		{"3d points", Spec{Kind: KindScatter, Series: []Series{{Points: [][]float64{{1, 2, 3}}}}}, errors.ErrCodeInvalidShape},
		{"1d error", Spec{Kind: KindLinesConfidence, Series: []Series{{Points: [][]float64{{1, 2}}, Error: [][]float64{{1}}}}}, errors.ErrCodeInvalidShape},
		{"error length", Spec{Kind: KindLinesConfidence, Series: []Series{{Points: [][]float64{{1, 2}}}}}, errors.ErrCodeInvalidShape},
		{"no samples", Spec{Kind: KindHistogram}, errors.ErrCodeInvalidInput},
		{"empty sample", Spec{Kind: KindHistogram, Series: []Series{{Label: "a"}}}, errors.ErrCodeInvalidInput},
		{"no bars", Spec{Kind: KindSortedBar}, errors.ErrCodeInvalidInput},
		{"two images", Spec{Kind: KindImage, Images: []ImageSpec{{Path: "a.png"}, {Path: "b.png"}}}, errors.ErrCodeInvalidShape},
		{"no images", Spec{Kind: KindImageGrid}, errors.ErrCodeInvalidArgument},
		{"traversal", Spec{Kind: KindImage, Images: []ImageSpec{{Path: "../a.png"}}}, errors.ErrCodeInvalidPath},
		{"empty image", Spec{Kind: KindImage, Images: []ImageSpec{{}}}, errors.ErrCodeInvalidInput},
		{"oversized image", Spec{Kind: KindImage, Images: []ImageSpec{{Tensor: images.Tensor{Channels: 1, Height: math.MaxInt, Width: 2}}}}, errors.ErrCodeInvalidShape},
		{"bad label", Spec{Kind: KindBar, Bars: []Bar{{"a", 1}}, Title: "a\nb"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.spec)
			if !errors.Is(err, tt.code) {
				t.Errorf("Validate() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestValidatePointsMessage(t *testing.T) {
	s := &Spec{Kind: KindScatter, Series: []Series{{Label: "a", Points: [][]float64{{1}}}}}
	err := Validate(s)
	if !strings.Contains(errors.UserMessage(err), "points need to be 2D") {
		t.Errorf("Validate() message = %q", errors.UserMessage(err))
	}
}

func TestNormalize(t *testing.T) {
	s := Spec{Kind: KindHistogram}
	s.Normalize()
	if s.Bins != chart.DefaultBins || s.Density == nil || !*s.Density {
		t.Errorf("Normalize() = bins %d density %v", s.Bins, s.Density)
	}

	off := false
	l := Spec{Kind: KindLines, Legend: &off}
	l.Normalize()
	if *l.Legend {
		t.Error("Normalize() overrode an explicit legend = false")
	}
}

func TestWriteJSONNormalises(t *testing.T) {
	explicit := true
	a := &Spec{Kind: KindHistogram, Series: []Series{{Values: []float64{1}}}}
	b := &Spec{Kind: KindHistogram, Bins: 20, Density: &explicit, Series: []Series{{Values: []float64{1}}}}

	var bufA, bufB bytes.Buffer
	if err := WriteJSON(&bufA, a); err != nil {
		t.Fatal(err)
	}
	if err := WriteJSON(&bufB, b); err != nil {
		t.Fatal(err)
	}
	if bufA.String() != bufB.String() {
		t.Errorf("equivalent specs encode differently:\n%s\n%s", bufA.String(), bufB.String())
	}
	if a.Bins != 0 || a.Density != nil {
		t.Error("WriteJSON() modified its input")
	}
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoadImages(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "img"), 0o755); err != nil {
		t.Fatal(err)
	}
	gray := image.NewGray(image.Rect(0, 0, 3, 2))
	gray.SetGray(2, 1, color.Gray{Y: 255})
	writePNG(t, filepath.Join(dir, "img", "a.png"), gray)

	rgb := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	writePNG(t, filepath.Join(dir, "b.png"), rgb)

	s := &Spec{Kind: KindImageGrid, Images: []ImageSpec{
		{Path: "img/a.png", Title: "a"},
		{Path: "b.png"},
		{Tensor: gray1x1()},
	}}
	if err := LoadImages(s, dir); err != nil {
		t.Fatalf("LoadImages() error: %v", err)
	}
	if im := s.Images[0]; im.Channels != 1 || im.Height != 2 || im.Width != 3 || im.At(0, 1, 2) != 1 {
		t.Errorf("image a = (%d, %d, %d)", im.Channels, im.Height, im.Width)
	}
	if im := s.Images[1]; im.Channels != 3 {
		t.Errorf("image b has %d channels, want 3", im.Channels)
	}

	fig, err := Build(s)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if _, err := fig.Render("png"); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
}

func TestLoadImagesErrors(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		path string
		code errors.Code
	}{
		{"missing", "missing.png", errors.ErrCodeFileNotFound},
		{"corrupt", "bad.png", errors.ErrCodeInvalidInput},
		{"absolute", "/etc/passwd", errors.ErrCodeInvalidPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Spec{Kind: KindImage, Images: []ImageSpec{{Path: tt.path}}}
			if err := LoadImages(s, dir); !errors.Is(err, tt.code) {
				t.Errorf("LoadImages() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestRequireInline(t *testing.T) {
	if err := RequireInline(&Spec{Images: []ImageSpec{{Tensor: gray1x1()}}}); err != nil {
		t.Errorf("RequireInline(inline) error: %v", err)
	}
	err := RequireInline(&Spec{Images: []ImageSpec{{Path: "a.png"}}})
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("RequireInline(path) error = %v, want INVALID_PATH", err)
	}
}

func TestBuild(t *testing.T) {
	pts := [][]float64{{0, 1}, {1, 2}, {2, 1.5}}
	tests := []struct {
		name string
		spec Spec
	}{
		{"histogram", Spec{Kind: KindHistogram, Series: []Series{{Label: "a", Values: []float64{1, 2, 2, 3}}}}},
		{"lines", Spec{Kind: KindLines, Series: []Series{{Label: "a", Points: pts}}, Info: []Pair{{"k", "v"}}}},
		{"confidence", Spec{Kind: KindLinesConfidence, Series: []Series{{Label: "a", Points: pts, Error: pts}}}},
		{"scatter", Spec{Kind: KindScatter, Series: []Series{{Label: "a", Points: pts}}, YLim: []float64{0, 3}}},
		{"bar", Spec{Kind: KindBar, Bars: []Bar{{"a", 1}, {"b", 2}}}},
		{"sorted bar", Spec{Kind: KindSortedBar, Bars: []Bar{{"a", 1}, {"b", 2}}}},
		{"image", Spec{Kind: KindImage, Images: []ImageSpec{{Tensor: gray1x1()}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fig, err := Build(&tt.spec)
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			if _, err := fig.Render("svg"); err != nil {
				t.Fatalf("Render() error: %v", err)
			}
		})
	}
}

func TestBuildSizeAndMargins(t *testing.T) {
	s := &Spec{
		Kind:      KindBar,
		Bars:      []Bar{{"a", 1}},
		SizeIn:    []float64{4, 3},
		MarginsIn: &Margins{Left: 1, Right: 0.2, Top: 0.3, Bottom: 0.6},
	}
	fig, err := Build(s)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	want := style.Inches(4, 3)
	if fig.Width != want.Width || fig.Height != want.Height {
		t.Errorf("size = %vx%v, want %vx%v", fig.Width, fig.Height, want.Width, want.Height)
	}
	if got := fig.Content.(*chart.Chart).Margins; got != style.MarginsInches(1, 0.2, 0.3, 0.6) {
		t.Errorf("margins = %+v", got)
	}
}

func TestBuildRequiresLoadedImages(t *testing.T) {
	s := &Spec{Kind: KindImage, Images: []ImageSpec{{Path: "a.png"}}}
	if _, err := Build(s); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Build() error = %v, want INVALID_INPUT", err)
	}
}

func gray1x1() images.Tensor {
	return images.Tensor{Channels: 1, Height: 1, Width: 1, Data: []float64{0.5}}
}
