package io

import (
	"github.com/matzehuels/plotkit/pkg/render/chart"
	"github.com/matzehuels/plotkit/pkg/render/images"
)

// Kind names a figure type.
type Kind string

// Figure kinds.
const (
	KindHistogram       Kind = "histogram"
	KindLines           Kind = "lines"
	KindLinesConfidence Kind = "lines_confidence"
	KindScatter         Kind = "scatter"
	KindBar             Kind = "bar"
	KindSortedBar       Kind = "sorted_bar"
	KindImage           Kind = "image"
	KindImageGrid       Kind = "image_grid"
)

// Kinds lists every figure kind.
var Kinds = []Kind{
	KindHistogram, KindLines, KindLinesConfidence, KindScatter,
	KindBar, KindSortedBar, KindImage, KindImageGrid,
}

// Spec is a declarative figure description.
type Spec struct {
	Kind   Kind   `json:"kind" toml:"kind"`
	Title  string `json:"title,omitempty" toml:"title"`
	XLabel string `json:"xlabel,omitempty" toml:"xlabel"`
	YLabel string `json:"ylabel,omitempty" toml:"ylabel"`

	XLim []float64 `json:"xlim,omitempty" toml:"xlim"`
	YLim []float64 `json:"ylim,omitempty" toml:"ylim"`

	Bins    int   `json:"bins,omitempty" toml:"bins"`
	Density *bool `json:"density,omitempty" toml:"density"`
	Legend  *bool `json:"legend,omitempty" toml:"legend"`

	// SizeIn is [width, height] in inches.
	SizeIn    []float64 `json:"size_in,omitempty" toml:"size_in"`
	MarginsIn *Margins  `json:"margins_in,omitempty" toml:"margins_in"`

	Series []Series    `json:"series,omitempty" toml:"series"`
	Bars   []Bar       `json:"bars,omitempty" toml:"bars"`
	Info   []Pair      `json:"info,omitempty" toml:"info"`
	Images []ImageSpec `json:"images,omitempty" toml:"images"`

	// Padding between image grid tiles, in inches.
	Padding float64 `json:"padding,omitempty" toml:"padding"`
	Compact bool    `json:"compact,omitempty" toml:"compact"`
}

// Margins are figure margins in inches.
type Margins struct {
	Left   float64 `json:"left" toml:"left"`
	Right  float64 `json:"right" toml:"right"`
	Top    float64 `json:"top" toml:"top"`
	Bottom float64 `json:"bottom" toml:"bottom"`
}

// Series is one labelled data set. Which fields are used depends on the
// kind: values for histograms, points for lines and scatter plots, and
// points plus error for confidence bands.
type Series struct {
	Label  string      `json:"label,omitempty" toml:"label"`
	Values []float64   `json:"values,omitempty" toml:"values"`
	Points [][]float64 `json:"points,omitempty" toml:"points"`
	Error  [][]float64 `json:"error,omitempty" toml:"error"`

	// Width is the line width in points.
	Width float64 `json:"width,omitempty" toml:"width"`

	// Dashes alternates dash and gap lengths in points.
	Dashes []float64 `json:"dashes,omitempty" toml:"dashes"`
}

// Bar is one named bar value.
type Bar struct {
	Key   string  `json:"key" toml:"key"`
	Value float64 `json:"value" toml:"value"`
}

// Pair is one row of an info table.
type Pair struct {
	Key   string `json:"key" toml:"key"`
	Value string `json:"value" toml:"value"`
}

// ImageSpec is an image given inline or by a path relative to the spec.
type ImageSpec struct {
	Path  string `json:"path,omitempty" toml:"path"`
	Title string `json:"title,omitempty" toml:"title"`

	images.Tensor
}

// Loaded reports whether the image carries tensor data.
func (im ImageSpec) Loaded() bool {
	return im.Channels != 0 || len(im.Data) != 0
}

// Normalize fills defaults in place so equivalent specs encode the same.
func (s *Spec) Normalize() {
	switch s.Kind {
	case KindHistogram:
		if s.Bins <= 0 {
			s.Bins = chart.DefaultBins
		}
		if s.Density == nil {
			s.Density = boolPtr(true)
		}
	case KindLines, KindLinesConfidence, KindScatter:
		if s.Legend == nil {
			s.Legend = boolPtr(true)
		}
	}
}

func boolPtr(b bool) *bool { return &b }

func (s *Spec) legend() bool {
	return s.Legend == nil || *s.Legend
}

func (s *Spec) density() bool {
	return s.Density == nil || *s.Density
}
