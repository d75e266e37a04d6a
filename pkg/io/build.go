package io

import (
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/render/chart"
	"github.com/matzehuels/plotkit/pkg/render/images"
	"github.com/matzehuels/plotkit/pkg/render/sink"
	"github.com/matzehuels/plotkit/pkg/render/style"
)

// Build validates s and draws the figure it describes. Image entries must
// be loaded; see LoadImages.
func Build(s *Spec) (*sink.Figure, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	for i, im := range s.Images {
		if !im.Loaded() {
			return nil, errors.New(errors.ErrCodeInvalidInput, "image %d (%s) is not loaded", i+1, im.Path)
		}
	}

	fig, err := build(s)
	if err != nil {
		return nil, err
	}

	if len(s.SizeIn) == 2 {
		size := style.Inches(s.SizeIn[0], s.SizeIn[1])
		fig.Width, fig.Height = size.Width, size.Height
	}
	if ch, ok := fig.Content.(*chart.Chart); ok && s.MarginsIn != nil {
		m := s.MarginsIn.margins()
		if err := m.Validate(style.Size{Width: fig.Width, Height: fig.Height}); err != nil {
			return nil, err
		}
		ch.Margins = m
	}
	return fig, nil
}

func build(s *Spec) (*sink.Figure, error) {
	labels := style.Labels{Title: s.Title, X: s.XLabel, Y: s.YLabel}

	switch s.Kind {
	case KindHistogram:
		samples := make([]chart.Sample, len(s.Series))
		for i, se := range s.Series {
			samples[i] = chart.Sample{Label: se.Label, Values: se.Values}
		}
		return chart.Histogram(samples, labels, chart.HistogramOptions{
			Bins:    s.Bins,
			Density: s.density(),
			XLim:    limit(s.XLim),
			YLim:    limit(s.YLim),
		})

	case KindLines:
		lines := make([]chart.Line, len(s.Series))
		for i, se := range s.Series {
			xys, err := chart.XYsFromRows(se.Points)
			if err != nil {
				return nil, err
			}
			lines[i] = chart.Line{
				Label:  se.Label,
				Points: xys,
				Width:  vg.Points(se.Width),
				Dashes: points(se.Dashes),
			}
		}
		opts := chart.LinesOptions{Legend: s.legend()}
		for _, p := range s.Info {
			opts.Info = append(opts.Info, chart.Pair{Key: p.Key, Value: p.Value})
		}
		if s.MarginsIn != nil {
			m := s.MarginsIn.margins()
			opts.Margins = &m
		}
		return chart.Lines(lines, labels, opts)

	case KindLinesConfidence:
		bands := make([]chart.Band, len(s.Series))
		for i, se := range s.Series {
			line, err := chart.XYsFromRows(se.Points)
			if err != nil {
				return nil, err
			}
			errs, err := chart.XYsFromRows(se.Error)
			if err != nil {
				return nil, err
			}
			bands[i] = chart.Band{Label: se.Label, Line: line, Error: errs}
		}
		return chart.LinesConfidence(bands, labels, s.legend())

	case KindScatter:
		sets := make([]chart.Points, len(s.Series))
		for i, se := range s.Series {
			xys, err := chart.XYsFromRows(se.Points)
			if err != nil {
				return nil, err
			}
			sets[i] = chart.Points{Label: se.Label, XYs: xys}
		}
		return chart.Scatter(sets, labels, chart.ScatterOptions{
			Legend: s.legend(),
			XLim:   limit(s.XLim),
			YLim:   limit(s.YLim),
		})

	case KindBar, KindSortedBar:
		bars := make([]chart.Bar, len(s.Bars))
		for i, b := range s.Bars {
			bars[i] = chart.Bar{Key: b.Key, Value: b.Value}
		}
		if s.Kind == KindSortedBar {
			return chart.SortedBar(bars, labels)
		}
		return chart.BarPlot(bars, labels)

	case KindImage:
		im := s.Images[0]
		title := im.Title
		if title == "" {
			title = s.Title
		}
		return images.Image(im.Tensor, title)

	case KindImageGrid:
		batch := make([]images.Tensor, len(s.Images))
		var titles []string
		for i, im := range s.Images {
			batch[i] = im.Tensor
			if im.Title != "" && titles == nil {
				titles = make([]string, len(s.Images))
			}
		}
		for i := range titles {
			titles[i] = s.Images[i].Title
		}
		return images.Grid(batch, s.Title, images.GridOptions{
			Titles:  titles,
			Padding: s.Padding,
			Compact: s.Compact,
		})
	}
	return nil, errors.New(errors.ErrCodeInvalidKind, "unknown figure kind %q", s.Kind)
}

func (m Margins) margins() style.Margins {
	return style.MarginsInches(m.Left, m.Right, m.Top, m.Bottom)
}

func limit(lim []float64) *style.Range {
	if len(lim) != 2 {
		return nil
	}
	return &style.Range{Min: lim[0], Max: lim[1]}
}

func points(xs []float64) []vg.Length {
	if len(xs) == 0 {
		return nil
	}
	ls := make([]vg.Length, len(xs))
	for i, x := range xs {
		ls[i] = vg.Points(x)
	}
	return ls
}
