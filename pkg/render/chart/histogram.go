package chart

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/render/sink"
	"github.com/matzehuels/plotkit/pkg/render/style"
)

// Histogram defaults.
const (
	DefaultBins      = 20
	KDEBandwidth     = 0.3
	KDEPoints        = 1000
	histogramOpacity = 0.6
)

// Sample is one labelled set of observations.
type Sample struct {
	Label  string
	Values []float64
}

// HistogramOptions configures Histogram.
type HistogramOptions struct {
	// Bins is the number of bins per sample. Zero means DefaultBins.
	Bins int

	// Density overlays a Gaussian kernel density estimate on each sample.
	Density bool

	XLim *style.Range
	YLim *style.Range

	// Callback runs after the data is added, before labels are applied.
	Callback func(p *plot.Plot)
}

// Histogram draws each sample as a density-normalised histogram.
func Histogram(samples []Sample, labels style.Labels, opts HistogramOptions) (*sink.Figure, error) {
	if len(samples) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "histogram needs at least one sample")
	}
	if err := validate(labels, opts.XLim, opts.YLim); err != nil {
		return nil, err
	}
	bins := opts.Bins
	if bins <= 0 {
		bins = DefaultBins
	}

	p := style.NewPlot()
	for i, s := range samples {
		if len(s.Values) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "sample %q is empty", s.Label)
		}
		if err := plotter.CheckFloats(s.Values...); err != nil {
			return nil, invalidData(err, "sample "+s.Label)
		}
		clr := style.Cycle(i)

		h, err := plotter.NewHist(plotter.Values(s.Values), bins)
		if err != nil {
			return nil, invalidData(err, "sample "+s.Label)
		}
		h.Normalize(1)
		h.FillColor = style.WithAlpha(clr, histogramOpacity)
		h.LineStyle.Width = 0
		p.Add(h)
		p.Legend.Add(s.Label, h)

		if opts.Density {
			l, err := plotter.NewLine(KDE(s.Values, KDEBandwidth, KDEPoints))
			if err != nil {
				return nil, invalidData(err, "sample "+s.Label)
			}
			l.Color = clr
			l.Width = DefaultLineWidth
			p.Add(l)
		}
	}

	opts.XLim.Apply(&p.X)
	opts.YLim.Apply(&p.Y)
	if opts.Callback != nil {
		opts.Callback(p)
	}
	style.Apply(p, labels, true)
	return figure(p, style.DefaultMargins), nil
}

// KDE estimates the density of values with a Gaussian kernel of the given
// bandwidth, evaluated at n evenly spaced points between the smallest and
// largest value. It returns nil when there is nothing to estimate.
func KDE(values []float64, bandwidth float64, n int) plotter.XYs {
	if len(values) == 0 || bandwidth <= 0 || n < 2 {
		return nil
	}
	xs := floats.Span(make([]float64, n), floats.Min(values), floats.Max(values))

	kernels := make([]distuv.Normal, len(values))
	for i, v := range values {
		kernels[i] = distuv.Normal{Mu: v, Sigma: bandwidth}
	}

	xys := make(plotter.XYs, n)
	for i, x := range xs {
		var sum float64
		for _, k := range kernels {
			sum += k.Prob(x)
		}
		xys[i] = plotter.XY{X: x, Y: sum / float64(len(values))}
	}
	return xys
}

func validate(labels style.Labels, ranges ...*style.Range) error {
	if err := labels.Validate(); err != nil {
		return err
	}
	for _, r := range ranges {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}
