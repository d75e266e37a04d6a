// Package render groups the figure drawing packages.
//
//   - [style]: figure size, margins, fonts, grid lines and colours
//   - [chart]: histogram, lines, confidence bands, scatter and bar charts
//   - [images]: tensors, single images and image grids
//   - [sink]: figures, multi-panel layouts and encoding to files or bytes
//
// Every helper returns a [sink.Figure], so callers choose the output format
// only when saving:
//
//	fig, err := chart.Histogram(samples, labels, chart.HistogramOptions{Density: true})
//	data, err := fig.Render("svg")
//
// [style]: github.com/matzehuels/plotkit/pkg/render/style
// [chart]: github.com/matzehuels/plotkit/pkg/render/chart
// [images]: github.com/matzehuels/plotkit/pkg/render/images
// [sink]: github.com/matzehuels/plotkit/pkg/render/sink
// [sink.Figure]: github.com/matzehuels/plotkit/pkg/render/sink#Figure
package render
