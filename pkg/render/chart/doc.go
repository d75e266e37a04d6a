// Package chart draws the standard plotkit charts.
//
// Each helper takes the data, a [style.Labels] and a small options struct,
// and returns a [sink.Figure] of [style.DefaultSize] ready to be saved or
// rendered:
//
//	fig, err := chart.Histogram([]chart.Sample{{Label: "a", Values: xs}},
//	    style.Labels{Title: "Samples", X: "value", Y: "density"},
//	    chart.HistogramOptions{Density: true})
//	if err != nil {
//	    return err
//	}
//	err = fig.Save("hist.png")
//
// Series take colours from [style.Cycle] in input order. [SortedBar] is the
// exception: it colours by key so that the same key keeps its colour
// across figures.
package chart
