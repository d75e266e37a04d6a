// Package io reads, validates and builds declarative figure specs.
//
// # Overview
//
// A [Spec] describes one figure: its kind, labels, and data. Specs are
// written in TOML or JSON so that figures can be produced from the command
// line or over HTTP without writing Go:
//
//	kind = "lines"
//	title = "Loss"
//	xlabel = "epoch"
//
//	[[series]]
//	label = "train"
//	points = [[0.0, 3.1], [1.0, 2.4], [2.0, 1.9]]
//
//	[[info]]
//	key = "lr"
//	value = "0.01"
//
// # Kinds
//
//   - histogram: series[].values, bins, density
//   - lines: series[].points, info, margins_in
//   - lines_confidence: series[].points and series[].error
//   - scatter: series[].points
//   - bar, sorted_bar: bars
//   - image: exactly one entry in images
//   - image_grid: images, padding, compact
//
// # Images
//
// Image entries either carry an inline tensor (channels, height, width,
// data) or a path relative to the spec file. [LoadImages] decodes PNG,
// JPEG and GIF files into tensors; [Build] refuses entries that still only
// have a path.
//
// # Import and Export
//
// [Import] picks the decoder from the file extension. [WriteJSON] writes
// the normalised spec, which is also what cache keys are computed from:
//
//	spec, err := io.Import("loss.toml")
//	if err != nil {
//	    return err
//	}
//	fig, err := io.Build(spec)
package io
