// Package images draws image tensors as single figures and grids.
//
// Images arrive as channel-major float tensors, the layout produced by most
// numeric code: (channels, height, width). One channel is shown in
// grayscale stretched between its minimum and maximum. Three or four
// channels are read as RGB(A) in [0, 1] and clipped.
//
//	fig, err := images.Grid(batch, "samples", images.GridOptions{Padding: 0.05})
//
// [Grid] sizes its tiling with [grid.For]. [Subgrid] draws a labelled
// grid into any region and is meant to be combined with [sink.Panels].
package images
