// Package sink turns drawn figures into files and byte buffers.
//
// # Overview
//
// A [Figure] is a fixed-size page with a background and one [Drawer] as its
// content. The content is usually a chart or image grid built by the chart
// and images packages, or a [Panels] layout that places several of them
// side by side.
//
//	fig := sink.NewFigure(style.DefaultSize, drawer)
//	png, err := fig.Render("png")
//	err = fig.Save("out/hist.svg") // format from the extension
//
// # Formats
//
// Encoding is done by gonum.org/v1/plot's registered canvases. [Formats]
// lists them: eps, jpeg, jpg, pdf, png, svg, tex, tif and tiff.
//
// # Panels
//
// [Panels] lays drawers out on a rows x cols grid. Positions are 1-based
// and row-major, the same numbering as a subplot index:
//
//	panels, _ := sink.NewPanels(grid.Shape{Rows: 1, Cols: 2})
//	_ = panels.Set(1, left)
//	_ = panels.Set(2, right)
//	fig := sink.NewFigure(style.Inches(6, 3), panels)
package sink
