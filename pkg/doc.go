// Package pkg provides the core libraries of plotkit.
//
// # Overview
//
// plotkit draws small, consistently styled figures with gonum.org/v1/plot.
// The pkg directory is organized into these areas:
//
//  1. [grid] - Grid-size arithmetic for tiling n images
//  2. [render] - Chart and image helpers plus figure encoding
//  3. [io] - Declarative figure specs (TOML/JSON) and their validation
//  4. [cache] - Artifact caching (file, Redis, MongoDB)
//  5. [pipeline] - Orchestration (validate → build → encode, cache-aside)
//  6. [server] - HTTP render API
//
// # Architecture
//
// The typical data flow through plotkit:
//
//	TOML/JSON spec
//	     ↓
//	[io] package (decode, validate, load images)
//	     ↓
//	[pipeline] package (fingerprint, cache lookup)
//	     ↓
//	[render] packages (build figure, encode)
//	     ↓
//	PNG/SVG/PDF/EPS/JPEG/TIFF/TeX bytes
//
// # Quick Start
//
// Drawing a chart directly:
//
//	import "github.com/matzehuels/plotkit/pkg/render/chart"
//
//	fig, err := chart.SortedBar(bars, style.Labels{Title: "scores"})
//	if err != nil {
//	    return err
//	}
//	return fig.Save("scores.pdf")
//
// Rendering a spec through the cache:
//
//	spec, err := io.Import("hist.toml")
//	runner := pipeline.NewRunner(c, logger)
//	result, err := runner.Render(ctx, spec, []string{"png"})
//
// [grid]: github.com/matzehuels/plotkit/pkg/grid
// [render]: github.com/matzehuels/plotkit/pkg/render
// [io]: github.com/matzehuels/plotkit/pkg/io
// [cache]: github.com/matzehuels/plotkit/pkg/cache
// [pipeline]: github.com/matzehuels/plotkit/pkg/pipeline
// [server]: github.com/matzehuels/plotkit/pkg/server
package pkg
