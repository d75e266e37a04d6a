// Package pipeline renders figure specs to encoded artifacts with caching.
//
// Both the CLI and the HTTP server render through a [Runner] so that they
// share one cache layout and behave identically.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, logger)
//	result, err := runner.Render(ctx, spec, []string{"png", "svg"})
//	if err != nil {
//	    return err
//	}
//	png := result.Artifacts["png"]
//
// # Caching
//
// Each artifact is cached under [cache.ArtifactKey] of the hash of the
// normalised spec (inline image data included) and the format. The figure
// is built at most once per call, and only when some format is missing
// from the cache.
package pipeline

import (
	"time"
)

// Result holds the artifacts of one render.
type Result struct {
	// Artifacts maps each requested format to its encoded bytes.
	Artifacts map[string][]byte

	// SpecHash fingerprints the normalised spec.
	SpecHash string

	Stats Stats

	// CacheHit is true when every artifact came from the cache.
	CacheHit bool
}

// Stats describes how a render went.
type Stats struct {
	Duration time.Duration
	Hits     int
	Misses   int
}
