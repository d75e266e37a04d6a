package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plotkit/pkg/cache"
	"github.com/matzehuels/plotkit/pkg/io"
	"github.com/matzehuels/plotkit/pkg/observability"
	"github.com/matzehuels/plotkit/pkg/render/sink"
)

const keyTypeArtifact = "artifact"

// Runner renders specs through a cache.
//
// The Runner holds no per-render state, so multiple goroutines can share
// one Runner.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching and a nil
// logger means log.Default().
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Render returns spec encoded in each of formats. Images referenced by
// path must already be loaded with io.LoadImages.
func (r *Runner) Render(ctx context.Context, spec *io.Spec, formats []string) (result *Result, err error) {
	if err := sink.ValidateFormats(formats); err != nil {
		return nil, err
	}
	if err := io.Validate(spec); err != nil {
		return nil, err
	}

	start := time.Now()
	kind := string(spec.Kind)
	observability.Render().OnRenderStart(ctx, kind, formats)
	defer func() {
		observability.Render().OnRenderComplete(ctx, kind, formats, time.Since(start), err)
	}()

	hash, err := Fingerprint(spec)
	if err != nil {
		return nil, err
	}

	result = &Result{
		Artifacts: make(map[string][]byte, len(formats)),
		SpecHash:  hash,
	}

	var missing []string
	for _, format := range formats {
		if _, dup := result.Artifacts[format]; dup {
			continue
		}
		data, hit := r.lookup(ctx, cache.ArtifactKey(hash, format))
		if hit {
			result.Artifacts[format] = data
			result.Stats.Hits++
			continue
		}
		missing = append(missing, format)
	}
	result.Stats.Misses = len(missing)

	if len(missing) > 0 {
		fig, err := io.Build(spec)
		if err != nil {
			return nil, err
		}
		for _, format := range missing {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			data, err := fig.Render(format)
			if err != nil {
				return nil, fmt.Errorf("render %s: %w", format, err)
			}
			result.Artifacts[format] = data
			r.store(ctx, cache.ArtifactKey(hash, format), data)
		}
	}

	result.CacheHit = len(missing) == 0
	result.Stats.Duration = time.Since(start)
	r.Logger.Info("rendered figure",
		"kind", kind,
		"formats", formats,
		"cached", result.Stats.Hits,
		"duration", result.Stats.Duration)
	return result, nil
}

// Fingerprint hashes the normalised JSON form of spec.
func Fingerprint(spec *io.Spec) (string, error) {
	var buf bytes.Buffer
	if err := io.WriteJSON(&buf, spec); err != nil {
		return "", fmt.Errorf("serialize spec for cache key: %w", err)
	}
	return cache.Hash(buf.Bytes()), nil
}

// lookup reads key, treating cache errors as misses.
func (r *Runner) lookup(ctx context.Context, key string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
		hit = false
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, keyTypeArtifact)
		return data, true
	}
	observability.Cache().OnCacheMiss(ctx, keyTypeArtifact)
	return nil, false
}

func (r *Runner) store(ctx context.Context, key string, data []byte) {
	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyTypeArtifact, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
