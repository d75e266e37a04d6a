package cache

import (
	"context"
	"strings"

	perrors "github.com/matzehuels/plotkit/pkg/errors"
)

// Backend names accepted by Open besides URLs.
const (
	BackendFile = "file"
	BackendNone = "none"
)

// Open returns the cache selected by url:
//
//   - "" or "file": a FileCache in dir
//   - "none": a NullCache
//   - redis:// or rediss://: a RedisCache
//   - mongodb:// or mongodb+srv://: a MongoCache
func Open(ctx context.Context, url, dir string) (Cache, error) {
	switch {
	case url == "" || url == BackendFile:
		if dir == "" {
			return nil, perrors.New(perrors.ErrCodeInvalidArgument, "file cache needs a directory")
		}
		c, err := NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		return c, nil
	case url == BackendNone:
		return NewNullCache(), nil
	case strings.HasPrefix(url, "redis://"), strings.HasPrefix(url, "rediss://"):
		c, err := NewRedisCache(ctx, url)
		if err != nil {
			return nil, err
		}
		return c, nil
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		c, err := NewMongoCache(ctx, url)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, perrors.New(perrors.ErrCodeUnsupported, "unsupported cache %q (want file, none, redis:// or mongodb://)", url)
	}
}
