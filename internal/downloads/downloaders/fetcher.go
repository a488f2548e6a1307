// Package downloaders holds the backends that actually fetch a video.
package downloaders

import (
	"context"
	"errors"
	"fmt"
	"vidgrab/internal/models"
)

// ErrUnsupported is returned when a backend cannot handle a URL's platform.
var ErrUnsupported = errors.New("unsupported URL")

// Fetcher downloads one URL according to cfg and reports what it saved.
type Fetcher interface {
	Fetch(ctx context.Context, url string, cfg models.DownloadConfig) (*models.Media, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string, cfg models.DownloadConfig) (*models.Media, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, url string, cfg models.DownloadConfig) (*models.Media, error) {
	return f(ctx, url, cfg)
}

// ByPlatform routes each platform to its own backend.
type ByPlatform struct {
	Default Fetcher
	Routes  map[models.Platform]Fetcher
}

// Fetch hands the request to the backend registered for cfg.Platform, or Default.
func (r *ByPlatform) Fetch(ctx context.Context, url string, cfg models.DownloadConfig) (*models.Media, error) {
	if f, ok := r.Routes[cfg.Platform]; ok && f != nil {
		return f.Fetch(ctx, url, cfg)
	}
	if r.Default == nil {
		return nil, fmt.Errorf("%w: no backend for platform %q", ErrUnsupported, cfg.Platform)
	}
	return r.Default.Fetch(ctx, url, cfg)
}
