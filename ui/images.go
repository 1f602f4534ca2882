package ui

import (
	"context"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"github.com/apibillme/cache"
)

const (
	imageCacheSize = 128
	imageCacheTTL  = 30 * time.Minute
)

// ImageFetcher downloads image bytes.
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// imageCache keeps recently shown previews and thumbnails in memory.
type imageCache struct {
	fetcher ImageFetcher
	cache   cache.Cache
}

func newImageCache(fetcher ImageFetcher) *imageCache {
	return &imageCache{
		fetcher: fetcher,
		cache:   cache.New(imageCacheSize, cache.WithTTL(imageCacheTTL)),
	}
}

// Resource returns the image at url, fetching it on a miss.
func (c *imageCache) Resource(ctx context.Context, url string) (fyne.Resource, error) {
	if v, ok := c.cache.Get(url); ok {
		if res, ok := v.(fyne.Resource); ok {
			return res, nil
		}
	}

	data, err := c.fetcher.FetchImage(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to load preview: %w", err)
	}
	res := fyne.NewStaticResource(url, data)
	c.cache.Set(url, res)
	return res, nil
}
