package transport

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/agentstation/birdmap/pkg/logging"
)

// PageFetcher fetches one page.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*Page, error)
}

// Cache keeps successfully fetched pages in memory so a page linked from
// several records is downloaded once. Failures are never cached.
type Cache struct {
	next  PageFetcher
	store *gocache.Cache
}

// NewCache wraps next with a cache whose entries live for ttl.
func NewCache(next PageFetcher, ttl time.Duration) *Cache {
	return &Cache{
		next:  next,
		store: gocache.New(ttl, 2*ttl),
	}
}

// Fetch returns the cached page for url or fetches and stores it.
func (c *Cache) Fetch(ctx context.Context, url string) (*Page, error) {
	if v, ok := c.store.Get(url); ok {
		logging.Ctx(ctx).Debug().Str("url", url).Msg("Page cache hit")
		return v.(*Page), nil
	}

	page, err := c.next.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	c.store.Set(url, page, gocache.DefaultExpiration)
	return page, nil
}

// Cached reports whether url would be answered without a request.
func (c *Cache) Cached(url string) bool {
	_, ok := c.store.Get(url)
	return ok
}

// Len returns the number of cached pages.
func (c *Cache) Len() int {
	return c.store.ItemCount()
}
