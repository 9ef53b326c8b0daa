package resolver

import (
	"context"
	"net/url"

	"github.com/agentstation/birdmap/internal/transport"
	"github.com/agentstation/birdmap/pkg/birds"
	"github.com/agentstation/birdmap/pkg/logging"
	"github.com/agentstation/birdmap/pkg/scrape"
)

// Fetcher retrieves a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*transport.Page, error)
}

// cacher is implemented by fetchers that can answer some pages locally.
type cacher interface {
	Cached(url string) bool
}

// Waiter blocks between requests.
type Waiter interface {
	Wait(ctx context.Context) error
}

// Scrape fetches the page found by a locator and extracts an image from it.
type Scrape struct {
	name     string
	locator  Resolver
	fetcher  Fetcher
	pacer    Waiter
	base     *url.URL
	matchers []scrape.Matcher
}

// ScrapeOption configures a Scrape resolver.
type ScrapeOption func(*Scrape)

// WithPacer sets the wait applied before every fetch that goes to the network.
func WithPacer(w Waiter) ScrapeOption {
	return func(s *Scrape) { s.pacer = w }
}

// WithBaseURL resolves relative page locations against base.
func WithBaseURL(base string) ScrapeOption {
	return func(s *Scrape) {
		if u, err := url.Parse(base); err == nil && u.IsAbs() {
			s.base = u
		}
	}
}

// NewScrape creates a Scrape resolver.
func NewScrape(name string, locator Resolver, fetcher Fetcher, matchers []scrape.Matcher, opts ...ScrapeOption) *Scrape {
	s := &Scrape{
		name:     name,
		locator:  locator,
		fetcher:  fetcher,
		matchers: matchers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name implements Resolver.
func (s *Scrape) Name() string { return s.name }

// Resolve implements Resolver.
func (s *Scrape) Resolve(ctx context.Context, rec birds.Record) Result {
	loc := s.locator.Resolve(ctx, rec)
	if loc.Outcome != Resolved {
		return loc
	}
	pageURL := s.absolute(loc.URL)

	logger := logging.Ctx(ctx).With().
		Str("bird", rec.Name()).
		Str("source", s.name).
		Str("page", pageURL).
		Logger()

	if s.pacer != nil && !s.cached(pageURL) {
		if err := s.pacer.Wait(ctx); err != nil {
			return Failure("canceled", err)
		}
	}

	page, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		logger.Warn().Err(err).Msg("Page fetch failed")
		return Failure("fetch failed", err)
	}

	doc, err := scrape.Parse(page.URL, page.Body)
	if err != nil {
		logger.Warn().Err(err).Msg("Page parse failed")
		return Failure("parse failed", err)
	}

	image, matcher, ok := scrape.First(doc, s.matchers)
	if !ok {
		logger.Debug().Msg("No image on page")
		return Missing("no image on page")
	}
	logger.Debug().Str("matcher", matcher).Str("url", image).Msg("Image found")
	return Found(image)
}

func (s *Scrape) cached(pageURL string) bool {
	c, ok := s.fetcher.(cacher)
	return ok && c.Cached(pageURL)
}

func (s *Scrape) absolute(loc string) string {
	if s.base == nil {
		return loc
	}
	ref, err := url.Parse(loc)
	if err != nil || ref.IsAbs() {
		return loc
	}
	return s.base.ResolveReference(ref).String()
}
