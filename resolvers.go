package birdmap

import (
	"time"

	"github.com/agentstation/birdmap/internal/transport"
	"github.com/agentstation/birdmap/pkg/constants"
	"github.com/agentstation/birdmap/pkg/errors"
	"github.com/agentstation/birdmap/pkg/resolver"
	"github.com/agentstation/birdmap/pkg/scrape"
	"github.com/agentstation/birdmap/pkg/sheet"
	"github.com/agentstation/birdmap/pkg/update"
)

// resolverFor builds the resolver for one source.
func (b *birdmap) resolverFor(source update.Source) (resolver.Resolver, error) {
	switch source {
	case update.SourceOverrides:
		t, err := b.overrideTable()
		if err != nil {
			return nil, err
		}
		return resolver.NewStatic(t), nil

	case update.SourceSheet:
		tbl, err := b.openSheet()
		if err != nil {
			return nil, err
		}
		pictures, err := resolver.NewSheet(tbl, b.config.nameColumn, b.config.pictureColumn)
		if err != nil {
			return nil, err
		}
		return pictures, nil

	case update.SourceWikipedia:
		t, err := b.overrideTable()
		if err != nil {
			return nil, err
		}
		pages := resolver.NewScrape(
			string(update.SourceWikipedia),
			resolver.NewField(constants.FieldWikipediaURL),
			b.fetcher(constants.ShortUserAgent, nil),
			scrape.Wikipedia,
			resolver.WithPacer(b.pacer(constants.DefaultDelay, constants.DefaultDelay)),
		)
		return resolver.NewChain(
			resolver.NewStatic(t),
			resolver.NewSkipDirect(resolver.NewChain(pages, resolver.NewFilePath(b.config.thumbWidth))),
		), nil

	case update.SourceWikiAves:
		tbl, err := b.openSheet()
		if err != nil {
			return nil, err
		}
		links, err := resolver.NewSheet(tbl, b.config.nameColumn, b.config.linkColumn)
		if err != nil {
			return nil, err
		}
		return resolver.NewScrape(
			string(update.SourceWikiAves),
			links,
			b.fetcher(constants.BrowserUserAgent, transport.Headers{"Accept-Language": constants.WikiAvesAcceptLanguage}),
			scrape.WikiAves,
			resolver.WithPacer(b.pacer(constants.WikiAvesDelayMin, constants.WikiAvesDelayMax)),
			resolver.WithBaseURL(b.config.wikiAvesBase),
		), nil

	case update.SourceFilePath:
		return resolver.NewFilePath(b.config.thumbWidth), nil
	}
	return nil, errors.NewValidationError("source", source, "unknown source")
}

func (b *birdmap) openSheet() (*sheet.Table, error) {
	var opts []sheet.Option
	if b.config.sheetName != "" {
		opts = append(opts, sheet.WithSheet(b.config.sheetName))
	}
	tbl, err := sheet.Open(b.config.sheetPath, opts...)
	if err != nil {
		return nil, errors.WrapResource("load", "sheet", b.config.sheetPath, err)
	}
	return tbl, nil
}

// fetcher returns a page client sending the configured user agent, or
// fallback when none is configured, plus any site headers.
func (b *birdmap) fetcher(fallback string, headers transport.Headers) *transport.Cache {
	ua := b.config.userAgent
	if ua == "" {
		ua = fallback
	}
	client := transport.New(transport.Decorators{transport.UserAgent(ua), headers},
		transport.WithHTTPClient(b.config.httpClient),
		transport.WithTimeout(b.config.httpTimeout),
	)
	return transport.NewCache(client, constants.PageCacheTTL)
}

// pacer uses the configured delay when one was set, else the site default.
func (b *birdmap) pacer(min, max time.Duration) *transport.Pacer {
	if b.config.delaySet {
		min, max = b.config.delay, b.config.delayMax
	}
	return transport.NewPacer(min, max)
}
