// Package birdmap repairs the image URLs of a bird catalog stored as a JSON
// document. A run loads the records, asks one source for a candidate URL per
// bird, merges the candidates into the records and writes them back.
//
// Example usage:
//
//	bm, err := birdmap.New(birdmap.WithJSONPath("bird_data.json"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	bm.OnImageUpdated(func(c merge.Change) {
//	    log.Printf("%s: %s", c.Name, c.New)
//	})
//
//	result, err := bm.Update(ctx, update.WithSource(update.SourceWikipedia))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result)
package birdmap

import (
	"context"
	"fmt"
	"sync"

	"github.com/agentstation/birdmap/pkg/birds"
	"github.com/agentstation/birdmap/pkg/overrides"
	"github.com/agentstation/birdmap/pkg/store"
	"github.com/agentstation/birdmap/pkg/update"
)

// Birdmap runs image-URL updates against one bird catalog file.
type Birdmap interface {
	// Records loads the current records.
	Records(ctx context.Context) (birds.Records, error)

	// Update resolves candidate URLs from one source and merges them.
	Update(ctx context.Context, opts ...update.Option) (*update.Result, error)

	// OnImageUpdated registers a callback run for every applied change.
	OnImageUpdated(ImageUpdatedHook)
}

type birdmap struct {
	config        *config
	store         *store.Store
	hooks         *hooks
	overrideTable func() (overrides.Table, error)
}

// New creates a Birdmap with the given options.
func New(opts ...Option) (Birdmap, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	b := &birdmap{
		config: cfg,
		store:  store.Open(cfg.jsonPath),
		hooks:  newHooks(),
	}
	if cfg.overrideTbl != nil {
		t := *cfg.overrideTbl
		b.overrideTable = func() (overrides.Table, error) { return t, nil }
	} else {
		b.overrideTable = sync.OnceValues(func() (overrides.Table, error) {
			return overrides.Build(cfg.overrides)
		})
	}
	return b, nil
}

// Records implements Birdmap.
func (b *birdmap) Records(_ context.Context) (birds.Records, error) {
	return b.store.Load()
}

// OnImageUpdated implements Birdmap.
func (b *birdmap) OnImageUpdated(fn ImageUpdatedHook) {
	b.hooks.OnImageUpdated(fn)
}
