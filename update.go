package birdmap

import (
	"context"
	"fmt"

	"github.com/agentstation/utc"
	"github.com/google/uuid"

	"github.com/agentstation/birdmap/pkg/errors"
	"github.com/agentstation/birdmap/pkg/logging"
	"github.com/agentstation/birdmap/pkg/merge"
	"github.com/agentstation/birdmap/pkg/save"
	"github.com/agentstation/birdmap/pkg/store"
	"github.com/agentstation/birdmap/pkg/update"
)

// Update implements Birdmap. It holds the store lock for the whole
// load → resolve → merge → save cycle. Nothing is written when the load
// fails, when the run is canceled, on dry runs, or when nothing changed.
func (b *birdmap) Update(ctx context.Context, opts ...update.Option) (*update.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	options := update.New(opts...)
	if err := options.Validate(); err != nil {
		return nil, err
	}

	var cancel context.CancelFunc
	if options.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
	} else {
		cancel = func() {}
	}
	defer cancel()

	runID := uuid.NewString()
	ctx = logging.WithRunID(logging.WithOperation(ctx, "update"), runID)
	logger := logging.Ctx(ctx)

	result := &update.Result{
		RunID:     runID,
		Source:    options.Source,
		Path:      b.store.Path(),
		DryRun:    options.DryRun,
		StartedAt: utc.Now(),
	}

	r, err := b.resolverFor(options.Source)
	if err != nil {
		return nil, err
	}

	unlock, err := b.store.Lock(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := unlock(); err != nil {
			logger.Warn().Err(err).Msg("Failed to release store lock")
		}
	}()

	records, err := b.store.Load()
	if err != nil {
		return nil, err
	}
	result.Records = len(records)
	if dups := records.Duplicates(); len(dups) > 0 {
		logger.Warn().Strs("names", dups).Msg("Duplicate bird names, every copy is updated")
	}

	m, report := merge.Collect(ctx, records, r)
	result.Report = report
	if report.Canceled || ctx.Err() != nil {
		return nil, fmt.Errorf("update %s: %w", options.Source, errors.Join(errors.ErrCanceled, ctx.Err()))
	}

	merged, changes := merge.MergeWithChanges(records, m, merge.WithRequireNonEmpty())
	result.Changes = changes

	switch {
	case options.DryRun:
		if options.Preview != nil {
			if err := store.Save(merged, save.WithWriter(options.Preview), save.WithFormat(options.PreviewFormat)); err != nil {
				return nil, err
			}
		}
		logger.Info().Bool("dry_run", true).Int("changes", len(changes)).Msg("Dry run completed, no changes written")
	case len(changes) > 0:
		if err := b.store.Save(merged); err != nil {
			return nil, err
		}
		result.Written = true
		b.hooks.triggerImageUpdated(changes)
	}

	result.FinishedAt = utc.Now()
	logger.Info().
		Str("source", string(options.Source)).
		Int("records", result.Records).
		Int("resolved", report.Resolved).
		Int("not_found", report.NotFound).
		Int("failed", report.Failed).
		Int("updated", len(changes)).
		Bool("written", result.Written).
		Dur("took", result.Duration()).
		Msg("Update finished")

	return result, nil
}
