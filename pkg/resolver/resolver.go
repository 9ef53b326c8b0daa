// Package resolver turns a bird record into at most one candidate image URL.
// Resolvers never panic or return errors; failures come back as a Failed
// Result so a batch can continue.
package resolver

import (
	"context"
	"strings"

	"github.com/agentstation/birdmap/pkg/birds"
	"github.com/agentstation/birdmap/pkg/errors"
	"github.com/agentstation/birdmap/pkg/overrides"
	"github.com/agentstation/birdmap/pkg/sheet"
	"github.com/agentstation/birdmap/pkg/urlfix"
)

// Resolver finds a candidate image URL for a record.
type Resolver interface {
	Name() string
	Resolve(ctx context.Context, rec birds.Record) Result
}

// Static looks names up in an override table.
type Static struct {
	table overrides.Table
}

// NewStatic creates a Static resolver.
func NewStatic(table overrides.Table) *Static {
	return &Static{table: table}
}

// Name implements Resolver.
func (s *Static) Name() string { return "overrides" }

// Resolve implements Resolver.
func (s *Static) Resolve(_ context.Context, rec birds.Record) Result {
	if url, ok := s.table.Lookup(rec.Name()); ok && url != "" {
		return Found(url)
	}
	return Missing("no override")
}

// Sheet reads a URL column from the spreadsheet row matching the record name.
type Sheet struct {
	column string
	values map[string]string
}

// NewSheet indexes valueColumn of t by nameColumn.
func NewSheet(t *sheet.Table, nameColumn, valueColumn string) (*Sheet, error) {
	values, err := t.Lookup(nameColumn, valueColumn)
	if err != nil {
		return nil, err
	}
	return &Sheet{column: valueColumn, values: values}, nil
}

// Name implements Resolver.
func (s *Sheet) Name() string { return "sheet:" + s.column }

// Len returns the number of names with a value.
func (s *Sheet) Len() int { return len(s.values) }

// Resolve implements Resolver.
func (s *Sheet) Resolve(_ context.Context, rec birds.Record) Result {
	if v, ok := s.values[rec.Key()]; ok {
		return Found(v)
	}
	return Missing("no " + s.column + " cell")
}

// Field reads a URL from another field of the record.
type Field struct {
	key string
}

// NewField creates a Field resolver for key.
func NewField(key string) *Field {
	return &Field{key: key}
}

// Name implements Resolver.
func (f *Field) Name() string { return "field:" + f.key }

// Resolve implements Resolver.
func (f *Field) Resolve(_ context.Context, rec birds.Record) Result {
	v, _ := rec.String(f.key)
	if v = strings.TrimSpace(v); v != "" {
		return Found(v)
	}
	return Missing("no " + f.key)
}

// FilePath rewrites a Special:FilePath image URL to the direct media host.
type FilePath struct {
	rewriter urlfix.Rewriter
}

// NewFilePath creates a FilePath resolver producing thumbnails of width px.
func NewFilePath(width int) *FilePath {
	return &FilePath{rewriter: urlfix.NewRewriter(width)}
}

// Name implements Resolver.
func (f *FilePath) Name() string { return "filepath" }

// Resolve implements Resolver.
func (f *FilePath) Resolve(_ context.Context, rec birds.Record) Result {
	current := rec.ImageURL()
	if !urlfix.IsSpecialFilePath(current) {
		return Missing("not a Special:FilePath url")
	}
	if url, ok := f.rewriter.Rewrite(current); ok {
		return Found(url)
	}
	return Missing("no filename in url")
}

// Chain tries resolvers in order; the first Resolved result wins.
type Chain struct {
	steps []Resolver
}

// NewChain creates a Chain.
func NewChain(steps ...Resolver) *Chain {
	return &Chain{steps: steps}
}

// Name implements Resolver.
func (c *Chain) Name() string {
	names := make([]string, len(c.steps))
	for i, s := range c.steps {
		names[i] = s.Name()
	}
	return strings.Join(names, ">")
}

// Resolve implements Resolver. When nothing resolves the result is Failed if
// any step failed, NotFound otherwise.
func (c *Chain) Resolve(ctx context.Context, rec birds.Record) Result {
	var failed *Result
	reasons := make([]string, 0, len(c.steps))
	for _, step := range c.steps {
		if ctx.Err() != nil {
			return Failure("canceled", errors.Join(errors.ErrCanceled, ctx.Err()))
		}
		res := step.Resolve(ctx, rec)
		switch res.Outcome {
		case Resolved:
			return res
		case Failed:
			if failed == nil {
				failed = &res
			}
		}
		if res.Reason != "" {
			reasons = append(reasons, res.Reason)
		}
	}
	if failed != nil {
		return Failure(strings.Join(reasons, "; "), failed.Err)
	}
	return Missing(strings.Join(reasons, "; "))
}

// SkipDirect wraps a resolver and skips records whose image is already on
// the direct media host.
type SkipDirect struct {
	next Resolver
}

// NewSkipDirect creates a SkipDirect guard around next.
func NewSkipDirect(next Resolver) *SkipDirect {
	return &SkipDirect{next: next}
}

// Name implements Resolver.
func (s *SkipDirect) Name() string { return s.next.Name() }

// Resolve implements Resolver.
func (s *SkipDirect) Resolve(ctx context.Context, rec birds.Record) Result {
	if urlfix.IsDirectHost(rec.ImageURL()) {
		return Missing("already direct")
	}
	return s.next.Resolve(ctx, rec)
}
