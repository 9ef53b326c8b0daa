package merge

import (
	"context"

	"github.com/agentstation/birdmap/pkg/birds"
	"github.com/agentstation/birdmap/pkg/logging"
	"github.com/agentstation/birdmap/pkg/resolver"
)

// Failure records one record whose resolution failed.
type Failure struct {
	Name   string `json:"name" yaml:"name"`
	Reason string `json:"reason" yaml:"reason"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report counts resolution outcomes for one Collect run.
type Report struct {
	Source   string    `json:"source" yaml:"source"`
	Total    int       `json:"total" yaml:"total"`
	Resolved int       `json:"resolved" yaml:"resolved"`
	NotFound int       `json:"not_found" yaml:"not_found"`
	Failed   int       `json:"failed" yaml:"failed"`
	Failures []Failure `json:"failures,omitempty" yaml:"failures,omitempty"`
	Canceled bool      `json:"canceled,omitempty" yaml:"canceled,omitempty"`
}

// Collect runs r over records in order, once per distinct name, and returns
// every resolved URL. A failed record is logged and counted; the run goes
// on. Cancellation stops the run and marks the report, including when it
// lands while the last record resolves.
func Collect(ctx context.Context, records birds.Records, r resolver.Resolver) (URLMap, Report) {
	m := make(URLMap)
	report := Report{Source: r.Name()}
	seen := make(map[string]bool, len(records))

	ctx = logging.WithSource(ctx, r.Name())
	for _, rec := range records {
		if ctx.Err() != nil {
			report.Canceled = true
			break
		}
		key := rec.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		report.Total++

		rctx := logging.WithBird(ctx, rec.Name())
		res := r.Resolve(rctx, rec)
		logger := logging.Ctx(rctx)

		switch res.Outcome {
		case resolver.Resolved:
			report.Resolved++
			m[rec.Name()] = res.URL
			logger.Debug().Str("url", res.URL).Msg("Resolved")
		case resolver.Failed:
			report.Failed++
			f := Failure{Name: rec.Name(), Reason: res.Reason}
			if res.Err != nil {
				f.Error = res.Err.Error()
			}
			report.Failures = append(report.Failures, f)
			logger.Warn().Err(res.Err).Str("reason", res.Reason).Msg("Resolution failed")
		default:
			report.NotFound++
			logger.Debug().Str("reason", res.Reason).Msg("Not found")
		}
	}
	if ctx.Err() != nil {
		report.Canceled = true
	}
	return m, report
}
