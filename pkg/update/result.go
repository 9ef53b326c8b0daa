package update

import (
	"fmt"
	"time"

	"github.com/agentstation/utc"

	"github.com/agentstation/birdmap/pkg/merge"
)

// Result summarizes one Update run.
type Result struct {
	RunID   string        `json:"run_id" yaml:"run_id"`
	Source  Source        `json:"source" yaml:"source"`
	Path    string        `json:"path" yaml:"path"`
	Records int           `json:"records" yaml:"records"`
	Report  merge.Report  `json:"report" yaml:"report"`
	Changes merge.Changes `json:"changes" yaml:"changes"`

	DryRun  bool `json:"dry_run" yaml:"dry_run"`
	Written bool `json:"written" yaml:"written"` // store file rewritten

	StartedAt  utc.Time `json:"started_at" yaml:"started_at"`
	FinishedAt utc.Time `json:"finished_at" yaml:"finished_at"`
}

// Updated returns the number of records whose imageUrl changed.
func (r *Result) Updated() int {
	return len(r.Changes)
}

// Duration returns how long the run took.
func (r *Result) Duration() time.Duration {
	return r.FinishedAt.Time.Sub(r.StartedAt.Time)
}

// String returns a one-line summary.
func (r *Result) String() string {
	verb := "updated"
	if r.DryRun {
		verb = "would update"
	}
	return fmt.Sprintf("%s: %s %d of %d record(s) (%d resolved, %d not found, %d failed)",
		r.Source, verb, r.Updated(), r.Records, r.Report.Resolved, r.Report.NotFound, r.Report.Failed)
}
