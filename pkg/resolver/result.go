package resolver

import "fmt"

// Outcome classifies a resolution attempt.
type Outcome int

// Outcomes.
const (
	NotFound Outcome = iota
	Resolved
	Failed
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "resolved"
	case NotFound:
		return "not_found"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Result is the outcome of resolving one record.
type Result struct {
	Outcome Outcome
	URL     string // set when Resolved
	Reason  string // short human explanation for NotFound and Failed
	Err     error  // set when Failed
}

// Found returns a Resolved result.
func Found(url string) Result {
	return Result{Outcome: Resolved, URL: url}
}

// Missing returns a NotFound result.
func Missing(reason string) Result {
	return Result{Outcome: NotFound, Reason: reason}
}

// Failure returns a Failed result wrapping err.
func Failure(reason string, err error) Result {
	return Result{Outcome: Failed, Reason: reason, Err: err}
}

// OK reports whether the result carries a URL.
func (r Result) OK() bool {
	return r.Outcome == Resolved
}
