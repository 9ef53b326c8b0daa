// Package emoji provides the status symbols used in CLI summaries.
package emoji

const (
	// Success marks a completed run or an image already on the direct host.
	Success = "✓"

	// Error marks a failed resolution or run.
	Error = "✗"

	// Warning marks a non-fatal problem such as duplicate names.
	Warning = "!"

	// Info marks dry-run and informational lines.
	Info = "i"
)
