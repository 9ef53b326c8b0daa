package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestLogger captures log output in memory.
type TestLogger struct {
	*zerolog.Logger
	Buffer *bytes.Buffer
}

// NewTestLogger creates a trace-level logger writing to a buffer.
func NewTestLogger(t testing.TB) *TestLogger {
	t.Helper()

	buf := &bytes.Buffer{}
	oldLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(oldLevel) })

	logger := zerolog.New(buf).Level(zerolog.TraceLevel).With().Timestamp().Logger()
	return &TestLogger{Logger: &logger, Buffer: buf}
}

// Output returns everything logged so far.
func (tl *TestLogger) Output() string {
	return tl.Buffer.String()
}

// Lines returns the captured output split into entries.
func (tl *TestLogger) Lines() []string {
	out := strings.TrimSpace(tl.Output())
	if out == "" {
		return []string{}
	}
	return strings.Split(out, "\n")
}

// Contains reports whether the output contains substr.
func (tl *TestLogger) Contains(substr string) bool {
	return strings.Contains(tl.Output(), substr)
}

// CaptureLoggingForTest swaps the default logger for a capturing one
// until the test ends.
func CaptureLoggingForTest(t testing.TB) *TestLogger {
	t.Helper()

	original := *Default()
	tl := NewTestLogger(t)
	SetDefault(*tl.Logger)
	t.Cleanup(func() { SetDefault(original) })
	return tl
}

// DisableLoggingForTest silences the default logger until the test ends.
func DisableLoggingForTest(t testing.TB) {
	t.Helper()

	original := *Default()
	SetDefault(zerolog.Nop())
	t.Cleanup(func() { SetDefault(original) })
}
