// Package testutil holds helpers shared by the sparsesheet tests.
package testutil

import (
	"bytes"
	"log/slog"
	"testing"
)

// NewTestLogger returns a debug-level logger whose records go to t.Log,
// one call per record, so they are shown only for failing or -v runs.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(tbSink{tb: t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// tbSink forwards handler output to a test's log.
type tbSink struct {
	tb testing.TB
}

func (s tbSink) Write(p []byte) (int, error) {
	s.tb.Helper()
	s.tb.Log(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}
