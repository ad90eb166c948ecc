package testutil

import (
	"context"
	"strings"
	"testing"

	"github.com/vytor/lichessexport/internal/logger"
)

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// Logger returns a DEBUG logger that writes through t.Log.
func Logger(t testing.TB) *logger.Logger {
	return logger.New(
		logger.WithOutput(testWriter{t: t}),
		logger.WithLevel(logger.DEBUG),
	)
}

// Context returns a background context carrying Logger(t).
func Context(t testing.TB) context.Context {
	return logger.NewContext(context.Background(), Logger(t))
}
