package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// timestampLayout keeps log lines compact while still showing
// sub-second timing for generation stages.
const timestampLayout = "15:04:05.00"

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      timestampLayout,
		Level:           level,
	})
}

// progress stamps the start of an operation so done can report its
// elapsed time, e.g. "Saved to gallery (312ms)". Not safe for
// concurrent done calls.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// loggerCtxKey is unexported so no other package can collide with the
// logger slot in a context.
type loggerCtxKey struct{}

// withLogger attaches l to ctx for retrieval by subcommands.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default()
// when none was attached. Commands therefore never need a nil check.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerCtxKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
