package cli

import (
	"context"
	stderrors "errors"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/ghcount/pkg/errors"
	"github.com/matzehuels/ghcount/pkg/integrations/github"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// newErrorLogger creates the logger for fatal errors. Lines are exactly
// "ERROR: <message>", with no timestamp or color, so scripts can match them.
func newErrorLogger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{Level: log.ErrorLevel})
	styles := log.DefaultStyles()
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().SetString("ERROR:")
	l.SetStyles(styles)
	return l
}

// ReportError prints err to stderr as "ERROR: <message>".
func (c *CLI) ReportError(err error) {
	c.errLog.Error(errorMessage(err))
}

// errorMessage is the text shown to the user for err. Platform errors are
// reported with the API's message verbatim.
func errorMessage(err error) string {
	var pe *github.PlatformError
	if stderrors.As(err, &pe) {
		return pe.Message
	}
	return errors.UserMessage(err)
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Fetched brbsix/debtool (412ms)"
func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
