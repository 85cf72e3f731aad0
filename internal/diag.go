package internal

import (
	"github.com/sirupsen/logrus"
)

// Reporter is the diagnostic sink for non-fatal conditions: skipped
// subtrees, unreadable files, informational notices. Implementations
// must be safe for concurrent use, workers report in parallel.
type Reporter interface {
	Report(condition string)
}

// logReporter forwards conditions to logrus. logrus serializes writes
// internally, so the sink is goroutine-safe as is.
type logReporter struct{}

// NewLogReporter returns a Reporter backed by the process logger.
func NewLogReporter() Reporter { return logReporter{} }

func (logReporter) Report(condition string) {
	logrus.Info(condition)
}

// countingReporter wraps another Reporter and bumps the error counter
// for every condition. Used by the CLI to fill AppStats.
type countingReporter struct {
	next  Reporter
	stats *AppStats
}

// NewCountingReporter wires stats accounting in front of next.
func NewCountingReporter(next Reporter, stats *AppStats) Reporter {
	return &countingReporter{next: next, stats: stats}
}

func (r *countingReporter) Report(condition string) {
	r.stats.Diagnostics.Add(1)
	r.next.Report(condition)
}
