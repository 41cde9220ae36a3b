// Package progress reports how far the cue merger has advanced.
//
// On an interactive terminal the percentage is drawn as a single overwritten
// line. Anywhere else (pipes, CI logs, files) it is emitted as sampled
// structured log lines so the output stays readable.
package progress

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"translatesrt/internal/logging"
)

// Reporter receives integer percentages in the range [0, 100].
type Reporter interface {
	Report(percent int)
	Finish()
}

// Nop discards progress.
type Nop struct{}

// Report implements Reporter.
func (Nop) Report(int) {}

// Finish implements Reporter.
func (Nop) Finish() {}

// New returns a terminal bar when w is a TTY and a log reporter otherwise.
func New(w io.Writer, logger *slog.Logger) Reporter {
	if IsTerminal(w) {
		return NewBar(w)
	}
	return NewLog(logger)
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Bar draws progress on one overwritten terminal line.
type Bar struct {
	bar  *progressbar.ProgressBar
	last int
}

// NewBar constructs a Bar writing to w.
func NewBar(w io.Writer) *Bar {
	return &Bar{
		bar: progressbar.NewOptions(100,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("translating"),
			progressbar.OptionSetWidth(30),
			progressbar.OptionSetPredictTime(false),
			progressbar.OptionClearOnFinish(),
		),
		last: -1,
	}
}

// Report implements Reporter.
func (b *Bar) Report(percent int) {
	percent = clamp(percent)
	if percent == b.last {
		return
	}
	b.last = percent
	_ = b.bar.Set(percent)
}

// Finish implements Reporter.
func (b *Bar) Finish() {
	_ = b.bar.Finish()
}

// Log emits progress as info logs, one per 10% bucket.
type Log struct {
	logger  *slog.Logger
	sampler *logging.ProgressSampler
}

// NewLog constructs a Log reporter.
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Log{
		logger:  logging.NewComponentLogger(logger, "progress"),
		sampler: logging.NewProgressSampler(10),
	}
}

// Report implements Reporter.
func (l *Log) Report(percent int) {
	percent = clamp(percent)
	if !l.sampler.ShouldLog(float64(percent)) {
		return
	}
	l.logger.Info("progress",
		logging.String(logging.FieldEventType, "progress"),
		logging.Int("percent", percent),
	)
}

// Finish implements Reporter.
func (l *Log) Finish() {
	l.sampler.Reset()
}

func clamp(percent int) int {
	switch {
	case percent < 0:
		return 0
	case percent > 100:
		return 100
	default:
		return percent
	}
}
