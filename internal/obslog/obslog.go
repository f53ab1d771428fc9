// Package obslog configures structured logging for the solver CLI,
// mirroring the bot SDK's SetupLogger/SetupStructuredLogger split but
// built on charmbracelet/log rather than zerolog.
package obslog

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New configures a leveled logger writing to w (os.Stderr in normal
// operation). verbose lowers the level to debug; quiet raises it to
// warn; the two are mutually exclusive and verbose wins if both are set.
func New(w io.Writer, verbose, quiet bool) *log.Logger {
	level := log.InfoLevel
	switch {
	case verbose:
		level = log.DebugLevel
	case quiet:
		level = log.WarnLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return logger
}

// Default returns a logger writing to stderr at info level, for packages
// that need a logger outside of the CLI's flag-parsed entry point (tests,
// library callers that don't wire their own).
func Default() *log.Logger {
	return New(os.Stderr, false, false)
}

// Warner adapts a logger's Warn method to the aggregate.Warner /
// rangeparser skip-callback shape (func(string)) used for §7's non-fatal
// "skip and warn" conditions: range-parse skip and card-overlap skip. The
// infoset table's OnFull hook is not wired to it by any caller.
func Warner(logger *log.Logger) func(string) {
	return func(msg string) {
		logger.Warn(msg)
	}
}
