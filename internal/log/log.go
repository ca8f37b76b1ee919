// Package log configures structured logging for propview using log/slog.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Output is where Setup sends log records. Commands keep stdout for the
// rendered tree, so this defaults to stderr.
var Output io.Writer = os.Stderr

// Level maps the verbosity flags to a slog level.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above, including skipped criteria and resets
//
// Quiet takes precedence over verbose.
func Level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// Setup configures the default slog logger based on verbosity flags and
// returns it.
func Setup(verbose, quiet bool) *slog.Logger {
	handler := slog.NewTextHandler(Output, &slog.HandlerOptions{
		Level: Level(verbose, quiet),
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
