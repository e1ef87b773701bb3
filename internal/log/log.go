// Package log configures the process logger. Output goes to a file in
// the data directory so log lines never tear the TUI.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Level picks the log level from the shared CLI flags. Debug wins when
// both are set.
func Level(quiet, debug bool) zerolog.Level {
	switch {
	case debug:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Open creates the log file and returns the root logger plus a close
// func. With console set, lines also go to stderr in human-readable
// form, for one-shot commands run with --debug. On failure the returned
// logger discards everything so callers can proceed without one.
func Open(path string, level zerolog.Level, console bool) (zerolog.Logger, func(), error) {
	zerolog.TimeFieldFormat = time.RFC3339

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("opening log file: %w", err)
	}

	var w io.Writer = f
	if console {
		w = zerolog.MultiLevelWriter(f, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return logger, func() { _ = f.Close() }, nil
}

// Component tags a child logger with the subsystem it belongs to.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
