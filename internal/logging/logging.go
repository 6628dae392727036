// Package logging configures the structured file logger.
package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// Options controls where and how much is logged.
type Options struct {
	Path  string
	Debug bool
}

// Setup installs a JSON slog handler that writes to a rotating log file and
// makes it the default logger. The returned closer flushes the file.
func Setup(opts Options) (*slog.Logger, io.Closer) {
	w := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	logger := New(w, opts.Debug)

	slog.SetDefault(logger)

	return logger, w
}

// New returns a JSON logger writing to w.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
