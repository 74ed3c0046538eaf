// Package logging configures diagnostic logging for the mkarchive command.
//
// Debug and warning logs go through log/slog to stderr. Short status lines
// meant for the person running the command are printed with UserSuccess
// and UserError.
package logging

import (
	"fmt"
	"io"
	"log/slog"
)

var (
	logger           = slog.New(slog.NewTextHandler(io.Discard, nil))
	out    io.Writer = io.Discard
	errOut io.Writer = io.Discard
)

// Setup installs the process logger. verbose enables debug records and
// json switches to the JSON handler. Diagnostic records are written to w.
func Setup(verbose, json bool, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	logger = slog.New(h)
	return logger
}

// SetOutput sets the writers used for user-facing status lines.
func SetOutput(stdout, stderr io.Writer) {
	out, errOut = stdout, stderr
}

// Logger returns the process logger.
func Logger() *slog.Logger {
	return logger
}

// Debug logs at debug level.
func Debug(msg string, args ...any) { logger.Debug(msg, args...) }

// Info logs at info level.
func Info(msg string, args ...any) { logger.Info(msg, args...) }

// Warn logs at warn level.
func Warn(msg string, args ...any) { logger.Warn(msg, args...) }

// Error logs at error level.
func Error(msg string, args ...any) { logger.Error(msg, args...) }

// UserSuccess prints a success line to the standard output writer.
func UserSuccess(format string, args ...any) {
	fmt.Fprintf(out, "✓ "+format+"\n", args...)
}

// UserError prints an error line to the error writer.
func UserError(format string, args ...any) {
	fmt.Fprintf(errOut, "✗ "+format+"\n", args...)
}
