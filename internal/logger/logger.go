// Package logger wraps charm/log with the events the mdhtml command reports.
package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger is a structured logger.
type Logger struct {
	*log.Logger
}

// New creates a logger writing to w. Debug output is enabled when verbose.
func New(w io.Writer, verbose bool) *Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
		Prefix:          "mdhtml",
	})
	return &Logger{Logger: l}
}

// Discard returns a logger that drops all output.
func Discard() *Logger {
	return New(io.Discard, false)
}

// ConfigLoaded logs the effective config source.
func (l *Logger) ConfigLoaded(path, dialect string) {
	l.Debug("config loaded",
		"path", path,
		"dialect", dialect)
}

// InputRead logs one fully read input.
func (l *Logger) InputRead(source string, size int) {
	l.Debug("input read",
		"source", source,
		"bytes", size)
}

// Rendered logs the completion of a render.
func (l *Logger) Rendered(dialect string, words, htmlBytes int, duration time.Duration) {
	l.Debug("rendered",
		"dialect", dialect,
		"words", words,
		"html_bytes", htmlBytes,
		"duration", duration.Round(time.Microsecond))
}

// InputRejected logs input refused by validation.
func (l *Logger) InputRejected(source string, err error) {
	l.Error("input rejected",
		"source", source,
		"error", err)
}
