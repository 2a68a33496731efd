// Package logging provides the CLI logger with secret redaction support.
package logging

import (
	"fmt"
	"os"
)

// Logger writes leveled, optionally colored messages to stderr.
type Logger struct {
	debug   bool
	noColor bool
}

// New creates a logger.
func New(debug, noColor bool) *Logger {
	return &Logger{debug: debug, noColor: noColor}
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.emit("\033[32m✓\033[0m", "✓", format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...any) {
	l.emit("\033[33m⚠\033[0m", "⚠", format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	l.emit("\033[31m✗\033[0m", "✗", format, args...)
}

// Debug logs a message only when debug mode is enabled.
func (l *Logger) Debug(format string, args ...any) {
	if !l.debug {
		return
	}
	l.emit("\033[36m[DEBUG]\033[0m", "[DEBUG]", format, args...)
}

func (l *Logger) emit(colored, plain, format string, args ...any) {
	prefix := colored
	if l.noColor {
		prefix = plain
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// Secret wraps a sensitive value so any formatting verb renders a
// placeholder instead of the value.
type Secret string

func (s Secret) String() string   { return "[REDACTED]" }
func (s Secret) GoString() string { return "[REDACTED]" }
