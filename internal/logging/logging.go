package logging

import (
	"fmt"
	"io"
	"os"
)

// Logger is the diagnostic capability injected into components at
// construction. Components never reach for a process-wide singleton.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// DebugEnabled returns true if debug mode is enabled via the TK_DEBUG
// environment variable
func DebugEnabled() bool {
	return os.Getenv("TK_DEBUG") != ""
}

type debugLogger struct {
	out io.Writer
}

// NewDebugLogger creates a Logger that writes to stderr when debug
// mode is enabled and discards output otherwise.
func NewDebugLogger() Logger {
	if !DebugEnabled() {
		return Nop()
	}
	return &debugLogger{out: os.Stderr}
}

// NewWriterLogger creates a Logger that writes to the given writer
// unconditionally. Used by tests to capture output.
func NewWriterLogger(out io.Writer) Logger {
	return &debugLogger{out: out}
}

func (l *debugLogger) Debugf(format string, args ...interface{}) {
	fmt.Fprintf(l.out, format+"\n", args...)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}
