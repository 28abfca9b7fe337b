// Package logger provides the output channel used by nglint.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocklogger.gen.go -package=logger

// Logger writes formatted lines.
type Logger interface {
	// Logf logs a formatted message followed by a newline.
	Logf(format string, args ...interface{})
}

type noopLogger struct{}

// NewNoopLogger creates a logger that discards everything.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// writerLogger serializes writes to an io.Writer.
type writerLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewDefaultLogger creates a logger writing to stdout.
func NewDefaultLogger() Logger {
	return NewWriterLogger(os.Stdout)
}

// NewWriterLogger creates a logger writing to w.
func NewWriterLogger(w io.Writer) Logger {
	return &writerLogger{w: w}
}

// Logf writes a formatted line to the underlying writer.
func (l *writerLogger) Logf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, format+"\n", args...)
}
