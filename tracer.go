package untimed

import (
	"fmt"
	"io"
)

// Tracer receives diagnostic messages about propagator lifecycle events.
// The Shell reports host rejections of a nogood during Propagate; watch
// replacements and locking decisions are not traced. Implementations
// must not block and must not retain format or args beyond the call.
type Tracer interface {
	Tracef(format string, args ...interface{})
}

// DefaultTracer discards everything; it is the Shell's default.
type DefaultTracer struct{}

func (DefaultTracer) Tracef(string, ...interface{}) {}

// LoggingTracer writes every trace line to Writer, newline-terminated.
type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Tracef(format string, args ...interface{}) {
	fmt.Fprintf(t.Writer, format+"\n", args...)
}
