package logging

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

var (
	output  io.Writer = os.Stderr
	verbose atomic.Bool
)

// DebugEnabled returns true if debug mode is enabled via DATELIT_DEBUG or verbose mode
func DebugEnabled() bool {
	return os.Getenv("DATELIT_DEBUG") != "" || verbose.Load()
}

// SetVerbose turns debug output on regardless of DATELIT_DEBUG
func SetVerbose(v bool) {
	verbose.Store(v)
}

// SetOutput redirects debug output and returns the previous writer.
// Not safe to call concurrently with Debugf.
func SetOutput(w io.Writer) io.Writer {
	prev := output
	output = w
	return prev
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(output, format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintln(output, args...)
	}
}
