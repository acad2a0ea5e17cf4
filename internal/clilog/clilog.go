// Package clilog is a small leveled logger for the CLI and REPL,
// colored the way the original command-line tool colored its
// success/error banners: green for good news, red for bad, plain for
// everything else.
package clilog

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger writes colored status lines to an output stream. The zero
// value is not usable; construct one with New.
type Logger struct {
	out io.Writer
}

// New returns a Logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{out: w}
}

// Stderr returns a Logger writing to os.Stderr, the default used by
// cmd/vl and the REPL.
func Stderr() *Logger {
	return New(os.Stderr)
}

// Success prints a green "✅ "-prefixed line.
func (l *Logger) Success(format string, args ...any) {
	fmt.Fprintln(l.out, color.GreenString("✅ "+format, args...))
}

// Error prints a red "❌ "-prefixed line.
func (l *Logger) Error(format string, args ...any) {
	fmt.Fprintln(l.out, color.RedString("❌ "+format, args...))
}

// Info prints an uncolored line.
func (l *Logger) Info(format string, args ...any) {
	fmt.Fprintf(l.out, format+"\n", args...)
}
