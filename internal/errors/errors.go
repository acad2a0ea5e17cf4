// Package errors carries the system's usage-error types: UsageError for
// caller mistakes such as an undefined variable or a query against an
// uncompiled engine, and SyntaxError (syntax.go) for a malformed rule
// string. Every such failure is synchronous, unlike the
// teacher's multi-code compiler diagnostics (there is no second pass,
// no warning level, nothing to catalog).
package errors

import "fmt"

// UsageError is returned for caller mistakes other than malformed rule
// syntax (which is a *SyntaxError): an empty rule string, an undefined
// variable name, or an operation invoked out of sequence (querying
// before compiling, for instance). It is never returned for a
// contradiction — that is a semantic result, not a usage error.
type UsageError struct {
	Op      string // the operation that failed, e.g. "AddRule", "Predict"
	Message string
}

func (e *UsageError) Error() string {
	if e.Op == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// New builds a UsageError.
func New(op, format string, args ...any) *UsageError {
	return &UsageError{Op: op, Message: fmt.Sprintf(format, args...)}
}
