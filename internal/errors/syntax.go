package errors

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

// SyntaxError wraps a rule-syntax failure (usually a participle parse
// error) with the rule string it came from, so FormatSyntaxError can
// render a caret under the offending column the way the teacher's
// reportParseError does for module source.
type SyntaxError struct {
	Rule string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid rule syntax: %s", e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// FormatSyntaxError renders a caret-style message for a rule syntax
// error: the offending line, a caret under the column, and the
// underlying parser's message. Non-participle errors fall back to a
// plain one-liner.
func FormatSyntaxError(e *SyntaxError) string {
	pe, ok := e.Err.(participle.Error)
	if !ok {
		return fmt.Sprintf("invalid rule syntax: %s", e.Err)
	}

	pos := pe.Position()
	if pos.Column <= 0 {
		return fmt.Sprintf("invalid rule syntax: %s", pe.Message())
	}

	caret := strings.Repeat(" ", pos.Column-1) + "^"
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", color.RedString("invalid rule syntax at column %d:", pos.Column))
	fmt.Fprintf(&b, "%s\n", e.Rule)
	fmt.Fprintf(&b, "%s\n", color.HiRedString(caret))
	fmt.Fprintf(&b, "→ %s", pe.Message())
	return b.String()
}
