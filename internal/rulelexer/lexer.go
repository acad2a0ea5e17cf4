// Package rulelexer builds the stateful lexer for rule strings, in the
// same shape as the teacher's module-grammar lexer: one "Root" rule
// table of ordered regexes handed to participle.
package rulelexer

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// RuleLexer tokenizes rule strings. Operators are listed longest-match
// first so "<=>" and "=>" aren't swallowed by the shorter "<=" and "="
// alternatives.
var RuleLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Operator", `<=>|=>|<=|&&|\|\||\^\^|=`, nil},
		{"Bang", `!`, nil},
		{"Punctuation", `[()]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
