package ruleparser

// Grammar, highest precedence first: "!" binds tighter than "&&", which
// binds tighter than "||", then "^^", then the equality-level operators
// ("=>", "<=", "<=>", "="), all left-associative — one chained struct
// per precedence level, mirroring the teacher's Expr → BinaryExpr →
// UnaryExpr chain.

type ruleFile struct {
	Expr *eqExpr `@@`
}

type eqExpr struct {
	Left *xorExpr `@@`
	Ops  []*eqOp  `{ @@ }`
}

type eqOp struct {
	Operator string   `@("=>" | "<=" | "<=>" | "=")`
	Right    *xorExpr `@@`
}

type xorExpr struct {
	Left   *orExpr   `@@`
	Rights []*orExpr `{ "^^" @@ }`
}

type orExpr struct {
	Left   *andExpr   `@@`
	Rights []*andExpr `{ "||" @@ }`
}

type andExpr struct {
	Left   *unaryExpr   `@@`
	Rights []*unaryExpr `{ "&&" @@ }`
}

type unaryExpr struct {
	Bangs   []string     `{ @"!" }`
	Primary *primaryExpr `@@`
}

type primaryExpr struct {
	Ident *string `  @Ident`
	Paren *eqExpr `| "(" @@ ")"`
}
