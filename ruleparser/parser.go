// Package ruleparser turns rule strings ("sky_is_grey && humidity_is_high
// => it_will_rain") into ruleast.Node trees, using participle the way the
// teacher's grammar package parses module source: a stateful lexer plus
// one struct per precedence level, reduced by hand into the target tree.
package ruleparser

import (
	"errors"

	"github.com/alecthomas/participle/v2"

	ruleerrors "github.com/dmitry-lesnik/vector-logic/internal/errors"
	"github.com/dmitry-lesnik/vector-logic/internal/rulelexer"
	"github.com/dmitry-lesnik/vector-logic/ruleast"
)

// Parser parses rule strings against a fixed variable universe, the way
// the original's RuleParser was constructed with a variable_map: a
// reference to an identifier that variableIndex doesn't recognize is a
// usage error, not a syntax error.
type Parser struct {
	inner         *participle.Parser[ruleFile]
	variableIndex func(name string) (int, bool)
}

// New builds a Parser. variableIndex reports whether name is a declared
// variable; Parse rejects any identifier for which it returns false.
func New(variableIndex func(name string) (int, bool)) (*Parser, error) {
	inner, err := participle.Build[ruleFile](
		participle.Lexer(rulelexer.RuleLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, err
	}
	return &Parser{inner: inner, variableIndex: variableIndex}, nil
}

// Parse converts rule into a ruleast.Node. Syntax errors come back
// wrapped in *errors.SyntaxError (format with errors.FormatSyntaxError),
// and so is a "!(...)" negation of a parenthesized expression; an empty
// rule or an undefined variable comes back as a *errors.UsageError.
func (p *Parser) Parse(rule string) (ruleast.Node, error) {
	if rule == "" {
		return nil, ruleerrors.New("Parse", "cannot parse an empty rule string")
	}

	tree, err := p.inner.ParseString("", rule)
	if err != nil {
		return nil, &ruleerrors.SyntaxError{Rule: rule, Err: err}
	}

	node, err := p.buildEq(tree.Expr)
	if se, ok := err.(*ruleerrors.SyntaxError); ok {
		se.Rule = rule
	}
	return node, err
}

func (p *Parser) buildEq(e *eqExpr) (ruleast.Node, error) {
	node, err := p.buildXor(e.Left)
	if err != nil {
		return nil, err
	}
	for _, op := range e.Ops {
		right, err := p.buildXor(op.Right)
		if err != nil {
			return nil, err
		}
		node = ruleast.Op{Operator: eqOperator(op.Operator), Left: node, Right: right}
	}
	return node, nil
}

func eqOperator(spelling string) ruleast.Operator {
	switch spelling {
	case "=>":
		return ruleast.IMPLIES
	case "<=":
		return ruleast.REV_IMPLIES
	default: // "=" and "<=>" mean the same thing.
		return ruleast.EQ
	}
}

func (p *Parser) buildXor(e *xorExpr) (ruleast.Node, error) {
	node, err := p.buildOr(e.Left)
	if err != nil {
		return nil, err
	}
	for _, r := range e.Rights {
		right, err := p.buildOr(r)
		if err != nil {
			return nil, err
		}
		node = ruleast.Op{Operator: ruleast.XOR, Left: node, Right: right}
	}
	return node, nil
}

func (p *Parser) buildOr(e *orExpr) (ruleast.Node, error) {
	node, err := p.buildAnd(e.Left)
	if err != nil {
		return nil, err
	}
	for _, r := range e.Rights {
		right, err := p.buildAnd(r)
		if err != nil {
			return nil, err
		}
		node = ruleast.Op{Operator: ruleast.OR, Left: node, Right: right}
	}
	return node, nil
}

func (p *Parser) buildAnd(e *andExpr) (ruleast.Node, error) {
	node, err := p.buildUnary(e.Left)
	if err != nil {
		return nil, err
	}
	for _, r := range e.Rights {
		right, err := p.buildUnary(r)
		if err != nil {
			return nil, err
		}
		node = ruleast.Op{Operator: ruleast.AND, Left: node, Right: right}
	}
	return node, nil
}

func (p *Parser) buildUnary(e *unaryExpr) (ruleast.Node, error) {
	node, err := p.buildPrimary(e.Primary)
	if err != nil {
		return nil, err
	}
	if len(e.Bangs) == 0 {
		return node, nil
	}
	v, ok := node.(ruleast.Var)
	if !ok {
		return nil, &ruleerrors.SyntaxError{Err: errors.New("negation of a parenthesized expression is not allowed")}
	}
	if len(e.Bangs)%2 == 0 {
		return v, nil
	}
	return ruleast.Var{Negated: !v.Negated, Name: v.Name}, nil
}

func (p *Parser) buildPrimary(e *primaryExpr) (ruleast.Node, error) {
	if e.Paren != nil {
		return p.buildEq(e.Paren)
	}
	name := *e.Ident
	if _, ok := p.variableIndex(name); !ok {
		return nil, ruleerrors.New("Parse", "variable %q is not defined in the engine", name)
	}
	return ruleast.Var{Name: name}, nil
}
