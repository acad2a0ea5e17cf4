package ruleparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitry-lesnik/vector-logic/ruleast"
)

func testVariables() map[string]int {
	return map[string]int{
		"x1": 1, "x2": 2, "x3": 3,
		"sky_is_grey": 1, "humidity_is_high": 2, "it_will_rain": 3, "take_umbrella": 4, "wind_is_strong": 5,
	}
}

func newTestParser(t *testing.T) *Parser {
	vars := testVariables()
	p, err := New(func(name string) (int, bool) {
		idx, ok := vars[name]
		return idx, ok
	})
	require.NoError(t, err)
	return p
}

func TestParseSingleVariable(t *testing.T) {
	p := newTestParser(t)
	node, err := p.Parse("x1")
	require.NoError(t, err)
	assert.Equal(t, ruleast.Var{Name: "x1"}, node)
}

func TestParseNegatedVariable(t *testing.T) {
	p := newTestParser(t)
	node, err := p.Parse("!x1")
	require.NoError(t, err)
	assert.Equal(t, ruleast.Var{Negated: true, Name: "x1"}, node)
}

func TestParseDoubleNegationTogglesBack(t *testing.T) {
	p := newTestParser(t)
	node, err := p.Parse("!!x1")
	require.NoError(t, err)
	assert.Equal(t, ruleast.Var{Negated: false, Name: "x1"}, node)
}

func TestParseRejectsNegatedParenExpression(t *testing.T) {
	p := newTestParser(t)
	_, err := p.Parse("!(x1 && x2)")
	assert.Error(t, err)
}

func TestParseRejectsDoubleNegatedParenExpression(t *testing.T) {
	p := newTestParser(t)
	_, err := p.Parse("!!(x1 && x2)")
	assert.Error(t, err)
}

func TestParseAndBindsTighterThanOr(t *testing.T) {
	p := newTestParser(t)
	node, err := p.Parse("x1 || x2 && x3")
	require.NoError(t, err)

	op, ok := node.(ruleast.Op)
	require.True(t, ok)
	assert.Equal(t, ruleast.OR, op.Operator)
	assert.Equal(t, ruleast.Var{Name: "x1"}, op.Left)

	right, ok := op.Right.(ruleast.Op)
	require.True(t, ok)
	assert.Equal(t, ruleast.AND, right.Operator)
}

func TestParseImplicationIsLowestPrecedence(t *testing.T) {
	p := newTestParser(t)
	node, err := p.Parse("sky_is_grey && humidity_is_high => it_will_rain")
	require.NoError(t, err)

	op, ok := node.(ruleast.Op)
	require.True(t, ok)
	assert.Equal(t, ruleast.IMPLIES, op.Operator)

	left, ok := op.Left.(ruleast.Op)
	require.True(t, ok)
	assert.Equal(t, ruleast.AND, left.Operator)
}

func TestParseEquivNormalizesToEq(t *testing.T) {
	p := newTestParser(t)
	node, err := p.Parse("x1 <=> x2")
	require.NoError(t, err)
	op, ok := node.(ruleast.Op)
	require.True(t, ok)
	assert.Equal(t, ruleast.EQ, op.Operator)
}

func TestParseParenthesesOverridePrecedence(t *testing.T) {
	p := newTestParser(t)
	node, err := p.Parse("(x1 || x2) && x3")
	require.NoError(t, err)

	op, ok := node.(ruleast.Op)
	require.True(t, ok)
	assert.Equal(t, ruleast.AND, op.Operator)

	left, ok := op.Left.(ruleast.Op)
	require.True(t, ok)
	assert.Equal(t, ruleast.OR, left.Operator)
}

func TestParseRejectsUndefinedVariable(t *testing.T) {
	p := newTestParser(t)
	_, err := p.Parse("undefined_var && x1")
	assert.Error(t, err)
}

func TestParseRejectsEmptyString(t *testing.T) {
	p := newTestParser(t)
	_, err := p.Parse("")
	assert.Error(t, err)
}

func TestParseRejectsMalformedSyntax(t *testing.T) {
	p := newTestParser(t)
	_, err := p.Parse("x1 &&")
	assert.Error(t, err)
}

func TestParseRevImplies(t *testing.T) {
	p := newTestParser(t)
	node, err := p.Parse("x1 <= x2")
	require.NoError(t, err)
	op, ok := node.(ruleast.Op)
	require.True(t, ok)
	assert.Equal(t, ruleast.REV_IMPLIES, op.Operator)
}

func TestParseXor(t *testing.T) {
	p := newTestParser(t)
	node, err := p.Parse("x1 ^^ x2")
	require.NoError(t, err)
	op, ok := node.(ruleast.Op)
	require.True(t, ok)
	assert.Equal(t, ruleast.XOR, op.Operator)
}

func TestParseChainedEqualityIsLeftAssociative(t *testing.T) {
	p := newTestParser(t)
	node, err := p.Parse("x1 => x2 => x3")
	require.NoError(t, err)

	op, ok := node.(ruleast.Op)
	require.True(t, ok)
	assert.Equal(t, ruleast.IMPLIES, op.Operator)
	assert.Equal(t, ruleast.Var{Name: "x3"}, op.Right)

	left, ok := op.Left.(ruleast.Op)
	require.True(t, ok)
	assert.Equal(t, ruleast.IMPLIES, left.Operator)
	assert.Equal(t, ruleast.Var{Name: "x1"}, left.Left)
	assert.Equal(t, ruleast.Var{Name: "x2"}, left.Right)
}
