// Package ruleconverter turns a parsed rule AST into a statevector.StateVector:
// the end-to-end translation pipeline from rule text to algebra. A
// Converter keeps a variable's first occurrence as a var node; a
// later occurrence is replaced by a fresh auxiliary and tied back to the
// original with an equality rule, so every simple AST the rest of the
// pipeline sees mentions each variable at most once — binary and
// triplet code tables only have to handle that shape.
package ruleconverter

import (
	"fmt"

	ruleerrors "github.com/dmitry-lesnik/vector-logic/internal/errors"
	"github.com/dmitry-lesnik/vector-logic/cube"
	"github.com/dmitry-lesnik/vector-logic/ruleast"
	"github.com/dmitry-lesnik/vector-logic/ruleparser"
	"github.com/dmitry-lesnik/vector-logic/statevector"
)

// Converter converts rule strings into StateVectors against a fixed
// variable universe.
type Converter struct {
	parser        *ruleparser.Parser
	variableIndex func(name string) (int, bool)

	auxVarCounter int
	auxVarMap     map[string]int
}

// New builds a Converter. variableIndex reports whether name is a
// declared engine variable and, if so, its 1-based index.
func New(variableIndex func(name string) (int, bool)) (*Converter, error) {
	parser, err := ruleparser.New(variableIndex)
	if err != nil {
		return nil, err
	}
	return &Converter{parser: parser, variableIndex: variableIndex}, nil
}

// Convert parses ruleString and reduces it to a single StateVector, with
// every auxiliary variable introduced along the way eliminated again
// before returning.
func (c *Converter) Convert(ruleString string) (statevector.StateVector, error) {
	c.auxVarCounter = 0
	c.auxVarMap = map[string]int{}

	ast, err := c.parser.Parse(ruleString)
	if err != nil {
		return statevector.StateVector{}, err
	}

	var equalityASTs []ruleast.Node
	modified := c.replaceDuplicates(ast, map[string]struct{}{}, &equalityASTs)

	simpleASTs := c.flatten(modified)
	simpleASTs = append(simpleASTs, equalityASTs...)

	lookup := func(name string) (int, bool) {
		if idx, ok := c.variableIndex(name); ok {
			return idx, true
		}
		idx, ok := c.auxVarMap[name]
		return idx, ok
	}

	finalSV := statevector.Trivial()
	for i, simple := range simpleASTs {
		sv, err := c.visit(simple, lookup)
		if err != nil {
			return statevector.StateVector{}, err
		}
		if i == 0 {
			finalSV = sv
		} else {
			finalSV = finalSV.Product(sv)
		}
	}

	if len(c.auxVarMap) > 0 {
		auxIndices := make([]int, 0, len(c.auxVarMap))
		for _, idx := range c.auxVarMap {
			auxIndices = append(auxIndices, idx)
		}
		finalSV = finalSV.RemoveVariables(auxIndices).Simplify(0, true)
	}

	return finalSV, nil
}

// replaceDuplicates rebuilds ast, replacing every occurrence of a
// variable after its first with a fresh auxiliary tied to the original
// by an appended equality AST, so the returned tree mentions each
// variable exactly once.
func (c *Converter) replaceDuplicates(node ruleast.Node, seen map[string]struct{}, equalityASTs *[]ruleast.Node) ruleast.Node {
	switch n := node.(type) {
	case ruleast.Var:
		if _, ok := seen[n.Name]; !ok {
			seen[n.Name] = struct{}{}
			return n
		}
		c.auxVarCounter++
		dummyName := fmt.Sprintf("__aux_%d", c.auxVarCounter)
		c.auxVarMap[dummyName] = -c.auxVarCounter

		*equalityASTs = append(*equalityASTs, ruleast.Op{
			Operator: ruleast.EQ,
			Left:     ruleast.Var{Name: n.Name},
			Right:    ruleast.Var{Name: dummyName},
		})
		return ruleast.Var{Negated: n.Negated, Name: dummyName}

	case ruleast.Op:
		return ruleast.Op{
			Operator: n.Operator,
			Left:     c.replaceDuplicates(n.Left, seen, equalityASTs),
			Right:    c.replaceDuplicates(n.Right, seen, equalityASTs),
		}

	default:
		panic(fmt.Sprintf("ruleconverter: unexpected AST node type %T", node))
	}
}

// flatten decomposes ast into a list of simple ASTs: each either a lone
// var, a binary rule "x1 op x2", or a triplet rule "x1 = (x2 op x3)".
// An AST already in one of those shapes is returned unchanged.
func (c *Converter) flatten(ast ruleast.Node) []ruleast.Node {
	if v, ok := ast.(ruleast.Var); ok {
		return []ruleast.Node{v}
	}

	op := ast.(ruleast.Op)
	if isVar(op.Left) && isVar(op.Right) {
		return []ruleast.Node{op}
	}
	if op.Operator == ruleast.EQ {
		if isVar(op.Left) {
			if inner, ok := op.Right.(ruleast.Op); ok && isVar(inner.Left) && isVar(inner.Right) {
				return []ruleast.Node{op}
			}
		}
		if isVar(op.Right) {
			if inner, ok := op.Left.(ruleast.Op); ok && isVar(inner.Left) && isVar(inner.Right) {
				return []ruleast.Node{op}
			}
		}
	}

	var simpleASTs []ruleast.Node
	finalRule := c.flattenRecursive(ast, &simpleASTs, true)
	simpleASTs = append(simpleASTs, finalRule)
	return simpleASTs
}

func (c *Converter) flattenRecursive(node ruleast.Node, simpleASTs *[]ruleast.Node, isRoot bool) ruleast.Node {
	v, ok := node.(ruleast.Var)
	if ok {
		return v
	}

	op := node.(ruleast.Op)
	leftRepr := c.flattenRecursive(op.Left, simpleASTs, false)
	rightRepr := c.flattenRecursive(op.Right, simpleASTs, false)
	currentRule := ruleast.Op{Operator: op.Operator, Left: leftRepr, Right: rightRepr}

	if isRoot {
		return currentRule
	}

	c.auxVarCounter++
	auxName := fmt.Sprintf("__aux_%d", c.auxVarCounter)
	c.auxVarMap[auxName] = -c.auxVarCounter
	auxVar := ruleast.Var{Name: auxName}
	*simpleASTs = append(*simpleASTs, ruleast.Op{Operator: ruleast.EQ, Left: auxVar, Right: currentRule})

	return auxVar
}

func isVar(n ruleast.Node) bool {
	_, ok := n.(ruleast.Var)
	return ok
}

func (c *Converter) visit(node ruleast.Node, lookup func(string) (int, bool)) (statevector.StateVector, error) {
	switch n := node.(type) {
	case ruleast.Var:
		return visitVar(n, lookup)
	case ruleast.Op:
		return c.visitOp(n, lookup)
	default:
		return statevector.StateVector{}, ruleerrors.New("Convert", "unknown AST node type %T", node)
	}
}

func visitVar(n ruleast.Var, lookup func(string) (int, bool)) (statevector.StateVector, error) {
	idx, ok := lookup(n.Name)
	if !ok {
		return statevector.StateVector{}, ruleerrors.New("Convert", "variable %q is not defined", n.Name)
	}
	if n.Negated {
		return statevector.New(cube.New(nil, []int{idx})), nil
	}
	return statevector.New(cube.New([]int{idx}, nil)), nil
}

func (c *Converter) visitOp(n ruleast.Op, lookup func(string) (int, bool)) (statevector.StateVector, error) {
	leftVar, leftIsVar := n.Left.(ruleast.Var)
	rightVar, rightIsVar := n.Right.(ruleast.Var)

	if leftIsVar && rightIsVar {
		idx1, ok := lookup(leftVar.Name)
		if !ok {
			return statevector.StateVector{}, ruleerrors.New("Convert", "variable %q is not defined", leftVar.Name)
		}
		idx2, ok := lookup(rightVar.Name)
		if !ok {
			return statevector.StateVector{}, ruleerrors.New("Convert", "variable %q is not defined", rightVar.Name)
		}

		var negate []int
		if leftVar.Negated {
			negate = append(negate, idx1)
		}
		if rightVar.Negated {
			negate = append(negate, idx2)
		}

		sv, err := binaryStateVector(n.Operator, idx1, idx2)
		if err != nil {
			return statevector.StateVector{}, err
		}
		return sv.NegateVariables(negate), nil
	}

	if n.Operator == ruleast.EQ {
		triplet, single := n.Right, n.Left
		if _, ok := n.Right.(ruleast.Op); !ok {
			triplet, single = n.Left, n.Right
		}
		singleVar, singleIsVar := single.(ruleast.Var)
		tripletOp, tripletIsOp := triplet.(ruleast.Op)
		if singleIsVar && tripletIsOp {
			innerLeft, innerLeftIsVar := tripletOp.Left.(ruleast.Var)
			innerRight, innerRightIsVar := tripletOp.Right.(ruleast.Var)
			if innerLeftIsVar && innerRightIsVar {
				idx1, ok := lookup(singleVar.Name)
				if !ok {
					return statevector.StateVector{}, ruleerrors.New("Convert", "variable %q is not defined", singleVar.Name)
				}
				idx2, ok := lookup(innerLeft.Name)
				if !ok {
					return statevector.StateVector{}, ruleerrors.New("Convert", "variable %q is not defined", innerLeft.Name)
				}
				idx3, ok := lookup(innerRight.Name)
				if !ok {
					return statevector.StateVector{}, ruleerrors.New("Convert", "variable %q is not defined", innerRight.Name)
				}

				var negate []int
				if singleVar.Negated {
					negate = append(negate, idx1)
				}
				if innerLeft.Negated {
					negate = append(negate, idx2)
				}
				if innerRight.Negated {
					negate = append(negate, idx3)
				}

				sv, err := tripletStateVector(tripletOp.Operator, idx1, idx2, idx3)
				if err != nil {
					return statevector.StateVector{}, err
				}
				return sv.NegateVariables(negate), nil
			}
		}
	}

	return statevector.StateVector{}, ruleerrors.New("Convert", "unsupported AST structure for direct conversion")
}

// binaryStateVector builds the StateVector for "idx1 op idx2", unnegated.
func binaryStateVector(op ruleast.Operator, idx1, idx2 int) (statevector.StateVector, error) {
	switch op {
	case ruleast.AND:
		return statevector.New(cube.New([]int{idx1, idx2}, nil)), nil
	case ruleast.OR:
		return statevector.New(
			cube.New([]int{idx1}, nil),
			cube.New([]int{idx2}, []int{idx1}),
		), nil
	case ruleast.XOR:
		return statevector.New(
			cube.New([]int{idx1}, []int{idx2}),
			cube.New([]int{idx2}, []int{idx1}),
		), nil
	case ruleast.IMPLIES:
		return statevector.New(
			cube.New([]int{idx1, idx2}, nil),
			cube.New(nil, []int{idx1}),
		), nil
	case ruleast.REV_IMPLIES:
		return statevector.New(
			cube.New([]int{idx1}, nil),
			cube.New(nil, []int{idx1, idx2}),
		), nil
	case ruleast.EQ:
		return statevector.New(
			cube.New([]int{idx1, idx2}, nil),
			cube.New(nil, []int{idx1, idx2}),
		), nil
	default:
		return statevector.StateVector{}, ruleerrors.New("Convert", "binary operator %q not implemented", op)
	}
}

// tripletStateVector builds the StateVector for "idx1 = (idx2 op idx3)", unnegated.
func tripletStateVector(op ruleast.Operator, idx1, idx2, idx3 int) (statevector.StateVector, error) {
	switch op {
	case ruleast.AND:
		return statevector.New(
			cube.New([]int{idx1, idx2, idx3}, nil),
			cube.New(nil, []int{idx1, idx2}),
			cube.New([]int{idx2}, []int{idx1, idx3}),
		), nil
	case ruleast.OR:
		return statevector.New(
			cube.New([]int{idx1, idx2}, nil),
			cube.New([]int{idx1, idx3}, []int{idx2}),
			cube.New(nil, []int{idx1, idx2, idx3}),
		), nil
	case ruleast.XOR:
		return statevector.New(
			cube.New([]int{idx1, idx2}, []int{idx3}),
			cube.New([]int{idx1, idx3}, []int{idx2}),
			cube.New(nil, []int{idx1, idx2, idx3}),
			cube.New([]int{idx2, idx3}, []int{idx1}),
		), nil
	case ruleast.IMPLIES:
		return statevector.New(
			cube.New([]int{idx1, idx2, idx3}, nil),
			cube.New([]int{idx1}, []int{idx2}),
			cube.New([]int{idx2}, []int{idx1, idx3}),
		), nil
	case ruleast.REV_IMPLIES:
		return statevector.New(
			cube.New([]int{idx1, idx2}, nil),
			cube.New([]int{idx1}, []int{idx2, idx3}),
			cube.New([]int{idx3}, []int{idx1, idx2}),
		), nil
	case ruleast.EQ:
		return statevector.New(
			cube.New([]int{idx1, idx2, idx3}, nil),
			cube.New([]int{idx1}, []int{idx2, idx3}),
			cube.New([]int{idx2}, []int{idx1, idx3}),
			cube.New([]int{idx3}, []int{idx1, idx2}),
		), nil
	default:
		return statevector.StateVector{}, ruleerrors.New("Convert", "triplet operator %q not implemented", op)
	}
}
