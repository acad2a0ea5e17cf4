package engine

import (
	"github.com/dmitry-lesnik/vector-logic/compiler"
	"github.com/dmitry-lesnik/vector-logic/cube"
	ruleerrors "github.com/dmitry-lesnik/vector-logic/internal/errors"
	"github.com/dmitry-lesnik/vector-logic/statevector"
)

func evidenceStateVector(ones, zeros []int) statevector.StateVector {
	return statevector.New(cube.New(ones, zeros))
}

// Compile folds every uncompiled rule (plus evidence and custom vectors
// added since the last Compile) into the valid set, multiplying against
// the prior valid set if one already exists. Compiling twice is
// cumulative: the second call only multiplies in what was added since
// the first.
func (e *Engine) Compile() error {
	vectors := make([]statevector.StateVector, 0, len(e.stateVectors)+1)
	if e.hasValidSet {
		vectors = append(vectors, e.validSet)
	}
	vectors = append(vectors, e.stateVectors...)

	result := compiler.Compile(vectors, e.selector)

	e.validSet = result.Valid
	e.hasValidSet = true
	e.intermediateSizes = result.IntermediateSizes
	e.compiledRules = append(e.compiledRules, e.uncompiledRules...)
	e.uncompiledRules = nil
	e.stateVectors = nil
	e.isCompiled = true
	return nil
}

// GetVariableValue reports the definite value (1, 0, or -1 for
// undetermined) that the current valid set assigns to name. It is a
// usage error to call this before the first Compile.
func (e *Engine) GetVariableValue(name string) (int, error) {
	if !e.hasValidSet {
		return 0, ruleerrors.New("GetVariableValue", "engine has not been compiled yet")
	}
	idx, ok := e.variableIndex(name)
	if !ok {
		return 0, ruleerrors.New("GetVariableValue", "undefined variable %q", name)
	}
	return e.validSet.VarValue(idx)
}
