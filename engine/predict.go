package engine

import (
	"fmt"
	"io"

	"github.com/dmitry-lesnik/vector-logic/compiler"
	ruleerrors "github.com/dmitry-lesnik/vector-logic/internal/errors"
	"github.com/dmitry-lesnik/vector-logic/statevector"
)

// PredictionResult wraps the state vector produced by a single Predict
// call, narrowed by the evidence passed in. Unlike the engine's own
// ValidSet, a PredictionResult is never mutated after it is returned.
type PredictionResult struct {
	engine *Engine
	vector statevector.StateVector
}

// IsContradiction reports whether the evidence is inconsistent with
// everything the engine knows.
func (r PredictionResult) IsContradiction() bool {
	return r.vector.IsContradiction()
}

// StateVector exposes the underlying narrowed state vector.
func (r PredictionResult) StateVector() statevector.StateVector {
	return r.vector
}

// GetValue reports the definite value (1, 0, or -1 for undetermined)
// the prediction assigns to the named variable.
func (r PredictionResult) GetValue(name string) (int, error) {
	idx, ok := r.engine.variableIndex(name)
	if !ok {
		return 0, ruleerrors.New("GetValue", "undefined variable %q", name)
	}
	return r.vector.VarValue(idx)
}

// Print renders the prediction's state vector the same way Engine.Print
// renders the valid set: "{ Contradiction }" or one cube per line.
func (r PredictionResult) Print(w io.Writer, maxIndex, indent int) {
	fmt.Fprintln(w, r.vector.ToString(maxIndex, indent))
}

// Predict narrows the engine's knowledge by evidence and returns the
// result without mutating the engine. If the engine is already
// compiled, this is a single product against the valid set; otherwise
// it runs the scheduler directly over the evidence plus every
// uncompiled rule added so far, leaving them uncompiled.
func (e *Engine) Predict(evidence map[string]bool) (PredictionResult, error) {
	evidenceSV, err := e.evidenceVector(evidence)
	if err != nil {
		return PredictionResult{}, err
	}

	if e.isCompiled {
		product := e.validSet.Product(evidenceSV).Simplify(e.opts.MaxSimplifyIterations, true)
		return PredictionResult{engine: e, vector: product}, nil
	}

	vectors := make([]statevector.StateVector, 0, len(e.stateVectors)+1)
	vectors = append(vectors, evidenceSV)
	vectors = append(vectors, e.stateVectors...)
	result := compiler.Compile(vectors, e.selector)
	return PredictionResult{engine: e, vector: result.Valid}, nil
}
