package engine

import (
	"fmt"
	"sort"

	ruleerrors "github.com/dmitry-lesnik/vector-logic/internal/errors"
	"github.com/dmitry-lesnik/vector-logic/statevector"
)

// AddRule parses and converts rule into a state vector and appends it to
// the uncompiled set. It does not affect ValidSet/IsCompiled until the
// next Compile.
func (e *Engine) AddRule(rule string) error {
	sv, err := e.converter.Convert(rule)
	if err != nil {
		return err
	}
	e.uncompiledRules = append(e.uncompiledRules, rule)
	e.stateVectors = append(e.stateVectors, sv)
	e.isCompiled = false
	return nil
}

// AddEvidence fixes the named variables to the given Boolean values and
// appends the resulting cube as an uncompiled rule, labeled the same way
// Print renders it: "evidence: {...}".
func (e *Engine) AddEvidence(evidence map[string]bool) error {
	sv, err := e.evidenceVector(evidence)
	if err != nil {
		return err
	}
	e.uncompiledRules = append(e.uncompiledRules, fmt.Sprintf("evidence: %s", formatEvidence(evidence)))
	e.stateVectors = append(e.stateVectors, sv)
	e.isCompiled = false
	return nil
}

// AddStateVector appends a caller-built state vector directly to the
// uncompiled set, labeled "custom state vector".
func (e *Engine) AddStateVector(sv statevector.StateVector) {
	e.uncompiledRules = append(e.uncompiledRules, "custom state vector")
	e.stateVectors = append(e.stateVectors, sv)
	e.isCompiled = false
}

func (e *Engine) evidenceVector(evidence map[string]bool) (statevector.StateVector, error) {
	var ones, zeros []int
	for name, value := range evidence {
		idx, ok := e.variableIndex(name)
		if !ok {
			return statevector.StateVector{}, ruleerrors.New("AddEvidence", "undefined variable %q", name)
		}
		if value {
			ones = append(ones, idx)
		} else {
			zeros = append(zeros, idx)
		}
	}
	return evidenceStateVector(ones, zeros), nil
}

func formatEvidence(evidence map[string]bool) string {
	names := make([]string, 0, len(evidence))
	for name := range evidence {
		names = append(names, name)
	}
	sort.Strings(names)
	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, fmt.Sprintf("%s: %t", name, evidence[name]))
	}
	out := "{"
	for i, p := range pairs {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out + "}"
}
