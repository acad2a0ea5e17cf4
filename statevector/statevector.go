// Package statevector implements StateVector: a canonical, simplified
// disjunction of cubes. Inference is multiplication of state vectors
// (conjunction of the disjunctions) followed by aggressive simplification.
package statevector

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitry-lesnik/vector-logic/cube"
)

// ErrEmptyStateVector is returned by VarValue when called on a
// contradiction (an empty StateVector has no satisfying assignment, so
// no variable has a definite value).
var ErrEmptyStateVector = errors.New("statevector: cannot determine variable value for an empty (contradiction) state vector")

// StateVector is an ordered sequence of cubes, treated as an unordered
// multiset for equality. It is a contradiction iff it contains no
// cubes; it is trivial iff it contains the always-true cube (which a
// simplified vector reduces to a lone occurrence of).
type StateVector struct {
	cubes []cube.Cube
}

// New builds a StateVector from the given cubes, unmodified. Use
// Simplify to canonicalize.
func New(cubes ...cube.Cube) StateVector {
	out := make([]cube.Cube, len(cubes))
	copy(out, cubes)
	return StateVector{cubes: out}
}

// Empty returns the contradiction: a StateVector with no cubes.
func Empty() StateVector {
	return StateVector{}
}

// Trivial returns a StateVector containing only the always-true cube.
func Trivial() StateVector {
	return StateVector{cubes: []cube.Cube{cube.Trivial()}}
}

// Cubes returns the underlying cube slice. Callers must not mutate it.
func (sv StateVector) Cubes() []cube.Cube {
	return sv.cubes
}

// Size returns the number of cubes in the vector.
func (sv StateVector) Size() int {
	return len(sv.cubes)
}

// IsContradiction reports whether sv has no cubes.
func (sv StateVector) IsContradiction() bool {
	return len(sv.cubes) == 0
}

// IsTrivial reports whether sv contains the always-true cube.
func (sv StateVector) IsTrivial() bool {
	for _, c := range sv.cubes {
		if c.IsTrivial() {
			return true
		}
	}
	return false
}

// Equal reports multiset equality: same cubes, irrespective of order or
// duplicate counts' positions (but duplicate counts themselves matter,
// matching the "unordered multiset" semantics of spec.md §3).
func (sv StateVector) Equal(other StateVector) bool {
	if len(sv.cubes) != len(other.cubes) {
		return false
	}
	used := make([]bool, len(other.cubes))
	for _, c := range sv.cubes {
		found := false
		for j, oc := range other.cubes {
			if used[j] {
				continue
			}
			if c.Equal(oc) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// VarValue reports the definite value of variable index across every
// non-trivial cube in sv: 1 if every such cube fixes it to 1, 0 if every
// such cube fixes it to 0, -1 otherwise (including when sv contains a
// trivial cube, which represents every assignment). It is an error to
// call VarValue on a contradiction.
func (sv StateVector) VarValue(index int) (int, error) {
	if sv.IsContradiction() {
		return 0, ErrEmptyStateVector
	}
	var sawOne, sawZero, sawOther bool
	for _, c := range sv.cubes {
		if c.IsTrivial() {
			sawOther = true
			continue
		}
		switch c.VarValue(index) {
		case 1:
			sawOne = true
		case 0:
			sawZero = true
		default:
			sawOther = true
		}
	}
	switch {
	case sawOther:
		return -1, nil
	case sawOne && !sawZero:
		return 1, nil
	case sawZero && !sawOne:
		return 0, nil
	default:
		return -1, nil
	}
}

// GetValue is a by-index synonym for VarValue, kept for parity with the
// public API surface alongside the name-based convenience on
// engine.PredictionResult.
func (sv StateVector) GetValue(index int) (int, error) {
	return sv.VarValue(index)
}

// NegateVariables lifts Cube.NegateVariables pointwise over every cube.
func (sv StateVector) NegateVariables(indices []int) StateVector {
	out := make([]cube.Cube, len(sv.cubes))
	for i, c := range sv.cubes {
		out[i] = c.NegateVariables(indices)
	}
	return StateVector{cubes: out}
}

// RemoveVariables lifts Cube.RemoveVariables pointwise over every cube.
// Combined with Simplify(reduceSubsumption=true) this is existential
// elimination of the given variables (spec.md §4.2).
func (sv StateVector) RemoveVariables(indices []int) StateVector {
	out := make([]cube.Cube, len(sv.cubes))
	for i, c := range sv.cubes {
		out[i] = c.RemoveVariables(indices)
	}
	return StateVector{cubes: out}
}

// ToString renders sv as "{ <cube-lines> }" (or "{ Contradiction }"),
// each cube line rendered via Cube.ToString(maxIndex) and indented four
// spaces past the opening brace. indent prepends that many spaces to
// every output line; maxIndex of 0 infers the largest pivot index
// across all cubes.
func (sv StateVector) ToString(maxIndex, indent int) string {
	prefix := strings.Repeat(" ", indent)
	if sv.IsContradiction() {
		return prefix + "{ Contradiction }"
	}

	effective := maxIndex
	if effective == 0 {
		for _, c := range sv.cubes {
			for _, i := range c.PivotSet() {
				if i > effective {
					effective = i
				}
			}
		}
	}

	lines := make([]string, 0, len(sv.cubes)+2)
	lines = append(lines, prefix+"{")
	for _, c := range sv.cubes {
		lines = append(lines, prefix+"    "+c.ToString(effective))
	}
	lines = append(lines, prefix+"}")
	return strings.Join(lines, "\n")
}

// PivotSet returns the sorted union of every cube's pivot set: the
// variables this vector actually constrains somewhere.
func (sv StateVector) PivotSet() []int {
	seen := make(map[int]struct{})
	for _, c := range sv.cubes {
		for _, i := range c.PivotSet() {
			seen[i] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

func (sv StateVector) String() string {
	return fmt.Sprintf("StateVector(%s)", sv.ToString(0, 0))
}
