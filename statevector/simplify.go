package statevector

import "github.com/dmitry-lesnik/vector-logic/cube"

// Simplify canonicalizes sv's cube multiset:
//
//  1. Null cubes are dropped. If a trivial cube remains, the result is
//     the singleton trivial vector. If nothing remains, the result is
//     the contradiction (empty vector).
//  2. Cubes are deduplicated by structural equality.
//  3. Adjacency reduction runs to a fixed point (or until maxIter
//     iterations if maxIter > 0): any reducible pair is replaced by its
//     reduction, then the set is re-deduplicated, repeating as long as
//     reduction exposes new reducible pairs.
//  4. If reduceSubsumption is set, any cube subsumed by a more general
//     cube elsewhere in the set is dropped, repeated to a fixed point.
//
// Simplify is idempotent and order-independent up to the final
// canonical set; it never mutates sv.
func (sv StateVector) Simplify(maxIter int, reduceSubsumption bool) StateVector {
	cubes := make([]cube.Cube, 0, len(sv.cubes))
	for _, c := range sv.cubes {
		if !c.IsNull() {
			cubes = append(cubes, c)
		}
	}

	if containsTrivial(cubes) {
		return Trivial()
	}
	if len(cubes) == 0 {
		return Empty()
	}

	cubes = dedupe(cubes)

	for iter := 0; maxIter <= 0 || iter < maxIter; iter++ {
		i, j, reduced, ok := findReduciblePair(cubes)
		if !ok {
			break
		}
		cubes = replacePair(cubes, i, j, reduced)
		if containsTrivial(cubes) {
			return Trivial()
		}
		cubes = dedupe(cubes)
	}

	if reduceSubsumption {
		cubes = dropSubsumed(cubes)
	}

	return StateVector{cubes: cubes}
}

func containsTrivial(cubes []cube.Cube) bool {
	for _, c := range cubes {
		if c.IsTrivial() {
			return true
		}
	}
	return false
}

func dedupe(cubes []cube.Cube) []cube.Cube {
	out := make([]cube.Cube, 0, len(cubes))
	for _, c := range cubes {
		dup := false
		for _, existing := range out {
			if c.Equal(existing) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	return out
}

// findReduciblePair scans for the first adjacent pair (i, j) and returns
// their reduction.
func findReduciblePair(cubes []cube.Cube) (i, j int, reduced cube.Cube, ok bool) {
	for a := 0; a < len(cubes); a++ {
		for b := a + 1; b < len(cubes); b++ {
			if r, ok := cubes[a].Reduce(cubes[b]); ok {
				return a, b, r, true
			}
		}
	}
	return 0, 0, cube.Cube{}, false
}

func replacePair(cubes []cube.Cube, i, j int, reduced cube.Cube) []cube.Cube {
	out := make([]cube.Cube, 0, len(cubes)-1)
	for k, c := range cubes {
		if k == i || k == j {
			continue
		}
		out = append(out, c)
	}
	out = append(out, reduced)
	return out
}

// dropSubsumed removes any cube x for which some other cube y
// (y.IsSuperset(x) == 1) exists, applied repeatedly to a fixed point.
func dropSubsumed(cubes []cube.Cube) []cube.Cube {
	for {
		removed := -1
		for x := range cubes {
			for y := range cubes {
				if x == y {
					continue
				}
				if cubes[y].IsSuperset(cubes[x]) == 1 {
					removed = x
					break
				}
			}
			if removed >= 0 {
				break
			}
		}
		if removed < 0 {
			return cubes
		}
		out := make([]cube.Cube, 0, len(cubes)-1)
		for k, c := range cubes {
			if k != removed {
				out = append(out, c)
			}
		}
		cubes = out
	}
}
