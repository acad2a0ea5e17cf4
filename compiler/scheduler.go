// Package compiler turns a list of state vectors — the rules waiting to
// be compiled, plus the engine's previous valid set if it has one — into
// a single simplified state vector: the new valid set. It multiplies
// vectors together in an order chosen to keep intermediate cube counts
// small, rather than left-to-right.
package compiler

import (
	"sort"

	"github.com/dmitry-lesnik/vector-logic/internal/similarity"
	"github.com/dmitry-lesnik/vector-logic/statevector"
)

// ClusterSelector picks which of the remaining state vectors (by index
// into pivotSets/unionSizes/intersectionSizes) to multiply next. The
// default, DefaultClusterSelector, is similarity.FindNextCluster with a
// caller-chosen cluster size (canonically 2); a conforming alternative may use any strategy, since the scheduler's
// correctness only depends on eventually reducing the set to one vector,
// not on which pairs are chosen first — only the recorded intermediate
// sizes differ.
type ClusterSelector func(pivotSets [][]int, unionSizes, intersectionSizes [][]int) []int

// DefaultClusterSelector wraps similarity.FindNextCluster with the given
// cluster size; values below 2 are raised to the canonical size of 2.
func DefaultClusterSelector(maxClusterSize int) ClusterSelector {
	if maxClusterSize < 2 {
		maxClusterSize = 2
	}
	return func(pivotSets [][]int, unionSizes, intersectionSizes [][]int) []int {
		return similarity.FindNextCluster(pivotSets, unionSizes, intersectionSizes, maxClusterSize)
	}
}

// Result is the outcome of Compile: the new valid set and the sequence
// of intermediate cube-counts observed while multiplying toward it, one
// entry per multiplication step — a side-observable statistic for
// callers who want to watch the scheduler's working-set size.
type Result struct {
	Valid             statevector.StateVector
	IntermediateSizes []int
}

// Compile reduces vectors to a single state vector by repeatedly
// selecting a small cluster (via selector), multiplying it, simplifying
// with subsumption enabled, and folding the product back into the
// working set, until one vector remains. Trivial vectors are dropped up
// front (they are identities under product); a contradiction anywhere in
// the input, or produced by any intermediate product, short-circuits to
// an empty contradiction result.
func Compile(vectors []statevector.StateVector, selector ClusterSelector) Result {
	working := make([]statevector.StateVector, 0, len(vectors))
	for _, v := range vectors {
		if v.IsTrivial() && !v.IsContradiction() {
			continue
		}
		working = append(working, v)
	}

	if len(working) == 0 {
		return Result{Valid: statevector.Trivial()}
	}

	for _, v := range working {
		if v.IsContradiction() {
			return Result{Valid: statevector.Empty()}
		}
	}

	pivotSets := make([][]int, len(working))
	for i, v := range working {
		pivotSets[i] = v.PivotSet()
	}
	unionSizes, intersectionSizes := similarity.CalcUnionsIntersections(pivotSets)

	var intermediateSizes []int

	for len(working) > 1 {
		cluster := selector(pivotSets, unionSizes, intersectionSizes)

		product := working[cluster[0]]
		for _, idx := range cluster[1:] {
			product = product.Product(working[idx])
		}
		product = product.Simplify(0, true)
		intermediateSizes = append(intermediateSizes, product.Size())

		if product.IsContradiction() {
			return Result{Valid: statevector.Empty(), IntermediateSizes: intermediateSizes}
		}

		removeOrder := append([]int(nil), cluster...)
		sort.Sort(sort.Reverse(sort.IntSlice(removeOrder)))

		working = removeIndices(working, removeOrder)
		working = append(working, product)
		pivotSets = removeIndicesPivots(pivotSets, removeOrder)
		pivotSets = append(pivotSets, product.PivotSet())

		unionSizes, intersectionSizes = similarity.UpdatePsUnionsIntersections(
			unionSizes, intersectionSizes, removeOrder, pivotSets,
		)
	}

	return Result{Valid: working[0], IntermediateSizes: intermediateSizes}
}

func removeIndices(vectors []statevector.StateVector, descendingIndices []int) []statevector.StateVector {
	out := append([]statevector.StateVector(nil), vectors...)
	for _, idx := range descendingIndices {
		out = append(out[:idx], out[idx+1:]...)
	}
	return out
}

func removeIndicesPivots(pivotSets [][]int, descendingIndices []int) [][]int {
	out := append([][]int(nil), pivotSets...)
	for _, idx := range descendingIndices {
		out = append(out[:idx], out[idx+1:]...)
	}
	return out
}
