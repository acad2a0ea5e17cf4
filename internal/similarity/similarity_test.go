package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcUnionsIntersectionsBasic(t *testing.T) {
	pivotSets := [][]int{
		{1, 2, 3},
		{2, 3, 4},
		{5, 6},
	}
	unions, intersections := CalcUnionsIntersections(pivotSets)

	assert.Equal(t, 2, intersections[0][1])
	assert.Equal(t, 2, intersections[1][0])
	assert.Equal(t, 4, unions[0][1])

	assert.Equal(t, 0, intersections[0][2])
	assert.Equal(t, 5, unions[0][2])

	// diagonal is self-overlap: full intersection, union equals set size.
	assert.Equal(t, 3, intersections[0][0])
	assert.Equal(t, 3, unions[0][0])
}

func TestFindNextClusterReturnsAllWhenAtOrBelowMax(t *testing.T) {
	pivotSets := [][]int{{1, 2}, {3, 4}}
	unions, intersections := CalcUnionsIntersections(pivotSets)
	cluster := FindNextCluster(pivotSets, unions, intersections, 2)
	assert.ElementsMatch(t, []int{0, 1}, cluster)
}

func TestFindNextClusterPicksMostSimilarPair(t *testing.T) {
	pivotSets := [][]int{
		{1, 2, 3},    // 0: overlaps heavily with 1
		{1, 2, 3, 4}, // 1: overlaps heavily with 0
		{10, 11},     // 2: disjoint from everything
	}
	unions, intersections := CalcUnionsIntersections(pivotSets)
	cluster := FindNextCluster(pivotSets, unions, intersections, 2)
	assert.ElementsMatch(t, []int{0, 1}, cluster)
}

func TestFindNextClusterStopsAtZeroSimilarity(t *testing.T) {
	pivotSets := [][]int{
		{1, 2},
		{1, 2},
		{50},
		{51},
	}
	unions, intersections := CalcUnionsIntersections(pivotSets)
	cluster := FindNextCluster(pivotSets, unions, intersections, 3)
	// row 0 and row 1 are identical pivot sets (similarity 1); the
	// disjoint rows 2/3 score 0 against everything, so the cluster
	// should stop at size 2 rather than padding with zero-similarity
	// indices.
	assert.Len(t, cluster, 2)
	assert.Contains(t, cluster, 0)
	assert.Contains(t, cluster, 1)
}

func TestUpdatePsUnionsIntersectionsAfterMerge(t *testing.T) {
	pivotSets := [][]int{
		{1, 2, 3},
		{2, 3, 4},
		{5, 6},
	}
	unions, intersections := CalcUnionsIntersections(pivotSets)

	// simulate: sets 0 and 1 were multiplied into a new set {1,2,3,4},
	// removed from the list, and the merged result appended.
	merged := []int{1, 2, 3, 4}
	newPivotSets := [][]int{
		{5, 6},
		merged,
	}
	newUnions, newIntersections := UpdatePsUnionsIntersections(unions, intersections, []int{1, 0}, newPivotSets)

	assert.Equal(t, 0, newIntersections[0][1])
	assert.Equal(t, 6, newUnions[0][1])
	assert.Equal(t, 4, newIntersections[1][1])
	assert.Equal(t, 4, newUnions[1][1])
}
