// Package similarity computes pivot-set overlap statistics used by the
// compiler to pick which state vectors to multiply next: union and
// intersection sizes between every pair of pivot sets, and a
// Jaccard-greedy heuristic that clusters the most overlapping pair (plus
// whatever else still overlaps it) into the next multiplication group.
package similarity

import "sort"

// CalcUnionsIntersections returns, for a list of pivot sets (1-based
// variable indices), the square matrices of pairwise union and
// intersection sizes: unionSizes[i][j] = |pivotSets[i] ∪ pivotSets[j]|,
// intersectionSizes[i][j] = |pivotSets[i] ∩ pivotSets[j]|.
func CalcUnionsIntersections(pivotSets [][]int) (unionSizes, intersectionSizes [][]int) {
	n := len(pivotSets)
	sets := make([]map[int]struct{}, n)
	for i, ps := range pivotSets {
		s := make(map[int]struct{}, len(ps))
		for _, v := range ps {
			s[v] = struct{}{}
		}
		sets[i] = s
	}

	unionSizes = newMatrix(n)
	intersectionSizes = newMatrix(n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			inter := 0
			for v := range sets[i] {
				if _, ok := sets[j][v]; ok {
					inter++
				}
			}
			uni := len(sets[i]) + len(sets[j]) - inter
			unionSizes[i][j], unionSizes[j][i] = uni, uni
			intersectionSizes[i][j], intersectionSizes[j][i] = inter, inter
		}
	}
	return unionSizes, intersectionSizes
}

// UpdatePsUnionsIntersections adjusts the union/intersection matrices
// after indicesToRemove have been dropped from pivotSets and a single
// new pivot set has been appended at the end. indicesToRemove are
// applied in the order given, against the matrix as it stands at each
// step (matching the deletion order the caller already used when it
// removed the corresponding state vectors).
func UpdatePsUnionsIntersections(
	unionSizes, intersectionSizes [][]int,
	indicesToRemove []int,
	pivotSets [][]int,
) ([][]int, [][]int) {
	for _, i := range indicesToRemove {
		unionSizes = deleteRowCol(unionSizes, i)
		intersectionSizes = deleteRowCol(intersectionSizes, i)
	}

	n := len(pivotSets)
	newUnion := newMatrix(n)
	newIntersection := newMatrix(n)
	for i := 0; i < n-1; i++ {
		copy(newUnion[i][:n-1], unionSizes[i])
		copy(newIntersection[i][:n-1], intersectionSizes[i])
	}

	last := pivotSets[n-1]
	lastSet := make(map[int]struct{}, len(last))
	for _, v := range last {
		lastSet[v] = struct{}{}
	}
	for k := 0; k < n-1; k++ {
		inter := 0
		ks := make(map[int]struct{}, len(pivotSets[k]))
		for _, v := range pivotSets[k] {
			ks[v] = struct{}{}
			if _, ok := lastSet[v]; ok {
				inter++
			}
		}
		uni := len(ks) + len(lastSet) - inter
		newUnion[k][n-1], newUnion[n-1][k] = uni, uni
		newIntersection[k][n-1], newIntersection[n-1][k] = inter, inter
	}
	newUnion[n-1][n-1] = len(lastSet)
	newIntersection[n-1][n-1] = len(lastSet)

	return newUnion, newIntersection
}

// FindNextCluster picks which pivot sets to multiply next: the row with
// the highest squared Jaccard similarity (intersection/union of pivot
// sets) against any other row, plus up to maxClusterSize-1 partners,
// most-similar first. It stops early at a zero-similarity partner once
// at least one partner has been taken, so the cluster always holds at
// least two sets. If there are maxClusterSize or fewer pivot sets left,
// all of them are returned.
func FindNextCluster(pivotSets [][]int, unionSizes, intersectionSizes [][]int, maxClusterSize int) []int {
	n := len(pivotSets)
	if n <= maxClusterSize {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return all
	}

	scores := make([][]float64, n)
	for i := 0; i < n; i++ {
		scores[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j || unionSizes[i][j] == 0 {
				continue
			}
			scores[i][j] = float64(intersectionSizes[i][j]) / float64(unionSizes[i][j])
		}
	}

	bestRow := 0
	bestRowScore := -1.0
	for i := 0; i < n; i++ {
		rowMax := 0.0
		for j := 0; j < n; j++ {
			if sq := scores[i][j] * scores[i][j]; sq > rowMax {
				rowMax = sq
			}
		}
		if rowMax > bestRowScore {
			bestRowScore = rowMax
			bestRow = i
		}
	}

	type candidate struct {
		idx   int
		score float64
	}
	candidates := make([]candidate, 0, n-1)
	for j := 0; j < n; j++ {
		if j == bestRow {
			continue
		}
		candidates = append(candidates, candidate{j, scores[bestRow][j]})
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})

	cluster := []int{bestRow}
	for _, c := range candidates {
		if c.score == 0 && len(cluster) > 1 {
			break
		}
		cluster = append(cluster, c.idx)
		if len(cluster) == maxClusterSize {
			break
		}
	}
	return cluster
}

func newMatrix(n int) [][]int {
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	return m
}

func deleteRowCol(m [][]int, idx int) [][]int {
	out := make([][]int, 0, len(m)-1)
	for i, row := range m {
		if i == idx {
			continue
		}
		newRow := make([]int, 0, len(row)-1)
		for j, v := range row {
			if j == idx {
				continue
			}
			newRow = append(newRow, v)
		}
		out = append(out, newRow)
	}
	return out
}
