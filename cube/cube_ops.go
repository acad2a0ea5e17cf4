package cube

// Product returns c * other: the conjunction of the two partial
// assignments. If either operand is null, or the combined ones/zeros
// sets intersect, the product is null.
func (c Cube) Product(other Cube) Cube {
	if c.isNull || other.isNull {
		return Null()
	}
	newOnes := c.ones.union(other.ones)
	newZeros := c.zeros.union(other.zeros)
	for i := range newOnes {
		if newZeros.has(i) {
			return Null()
		}
	}
	return Cube{ones: newOnes, zeros: newZeros}
}

// NegateVariables returns a new Cube with every index in indices swapped
// between ones and zeros. Indices not present in either set are
// untouched. The null cube negates to itself.
func (c Cube) NegateVariables(indices []int) Cube {
	if c.isNull {
		return Null()
	}
	toFlip := newIntSet(indices...)

	newOnes := make(intSet, len(c.ones))
	newZeros := make(intSet, len(c.zeros))
	for i := range c.ones {
		if toFlip.has(i) {
			newZeros[i] = struct{}{}
		} else {
			newOnes[i] = struct{}{}
		}
	}
	for i := range c.zeros {
		if toFlip.has(i) {
			newOnes[i] = struct{}{}
		} else {
			newZeros[i] = struct{}{}
		}
	}
	return Cube{ones: newOnes, zeros: newZeros}
}

// RemoveVariables returns a new Cube with every index in indices dropped
// from both ones and zeros, i.e. those positions become "don't care".
func (c Cube) RemoveVariables(indices []int) Cube {
	if c.isNull {
		return Null()
	}
	drop := newIntSet(indices...)

	newOnes := make(intSet, len(c.ones))
	for i := range c.ones {
		if !drop.has(i) {
			newOnes[i] = struct{}{}
		}
	}
	newZeros := make(intSet, len(c.zeros))
	for i := range c.zeros {
		if !drop.has(i) {
			newZeros[i] = struct{}{}
		}
	}
	return Cube{ones: newOnes, zeros: newZeros}
}

// Reduce attempts adjacency reduction between c and other. Two cubes are
// adjacent when they differ at exactly one index, fixed to 1 in one and
// 0 in the other, and agree everywhere else. Reduce returns the common
// remainder cube (with that one index dropped to "don't care") and true
// if they are adjacent, or the zero Cube and false otherwise.
func (c Cube) Reduce(other Cube) (Cube, bool) {
	if c.isNull || other.isNull {
		return Cube{}, false
	}

	onesDiffLen := len(c.ones) - len(other.ones)
	if onesDiffLen != 1 && onesDiffLen != -1 {
		return Cube{}, false
	}
	zerosDiffLen := len(c.zeros) - len(other.zeros)
	if onesDiffLen == 1 && zerosDiffLen != -1 {
		return Cube{}, false
	}
	if onesDiffLen == -1 && zerosDiffLen != 1 {
		return Cube{}, false
	}

	onesSym := symmetricDifference(c.ones, other.ones)
	if len(onesSym) != 1 {
		return Cube{}, false
	}
	zerosSym := symmetricDifference(c.zeros, other.zeros)
	if !setsEqual(onesSym, zerosSym) {
		return Cube{}, false
	}

	var idx int
	for i := range onesSym {
		idx = i
	}

	if c.ones.has(idx) {
		return Cube{ones: other.ones, zeros: c.zeros}, true
	}
	return Cube{ones: c.ones, zeros: other.zeros}, true
}

func symmetricDifference(a, b intSet) intSet {
	out := make(intSet)
	for i := range a {
		if !b.has(i) {
			out[i] = struct{}{}
		}
	}
	for i := range b {
		if !a.has(i) {
			out[i] = struct{}{}
		}
	}
	return out
}

func setsEqual(a, b intSet) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !b.has(i) {
			return false
		}
	}
	return true
}

// IsSuperset compares the generality of two cubes: it returns 1 if c is
// a superset of other (c is more general, or equal), -1 if other is a
// superset of c, and 0 if neither contains the other.
func (c Cube) IsSuperset(other Cube) int {
	if c.ones.isSubset(other.ones) && c.zeros.isSubset(other.zeros) {
		return 1
	}
	if other.ones.isSubset(c.ones) && other.zeros.isSubset(c.zeros) {
		return -1
	}
	return 0
}
