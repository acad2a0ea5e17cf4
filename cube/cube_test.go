package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCanonicalizesOverlapToNull(t *testing.T) {
	c := New([]int{1, 2}, []int{2, 3})
	assert.True(t, c.IsNull())
	assert.Empty(t, c.Ones())
	assert.Empty(t, c.Zeros())
}

func TestTrivialCube(t *testing.T) {
	c := Trivial()
	assert.False(t, c.IsNull())
	assert.True(t, c.IsTrivial())
	assert.Equal(t, "---", c.ToString(0))
}

func TestVarValue(t *testing.T) {
	c := New([]int{1}, []int{2})
	assert.Equal(t, 1, c.VarValue(1))
	assert.Equal(t, 0, c.VarValue(2))
	assert.Equal(t, -1, c.VarValue(3))
}

func TestEqualityAllNullsEqual(t *testing.T) {
	a := Null()
	b := New([]int{1}, []int{1}) // canonicalizes to null
	assert.True(t, a.Equal(b))
}

func TestProductNullAbsorbing(t *testing.T) {
	a := New([]int{1}, nil)
	assert.True(t, a.Product(Null()).IsNull())
	assert.True(t, Null().Product(a).IsNull())
}

func TestProductTrivialNeutral(t *testing.T) {
	a := New([]int{1}, []int{2})
	assert.True(t, a.Product(Trivial()).Equal(a))
	assert.True(t, Trivial().Product(a).Equal(a))
}

func TestProductIdempotent(t *testing.T) {
	a := New([]int{1}, []int{2})
	assert.True(t, a.Product(a).Equal(a))
}

func TestProductCommutative(t *testing.T) {
	a := New([]int{1}, []int{2})
	b := New([]int{3}, []int{4})
	assert.True(t, a.Product(b).Equal(b.Product(a)))
}

func TestProductConflict(t *testing.T) {
	a := New([]int{1}, nil)
	b := New(nil, []int{1})
	assert.True(t, a.Product(b).IsNull())
}

func TestNegateVariablesRoundTrips(t *testing.T) {
	c := New([]int{1, 2}, []int{3, 4})
	negated := c.NegateVariables([]int{1, 3, 5})
	expected := New([]int{2, 3}, []int{1, 4})
	assert.True(t, negated.Equal(expected))

	back := negated.NegateVariables([]int{1, 3, 5})
	assert.True(t, back.Equal(c))
}

func TestNegateVariablesNullStaysNull(t *testing.T) {
	assert.True(t, Null().NegateVariables([]int{1}).IsNull())
}

func TestRemoveVariablesIdempotent(t *testing.T) {
	c := New([]int{1, 2}, []int{3, 4})
	once := c.RemoveVariables([]int{1, 3})
	twice := once.RemoveVariables([]int{1, 3})
	assert.True(t, once.Equal(twice))

	expected := New([]int{2}, []int{4})
	assert.True(t, once.Equal(expected))
}

func TestReduceAdjacentPair(t *testing.T) {
	a := New([]int{1, 2}, nil)
	b := New([]int{1}, []int{2})
	reduced, ok := a.Reduce(b)
	assert.True(t, ok)
	assert.True(t, reduced.Equal(New([]int{1}, nil)))
}

func TestReduceNonAdjacent(t *testing.T) {
	a := New([]int{1}, nil)
	b := New([]int{2}, nil)
	_, ok := a.Reduce(b)
	assert.False(t, ok)
}

func TestIsSupersetReflexiveAndAntisymmetric(t *testing.T) {
	a := New([]int{1}, []int{2})
	b := New([]int{1, 3}, []int{2})

	assert.Equal(t, 1, a.IsSuperset(a))
	assert.Equal(t, 1, a.IsSuperset(b))  // a is more general than b
	assert.Equal(t, -1, b.IsSuperset(a)) // reverse holds
}

func TestIsSupersetUnrelated(t *testing.T) {
	a := New([]int{1}, nil)
	b := New([]int{2}, nil)
	assert.Equal(t, 0, a.IsSuperset(b))
}

func TestToStringPaddingAndNegativeIndices(t *testing.T) {
	c := New([]int{1, -1}, []int{3})
	// index 1 is set, index 2 is don't care, index 3 is zero, the
	// auxiliary index -1 is appended as a literal marker.
	assert.Equal(t, "1 - 0 *", c.ToString(3))
}

func TestToStringNull(t *testing.T) {
	assert.Equal(t, "null", Null().ToString(0))
}

func TestLessOrdersNullsFirst(t *testing.T) {
	assert.True(t, Null().Less(New([]int{1}, nil)))
	assert.False(t, New([]int{1}, nil).Less(Null()))
}
