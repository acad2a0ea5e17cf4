package statevector

import "github.com/dmitry-lesnik/vector-logic/cube"

// Product computes the Cartesian product {a*b | a in sv, b in other},
// drops null results, and simplifies (adjacency reduction and
// deduplication, without subsumption — callers that need existential
// elimination or a fully-reduced valid set call Simplify explicitly with
// reduceSubsumption=true). The product is commutative and associative up
// to canonical (simplified) form.
func (sv StateVector) Product(other StateVector) StateVector {
	products := make([]cube.Cube, 0, len(sv.cubes)*len(other.cubes))
	for _, a := range sv.cubes {
		for _, b := range other.cubes {
			p := a.Product(b)
			if !p.IsNull() {
				products = append(products, p)
			}
		}
	}
	return StateVector{cubes: products}.Simplify(0, false)
}
