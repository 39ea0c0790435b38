package mlpoly

import (
	"errors"
	"fmt"
	"slices"

	"github.com/consensys/mlpoly/monomial"
	"github.com/consensys/mlpoly/ring"
)

// ErrOverlappingSupport is returned by MulDisjointChecked when the two
// operands share at least one variable.
var ErrOverlappingSupport = errors.New("mlpoly: overlapping variable supports")

// Scale multiplies every coefficient of p by a. The result has the same
// key set as p; coefficients that become zero are not pruned.
func Scale[E any](rg ring.Ring[E], p Polynomial[E], a E) Polynomial[E] {
	terms := make([]Term[E], len(p.terms))
	for i, t := range p.terms {
		terms[i] = Term[E]{Key: t.Key, Coeff: rg.Mul(t.Coeff, a)}
	}
	return Polynomial[E]{terms: terms}
}

// Add merges q into a copy of p by key: coefficients of shared keys are
// added, all other terms are carried through. The cost is dominated by the
// number of terms in q, so pass the smaller operand second; the operation
// is commutative regardless.
func Add[E any](rg ring.Ring[E], p, q Polynomial[E]) Polynomial[E] {
	res := Polynomial[E]{terms: slices.Clone(p.terms)}
	for _, t := range q.terms {
		i, found := res.find(t.Key)
		if found {
			res.terms[i].Coeff = rg.Add(res.terms[i].Coeff, t.Coeff)
			continue
		}
		res.terms = slices.Insert(res.terms, i, t)
	}
	return res
}

// MulDisjoint multiplies two polynomials with disjoint variable supports:
// for every pair of terms the product term has the union of the two keys
// and the product of the two coefficients. Cost is O(len(p) * len(q)).
//
// Callers must ensure no variable appears in both operands. When supports
// overlap the union of two keys is not the product monomial (the true
// product leaves the multilinear representation), and colliding product
// keys silently overwrite earlier ones. Use MulDisjointChecked to detect
// that case.
func MulDisjoint[E any](rg ring.Ring[E], p, q Polynomial[E]) Polynomial[E] {
	var res Polynomial[E]
	res.terms = make([]Term[E], 0, len(p.terms)*len(q.terms))
	for _, tp := range p.terms {
		for _, tq := range q.terms {
			res.replaceOrInsert(Term[E]{
				Key:   tp.Key.Union(tq.Key),
				Coeff: rg.Mul(tp.Coeff, tq.Coeff),
			})
		}
	}
	return res
}

// MulDisjointChecked is MulDisjoint with the disjointness precondition
// enforced: it returns ErrOverlappingSupport (naming the shared variables)
// when the operand supports intersect.
func MulDisjointChecked[E any](rg ring.Ring[E], p, q Polynomial[E]) (Polynomial[E], error) {
	ps, qs := p.Support(), q.Support()
	if ps.Overlaps(qs) {
		shared := monomial.FromBitSet(ps.BitSet().Intersection(qs.BitSet()))
		return Polynomial[E]{}, fmt.Errorf("%w: %s", ErrOverlappingSupport, shared)
	}
	return MulDisjoint(rg, p, q), nil
}

// Prune returns a copy of p without zero-coefficient terms, using the
// ring's zero-equality test. The result is the canonical representation.
func Prune[E any](rg ring.Ring[E], p Polynomial[E]) Polynomial[E] {
	terms := make([]Term[E], 0, len(p.terms))
	for _, t := range p.terms {
		if !rg.IsZero(t.Coeff) {
			terms = append(terms, t)
		}
	}
	return Polynomial[E]{terms: terms}
}

// Equal compares the pruned forms of p and q key-for-key and
// coefficient-for-coefficient, so explicitly stored zero terms never
// affect equality.
func Equal[E any](rg ring.Ring[E], p, q Polynomial[E]) bool {
	pp, qq := Prune(rg, p), Prune(rg, q)
	if len(pp.terms) != len(qq.terms) {
		return false
	}
	for i := range pp.terms {
		if !pp.terms[i].Key.Equal(qq.terms[i].Key) {
			return false
		}
		if !rg.Equal(pp.terms[i].Coeff, qq.terms[i].Coeff) {
			return false
		}
	}
	return true
}
