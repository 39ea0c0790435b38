package mlpoly

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/consensys/mlpoly/monomial"
)

// Term is a single monomial with its coefficient.
type Term[E any] struct {
	Key   monomial.Key
	Coeff E
}

// Summand is the decoded form of a term: a coefficient and the set of
// variable indices it multiplies.
type Summand[E any] struct {
	Coeff   E
	Indices []uint
}

// Polynomial is a sparse multilinear polynomial: a mapping from monomial
// key to coefficient, held as a slice of terms sorted by ascending key.
// Keys are unique. The zero value is the zero polynomial.
//
// A Polynomial may carry terms with zero coefficients; operations do not
// prune automatically (see Prune and Equal).
type Polynomial[E any] struct {
	terms []Term[E]
}

// Zero returns the zero polynomial.
func Zero[E any]() Polynomial[E] {
	return Polynomial[E]{}
}

// FromTerms builds a polynomial from already-encoded terms. When the same
// key occurs more than once the last entry wins.
func FromTerms[E any](terms []Term[E]) Polynomial[E] {
	var p Polynomial[E]
	p.terms = make([]Term[E], 0, len(terms))
	for _, t := range terms {
		p.replaceOrInsert(t)
	}
	return p
}

// FromSummands encodes each summand's index set and builds the
// polynomial; duplicate monomials follow the same last-write-wins policy
// as FromTerms.
func FromSummands[E any](summands []Summand[E]) Polynomial[E] {
	var p Polynomial[E]
	p.terms = make([]Term[E], 0, len(summands))
	for _, s := range summands {
		p.replaceOrInsert(Term[E]{Key: monomial.FromIndices(s.Indices...), Coeff: s.Coeff})
	}
	return p
}

// Summands decodes every term, in ascending key order.
func (p Polynomial[E]) Summands() []Summand[E] {
	summands := make([]Summand[E], len(p.terms))
	for i, t := range p.terms {
		summands[i] = Summand[E]{Coeff: t.Coeff, Indices: t.Key.Indices()}
	}
	return summands
}

// Terms returns a copy of the term slice, in ascending key order.
func (p Polynomial[E]) Terms() []Term[E] {
	return slices.Clone(p.terms)
}

// Len returns the number of stored terms, including any with zero
// coefficients.
func (p Polynomial[E]) Len() int {
	return len(p.terms)
}

// Coeff returns the coefficient stored for key k, if any.
func (p Polynomial[E]) Coeff(k monomial.Key) (E, bool) {
	i, found := p.find(k)
	if !found {
		var zero E
		return zero, false
	}
	return p.terms[i].Coeff, true
}

// Support returns the union of all term keys: the set of variables the
// polynomial depends on.
func (p Polynomial[E]) Support() monomial.Key {
	var s monomial.Key
	for _, t := range p.terms {
		s = s.Union(t.Key)
	}
	return s
}

// String renders the polynomial with terms in ascending key order joined
// by " + "; each term is its coefficient followed by the term's variables,
// e.g. "4 + 2x1 + 3x0x4". The zero polynomial renders to "0".
func (p Polynomial[E]) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range p.terms {
		if i > 0 {
			sb.WriteString(" + ")
		}
		fmt.Fprintf(&sb, "%v", t.Coeff)
		sb.WriteString(t.Key.String())
	}
	return sb.String()
}

// find locates k in the sorted term slice. If not found, returns false and
// the index where a term with key k would be inserted.
func (p Polynomial[E]) find(k monomial.Key) (int, bool) {
	return sort.Find(len(p.terms), func(i int) int {
		return k.Cmp(p.terms[i].Key)
	})
}

func (p *Polynomial[E]) replaceOrInsert(t Term[E]) {
	i, found := p.find(t.Key)
	if found {
		p.terms[i].Coeff = t.Coeff
		return
	}
	p.terms = slices.Insert(p.terms, i, t)
}
