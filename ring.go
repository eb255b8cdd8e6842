package polyalg

import (
	"github.com/jba/omap"
	"github.com/pkg/errors"
)

// A Ring carries a variable universe and, optionally, a registered set of
// polynomials. The variable universe is the set every polynomial's
// support is widened to before a multi-polynomial algorithm — S-polynomial,
// inter-reduction, Gröbner basis — runs.
type Ring[T Numeric[T]] struct {
	order       Order
	variables   *omap.MapFunc[string, struct{}]
	polynomials []*Polynomial[T]
}

// NewRingFromVariables returns a ring over the given order and variable
// names, with no registered polynomials.
func NewRingFromVariables[T Numeric[T]](order Order, names ...string) *Ring[T] {
	r := &Ring[T]{order: order, variables: omap.NewMapFunc[string, struct{}](stringCompare)}
	for _, n := range names {
		r.variables.Set(n, struct{}{})
	}
	return r
}

// NewRingFromPolynomials returns a ring whose variable universe is the
// union of every variable appearing in polys, and registers polys.
func NewRingFromPolynomials[T Numeric[T]](order Order, polys ...*Polynomial[T]) *Ring[T] {
	r := &Ring[T]{
		order:       order,
		variables:   omap.NewMapFunc[string, struct{}](stringCompare),
		polynomials: append([]*Polynomial[T]{}, polys...),
	}
	for _, p := range polys {
		for _, mono := range p.Monomials() {
			for name := range mono.Variables.All() {
				r.variables.Set(name, struct{}{})
			}
		}
	}
	return r
}

// Variables returns the ring's variable universe, sorted by name.
func (r *Ring[T]) Variables() []string {
	out := make([]string, 0, r.variables.Len())
	for name := range r.variables.All() {
		out = append(out, name)
	}
	return out
}

// universeMonomial returns the monomial carrying every ring variable at
// exponent 0, coefficient 1 — multiplying by it is a mathematical no-op
// that normalizes a polynomial's support representation.
func (r *Ring[T]) universeMonomial() *Monomial[T] {
	var z T
	zero := z.NewZero()
	vars := NewVariableMap[T]()
	for name := range r.variables.All() {
		vars.Set(name, zero)
	}
	return NewMonomial[T](r.order, Term[T]{Coefficient: z.NewOne(), Variables: vars})
}

// Configure widens the support of every polynomial in polys to r's
// variable universe.
func (r *Ring[T]) Configure(polys []*Polynomial[T]) []*Polynomial[T] {
	u := r.universeMonomial()
	out := make([]*Polynomial[T], len(polys))
	for i, p := range polys {
		out[i] = PolyMulMonomial(p, u)
	}
	return out
}

// SPoly computes the S-polynomial of f and g: with L = lcm(lt(f), lt(g)),
// m_f = L/lt(f), m_g = L/lt(g), returns f*m_f - g*m_g.
func SPoly[T Numeric[T]](f, g *Polynomial[T]) (*Polynomial[T], error) {
	flt, err := f.LeadingTerm()
	if err != nil {
		return nil, errors.Wrap(err, "s_poly: f")
	}
	glt, err := g.LeadingTerm()
	if err != nil {
		return nil, errors.Wrap(err, "s_poly: g")
	}
	l := LCM(flt, glt)
	mf, err := flt.Cofactor(l)
	if err != nil {
		return nil, errors.Wrap(err, "s_poly: lcm/lt(f)")
	}
	mg, err := glt.Cofactor(l)
	if err != nil {
		return nil, errors.Wrap(err, "s_poly: lcm/lt(g)")
	}
	return PolySub(PolyMulMonomial(f, mf), PolyMulMonomial(g, mg)), nil
}

// ReducedSet prunes F: for each f in F, if f divided by the rest of F
// leaves a zero remainder, f is removed. The result is inter-reduced.
func ReducedSet[T Numeric[T]](f []*Polynomial[T]) ([]*Polynomial[T], error) {
	out := append([]*Polynomial[T]{}, f...)
	i := 0
	for i < len(out) {
		rest := make([]*Polynomial[T], 0, len(out)-1)
		rest = append(rest, out[:i]...)
		rest = append(rest, out[i+1:]...)
		if len(rest) == 0 {
			i++
			continue
		}
		_, r, err := Divide(out[i], rest)
		if err != nil {
			return nil, err
		}
		if r.Zero() {
			out = append(out[:i], out[i+1:]...)
			continue
		}
		i++
	}
	return out, nil
}

// polySetEqual reports whether a and b contain the same polynomials,
// order-independent.
func polySetEqual[T Numeric[T]](a, b []*Polynomial[T]) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, pa := range a {
		found := false
		for j, pb := range b {
			if used[j] {
				continue
			}
			if pa.Equal(pb) {
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

// ReducedGrobnerBasis computes a reduced Gröbner basis of F by
// Buchberger's algorithm with online inter-reduction. For each ordered
// pair (i, j), i != j, it forms the S-polynomial, reduces it modulo the
// current basis, and — when the remainder is non-zero — inserts that
// remainder (the standard formulation; not the raw S-polynomial) before
// re-running ReducedSet and, if the set changed, restarting the scan.
//
// maxIter bounds the number of S-polynomial computations; when it is
// exhausted before the basis stabilizes, ReducedGrobnerBasis returns the
// current basis with complete = false. maxIter <= 0 means unbounded.
func ReducedGrobnerBasis[T Numeric[T]](f []*Polynomial[T], maxIter int) (basis []*Polynomial[T], complete bool, err error) {
	b := append([]*Polynomial[T]{}, f...)
	iter := 0

restart:
	for i := 0; i < len(b); i++ {
		for j := 0; j < len(b); j++ {
			if i == j {
				continue
			}
			iter++
			if maxIter > 0 && iter > maxIter {
				return b, false, nil
			}
			s, err := SPoly(b[i], b[j])
			if err != nil {
				return nil, false, err
			}
			_, r, err := Divide(s, b)
			if err != nil {
				return nil, false, err
			}
			if r.Zero() {
				continue
			}
			candidate := append(append([]*Polynomial[T]{}, b...), r)
			reduced, err := ReducedSet(candidate)
			if err != nil {
				return nil, false, err
			}
			if !polySetEqual(reduced, b) {
				b = reduced
				goto restart
			}
		}
	}
	return b, true, nil
}

// GCD computes the greatest common divisor of the single-variable
// polynomials a and b via the Euclidean algorithm (repeated division,
// remainder replacing the smaller operand). It fails with
// ErrNotUnivariate if either operand's support spans more than one
// variable — a naive Euclidean algorithm is not a correct GCD procedure
// for general multivariate polynomials.
func GCD[T Numeric[T]](a, b *Polynomial[T]) (*Polynomial[T], error) {
	if err := checkUnivariate(a); err != nil {
		return nil, err
	}
	if err := checkUnivariate(b); err != nil {
		return nil, err
	}
	x, y := a, b
	for !y.Zero() {
		_, r, err := DivideOne(x, y)
		if err != nil {
			return nil, err
		}
		x, y = y, r
	}
	return x, nil
}

func checkUnivariate[T Numeric[T]](p *Polynomial[T]) error {
	var z T
	zero := z.NewZero()
	names := map[string]bool{}
	for _, mono := range p.Monomials() {
		for name, exp := range mono.Variables.All() {
			if !exp.Equal(zero) {
				names[name] = true
			}
		}
	}
	if len(names) > 1 {
		return errors.Wrapf(ErrNotUnivariate, "polynomial uses variables %v", names)
	}
	return nil
}
