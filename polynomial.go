package polyalg

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/jba/omap"
	"github.com/pkg/errors"
)

// monomialKey returns the canonical printed form of a variable support
// only (no coefficient, and no zero-exponent variables) — the key a
// Polynomial stores its monomials under, so that terms with the same
// support but different coefficients are the same key and merge on
// insertion.
func monomialKey[T Numeric[T]](vars VariableMap[T]) string {
	if vars == nil || vars.Len() == 0 {
		return "1"
	}
	var b strings.Builder
	first := true
	for name, exp := range vars.All() {
		if exp.Equal(exp.NewZero()) {
			continue
		}
		if !first {
			b.WriteString("*")
		}
		first = false
		b.WriteString(name)
		one := exp.NewOne()
		if !exp.Equal(one) {
			fmt.Fprintf(&b, "^%s", exp.String())
		}
	}
	if first {
		return "1"
	}
	return b.String()
}

// A Polynomial is an ordered collection of monomials, keyed by their
// canonical variable-support string, which guarantees that like terms
// merge on insertion. All stored monomials share the polynomial's order
// tag.
type Polynomial[T Numeric[T]] struct {
	ord Order
	m   *omap.MapFunc[string, *Monomial[T]]

	dirty  bool
	sorted []*Monomial[T]
}

// NewPolynomial returns a new polynomial under the given order, containing
// the given monomials (like terms merge, coefficients add).
func NewPolynomial[T Numeric[T]](order Order, monomials ...*Monomial[T]) *Polynomial[T] {
	p := &Polynomial[T]{
		ord: order,
		m:   omap.NewMapFunc[string, *Monomial[T]](stringCompare),
	}
	for _, mono := range monomials {
		p.addTerm(1, mono)
	}
	return p
}

// Order returns the monomial order employed by p.
func (p *Polynomial[T]) Order() Order { return p.ord }

// Len reports the number of terms in p.
func (p *Polynomial[T]) Len() int { return p.m.Len() }

// Monomials iterates p's terms in canonical-key (stability) order.
func (p *Polynomial[T]) Monomials() iter.Seq2[string, *Monomial[T]] {
	return p.m.All()
}

func (p *Polynomial[T]) addTerm(sign int, mono *Monomial[T]) {
	key := monomialKey(mono.Variables)
	var z T
	existing := z.NewZero()
	if cur, ok := p.m.Get(key); ok {
		existing = cur.Coefficient
	}
	contrib := mono.Coefficient
	if sign < 0 {
		neg := z.NewZero()
		contrib = neg.Sub(neg, contrib)
	}
	sum := z.NewZero()
	sum = sum.Add(existing, contrib)
	if sum.Equal(z.NewZero()) {
		p.m.Delete(key)
	} else {
		nm := &Monomial[T]{Term: Term[T]{Coefficient: sum, Variables: cloneVars(mono.Variables)}, Order: p.ord}
		nm.refresh()
		p.m.Set(key, nm)
	}
	p.dirty = true
}

// clone returns a deep copy of p.
func (p *Polynomial[T]) clone() *Polynomial[T] {
	out := NewPolynomial[T](p.ord)
	for _, mono := range p.m.All() {
		out.addTerm(1, mono)
	}
	return out
}

// order re-sorts p's terms under its order tag, greatest first, if dirty.
func (p *Polynomial[T]) order() {
	if !p.dirty {
		return
	}
	p.sorted = p.sorted[:0]
	for _, mono := range p.m.All() {
		p.sorted = append(p.sorted, mono)
	}
	slices.SortFunc(p.sorted, func(a, b *Monomial[T]) int {
		c, err := a.Compare(b)
		if err != nil {
			return 0
		}
		return -c
	})
	p.dirty = false
}

// LeadingTerm returns the greatest monomial under p's order, re-sorting
// first if needed. It fails with ErrEmptyPolynomial if p has no terms.
func (p *Polynomial[T]) LeadingTerm() (*Monomial[T], error) {
	if p.Len() == 0 {
		return nil, ErrEmptyPolynomial
	}
	p.order()
	return p.sorted[0], nil
}

// LeadingCoefficient returns the coefficient of the leading term.
func (p *Polynomial[T]) LeadingCoefficient() (T, error) {
	lt, err := p.LeadingTerm()
	if err != nil {
		var z T
		return z.NewZero(), err
	}
	return lt.Coefficient, nil
}

// RemoveZero evicts every monomial whose Zero() holds (Zero also strips
// the monomial's zero-exponent variables, which its key already ignores).
func (p *Polynomial[T]) RemoveZero() {
	type rekey struct {
		old, new string
		mono     *Monomial[T]
	}
	var drop []string
	var moved []rekey
	for key, mono := range p.m.All() {
		if mono.Zero() {
			drop = append(drop, key)
			continue
		}
		if nk := monomialKey(mono.Variables); nk != key {
			moved = append(moved, rekey{old: key, new: nk, mono: mono})
		}
	}
	for _, key := range drop {
		p.m.Delete(key)
	}
	for _, r := range moved {
		p.m.Delete(r.old)
		p.m.Set(r.new, r.mono)
	}
	p.dirty = true
}

// Zero reports whether, after RemoveZero, p has no terms.
func (p *Polynomial[T]) Zero() bool {
	p.RemoveZero()
	return p.Len() == 0
}

// Equal reports whether p and y have the same terms (same keys, same
// coefficients).
func (p *Polynomial[T]) Equal(y *Polynomial[T]) bool {
	if p.m.Len() != y.m.Len() {
		return false
	}
	for key, xm := range p.m.All() {
		ym, ok := y.m.Get(key)
		if !ok || !xm.Coefficient.Equal(ym.Coefficient) {
			return false
		}
	}
	return true
}

// String returns the string representation of p, printing terms greatest
// first under p's order.
func (p *Polynomial[T]) String() string {
	if p.Len() == 0 {
		return "0"
	}
	p.order()
	var b strings.Builder
	for i, mono := range p.sorted {
		s := mono.Coefficient.String()
		vs := variablesString(mono.Variables)
		hasVars := vs != ""
		if len(s) == 0 || s[0] != '-' {
			s = "+" + s
		}
		switch {
		case i == 0 && s == "+1" && hasVars:
			s = ""
		case i == 0 && s[0] == '+':
			s = s[1:]
		case s == "+1" && hasVars:
			s = "+"
		case s == "-1" && hasVars:
			s = "-"
		}
		b.WriteString(s)
		b.WriteString(vs)
	}
	return b.String()
}

func variablesString[T Numeric[T]](vars VariableMap[T]) string {
	var b strings.Builder
	if vars == nil {
		return ""
	}
	for name, exp := range vars.All() {
		if exp.Equal(exp.NewZero()) {
			continue
		}
		b.WriteString(name)
		one := exp.NewOne()
		if !exp.Equal(one) {
			fmt.Fprintf(&b, "^%s", exp.String())
		}
	}
	return b.String()
}

// PolyAdd returns x+y: y's monomials folded into a copy of x.
func PolyAdd[T Numeric[T]](x, y *Polynomial[T]) *Polynomial[T] {
	out := x.clone()
	for _, mono := range y.m.All() {
		out.addTerm(1, mono)
	}
	return out
}

// PolySub returns x-y.
func PolySub[T Numeric[T]](x, y *Polynomial[T]) *Polynomial[T] {
	out := x.clone()
	for _, mono := range y.m.All() {
		out.addTerm(-1, mono)
	}
	return out
}

// PolyAddMonomial returns x+mono: merged into the common term if present,
// else inserted.
func PolyAddMonomial[T Numeric[T]](x *Polynomial[T], mono *Monomial[T]) *Polynomial[T] {
	out := x.clone()
	out.addTerm(1, mono)
	return out
}

// PolySubMonomial returns x-mono.
func PolySubMonomial[T Numeric[T]](x *Polynomial[T], mono *Monomial[T]) *Polynomial[T] {
	out := x.clone()
	out.addTerm(-1, mono)
	return out
}

// PolyMulMonomial returns x*mono: every monomial of x multiplied by mono.
func PolyMulMonomial[T Numeric[T]](x *Polynomial[T], mono *Monomial[T]) *Polynomial[T] {
	out := NewPolynomial[T](x.ord)
	for _, xm := range x.m.All() {
		out.addTerm(1, MulMonomial(xm, mono))
	}
	return out
}

// PolyDivMonomial returns x/mono: every monomial of x divided by mono.
func PolyDivMonomial[T Numeric[T]](x *Polynomial[T], mono *Monomial[T]) *Polynomial[T] {
	out := NewPolynomial[T](x.ord)
	for _, xm := range x.m.All() {
		out.addTerm(1, DivMonomial(xm, mono))
	}
	return out
}

// PolyMul returns x*y: distributed pairwise across every monomial of each.
func PolyMul[T Numeric[T]](x, y *Polynomial[T]) *Polynomial[T] {
	out := NewPolynomial[T](x.ord)
	for _, xm := range x.m.All() {
		for _, ym := range y.m.All() {
			out.addTerm(1, MulMonomial(xm, ym))
		}
	}
	return out
}

// Divide divides the polynomial p by the ordered list of divisors g, and
// returns the per-divisor quotient alongside the remainder.
//
// An index i walks the divisor list. While p is not (numerically) zero:
// dividing the leading term of p by the leading term of g[i] via Cofactor
// either succeeds with a monomial m — in which case p -= g[i]*m, q[i] +=
// m, and i resets to 0 — or fails with ErrNotDivisible, in which case i
// advances. Once i exhausts the list, the leading term of p moves into
// the remainder and i resets. The loop terminates because every step
// strictly lowers the leading term of p under g's order.
func Divide[T Numeric[T]](p *Polynomial[T], g []*Polynomial[T]) (quotient []*Polynomial[T], remainder *Polynomial[T], err error) {
	if len(g) == 0 {
		return nil, nil, errors.New("polyalg: divide requires at least one divisor")
	}
	work := p.clone()
	remainder = NewPolynomial[T](work.ord)
	quotient = make([]*Polynomial[T], len(g))
	for k := range quotient {
		quotient[k] = NewPolynomial[T](work.ord)
	}

	i := 0
	for !work.Zero() {
		lt, err := work.LeadingTerm()
		if err != nil {
			return nil, nil, err
		}
		dlt, err := g[i].LeadingTerm()
		if err != nil {
			return nil, nil, errors.Wrapf(err, "divisor %d", i)
		}
		m, cerr := dlt.Cofactor(lt)
		if cerr == nil {
			work = PolySub(work, PolyMulMonomial(g[i], m))
			quotient[i] = PolyAddMonomial(quotient[i], m)
			i = 0
			continue
		}
		if !errors.Is(cerr, ErrNotDivisible) {
			return nil, nil, cerr
		}
		i++
		if i >= len(g) {
			remainder = PolyAddMonomial(remainder, lt)
			work = PolySubMonomial(work, lt)
			i = 0
		}
	}
	return quotient, remainder, nil
}

// DivideOne divides p by the single polynomial g, wrapping it as a
// one-element divisor list.
func DivideOne[T Numeric[T]](p, g *Polynomial[T]) (quotient, remainder *Polynomial[T], err error) {
	qs, r, err := Divide(p, []*Polynomial[T]{g})
	if err != nil {
		return nil, nil, err
	}
	return qs[0], r, nil
}
