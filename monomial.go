package polyalg

import "github.com/pkg/errors"

// An Order names a monomial order. The zero value OrderUnset marks a
// monomial whose order tag has not been set; comparisons against it fail
// with ErrOrderUnset.
type Order int

const (
	// OrderUnset is the zero value: no order has been assigned.
	OrderUnset Order = iota
	// OrderLex is the lexicographic order: scan the positional exponent
	// vector left to right, the first differing position decides,
	// greater exponent wins.
	OrderLex
	// OrderRevGradLex is the degree-reverse-lexicographic order: compare
	// total degree first (greater wins), and on a tie scan the
	// positional exponent vector right to left, smaller exponent wins.
	OrderRevGradLex
)

func (o Order) String() string {
	switch o {
	case OrderLex:
		return "LEX"
	case OrderRevGradLex:
		return "REVGRADLEX"
	default:
		return "UNSET"
	}
}

// A Monomial is a Term augmented with an ordering tag and a cached Expr
// carrier. The carrier is refreshed after every mutation so that printing
// a Monomial always agrees with printing its Expr.
type Monomial[T Numeric[T]] struct {
	Term[T]
	Order Order

	expr *Expr[T]
}

// NewMonomial returns a new Monomial with the given order and term,
// copying t's variable map.
func NewMonomial[T Numeric[T]](order Order, t Term[T]) *Monomial[T] {
	m := &Monomial[T]{Term: Term[T]{Coefficient: t.Coefficient, Variables: cloneVars(t.Variables)}, Order: order}
	m.refresh()
	return m
}

func (m *Monomial[T]) refresh() {
	m.expr = ExprFromTerm(Term[T]{Coefficient: m.Coefficient, Variables: m.Variables})
}

// Expr returns the cached Expr carrier.
func (m *Monomial[T]) Expr() *Expr[T] { return m.expr }

// String returns the canonical printed form, identical to m.Expr().String().
func (m *Monomial[T]) String() string { return m.expr.String() }

// Configure returns copies of a and b widened to the union of their
// variable supports: any variable present in one but not the other is
// inserted into the other with exponent 0. This is the precondition
// enforced before every same-support operation below.
func Configure[T Numeric[T]](a, b *Monomial[T]) (*Monomial[T], *Monomial[T]) {
	av := cloneVars(a.Variables)
	bv := cloneVars(b.Variables)
	fillUnion(av, bv)
	ca := &Monomial[T]{Term: Term[T]{Coefficient: a.Coefficient, Variables: av}, Order: a.Order}
	cb := &Monomial[T]{Term: Term[T]{Coefficient: b.Coefficient, Variables: bv}, Order: b.Order}
	ca.refresh()
	cb.refresh()
	return ca, cb
}

// fillUnion inserts, into each of av and bv, every variable present in
// the other but missing from itself, with exponent 0.
func fillUnion[T Numeric[T]](av, bv VariableMap[T]) {
	var zero T
	z := zero.NewZero()
	for name := range av.All() {
		if _, ok := bv.Get(name); !ok {
			bv.Set(name, z)
		}
	}
	for name := range bv.All() {
		if _, ok := av.Get(name); !ok {
			av.Set(name, z)
		}
	}
}

// MulMonomial returns a*b: exponents sum on the union support, coefficients
// multiply. Always succeeds.
func MulMonomial[T Numeric[T]](a, b *Monomial[T]) *Monomial[T] {
	ca, cb := Configure(a, b)
	vars := NewVariableMap[T]()
	for name, ea := range ca.Variables.All() {
		eb, _ := cb.Variables.Get(name)
		var z T
		sum := z.NewZero()
		vars.Set(name, sum.Add(ea, eb))
	}
	var z T
	c := z.NewZero()
	c = c.Mul(ca.Coefficient, cb.Coefficient)
	m := &Monomial[T]{Term: Term[T]{Coefficient: c, Variables: vars}, Order: a.Order}
	m.refresh()
	return m
}

// DivMonomial returns a/b: exponents subtract on the union support
// (possibly producing negative exponents — a valid intermediate for
// division logic, though not a polynomial term), coefficients divide.
// Always succeeds.
func DivMonomial[T Numeric[T]](a, b *Monomial[T]) *Monomial[T] {
	ca, cb := Configure(a, b)
	vars := NewVariableMap[T]()
	for name, ea := range ca.Variables.All() {
		eb, _ := cb.Variables.Get(name)
		var z T
		diff := z.NewZero()
		vars.Set(name, diff.Sub(ea, eb))
	}
	var z T
	c := z.NewZero()
	c = c.Div(ca.Coefficient, cb.Coefficient)
	m := &Monomial[T]{Term: Term[T]{Coefficient: c, Variables: vars}, Order: a.Order}
	m.refresh()
	return m
}

// CommonTerm reports whether a and b have identical variable maps after
// Configure (same support, same exponents).
func CommonTerm[T Numeric[T]](a, b *Monomial[T]) bool {
	ca, cb := Configure(a, b)
	if ca.Variables.Len() != cb.Variables.Len() {
		return false
	}
	for name, ea := range ca.Variables.All() {
		eb, ok := cb.Variables.Get(name)
		if !ok || !ea.Equal(eb) {
			return false
		}
	}
	return true
}

// AddMonomial returns a+b. Defined iff a and b are like terms (CommonTerm
// holds); fails with ErrNotLikeTerms otherwise.
func AddMonomial[T Numeric[T]](a, b *Monomial[T]) (*Monomial[T], error) {
	if !CommonTerm(a, b) {
		return nil, errors.Wrapf(ErrNotLikeTerms, "add %s + %s", a, b)
	}
	var z T
	c := z.NewZero()
	c = c.Add(a.Coefficient, b.Coefficient)
	m := &Monomial[T]{Term: Term[T]{Coefficient: c, Variables: cloneVars(a.Variables)}, Order: a.Order}
	m.refresh()
	return m, nil
}

// SubMonomial returns a-b. Symmetric to AddMonomial.
func SubMonomial[T Numeric[T]](a, b *Monomial[T]) (*Monomial[T], error) {
	if !CommonTerm(a, b) {
		return nil, errors.Wrapf(ErrNotLikeTerms, "sub %s - %s", a, b)
	}
	var z T
	c := z.NewZero()
	c = c.Sub(a.Coefficient, b.Coefficient)
	m := &Monomial[T]{Term: Term[T]{Coefficient: c, Variables: cloneVars(a.Variables)}, Order: a.Order}
	m.refresh()
	return m, nil
}

// Cofactor returns a monomial m such that self*m = other, provided every
// exponent of other dominates self's (after Configure). Fails with
// ErrNotDivisible otherwise.
func (m *Monomial[T]) Cofactor(other *Monomial[T]) (*Monomial[T], error) {
	cs, co := Configure(m, other)
	for name, es := range cs.Variables.All() {
		eo, _ := co.Variables.Get(name)
		if eo.Compare(es) < 0 {
			return nil, errors.Wrapf(ErrNotDivisible, "cofactor: %s does not divide %s", m, other)
		}
	}
	return DivMonomial(co, cs), nil
}

// LCM returns the variable-wise maximum of a's and b's exponents, with
// coefficient 1, inheriting a's order.
func LCM[T Numeric[T]](a, b *Monomial[T]) *Monomial[T] {
	ca, cb := Configure(a, b)
	vars := NewVariableMap[T]()
	for name, ea := range ca.Variables.All() {
		eb, _ := cb.Variables.Get(name)
		if ea.Compare(eb) >= 0 {
			vars.Set(name, ea)
		} else {
			vars.Set(name, eb)
		}
	}
	var z T
	m := &Monomial[T]{Term: Term[T]{Coefficient: z.NewOne(), Variables: vars}, Order: a.Order}
	m.refresh()
	return m
}

// Zero reports whether m's coefficient is numeric zero, after stripping
// any zero-exponent variables from its support.
func (m *Monomial[T]) Zero() bool {
	var z T
	zero := z.NewZero()
	stripped := NewVariableMap[T]()
	for name, exp := range m.Variables.All() {
		if !exp.Equal(zero) {
			stripped.Set(name, exp)
		}
	}
	m.Variables = stripped
	m.refresh()
	return m.Coefficient.Equal(zero)
}

// Compare orders m against other under their shared order tag. It fails
// with ErrOrderUnset if either side's order tag is unset, and with
// ErrOrderMismatch if the two disagree.
func (m *Monomial[T]) Compare(other *Monomial[T]) (int, error) {
	if m.Order == OrderUnset || other.Order == OrderUnset {
		return 0, ErrOrderUnset
	}
	if m.Order != other.Order {
		return 0, ErrOrderMismatch
	}
	cm, co := Configure(m, other)
	switch m.Order {
	case OrderLex:
		return lexCompare(cm, co), nil
	case OrderRevGradLex:
		return revGradLexCompare(cm, co), nil
	default:
		return 0, errors.Errorf("polyalg: unknown order %v", m.Order)
	}
}

// lexCompare scans the positional exponent vector of two configured
// (same-support) monomials left to right; the first differing position
// decides, greater exponent wins.
func lexCompare[T Numeric[T]](a, b *Monomial[T]) int {
	for name, ea := range a.Variables.All() {
		eb, _ := b.Variables.Get(name)
		if c := ea.Compare(eb); c != 0 {
			return c
		}
	}
	return 0
}

// revGradLexCompare compares total degree first (greater wins), then on a
// tie scans the positional exponent vector right to left, the smaller
// exponent winning.
func revGradLexCompare[T Numeric[T]](a, b *Monomial[T]) int {
	var z T
	da, db := z.NewZero(), z.NewZero()
	var names []string
	for name, ea := range a.Variables.All() {
		da = da.Add(da, ea)
		names = append(names, name)
	}
	for _, eb := range b.Variables.All() {
		db = db.Add(db, eb)
	}
	if c := da.Compare(db); c != 0 {
		return c
	}
	for i := len(names) - 1; i >= 0; i-- {
		name := names[i]
		ea, _ := a.Variables.Get(name)
		eb, _ := b.Variables.Get(name)
		if c := ea.Compare(eb); c != 0 {
			return -c
		}
	}
	return 0
}
