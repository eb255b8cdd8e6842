package polyalg

import (
	"fmt"
	"strings"

	"github.com/jba/omap"
	"github.com/pkg/errors"
)

// An Op is the operator tag of an Expr node.
type Op int

// The closed set of operator tags. CONST and PARAM are leaves; NEG, SQRT,
// SQ, SIN, COS, ASIN, ACOS are unary; PLUS, MINUS, TIMES, DIV, POW are
// binary. The remaining four are structural tags used only by the print
// layer; no builder in this package constructs them.
const (
	OpConst Op = iota
	OpParam
	OpPlus
	OpMinus
	OpTimes
	OpDiv
	OpPow
	OpNeg
	OpSqrt
	OpSq
	OpSin
	OpCos
	OpAsin
	OpAcos

	// OpParen, OpBinaryOp, OpUnaryOp and OpAllResolved are structural tags
	// reserved for a print layer that groups or marks subtrees; they carry
	// no arithmetic meaning and nothing in this package builds them.
	OpParen
	OpBinaryOp
	OpUnaryOp
	OpAllResolved
)

func (o Op) String() string {
	switch o {
	case OpConst:
		return "CONST"
	case OpParam:
		return "PARAM"
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpTimes:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	case OpNeg:
		return "-"
	case OpSqrt:
		return "sqrt"
	case OpSq:
		return "sq"
	case OpSin:
		return "sin"
	case OpCos:
		return "cos"
	case OpAsin:
		return "asin"
	case OpAcos:
		return "acos"
	case OpParen:
		return "PAREN"
	case OpBinaryOp:
		return "BINARY_OP"
	case OpUnaryOp:
		return "UNARY_OP"
	case OpAllResolved:
		return "ALL_RESOLVED"
	default:
		return "UNKNOWN"
	}
}

// VariableMap is a sorted mapping from variable name to exponent. Iteration
// (via omap's All/Backward) always yields names in lexicographic order;
// this is what defines the canonical printed form and the positional
// exponent vector consumed by a monomial order.
type VariableMap[T Numeric[T]] = *omap.MapFunc[string, T]

// NewVariableMap returns an empty VariableMap.
func NewVariableMap[T Numeric[T]]() VariableMap[T] {
	return omap.NewMapFunc[string, T](stringCompare)
}

func stringCompare(a, b string) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// A Term is a coefficient times a product of variable powers. A Term with
// an empty Variables map is a pure scalar.
type Term[T Numeric[T]] struct {
	Coefficient T
	Variables   VariableMap[T]
}

// cloneVars returns a shallow copy of vars with its own backing map.
func cloneVars[T Numeric[T]](vars VariableMap[T]) VariableMap[T] {
	out := NewVariableMap[T]()
	if vars == nil {
		return out
	}
	for name, exp := range vars.All() {
		out.Set(name, exp)
	}
	return out
}

// String returns the canonical printed form coefficient*name1^exp1*...,
// matching the conventions the polynomial printer also follows: a leading
// "1" coefficient is suppressed when variables are present.
func (t Term[T]) String() string {
	if t.Variables == nil || t.Variables.Len() == 0 {
		return t.Coefficient.String()
	}
	var b strings.Builder
	cs := t.Coefficient.String()
	one := t.Coefficient.NewOne()
	if !t.Coefficient.Equal(one) {
		b.WriteString(cs)
		b.WriteString("*")
	}
	first := true
	for name, exp := range t.Variables.All() {
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
	return b.String()
}

// An Expr is a tagged expression node: CONST and PARAM leaves carry a Term
// payload; unary nodes carry A; binary nodes carry A and B. Equality and
// hashing are defined by the canonical printed string, so two
// structurally identical trees compare equal regardless of how they were
// built.
type Expr[T Numeric[T]] struct {
	Op   Op
	Term Term[T]
	A, B *Expr[T]
}

// ExprFromDecimal returns a CONST leaf with coefficient c.
func ExprFromDecimal[T Numeric[T]](c T) *Expr[T] {
	return &Expr[T]{Op: OpConst, Term: Term[T]{Coefficient: c, Variables: nil}}
}

// ExprFromName returns a PARAM leaf for the single variable name, with
// coefficient 1 and exponent 1.
func ExprFromName[T Numeric[T]](name string) *Expr[T] {
	var zero T
	one := zero.NewOne()
	vars := NewVariableMap[T]()
	vars.Set(name, one)
	return &Expr[T]{Op: OpParam, Term: Term[T]{Coefficient: one, Variables: vars}}
}

// ExprFromTerm is the canonical way to rebuild an Expr from an arithmetic
// result: a term with no variables becomes a CONST node, otherwise a
// PARAM node carrying the term verbatim.
func ExprFromTerm[T Numeric[T]](t Term[T]) *Expr[T] {
	if t.Variables == nil || t.Variables.Len() == 0 {
		return &Expr[T]{Op: OpConst, Term: Term[T]{Coefficient: t.Coefficient}}
	}
	return &Expr[T]{Op: OpParam, Term: t}
}

// ExprFromNameExponent builds coefficient*name^exponent.
func ExprFromNameExponent[T Numeric[T]](coefficient T, name string, exponent T) *Expr[T] {
	vars := NewVariableMap[T]()
	vars.Set(name, exponent)
	return ExprFromTerm(Term[T]{Coefficient: coefficient, Variables: vars})
}

// ExprFromNamesExponents builds coefficient*names[0]^exponents[0]*...;
// names and exponents must have the same length.
func ExprFromNamesExponents[T Numeric[T]](coefficient T, names []string, exponents []T) *Expr[T] {
	vars := NewVariableMap[T]()
	for i, name := range names {
		vars.Set(name, exponents[i])
	}
	return ExprFromTerm(Term[T]{Coefficient: coefficient, Variables: vars})
}

// ExprFromVariableMap builds coefficient*Π vars.
func ExprFromVariableMap[T Numeric[T]](coefficient T, vars VariableMap[T]) *Expr[T] {
	return ExprFromTerm(Term[T]{Coefficient: coefficient, Variables: cloneVars(vars)})
}

// ExprFromNames folds a single coefficient across the given names and
// exponents, mirroring the three-tuple constructor (coefficient,
// names[], exponents[]).
func ExprFromNames[T Numeric[T]](coefficient T, names []string, exponents []T) *Expr[T] {
	return ExprFromNamesExponents(coefficient, names, exponents)
}

// ExprFromCoeffsNamesExps folds a slice of coefficients by multiplication
// before building the term, mirroring the original source's
// From<(Vec<Number>, Vec<String>, Vec<Number>)> constructor.
func ExprFromCoeffsNamesExps[T Numeric[T]](coeffs []T, names []string, exponents []T) *Expr[T] {
	var zero T
	c := zero.NewOne()
	for _, f := range coeffs {
		c = c.Mul(c, f)
	}
	return ExprFromNamesExponents(c, names, exponents)
}

// Plus returns a new PLUS node with operands a, b.
func Plus[T Numeric[T]](a, b *Expr[T]) *Expr[T] { return &Expr[T]{Op: OpPlus, A: a, B: b} }

// Minus returns a new MINUS node with operands a, b.
func Minus[T Numeric[T]](a, b *Expr[T]) *Expr[T] { return &Expr[T]{Op: OpMinus, A: a, B: b} }

// Times returns a new TIMES node with operands a, b.
func Times[T Numeric[T]](a, b *Expr[T]) *Expr[T] { return &Expr[T]{Op: OpTimes, A: a, B: b} }

// Div returns a new DIV node with operands a, b.
func Div[T Numeric[T]](a, b *Expr[T]) *Expr[T] { return &Expr[T]{Op: OpDiv, A: a, B: b} }

// Pow returns a new POW node with base a and exponent b.
func Pow[T Numeric[T]](a, b *Expr[T]) *Expr[T] { return &Expr[T]{Op: OpPow, A: a, B: b} }

// Neg returns a new NEG node with operand a.
func Neg[T Numeric[T]](a *Expr[T]) *Expr[T] { return &Expr[T]{Op: OpNeg, A: a} }

// Sqrt returns a new SQRT node with operand a.
func Sqrt[T Numeric[T]](a *Expr[T]) *Expr[T] { return &Expr[T]{Op: OpSqrt, A: a} }

// Sq returns a new SQ node with operand a.
func Sq[T Numeric[T]](a *Expr[T]) *Expr[T] { return &Expr[T]{Op: OpSq, A: a} }

// Sin returns a new SIN node with operand a.
func Sin[T Numeric[T]](a *Expr[T]) *Expr[T] { return &Expr[T]{Op: OpSin, A: a} }

// Cos returns a new COS node with operand a.
func Cos[T Numeric[T]](a *Expr[T]) *Expr[T] { return &Expr[T]{Op: OpCos, A: a} }

// Asin returns a new ASIN node with operand a.
func Asin[T Numeric[T]](a *Expr[T]) *Expr[T] { return &Expr[T]{Op: OpAsin, A: a} }

// Acos returns a new ACOS node with operand a.
func Acos[T Numeric[T]](a *Expr[T]) *Expr[T] { return &Expr[T]{Op: OpAcos, A: a} }

// Kind returns x's operator tag.
func (x *Expr[T]) Kind() Op { return x.Op }

// Operands returns x's direct children, in order. A leaf (CONST/PARAM)
// returns nil, a unary node returns a single-element slice, a binary
// node returns two.
func (x *Expr[T]) Operands() []*Expr[T] {
	switch {
	case x.A == nil:
		return nil
	case x.B == nil:
		return []*Expr[T]{x.A}
	default:
		return []*Expr[T]{x.A, x.B}
	}
}

// NOperands reports how many direct children x has.
func (x *Expr[T]) NOperands() int { return len(x.Operands()) }

// IOperand returns x's i-th direct child (0-indexed). It fails with
// ErrUnsupportedOp if i is out of range.
func (x *Expr[T]) IOperand(i int) (*Expr[T], error) {
	ops := x.Operands()
	if i < 0 || i >= len(ops) {
		return nil, errors.Wrapf(ErrUnsupportedOp, "operand index %d out of range for %s (%d operands)", i, x.Op, len(ops))
	}
	return ops[i], nil
}

// Nodes returns 1 plus the recursive node counts of present children.
func (x *Expr[T]) Nodes() int {
	n := 1
	if x.A != nil {
		n += x.A.Nodes()
	}
	if x.B != nil {
		n += x.B.Nodes()
	}
	return n
}

// Eval recursively evaluates x against bindings. A PARAM factor whose
// variable is absent from bindings contributes 0 to that factor's
// product. Eval fails with ErrUnsupportedOp for a structural tag.
func (x *Expr[T]) Eval(bindings VariableMap[T]) (T, error) {
	var zero T
	switch x.Op {
	case OpConst:
		return x.Term.Coefficient, nil
	case OpParam:
		c := x.Term.Coefficient
		acc := c.NewOne()
		acc = acc.Mul(acc, c)
		for name, exp := range x.Term.Variables.All() {
			v, ok := bindings.Get(name)
			if !ok {
				return acc.NewZero(), nil
			}
			f := v.NewOne()
			f = f.Pow(v, expToInt(exp))
			acc = acc.Mul(acc, f)
		}
		return acc, nil
	case OpPlus, OpMinus, OpTimes, OpDiv, OpPow:
		a, err := x.A.Eval(bindings)
		if err != nil {
			return zero, err
		}
		b, err := x.B.Eval(bindings)
		if err != nil {
			return zero, err
		}
		r := a.NewZero()
		switch x.Op {
		case OpPlus:
			return r.Add(a, b), nil
		case OpMinus:
			return r.Sub(a, b), nil
		case OpTimes:
			return r.Mul(a, b), nil
		case OpDiv:
			return r.Div(a, b), nil
		case OpPow:
			return r.Pow(a, expToInt(b)), nil
		}
	case OpNeg, OpSqrt, OpSq, OpSin, OpCos, OpAsin, OpAcos:
		a, err := x.A.Eval(bindings)
		if err != nil {
			return zero, err
		}
		r := a.NewZero()
		switch x.Op {
		case OpNeg:
			return r.Sub(r.NewZero(), a), nil
		case OpSqrt:
			return r.Sqrt(a), nil
		case OpSq:
			return r.Pow(a, 2), nil
		case OpSin:
			return r.Sin(a), nil
		case OpCos:
			return r.Cos(a), nil
		case OpAsin:
			return r.Asin(a), nil
		case OpAcos:
			return r.Acos(a), nil
		}
	}
	return zero, errors.Wrapf(ErrUnsupportedOp, "eval: op %s", x.Op)
}

// expToInt truncates a Numeric exponent to an int for use with Pow. Exponents
// produced by this package's own builders are always integral; a
// fractional exponent truncates toward zero.
func expToInt[T Numeric[T]](exp T) int {
	n := 0
	var zero T
	one := zero.NewOne()
	acc := zero.NewZero()
	neg := exp.Compare(zero.NewZero()) < 0
	e := exp
	if neg {
		e = zero.NewZero()
		e = e.Sub(e, exp)
	}
	for {
		next := zero.NewZero()
		next = next.Add(acc, one)
		if next.Compare(e) > 0 {
			break
		}
		acc = next
		n++
	}
	if neg {
		return -n
	}
	return n
}

// MonomialGME reports whether x can be folded into a single monomial term
// by ConfigMono: true for CONST and PARAM leaves, for POW(PARAM, CONST),
// and for TIMES where both children satisfy the predicate.
func (x *Expr[T]) MonomialGME() bool {
	switch x.Op {
	case OpConst, OpParam:
		return true
	case OpPow:
		return x.A.Op == OpParam && x.B.Op == OpConst
	case OpTimes:
		return x.A.MonomialGME() && x.B.MonomialGME()
	default:
		return false
	}
}

// PolynomialGME returns a map from canonical monomial string to the
// corresponding monomial-shaped Expr, if x is a sum of monomials. It
// reports false if any summand fails MonomialGME.
func (x *Expr[T]) PolynomialGME() (map[string]*Expr[T], bool) {
	if x.MonomialGME() {
		return map[string]*Expr[T]{x.String(): x}, true
	}
	if x.Op == OpPlus || x.Op == OpMinus {
		am, ok := x.A.PolynomialGME()
		if !ok {
			return nil, false
		}
		bm, ok := x.B.PolynomialGME()
		if !ok {
			return nil, false
		}
		out := make(map[string]*Expr[T], len(am)+len(bm))
		for k, v := range am {
			out[k] = v
		}
		for k, v := range bm {
			out[k] = v
		}
		return out, true
	}
	return nil, false
}

// String returns the canonical printed form of x: leaves print their Term
// payload, binary nodes print "AOPB" (no spaces), unary nodes print
// "OP(A)". This
// string is also the definition of equality and hashing: two expressions
// are Equal iff their strings match.
func (x *Expr[T]) String() string {
	switch x.Op {
	case OpConst, OpParam:
		return x.Term.String()
	case OpPlus, OpMinus, OpTimes, OpDiv, OpPow:
		return fmt.Sprintf("%s%s%s", x.A.String(), x.Op.String(), x.B.String())
	case OpNeg, OpSqrt, OpSq, OpSin, OpCos, OpAsin, OpAcos:
		return fmt.Sprintf("%s(%s)", x.Op.String(), x.A.String())
	default:
		return x.Op.String()
	}
}

// Equal reports whether x and y have the same canonical printed form.
func (x *Expr[T]) Equal(y *Expr[T]) bool { return x.String() == y.String() }

// Hash returns a hash of x's canonical printed form, consistent with Equal.
func (x *Expr[T]) Hash() uint64 { return fnv64(x.String()) }

func fnv64(s string) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}

// ConfigMono folds x into a single Term, collapsing CONST, PARAM,
// POW(PARAM, CONST) and TIMES subtrees. Variable exponents are summed on
// collision (x*x yields exponent 2, not 1). Any other tag fails with
// ErrNonMonomial.
func (x *Expr[T]) ConfigMono() (Term[T], error) {
	switch x.Op {
	case OpConst:
		return Term[T]{Coefficient: x.Term.Coefficient, Variables: NewVariableMap[T]()}, nil
	case OpParam:
		return Term[T]{Coefficient: x.Term.Coefficient, Variables: cloneVars(x.Term.Variables)}, nil
	case OpPow:
		if x.A.Op != OpParam || x.B.Op != OpConst {
			return Term[T]{}, errors.Wrapf(ErrNonMonomial, "pow base/exponent must be PARAM/CONST, got %s/%s", x.A.Op, x.B.Op)
		}
		base, err := x.A.ConfigMono()
		if err != nil {
			return Term[T]{}, err
		}
		power := x.B.Term.Coefficient
		vars := NewVariableMap[T]()
		for name, exp := range base.Variables.All() {
			var z T
			scaled := z.NewZero()
			vars.Set(name, scaled.Mul(exp, power))
		}
		return Term[T]{Coefficient: base.Coefficient, Variables: vars}, nil
	case OpTimes:
		left, err := x.A.ConfigMono()
		if err != nil {
			return Term[T]{}, err
		}
		right, err := x.B.ConfigMono()
		if err != nil {
			return Term[T]{}, err
		}
		return mergeTerms(left, right), nil
	default:
		return Term[T]{}, errors.Wrapf(ErrNonMonomial, "op %s is not a monomial form", x.Op)
	}
}

// mergeTerms multiplies two terms: coefficients multiply, and variable
// exponents sum on collision.
func mergeTerms[T Numeric[T]](a, b Term[T]) Term[T] {
	var zero T
	c := zero.NewZero()
	c = c.Mul(a.Coefficient, b.Coefficient)
	vars := cloneVars(a.Variables)
	for name, exp := range b.Variables.All() {
		if cur, ok := vars.Get(name); ok {
			sum := cur.NewZero()
			vars.Set(name, sum.Add(cur, exp))
		} else {
			vars.Set(name, exp)
		}
	}
	return Term[T]{Coefficient: c, Variables: vars}
}
