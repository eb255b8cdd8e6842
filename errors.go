package polyalg

import "github.com/pkg/errors"

// Error kinds returned by the algebraic layer. Callers that need to
// distinguish them should use errors.Is, since wrapping (errors.Wrap) is
// used liberally to attach context as errors propagate.
var (
	// ErrNonMonomial is returned when an expression cannot be folded into
	// a single term by ConfigMono.
	ErrNonMonomial = errors.New("polyalg: expression is not a monomial")
	// ErrNotLikeTerms is returned by Monomial.Add/Sub when the operands
	// do not share a variable support after Configure.
	ErrNotLikeTerms = errors.New("polyalg: monomials are not like terms")
	// ErrNotDivisible is returned by Monomial.Cofactor when some exponent
	// of the dividend does not dominate the divisor's.
	ErrNotDivisible = errors.New("polyalg: monomial is not divisible")
	// ErrOrderMismatch is returned when two monomials disagree on their
	// ordering tag.
	ErrOrderMismatch = errors.New("polyalg: monomial orders do not match")
	// ErrOrderUnset is returned by order comparisons on a monomial whose
	// order tag has not been set.
	ErrOrderUnset = errors.New("polyalg: monomial order is not set")
	// ErrUnsupportedOp is returned by Eval for an expression tag it does
	// not accept, and by IOperand for an out-of-range operand index.
	ErrUnsupportedOp = errors.New("polyalg: unsupported operator")
	// ErrEmptyPolynomial is returned by LeadingTerm on a polynomial with
	// no terms.
	ErrEmptyPolynomial = errors.New("polyalg: polynomial has no terms")
	// ErrNotUnivariate is returned by GCD when an operand's support
	// spans more than one variable.
	ErrNotUnivariate = errors.New("polyalg: polynomial is not univariate")
)
