package polyalg

import (
	"fmt"
	"testing"
)

func mono(order Order, coeff float64, names []string, exps []float64) *Monomial[*Decimal] {
	vars := NewVariableMap[*Decimal]()
	for i, name := range names {
		vars.Set(name, d(exps[i]))
	}
	return NewMonomial[*Decimal](order, Term[*Decimal]{Coefficient: d(coeff), Variables: vars})
}

func TestMonomialMulDiv(t *testing.T) {
	// (3 x^2 y) * (2 x y^3) = 6 x^3 y^4; dividing reverses it.
	a := mono(OrderLex, 3, []string{"x", "y"}, []float64{2, 1})
	b := mono(OrderLex, 2, []string{"x", "y"}, []float64{1, 3})

	prod := MulMonomial(a, b)
	if prod.Coefficient.V != 6 {
		t.Errorf("coefficient: got %v want 6", prod.Coefficient.V)
	}
	ex, _ := prod.Variables.Get("x")
	ey, _ := prod.Variables.Get("y")
	if ex.V != 3 || ey.V != 4 {
		t.Errorf("got x^%v y^%v want x^3 y^4", ex.V, ey.V)
	}

	back := DivMonomial(prod, b)
	if !back.Coefficient.Equal(a.Coefficient) {
		t.Errorf("got coefficient %v want %v", back.Coefficient.V, a.Coefficient.V)
	}
	bx, _ := back.Variables.Get("x")
	by, _ := back.Variables.Get("y")
	if bx.V != 2 || by.V != 1 {
		t.Errorf("got x^%v y^%v want x^2 y^1", bx.V, by.V)
	}
}

func TestMonomialAddSubLikeTerms(t *testing.T) {
	a := mono(OrderLex, 3, []string{"x"}, []float64{2})
	b := mono(OrderLex, 5, []string{"x"}, []float64{2})
	sum, err := AddMonomial(a, b)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if sum.Coefficient.V != 8 {
		t.Errorf("got %v want 8", sum.Coefficient.V)
	}

	diff, err := SubMonomial(a, b)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if diff.Coefficient.V != -2 {
		t.Errorf("got %v want -2", diff.Coefficient.V)
	}
}

func TestMonomialAddNotLikeTermsFails(t *testing.T) {
	a := mono(OrderLex, 1, []string{"x"}, []float64{1})
	b := mono(OrderLex, 1, []string{"x"}, []float64{2})
	if _, err := AddMonomial(a, b); err == nil {
		t.Errorf("expected ErrNotLikeTerms")
	}
}

func TestMonomialCofactor(t *testing.T) {
	self := mono(OrderLex, 2, []string{"x", "y"}, []float64{1, 1})
	other := mono(OrderLex, 6, []string{"x", "y"}, []float64{2, 3})

	m, err := self.Cofactor(other)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	product := MulMonomial(self, m)
	if product.Coefficient.V != other.Coefficient.V {
		t.Errorf("coefficient: got %v want %v", product.Coefficient.V, other.Coefficient.V)
	}
	px, _ := product.Variables.Get("x")
	py, _ := product.Variables.Get("y")
	if px.V != 2 || py.V != 3 {
		t.Errorf("got x^%v y^%v want x^2 y^3", px.V, py.V)
	}
}

func TestMonomialCofactorNotDivisible(t *testing.T) {
	self := mono(OrderLex, 1, []string{"x"}, []float64{3})
	other := mono(OrderLex, 1, []string{"x"}, []float64{1})
	if _, err := self.Cofactor(other); err == nil {
		t.Errorf("expected ErrNotDivisible")
	}
}

func TestMonomialLCM(t *testing.T) {
	a := mono(OrderLex, 2, []string{"x", "y"}, []float64{3, 1})
	b := mono(OrderLex, 5, []string{"x", "y"}, []float64{1, 4})
	l := LCM(a, b)
	if l.Coefficient.V != 1 {
		t.Errorf("coefficient: got %v want 1", l.Coefficient.V)
	}
	lx, _ := l.Variables.Get("x")
	ly, _ := l.Variables.Get("y")
	if lx.V != 3 || ly.V != 4 {
		t.Errorf("got x^%v y^%v want x^3 y^4", lx.V, ly.V)
	}
}

func TestMonomialZero(t *testing.T) {
	m := mono(OrderLex, 0, []string{"x"}, []float64{2})
	if !m.Zero() {
		t.Errorf("expected zero")
	}
	nz := mono(OrderLex, 1, []string{"x"}, []float64{2})
	if nz.Zero() {
		t.Errorf("expected non-zero")
	}
}

func TestMonomialOrderLex(t *testing.T) {
	// x^2 > x*y under LEX with x before y.
	xx := mono(OrderLex, 1, []string{"x", "y"}, []float64{2, 0})
	xy := mono(OrderLex, 1, []string{"x", "y"}, []float64{1, 1})
	c, err := xx.Compare(xy)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if c <= 0 {
		t.Errorf("got %d want positive", c)
	}
}

func TestMonomialOrderRevGradLex(t *testing.T) {
	tests := []struct {
		aExps, bExps []float64
		want         int // sign of compare(a, b)
	}{
		// Total degree decides first: x^3 (deg 3) > x*y (deg 2).
		{[]float64{3, 0}, []float64{1, 1}, 1},
		// Tie on total degree (both deg 3): right-to-left, smaller
		// exponent on y wins, so x^3 > x^2*y.
		{[]float64{3, 0}, []float64{2, 1}, 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			t.Parallel()
			a := mono(OrderRevGradLex, 1, []string{"x", "y"}, test.aExps)
			b := mono(OrderRevGradLex, 1, []string{"x", "y"}, test.bExps)
			c, err := a.Compare(b)
			if err != nil {
				t.Fatalf("%+v", err)
			}
			if (c > 0) != (test.want > 0) {
				t.Errorf("got %d want sign %d", c, test.want)
			}
		})
	}
}

func TestMonomialOrderMismatch(t *testing.T) {
	a := mono(OrderLex, 1, []string{"x"}, []float64{1})
	b := mono(OrderRevGradLex, 1, []string{"x"}, []float64{1})
	if _, err := a.Compare(b); err == nil {
		t.Errorf("expected ErrOrderMismatch")
	}
}

func TestMonomialOrderUnset(t *testing.T) {
	a := mono(OrderUnset, 1, []string{"x"}, []float64{1})
	b := mono(OrderUnset, 1, []string{"x"}, []float64{1})
	if _, err := a.Compare(b); err == nil {
		t.Errorf("expected ErrOrderUnset")
	}
}

func TestMonomialConfigureWidensSupport(t *testing.T) {
	a := mono(OrderLex, 1, []string{"x"}, []float64{1})
	b := mono(OrderLex, 1, []string{"y"}, []float64{1})
	ca, cb := Configure(a, b)
	if ca.Variables.Len() != 2 || cb.Variables.Len() != 2 {
		t.Errorf("got %d/%d want 2/2", ca.Variables.Len(), cb.Variables.Len())
	}
	ay, _ := ca.Variables.Get("y")
	if ay.V != 0 {
		t.Errorf("got %v want 0", ay.V)
	}
}
