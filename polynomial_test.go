package polyalg

import "testing"

func poly(order Order, monos ...*Monomial[*Decimal]) *Polynomial[*Decimal] {
	return NewPolynomial[*Decimal](order, monos...)
}

func TestPolynomialLeadingTermEmptyFails(t *testing.T) {
	p := poly(OrderLex)
	if _, err := p.LeadingTerm(); err == nil {
		t.Errorf("expected ErrEmptyPolynomial")
	}
}

func TestPolynomialLeadingTerm(t *testing.T) {
	// x^2 + x*y under LEX (x before y): x^2 leads.
	p := poly(OrderLex,
		mono(OrderLex, 1, []string{"x", "y"}, []float64{2, 0}),
		mono(OrderLex, 1, []string{"x", "y"}, []float64{1, 1}),
	)
	lt, err := p.LeadingTerm()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	ex, _ := lt.Variables.Get("x")
	if ex.V != 2 {
		t.Errorf("got x^%v want x^2", ex.V)
	}
}

func TestPolynomialAddMergesLikeTerms(t *testing.T) {
	x2 := poly(OrderLex, mono(OrderLex, 1, []string{"x"}, []float64{2}))
	more := poly(OrderLex, mono(OrderLex, 2, []string{"x"}, []float64{2}), mono(OrderLex, 1, []string{"x"}, []float64{1}))
	sum := PolyAdd(x2, more)
	if sum.Len() != 2 {
		t.Fatalf("got %d terms want 2", sum.Len())
	}
	lt, err := sum.LeadingTerm()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if lt.Coefficient.V != 3 {
		t.Errorf("got %v want 3", lt.Coefficient.V)
	}
}

func TestPolynomialSubToZero(t *testing.T) {
	x := poly(OrderLex, mono(OrderLex, 3, []string{"x"}, []float64{1}))
	same := poly(OrderLex, mono(OrderLex, 3, []string{"x"}, []float64{1}))
	diff := PolySub(x, same)
	if !diff.Zero() {
		t.Errorf("expected zero polynomial")
	}
}

func TestPolynomialMul(t *testing.T) {
	// (x+1)*(x-1) = x^2-1.
	a := poly(OrderLex, mono(OrderLex, 1, []string{"x"}, []float64{1}), mono(OrderLex, 1, nil, nil))
	b := poly(OrderLex, mono(OrderLex, 1, []string{"x"}, []float64{1}), mono(OrderLex, -1, nil, nil))
	prod := PolyMul(a, b)
	if prod.Len() != 2 {
		t.Fatalf("got %d terms want 2", prod.Len())
	}
	lt, err := prod.LeadingTerm()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	ex, _ := lt.Variables.Get("x")
	if lt.Coefficient.V != 1 || ex.V != 2 {
		t.Errorf("got %v x^%v want 1 x^2", lt.Coefficient.V, ex.V)
	}
}

func TestPolynomialString(t *testing.T) {
	p := poly(OrderLex, mono(OrderLex, 1, []string{"x"}, []float64{2}), mono(OrderLex, -3, nil, nil))
	got := p.String()
	want := "x^2-3"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestDivide(t *testing.T) {
	// x^2*y + x*y^2 + y^2 divided by [x*y-1, y^2-1] under LEX (x > y):
	// quotient [x+y, 1], remainder x+y+1.
	p := poly(OrderLex,
		mono(OrderLex, 1, []string{"x", "y"}, []float64{2, 1}),
		mono(OrderLex, 1, []string{"x", "y"}, []float64{1, 2}),
		mono(OrderLex, 1, []string{"x", "y"}, []float64{0, 2}),
	)
	g1 := poly(OrderLex, mono(OrderLex, 1, []string{"x", "y"}, []float64{1, 1}), mono(OrderLex, -1, nil, nil))
	g2 := poly(OrderLex, mono(OrderLex, 1, []string{"x", "y"}, []float64{0, 2}), mono(OrderLex, -1, nil, nil))

	quotient, remainder, err := Divide(p, []*Polynomial[*Decimal]{g1, g2})
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if len(quotient) != 2 {
		t.Fatalf("got %d quotients want 2", len(quotient))
	}

	wantQ1 := poly(OrderLex, mono(OrderLex, 1, []string{"x"}, []float64{1}), mono(OrderLex, 1, []string{"y"}, []float64{1}))
	if !quotient[0].Equal(wantQ1) {
		t.Errorf("quotient[0]: got %s want %s", quotient[0], wantQ1)
	}
	wantQ2 := poly(OrderLex, mono(OrderLex, 1, nil, nil))
	if !quotient[1].Equal(wantQ2) {
		t.Errorf("quotient[1]: got %s want %s", quotient[1], wantQ2)
	}

	wantR := poly(OrderLex,
		mono(OrderLex, 1, []string{"x"}, []float64{1}),
		mono(OrderLex, 1, []string{"y"}, []float64{1}),
		mono(OrderLex, 1, nil, nil),
	)
	if !remainder.Equal(wantR) {
		t.Errorf("remainder: got %s want %s", remainder, wantR)
	}
}
