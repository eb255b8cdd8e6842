package polyalg_test

import (
	"fmt"

	"github.com/grbnr/polyalg"
)

func Example_divide() {
	// Divide x^2*y + x*y^2 + y^2 by [x*y-1, y^2-1] under LEX (x > y).
	vars := func(exps map[string]float64) polyalg.VariableMap[*polyalg.Decimal] {
		m := polyalg.NewVariableMap[*polyalg.Decimal]()
		for name, exp := range exps {
			m.Set(name, polyalg.NewDecimal(exp))
		}
		return m
	}
	term := func(c float64, exps map[string]float64) *polyalg.Monomial[*polyalg.Decimal] {
		return polyalg.NewMonomial[*polyalg.Decimal](polyalg.OrderLex, polyalg.Term[*polyalg.Decimal]{
			Coefficient: polyalg.NewDecimal(c),
			Variables:   vars(exps),
		})
	}

	p := polyalg.NewPolynomial(polyalg.OrderLex,
		term(1, map[string]float64{"x": 2, "y": 1}),
		term(1, map[string]float64{"x": 1, "y": 2}),
		term(1, map[string]float64{"y": 2}),
	)
	g1 := polyalg.NewPolynomial(polyalg.OrderLex, term(1, map[string]float64{"x": 1, "y": 1}), term(-1, nil))
	g2 := polyalg.NewPolynomial(polyalg.OrderLex, term(1, map[string]float64{"y": 2}), term(-1, nil))

	quotient, remainder, err := polyalg.Divide(p, []*polyalg.Polynomial[*polyalg.Decimal]{g1, g2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, q := range quotient {
		fmt.Printf("quotient[%d]: %s\n", i, q)
	}
	fmt.Println("remainder:", remainder)

	// Output:
	// quotient[0]: x+y
	// quotient[1]: 1
	// remainder: x+y+1
}

func ExampleParseExpr() {
	expr, err := polyalg.ParseExpr("2x^2 + 3x")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	bindings := polyalg.NewVariableMap[*polyalg.Decimal]()
	bindings.Set("x", polyalg.NewDecimal(5))
	got, err := expr.Eval(bindings)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(got.String())

	// Output:
	// 65
}
