package polyalg

import (
	"bytes"
	"strconv"

	"github.com/pkg/errors"

	"github.com/grbnr/polyalg/parse"
	"github.com/grbnr/polyalg/parse/scan"
)

// ParseExpr parses a human-written algebraic expression (e.g.
// "5/3(y-x)x") into an *Expr[*Decimal]. Juxtaposition and adjacency to a
// parenthesized group are read as implicit multiplication, matching the
// surface syntax of polyalg/parse.
func ParseExpr(src string) (*Expr[*Decimal], error) {
	scanner := scan.NewScanner(bytes.NewBufferString(src))
	node, err := parse.Parse(scanner)
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	return buildExpr(node)
}

func buildExpr(n *parse.Node) (*Expr[*Decimal], error) {
	if n == nil {
		return nil, errors.New("missing operand")
	}
	switch n.Token.Type {
	case scan.Parenthesis:
		return buildExpr(n.Left)
	case scan.Number:
		v, err := strconv.ParseFloat(n.Token.Text, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parse number %q", n.Token.Text)
		}
		return ExprFromDecimal(NewDecimal(v)), nil
	case scan.Identifier:
		return ExprFromName[*Decimal](n.Token.Text), nil
	case scan.Operator:
		left, err := buildExpr(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := buildExpr(n.Right)
		if err != nil {
			return nil, err
		}
		switch n.Token.Text {
		case "+":
			return Plus(left, right), nil
		case "-":
			return Minus(left, right), nil
		case "*":
			return Times(left, right), nil
		case "/":
			return Div(left, right), nil
		case "^":
			return Pow(left, right), nil
		default:
			return nil, errors.Errorf("unknown operator %q", n.Token.Text)
		}
	default:
		return nil, errors.Errorf("unexpected token type %v", n.Token.Type)
	}
}
