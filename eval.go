package infix

import (
	"io"
	"strconv"
	"strings"
)

// Eval evaluates the expression and returns its value. The expression tree
// is never modified, so evaluating the same Expr any number of times yields
// the same value every time.
func (e *Expr) Eval() (float64, error) {
	return e.n.eval()
}

// eval computes the value of the subtree rooted at n.
func (n *node) eval() (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeOp:
		l, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval()
		if err != nil {
			return 0, err
		}
		switch n.op {
		case '+':
			return l + r, nil
		case '-':
			return l - r, nil
		case '*':
			return l * r, nil
		case '/':
			if r == 0 {
				return 0, &DivisionByZeroError{}
			}
			return l / r, nil
		default:
			// Parse never builds such a node.
			return 0, &InvalidOperatorError{Operator: n.op}
		}
	default:
		panic("infix: invalid tree node " + n.kind.String())
	}
}

// Eval is a shortcut to parse an expression and return its value.
func Eval(src io.RuneScanner) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return a.Eval()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}

// DivisionByZeroError is an error from evaluating a division whose right
// operand is exactly zero.
type DivisionByZeroError struct{}

func (err *DivisionByZeroError) Error() string {
	return "division by zero"
}

// InvalidOperatorError is an error from evaluating an operation node whose
// operator is not one of Operators.
type InvalidOperatorError struct {
	// Operator is the operator character that could not be evaluated.
	Operator rune
}

func (err *InvalidOperatorError) Error() string {
	return "invalid operator " + strconv.QuoteRune(err.Operator)
}
