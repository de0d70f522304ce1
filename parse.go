package infix

import (
	"io"
	"strconv"
	"strings"
)

// Expr = num | Add | Sub | Mul | Div | '(' Expr ')'
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr

// Expr is a parsed expression that can be evaluated.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse reads one expression from src and builds its expression tree. The
// tree is built with the shunting-yard algorithm in a single left-to-right
// pass. Errors from invalid input implement InputError.
func Parse(src io.RuneScanner) (*Expr, error) {
	p := parser{scan: lex(src)}
	n, err := p.run()
	if err != nil {
		return nil, err
	}
	return &Expr{n: n}, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string) (*Expr, error) {
	return Parse(strings.NewReader(src))
}

// String creates a fully parenthesized representation of the parsed
// expression. The result parses to an equal expression.
func (e *Expr) String() string {
	return e.n.String()
}

// Precedence reports the binding power of an operator: 2 for * and /, 1 for
// + and -, and 0 for any other character. 0 is never a real operator; it is
// the sentinel that keeps an open bracket on the operator stack from
// outbinding anything.
func Precedence(op rune) int {
	switch op {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	default:
		return 0
	}
}

// op returns the operator character of an operator or bracket token.
func (t lexToken) op() rune {
	return rune(t.text[0])
}

// parser holds the working state of a shunting-yard parse: a stack of
// operand subtrees and a stack of unresolved operator and open bracket
// tokens. pos records the input position of each operand on nodes, for
// error reporting only.
type parser struct {
	scan  *lexer
	nodes []*node
	pos   []int
	ops   []lexToken
}

func (p *parser) run() (*node, error) {
	for {
		tok, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenNum:
			v, err := strconv.ParseFloat(tok.text, 64)
			if err != nil {
				return nil, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
			}
			p.nodes = append(p.nodes, &node{kind: nodeNum, val: v})
			p.pos = append(p.pos, tok.pos)
		case tokenOpen:
			p.ops = append(p.ops, tok)
		case tokenClose:
			for {
				if len(p.ops) == 0 {
					return nil, &BracketError{Col: tok.pos, Right: ")"}
				}
				top := p.ops[len(p.ops)-1]
				p.ops = p.ops[:len(p.ops)-1]
				if top.kind == tokenOpen {
					break
				}
				if err := p.reduce(top); err != nil {
					return nil, err
				}
			}
		case tokenOp:
			for len(p.ops) > 0 {
				top := p.ops[len(p.ops)-1]
				if top.kind == tokenOpen || Precedence(top.op()) < Precedence(tok.op()) {
					break
				}
				p.ops = p.ops[:len(p.ops)-1]
				if err := p.reduce(top); err != nil {
					return nil, err
				}
			}
			p.ops = append(p.ops, tok)
		case tokenEOF:
			for len(p.ops) > 0 {
				top := p.ops[len(p.ops)-1]
				p.ops = p.ops[:len(p.ops)-1]
				if top.kind == tokenOpen {
					return nil, &BracketError{Col: tok.pos, Left: "("}
				}
				if err := p.reduce(top); err != nil {
					return nil, err
				}
			}
			switch len(p.nodes) {
			case 0:
				return nil, &EmptyExpressionError{Col: tok.pos}
			case 1:
				return p.nodes[0], nil
			default:
				return nil, &MissingOperatorError{Col: p.pos[1]}
			}
		default:
			panic("infix: unknown token: " + tok.String())
		}
	}
}

// reduce pops the top two operands and pushes them combined under op. The
// precedence checks in run guarantee the operands reduce left to right, so
// equal precedence groups left-associatively.
func (p *parser) reduce(op lexToken) error {
	if len(p.nodes) < 2 {
		return &OperandError{Col: op.pos, Operator: op.text}
	}
	r := p.nodes[len(p.nodes)-1]
	l := p.nodes[len(p.nodes)-2]
	p.nodes = p.nodes[:len(p.nodes)-1]
	p.pos = p.pos[:len(p.pos)-1]
	p.nodes[len(p.nodes)-1] = &node{kind: nodeOp, op: op.op(), left: l, right: r}
	return nil
}
