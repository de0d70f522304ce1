package infix

import (
	"strconv"
	"strings"
)

// node is a node in the expression tree. A node is either a number leaf or a
// binary operation owning exactly two children. Nodes are never modified
// after the parser builds them.
type node struct {
	kind nodeKind

	// val is the operand value of a nodeNum.
	val float64
	// op is the operator character of a nodeOp, one of Operators.
	op rune

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // leaf; evaluates to val
	nodeOp  // evaluate left, combine with right per op
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeOp:
		return "Op"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
	case nodeNum:
		// 'f' rather than 'g': the lexer has no exponent syntax, so the
		// rendering must stay in plain decimal to reparse.
		b.WriteString(strconv.FormatFloat(n.val, 'f', -1, 64))
	case nodeOp:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteRune(n.op)
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		panic("infix: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
