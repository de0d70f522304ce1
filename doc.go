// Package infix implements a small infix arithmetic calculator.
//
// An expression is made of decimal numbers, the binary operators + - * /,
// and round brackets. "3+4" and "  3 + 4  " parse the same; numbers need no
// whitespace around them. Parse builds an immutable expression tree with the
// shunting-yard algorithm, so * and / bind tighter than + and -, and
// operators of equal precedence group from the left: "10 - 3 - 2" is
// "(10 - 3) - 2".
//
// There are no unary operators, variables, or functions. Evaluation is plain
// float64 arithmetic; dividing by exactly zero is an error rather than an
// infinity. Evaluation recurses through the tree, whose depth is bounded by
// the length of the input; no explicit bound is placed on it.
package infix
