package infix

import "strconv"

// BracketError is an error indicating an unbalanced bracket in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the bracket, or of the end of the input for an
	// open bracket that was never closed.
	Col int
	// Left is the unmatched open bracket, if any.
	Left string
	// Right is the unmatched close bracket, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// OperandError is an error indicating an operator with fewer than two
// operands, e.g. "2+" or "(*3)". It implements InputError.
type OperandError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that was missing an operand.
	Operator string
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "missing operand for operator "+strconv.Quote(err.Operator))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// MissingOperatorError is an error indicating two operands with no operator
// joining them, e.g. "3 4". It implements InputError.
type MissingOperatorError struct {
	// Col is the position of the first operand left unjoined.
	Col int
}

func (err *MissingOperatorError) Error() string {
	return errpos(err.Col, "operand with no operator")
}

func (err *MissingOperatorError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an input with no expression in
// it, such as an empty string or "()". It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the expression.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*MissingOperatorError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LexError)(nil)
)
