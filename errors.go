package safecalc

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompleteExpression is returned when the input ends where more of
	// an expression is required.
	ErrIncompleteExpression = errors.New("incomplete expression")

	// ErrDivisionByZero is returned when the right operand of '/' is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow is returned when an operation leaves the finite float64 range.
	ErrOverflow = errors.New("numeric overflow")
)

// UnexpectedTokenError reports a character the grammar does not allow at
// its position.
type UnexpectedTokenError struct {
	Offset int // byte offset in the input
	Char   rune
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token: '%c' (%d)", e.Char, e.Offset)
}

// RangeError reports a numeric literal too large for float64.
type RangeError struct {
	Offset  int
	Literal string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("number out of range: %q (%d)", e.Literal, e.Offset)
}

// InvalidNodeError is returned by Evaluate for a node the parser never builds.
type InvalidNodeError struct {
	Node Node
}

func (e *InvalidNodeError) Error() string {
	switch n := e.Node.(type) {
	case *UnaryExpr:
		return fmt.Sprintf("invalid node: unary operator %q", rune(n.Op))
	case *BinaryExpr:
		return fmt.Sprintf("invalid node: binary operator %q", rune(n.Op))
	}
	return fmt.Sprintf("invalid node: %T", e.Node)
}
