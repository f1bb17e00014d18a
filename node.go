package safecalc

import (
	"bytes"
	"fmt"
	"strconv"
)

// Operator is an arithmetic operator symbol.
type Operator rune

const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
	OpMul Operator = '*'
	OpDiv Operator = '/'
)

func (o Operator) String() string {
	return string(rune(o))
}

// Node is a syntax tree node. The only implementations are *NumberLit,
// *UnaryExpr and *BinaryExpr.
type Node interface {
	fmt.Stringer
	node()
}

type NumberLit struct {
	Value float64
}

type UnaryExpr struct {
	Op      Operator
	Operand Node
}

type BinaryExpr struct {
	Op    Operator
	Left  Node
	Right Node
}

func (*NumberLit) node()  {}
func (*UnaryExpr) node()  {}
func (*BinaryExpr) node() {}

func (n *NumberLit) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n *UnaryExpr) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "(%v %v)", n.Op, n.Operand)
	return buf.String()
}

func (n *BinaryExpr) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "(%v %v %v)", n.Op, n.Left, n.Right)
	return buf.String()
}
