package safecalc

import (
	"math"
)

// Eval parses and evaluates input.
func Eval(input string) (float64, error) {
	node, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Evaluate(node)
}

// Evaluate computes the value of a tree built by Parse.
func Evaluate(node Node) (float64, error) {
	switch n := node.(type) {
	case *NumberLit:
		return n.Value, nil
	case *UnaryExpr:
		v, err := Evaluate(n.Operand)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case OpAdd:
			return v, nil
		case OpSub:
			return -v, nil
		}
	case *BinaryExpr:
		return evalBinary(n)
	}
	return 0, &InvalidNodeError{Node: node}
}

func evalBinary(n *BinaryExpr) (float64, error) {
	lhs, err := Evaluate(n.Left)
	if err != nil {
		return 0, err
	}
	rhs, err := Evaluate(n.Right)
	if err != nil {
		return 0, err
	}

	var ret float64
	switch n.Op {
	case OpAdd:
		ret = lhs + rhs
	case OpSub:
		ret = lhs - rhs
	case OpMul:
		ret = lhs * rhs
	case OpDiv:
		if rhs == 0 {
			return 0, ErrDivisionByZero
		}
		ret = lhs / rhs
	default:
		return 0, &InvalidNodeError{Node: n}
	}
	if math.IsInf(ret, 0) || math.IsNaN(ret) {
		return 0, ErrOverflow
	}
	return ret, nil
}
