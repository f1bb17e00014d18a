package safecalc

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestEval(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{input: "2 + 3 * 4", want: 14},
		{input: "(2 + 3) * 4", want: 20},
		{input: "10 - 4 - 3", want: 3},
		{input: "100 / 10 / 5", want: 2},
		{input: "7 / 2", want: 3.5},
		{input: "1 / 4 + .25", want: 0.5},
		{input: "--5", want: 5},
		{input: "-+5", want: -5},
		{input: "+-+-3", want: 3},
		{input: "-(2 + 3) * 2", want: -10},
		{input: "2 * (3 + (4 - 1)) / 3", want: 4},
		{input: "007", want: 7},
	}
	for _, test := range tests {
		got, err := Eval(test.input)
		require.NoError(t, err, test.input)
		assert.Equal(t, test.want, got, test.input)
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	for _, input := range []string{"1/0", "5/(2-2)", "1/-0", "0/0", "1/(0.0*7)", "1 + 2/0 * 3"} {
		_, err := Eval(input)
		assert.ErrorIs(t, err, ErrDivisionByZero, input)
	}
}

func TestEvalOverflow(t *testing.T) {
	big := "1" + strings.Repeat("0", 300)
	for _, input := range []string{big + "*" + big, big + "/0.00000000001", "-" + big + "*" + big} {
		_, err := Eval(input)
		assert.ErrorIs(t, err, ErrOverflow, input)
	}
}

func TestEvalParseErrorsPassThrough(t *testing.T) {
	_, err := Eval("")
	assert.ErrorIs(t, err, ErrIncompleteExpression)

	_, err = Eval("2^3")
	var uerr *UnexpectedTokenError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "unexpected token: '^' (1)", uerr.Error())
}

func TestEvaluateInvalidNode(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{node: nil, want: "invalid node: <nil>"},
		{
			node: &UnaryExpr{Op: OpMul, Operand: &NumberLit{Value: 1}},
			want: "invalid node: unary operator '*'",
		},
		{
			node: &BinaryExpr{Op: '^', Left: &NumberLit{Value: 2}, Right: &NumberLit{Value: 3}},
			want: "invalid node: binary operator '^'",
		},
		{
			node: &BinaryExpr{Op: OpAdd, Left: &NumberLit{Value: 2}, Right: nil},
			want: "invalid node: <nil>",
		},
	}
	for _, test := range tests {
		_, err := Evaluate(test.node)
		var ierr *InvalidNodeError
		require.ErrorAs(t, err, &ierr)
		assert.EqualError(t, err, test.want)
	}
}

func TestEvalIdempotent(t *testing.T) {
	const input = "(1.5 + 2) * -3 / 7"
	first, err := Eval(input)
	require.NoError(t, err)
	second, err := Eval(input)
	require.NoError(t, err)
	assert.Equal(t, math.Float64bits(first), math.Float64bits(second))

	node, err := Parse(input)
	require.NoError(t, err)
	a, err := Evaluate(node)
	require.NoError(t, err)
	b, err := Evaluate(node)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, first, a)
}

func TestEvalConcurrent(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 64; i++ {
		i := i
		g.Go(func() error {
			input := fmt.Sprintf("(%d + 1) * 2 - %d / 4", i, i)
			want := float64(i+1)*2 - float64(i)/4
			got, err := Eval(input)
			if err != nil {
				return err
			}
			if got != want {
				return fmt.Errorf("%q: want %v but got %v", input, want, got)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
