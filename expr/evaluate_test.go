package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	table := NewOperatorTable()
	e := NewEvaluator(table)

	tests := []struct {
		postfix string
		want    float64
	}{
		{"3 4 2 * +", 11},
		{"1 2 + 3 *", 9},
		{"8 2 / 1 -", 3},
		{"2 3 ^", 8},
		{"9 4 %", 1},
		{"7", 7},
		{"5 2 -", 3},
		{"1 2 /", 0.5},
		{"12 30 +", 42},
	}
	for _, tt := range tests {
		p, err := ParsePostfix(table, tt.postfix)
		require.NoError(t, err, tt.postfix)

		got, err := e.Evaluate(p)
		require.NoError(t, err, tt.postfix)
		assert.Equal(t, tt.want, got, tt.postfix)
	}
}

func TestEvaluateErrors(t *testing.T) {
	table := NewOperatorTable()
	e := NewEvaluator(table)

	tests := []struct {
		postfix string
		kind    ErrorKind
	}{
		{"+", StackUnderflow},
		{"1 +", StackUnderflow},
		{"1 2 + *", StackUnderflow},
		{"2 3", MalformedExpression},
		{"", MalformedExpression},
		{"6 0 /", DivisionByZero},
		{"6 0 %", DivisionByZero},
		{"1 1 1 - /", DivisionByZero},
	}
	for _, tt := range tests {
		p, err := ParsePostfix(table, tt.postfix)
		require.NoError(t, err, tt.postfix)

		_, err = e.Evaluate(p)
		require.Error(t, err, tt.postfix)
		assert.Equal(t, tt.kind, mustKind(t, err), tt.postfix)
	}
}

func TestEvaluateUnknownOperator(t *testing.T) {
	p := Postfix{
		NumberItem(1),
		NumberItem(2),
		OperatorItem(Operator{Kind: Add, Symbol: '&', Precedence: 1}),
	}
	_, err := NewEvaluator(NewOperatorTable()).Evaluate(p)
	assert.True(t, IsKind(err, UnknownOperator), "%v", err)
}

func TestParsePostfixErrors(t *testing.T) {
	table := NewOperatorTable()

	tests := []struct {
		postfix string
		kind    ErrorKind
	}{
		{"1 2 x", InvalidCharacter},
		{"1 2 ++", InvalidCharacter},
		{"1.5", InvalidCharacter},
		{"1 ( 2", MalformedExpression},
	}
	for _, tt := range tests {
		_, err := ParsePostfix(table, tt.postfix)
		require.Error(t, err, tt.postfix)
		assert.Equal(t, tt.kind, mustKind(t, err), tt.postfix)
	}
}

func TestConvertThenEvaluate(t *testing.T) {
	table := NewOperatorTable()
	c := NewConverter(table)
	e := NewEvaluator(table)

	tests := map[string]float64{
		"1+2*3-4/2":       5,
		"(1+2)*(3+4)":     21,
		"9-3-2":           4,
		"8/4/2":           1,
		"2^3^2":           64,
		"(2^3)^2":         64,
		"2^(3^2)":         512,
		"9%4*2":           2,
		"2*(3+(4-1))^2":   72,
		"((((5))))":       5,
		"7-(2-(1-9))":     -3,
		"1+2+3+4+5+6+7+8": 36,
	}
	for infix, want := range tests {
		p, err := c.ToPostfix(infix)
		require.NoError(t, err, infix)

		got, err := e.Evaluate(p)
		require.NoError(t, err, infix)
		assert.Equal(t, want, got, infix)
	}
}
