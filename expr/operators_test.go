package expr

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatorTablePrecedence(t *testing.T) {
	table := NewOperatorTable()

	want := map[byte]int{
		'+': 1, '-': 1,
		'*': 2, '/': 2, '%': 2,
		'^': 3,
		'(': 4, ')': 4,
	}
	for symbol, precedence := range want {
		got, err := table.Precedence(symbol)
		require.NoError(t, err, "symbol %q", symbol)
		assert.Equal(t, precedence, got, "symbol %q", symbol)
	}

	assert.Len(t, table.Operators(), len(want))
}

func TestOperatorTableUniqueSymbols(t *testing.T) {
	seen := make(map[byte]bool)
	for _, op := range NewOperatorTable().Operators() {
		assert.False(t, seen[op.Symbol], "duplicate symbol %q", op.Symbol)
		seen[op.Symbol] = true
	}
}

func TestOperatorTableLookupUnknown(t *testing.T) {
	table := NewOperatorTable()
	for _, symbol := range []byte{'&', 'x', '1', ' '} {
		_, err := table.Lookup(symbol)
		require.Error(t, err)
		assert.True(t, IsKind(err, UnknownOperator), "symbol %q: %v", symbol, err)

		_, err = table.Precedence(symbol)
		assert.True(t, IsKind(err, UnknownOperator))
	}
}

func TestOperatorsCopy(t *testing.T) {
	table := NewOperatorTable()
	ops := table.Operators()
	ops[0].Precedence = 42

	p, err := table.Precedence('+')
	require.NoError(t, err)
	assert.Equal(t, 1, p)
}

func TestOperatorApply(t *testing.T) {
	table := NewOperatorTable()

	tests := []struct {
		symbol byte
		a, b   float64
		want   float64
	}{
		{'+', 2, 3, 5},
		{'-', 2, 3, -1},
		{'*', 2, 3, 6},
		{'/', 3, 2, 1.5},
		{'%', 9, 4, 1},
		{'%', -9, 4, -1},
		{'%', 9, -4, 1},
		{'%', 7.5, 2, 1.5},
		{'^', 2, 3, 8},
		{'^', 4, 0.5, 2},
		{'^', 2, -1, 0.5},
	}
	for _, tt := range tests {
		op, err := table.Lookup(tt.symbol)
		require.NoError(t, err)

		got, err := op.Apply(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%v %c %v", tt.a, tt.symbol, tt.b)
	}
}

func TestOperatorApplyDivisionByZero(t *testing.T) {
	table := NewOperatorTable()
	for _, symbol := range []byte{'/', '%'} {
		op, err := table.Lookup(symbol)
		require.NoError(t, err)

		v, err := op.Apply(6, 0)
		require.Error(t, err)
		assert.True(t, IsKind(err, DivisionByZero))
		assert.False(t, math.IsInf(v, 0) || math.IsNaN(v))
	}
}

func TestOperatorApplyParenthesis(t *testing.T) {
	table := NewOperatorTable()
	op, err := table.Lookup('(')
	require.NoError(t, err)
	assert.True(t, op.IsParen())

	_, err = op.Apply(1, 2)
	assert.True(t, IsKind(err, UnknownOperator))
}

func TestDefaultTableConcurrentUse(t *testing.T) {
	exprs := map[string]float64{
		"3+4*2":   11,
		"(1+2)*3": 9,
		"8/2-1":   3,
		"2^3":     8,
		"9%4":     1,
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for e, want := range exprs {
				got, err := Eval(e)
				assert.NoError(t, err)
				assert.Equal(t, want, got)
			}
		}()
	}
	wg.Wait()
}
