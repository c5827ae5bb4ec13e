// Copyright (c) 2016 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.


package expr

import "math"

// OpKind is the closed set of operators the calculator understands.
// Parentheses are included so the converter can keep them on the same
// stack as the arithmetic operators.
type OpKind int

// OpKind values
const (
	Add OpKind = iota + 1
	Sub
	Mul
	Div
	Mod
	Pow
	LParen
	RParen
)

// Operator is one entry of an OperatorTable. Higher Precedence binds
// tighter.
type Operator struct {
	Kind       OpKind
	Symbol     byte
	Precedence int
}

func (op Operator) String() string {
	return string(op.Symbol)
}

// IsParen reports whether op is one of the parenthesis pseudo-operators.
func (op Operator) IsParen() bool {
	return op.Kind == LParen || op.Kind == RParen
}

// Apply executes the binary operation of op on a and b. Division and
// modulo by exactly zero fail with DivisionByZero instead of producing
// an infinity or NaN.
func (op Operator) Apply(a, b float64) (float64, error) {
	switch op.Kind {
	case Add:
		return a + b, nil
	case Sub:
		return a - b, nil
	case Mul:
		return a * b, nil
	case Div:
		if b == 0 {
			return 0, newError(DivisionByZero, "division by zero: %v / %v", a, b)
		}
		return a / b, nil
	case Mod:
		if b == 0 {
			return 0, newError(DivisionByZero, "division by zero: %v %% %v", a, b)
		}
		return math.Mod(a, b), nil
	case Pow:
		return math.Pow(a, b), nil
	}

	return 0, newError(UnknownOperator, "operator %q can not be applied", op.Symbol)
}

// OperatorTable is an immutable registry of operators, unique by symbol.
// It is safe for concurrent use because nothing mutates it after
// NewOperatorTable returns.
type OperatorTable struct {
	ops      []Operator
	bySymbol map[byte]int
}

// DefaultTable is shared by Eval and the command line tools.
var DefaultTable = NewOperatorTable()

// NewOperatorTable returns the table with the standard arithmetic
// operators. The parentheses carry the highest precedence, they are only
// ever matched explicitly by the converter.
func NewOperatorTable() *OperatorTable {
	t := &OperatorTable{bySymbol: make(map[byte]int)}
	t.register(Add, '+', 1)
	t.register(Sub, '-', 1)
	t.register(Mul, '*', 2)
	t.register(Div, '/', 2)
	t.register(Mod, '%', 2)
	t.register(Pow, '^', 3)
	t.register(LParen, '(', 4)
	t.register(RParen, ')', 4)
	return t
}

func (t *OperatorTable) register(kind OpKind, symbol byte, precedence int) {
	if _, ok := t.bySymbol[symbol]; ok {
		panic("duplicate operator " + string(symbol))
	}
	t.bySymbol[symbol] = len(t.ops)
	t.ops = append(t.ops, Operator{Kind: kind, Symbol: symbol, Precedence: precedence})
}

// Lookup returns the operator registered for symbol.
func (t *OperatorTable) Lookup(symbol byte) (Operator, error) {
	ix, ok := t.bySymbol[symbol]
	if !ok {
		return Operator{}, newError(UnknownOperator, "invalid operator %q", symbol)
	}
	return t.ops[ix], nil
}

// Precedence returns the precedence of the operator registered for
// symbol.
func (t *OperatorTable) Precedence(symbol byte) (int, error) {
	op, err := t.Lookup(symbol)
	if err != nil {
		return 0, err
	}
	return op.Precedence, nil
}

// IsOperator reports whether symbol is a registered non-parenthesis
// operator.
func (t *OperatorTable) IsOperator(symbol byte) bool {
	op, err := t.Lookup(symbol)
	return err == nil && !op.IsParen()
}

// Operators returns a copy of the registered operators in registration
// order.
func (t *OperatorTable) Operators() []Operator {
	ops := make([]Operator, len(t.ops))
	copy(ops, t.ops)
	return ops
}
