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

// Evaluator reduces postfix sequences to a single value.
type Evaluator struct {
	table *OperatorTable
}

// NewEvaluator returns an Evaluator that applies the operators of t.
func NewEvaluator(t *OperatorTable) *Evaluator {
	return &Evaluator{table: t}
}

// Evaluate runs postfix on a value stack. For every operator the most
// recently pushed value is the right hand operand. The sequence must
// reduce to exactly one value.
func (e *Evaluator) Evaluate(postfix Postfix) (float64, error) {
	stack := make([]float64, 0, len(postfix))

	for _, it := range postfix {
		if !it.IsOp {
			stack = append(stack, it.Number)
			continue
		}

		if len(stack) < 2 {
			return 0, newError(StackUnderflow, "operator %q needs two operands, have %d", it.Op.Symbol, len(stack))
		}
		operand2 := stack[len(stack)-1]
		operand1 := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		op, err := e.table.Lookup(it.Op.Symbol)
		if err != nil {
			return 0, err
		}
		result, err := op.Apply(operand1, operand2)
		if err != nil {
			return 0, err
		}
		stack = append(stack, result)
	}

	if len(stack) != 1 {
		return 0, newError(MalformedExpression,
			"invalid expression for evaluation (%d items left on the stack)", len(stack))
	}
	return stack[0], nil
}
