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

// Converter turns infix expressions into postfix form with the
// shunting-yard algorithm.
type Converter struct {
	table      *OperatorTable
	multiDigit bool
}

// ConverterOption configures a Converter.
type ConverterOption func(*Converter)

// WithMultiDigit makes the converter read a run of digits as one number.
// Without it every digit is its own operand, so "12" converts to "1 2".
func WithMultiDigit(enabled bool) ConverterOption {
	return func(c *Converter) {
		c.multiDigit = enabled
	}
}

// NewConverter returns a Converter that looks up operators in t.
func NewConverter(t *OperatorTable, opts ...ConverterOption) *Converter {
	c := &Converter{table: t}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ToPostfix converts expression to postfix order. Operators of equal
// precedence are popped before the new one is pushed, so every operator,
// '^' included, associates to the left.
func (c *Converter) ToPostfix(expression string) (Postfix, error) {
	var (
		output Postfix
		stack  []Operator
	)

	for i := 0; i < len(expression); i++ {
		ch := expression[i]

		if isDigit(ch) {
			j := i + 1
			if c.multiDigit {
				for j < len(expression) && isDigit(expression[j]) {
					j++
				}
			}
			output = append(output, NumberItem(digitsValue(expression[i:j])))
			i = j - 1
			continue
		}
		if isSpace(ch) {
			continue
		}

		op, err := c.table.Lookup(ch)
		if err != nil {
			return nil, newError(InvalidCharacter, "invalid character %q at offset %d", ch, i)
		}

		switch op.Kind {
		case LParen:
			stack = append(stack, op)

		case RParen:
			for {
				if len(stack) == 0 {
					return nil, newError(UnbalancedParentheses, "unmatched ')' at offset %d", i)
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == LParen {
					break
				}
				output = append(output, OperatorItem(top))
			}

		default:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == LParen || top.Precedence < op.Precedence {
					break
				}
				stack = stack[:len(stack)-1]
				output = append(output, OperatorItem(top))
			}
			stack = append(stack, op)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == LParen {
			return nil, newError(UnbalancedParentheses, "unmatched '(' in %q", expression)
		}
		output = append(output, OperatorItem(top))
	}

	return output, nil
}

// digitsValue converts a non-empty run of ASCII digits.
func digitsValue(digits string) float64 {
	v := 0.0
	for i := 0; i < len(digits); i++ {
		v = v*10 + float64(digits[i]-'0')
	}
	return v
}
