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


// Package expr evaluates infix arithmetic expressions. An expression is
// validated, converted to postfix order with the shunting-yard algorithm
// and reduced on a value stack, e.g.
//
//	"3+4*2" -> "3 4 2 * +" -> 11
//
// Numbers are single digits unless WithMultiDigit is given. All
// operators, '^' included, are left associative.
package expr

import "strconv"

// ToPostfix validates expression and converts it with DefaultTable.
func ToPostfix(expression string, opts ...ConverterOption) (Postfix, error) {
	if err := Validate(expression); err != nil {
		return nil, err
	}
	return NewConverter(DefaultTable, opts...).ToPostfix(expression)
}

// Eval evaluates expression to a float64. It can be used as a simple
// calculator, e.g. `"2+3*4" -> 14.0`.
func Eval(expression string, opts ...ConverterOption) (float64, error) {
	postfix, err := ToPostfix(expression, opts...)
	if err != nil {
		return 0, err
	}
	return NewEvaluator(DefaultTable).Evaluate(postfix)
}

// FormatResult renders v with six significant digits, "8/3" is printed
// as 2.66667 and one million as 1e+06.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
