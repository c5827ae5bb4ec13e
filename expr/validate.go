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

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsValidCharacter reports whether c may appear in an infix expression.
func IsValidCharacter(c byte) bool {
	if isDigit(c) || isSpace(c) {
		return true
	}
	switch c {
	case '+', '-', '*', '/', '%', '^', '(', ')':
		return true
	}
	return false
}

// BalancedParentheses reports whether every ')' in expression closes a
// preceding unmatched '(' and no '(' is left open.
func BalancedParentheses(expression string) bool {
	depth := 0
	for i := 0; i < len(expression); i++ {
		switch expression[i] {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return false
			}
			depth--
		}
	}
	return depth == 0
}

// Validate checks the character set and the parenthesis balance of
// expression before it is handed to a Converter.
func Validate(expression string) error {
	for i := 0; i < len(expression); i++ {
		if !IsValidCharacter(expression[i]) {
			return newError(InvalidCharacter, "invalid character %q at offset %d", expression[i], i)
		}
	}
	if !BalancedParentheses(expression) {
		return newError(UnbalancedParentheses, "unbalanced parentheses in %q", expression)
	}
	return nil
}
