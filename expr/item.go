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

import (
	"strconv"
	"strings"
)

// Item is a single token of an infix or postfix sequence: either a
// number or a reference to an operator of an OperatorTable.
type Item struct {
	Number float64
	Op     Operator
	IsOp   bool
}

// NumberItem returns an Item holding v.
func NumberItem(v float64) Item {
	return Item{Number: v}
}

// OperatorItem returns an Item holding op.
func OperatorItem(op Operator) Item {
	return Item{Op: op, IsOp: true}
}

func (it Item) String() string {
	if it.IsOp {
		return it.Op.String()
	}
	return strconv.FormatFloat(it.Number, 'g', -1, 64)
}

// Postfix is a token sequence in reverse polish order.
type Postfix []Item

// String renders the sequence with single spaces between the tokens,
// e.g. "3 4 2 * +".
func (p Postfix) String() string {
	strs := make([]string, len(p))
	for i, it := range p {
		strs[i] = it.String()
	}
	return strings.Join(strs, " ")
}

// ParsePostfix reads a whitespace separated postfix expression such as
// "3 4 2 * +". Operators must be registered in t; parentheses have no
// meaning in postfix form and are rejected.
func ParsePostfix(t *OperatorTable, text string) (Postfix, error) {
	var p Postfix
	for _, field := range strings.Fields(text) {
		if isDigits(field) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, newError(MalformedExpression, "bad number %q: %v", field, err)
			}
			p = append(p, NumberItem(v))
			continue
		}

		if len(field) != 1 {
			return nil, newError(InvalidCharacter, "invalid token %q in postfix expression", field)
		}
		op, err := t.Lookup(field[0])
		if err != nil {
			return nil, newError(InvalidCharacter, "invalid token %q in postfix expression", field)
		}
		if op.IsParen() {
			return nil, newError(MalformedExpression, "parenthesis %q in postfix expression", field)
		}
		p = append(p, OperatorItem(op))
	}
	return p, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
