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
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies why an expression failed to convert or evaluate.
type ErrorKind int

// ErrorKind values
const (
	InvalidCharacter ErrorKind = iota + 1
	UnbalancedParentheses
	UnknownOperator
	DivisionByZero
	StackUnderflow
	MalformedExpression
)

var errorKindNames = map[ErrorKind]string{
	InvalidCharacter:      "invalid-character",
	UnbalancedParentheses: "unbalanced-parentheses",
	UnknownOperator:       "unknown-operator",
	DivisionByZero:        "division-by-zero",
	StackUnderflow:        "stack-underflow",
	MalformedExpression:   "malformed-expression",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("error-kind(%d)", int(k))
}

// ParseErrorKind is the inverse of ErrorKind.String.
func ParseErrorKind(name string) (ErrorKind, error) {
	for k, n := range errorKindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, errors.Errorf("unknown error kind %q", name)
}

// Error is returned by every failing operation in this package. Callers
// that wrap it with errors.Wrap can still recover the Kind with KindOf.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the ErrorKind carried by err, looking through any
// github.com/pkg/errors wrapping.
func KindOf(err error) (ErrorKind, bool) {
	if err == nil {
		return 0, false
	}
	e, ok := errors.Cause(err).(*Error)
	if !ok {
		return 0, false
	}
	return e.Kind, true
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
