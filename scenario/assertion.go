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


package scenario

import (
	"fmt"
	"math"

	"github.com/Merinom02/Lab348GroupProject/expr"
	"github.com/pkg/errors"
)

type AssertionType string

const (
	AssertionTypeIs    AssertionType = "is"
	AssertionTypeIn    AssertionType = "in"
	AssertionTypeFails AssertionType = "fails"
)

// Assertion is the expected outcome of a check. Is and In compare the
// result value against V1 (and V2), Fails expects an error of Kind.
type Assertion struct {
	Type AssertionType
	V1   float64
	V2   float64
	Kind expr.ErrorKind
}

func (a *Assertion) String() string {
	if a == nil {
		return ""
	}
	switch a.Type {
	case AssertionTypeIs:
		return fmt.Sprintf("is %v", a.V1)
	case AssertionTypeIn:
		return fmt.Sprintf("in (%v,%v)", a.V1, a.V2)
	case AssertionTypeFails:
		return fmt.Sprintf("fails %v", a.Kind)
	}

	return fmt.Sprintf("unknown assertion %q", string(a.Type))
}

// Assert returns nil when the outcome of an evaluation, v or err,
// satisfies the assertion. A nil assertion accepts everything.
func (a *Assertion) Assert(v float64, err error) error {
	if a == nil {
		return nil
	}

	switch a.Type {
	case AssertionTypeIs:
		if err != nil {
			return errors.Errorf("expected %v got error: %v", a.V1, err)
		}
		if !almostEqual(v, a.V1) {
			return errors.Errorf("expected %v got %v", a.V1, v)
		}
		return nil

	case AssertionTypeIn:
		if err != nil {
			return errors.Errorf("expected value in (%v,%v) got error: %v", a.V1, a.V2, err)
		}
		if v < a.V1 || v > a.V2 {
			return errors.Errorf("%v not in (%v,%v)", v, a.V1, a.V2)
		}
		return nil

	case AssertionTypeFails:
		if err == nil {
			return errors.Errorf("expected %v got %v", a.Kind, v)
		}
		kind, ok := expr.KindOf(err)
		if !ok {
			return errors.Wrapf(err, "expected %v got untyped error", a.Kind)
		}
		if kind != a.Kind {
			return errors.Errorf("expected %v got %v", a.Kind, kind)
		}
		return nil
	}

	return errors.Errorf("assertion type must be 'is', 'in' or 'fails' but is %q", string(a.Type))
}

func almostEqual(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Abs(b))
}
