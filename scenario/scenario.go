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
	"io"
	"strings"

	"github.com/Merinom02/Lab348GroupProject/expr"
)

// A Scenario is a named list of checks, one per expression. Scenarios
// with a runs table are expanded into one Scenario per run.
type Scenario struct {
	Name       string
	Desc       string
	MultiDigit bool

	Checks []*Check
}

// Check evaluates a single expression and holds the optional assertion
// on its outcome.
type Check struct {
	Expression string
	Assertion  *Assertion
}

func (c *Check) String() string {
	strs := []string{c.Expression}
	if c.Assertion != nil {
		strs = append(strs, c.Assertion.String())
	}
	return strings.Join(strs, " ")
}

// Result is the outcome of running a Check. Failure is set when the
// outcome did not satisfy the assertion.
type Result struct {
	Check   *Check
	Value   float64
	Err     error
	Failure error
}

// Run evaluates every check of the scenario in order.
func (s *Scenario) Run() []Result {
	var opts []expr.ConverterOption
	if s.MultiDigit {
		opts = append(opts, expr.WithMultiDigit(true))
	}

	results := make([]Result, len(s.Checks))
	for i, c := range s.Checks {
		v, err := expr.Eval(c.Expression, opts...)
		results[i] = Result{
			Check:   c,
			Value:   v,
			Err:     err,
			Failure: c.Assertion.Assert(v, err),
		}
	}
	return results
}

const tableLine = "+---------+--------------------------------------+"

// Report runs the scenario and writes the results as a table to w. It
// returns whether all assertions held.
func (s *Scenario) Report(w io.Writer) bool {
	success := true

	fmt.Fprintln(w, tableLine)
	fmt.Fprintf(w, "| %-46s |\n", s.Name)
	if s.Desc != "" {
		fmt.Fprintf(w, "| %-46s |\n", s.Desc)
	}
	fmt.Fprintln(w, "|---------+--------------------------------------|")

	for _, r := range s.Run() {
		value := "error"
		if r.Err == nil {
			value = expr.FormatResult(r.Value)
		}

		line := fmt.Sprintf("|%8v | %-37v|", value, r.Check)
		if r.Failure != nil {
			line += fmt.Sprintf(" FAILED %v", r.Failure)
			success = false
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, tableLine)

	return success
}
