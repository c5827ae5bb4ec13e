package scenario

import (
	"fmt"

	"github.com/Merinom02/Lab348GroupProject/expr"
)

func ExampleAssertion_is() {
	a := &Assertion{Type: AssertionTypeIs, V1: 2}
	fmt.Println(a)
	fmt.Println(a.Assert(expr.Eval("1+1")))
	fmt.Println(a.Assert(expr.Eval("1+2")))
	fmt.Println(a.Assert(expr.Eval("1/0")))

	// Output:
	// is 2
	// <nil>
	// expected 2 got 3
	// expected 2 got error: division by zero: 1 / 0
}

func ExampleAssertion_in() {
	a := &Assertion{Type: AssertionTypeIn, V1: 1, V2: 3}
	fmt.Println(a)
	fmt.Println(a.Assert(0, nil))
	fmt.Println(a.Assert(1, nil))
	fmt.Println(a.Assert(2.5, nil))
	fmt.Println(a.Assert(3, nil))
	fmt.Println(a.Assert(4, nil))

	// Output:
	// in (1,3)
	// 0 not in (1,3)
	// <nil>
	// <nil>
	// <nil>
	// 4 not in (1,3)
}

func ExampleAssertion_fails() {
	a := &Assertion{Type: AssertionTypeFails, Kind: expr.UnbalancedParentheses}
	fmt.Println(a)
	fmt.Println(a.Assert(expr.Eval("(2+3")))
	fmt.Println(a.Assert(expr.Eval("2+3")))
	fmt.Println(a.Assert(expr.Eval("2/0")))

	// Output:
	// fails unbalanced-parentheses
	// <nil>
	// expected unbalanced-parentheses got 5
	// expected unbalanced-parentheses got division-by-zero
}
