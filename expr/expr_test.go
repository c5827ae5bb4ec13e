package expr

import "fmt"

func ExampleEval() {
	fmt.Println(Eval(""))
	fmt.Println(Eval("1s"))
	fmt.Println(Eval("(2+3"))
	fmt.Println(Eval("2+3)"))
	fmt.Println(Eval("6/0"))
	fmt.Println(Eval("2 3"))

	fmt.Println(Eval("3+4*2"))
	fmt.Println(Eval("(1+2)*3"))
	fmt.Println(Eval("8/2-1"))
	fmt.Println(Eval("2^3"))
	fmt.Println(Eval("9%4"))
	fmt.Println(Eval("2^3^2"))
	fmt.Println(Eval(" ( 1 + 2 ) * ( 3 + 4 ) "))

	// Output:
	// 0 invalid expression for evaluation (0 items left on the stack)
	// 0 invalid character 's' at offset 1
	// 0 unbalanced parentheses in "(2+3"
	// 0 unbalanced parentheses in "2+3)"
	// 0 division by zero: 6 / 0
	// 0 invalid expression for evaluation (2 items left on the stack)
	// 11 <nil>
	// 9 <nil>
	// 3 <nil>
	// 8 <nil>
	// 1 <nil>
	// 64 <nil>
	// 21 <nil>
}

func ExampleToPostfix() {
	fmt.Println(ToPostfix("3+4*2"))
	fmt.Println(ToPostfix("(1+2)*3"))
	fmt.Println(ToPostfix("8/2-1"))
	fmt.Println(ToPostfix("2^3"))
	fmt.Println(ToPostfix("9%4"))
	fmt.Println(ToPostfix("12+3"))
	fmt.Println(ToPostfix("12+3", WithMultiDigit(true)))

	// Output:
	// 3 4 2 * + <nil>
	// 1 2 + 3 * <nil>
	// 8 2 / 1 - <nil>
	// 2 3 ^ <nil>
	// 9 4 % <nil>
	// 1 2 3 + <nil>
	// 12 3 + <nil>
}

func ExampleFormatResult() {
	v, _ := Eval("8/3")
	fmt.Println(FormatResult(v))
	v, _ = Eval("100*100*100", WithMultiDigit(true))
	fmt.Println(FormatResult(v))
	v, _ = Eval("2^(0-1)")
	fmt.Println(FormatResult(v))

	// Output:
	// 2.66667
	// 1e+06
	// 0.5
}
