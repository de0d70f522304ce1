package infix_test

import (
	"fmt"

	"github.com/caot/infix"
)

func Example() {
	a, _ := infix.ParseString("2 + 3 * (4 - 1)")
	r, _ := a.Eval()
	fmt.Println(a, "=", r)

	// Output:
	// (2 + (3 * (4 - 1))) = 11
}

func ExampleEvalString() {
	r, err := infix.EvalString("10 - 3 - 2")
	fmt.Println(r, err)

	r, err = infix.EvalString("5 / 0")
	fmt.Println(r, err)

	// Output:
	// 5 <nil>
	// 0 division by zero
}
