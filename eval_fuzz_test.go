//go:build go1.18
// +build go1.18

package infix_test

import (
	"testing"

	"github.com/caot/infix"
)

func FuzzEval(f *testing.F) {
	f.Add("2+3*4")
	f.Add("5 / 0")
	f.Add("((1+2)*(3+4))")
	f.Fuzz(func(t *testing.T, s string) {
		infix.EvalString(s)
	})
}
