package infix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caot/infix"
)

func TestEvalString(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"num", "7", 7},
		{"decimal", "1.5*2", 3},
		{"add", "4+5+6", 15},
		{"sub", "4-5-6", -7},
		{"mul", "4*5*6", 120},
		{"div", "4/5/8", 0.1},
		{"precedence", "2 + 3 * 4", 14},
		{"precedence2", "8 - 2 * 3", 2},
		{"precedence3", "18 / 3 + 2", 8},
		{"group", "(2 + 3) * 4", 20},
		{"groups", "(8 - 2) * (5 - 3)", 12},
		{"left-assoc", "10 - 3 - 2", 5},
		{"left-div", "8/4/2", 1},
		{"nested", "((1+2)*(3+4))", 21},
		{"mixed", "2*(3+4)-10/5", 12},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := infix.EvalString(c.src)
			require.NoError(t, err)
			assert.InDelta(t, c.want, got, 1e-9)
		})
	}
}

func TestEvalWhitespaceInsensitive(t *testing.T) {
	a, err := infix.EvalString("2+3*4")
	require.NoError(t, err)
	b, err := infix.EvalString("  2 +  3 *   4  ")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 14.0, a)
}

func TestEvalDivisionByZero(t *testing.T) {
	cases := []string{
		"5 / 0",
		"1/0.0",
		"1/(2-2)",
		"(1/0)+5",
		"2*3/0",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			// Dividing by zero is an evaluation error, never a parse error.
			a, err := infix.ParseString(src)
			require.NoError(t, err)
			_, err = a.Eval()
			require.Error(t, err)
			var dz *infix.DivisionByZeroError
			assert.ErrorAs(t, err, &dz)
		})
	}
}

func TestEvalDivisionNearZero(t *testing.T) {
	got, err := infix.EvalString("1 / 0.5")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

func TestEvalRepeatable(t *testing.T) {
	a, err := infix.ParseString("2*(3+4)-1")
	require.NoError(t, err)
	first, err := a.Eval()
	require.NoError(t, err)
	second, err := a.Eval()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 13.0, first)
}

func TestEvalParseErrors(t *testing.T) {
	cases := []string{
		"",
		"2 3",
		"(2 + 3",
		"2 + 3)",
		"2+",
		"-5",
		"2 $ 2",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			_, err := infix.EvalString(src)
			require.Error(t, err)
			var ie infix.InputError
			require.ErrorAs(t, err, &ie)
			assert.Positive(t, ie.Pos())
		})
	}
}

func BenchmarkEval(b *testing.B) {
	b.ReportAllocs()
	a, err := infix.ParseString("2*(3+4)-10/5+1.5*8")
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		if _, err := a.Eval(); err != nil {
			b.Fatal(err)
		}
	}
}
