package util

import "testing"

func TestErrorMessageWithPosition(t *testing.T) {
	err := New(TypeError, "foo.rkt", "expected a number", 3, 7)

	want := "type error in foo.rkt: expected a number (Line:3 Pos:7)"
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestErrorMessageWithoutPosition(t *testing.T) {
	err := New(IOError, "foo.rkt", "no such file", 0, 0)

	want := "I/O error in foo.rkt: no such file"
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExitCodes(t *testing.T) {
	cases := []struct {
		cat  Category
		want int
	}{
		{IOError, 1},
		{LexError, 2},
		{ParseError, 3},
		{ResolveError, 4},
		{TypeError, 5},
		{ArityError, 6},
		{ArithmeticError, 7},
	}

	for _, c := range cases {
		if got := c.cat.ExitCode(); got != c.want {
			t.Errorf("%v.ExitCode() = %d, want %d", c.cat, got, c.want)
		}
	}
}
