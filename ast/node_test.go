package ast

import "testing"

func TestNewNumberParsesIntVsFloat(t *testing.T) {
	i := NewNumber("42")
	if i.IsFloat || i.Int != 42 {
		t.Errorf("got IsFloat=%v Int=%d, want integer 42", i.IsFloat, i.Int)
	}

	f := NewNumber("3.5")
	if !f.IsFloat || f.Float != 3.5 {
		t.Errorf("got IsFloat=%v Float=%v, want float 3.5", f.IsFloat, f.Float)
	}
}

func TestDeepCopyProducesIndependentTree(t *testing.T) {
	original := NewList([]*Node{NewIntNumber(1), NewIntNumber(2)}, InAst)

	copy := DeepCopy(original)

	if copy == original {
		t.Fatal("DeepCopy returned the same pointer")
	}
	if copy.Tag != NotInAst {
		t.Errorf("copy.Tag = %v, want NotInAst", copy.Tag)
	}
	if len(copy.Elements) != len(original.Elements) {
		t.Fatalf("got %d elements, want %d", len(copy.Elements), len(original.Elements))
	}
	for i := range original.Elements {
		if copy.Elements[i] == original.Elements[i] {
			t.Errorf("element %d shares a pointer with the original", i)
		}
		if copy.Elements[i].Int != original.Elements[i].Int {
			t.Errorf("element %d value diverged: got %d, want %d", i, copy.Elements[i].Int, original.Elements[i].Int)
		}
	}

	original.Elements[0].Int = 999
	if copy.Elements[0].Int == 999 {
		t.Error("mutating the original mutated the copy")
	}
}

func TestDeepCopyPreservesClosureIdentity(t *testing.T) {
	type marker struct{}
	env := &marker{}

	proc := NewUserProcedure("f", nil, nil, env)
	copy := DeepCopy(proc)

	if copy.Closure != proc.Closure {
		t.Error("DeepCopy must not replace Closure - it should keep closing over the same environment")
	}
}

func TestDeepCopyNil(t *testing.T) {
	if DeepCopy(nil) != nil {
		t.Error("DeepCopy(nil) should return nil")
	}
}

func TestKindString(t *testing.T) {
	cases := []struct {
		k    Kind
		want string
	}{
		{NumberLit, "number"},
		{Procedure, "procedure"},
		{SetForm, "set!"},
		{Kind(999), "unknown"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Errorf("Kind(%d).String() = %q, want %q", c.k, got, c.want)
		}
	}
}

func TestPrintable(t *testing.T) {
	if v := NewVoid(NotInAst); Printable(v) {
		t.Error("a void node should not be printable")
	}
	if !Printable(NewIntNumber(1)) {
		t.Error("a number node should be printable")
	}
	if Printable(nil) {
		t.Error("nil should not be printable")
	}
}

func TestNewProgramInitializesTables(t *testing.T) {
	p := NewProgram(nil)
	if p.Builtins == nil || p.Addons == nil {
		t.Error("NewProgram must initialize both Builtins and Addons maps")
	}
}
