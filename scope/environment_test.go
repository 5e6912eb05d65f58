/*
 * rkt
 *
 * A small Scheme-family interpreter.
 */

package scope

import (
	"testing"

	"github.com/krotik/rkt/ast"
)

func testProgram() *ast.Node {
	return ast.NewProgram(nil)
}

func TestLookupWalksParentChain(t *testing.T) {
	root := NewRoot(testProgram())
	outer := root.Child([]*ast.Node{ast.NewSlot("x", ast.NewIntNumber(1))})
	inner := outer.Child([]*ast.Node{ast.NewSlot("y", ast.NewIntNumber(2))})

	if v, ok := inner.Lookup("y"); !ok || v.Int != 2 {
		t.Fatalf("expected y=2 in inner scope, got %v, %v", v, ok)
	}
	if v, ok := inner.Lookup("x"); !ok || v.Int != 1 {
		t.Fatalf("expected x=1 visible from inner scope, got %v, %v", v, ok)
	}
	if _, ok := inner.Lookup("z"); ok {
		t.Fatal("expected z to be unbound")
	}
}

func TestShadowing(t *testing.T) {
	root := NewRoot(testProgram())
	outer := root.Child([]*ast.Node{ast.NewSlot("x", ast.NewIntNumber(1))})
	inner := outer.Child([]*ast.Node{ast.NewSlot("x", ast.NewIntNumber(99))})

	if v, _ := inner.Lookup("x"); v.Int != 99 {
		t.Fatalf("expected shadowed x=99, got %v", v.Int)
	}
	if v, _ := outer.Lookup("x"); v.Int != 1 {
		t.Fatalf("outer x should be unaffected by shadowing, got %v", v.Int)
	}
}

func TestDefineAddsToOwnScope(t *testing.T) {
	root := NewRoot(testProgram())
	root.Define("x", ast.NewIntNumber(7))

	if v, ok := root.Lookup("x"); !ok || v.Int != 7 {
		t.Fatalf("expected x=7 after define, got %v, %v", v, ok)
	}
}

func TestSetMutatesExistingBinding(t *testing.T) {
	root := NewRoot(testProgram())
	outer := root.Child([]*ast.Node{ast.NewSlot("x", ast.NewIntNumber(1))})
	inner := outer.Child(nil)

	if !inner.Set("x", ast.NewIntNumber(2)) {
		t.Fatal("expected set! to find x in an enclosing scope")
	}
	if v, _ := outer.Lookup("x"); v.Int != 2 {
		t.Fatalf("expected outer x mutated to 2, got %v", v.Int)
	}
	if v, _ := inner.Lookup("x"); v.Int != 2 {
		t.Fatalf("expected inner lookup to see mutated value, got %v", v.Int)
	}
}

func TestSetUnboundFails(t *testing.T) {
	root := NewRoot(testProgram())
	if root.Set("nope", ast.NewIntNumber(1)) {
		t.Fatal("expected set! of an unbound name to fail")
	}
}

func TestReentrantChildScopesDoNotInterfere(t *testing.T) {
	root := NewRoot(testProgram())

	var envs []*Environment
	for i := 0; i < 100; i++ {
		envs = append(envs, root.Child([]*ast.Node{ast.NewSlot("n", ast.NewIntNumber(int64(i)))}))
	}

	for i, e := range envs {
		v, ok := e.Lookup("n")
		if !ok || v.Int != int64(i) {
			t.Fatalf("call %d: expected n=%d, got %v, %v", i, i, v, ok)
		}
	}
}

func TestBuiltinFallback(t *testing.T) {
	prog := ast.NewProgram(nil)
	plus := ast.NewNativeProcedure("+", 0, true, nil, ast.BuiltIn)
	prog.Builtins["+"] = plus

	root := NewRoot(prog)
	child := root.Child([]*ast.Node{ast.NewSlot("x", ast.NewIntNumber(1))})

	if v, ok := child.Lookup("+"); !ok || v != plus {
		t.Fatal("expected + to resolve to the builtin procedure")
	}
}
