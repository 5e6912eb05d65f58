/*
 * rkt
 *
 * A small Scheme-family interpreter.
 */

package parser

import (
	"strings"
	"testing"

	"github.com/krotik/rkt/ast"
)

func mustParse(t *testing.T, src string) *ast.Node {
	t.Helper()
	n, err := Parse("test", strings.Split(src, "\n"))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestMissingLangDirective(t *testing.T) {
	_, err := Parse("test", []string{"(+ 1 2)"})
	if err == nil || !strings.Contains(err.Error(), "#lang racket") {
		t.Fatalf("expected #lang error, got %v", err)
	}
}

func TestLiterals(t *testing.T) {
	prog := mustParse(t, `#lang racket
42
3.5
#t
#f
"hi"
#\a
null
empty`)

	body := prog.ProgramBody
	if len(body) != 8 {
		t.Fatalf("expected 8 top-level forms, got %d", len(body))
	}

	if body[0].Kind != ast.NumberLit || body[0].IsFloat || body[0].Int != 42 {
		t.Errorf("bad integer literal: %+v", body[0])
	}
	if body[1].Kind != ast.NumberLit || !body[1].IsFloat || body[1].Float != 3.5 {
		t.Errorf("bad float literal: %+v", body[1])
	}
	if body[2].Kind != ast.BoolLit || !body[2].Bool {
		t.Errorf("bad #t literal: %+v", body[2])
	}
	if body[3].Kind != ast.BoolLit || body[3].Bool {
		t.Errorf("bad #f literal: %+v", body[3])
	}
	if body[4].Kind != ast.StringLit || body[4].Text != "hi" {
		t.Errorf("bad string literal: %+v", body[4])
	}
	if body[5].Kind != ast.CharLit || body[5].Char != 'a' {
		t.Errorf("bad char literal: %+v", body[5])
	}
	if body[6].Kind != ast.NullExpr {
		t.Errorf("expected null literal, got %+v", body[6])
	}
	if body[7].Kind != ast.EmptyExpr {
		t.Errorf("expected empty literal, got %+v", body[7])
	}
}

func TestNamedCall(t *testing.T) {
	prog := mustParse(t, "#lang racket\n(+ 1 2)")
	call := prog.ProgramBody[0]

	if call.Kind != ast.CallExpr || call.CalleeName != "+" || len(call.Args) != 2 {
		t.Fatalf("bad call node: %+v", call)
	}
}

func TestAnonymousCall(t *testing.T) {
	prog := mustParse(t, "#lang racket\n((lambda (x) x) 5)")
	call := prog.ProgramBody[0]

	if call.Kind != ast.CallExpr || call.CalleeName != "" || call.Callee == nil {
		t.Fatalf("bad anonymous call node: %+v", call)
	}
	if call.Callee.Kind != ast.LambdaForm {
		t.Fatalf("callee must be a lambda, got %+v", call.Callee)
	}
}

func TestAnonymousCallRejectsNonLambdaHead(t *testing.T) {
	_, err := Parse("test", []string{"#lang racket", "((+ 1 2) 3)"})
	if err == nil || !strings.Contains(err.Error(), "lambda") {
		t.Fatalf("expected a lambda-head error, got %v", err)
	}
}

func TestLet(t *testing.T) {
	prog := mustParse(t, "#lang racket\n(let ([x 1] [y 2]) (+ x y))")
	let := prog.ProgramBody[0]

	if let.Kind != ast.LocalBinding || let.LocalKind != ast.Let {
		t.Fatalf("bad let node: %+v", let)
	}
	if len(let.Bindings) != 2 || let.Bindings[0].Name != "x" || let.Bindings[1].Name != "y" {
		t.Fatalf("bad let bindings: %+v", let.Bindings)
	}
	if len(let.Body) != 1 {
		t.Fatalf("bad let body: %+v", let.Body)
	}
}

func TestLetStarAndLetRec(t *testing.T) {
	prog := mustParse(t, "#lang racket\n(let* ([x 1]) x)\n(letrec ([x 1]) x)")
	if prog.ProgramBody[0].LocalKind != ast.LetStar {
		t.Error("expected let*")
	}
	if prog.ProgramBody[1].LocalKind != ast.LetRec {
		t.Error("expected letrec")
	}
}

func TestDefine(t *testing.T) {
	prog := mustParse(t, "#lang racket\n(define x 10)")
	def := prog.ProgramBody[0]

	if def.Kind != ast.LocalBinding || def.LocalKind != ast.Define {
		t.Fatalf("bad define node: %+v", def)
	}
	if def.DefineBinding.Name != "x" || def.DefineBinding.Value.Int != 10 {
		t.Fatalf("bad define binding: %+v", def.DefineBinding)
	}
}

func TestLambda(t *testing.T) {
	prog := mustParse(t, "#lang racket\n(lambda (x y) (+ x y))")
	lam := prog.ProgramBody[0]

	if lam.Kind != ast.LambdaForm || len(lam.Params) != 2 {
		t.Fatalf("bad lambda node: %+v", lam)
	}
	if lam.Params[0].Name != "x" || lam.Params[1].Name != "y" {
		t.Fatalf("bad lambda params: %+v", lam.Params)
	}
}

func TestIf(t *testing.T) {
	prog := mustParse(t, "#lang racket\n(if #t 1 2)")
	ifNode := prog.ProgramBody[0]

	if ifNode.Kind != ast.ConditionalForm || ifNode.CondKind != ast.If {
		t.Fatalf("bad if node: %+v", ifNode)
	}
	if ifNode.Test.Bool != true || ifNode.Then.Int != 1 || ifNode.ElseExpr.Int != 2 {
		t.Fatalf("bad if payload: %+v", ifNode)
	}
}

func TestAndOrNot(t *testing.T) {
	prog := mustParse(t, "#lang racket\n(and 1 2)\n(or 1 2)\n(not #t)")

	if prog.ProgramBody[0].CondKind != ast.And || len(prog.ProgramBody[0].Exprs) != 2 {
		t.Error("bad and node")
	}
	if prog.ProgramBody[1].CondKind != ast.Or || len(prog.ProgramBody[1].Exprs) != 2 {
		t.Error("bad or node")
	}
	if prog.ProgramBody[2].CondKind != ast.Not || prog.ProgramBody[2].NotExpr.Bool != true {
		t.Error("bad not node")
	}
}

func TestCond(t *testing.T) {
	prog := mustParse(t, "#lang racket\n(cond [(= 1 1) 10] [else 20])")
	cond := prog.ProgramBody[0]

	if cond.Kind != ast.ConditionalForm || cond.CondKind != ast.Cond || len(cond.Clauses) != 2 {
		t.Fatalf("bad cond node: %+v", cond)
	}
	if cond.Clauses[0].ClauseKind != ast.TestThen {
		t.Error("expected test-then clause first")
	}
	if cond.Clauses[1].ClauseKind != ast.ElseClause {
		t.Error("expected else clause last")
	}
}

func TestCondElseMustBeLast(t *testing.T) {
	_, err := Parse("test", []string{"#lang racket", "(cond [else 1] [(= 1 1) 2])"})
	if err == nil || !strings.Contains(err.Error(), "else clause must be") {
		t.Fatalf("expected else-must-be-last error, got %v", err)
	}
}

func TestSet(t *testing.T) {
	prog := mustParse(t, "#lang racket\n(set! x 5)")
	set := prog.ProgramBody[0]

	if set.Kind != ast.SetForm || set.SetName != "x" || set.SetExpr.Int != 5 {
		t.Fatalf("bad set! node: %+v", set)
	}
}

func TestQuotedListAndPair(t *testing.T) {
	prog := mustParse(t, "#lang racket\n'(1 2 3)\n'(1 . 2)\n'()")

	list := prog.ProgramBody[0]
	if list.Kind != ast.ListLit || len(list.Elements) != 3 {
		t.Fatalf("bad quoted list: %+v", list)
	}

	pair := prog.ProgramBody[1]
	if pair.Kind != ast.PairLit || len(pair.Elements) != 2 {
		t.Fatalf("bad quoted pair: %+v", pair)
	}
	if pair.Elements[0].Int != 1 || pair.Elements[1].Int != 2 {
		t.Fatalf("bad quoted pair elements: %+v", pair.Elements)
	}

	null := prog.ProgramBody[2]
	if null.Kind != ast.ListLit || len(null.Elements) != 0 {
		t.Fatalf("bad quoted empty list: %+v", null)
	}
}

func TestQuotedNestedList(t *testing.T) {
	prog := mustParse(t, "#lang racket\n'(1 (2 3) 4)")
	list := prog.ProgramBody[0]

	if len(list.Elements) != 3 {
		t.Fatalf("bad nested quoted list: %+v", list)
	}
	nested := list.Elements[1]
	if nested.Kind != ast.ListLit || len(nested.Elements) != 2 {
		t.Fatalf("bad nested element: %+v", nested)
	}
}

func TestUnterminatedForm(t *testing.T) {
	_, err := Parse("test", []string{"#lang racket", "(+ 1 2"})
	if err == nil {
		t.Fatal("expected a parse error for an unterminated form")
	}
}
