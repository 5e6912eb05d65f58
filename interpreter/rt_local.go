/*
 * rkt
 *
 * A small Scheme-family interpreter.
 */

package interpreter

import (
	"github.com/krotik/rkt/ast"
	"github.com/krotik/rkt/scope"
)

/*
localBindingEval evaluates define, let, let*, and letrec, each with its own
initializer-visibility rule: let evaluates every initializer against the
enclosing scope, let* threads each initializer through the bindings seen
so far, letrec pre-declares every name so mutually recursive lambda
bodies can see each other, and define contributes its binding to the
caller's own scope rather than opening a new one. define has no printable
result and evaluates to the void sentinel.
*/
func localBindingEval(rp *RuntimeProvider, env *scope.Environment, n *ast.Node) (*ast.Node, error) {
	switch n.LocalKind {

	case ast.Define:
		v, err := Eval(rp, env, n.DefineBinding.Value)
		if err != nil {
			return nil, err
		}
		env.Define(n.DefineBinding.Name, v)
		return ast.NewVoid(ast.NotInAst), nil

	case ast.Let:
		bindings := make([]*ast.Node, len(n.Bindings))
		for i, b := range n.Bindings {
			v, err := Eval(rp, env, b.Value)
			if err != nil {
				return nil, err
			}
			bindings[i] = ast.NewSlot(b.Name, v)
		}
		return evalBody(rp, env.Child(bindings), n.Body)

	case ast.LetStar:
		child := env.Child(nil)
		for _, b := range n.Bindings {
			v, err := Eval(rp, child, b.Value)
			if err != nil {
				return nil, err
			}
			child.Define(b.Name, v)
		}
		return evalBody(rp, child, n.Body)

	case ast.LetRec:
		child := env.Child(nil)
		for _, b := range n.Bindings {
			child.Define(b.Name, nil)
		}
		for _, b := range n.Bindings {
			v, err := Eval(rp, child, b.Value)
			if err != nil {
				return nil, err
			}
			child.Define(b.Name, v)
		}
		return evalBody(rp, child, n.Body)
	}

	panic("unreachable: unknown LocalBindingKind")
}
