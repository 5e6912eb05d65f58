/*
 * rkt
 *
 * A small Scheme-family interpreter.
 */

package interpreter

import (
	"github.com/krotik/rkt/ast"
	"github.com/krotik/rkt/scope"
	"github.com/krotik/rkt/util"
)

/*
bindingEval resolves an identifier reference against env, falling back to
add-ons then built-ins. Procedures are passed through by reference so a
closure keeps its identity; every other value is deep-copied so handing it
out can never let the caller corrupt the binding it came from. A name
bound but still nil means a letrec slot whose initializer hasn't run yet;
that is a resolve error, not a nil dereference.
*/
func bindingEval(rp *RuntimeProvider, env *scope.Environment, n *ast.Node) (*ast.Node, error) {
	v, ok := env.Lookup(n.Name)
	if !ok {
		return nil, util.New(util.ResolveError, rp.Name, "unbound identifier "+n.Name, n.Line, n.Col)
	}
	if v == nil {
		return nil, util.New(util.ResolveError, rp.Name, "identifier "+n.Name+" referenced before its letrec initializer has run", n.Line, n.Col)
	}

	if v.Kind == ast.Procedure {
		return v, nil
	}
	return ast.DeepCopy(v), nil
}
