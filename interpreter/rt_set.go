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
setEval evaluates set!, mutating an already-bound identifier. Assigning to
a name that was never defined is a ResolveError, same as referencing one.
set! has no printable result and evaluates to the void sentinel.
*/
func setEval(rp *RuntimeProvider, env *scope.Environment, n *ast.Node) (*ast.Node, error) {
	v, err := Eval(rp, env, n.SetExpr)
	if err != nil {
		return nil, err
	}

	if !env.Set(n.SetName, v) {
		return nil, util.New(util.ResolveError, rp.Name, "set! of unbound identifier "+n.SetName, n.Line, n.Col)
	}

	return ast.NewVoid(ast.NotInAst), nil
}
