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
literalEval evaluates a self-evaluating node: numbers, strings,
characters, booleans and the null/empty constants. A node still tagged
InAst is copied before it is handed to the caller - it must never let a
mutation reach the parsed tree.
*/
func literalEval(rp *RuntimeProvider, env *scope.Environment, n *ast.Node) (*ast.Node, error) {
	if n.Tag == ast.InAst {
		return ast.DeepCopy(n), nil
	}
	return n, nil
}

/*
procedureEval evaluates a Procedure value referenced directly (e.g. a
builtin looked up and returned as-is). Procedures are shared, never
copied: closures must keep pointing at the environment they captured.
*/
func procedureEval(rp *RuntimeProvider, env *scope.Environment, n *ast.Node) (*ast.Node, error) {
	return n, nil
}

/*
listEval evaluates every element of a list literal and returns a fresh
list of the results.
*/
func listEval(rp *RuntimeProvider, env *scope.Environment, n *ast.Node) (*ast.Node, error) {
	elems := make([]*ast.Node, len(n.Elements))
	for i, el := range n.Elements {
		v, err := Eval(rp, env, el)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return ast.NewList(elems, ast.NotInAst), nil
}

/*
pairEval evaluates both halves of a pair literal.
*/
func pairEval(rp *RuntimeProvider, env *scope.Environment, n *ast.Node) (*ast.Node, error) {
	car, err := Eval(rp, env, n.Elements[0])
	if err != nil {
		return nil, err
	}
	cdr, err := Eval(rp, env, n.Elements[1])
	if err != nil {
		return nil, err
	}
	return ast.NewPair(car, cdr, ast.NotInAst), nil
}

/*
lambdaEval turns a lambda literal into a closure over the environment it
is evaluated in.
*/
func lambdaEval(rp *RuntimeProvider, env *scope.Environment, n *ast.Node) (*ast.Node, error) {
	return ast.NewUserProcedure("", n.Params, n.Body, env), nil
}
