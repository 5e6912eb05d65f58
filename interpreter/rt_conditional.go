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
conditionalEval evaluates if/and/or/not/cond. Only #f is false; every
other value, including 0 and the empty list, takes the true branch.
*/
func conditionalEval(rp *RuntimeProvider, env *scope.Environment, n *ast.Node) (*ast.Node, error) {
	switch n.CondKind {

	case ast.If:
		test, err := Eval(rp, env, n.Test)
		if err != nil {
			return nil, err
		}
		if truthy(test) {
			return Eval(rp, env, n.Then)
		}
		return Eval(rp, env, n.ElseExpr)

	case ast.And:
		result := ast.NewBool(true, ast.NotInAst)
		for _, expr := range n.Exprs {
			v, err := Eval(rp, env, expr)
			if err != nil {
				return nil, err
			}
			if !truthy(v) {
				return ast.NewBool(false, ast.NotInAst), nil
			}
			result = v
		}
		return result, nil

	case ast.Or:
		for _, expr := range n.Exprs {
			v, err := Eval(rp, env, expr)
			if err != nil {
				return nil, err
			}
			if truthy(v) {
				return v, nil
			}
		}
		return ast.NewBool(false, ast.NotInAst), nil

	case ast.Not:
		v, err := Eval(rp, env, n.NotExpr)
		if err != nil {
			return nil, err
		}
		return ast.NewBool(!truthy(v), ast.NotInAst), nil

	case ast.Cond:
		for _, clause := range n.Clauses {
			switch clause.ClauseKind {

			case ast.ElseClause:
				return evalBody(rp, env, clause.ThenBody)

			case ast.TestThen:
				test, err := Eval(rp, env, clause.Test)
				if err != nil {
					return nil, err
				}
				if truthy(test) {
					return evalBody(rp, env, clause.ThenBody)
				}

			default:
				panic("unreachable: cond clause kind " + clause.ClauseKind.String() + " is never constructed by the parser")
			}
		}
		return ast.NewVoid(ast.NotInAst), nil
	}

	panic("unreachable: unknown ConditionalKind")
}
