/*
 * rkt
 *
 * A small Scheme-family interpreter.
 */

package interpreter

import (
	"fmt"

	"github.com/krotik/rkt/ast"
	"github.com/krotik/rkt/scope"
	"github.com/krotik/rkt/util"
)

/*
callEval resolves the callee (by name, or by evaluating an inline lambda),
evaluates every operand left to right, then invokes. A brand new
environment is built for every invocation so that concurrent or recursive
activations of the same procedure never see each other's bindings.
*/
func callEval(rp *RuntimeProvider, env *scope.Environment, n *ast.Node) (*ast.Node, error) {
	var callee *ast.Node

	if n.CalleeName != "" {
		v, ok := env.Lookup(n.CalleeName)
		if !ok {
			return nil, util.New(util.ResolveError, rp.Name, "unbound identifier "+n.CalleeName, n.Line, n.Col)
		}
		callee = v
	} else {
		v, err := Eval(rp, env, n.Callee)
		if err != nil {
			return nil, err
		}
		callee = v
	}

	if callee.Kind != ast.Procedure {
		return nil, util.New(util.TypeError, rp.Name, "call target is not a procedure", n.Line, n.Col)
	}

	args := make([]*ast.Node, len(n.Args))
	for i, a := range n.Args {
		v, err := Eval(rp, env, a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	return invoke(rp, callee, args, n)
}

/*
invoke dispatches to a native callback or evaluates a user-defined
procedure's body in a freshly allocated call environment.
*/
func invoke(rp *RuntimeProvider, proc *ast.Node, args []*ast.Node, call *ast.Node) (*ast.Node, error) {
	if proc.Native != nil {
		if err := checkArity(proc, len(args), rp.Name, call); err != nil {
			return nil, err
		}

		apply := func(p *ast.Node, a []*ast.Node) (*ast.Node, error) {
			return invoke(rp, p, a, call)
		}

		result, err := proc.Native(args, apply)
		if err != nil {
			return nil, wrapNativeError(err, rp.Name, call)
		}
		return result, nil
	}

	if len(args) != len(proc.Params) {
		return nil, util.New(util.ArityError, rp.Name,
			fmt.Sprintf("procedure expects %d argument(s), got %d", len(proc.Params), len(args)), call.Line, call.Col)
	}

	closureEnv, _ := proc.Closure.(*scope.Environment)

	bindings := make([]*ast.Node, len(proc.Params))
	for i, p := range proc.Params {
		bindings[i] = ast.NewSlot(p.Name, args[i])
	}

	return evalBody(rp, closureEnv.Child(bindings), proc.Body)
}

func checkArity(proc *ast.Node, got int, source string, call *ast.Node) error {
	if proc.Variadic {
		if got < proc.Arity {
			return util.New(util.ArityError, source,
				fmt.Sprintf("%s expects at least %d argument(s), got %d", proc.ProcName, proc.Arity, got), call.Line, call.Col)
		}
		return nil
	}
	if got != proc.Arity {
		return util.New(util.ArityError, source,
			fmt.Sprintf("%s expects %d argument(s), got %d", proc.ProcName, proc.Arity, got), call.Line, call.Col)
	}
	return nil
}

/*
wrapNativeError fills in the source name and call-site position on an
error returned by a native procedure, which has neither.
*/
func wrapNativeError(err error, source string, call *ast.Node) error {
	if e, ok := err.(*util.Error); ok {
		if e.Source == "" {
			e.Source = source
		}
		if e.Line == 0 {
			e.Line, e.Col = call.Line, call.Col
		}
		return e
	}
	return util.New(util.TypeError, source, err.Error(), call.Line, call.Col)
}
