/*
 * rkt
 *
 * A small Scheme-family interpreter.
 */

// Package interpreter evaluates a parsed Program node against an
// environment, dispatching on ast.Node.Kind through a provider map in the
// same style as a bytecode-free tree-walking evaluator.
package interpreter

import (
	"github.com/krotik/rkt/ast"
	"github.com/krotik/rkt/rktlog"
	"github.com/krotik/rkt/scope"
	"github.com/krotik/rkt/util"
)

/*
evalFunc evaluates a single node kind.
*/
type evalFunc func(rp *RuntimeProvider, env *scope.Environment, n *ast.Node) (*ast.Node, error)

/*
providerMap dispatches evaluation by node kind. Populated by init rather
than a composite literal: several of these functions call Eval, which
reads providerMap, and the compiler's initialization-order analysis
follows referenced functions transitively, so a literal here would be
flagged as a self-referential initialization cycle even though nothing
actually runs until Eval is called at runtime.
*/
var providerMap map[ast.Kind]evalFunc

func init() {
	providerMap = map[ast.Kind]evalFunc{
		ast.NumberLit:       literalEval,
		ast.StringLit:       literalEval,
		ast.CharLit:         literalEval,
		ast.BoolLit:         literalEval,
		ast.NullExpr:        literalEval,
		ast.EmptyExpr:       literalEval,
		ast.ListLit:         listEval,
		ast.PairLit:         pairEval,
		ast.Binding:         bindingEval,
		ast.Procedure:       procedureEval,
		ast.LambdaForm:      lambdaEval,
		ast.LocalBinding:    localBindingEval,
		ast.SetForm:         setEval,
		ast.ConditionalForm: conditionalEval,
		ast.CallExpr:        callEval,
	}
}

/*
RuntimeProvider holds the resources an evaluation run shares: the name
used in diagnostics and a logger for debug tracing.
*/
type RuntimeProvider struct {
	Name   string
	Logger rktlog.Logger
}

/*
NewRuntimeProvider creates a provider. A nil logger defaults to a silent
logger.
*/
func NewRuntimeProvider(name string, logger rktlog.Logger) *RuntimeProvider {
	if logger == nil {
		logger = rktlog.NewMemoryLogger(1000)
	}
	return &RuntimeProvider{Name: name, Logger: logger}
}

/*
Run evaluates every top-level form of program in order and returns the
value of the last one. program must already carry its Builtins/Addons
tables. Unlike RunEach it does not report each top-level result as it is
produced; use it where only the final value matters (tests, embedding).
*/
func (rp *RuntimeProvider) Run(program *ast.Node) (*ast.Node, error) {
	env := scope.NewRoot(program)
	return evalBody(rp, env, program.ProgramBody)
}

/*
NewRootEnv creates a fresh root environment bound to program's
Builtins/Addons tables. Exposed so a REPL can evaluate a sequence of
separately-parsed top-level forms against one persistent environment
instead of a fresh one per Run.
*/
func (rp *RuntimeProvider) NewRootEnv(program *ast.Node) *scope.Environment {
	return scope.NewRoot(program)
}

/*
RunEach evaluates body against env one top-level form at a time, calling
onResult with every form's result as soon as it is produced - the console
auto-print rule operates per top-level form, not just on the value of the
last one. It stops and returns the first error encountered.
*/
func (rp *RuntimeProvider) RunEach(env *scope.Environment, body []*ast.Node, onResult func(*ast.Node)) error {
	for _, form := range body {
		result, err := Eval(rp, env, form)
		if err != nil {
			return err
		}
		onResult(result)
	}
	return nil
}

/*
Eval evaluates a single node in env, dispatching by Kind.
*/
func Eval(rp *RuntimeProvider, env *scope.Environment, n *ast.Node) (*ast.Node, error) {
	fn, ok := providerMap[n.Kind]
	if !ok {
		return nil, util.New(util.TypeError, rp.Name, "cannot evaluate "+n.Kind.String(), n.Line, n.Col)
	}
	rp.Logger.LogDebug(rp.Name, ": evaluating ", n.Kind.String())
	return fn(rp, env, n)
}

/*
evalBody evaluates a sequence of body forms in env and returns the value
of the last one, as every body (let/lambda/top-level program) does. The
parser rejects an empty let or lambda body; an empty program body is
accepted, and for it evalBody returns nil.
*/
func evalBody(rp *RuntimeProvider, env *scope.Environment, body []*ast.Node) (*ast.Node, error) {
	var result *ast.Node
	var err error

	for _, form := range body {
		result, err = Eval(rp, env, form)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

/*
truthy implements the language's only falsy value: #f. Everything else,
including 0, the empty list and the empty string, is true.
*/
func truthy(n *ast.Node) bool {
	return !(n.Kind == ast.BoolLit && !n.Bool)
}
