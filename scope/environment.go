/*
 * rkt
 *
 * A small Scheme-family interpreter.
 */

// Package scope implements the lexical environment chain that backs
// identifier lookup, let/let*/letrec, define and set!.
package scope

import (
	"fmt"

	"devt.de/krotik/common/errorutil"
	"github.com/krotik/rkt/ast"
)

/*
Environment is one link in a lexical scope chain. A fresh Environment is
created for every procedure call and every let, let*, or letrec block,
which is what makes recursive and concurrent calls re-entrant: no two
activations ever share the same Bindings slice.
*/
type Environment struct {
	parent   *Environment
	bindings []*ast.Node // Binding nodes; Name identifies the slot, Value holds the current value
	program  *ast.Node   // Program root, carried down for Builtins/Addons fallback
}

/*
NewRoot creates the outermost environment for a Program node.
*/
func NewRoot(program *ast.Node) *Environment {
	errorutil.AssertTrue(program.Kind == ast.Program, "NewRoot requires a Program node")
	return &Environment{program: program}
}

/*
Child creates a new scope nested under e, initially holding bindings.
bindings may be nil or empty (a block with no bindings of its own, e.g. a
lambda body evaluated directly).
*/
func (e *Environment) Child(bindings []*ast.Node) *Environment {
	return &Environment{parent: e, bindings: bindings, program: e.program}
}

/*
Define adds a new binding to e's own scope (not a new child), as define
does: the new name becomes visible to every expression evaluated in e
after this call, including e itself for subsequent top-level forms.
*/
func (e *Environment) Define(name string, value *ast.Node) {
	if existing := e.localBinding(name); existing != nil {
		existing.Value = value
		return
	}
	e.bindings = append(e.bindings, ast.NewSlot(name, value))
}

/*
localBinding returns the Binding node for name if it is bound directly in
e (not a parent), or nil.
*/
func (e *Environment) localBinding(name string) *ast.Node {
	for _, b := range e.bindings {
		if b.Name == name {
			return b
		}
	}
	return nil
}

/*
Lookup resolves an identifier by walking outward from e, then falling back
to the Program's add-on and built-in tables. ok is false if name is bound
nowhere.
*/
func (e *Environment) Lookup(name string) (value *ast.Node, ok bool) {
	for env := e; env != nil; env = env.parent {
		if b := env.localBinding(name); b != nil {
			return b.Value, true
		}
	}

	if v, ok := e.program.Addons[name]; ok {
		return v, true
	}
	if v, ok := e.program.Builtins[name]; ok {
		return v, true
	}

	return nil, false
}

/*
Set mutates the value of an already-bound identifier, as set! requires. It
returns false if name is not bound in e or any enclosing scope.
*/
func (e *Environment) Set(name string, value *ast.Node) bool {
	for env := e; env != nil; env = env.parent {
		if b := env.localBinding(name); b != nil {
			b.Value = value
			return true
		}
	}
	return false
}

/*
String renders the environment chain, innermost first, for diagnostics.
*/
func (e *Environment) String() string {
	s := ""
	for env := e; env != nil; env = env.parent {
		names := make([]string, len(env.bindings))
		for i, b := range env.bindings {
			names[i] = b.Name
		}
		s += fmt.Sprintf("%v", names)
		if env.parent != nil {
			s += " -> "
		}
	}
	return s
}
