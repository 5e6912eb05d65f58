/*
 * rkt
 *
 * A small Scheme-family interpreter.
 */

// Package addon provides native procedures that are not part of the
// required built-in set but are registered into a program's Addons table
// by the command line driver, the way stdlib functions were bridged into
// ECAL through a reflection adapter.
package addon

import (
	"fmt"
	"reflect"

	"github.com/krotik/rkt/ast"
)

/*
FunctionAdapter bridges a plain Go function to an ast.NativeFunc. The
wrapped function must take only string, []byte, int64, float64 or bool
parameters and return either a single such value, or a value and a
trailing error.
*/
type FunctionAdapter struct {
	name    string
	funcval reflect.Value
}

/*
NewFunctionAdapter wraps fn, which must be a Go func value, as a named
add-on procedure.
*/
func NewFunctionAdapter(name string, fn interface{}) *FunctionAdapter {
	return &FunctionAdapter{name: name, funcval: reflect.ValueOf(fn)}
}

/*
Arity returns the number of parameters fn declares.
*/
func (fa *FunctionAdapter) Arity() int {
	return fa.funcval.Type().NumIn()
}

/*
Run converts args into Go values matching fn's parameter types, calls fn,
and converts the result back into a result Node.
*/
func (fa *FunctionAdapter) Run(args []*ast.Node, apply ast.Applier) (*ast.Node, error) {
	funcType := fa.funcval.Type()

	if len(args) != funcType.NumIn() {
		return nil, fmt.Errorf("%s expects %d argument(s), got %d", fa.name, funcType.NumIn(), len(args))
	}

	fargs := make([]reflect.Value, len(args))

	for i, arg := range args {
		expected := funcType.In(i)

		goVal, err := toGoValue(arg, expected)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %v", fa.name, i+1, err)
		}

		fargs[i] = reflect.ValueOf(goVal)
	}

	results := fa.funcval.Call(fargs)

	if n := len(results); n > 0 {
		last := results[n-1]
		if funcType.Out(n-1) == reflect.TypeOf((*error)(nil)).Elem() {
			if !last.IsNil() {
				return nil, last.Interface().(error)
			}
			results = results[:n-1]
		}
	}

	if len(results) != 1 {
		return nil, fmt.Errorf("%s: native function must return exactly one value besides an optional error", fa.name)
	}

	return fromGoValue(results[0])
}

func toGoValue(n *ast.Node, expected reflect.Type) (interface{}, error) {
	switch expected.Kind() {
	case reflect.String:
		if n.Kind != ast.StringLit {
			return nil, fmt.Errorf("expected a string")
		}
		return n.Text, nil
	case reflect.Slice:
		if expected.Elem().Kind() == reflect.Uint8 {
			if n.Kind != ast.StringLit {
				return nil, fmt.Errorf("expected a string")
			}
			return []byte(n.Text), nil
		}
	case reflect.Int64:
		if n.Kind != ast.NumberLit {
			return nil, fmt.Errorf("expected a number")
		}
		if n.IsFloat {
			return int64(n.Float), nil
		}
		return n.Int, nil
	case reflect.Float64:
		if n.Kind != ast.NumberLit {
			return nil, fmt.Errorf("expected a number")
		}
		if n.IsFloat {
			return n.Float, nil
		}
		return float64(n.Int), nil
	case reflect.Bool:
		if n.Kind != ast.BoolLit {
			return nil, fmt.Errorf("expected a boolean")
		}
		return n.Bool, nil
	}
	return nil, fmt.Errorf("unsupported native parameter type %v", expected)
}

func fromGoValue(v reflect.Value) (*ast.Node, error) {
	switch val := v.Interface().(type) {
	case string:
		return ast.NewString(val, ast.NotInAst), nil
	case []byte:
		return ast.NewString(string(val), ast.NotInAst), nil
	case int64:
		return ast.NewIntNumber(val), nil
	case float64:
		return ast.NewFloatNumber(val), nil
	case bool:
		return ast.NewBool(val, ast.NotInAst), nil
	}
	return nil, fmt.Errorf("unsupported native return type %T", v.Interface())
}
