/*
 * rkt
 *
 * A small Scheme-family interpreter.
 */

package interpreter

import (
	"strconv"
	"strings"

	"github.com/krotik/rkt/ast"
	"github.com/krotik/rkt/util"
)

/*
RegisterBuiltins populates program's Builtins table with the native
arithmetic, comparison, list and string procedures every program gets for
free. Arities match the worked examples: + and * accept zero operands,
-, / and = all require at least one.
*/
func RegisterBuiltins(program *ast.Node) {
	add := func(name string, arity int, variadic bool, fn ast.NativeFunc) {
		program.Builtins[name] = ast.NewNativeProcedure(name, arity, variadic, fn, ast.BuiltIn)
	}

	add("+", 0, true, plusFn)
	add("-", 1, true, minusFn)
	add("*", 0, true, timesFn)
	add("/", 1, true, divFn)
	add("=", 1, true, numEqFn)
	add("<", 1, true, numCmpFn(func(a, b float64) bool { return a < b }))
	add(">", 1, true, numCmpFn(func(a, b float64) bool { return a > b }))
	add("<=", 1, true, numCmpFn(func(a, b float64) bool { return a <= b }))
	add(">=", 1, true, numCmpFn(func(a, b float64) bool { return a >= b }))
	add("map", 2, true, mapFn)

	add("car", 1, false, carFn)
	add("cdr", 1, false, cdrFn)
	add("cons", 2, false, consFn)
	add("list", 0, true, listFn)
	add("null?", 1, false, isNullFn)
	add("empty?", 1, false, isEmptyFn)
	add("pair?", 1, false, isPairFn)
	add("list?", 1, false, isListFn)

	add("string-append", 0, true, stringAppendFn)
	add("string-length", 1, false, stringLengthFn)
	add("number->string", 1, false, numberToStringFn)
	add("string->number", 1, false, stringToNumberFn)
}

func typeErr(detail string) error {
	return util.New(util.TypeError, "", detail, 0, 0)
}

func arithErr(detail string) error {
	return util.New(util.ArithmeticError, "", detail, 0, 0)
}

func asFloat(n *ast.Node) (float64, error) {
	if n.Kind != ast.NumberLit {
		return 0, typeErr("operand must be a number")
	}
	if n.IsFloat {
		return n.Float, nil
	}
	return float64(n.Int), nil
}

func plusFn(args []*ast.Node, apply ast.Applier) (*ast.Node, error) {
	isFloat := false
	var isum int64
	var fsum float64

	for _, a := range args {
		if a.Kind != ast.NumberLit {
			return nil, typeErr("+: operands must be numbers")
		}
		if a.IsFloat {
			if !isFloat {
				fsum = float64(isum)
				isFloat = true
			}
			fsum += a.Float
		} else if isFloat {
			fsum += float64(a.Int)
		} else {
			isum += a.Int
		}
	}

	if isFloat {
		return ast.NewFloatNumber(fsum), nil
	}
	return ast.NewIntNumber(isum), nil
}

func minusFn(args []*ast.Node, apply ast.Applier) (*ast.Node, error) {
	if args[0].Kind != ast.NumberLit {
		return nil, typeErr("-: operands must be numbers")
	}

	isFloat := args[0].IsFloat
	var ival int64
	var fval float64
	if isFloat {
		fval = args[0].Float
	} else {
		ival = args[0].Int
	}

	if len(args) == 1 {
		if isFloat {
			fval = -fval
		} else {
			ival = -ival
		}
	} else {
		for _, a := range args[1:] {
			if a.Kind != ast.NumberLit {
				return nil, typeErr("-: operands must be numbers")
			}
			if a.IsFloat {
				if !isFloat {
					fval = float64(ival)
					isFloat = true
				}
				fval -= a.Float
			} else if isFloat {
				fval -= float64(a.Int)
			} else {
				ival -= a.Int
			}
		}
	}

	if isFloat {
		return ast.NewFloatNumber(fval), nil
	}
	return ast.NewIntNumber(ival), nil
}

func timesFn(args []*ast.Node, apply ast.Applier) (*ast.Node, error) {
	isFloat := false
	isum := int64(1)
	var fsum float64

	for _, a := range args {
		if a.Kind != ast.NumberLit {
			return nil, typeErr("*: operands must be numbers")
		}
		if a.IsFloat {
			if !isFloat {
				fsum = float64(isum)
				isFloat = true
			}
			fsum *= a.Float
		} else if isFloat {
			fsum *= float64(a.Int)
		} else {
			isum *= a.Int
		}
	}

	if isFloat {
		return ast.NewFloatNumber(fsum), nil
	}
	return ast.NewIntNumber(isum), nil
}

func divFn(args []*ast.Node, apply ast.Applier) (*ast.Node, error) {
	dividend, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}

	var result float64
	if len(args) == 1 {
		if dividend == 0 {
			return nil, arithErr("/: division by zero")
		}
		result = 1 / dividend
	} else {
		result = dividend
	}

	for _, a := range args[1:] {
		v, err := asFloat(a)
		if err != nil {
			return nil, err
		}
		if v == 0 {
			return nil, arithErr("/: division by zero")
		}
		result /= v
	}

	return ast.NewFloatNumber(result), nil
}

func numEqFn(args []*ast.Node, apply ast.Applier) (*ast.Node, error) {
	pre, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}

	for _, a := range args[1:] {
		cur, err := asFloat(a)
		if err != nil {
			return nil, err
		}
		if cur != pre {
			return ast.NewBool(false, ast.NotInAst), nil
		}
		pre = cur
	}

	return ast.NewBool(true, ast.NotInAst), nil
}

/*
numCmpFn builds a NativeFunc for one of </>/<=/>=, chaining cmp across
every adjacent pair of operands, Racket-style.
*/
func numCmpFn(cmp func(a, b float64) bool) ast.NativeFunc {
	return func(args []*ast.Node, apply ast.Applier) (*ast.Node, error) {
		pre, err := asFloat(args[0])
		if err != nil {
			return nil, err
		}

		for _, a := range args[1:] {
			cur, err := asFloat(a)
			if err != nil {
				return nil, err
			}
			if !cmp(pre, cur) {
				return ast.NewBool(false, ast.NotInAst), nil
			}
			pre = cur
		}

		return ast.NewBool(true, ast.NotInAst), nil
	}
}

/*
mapFn applies its first argument to corresponding elements of one or more
equal-length lists, calling back into the evaluator through apply.
*/
func mapFn(args []*ast.Node, apply ast.Applier) (*ast.Node, error) {
	fn := args[0]
	if fn.Kind != ast.Procedure {
		return nil, typeErr("map: first argument must be a procedure")
	}

	lists := args[1:]
	for _, l := range lists {
		if l.Kind != ast.ListLit {
			return nil, typeErr("map: arguments after the procedure must be lists")
		}
	}

	length := len(lists[0].Elements)
	for _, l := range lists[1:] {
		if len(l.Elements) != length {
			return nil, typeErr("map: all lists must have the same length")
		}
	}

	results := make([]*ast.Node, length)
	for i := 0; i < length; i++ {
		row := make([]*ast.Node, len(lists))
		for j, l := range lists {
			row[j] = l.Elements[i]
		}
		v, err := apply(fn, row)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}

	return ast.NewList(results, ast.NotInAst), nil
}

func carFn(args []*ast.Node, apply ast.Applier) (*ast.Node, error) {
	n := args[0]
	if n.Kind == ast.PairLit {
		return n.Elements[0], nil
	}
	if n.Kind == ast.ListLit && len(n.Elements) > 0 {
		return n.Elements[0], nil
	}
	return nil, typeErr("car: expects a non-empty list or pair")
}

func cdrFn(args []*ast.Node, apply ast.Applier) (*ast.Node, error) {
	n := args[0]
	if n.Kind == ast.PairLit {
		return n.Elements[1], nil
	}
	if n.Kind == ast.ListLit && len(n.Elements) > 0 {
		return ast.NewList(n.Elements[1:], ast.NotInAst), nil
	}
	return nil, typeErr("cdr: expects a non-empty list or pair")
}

func consFn(args []*ast.Node, apply ast.Applier) (*ast.Node, error) {
	head, tail := args[0], args[1]
	if tail.Kind == ast.ListLit {
		return ast.NewList(append([]*ast.Node{head}, tail.Elements...), ast.NotInAst), nil
	}
	return ast.NewPair(head, tail, ast.NotInAst), nil
}

func listFn(args []*ast.Node, apply ast.Applier) (*ast.Node, error) {
	return ast.NewList(args, ast.NotInAst), nil
}

func isNullFn(args []*ast.Node, apply ast.Applier) (*ast.Node, error) {
	n := args[0]
	empty := n.Kind == ast.NullExpr || (n.Kind == ast.ListLit && len(n.Elements) == 0)
	return ast.NewBool(empty, ast.NotInAst), nil
}

func isEmptyFn(args []*ast.Node, apply ast.Applier) (*ast.Node, error) {
	n := args[0]
	empty := n.Kind == ast.EmptyExpr || n.Kind == ast.NullExpr || (n.Kind == ast.ListLit && len(n.Elements) == 0)
	return ast.NewBool(empty, ast.NotInAst), nil
}

func isPairFn(args []*ast.Node, apply ast.Applier) (*ast.Node, error) {
	n := args[0]
	isPair := n.Kind == ast.PairLit || (n.Kind == ast.ListLit && len(n.Elements) > 0)
	return ast.NewBool(isPair, ast.NotInAst), nil
}

func isListFn(args []*ast.Node, apply ast.Applier) (*ast.Node, error) {
	n := args[0]
	isList := n.Kind == ast.ListLit || n.Kind == ast.NullExpr
	return ast.NewBool(isList, ast.NotInAst), nil
}

func stringAppendFn(args []*ast.Node, apply ast.Applier) (*ast.Node, error) {
	var b strings.Builder
	for _, a := range args {
		if a.Kind != ast.StringLit {
			return nil, typeErr("string-append: operands must be strings")
		}
		b.WriteString(a.Text)
	}
	return ast.NewString(b.String(), ast.NotInAst), nil
}

func stringLengthFn(args []*ast.Node, apply ast.Applier) (*ast.Node, error) {
	if args[0].Kind != ast.StringLit {
		return nil, typeErr("string-length: operand must be a string")
	}
	return ast.NewIntNumber(int64(len(args[0].Text))), nil
}

func numberToStringFn(args []*ast.Node, apply ast.Applier) (*ast.Node, error) {
	n := args[0]
	if n.Kind != ast.NumberLit {
		return nil, typeErr("number->string: operand must be a number")
	}
	if n.IsFloat {
		return ast.NewString(strconv.FormatFloat(n.Float, 'f', -1, 64), ast.NotInAst), nil
	}
	return ast.NewString(strconv.FormatInt(n.Int, 10), ast.NotInAst), nil
}

func stringToNumberFn(args []*ast.Node, apply ast.Applier) (*ast.Node, error) {
	n := args[0]
	if n.Kind != ast.StringLit {
		return nil, typeErr("string->number: operand must be a string")
	}
	if i, err := strconv.ParseInt(n.Text, 10, 64); err == nil {
		return ast.NewIntNumber(i), nil
	}
	f, err := strconv.ParseFloat(n.Text, 64)
	if err != nil {
		return nil, typeErr("string->number: not a number: " + n.Text)
	}
	return ast.NewFloatNumber(f), nil
}
