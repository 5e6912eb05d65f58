/*
 * rkt
 *
 * A small Scheme-family interpreter.
 */

// Package printer renders evaluation results in the console output
// formats: integer, double, boolean, character, string, list/pair and
// procedure.
package printer

import (
	"fmt"
	"strings"

	"github.com/krotik/rkt/ast"
)

/*
Print renders n the way the top level prints the result of evaluating a
form.
*/
func Print(n *ast.Node) string {
	var b strings.Builder
	write(&b, n)
	return b.String()
}

func write(b *strings.Builder, n *ast.Node) {
	switch n.Kind {

	case ast.NumberLit:
		if n.IsFloat {
			fmt.Fprintf(b, "%f", n.Float)
		} else {
			fmt.Fprintf(b, "%d", n.Int)
		}

	case ast.BoolLit:
		if n.Bool {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}

	case ast.CharLit:
		fmt.Fprintf(b, "#\\%c", n.Char)

	case ast.StringLit:
		b.WriteByte('"')
		b.WriteString(n.Text)
		b.WriteByte('"')

	case ast.NullExpr:
		b.WriteString("'()")

	case ast.EmptyExpr:
		b.WriteString("'()")

	case ast.ListLit:
		b.WriteString("'(")
		for i, e := range n.Elements {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeUnquoted(b, e)
		}
		b.WriteByte(')')

	case ast.PairLit:
		b.WriteString("'(")
		writeUnquoted(b, n.Elements[0])
		b.WriteString(" . ")
		writeUnquoted(b, n.Elements[1])
		b.WriteByte(')')

	case ast.Procedure:
		if n.ProcName != "" {
			fmt.Fprintf(b, "#<procedure:%s>", n.ProcName)
		} else {
			b.WriteString("#<procedure:anonymous>")
		}

	default:
		fmt.Fprintf(b, "#<unprintable:%s>", n.Kind.String())
	}
}

/*
writeUnquoted renders an element nested inside a list/pair literal without
the quote prefix a top-level list/pair carries.
*/
func writeUnquoted(b *strings.Builder, n *ast.Node) {
	if n.Kind == ast.NullExpr || n.Kind == ast.EmptyExpr {
		b.WriteString("()")
		return
	}
	if n.Kind == ast.ListLit {
		b.WriteByte('(')
		for i, e := range n.Elements {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeUnquoted(b, e)
		}
		b.WriteByte(')')
		return
	}
	if n.Kind == ast.PairLit {
		b.WriteByte('(')
		writeUnquoted(b, n.Elements[0])
		b.WriteString(" . ")
		writeUnquoted(b, n.Elements[1])
		b.WriteByte(')')
		return
	}
	write(b, n)
}
