/*
 * rkt
 *
 * A small Scheme-family interpreter.
 */

// Package parser turns a lexed token stream into an ast.Node Program tree
// by classic recursive descent, one parseX per special form.
package parser

import (
	"github.com/krotik/rkt/ast"
	"github.com/krotik/rkt/lexer"
	"github.com/krotik/rkt/util"
)

/*
Parse lexes and parses a named source into a Program node. name is used
only for diagnostics (typically the path the source was read from).
*/
func Parse(name string, lines []string) (*ast.Node, error) {
	toks := lexer.LexToList(name, lines)

	if len(toks) == 0 {
		return nil, util.New(util.LexError, name, "empty source", 1, 1)
	}

	if last := toks[len(toks)-1]; last.Kind == lexer.TokenError {
		return nil, util.New(util.LexError, name, last.Text, last.Line, last.Col)
	}

	firstSignificant := 0
	for firstSignificant < len(toks) && toks[firstSignificant].Kind == lexer.TokenComment {
		firstSignificant++
	}
	if firstSignificant >= len(toks) || toks[firstSignificant].Kind != lexer.TokenLanguage {
		return nil, util.New(util.LexError, name, "#lang racket must be the first content in the file", 1, 1)
	}

	c := newCursor(name, toks)
	c.advance() // #lang racket

	var body []*ast.Node
	for c.peek().Kind != lexer.TokenEOF {
		expr, err := c.parseExpr()
		if err != nil {
			return nil, err
		}
		body = append(body, expr)
	}

	return ast.NewProgram(body), nil
}

/*
parseExpr parses a single expression: a literal, an identifier reference,
a quoted datum, or a parenthesised form.
*/
func (c *cursor) parseExpr() (*ast.Node, error) {
	t := c.peek()
	n, err := c.parseExprBody(t)
	if err != nil {
		return nil, err
	}
	if n.Line == 0 {
		n.Line, n.Col = t.Line, t.Col
	}
	return n, nil
}

func (c *cursor) parseExprBody(t lexer.Token) (*ast.Node, error) {
	switch t.Kind {

	case lexer.TokenNumber:
		c.advance()
		return ast.NewNumber(t.Text), nil

	case lexer.TokenString:
		c.advance()
		return ast.NewString(t.Text, ast.InAst), nil

	case lexer.TokenCharacter:
		c.advance()
		return ast.NewChar(t.Text[0], ast.InAst), nil

	case lexer.TokenBoolean:
		c.advance()
		return ast.NewBool(t.Text == "#t", ast.InAst), nil

	case lexer.TokenIdentifier:
		c.advance()
		switch t.Text {
		case "null":
			return ast.NewNull(ast.InAst), nil
		case "empty":
			return ast.NewEmpty(ast.InAst), nil
		}
		return ast.NewReference(t.Text), nil

	case lexer.TokenPunctuation:
		switch t.Text {
		case "'":
			c.advance()
			return c.parseQuotedList()
		case "(":
			return c.parseForm()
		}
	}

	return nil, c.errorf(t, "unexpected token %s", t)
}

/*
parseForm parses a parenthesised form: a special form, a named call, or a
call whose callee is itself an inline lambda.
*/
func (c *cursor) parseForm() (*ast.Node, error) {
	start := c.peek() // '('
	c.advance()
	head := c.peek()

	node, err := c.parseFormBody(head)
	if err != nil {
		return nil, err
	}
	node.Line, node.Col = start.Line, start.Col
	return node, nil
}

func (c *cursor) parseFormBody(head lexer.Token) (*ast.Node, error) {
	if head.Kind == lexer.TokenIdentifier {
		switch head.Text {
		case "let":
			return c.parseLet(ast.Let)
		case "let*":
			return c.parseLet(ast.LetStar)
		case "letrec":
			return c.parseLet(ast.LetRec)
		case "define":
			return c.parseDefine()
		case "lambda":
			return c.parseLambda()
		case "if":
			return c.parseIf()
		case "and":
			return c.parseAndOr(ast.And)
		case "or":
			return c.parseAndOr(ast.Or)
		case "not":
			return c.parseNot()
		case "cond":
			return c.parseCond()
		case "set!":
			return c.parseSet()
		}
		return c.parseNamedCall()
	}

	if head.Kind == lexer.TokenPunctuation && head.Text == "(" {
		return c.parseAnonymousCall()
	}

	return nil, c.errorf(head, "expected a form head, found %s", head)
}

func (c *cursor) parseLet(kind ast.LocalBindingKind) (*ast.Node, error) {
	c.advance() // let/let*/letrec
	if err := c.expectPunct("("); err != nil {
		return nil, err
	}

	var bindings []*ast.Node
	for c.isPunct("[") {
		c.advance()
		name, err := c.expectIdentifier()
		if err != nil {
			return nil, err
		}
		expr, err := c.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := c.expectPunct("]"); err != nil {
			return nil, err
		}
		bindings = append(bindings, ast.NewSlot(name, expr))
	}

	if err := c.expectPunct(")"); err != nil {
		return nil, err
	}

	body, err := c.parseBody("let")
	if err != nil {
		return nil, err
	}

	if err := c.expectPunct(")"); err != nil {
		return nil, err
	}

	return ast.NewLet(kind, bindings, body), nil
}

func (c *cursor) parseDefine() (*ast.Node, error) {
	c.advance() // define
	name, err := c.expectIdentifier()
	if err != nil {
		return nil, err
	}
	expr, err := c.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := c.expectPunct(")"); err != nil {
		return nil, err
	}
	return ast.NewDefine(ast.NewSlot(name, expr)), nil
}

func (c *cursor) parseLambda() (*ast.Node, error) {
	c.advance() // lambda
	if err := c.expectPunct("("); err != nil {
		return nil, err
	}

	var params []*ast.Node
	for !c.isPunct(")") {
		name, err := c.expectIdentifier()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.NewSlot(name, nil))
	}
	c.advance() // ')'

	body, err := c.parseBody("lambda")
	if err != nil {
		return nil, err
	}

	if err := c.expectPunct(")"); err != nil {
		return nil, err
	}

	return ast.NewLambda(params, body), nil
}

func (c *cursor) parseIf() (*ast.Node, error) {
	c.advance() // if
	test, err := c.parseExpr()
	if err != nil {
		return nil, err
	}
	then, err := c.parseExpr()
	if err != nil {
		return nil, err
	}
	elseExpr, err := c.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := c.expectPunct(")"); err != nil {
		return nil, err
	}
	return ast.NewIf(test, then, elseExpr), nil
}

func (c *cursor) parseAndOr(kind ast.ConditionalKind) (*ast.Node, error) {
	c.advance() // and/or
	var exprs []*ast.Node
	for !c.isPunct(")") {
		expr, err := c.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	c.advance() // ')'
	if kind == ast.And {
		return ast.NewAnd(exprs), nil
	}
	return ast.NewOr(exprs), nil
}

func (c *cursor) parseNot() (*ast.Node, error) {
	c.advance() // not
	expr, err := c.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := c.expectPunct(")"); err != nil {
		return nil, err
	}
	return ast.NewNot(expr), nil
}

func (c *cursor) parseCond() (*ast.Node, error) {
	head := c.advance() // cond
	var clauses []*ast.Node

	for !c.isPunct(")") {
		if err := c.expectPunct("["); err != nil {
			return nil, err
		}

		var clause *ast.Node
		if c.peek().Kind == lexer.TokenIdentifier && c.peek().Text == "else" {
			c.advance()
			thenBody, err := c.parseClauseBody()
			if err != nil {
				return nil, err
			}
			clause = ast.NewElseClause(thenBody)
		} else {
			test, err := c.parseExpr()
			if err != nil {
				return nil, err
			}
			thenBody, err := c.parseClauseBody()
			if err != nil {
				return nil, err
			}
			clause = ast.NewTestThenClause(test, thenBody)
		}

		if err := c.expectPunct("]"); err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
	}
	c.advance() // ')'

	if len(clauses) == 0 {
		return nil, c.errorf(head, "cond requires at least one clause")
	}

	for i, clause := range clauses {
		if clause.ClauseKind == ast.ElseClause && i != len(clauses)-1 {
			return nil, c.errorf(head, "else clause must be the last cond clause")
		}
	}

	return ast.NewCond(clauses), nil
}

func (c *cursor) parseSet() (*ast.Node, error) {
	c.advance() // set!
	name, err := c.expectIdentifier()
	if err != nil {
		return nil, err
	}
	expr, err := c.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := c.expectPunct(")"); err != nil {
		return nil, err
	}
	return ast.NewSet(name, expr), nil
}

func (c *cursor) parseNamedCall() (*ast.Node, error) {
	name, err := c.expectIdentifier()
	if err != nil {
		return nil, err
	}
	var args []*ast.Node
	for !c.isPunct(")") {
		arg, err := c.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	c.advance() // ')'
	return ast.NewCall(name, nil, args), nil
}

func (c *cursor) parseAnonymousCall() (*ast.Node, error) {
	callee, err := c.parseForm()
	if err != nil {
		return nil, err
	}
	if callee.Kind != ast.LambdaForm {
		return nil, c.errorf(c.peek(), "a parenthesised call head must be a lambda")
	}

	var args []*ast.Node
	for !c.isPunct(")") {
		arg, err := c.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	c.advance() // ')'
	return ast.NewCall("", callee, args), nil
}

/*
parseBody parses the one-or-more trailing expressions of a let/lambda form,
up to (not consuming) the closing ')'.
*/
func (c *cursor) parseBody(form string) ([]*ast.Node, error) {
	var body []*ast.Node
	for !c.isPunct(")") {
		expr, err := c.parseExpr()
		if err != nil {
			return nil, err
		}
		body = append(body, expr)
	}
	if len(body) == 0 {
		return nil, c.errorf(c.peek(), "%s requires at least one body expression", form)
	}
	return body, nil
}

/*
parseClauseBody parses the one-or-more trailing expressions of a cond
clause, up to (not consuming) the closing ']'.
*/
func (c *cursor) parseClauseBody() ([]*ast.Node, error) {
	var body []*ast.Node
	for !c.isPunct("]") {
		expr, err := c.parseExpr()
		if err != nil {
			return nil, err
		}
		body = append(body, expr)
	}
	if len(body) == 0 {
		return nil, c.errorf(c.peek(), "cond clause requires at least one body expression")
	}
	return body, nil
}

/*
parseQuotedList parses the datum following a quote tick. The caller has
already consumed the "'"; this function consumes the opening '('.
*/
func (c *cursor) parseQuotedList() (*ast.Node, error) {
	if err := c.expectPunct("("); err != nil {
		return nil, err
	}
	return c.parseQuotedTail()
}

/*
parseQuotedTail parses the elements of a quoted list or pair up to and
including the closing ')'; the opening '(' has already been consumed.
*/
func (c *cursor) parseQuotedTail() (*ast.Node, error) {
	if c.isPunct(")") {
		c.advance()
		return ast.NewList(nil, ast.InAst), nil
	}

	first, err := c.parseDatum()
	if err != nil {
		return nil, err
	}

	if c.isPunct(".") {
		c.advance()
		second, err := c.parseDatum()
		if err != nil {
			return nil, err
		}
		if err := c.expectPunct(")"); err != nil {
			return nil, err
		}
		return ast.NewPair(first, second, ast.InAst), nil
	}

	elements := []*ast.Node{first}
	for !c.isPunct(")") {
		el, err := c.parseDatum()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	c.advance() // ')'

	return ast.NewList(elements, ast.InAst), nil
}

/*
parseDatum parses one element of quoted data: a literal, a bare symbol, or
a nested list/pair (whose own parens need no leading quote tick).
*/
func (c *cursor) parseDatum() (*ast.Node, error) {
	t := c.peek()

	switch t.Kind {

	case lexer.TokenNumber:
		c.advance()
		return ast.NewNumber(t.Text), nil

	case lexer.TokenString:
		c.advance()
		return ast.NewString(t.Text, ast.InAst), nil

	case lexer.TokenCharacter:
		c.advance()
		return ast.NewChar(t.Text[0], ast.InAst), nil

	case lexer.TokenBoolean:
		c.advance()
		return ast.NewBool(t.Text == "#t", ast.InAst), nil

	case lexer.TokenIdentifier:
		c.advance()
		switch t.Text {
		case "null":
			return ast.NewNull(ast.InAst), nil
		case "empty":
			return ast.NewEmpty(ast.InAst), nil
		}
		return ast.NewReference(t.Text), nil

	case lexer.TokenPunctuation:
		if t.Text == "(" {
			c.advance()
			return c.parseQuotedTail()
		}
		if t.Text == "'" {
			c.advance()
			return c.parseQuotedList()
		}
	}

	return nil, c.errorf(t, "unexpected token %s inside quoted data", t)
}
