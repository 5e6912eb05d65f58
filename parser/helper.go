/*
 * rkt
 *
 * A small Scheme-family interpreter.
 */

package parser

import (
	"fmt"

	"github.com/krotik/rkt/lexer"
	"github.com/krotik/rkt/util"
)

/*
cursor walks a flat token slice produced by the lexer, transparently
skipping comment tokens - the grammar below never has to know they exist.
*/
type cursor struct {
	name string
	toks []lexer.Token
	pos  int
}

func newCursor(name string, toks []lexer.Token) *cursor {
	c := &cursor{name: name, toks: toks}
	c.skipComments()
	return c
}

func (c *cursor) skipComments() {
	for c.toks[c.pos].Kind == lexer.TokenComment {
		c.pos++
	}
}

/*
peek returns the next significant token without consuming it.
*/
func (c *cursor) peek() lexer.Token {
	return c.toks[c.pos]
}

/*
advance consumes and returns the next significant token.
*/
func (c *cursor) advance() lexer.Token {
	t := c.toks[c.pos]
	c.pos++
	c.skipComments()
	return t
}

/*
isPunct reports whether the next token is the given single-byte
punctuation.
*/
func (c *cursor) isPunct(text string) bool {
	t := c.peek()
	return t.Kind == lexer.TokenPunctuation && t.Text == text
}

/*
expectPunct consumes the given punctuation or fails with a parse error
naming what was found instead.
*/
func (c *cursor) expectPunct(text string) error {
	if !c.isPunct(text) {
		t := c.peek()
		return c.errorf(t, "expected %q, found %s", text, t)
	}
	c.advance()
	return nil
}

/*
expectIdentifier consumes an identifier token and returns its text.
*/
func (c *cursor) expectIdentifier() (string, error) {
	t := c.peek()
	if t.Kind != lexer.TokenIdentifier {
		return "", c.errorf(t, "expected an identifier, found %s", t)
	}
	c.advance()
	return t.Text, nil
}

func (c *cursor) errorf(t lexer.Token, format string, args ...interface{}) error {
	return util.New(util.ParseError, c.name, fmt.Sprintf(format, args...), t.Line, t.Col)
}
