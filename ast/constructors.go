package ast

import "strconv"

/*
NewNumber creates a number literal node from its source text. The text is
parsed once here: a literal with no '.' becomes an integer, otherwise a
double.
*/
func NewNumber(text string) *Node {
	n := &Node{Kind: NumberLit, Tag: InAst, Text: text}

	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		n.Int = i
	} else {
		f, _ := strconv.ParseFloat(text, 64)
		n.Float = f
		n.IsFloat = true
	}

	return n
}

/*
NewIntNumber creates a fresh integer number result node.
*/
func NewIntNumber(v int64) *Node {
	return &Node{Kind: NumberLit, Tag: NotInAst, Int: v, Text: strconv.FormatInt(v, 10)}
}

/*
NewFloatNumber creates a fresh double number result node.
*/
func NewFloatNumber(v float64) *Node {
	return &Node{Kind: NumberLit, Tag: NotInAst, Float: v, IsFloat: true}
}

/*
NewString creates a string literal node.
*/
func NewString(text string, tag Lifecycle) *Node {
	return &Node{Kind: StringLit, Tag: tag, Text: text}
}

/*
NewChar creates a character literal node.
*/
func NewChar(c byte, tag Lifecycle) *Node {
	return &Node{Kind: CharLit, Tag: tag, Char: c}
}

/*
NewBool creates a boolean literal node.
*/
func NewBool(b bool, tag Lifecycle) *Node {
	return &Node{Kind: BoolLit, Tag: tag, Bool: b}
}

/*
NewList creates a list literal node.
*/
func NewList(elements []*Node, tag Lifecycle) *Node {
	return &Node{Kind: ListLit, Tag: tag, Elements: elements}
}

/*
NewPair creates a pair literal node with exactly two children.
*/
func NewPair(car, cdr *Node, tag Lifecycle) *Node {
	return &Node{Kind: PairLit, Tag: tag, Elements: []*Node{car, cdr}}
}

/*
NewNull creates the '() literal node.
*/
func NewNull(tag Lifecycle) *Node {
	return &Node{Kind: NullExpr, Tag: tag}
}

/*
NewEmpty creates the empty literal node.
*/
func NewEmpty(tag Lifecycle) *Node {
	return &Node{Kind: EmptyExpr, Tag: tag}
}

/*
NewReference creates a value-less Binding node used as an identifier
reference expression (not a context slot).
*/
func NewReference(name string) *Node {
	return &Node{Kind: Binding, Tag: InAst, Name: name}
}

/*
NewSlot creates a Binding node meant to live inside a Context: params get a
nil Value, let, let* and letrec bindings get their (not yet evaluated)
initializer as Value, and define gets its initializer expression as Value.
*/
func NewSlot(name string, value *Node) *Node {
	return &Node{Kind: Binding, Tag: InAst, Name: name, Value: value}
}

/*
NewCall creates a call expression node. Exactly one of name or anonymous
should be set.
*/
func NewCall(name string, anonymous *Node, args []*Node) *Node {
	return &Node{Kind: CallExpr, Tag: InAst, CalleeName: name, Callee: anonymous, Args: args}
}

/*
NewNativeProcedure creates a procedure backed by a Go callback.
*/
func NewNativeProcedure(name string, arity int, variadic bool, fn NativeFunc, tag Lifecycle) *Node {
	return &Node{
		Kind: Procedure, Tag: tag, ProcName: name, Native: fn, Arity: arity, Variadic: variadic,
	}
}

/*
NewUserProcedure creates a user-defined procedure. An empty name marks an
anonymous procedure, which is what evaluating a lambda produces; define
does not give the procedure it binds a name.
*/
func NewUserProcedure(name string, params []*Node, body []*Node, closure interface{}) *Node {
	return &Node{Kind: Procedure, Tag: NotInAst, ProcName: name, Params: params, Body: body, Closure: closure}
}

/*
NewLambda creates an anonymous lambda literal node, as produced by the
parser.
*/
func NewLambda(params []*Node, body []*Node) *Node {
	return &Node{Kind: LambdaForm, Tag: InAst, Params: params, Body: body}
}

/*
NewDefine creates a define local-binding-form node.
*/
func NewDefine(binding *Node) *Node {
	return &Node{Kind: LocalBinding, Tag: InAst, LocalKind: Define, DefineBinding: binding}
}

/*
NewLet creates a let, let*, or letrec local-binding-form node.
*/
func NewLet(kind LocalBindingKind, bindings []*Node, body []*Node) *Node {
	return &Node{Kind: LocalBinding, Tag: InAst, LocalKind: kind, Bindings: bindings, Body: body}
}

/*
NewSet creates a set! node.
*/
func NewSet(name string, expr *Node) *Node {
	return &Node{Kind: SetForm, Tag: InAst, SetName: name, SetExpr: expr}
}

/*
NewIf creates an if conditional-form node.
*/
func NewIf(test, then, elseExpr *Node) *Node {
	return &Node{Kind: ConditionalForm, Tag: InAst, CondKind: If, Test: test, Then: then, ElseExpr: elseExpr}
}

/*
NewAnd creates an and conditional-form node.
*/
func NewAnd(exprs []*Node) *Node {
	return &Node{Kind: ConditionalForm, Tag: InAst, CondKind: And, Exprs: exprs}
}

/*
NewOr creates an or conditional-form node.
*/
func NewOr(exprs []*Node) *Node {
	return &Node{Kind: ConditionalForm, Tag: InAst, CondKind: Or, Exprs: exprs}
}

/*
NewNot creates a not conditional-form node.
*/
func NewNot(expr *Node) *Node {
	return &Node{Kind: ConditionalForm, Tag: InAst, CondKind: Not, NotExpr: expr}
}

/*
NewCond creates a cond conditional-form node.
*/
func NewCond(clauses []*Node) *Node {
	return &Node{Kind: ConditionalForm, Tag: InAst, CondKind: Cond, Clauses: clauses}
}

/*
NewTestThenClause creates a [test then...] cond clause.
*/
func NewTestThenClause(test *Node, thenBody []*Node) *Node {
	return &Node{Kind: CondClause, Tag: InAst, ClauseKind: TestThen, Test: test, ThenBody: thenBody}
}

/*
NewElseClause creates an [else then...] cond clause.
*/
func NewElseClause(thenBody []*Node) *Node {
	return &Node{Kind: CondClause, Tag: InAst, ClauseKind: ElseClause, ThenBody: thenBody}
}

/*
NewVoid creates the sentinel result of a form the language defines to
return no printable value (define, set!). Top-level evaluation must
recognize this kind and skip printing it.
*/
func NewVoid(tag Lifecycle) *Node {
	return &Node{Kind: VoidExpr, Tag: tag}
}

/*
Printable reports whether n is a result a top-level form should print.
Every result is printable except the void sentinel.
*/
func Printable(n *Node) bool {
	return n != nil && n.Kind != VoidExpr
}

/*
NewProgram creates the root Program node.
*/
func NewProgram(body []*Node) *Node {
	return &Node{
		Kind: Program, Tag: InAst, ProgramBody: body,
		Builtins: make(map[string]*Node), Addons: make(map[string]*Node),
	}
}
