package ast

/*
String returns a short diagnostic name for a node kind, used in error
messages (parse errors name the offending construct).
*/
func (k Kind) String() string {
	switch k {
	case NumberLit:
		return "number"
	case StringLit:
		return "string"
	case CharLit:
		return "character"
	case BoolLit:
		return "boolean"
	case ListLit:
		return "list"
	case PairLit:
		return "pair"
	case NullExpr:
		return "null"
	case EmptyExpr:
		return "empty"
	case Binding:
		return "identifier"
	case CallExpr:
		return "call"
	case Procedure:
		return "procedure"
	case LambdaForm:
		return "lambda"
	case LocalBinding:
		return "local-binding"
	case SetForm:
		return "set!"
	case ConditionalForm:
		return "conditional"
	case CondClause:
		return "cond-clause"
	case Program:
		return "program"
	case VoidExpr:
		return "void"
	}
	return "unknown"
}

/*
String returns a short diagnostic name for a cond clause kind.
*/
func (k CondClauseKind) String() string {
	switch k {
	case TestThen:
		return "test-then"
	case ElseClause:
		return "else"
	case TestExprWithProc:
		return "test-expr-with-proc"
	case SingleTest:
		return "single-test"
	}
	return "unknown"
}
