package ast

/*
DeepCopy reconstructs a subtree which aliases no part of the original and
tags the copy NotInAst, per the lifecycle rule that a node escaping the AST
(returned as an evaluation result) must never let a caller's free/mutation
touch the tree.
*/
func DeepCopy(n *Node) *Node {
	if n == nil {
		return nil
	}

	c := *n
	c.Tag = NotInAst

	c.Elements = deepCopySlice(n.Elements)
	c.Args = deepCopySlice(n.Args)
	c.Params = deepCopySlice(n.Params)
	c.Body = deepCopySlice(n.Body)
	c.Bindings = deepCopySlice(n.Bindings)
	c.Exprs = deepCopySlice(n.Exprs)
	c.Clauses = deepCopySlice(n.Clauses)
	c.ThenBody = deepCopySlice(n.ThenBody)
	c.ProgramBody = deepCopySlice(n.ProgramBody)

	c.Value = DeepCopy(n.Value)
	c.Callee = DeepCopy(n.Callee)
	c.DefineBinding = DeepCopy(n.DefineBinding)
	c.SetExpr = DeepCopy(n.SetExpr)
	c.Test = DeepCopy(n.Test)
	c.Then = DeepCopy(n.Then)
	c.ElseExpr = DeepCopy(n.ElseExpr)
	c.NotExpr = DeepCopy(n.NotExpr)
	c.ProcExpr = DeepCopy(n.ProcExpr)

	// Closure captures the defining lexical environment by position in the
	// parent chain - it is intentionally not copied, the copy still closes
	// over the same scope as the original.
	c.Closure = n.Closure

	if n.Builtins != nil {
		c.Builtins = n.Builtins
	}
	if n.Addons != nil {
		c.Addons = n.Addons
	}

	return &c
}

func deepCopySlice(in []*Node) []*Node {
	if in == nil {
		return nil
	}

	out := make([]*Node, len(in))
	for i, e := range in {
		out[i] = DeepCopy(e)
	}

	return out
}
