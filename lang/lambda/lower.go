// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package lambda

import "github.com/mdhender/syntaxdb/syntax"

// toAST lowers a positioned CST node into Expr. It tolerates error nodes
// and missing children anywhere in the tree: a malformed subtree lowers
// to ExprError instead of panicking, matching parse_source's "never
// aborts" contract one layer up.
func toAST(n *syntax.Node) *Expr {
	switch n.Kind() {
	case KindRoot:
		kids := n.Children()
		if len(kids) == 0 {
			return &Expr{Tag: ExprError}
		}
		return toAST(kids[0])
	case KindExprIdent:
		name := ""
		if tok := n.FindToken(KindIdent); tok != nil {
			name = tok.Text()
		}
		return &Expr{Tag: ExprIdent, Name: name}
	case KindExprLambda:
		// The parameter is a direct token child between the lambda and the
		// dot; FindToken would recurse into the body and misreport a body
		// identifier as the parameter when the parameter is missing.
		name := ""
		for _, c := range n.AllChildren() {
			if tok, ok := c.(*syntax.Token); ok && tok.Kind() == KindIdent {
				name = tok.Text()
				break
			}
		}
		body := &Expr{Tag: ExprError}
		if kids := n.Children(); len(kids) > 0 {
			body = toAST(kids[0])
		}
		return &Expr{Tag: ExprLambda, Name: name, Body: body}
	case KindExprParen:
		kids := n.Children()
		if len(kids) == 0 {
			return &Expr{Tag: ExprError}
		}
		return toAST(kids[0])
	case KindExprAdd:
		kids := n.Children()
		if len(kids) == 0 {
			return &Expr{Tag: ExprError}
		}
		acc := toAST(kids[0])
		for _, k := range kids[1:] {
			acc = &Expr{Tag: ExprAdd, Left: acc, Right: toAST(k)}
		}
		return acc
	default:
		return &Expr{Tag: ExprError}
	}
}
