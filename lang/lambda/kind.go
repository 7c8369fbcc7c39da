// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package lambda

import "github.com/mdhender/syntaxdb/cst"

// Token kinds. Starting at 1 keeps the zero value of cst.Kind out of
// circulation, so an accidentally zero-valued Kind never aliases a real
// one.
const (
	KindIdent cst.Kind = iota + 1
	KindLambda
	KindDot
	KindPlus
	KindLParen
	KindRParen
	KindWhitespace
	KindError
	KindEOF

	// Node kinds.
	KindRoot
	KindExprIdent
	KindExprLambda
	KindExprParen
	KindExprAdd
)
